package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suderio/grimoire/internal/engine"
	"github.com/suderio/grimoire/internal/persistence"
	"github.com/suderio/grimoire/internal/session"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	adapter, err := persistence.NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, err)
	store, err := session.NewStore(adapter, zerolog.Nop())
	require.NoError(t, err)
	return NewHandler(store, zerolog.Nop())
}

func TestHealth(t *testing.T) {
	handler := newTestHandler(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetSession_DefaultState(t *testing.T) {
	handler := newTestHandler(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/session", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var snap engine.Session
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	assert.Equal(t, engine.PhaseSetup, snap.Phase)
}

func TestPostIntent_AppliesAndReturnsSnapshot(t *testing.T) {
	handler := newTestHandler(t)

	body := []byte(`{"type": "AddPlayer", "payload": {"name": "Alice"}}`)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/intents", bytes.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code)

	var snap engine.Session
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	require.Len(t, snap.Players, 1)
	assert.Equal(t, "Alice", snap.Players[0].Name)
}

func TestPostIntent_UnknownType(t *testing.T) {
	handler := newTestHandler(t)

	body := []byte(`{"type": "Explode"}`)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/intents", bytes.NewReader(body)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPostIntent_MalformedEnvelope(t *testing.T) {
	handler := newTestHandler(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/intents", bytes.NewReader([]byte("{broken"))))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPostIntent_NoopStillOK(t *testing.T) {
	handler := newTestHandler(t)

	body := []byte(`{"type": "ConfirmDraw"}`)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/intents", bytes.NewReader(body)))
	assert.Equal(t, http.StatusOK, rec.Code)
}
