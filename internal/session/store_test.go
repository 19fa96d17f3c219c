package session

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suderio/grimoire/internal/engine"
	"github.com/suderio/grimoire/internal/persistence"
)

func newFileBackedStore(t *testing.T, path string) *Store {
	t.Helper()
	adapter, err := persistence.NewFileStore(path)
	require.NoError(t, err)
	store, err := NewStore(adapter, zerolog.Nop())
	require.NoError(t, err)
	return store
}

func TestStore_StartsFromDefaults(t *testing.T) {
	store := newFileBackedStore(t, filepath.Join(t.TempDir(), "session.json"))

	snap := store.Snapshot()
	assert.Equal(t, engine.PhaseSetup, snap.Phase)
	assert.Empty(t, snap.Players)
}

func TestStore_DispatchPersistsEveryTransition(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := newFileBackedStore(t, path)

	store.Dispatch(engine.AddPlayer{ID: "a", Name: "Alice"})
	store.Dispatch(engine.NextDay{})
	require.NoError(t, store.Close())

	resumed := newFileBackedStore(t, path)
	snap := resumed.Snapshot()
	assert.Equal(t, 1, snap.DayNumber)
	require.Len(t, snap.Players, 1)
	assert.Equal(t, "Alice", snap.Players[0].Name)
}

// failingAdapter loads fine but refuses every save.
type failingAdapter struct{}

func (failingAdapter) Load() (*engine.Session, error)  { return nil, nil }
func (failingAdapter) Save(s engine.Session) error     { return errors.New("disk full") }
func (failingAdapter) Close() error                    { return nil }

func TestStore_SaveFailureKeepsInMemoryState(t *testing.T) {
	store, err := NewStore(failingAdapter{}, zerolog.Nop())
	require.NoError(t, err)

	next := store.Dispatch(engine.AddPlayer{ID: "a", Name: "Alice"})
	assert.Len(t, next.Players, 1)
	assert.Len(t, store.Snapshot().Players, 1)
}
