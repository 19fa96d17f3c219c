package persistence

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suderio/grimoire/internal/engine"
)

func TestFileStore_LoadMissingFile(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, err)

	snap, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, snap)
}

func TestFileStore_SaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "session.json")
	store, err := NewFileStore(path)
	require.NoError(t, err)

	s := engine.NewSession()
	s = engine.Transition(s, engine.AddPlayer{ID: "a", Name: "Alice"})
	s = engine.Transition(s, engine.SetPhase{Phase: engine.PhaseDay})
	require.NoError(t, store.Save(s))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, engine.PhaseDay, loaded.Phase)
	require.Len(t, loaded.Players, 1)
	assert.Equal(t, "Alice", loaded.Players[0].Name)
}

func TestFileStore_SaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store, err := NewFileStore(path)
	require.NoError(t, err)

	first := engine.NewSession()
	require.NoError(t, store.Save(first))

	second := engine.Transition(first, engine.NextDay{})
	require.NoError(t, store.Save(second))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, 1, loaded.DayNumber)

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temp file must not linger")
}

func TestFileStore_LoadCorruptSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0644))

	store, err := NewFileStore(path)
	require.NoError(t, err)

	_, err = store.Load()
	assert.Error(t, err)
}
