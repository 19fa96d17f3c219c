package persistence

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suderio/grimoire/internal/engine"
)

func newTestRedisStore(t *testing.T, opts ...RedisOption) *RedisStore {
	t.Helper()
	mr := miniredis.RunT(t)
	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisFromClient(client, opts...)
}

func TestRedisStore_LoadMissingKey(t *testing.T) {
	store := newTestRedisStore(t)

	snap, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, snap)
}

func TestRedisStore_SaveThenLoad(t *testing.T) {
	store := newTestRedisStore(t)

	s := engine.NewSession()
	s = engine.Transition(s, engine.AddPlayer{ID: "a", Name: "Alice"})
	require.NoError(t, store.Save(s))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	require.Len(t, loaded.Players, 1)
	assert.Equal(t, "Alice", loaded.Players[0].Name)
}

func TestRedisStore_CustomKey(t *testing.T) {
	mr := miniredis.RunT(t)
	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	store := NewRedisFromClient(client, WithKey("custom:key"))
	require.NoError(t, store.Save(engine.NewSession()))

	assert.True(t, mr.Exists("custom:key"))
	assert.False(t, mr.Exists("grimoire:session"))
}
