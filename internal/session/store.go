// Package session wires the pure transition function to a persistence
// adapter and hands consumers snapshots plus a dispatch capability.
package session

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/suderio/grimoire/internal/engine"
	"github.com/suderio/grimoire/internal/persistence"
)

// Store is the single authoritative owner of session state. All writes go
// through Dispatch; everything else reads immutable snapshots.
type Store struct {
	mu      sync.Mutex
	adapter persistence.Adapter
	state   engine.Session
	log     zerolog.Logger
}

// NewStore loads the persisted snapshot (or defaults when none exists) and
// returns a ready store. The load is the one blocking persistence call.
func NewStore(adapter persistence.Adapter, log zerolog.Logger) (*Store, error) {
	snapshot, err := adapter.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load session snapshot: %w", err)
	}

	state := engine.NewSession()
	if snapshot != nil {
		state = *snapshot
	}

	return &Store{
		adapter: adapter,
		state:   state,
		log:     log,
	}, nil
}

// Dispatch applies one intent and returns the resulting snapshot. The save
// that follows is best-effort: a persistence failure is logged and the
// in-memory session remains the source of truth.
func (st *Store) Dispatch(in engine.Intent) engine.Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	st.state = engine.Transition(st.state, in)

	if err := st.adapter.Save(st.state); err != nil {
		st.log.Warn().Err(err).Str("intent", string(in.Type())).Msg("snapshot save failed")
	}
	return st.state
}

// Snapshot returns the current session value. Snapshots are never mutated
// after creation, so sharing the underlying slices is safe.
func (st *Store) Snapshot() engine.Session {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.state
}

// Close releases the persistence adapter.
func (st *Store) Close() error {
	return st.adapter.Close()
}
