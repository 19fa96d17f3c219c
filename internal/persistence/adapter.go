// Package persistence owns the durability boundary: adapters load one
// session snapshot at startup and store a fresh snapshot after every
// transition.
package persistence

import "github.com/suderio/grimoire/internal/engine"

// Adapter is the snapshot contract. Load returns (nil, nil) when no
// snapshot has been stored yet; that is not an error, the session store
// falls back to defaults. Save is best-effort: callers log failures and
// keep going, the in-memory session stays the source of truth.
type Adapter interface {
	Load() (*engine.Session, error)
	Save(s engine.Session) error
	Close() error
}
