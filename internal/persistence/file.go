package persistence

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/suderio/grimoire/internal/engine"
)

// FileStore persists the session snapshot as a single JSON file.
type FileStore struct {
	path string
}

// NewFileStore prepares a snapshot store at path, creating the parent
// directory if needed.
func NewFileStore(path string) (*FileStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create state directory %s: %w", dir, err)
		}
	}
	return &FileStore{path: path}, nil
}

// Load reads and decodes the stored snapshot. A missing file yields
// (nil, nil).
func (f *FileStore) Load() (*engine.Session, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read snapshot %s: %w", f.path, err)
	}

	var s engine.Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot %s: %w", f.path, err)
	}
	return &s, nil
}

// Save writes the snapshot through a temp file and rename, so an
// interrupted write never clobbers the previous snapshot.
func (f *FileStore) Save(s engine.Session) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}
	return nil
}

// Close is a no-op; the store holds no open handles between saves.
func (f *FileStore) Close() error { return nil }
