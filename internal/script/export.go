package script

import (
	"encoding/json"
	"fmt"

	"github.com/suderio/grimoire/internal/engine"
)

// exportMeta is the leading _meta entry of an exported script.
type exportMeta struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon,omitempty"`
}

// Export serializes a script in full-definition list form. Re-importing the
// output reproduces the same character ids, teams, and abilities in order.
func Export(s engine.Script) ([]byte, error) {
	entries := make([]any, 0, len(s.Characters)+1)
	entries = append(entries, exportMeta{ID: MetaID, Name: s.Name, Icon: s.Icon})
	for _, c := range s.Characters {
		entries = append(entries, c)
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize script %q: %w", s.Name, err)
	}
	return data, nil
}
