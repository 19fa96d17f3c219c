// Package catalog holds the built-in read-only character reference data
// consulted during script import and official-script loading.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/suderio/grimoire/internal/engine"
)

//go:embed roles.json
var rolesData []byte

// OfficialScript is a catalog script definition: a display name plus the
// character ids it expands to.
type OfficialScript struct {
	Name       string   `json:"name"`
	Icon       string   `json:"icon,omitempty"`
	Characters []string `json:"characters"`
}

type dataset struct {
	Characters []engine.Character        `json:"characters"`
	Scripts    map[string]OfficialScript `json:"scripts"`
}

// Catalog is the loaded reference data. It is immutable after Load.
type Catalog struct {
	characters []engine.Character
	byID       map[string]engine.Character
	scripts    map[string]OfficialScript
}

// Load parses the embedded dataset. It fails only on a corrupted build.
func Load() (*Catalog, error) {
	var ds dataset
	if err := json.Unmarshal(rolesData, &ds); err != nil {
		return nil, fmt.Errorf("failed to decode embedded catalog: %w", err)
	}

	c := &Catalog{
		characters: ds.Characters,
		byID:       make(map[string]engine.Character, len(ds.Characters)),
		scripts:    ds.Scripts,
	}
	for _, ch := range ds.Characters {
		c.byID[engine.NormalizeID(ch.ID)] = ch
	}
	return c, nil
}

// Character resolves an id case-insensitively against the catalog.
func (c *Catalog) Character(id string) (engine.Character, bool) {
	ch, ok := c.byID[engine.NormalizeID(id)]
	return ch, ok
}

// Characters returns every catalog entry in dataset order.
func (c *Catalog) Characters() []engine.Character {
	out := make([]engine.Character, len(c.characters))
	copy(out, c.characters)
	return out
}

// ScriptKeys lists the official script keys in stable order.
func (c *Catalog) ScriptKeys() []string {
	keys := make([]string, 0, len(c.scripts))
	for k := range c.scripts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ScriptInfo returns the raw official script definition for a key.
func (c *Catalog) ScriptInfo(key string) (OfficialScript, bool) {
	info, ok := c.scripts[key]
	return info, ok
}

// Script expands an official script into a loadable engine.Script.
// Ids missing from the catalog are dropped, mirroring import semantics.
func (c *Catalog) Script(key string) (engine.Script, bool) {
	info, ok := c.scripts[key]
	if !ok {
		return engine.Script{}, false
	}
	chars := make([]engine.Character, 0, len(info.Characters))
	for _, id := range info.Characters {
		if ch, found := c.Character(id); found {
			chars = append(chars, ch)
		}
	}
	return engine.Script{Name: info.Name, Icon: info.Icon, Characters: chars}, true
}
