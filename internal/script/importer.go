// Package script normalizes heterogeneous script payloads into canonical
// engine.Script values and exports them back in round-trippable form.
package script

import (
	"encoding/json"

	"github.com/suderio/grimoire/internal/catalog"
	"github.com/suderio/grimoire/internal/engine"
)

// MetaID is the reserved list entry carrying script metadata instead of a
// character definition.
const MetaID = "_meta"

// Importer turns raw payloads into scripts, resolving bare ids against the
// character catalog. It is a pure function over catalog + input.
type Importer struct {
	catalog *catalog.Catalog
}

// NewImporter binds an importer to its reference catalog.
func NewImporter(cat *catalog.Catalog) *Importer {
	return &Importer{catalog: cat}
}

// rawEntry is the superset of fields a list entry may carry.
type rawEntry struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Team      engine.Team `json:"team"`
	Ability   string      `json:"ability"`
	Edition   string      `json:"edition"`
	FirstNight int        `json:"firstNight"`
	OtherNight int        `json:"otherNight"`
	Reminders []string    `json:"reminders"`
	Setup     bool        `json:"setup"`
	Image     string      `json:"image"`
	Icon      string      `json:"icon"`
}

// objectPayload is the object-form input: pre-normalized characters plus an
// optional name override.
type objectPayload struct {
	Name       string             `json:"name"`
	Icon       string             `json:"icon"`
	Characters []engine.Character `json:"characters"`
}

// Import parses a payload in either list or object form and produces a
// Script. defaultName is used when the payload carries no name of its own
// (callers typically derive it from the import source). Parse failures
// yield a *FormatError; payloads normalizing to zero characters yield a
// *ImportError. No other failure mode exists.
func (im *Importer) Import(payload []byte, defaultName string) (engine.Script, error) {
	var entries []json.RawMessage
	if err := json.Unmarshal(payload, &entries); err == nil {
		return im.importList(entries, defaultName)
	}

	var obj objectPayload
	if err := json.Unmarshal(payload, &obj); err != nil {
		return engine.Script{}, &FormatError{Err: err}
	}
	name := obj.Name
	if name == "" {
		name = defaultName
	}
	if len(obj.Characters) == 0 {
		return engine.Script{}, &ImportError{Name: name}
	}
	return engine.Script{Name: name, Icon: obj.Icon, Characters: obj.Characters}, nil
}

func (im *Importer) importList(entries []json.RawMessage, defaultName string) (engine.Script, error) {
	name := defaultName
	icon := ""
	var chars []engine.Character
	seen := map[string]bool{}

	for _, raw := range entries {
		// Bare string entries are catalog id references; unresolvable ids
		// are dropped silently.
		var id string
		if err := json.Unmarshal(raw, &id); err == nil {
			if id == MetaID {
				continue
			}
			if ch, ok := im.catalog.Character(id); ok && !seen[ch.ID] {
				seen[ch.ID] = true
				chars = append(chars, ch)
			}
			continue
		}

		var entry rawEntry
		if err := json.Unmarshal(raw, &entry); err != nil {
			return engine.Script{}, &FormatError{Err: err}
		}

		if entry.ID == MetaID {
			if entry.Name != "" {
				name = entry.Name
			}
			if entry.Icon != "" {
				icon = entry.Icon
			}
			continue
		}
		if entry.ID == "" || seen[entry.ID] {
			continue
		}

		if entry.Ability == "" {
			// Id reference without a definition: resolve against the
			// catalog, otherwise keep the partial entry best-effort.
			if ch, ok := im.catalog.Character(entry.ID); ok {
				seen[ch.ID] = true
				chars = append(chars, ch)
				continue
			}
		}

		seen[entry.ID] = true
		chars = append(chars, normalize(entry))
	}

	if len(chars) == 0 {
		return engine.Script{}, &ImportError{Name: name}
	}
	return engine.Script{Name: name, Icon: icon, Characters: chars}, nil
}

// normalize applies the documented defaults to a full or partial definition.
func normalize(e rawEntry) engine.Character {
	c := engine.Character{
		ID:              e.ID,
		Name:            e.Name,
		Team:            e.Team,
		Ability:         e.Ability,
		Edition:         e.Edition,
		FirstNightOrder: e.FirstNight,
		OtherNightOrder: e.OtherNight,
		Reminders:       e.Reminders,
		Setup:           e.Setup,
		Image:           e.Image,
	}
	if c.Name == "" {
		c.Name = c.ID
	}
	if c.Team == "" {
		c.Team = engine.TeamTownsfolk
	}
	if c.Edition == "" {
		c.Edition = "custom"
	}
	if c.Reminders == nil {
		c.Reminders = []string{}
	}
	return c
}
