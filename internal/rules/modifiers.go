package rules

import (
	"fmt"

	"github.com/suderio/grimoire/internal/engine"
)

// Modifier adjusts the base distribution when its character is on the
// script. Each adjustment is a CEL expression over the running counts, so
// new setup-altering characters are a data change, not a code change.
type Modifier struct {
	CharacterID string
	Description string
	Adjustments map[string]string
}

var setupModifiers = []Modifier{
	{
		CharacterID: "baron",
		Description: "+2 Outsiders",
		Adjustments: map[string]string{
			"outsider":  "outsider + 2",
			"townsfolk": "townsfolk - 2",
		},
	},
	{
		CharacterID: "fanggu",
		Description: "+1 Outsider",
		Adjustments: map[string]string{
			"outsider":  "outsider + 1",
			"townsfolk": "townsfolk - 1",
		},
	},
	{
		CharacterID: "vigormortis",
		Description: "-1 Outsider",
		Adjustments: map[string]string{
			"outsider":  "outsider - 1",
			"townsfolk": "townsfolk + 1",
		},
	},
}

// Modifiers returns the setup modifiers active for a script, in table order.
func Modifiers(script *engine.Script) []Modifier {
	var active []Modifier
	for _, m := range setupModifiers {
		if script.Contains(m.CharacterID) {
			active = append(active, m)
		}
	}
	return active
}

// HasModifiers reports whether a script carries any setup-altering character.
func HasModifiers(script *engine.Script) bool {
	return len(Modifiers(script)) > 0
}

// ModifiedDistribution applies every active modifier to the base
// distribution for the given player count, then clamps the result so no
// faction count goes negative.
func (r *Registry) ModifiedDistribution(script *engine.Script, players int) (engine.Distribution, error) {
	dist := engine.BaseDistribution(players)
	for _, m := range Modifiers(script) {
		ctx := distributionContext(dist, players, script)
		next := dist
		for faction, expr := range m.Adjustments {
			n, err := r.evalInt(expr, ctx)
			if err != nil {
				return dist, fmt.Errorf("modifier %s: %w", m.CharacterID, err)
			}
			switch faction {
			case "townsfolk":
				next.Townsfolk = n
			case "outsider":
				next.Outsider = n
			case "minion":
				next.Minion = n
			case "demon":
				next.Demon = n
			default:
				return dist, fmt.Errorf("modifier %s adjusts unknown faction %q", m.CharacterID, faction)
			}
		}
		dist = next
	}
	return dist.Clamp(), nil
}

// distributionContext exposes the running counts and script to CEL.
func distributionContext(d engine.Distribution, players int, script *engine.Script) map[string]any {
	ids := make([]string, 0)
	if script != nil {
		for _, c := range script.Characters {
			ids = append(ids, c.ID)
		}
	}
	return map[string]any{
		"townsfolk": d.Townsfolk,
		"outsider":  d.Outsider,
		"minion":    d.Minion,
		"demon":     d.Demon,
		"players":   players,
		"script":    ids,
	}
}
