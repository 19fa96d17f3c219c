package parser

import (
	"fmt"
	"strings"
)

// MapError takes a raw input and a participle error, and returns a
// human-friendly guidance message.
func MapError(input string, err error) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return fmt.Errorf("I wasn't able to understand your command")
	}

	parts := strings.Fields(strings.ToLower(input))
	cmd := parts[0]

	switch cmd {
	case "script":
		return fmt.Errorf("The command script must be: script <list|load|import|export|save|delete|show> [arg]")
	case "player":
		return fmt.Errorf("The command player must be: player <add|remove|rename|toggle|assign> [name] [as: value]")
	case "bag":
		return fmt.Errorf("The command bag must be: bag <add|remove|show|shuffle|reset> [character]")
	case "reminder":
		return fmt.Errorf("The command reminder must be: reminder <add|remove> to: Player [label: Text] [index: N]")
	case "setup":
		return fmt.Errorf("The command setup must be: setup <show|fill|players> [player_count]")
	case "game":
		return fmt.Errorf("The command game must be: game reset")
	case "phase":
		return fmt.Errorf("The command phase must be: phase <setup|firstNight|day|otherNight>")
	case "view":
		return fmt.Errorf("The command view must be: view <home|setup|bag|grimoire|script>")
	case "draw", "confirm", "cancel":
		return fmt.Errorf("The commands draw, confirm and cancel take no arguments")
	}

	return fmt.Errorf("I wasn't able to understand your command")
}
