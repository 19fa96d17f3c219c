package engine

import (
	"fmt"

	"github.com/google/uuid"
)

// AddPlayer appends a seat to the roster. Name defaults to "Player N+1",
// the seat position to the current roster length. ID is optional and only
// meant for deterministic tests; dispatchers normally leave it empty.
type AddPlayer struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

func (in AddPlayer) Type() IntentType { return IntentAddPlayer }
func (in AddPlayer) apply(s Session) Session {
	id := in.ID
	if id == "" {
		id = uuid.NewString()
	}
	name := in.Name
	if name == "" {
		name = fmt.Sprintf("Player %d", len(s.Players)+1)
	}
	p := Player{
		ID:           id,
		Name:         name,
		IsAlive:      true,
		Reminders:    []string{},
		SeatPosition: len(s.Players),
	}
	s.Players = append(clonePlayers(s.Players), p)
	return s
}

// RemovePlayer drops a seat by id. Remaining seat positions are not
// renumbered; circular layout is derived from array order.
type RemovePlayer struct {
	ID string `json:"id"`
}

func (in RemovePlayer) Type() IntentType { return IntentRemovePlayer }
func (in RemovePlayer) apply(s Session) Session {
	out := make([]Player, 0, len(s.Players))
	for _, p := range s.Players {
		if p.ID != in.ID {
			out = append(out, p)
		}
	}
	s.Players = out
	return s
}

// UpdatePlayer merges a partial field set into one roster entry.
// Unknown ids are a no-op.
type UpdatePlayer struct {
	ID           string  `json:"id"`
	Name         *string `json:"name,omitempty"`
	CharacterID  *string `json:"character,omitempty"`
	IsAlive      *bool   `json:"isAlive,omitempty"`
	SeatPosition *int    `json:"seatPosition,omitempty"`
}

func (in UpdatePlayer) Type() IntentType { return IntentUpdatePlayer }
func (in UpdatePlayer) apply(s Session) Session {
	return patchPlayer(s, in.ID, func(p Player) Player {
		if in.Name != nil {
			p.Name = *in.Name
		}
		if in.CharacterID != nil {
			p.CharacterID = *in.CharacterID
		}
		if in.IsAlive != nil {
			p.IsAlive = *in.IsAlive
		}
		if in.SeatPosition != nil {
			p.SeatPosition = *in.SeatPosition
		}
		return p
	})
}

// SetPlayers replaces the whole roster, used by the setup calculator's
// bulk "create N players" flow.
type SetPlayers struct {
	Players []Player `json:"players"`
}

func (in SetPlayers) Type() IntentType { return IntentSetPlayers }
func (in SetPlayers) apply(s Session) Session {
	s.Players = clonePlayers(in.Players)
	return s
}

// AssignCharacter points a player at a character id. The reference is not
// validated against the bag, drawn set, or even the script: a storyteller
// may deliberately duplicate or override assignments.
type AssignCharacter struct {
	PlayerID    string `json:"playerId"`
	CharacterID string `json:"character"`
}

func (in AssignCharacter) Type() IntentType { return IntentAssignCharacter }
func (in AssignCharacter) apply(s Session) Session {
	return patchPlayer(s, in.PlayerID, func(p Player) Player {
		p.CharacterID = in.CharacterID
		return p
	})
}

// ToggleAlive flips a player's life marker; unknown ids are a no-op.
type ToggleAlive struct {
	PlayerID string `json:"playerId"`
}

func (in ToggleAlive) Type() IntentType { return IntentToggleAlive }
func (in ToggleAlive) apply(s Session) Session {
	return patchPlayer(s, in.PlayerID, func(p Player) Player {
		p.IsAlive = !p.IsAlive
		return p
	})
}

// AddReminder appends a free-text token to a player. Labels are opaque and
// duplicates are allowed.
type AddReminder struct {
	PlayerID string `json:"playerId"`
	Label    string `json:"label"`
}

func (in AddReminder) Type() IntentType { return IntentAddReminder }
func (in AddReminder) apply(s Session) Session {
	return patchPlayer(s, in.PlayerID, func(p Player) Player {
		reminders := make([]string, 0, len(p.Reminders)+1)
		reminders = append(reminders, p.Reminders...)
		p.Reminders = append(reminders, in.Label)
		return p
	})
}

// RemoveReminder deletes a reminder token by index. Out-of-range indices
// leave the list untouched.
type RemoveReminder struct {
	PlayerID string `json:"playerId"`
	Index    int    `json:"index"`
}

func (in RemoveReminder) Type() IntentType { return IntentRemoveReminder }
func (in RemoveReminder) apply(s Session) Session {
	return patchPlayer(s, in.PlayerID, func(p Player) Player {
		if in.Index < 0 || in.Index >= len(p.Reminders) {
			return p
		}
		reminders := make([]string, 0, len(p.Reminders)-1)
		reminders = append(reminders, p.Reminders[:in.Index]...)
		p.Reminders = append(reminders, p.Reminders[in.Index+1:]...)
		return p
	})
}

// patchPlayer rebuilds the roster with one entry replaced. The untouched
// entries are shared; the session still counts as a fresh snapshot because
// the slice header is new and players are value types.
func patchPlayer(s Session, id string, fn func(Player) Player) Session {
	found := false
	out := make([]Player, len(s.Players))
	for i, p := range s.Players {
		if p.ID == id {
			p = fn(p)
			found = true
		}
		out[i] = p
	}
	if !found {
		return s
	}
	s.Players = out
	return s
}
