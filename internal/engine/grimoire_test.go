package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddPlayer_DefaultNamesAndSeats(t *testing.T) {
	s := NewSession()
	for i := 0; i < 3; i++ {
		s = Transition(s, AddPlayer{})
	}

	assert.Len(t, s.Players, 3)
	for i, want := range []string{"Player 1", "Player 2", "Player 3"} {
		p := s.Players[i]
		assert.Equal(t, want, p.Name)
		assert.Equal(t, i, p.SeatPosition)
		assert.True(t, p.IsAlive)
		assert.Empty(t, p.Reminders)
		assert.NotEmpty(t, p.ID)
	}
}

func TestAddPlayer_ExplicitName(t *testing.T) {
	s := Transition(NewSession(), AddPlayer{Name: "Alice"})
	assert.Equal(t, "Alice", s.Players[0].Name)
}

func TestRemovePlayer_KeepsSeatNumbers(t *testing.T) {
	s := NewSession()
	s = Transition(s, AddPlayer{ID: "a"})
	s = Transition(s, AddPlayer{ID: "b"})
	s = Transition(s, AddPlayer{ID: "c"})

	s = Transition(s, RemovePlayer{ID: "b"})

	assert.Len(t, s.Players, 2)
	assert.Equal(t, 0, s.Players[0].SeatPosition)
	assert.Equal(t, 2, s.Players[1].SeatPosition)
}

func TestUpdatePlayer_PartialMerge(t *testing.T) {
	s := Transition(NewSession(), AddPlayer{ID: "a", Name: "Alice"})

	name := "Bob"
	s = Transition(s, UpdatePlayer{ID: "a", Name: &name})

	p, ok := s.Player("a")
	assert.True(t, ok)
	assert.Equal(t, "Bob", p.Name)
	assert.True(t, p.IsAlive)
}

func TestUpdatePlayer_UnknownIDNoop(t *testing.T) {
	s := Transition(NewSession(), AddPlayer{ID: "a", Name: "Alice"})
	name := "Bob"
	next := Transition(s, UpdatePlayer{ID: "ghost", Name: &name})
	assert.Equal(t, s.Players, next.Players)
}

func TestAssignCharacter_AllowsDanglingReference(t *testing.T) {
	s := Transition(NewSession(), AddPlayer{ID: "a"})
	s = Transition(s, AssignCharacter{PlayerID: "a", CharacterID: "imp"})

	p, _ := s.Player("a")
	assert.Equal(t, "imp", p.CharacterID)

	_, ok := s.ResolveCharacter(p.CharacterID)
	assert.False(t, ok, "no script loaded, reference must dangle")
}

func TestToggleAlive_Flips(t *testing.T) {
	s := Transition(NewSession(), AddPlayer{ID: "a"})
	s = Transition(s, ToggleAlive{PlayerID: "a"})
	p, _ := s.Player("a")
	assert.False(t, p.IsAlive)

	s = Transition(s, ToggleAlive{PlayerID: "a"})
	p, _ = s.Player("a")
	assert.True(t, p.IsAlive)
}

func TestAddReminder_AllowsDuplicates(t *testing.T) {
	s := Transition(NewSession(), AddPlayer{ID: "a"})
	s = Transition(s, AddReminder{PlayerID: "a", Label: "poisoned"})
	s = Transition(s, AddReminder{PlayerID: "a", Label: "poisoned"})

	p, _ := s.Player("a")
	assert.Equal(t, []string{"poisoned", "poisoned"}, p.Reminders)
}

func TestRemoveReminder_OutOfRangeNoop(t *testing.T) {
	s := Transition(NewSession(), AddPlayer{ID: "a"})
	s = Transition(s, AddReminder{PlayerID: "a", Label: "drunk"})
	s = Transition(s, AddReminder{PlayerID: "a", Label: "poisoned"})

	s = Transition(s, RemoveReminder{PlayerID: "a", Index: 5})
	p, _ := s.Player("a")
	assert.Equal(t, []string{"drunk", "poisoned"}, p.Reminders)

	s = Transition(s, RemoveReminder{PlayerID: "a", Index: 0})
	p, _ = s.Player("a")
	assert.Equal(t, []string{"poisoned"}, p.Reminders)
}

func TestSetPlayers_ReplacesRoster(t *testing.T) {
	s := Transition(NewSession(), AddPlayer{ID: "a"})
	s = Transition(s, SetPlayers{Players: MakeRoster(2)})
	assert.Len(t, s.Players, 2)
	assert.Equal(t, "Player 1", s.Players[0].Name)
}

func TestTransition_NilIntent(t *testing.T) {
	s := Transition(NewSession(), AddPlayer{ID: "a"})
	assert.Equal(t, s, Transition(s, nil))
}
