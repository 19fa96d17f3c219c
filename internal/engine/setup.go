package engine

import (
	"fmt"

	"github.com/google/uuid"
)

// Distribution is the character count per faction for a given table size.
// Travelers sit outside the distribution and are always added by hand.
type Distribution struct {
	Townsfolk int `json:"townsfolk"`
	Outsider  int `json:"outsider"`
	Minion    int `json:"minion"`
	Demon     int `json:"demon"`
}

// Total sums the distribution.
func (d Distribution) Total() int {
	return d.Townsfolk + d.Outsider + d.Minion + d.Demon
}

// Clamp folds a negative outsider count back into townsfolk so a modifier
// stack can never produce an impossible setup.
func (d Distribution) Clamp() Distribution {
	if d.Outsider < 0 {
		d.Townsfolk += d.Outsider
		d.Outsider = 0
	}
	if d.Townsfolk < 0 {
		d.Townsfolk = 0
	}
	return d
}

// MinPlayers and MaxPlayers bound the official distribution table.
const (
	MinPlayers = 5
	MaxPlayers = 15
)

var playerSetup = map[int]Distribution{
	5:  {Townsfolk: 3, Outsider: 0, Minion: 1, Demon: 1},
	6:  {Townsfolk: 3, Outsider: 1, Minion: 1, Demon: 1},
	7:  {Townsfolk: 5, Outsider: 0, Minion: 1, Demon: 1},
	8:  {Townsfolk: 5, Outsider: 1, Minion: 1, Demon: 1},
	9:  {Townsfolk: 5, Outsider: 2, Minion: 1, Demon: 1},
	10: {Townsfolk: 7, Outsider: 0, Minion: 2, Demon: 1},
	11: {Townsfolk: 7, Outsider: 1, Minion: 2, Demon: 1},
	12: {Townsfolk: 7, Outsider: 2, Minion: 2, Demon: 1},
	13: {Townsfolk: 9, Outsider: 0, Minion: 3, Demon: 1},
	14: {Townsfolk: 9, Outsider: 1, Minion: 3, Demon: 1},
	15: {Townsfolk: 9, Outsider: 2, Minion: 3, Demon: 1},
}

// BaseDistribution returns the official faction counts for a player count,
// clamped to the 5-15 table.
func BaseDistribution(players int) Distribution {
	if players < MinPlayers {
		players = MinPlayers
	}
	if players > MaxPlayers {
		players = MaxPlayers
	}
	return playerSetup[players]
}

// AutoFillBag picks a random selection from the script matching the
// distribution: each faction is shuffled and the first N taken. The result
// is a valid SetBag payload; it never exceeds what the script offers.
func AutoFillBag(script *Script, d Distribution) []string {
	if script == nil {
		return nil
	}
	take := func(team Team, n int) []string {
		chars := ShuffleCharacters(script.Team(team))
		if n > len(chars) {
			n = len(chars)
		}
		ids := make([]string, 0, n)
		for _, c := range chars[:n] {
			ids = append(ids, c.ID)
		}
		return ids
	}
	var bag []string
	bag = append(bag, take(TeamTownsfolk, d.Townsfolk)...)
	bag = append(bag, take(TeamOutsider, d.Outsider)...)
	bag = append(bag, take(TeamMinion, d.Minion)...)
	bag = append(bag, take(TeamDemon, d.Demon)...)
	return bag
}

// MakeRoster builds a fresh numbered roster of the given size, the bulk
// counterpart of AddPlayer for the setup calculator.
func MakeRoster(count int) []Player {
	players := make([]Player, 0, count)
	for i := 0; i < count; i++ {
		players = append(players, Player{
			ID:           uuid.NewString(),
			Name:         fmt.Sprintf("Player %d", i+1),
			IsAlive:      true,
			Reminders:    []string{},
			SeatPosition: i,
		})
	}
	return players
}
