package engine

import (
	"sort"
	"strings"
	"time"
)

// Team classifies a character's faction within a script.
type Team string

const (
	TeamTownsfolk Team = "townsfolk"
	TeamOutsider  Team = "outsider"
	TeamMinion    Team = "minion"
	TeamDemon     Team = "demon"
	TeamTraveler  Team = "traveler"
)

// Teams lists every faction in canonical script order.
var Teams = []Team{TeamTownsfolk, TeamOutsider, TeamMinion, TeamDemon, TeamTraveler}

// Phase tracks where the table is inside the day/night cycle.
type Phase string

const (
	PhaseSetup      Phase = "setup"
	PhaseFirstNight Phase = "firstNight"
	PhaseDay        Phase = "day"
	PhaseOtherNight Phase = "otherNight"
)

// View is the presentation surface currently selected by the storyteller.
type View string

const (
	ViewHome     View = "home"
	ViewSetup    View = "setup"
	ViewBag      View = "bag"
	ViewGrimoire View = "grimoire"
	ViewScript   View = "script"
)

// Character is a single role entry of a script or the catalog.
// Once part of a loaded script it is never mutated.
type Character struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Team            Team     `json:"team"`
	Ability         string   `json:"ability"`
	Edition         string   `json:"edition"`
	FirstNightOrder int      `json:"firstNight"`
	OtherNightOrder int      `json:"otherNight"`
	Reminders       []string `json:"reminders"`
	Setup           bool     `json:"setup"`
	Image           string   `json:"image,omitempty"`
}

// Script is the active rule-set: a named, ordered list of unique characters.
type Script struct {
	Name       string      `json:"name"`
	Icon       string      `json:"icon,omitempty"`
	Characters []Character `json:"characters"`
}

// Character finds a script entry by id.
func (s *Script) Character(id string) (Character, bool) {
	if s == nil {
		return Character{}, false
	}
	for _, c := range s.Characters {
		if c.ID == id {
			return c, true
		}
	}
	return Character{}, false
}

// Contains reports whether the script carries the given character id.
func (s *Script) Contains(id string) bool {
	_, ok := s.Character(id)
	return ok
}

// Team returns the script's characters of one faction, in script order.
func (s *Script) Team(team Team) []Character {
	if s == nil {
		return nil
	}
	var out []Character
	for _, c := range s.Characters {
		if c.Team == team {
			out = append(out, c)
		}
	}
	return out
}

// SavedScript is a library entry: a script plus the key it was stored under.
type SavedScript struct {
	ID      string    `json:"id"`
	SavedAt time.Time `json:"savedAt"`
	Script  Script    `json:"script"`
}

// Player is one seat of the grimoire. CharacterID is a weak reference into
// the active script; it may dangle after a script change and consumers must
// tolerate a failed resolution.
type Player struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	CharacterID  string   `json:"character,omitempty"`
	IsAlive      bool     `json:"isAlive"`
	Reminders    []string `json:"reminders"`
	SeatPosition int      `json:"seatPosition"`
}

// Session is the root aggregate. Every transition replaces it wholesale;
// nothing mutates a snapshot in place.
type Session struct {
	Script       *Script       `json:"script,omitempty"`
	SavedScripts []SavedScript `json:"savedScripts,omitempty"`
	Players      []Player      `json:"players"`
	Bag          []string      `json:"characterBag"`
	Drawn        []string      `json:"drawnCharacters"`
	PendingDraw  string        `json:"pendingDraw,omitempty"`
	Phase        Phase         `json:"phase"`
	DayNumber    int           `json:"dayNumber"`
	View         View          `json:"view"`
}

// NewSession returns the default pre-game state.
func NewSession() Session {
	return Session{
		Phase: PhaseSetup,
		View:  ViewHome,
	}
}

// Player finds a roster entry by id.
func (s Session) Player(id string) (Player, bool) {
	for _, p := range s.Players {
		if p.ID == id {
			return p, true
		}
	}
	return Player{}, false
}

// ResolveCharacter resolves a player's weak character reference against the
// active script. A dangling id yields ok == false, which is a valid state.
func (s Session) ResolveCharacter(id string) (Character, bool) {
	if id == "" {
		return Character{}, false
	}
	return s.Script.Character(id)
}

// InBag reports bag membership for a character id.
func (s Session) InBag(id string) bool {
	return containsID(s.Bag, id)
}

// IsDrawn reports drawn-set membership for a character id.
func (s Session) IsDrawn(id string) bool {
	return containsID(s.Drawn, id)
}

// Seats returns the roster in circular seating order. Seat order is derived
// from array order; the stored SeatPosition only breaks ties for rosters
// assembled out of band.
func (s Session) Seats() []Player {
	seats := clonePlayers(s.Players)
	sort.SliceStable(seats, func(i, j int) bool {
		return seats[i].SeatPosition < seats[j].SeatPosition
	})
	return seats
}

// SavedScript finds a library entry by id.
func (s Session) SavedScript(id string) (SavedScript, bool) {
	for _, sc := range s.SavedScripts {
		if sc.ID == id {
			return sc, true
		}
	}
	return SavedScript{}, false
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func removeID(ids []string, id string) []string {
	out := make([]string, 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

func clonePlayers(players []Player) []Player {
	out := make([]Player, len(players))
	copy(out, players)
	return out
}

func cloneIDs(ids []string) []string {
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}

// NormalizeID lowercases and trims an id for case-insensitive comparison.
func NormalizeID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}
