package engine

import (
	"time"

	"github.com/google/uuid"
)

// IntentType discriminates the wire form of an intent.
type IntentType string

const (
	IntentLoadScript        IntentType = "LoadScript"
	IntentSelectView        IntentType = "SelectView"
	IntentAddPlayer         IntentType = "AddPlayer"
	IntentRemovePlayer      IntentType = "RemovePlayer"
	IntentUpdatePlayer      IntentType = "UpdatePlayer"
	IntentSetPlayers        IntentType = "SetPlayers"
	IntentAssignCharacter   IntentType = "AssignCharacter"
	IntentToggleAlive       IntentType = "ToggleAlive"
	IntentAddReminder       IntentType = "AddReminder"
	IntentRemoveReminder    IntentType = "RemoveReminder"
	IntentAddToBag          IntentType = "AddToBag"
	IntentRemoveFromBag     IntentType = "RemoveFromBag"
	IntentSetBag            IntentType = "SetBag"
	IntentDrawCharacter     IntentType = "DrawCharacter"
	IntentConfirmDraw       IntentType = "ConfirmDraw"
	IntentCancelDraw        IntentType = "CancelDraw"
	IntentShuffleBag        IntentType = "ShuffleBag"
	IntentResetBag          IntentType = "ResetBag"
	IntentResetGame         IntentType = "ResetGame"
	IntentSetPhase          IntentType = "SetPhase"
	IntentNextDay           IntentType = "NextDay"
	IntentSaveScript        IntentType = "SaveScript"
	IntentDeleteSavedScript IntentType = "DeleteSavedScript"
)

// Intent is a single requested state change. Applying one never fails:
// intents referencing unknown ids or out-of-range indices reduce to no-ops.
type Intent interface {
	Type() IntentType
	apply(s Session) Session
}

// Transition produces the next session snapshot for an intent. It is total:
// a nil intent returns the input unchanged, and no intent is ever rejected.
func Transition(s Session, in Intent) Session {
	if in == nil {
		return s
	}
	return in.apply(s)
}

// LoadScript replaces the active script wholesale and empties the bag and
// drawn set. The roster is untouched; stale character assignments are
// accepted drift, not an error.
type LoadScript struct {
	Script Script `json:"script"`
}

func (in LoadScript) Type() IntentType { return IntentLoadScript }
func (in LoadScript) apply(s Session) Session {
	sc := in.Script
	s.Script = &sc
	s.Bag = nil
	s.Drawn = nil
	s.PendingDraw = ""
	return s
}

// SelectView replaces the presentation-view field only.
type SelectView struct {
	View View `json:"view"`
}

func (in SelectView) Type() IntentType { return IntentSelectView }
func (in SelectView) apply(s Session) Session {
	s.View = in.View
	return s
}

// SetPhase replaces the phase field. Phase ordering is a caller convention.
type SetPhase struct {
	Phase Phase `json:"phase"`
}

func (in SetPhase) Type() IntentType { return IntentSetPhase }
func (in SetPhase) apply(s Session) Session {
	s.Phase = in.Phase
	return s
}

// NextDay advances the day counter and moves the table into the day phase.
type NextDay struct{}

func (in NextDay) Type() IntentType { return IntentNextDay }
func (in NextDay) apply(s Session) Session {
	s.DayNumber++
	s.Phase = PhaseDay
	return s
}

// ResetGame clears roster, bag, drawn set, phase, and day counter back to
// defaults. The active script and the saved-script library survive: loading
// a script is user-driven and expensive, resetting a game is not.
type ResetGame struct{}

func (in ResetGame) Type() IntentType { return IntentResetGame }
func (in ResetGame) apply(s Session) Session {
	next := NewSession()
	next.Script = s.Script
	next.SavedScripts = s.SavedScripts
	return next
}

// SaveScript stores the active script in the personal library. A no-op when
// no script is loaded. ID is optional; a fresh one is generated when empty.
type SaveScript struct {
	ID string `json:"id,omitempty"`
}

func (in SaveScript) Type() IntentType { return IntentSaveScript }
func (in SaveScript) apply(s Session) Session {
	if s.Script == nil {
		return s
	}
	id := in.ID
	if id == "" {
		id = uuid.NewString()
	}
	entry := SavedScript{ID: id, SavedAt: time.Now().UTC(), Script: *s.Script}
	library := make([]SavedScript, 0, len(s.SavedScripts)+1)
	for _, sc := range s.SavedScripts {
		if sc.ID != id {
			library = append(library, sc)
		}
	}
	s.SavedScripts = append(library, entry)
	return s
}

// DeleteSavedScript removes a library entry by id; unknown ids are a no-op.
type DeleteSavedScript struct {
	ID string `json:"id"`
}

func (in DeleteSavedScript) Type() IntentType { return IntentDeleteSavedScript }
func (in DeleteSavedScript) apply(s Session) Session {
	library := make([]SavedScript, 0, len(s.SavedScripts))
	for _, sc := range s.SavedScripts {
		if sc.ID != in.ID {
			library = append(library, sc)
		}
	}
	if len(library) == 0 {
		library = nil
	}
	s.SavedScripts = library
	return s
}
