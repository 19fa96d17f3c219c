package session

import (
	"encoding/json"
	"fmt"

	"github.com/suderio/grimoire/internal/engine"
)

// IntentEnvelope is the wire form of an intent: a type discriminator plus
// the payload for that type.
type IntentEnvelope struct {
	Type    engine.IntentType `json:"type"`
	Payload json.RawMessage   `json:"payload,omitempty"`
}

// DecodeIntent reconstructs a concrete intent from its envelope. Unknown
// discriminators are a caller error, unlike no-op intents inside the
// transition function.
func DecodeIntent(env IntentEnvelope) (engine.Intent, error) {
	var in engine.Intent

	switch env.Type {
	case engine.IntentLoadScript:
		in = &engine.LoadScript{}
	case engine.IntentSelectView:
		in = &engine.SelectView{}
	case engine.IntentAddPlayer:
		in = &engine.AddPlayer{}
	case engine.IntentRemovePlayer:
		in = &engine.RemovePlayer{}
	case engine.IntentUpdatePlayer:
		in = &engine.UpdatePlayer{}
	case engine.IntentSetPlayers:
		in = &engine.SetPlayers{}
	case engine.IntentAssignCharacter:
		in = &engine.AssignCharacter{}
	case engine.IntentToggleAlive:
		in = &engine.ToggleAlive{}
	case engine.IntentAddReminder:
		in = &engine.AddReminder{}
	case engine.IntentRemoveReminder:
		in = &engine.RemoveReminder{}
	case engine.IntentAddToBag:
		in = &engine.AddToBag{}
	case engine.IntentRemoveFromBag:
		in = &engine.RemoveFromBag{}
	case engine.IntentSetBag:
		in = &engine.SetBag{}
	case engine.IntentDrawCharacter:
		in = &engine.DrawCharacter{}
	case engine.IntentConfirmDraw:
		in = &engine.ConfirmDraw{}
	case engine.IntentCancelDraw:
		in = &engine.CancelDraw{}
	case engine.IntentShuffleBag:
		in = &engine.ShuffleBag{}
	case engine.IntentResetBag:
		in = &engine.ResetBag{}
	case engine.IntentResetGame:
		in = &engine.ResetGame{}
	case engine.IntentSetPhase:
		in = &engine.SetPhase{}
	case engine.IntentNextDay:
		in = &engine.NextDay{}
	case engine.IntentSaveScript:
		in = &engine.SaveScript{}
	case engine.IntentDeleteSavedScript:
		in = &engine.DeleteSavedScript{}
	default:
		return nil, fmt.Errorf("unknown intent type: %s", env.Type)
	}

	if len(env.Payload) > 0 {
		if err := json.Unmarshal(env.Payload, in); err != nil {
			return nil, fmt.Errorf("failed to unmarshal %s payload: %w", env.Type, err)
		}
	}
	return in, nil
}
