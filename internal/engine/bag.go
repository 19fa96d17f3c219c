package engine

// Bag membership rules, shared by every bag intent:
//   - an id lives in at most one of bag and drawn set;
//   - every id must belong to the active script;
//   - while a draw is pending, membership edits are silent no-ops so the
//     held reference can never dangle (ResetBag is the one exception).

// AddToBag inserts a character id into the bag. Idempotent: adding a
// present id, an id already drawn, or an id outside the script is a no-op.
type AddToBag struct {
	CharacterID string `json:"character"`
}

func (in AddToBag) Type() IntentType { return IntentAddToBag }
func (in AddToBag) apply(s Session) Session {
	if s.PendingDraw != "" {
		return s
	}
	if !s.Script.Contains(in.CharacterID) || s.InBag(in.CharacterID) || s.IsDrawn(in.CharacterID) {
		return s
	}
	s.Bag = append(cloneIDs(s.Bag), in.CharacterID)
	return s
}

// RemoveFromBag deletes a character id from the bag; absent ids are a no-op.
type RemoveFromBag struct {
	CharacterID string `json:"character"`
}

func (in RemoveFromBag) Type() IntentType { return IntentRemoveFromBag }
func (in RemoveFromBag) apply(s Session) Session {
	if s.PendingDraw != "" {
		return s
	}
	if !s.InBag(in.CharacterID) {
		return s
	}
	s.Bag = removeID(s.Bag, in.CharacterID)
	return s
}

// SetBag replaces the bag contents wholesale. Entries outside the active
// script, duplicates, and ids already drawn are dropped to preserve the
// membership invariants.
type SetBag struct {
	CharacterIDs []string `json:"characters"`
}

func (in SetBag) Type() IntentType { return IntentSetBag }
func (in SetBag) apply(s Session) Session {
	if s.PendingDraw != "" {
		return s
	}
	bag := make([]string, 0, len(in.CharacterIDs))
	for _, id := range in.CharacterIDs {
		if !s.Script.Contains(id) || containsID(bag, id) || s.IsDrawn(id) {
			continue
		}
		bag = append(bag, id)
	}
	s.Bag = bag
	return s
}

// DrawCharacter selects a uniform-random bag entry and holds it in the
// pending slot awaiting confirm or cancel. Drawing from an empty bag, or
// while another draw is pending, is a no-op.
type DrawCharacter struct{}

func (in DrawCharacter) Type() IntentType { return IntentDrawCharacter }
func (in DrawCharacter) apply(s Session) Session {
	if s.PendingDraw != "" || len(s.Bag) == 0 {
		return s
	}
	s.PendingDraw = s.Bag[randIndex(len(s.Bag))]
	return s
}

// ConfirmDraw resolves a pending draw: the held character moves from the
// bag to the drawn set as a single idempotent operation.
type ConfirmDraw struct{}

func (in ConfirmDraw) Type() IntentType { return IntentConfirmDraw }
func (in ConfirmDraw) apply(s Session) Session {
	if s.PendingDraw == "" {
		return s
	}
	id := s.PendingDraw
	s.Bag = removeID(s.Bag, id)
	if !s.IsDrawn(id) {
		s.Drawn = append(cloneIDs(s.Drawn), id)
	}
	s.PendingDraw = ""
	return s
}

// CancelDraw puts the held character back: only the pending slot clears,
// bag membership never changed during the hold.
type CancelDraw struct{}

func (in CancelDraw) Type() IntentType { return IntentCancelDraw }
func (in CancelDraw) apply(s Session) Session {
	s.PendingDraw = ""
	return s
}

// ShuffleBag permutes the bag order without touching membership.
type ShuffleBag struct{}

func (in ShuffleBag) Type() IntentType { return IntentShuffleBag }
func (in ShuffleBag) apply(s Session) Session {
	if s.PendingDraw != "" || len(s.Bag) < 2 {
		return s
	}
	s.Bag = shuffleIDs(s.Bag)
	return s
}

// ResetBag returns every drawn character to the bag, empties the drawn set,
// and clears any pending draw. Idempotent when nothing has been drawn.
type ResetBag struct{}

func (in ResetBag) Type() IntentType { return IntentResetBag }
func (in ResetBag) apply(s Session) Session {
	if len(s.Drawn) > 0 {
		bag := make([]string, 0, len(s.Bag)+len(s.Drawn))
		bag = append(bag, s.Bag...)
		bag = append(bag, s.Drawn...)
		s.Bag = bag
		s.Drawn = nil
	}
	s.PendingDraw = ""
	return s
}
