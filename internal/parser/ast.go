package parser

// Command represents a top-level action entered into the shell.
type Command struct {
	Script   *ScriptCmd   `parser:"( @@"`
	Player   *PlayerCmd   `parser:"| @@"`
	Bag      *BagCmd      `parser:"| @@"`
	Reminder *ReminderCmd `parser:"| @@"`
	Setup    *SetupCmd    `parser:"| @@"`
	Game     *GameCmd     `parser:"| @@"`
	Phase    *PhaseCmd    `parser:"| @@"`
	View     *ViewCmd     `parser:"| @@"`
	Draw     *DrawCmd     `parser:"| @@"`
	Next     *NextCmd     `parser:"| @@"`
	Help     *HelpCmd     `parser:"| @@ )"`
}

// ScriptCmd manages the active script and the personal library.
type ScriptCmd struct {
	Keyword string `parser:"@\"script\""`
	Action  string `parser:"@(\"list\"|\"load\"|\"import\"|\"export\"|\"save\"|\"delete\"|\"show\")"`
	Arg     string `parser:"@(Ident|String)?"`
}

// PlayerCmd covers the grimoire roster operations. Players are addressed
// by display name; the shell resolves names to ids.
type PlayerCmd struct {
	Keyword string `parser:"@\"player\""`
	Action  string `parser:"@(\"add\"|\"remove\"|\"rename\"|\"toggle\"|\"assign\")"`
	Name    string `parser:"@(Ident|String)?"`
	As      string `parser:"(\"as\" \":\" @(Ident|String))?"`
}

// BagCmd edits bag membership directly.
type BagCmd struct {
	Keyword string `parser:"@\"bag\""`
	Action  string `parser:"@(\"add\"|\"remove\"|\"show\"|\"shuffle\"|\"reset\")"`
	Arg     string `parser:"@(Ident|String)?"`
}

// DrawCmd runs the draw state machine: draw, then confirm or cancel.
type DrawCmd struct {
	Action string `parser:"@(\"draw\"|\"confirm\"|\"cancel\")"`
}

// ReminderCmd attaches or removes status tokens on a player.
type ReminderCmd struct {
	Keyword string `parser:"@\"reminder\""`
	Action  string `parser:"@(\"add\"|\"remove\")"`
	Target  string `parser:"\"to\" \":\" @(Ident|String)"`
	Label   string `parser:"(\"label\" \":\" @(Ident|String))?"`
	Index   *int   `parser:"(\"index\" \":\" @Int)?"`
}

// SetupCmd drives the setup calculator: distribution preview, bag
// auto-fill, and bulk roster creation.
type SetupCmd struct {
	Keyword string `parser:"@\"setup\""`
	Action  string `parser:"@(\"show\"|\"fill\"|\"players\")"`
	Count   *int   `parser:"@Int?"`
}

// GameCmd holds whole-game operations.
type GameCmd struct {
	Keyword string `parser:"@\"game\""`
	Action  string `parser:"@\"reset\""`
}

// PhaseCmd replaces the phase field.
type PhaseCmd struct {
	Keyword string `parser:"@\"phase\""`
	Phase   string `parser:"@Ident"`
}

// ViewCmd selects the presentation view.
type ViewCmd struct {
	Keyword string `parser:"@\"view\""`
	View    string `parser:"@Ident"`
}

// NextCmd advances to the next day.
type NextCmd struct {
	Keyword string `parser:"@\"next\""`
}

// HelpCmd prints usage guidance.
type HelpCmd struct {
	Keyword string `parser:"@\"help\""`
	Topic   string `parser:"@Ident?"`
}
