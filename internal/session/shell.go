package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/participle/v2"

	"github.com/suderio/grimoire/internal/catalog"
	"github.com/suderio/grimoire/internal/engine"
	"github.com/suderio/grimoire/internal/parser"
	"github.com/suderio/grimoire/internal/rules"
	"github.com/suderio/grimoire/internal/script"
)

// Shell coordinates the interactive intent language: it parses a raw
// command line, resolves names against the current snapshot, dispatches
// the matching intent, and returns a printable result.
type Shell struct {
	store    *Store
	catalog  *catalog.Catalog
	importer *script.Importer
	rules    *rules.Registry
	parser   *participle.Parser[parser.Command]
}

// NewShell bootstraps the shell pipeline around an initialized store.
func NewShell(store *Store, cat *catalog.Catalog) (*Shell, error) {
	reg, err := rules.NewRegistry()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize rules registry: %w", err)
	}
	return &Shell{
		store:    store,
		catalog:  cat,
		importer: script.NewImporter(cat),
		rules:    reg,
		parser:   parser.Build(),
	}, nil
}

// Store exposes the underlying session store for direct snapshot reads.
func (sh *Shell) Store() *Store { return sh.store }

// Execute runs one command line to completion and returns its output.
func (sh *Shell) Execute(input string) (string, error) {
	cmd, err := sh.parser.ParseString("", input)
	if err != nil {
		return "", parser.MapError(input, err)
	}

	switch {
	case cmd.Script != nil:
		return sh.execScript(cmd.Script)
	case cmd.Player != nil:
		return sh.execPlayer(cmd.Player)
	case cmd.Bag != nil:
		return sh.execBag(cmd.Bag)
	case cmd.Reminder != nil:
		return sh.execReminder(cmd.Reminder)
	case cmd.Setup != nil:
		return sh.execSetup(cmd.Setup)
	case cmd.Draw != nil:
		return sh.execDraw(cmd.Draw)
	case cmd.Game != nil:
		sh.store.Dispatch(engine.ResetGame{})
		return "Game reset. The active script and library were kept.", nil
	case cmd.Phase != nil:
		sh.store.Dispatch(engine.SetPhase{Phase: engine.Phase(cmd.Phase.Phase)})
		return fmt.Sprintf("Phase is now %s.", cmd.Phase.Phase), nil
	case cmd.Next != nil:
		s := sh.store.Dispatch(engine.NextDay{})
		return fmt.Sprintf("Day %d begins.", s.DayNumber), nil
	case cmd.View != nil:
		sh.store.Dispatch(engine.SelectView{View: engine.View(cmd.View.View)})
		return fmt.Sprintf("Switched to the %s view.", cmd.View.View), nil
	case cmd.Help != nil:
		return helpText(cmd.Help.Topic), nil
	}

	return "", fmt.Errorf("unsupported command pattern")
}

func (sh *Shell) execScript(c *parser.ScriptCmd) (string, error) {
	switch c.Action {
	case "list":
		return sh.renderScriptList(), nil

	case "load":
		if c.Arg == "" {
			return "", fmt.Errorf("Usage: script load <official_key|saved_id>")
		}
		if sc, ok := sh.catalog.Script(c.Arg); ok {
			sh.store.Dispatch(engine.LoadScript{Script: sc})
			return fmt.Sprintf("Loaded %q (%d characters). Bag cleared.", sc.Name, len(sc.Characters)), nil
		}
		if saved, ok := sh.store.Snapshot().SavedScript(c.Arg); ok {
			sh.store.Dispatch(engine.LoadScript{Script: saved.Script})
			return fmt.Sprintf("Loaded %q from your library (%d characters). Bag cleared.", saved.Script.Name, len(saved.Script.Characters)), nil
		}
		return "", fmt.Errorf("no official script or library entry named %q", c.Arg)

	case "import":
		if c.Arg == "" {
			return "", fmt.Errorf("Usage: script import \"path/to/script.json\"")
		}
		payload, err := os.ReadFile(c.Arg)
		if err != nil {
			return "", fmt.Errorf("failed to read script file: %w", err)
		}
		defaultName := strings.TrimSuffix(filepath.Base(c.Arg), ".json")
		sc, err := sh.importer.Import(payload, defaultName)
		if err != nil {
			return "", err
		}
		sh.store.Dispatch(engine.LoadScript{Script: sc})
		return fmt.Sprintf("Imported %q (%d characters). Bag cleared.", sc.Name, len(sc.Characters)), nil

	case "export":
		snap := sh.store.Snapshot()
		if snap.Script == nil {
			return "", fmt.Errorf("no script loaded")
		}
		if c.Arg == "" {
			return "", fmt.Errorf("Usage: script export \"path/to/script.json\"")
		}
		data, err := script.Export(*snap.Script)
		if err != nil {
			return "", err
		}
		if err := os.WriteFile(c.Arg, data, 0644); err != nil {
			return "", fmt.Errorf("failed to write script file: %w", err)
		}
		return fmt.Sprintf("Exported %q to %s.", snap.Script.Name, c.Arg), nil

	case "save":
		snap := sh.store.Snapshot()
		if snap.Script == nil {
			return "", fmt.Errorf("no script loaded")
		}
		s := sh.store.Dispatch(engine.SaveScript{})
		latest := s.SavedScripts[len(s.SavedScripts)-1]
		return fmt.Sprintf("Saved %q to your library as %s.", latest.Script.Name, latest.ID), nil

	case "delete":
		if c.Arg == "" {
			return "", fmt.Errorf("Usage: script delete <saved_id>")
		}
		if _, ok := sh.store.Snapshot().SavedScript(c.Arg); !ok {
			return "", fmt.Errorf("no library entry %q", c.Arg)
		}
		sh.store.Dispatch(engine.DeleteSavedScript{ID: c.Arg})
		return fmt.Sprintf("Removed %s from your library.", c.Arg), nil

	case "show":
		return sh.renderScript(), nil
	}

	return "", fmt.Errorf("unsupported script action %q", c.Action)
}

func (sh *Shell) execPlayer(c *parser.PlayerCmd) (string, error) {
	switch c.Action {
	case "add":
		s := sh.store.Dispatch(engine.AddPlayer{Name: c.Name})
		p := s.Players[len(s.Players)-1]
		return fmt.Sprintf("%s takes seat %d.", p.Name, p.SeatPosition+1), nil

	case "remove":
		p, err := sh.findPlayer(c.Name)
		if err != nil {
			return "", err
		}
		sh.store.Dispatch(engine.RemovePlayer{ID: p.ID})
		return fmt.Sprintf("%s leaves the table.", p.Name), nil

	case "rename":
		p, err := sh.findPlayer(c.Name)
		if err != nil {
			return "", err
		}
		if c.As == "" {
			return "", fmt.Errorf("Usage: player rename <name> as: <new_name>")
		}
		name := c.As
		sh.store.Dispatch(engine.UpdatePlayer{ID: p.ID, Name: &name})
		return fmt.Sprintf("%s is now called %s.", p.Name, name), nil

	case "toggle":
		p, err := sh.findPlayer(c.Name)
		if err != nil {
			return "", err
		}
		s := sh.store.Dispatch(engine.ToggleAlive{PlayerID: p.ID})
		if after, ok := s.Player(p.ID); ok && !after.IsAlive {
			return fmt.Sprintf("%s is dead.", p.Name), nil
		}
		return fmt.Sprintf("%s lives again.", p.Name), nil

	case "assign":
		p, err := sh.findPlayer(c.Name)
		if err != nil {
			return "", err
		}
		if c.As == "" {
			return "", fmt.Errorf("Usage: player assign <name> as: <character_id>")
		}
		id := engine.NormalizeID(c.As)
		sh.store.Dispatch(engine.AssignCharacter{PlayerID: p.ID, CharacterID: id})
		if ch, ok := sh.store.Snapshot().ResolveCharacter(id); ok {
			return fmt.Sprintf("%s is the %s.", p.Name, ch.Name), nil
		}
		return fmt.Sprintf("%s is assigned %q (not on the current script).", p.Name, id), nil
	}

	return "", fmt.Errorf("unsupported player action %q", c.Action)
}

func (sh *Shell) execBag(c *parser.BagCmd) (string, error) {
	snap := sh.store.Snapshot()
	switch c.Action {
	case "add":
		// A team name adds the whole faction, mirroring the per-character path.
		if team, ok := asTeam(c.Arg); ok {
			chars := snap.Script.Team(team)
			if len(chars) == 0 {
				return "", fmt.Errorf("the current script has no %s characters", c.Arg)
			}
			for _, ch := range chars {
				sh.store.Dispatch(engine.AddToBag{CharacterID: ch.ID})
			}
			return fmt.Sprintf("Bag now holds %d characters.", len(sh.store.Snapshot().Bag)), nil
		}
		id := engine.NormalizeID(c.Arg)
		if !snap.Script.Contains(id) {
			return "", fmt.Errorf("%q is not on the current script", c.Arg)
		}
		s := sh.store.Dispatch(engine.AddToBag{CharacterID: id})
		return fmt.Sprintf("Bag now holds %d characters.", len(s.Bag)), nil

	case "remove":
		if team, ok := asTeam(c.Arg); ok {
			for _, ch := range snap.Script.Team(team) {
				sh.store.Dispatch(engine.RemoveFromBag{CharacterID: ch.ID})
			}
			return fmt.Sprintf("Bag now holds %d characters.", len(sh.store.Snapshot().Bag)), nil
		}
		id := engine.NormalizeID(c.Arg)
		s := sh.store.Dispatch(engine.RemoveFromBag{CharacterID: id})
		return fmt.Sprintf("Bag now holds %d characters.", len(s.Bag)), nil

	case "show":
		return sh.renderBag(), nil

	case "shuffle":
		sh.store.Dispatch(engine.ShuffleBag{})
		return "Bag shuffled.", nil

	case "reset":
		s := sh.store.Dispatch(engine.ResetBag{})
		return fmt.Sprintf("All drawn characters returned. Bag holds %d.", len(s.Bag)), nil
	}

	return "", fmt.Errorf("unsupported bag action %q", c.Action)
}

func (sh *Shell) execDraw(c *parser.DrawCmd) (string, error) {
	switch c.Action {
	case "draw":
		before := sh.store.Snapshot()
		if before.PendingDraw != "" {
			return "", fmt.Errorf("a draw is already pending; confirm or cancel it first")
		}
		if len(before.Bag) == 0 {
			return "", fmt.Errorf("the bag is empty")
		}
		s := sh.store.Dispatch(engine.DrawCharacter{})
		name := s.PendingDraw
		if ch, ok := s.ResolveCharacter(s.PendingDraw); ok {
			name = ch.Name
		}
		return fmt.Sprintf("Drawn: %s. Confirm to keep it out of the bag, cancel to put it back.", name), nil

	case "confirm":
		before := sh.store.Snapshot()
		if before.PendingDraw == "" {
			return "", fmt.Errorf("no draw is pending")
		}
		s := sh.store.Dispatch(engine.ConfirmDraw{})
		return fmt.Sprintf("Confirmed. Bag %d, drawn %d.", len(s.Bag), len(s.Drawn)), nil

	case "cancel":
		sh.store.Dispatch(engine.CancelDraw{})
		return "Draw canceled; the character stays in the bag.", nil
	}

	return "", fmt.Errorf("unsupported draw action %q", c.Action)
}

func (sh *Shell) execReminder(c *parser.ReminderCmd) (string, error) {
	p, err := sh.findPlayer(c.Target)
	if err != nil {
		return "", err
	}

	switch c.Action {
	case "add":
		if c.Label == "" {
			return "", fmt.Errorf("Usage: reminder add to: Player label: Text")
		}
		sh.store.Dispatch(engine.AddReminder{PlayerID: p.ID, Label: c.Label})
		return fmt.Sprintf("%s is marked %q.", p.Name, c.Label), nil

	case "remove":
		if c.Index == nil {
			return "", fmt.Errorf("Usage: reminder remove to: Player index: N")
		}
		sh.store.Dispatch(engine.RemoveReminder{PlayerID: p.ID, Index: *c.Index})
		return fmt.Sprintf("Reminder %d cleared from %s.", *c.Index, p.Name), nil
	}

	return "", fmt.Errorf("unsupported reminder action %q", c.Action)
}

func (sh *Shell) execSetup(c *parser.SetupCmd) (string, error) {
	snap := sh.store.Snapshot()
	count := len(snap.Players)
	if c.Count != nil {
		count = *c.Count
	}
	if count == 0 {
		return "", fmt.Errorf("give a player count, e.g. setup %s 10", c.Action)
	}

	switch c.Action {
	case "show":
		return sh.renderSetup(count)

	case "fill":
		if snap.Script == nil {
			return "", fmt.Errorf("no script loaded")
		}
		dist, err := sh.rules.ModifiedDistribution(snap.Script, count)
		if err != nil {
			return "", err
		}
		bag := engine.AutoFillBag(snap.Script, dist)
		s := sh.store.Dispatch(engine.SetBag{CharacterIDs: bag})
		return fmt.Sprintf("Bag filled with %d characters for %d players.", len(s.Bag), count), nil

	case "players":
		sh.store.Dispatch(engine.SetPlayers{Players: engine.MakeRoster(count)})
		return fmt.Sprintf("Created %d fresh seats.", count), nil
	}

	return "", fmt.Errorf("unsupported setup action %q", c.Action)
}

// asTeam reports whether a bag argument names a whole faction.
func asTeam(arg string) (engine.Team, bool) {
	t := engine.Team(engine.NormalizeID(arg))
	for _, known := range engine.Teams {
		if t == known {
			return t, true
		}
	}
	return "", false
}

// findPlayer resolves a player by exact id, then by case-insensitive name.
func (sh *Shell) findPlayer(ref string) (engine.Player, error) {
	if ref == "" {
		return engine.Player{}, fmt.Errorf("which player? give a name")
	}
	snap := sh.store.Snapshot()
	if p, ok := snap.Player(ref); ok {
		return p, nil
	}
	for _, p := range snap.Players {
		if strings.EqualFold(p.Name, ref) {
			return p, nil
		}
	}
	return engine.Player{}, fmt.Errorf("no player named %q", ref)
}

func (sh *Shell) renderScriptList() string {
	var sb strings.Builder
	sb.WriteString("Official scripts:\n")
	for _, key := range sh.catalog.ScriptKeys() {
		info, _ := sh.catalog.ScriptInfo(key)
		sb.WriteString(fmt.Sprintf("  %-6s %s (%d characters)\n", key, info.Name, len(info.Characters)))
	}
	snap := sh.store.Snapshot()
	if len(snap.SavedScripts) > 0 {
		sb.WriteString("Library:\n")
		for _, sc := range snap.SavedScripts {
			sb.WriteString(fmt.Sprintf("  %s  %s (%d characters, saved %s)\n",
				sc.ID, sc.Script.Name, len(sc.Script.Characters), sc.SavedAt.Format("2006-01-02")))
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (sh *Shell) renderScript() string {
	snap := sh.store.Snapshot()
	if snap.Script == nil {
		return "No script loaded. Try: script load tb"
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s (%d characters)\n", snap.Script.Name, len(snap.Script.Characters)))
	for _, team := range engine.Teams {
		chars := snap.Script.Team(team)
		if len(chars) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("%s (%d):\n", titleTeam(team), len(chars)))
		for _, ch := range chars {
			sb.WriteString(fmt.Sprintf("  %-16s %s\n", ch.ID, ch.Ability))
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (sh *Shell) renderBag() string {
	snap := sh.store.Snapshot()
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Bag (%d):\n", len(snap.Bag)))
	for _, id := range snap.Bag {
		sb.WriteString("  " + characterLabel(snap, id) + "\n")
	}
	if snap.PendingDraw != "" {
		sb.WriteString(fmt.Sprintf("Pending draw: %s\n", characterLabel(snap, snap.PendingDraw)))
	}
	if len(snap.Drawn) > 0 {
		sb.WriteString(fmt.Sprintf("Drawn (%d):\n", len(snap.Drawn)))
		for _, id := range snap.Drawn {
			sb.WriteString("  " + characterLabel(snap, id) + "\n")
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (sh *Shell) renderSetup(count int) (string, error) {
	snap := sh.store.Snapshot()
	base := engine.BaseDistribution(count)
	dist := base
	if snap.Script != nil {
		var err error
		dist, err = sh.rules.ModifiedDistribution(snap.Script, count)
		if err != nil {
			return "", err
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Setup for %d players:\n", count))
	rows := []struct {
		label      string
		base, want int
	}{
		{"Townsfolk", base.Townsfolk, dist.Townsfolk},
		{"Outsiders", base.Outsider, dist.Outsider},
		{"Minions", base.Minion, dist.Minion},
		{"Demons", base.Demon, dist.Demon},
	}
	for _, r := range rows {
		if r.base != r.want {
			sb.WriteString(fmt.Sprintf("  %-10s %d (base %d)\n", r.label, r.want, r.base))
		} else {
			sb.WriteString(fmt.Sprintf("  %-10s %d\n", r.label, r.want))
		}
	}
	for _, m := range rules.Modifiers(snap.Script) {
		sb.WriteString(fmt.Sprintf("  modifier: %s [%s]\n", m.CharacterID, m.Description))
	}
	sb.WriteString(fmt.Sprintf("  Total      %d", dist.Total()))
	return sb.String(), nil
}

func titleTeam(team engine.Team) string {
	t := string(team)
	if t == "" {
		return t
	}
	return strings.ToUpper(t[:1]) + t[1:]
}

func characterLabel(s engine.Session, id string) string {
	if ch, ok := s.ResolveCharacter(id); ok {
		return fmt.Sprintf("%s (%s)", ch.Name, ch.Team)
	}
	return id
}

func helpText(topic string) string {
	switch topic {
	case "script":
		return "script list | script load tb | script import \"file.json\" | script export \"file.json\" | script save | script delete <id> | script show"
	case "player":
		return "player add [Name] | player remove Name | player rename Name as: NewName | player toggle Name | player assign Name as: character_id"
	case "bag":
		return "bag add character_id | bag add team_name | bag remove character_id | bag show | bag shuffle | bag reset | draw | confirm | cancel"
	case "setup":
		return "setup show 10 | setup fill 10 | setup players 10"
	}
	topics := []string{
		"script   load, import, export, and manage scripts",
		"player   manage the grimoire roster",
		"bag      edit the character bag and draw from it",
		"setup    distribution calculator and auto-fill",
		"reminder reminder add to: Player label: Text",
		"phase    phase day | next | game reset | view grimoire",
	}
	return "Commands:\n  " + strings.Join(topics, "\n  ") + "\nUse help <topic> for details."
}
