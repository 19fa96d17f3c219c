package session

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suderio/grimoire/internal/catalog"
	"github.com/suderio/grimoire/internal/engine"
)

func newTestShell(t *testing.T) *Shell {
	t.Helper()
	cat, err := catalog.Load()
	require.NoError(t, err)

	store := newFileBackedStore(t, filepath.Join(t.TempDir(), "session.json"))
	shell, err := NewShell(store, cat)
	require.NoError(t, err)
	return shell
}

func mustExec(t *testing.T, sh *Shell, input string) string {
	t.Helper()
	out, err := sh.Execute(input)
	require.NoError(t, err, "command %q", input)
	return out
}

func TestShell_ScriptLoadOfficial(t *testing.T) {
	sh := newTestShell(t)

	out := mustExec(t, sh, "script load tb")
	assert.Contains(t, out, "Trouble Brewing")

	snap := sh.Store().Snapshot()
	require.NotNil(t, snap.Script)
	assert.True(t, snap.Script.Contains("imp"))
}

func TestShell_ScriptLoadUnknown(t *testing.T) {
	sh := newTestShell(t)

	_, err := sh.Execute("script load nonsense")
	assert.Error(t, err)
}

func TestShell_ScriptSaveAndLoadFromLibrary(t *testing.T) {
	sh := newTestShell(t)
	mustExec(t, sh, "script load tb")
	mustExec(t, sh, "script save")

	snap := sh.Store().Snapshot()
	require.Len(t, snap.SavedScripts, 1)
	savedID := snap.SavedScripts[0].ID

	mustExec(t, sh, "script load snv")
	out := mustExec(t, sh, `script load "`+savedID+`"`)
	assert.Contains(t, out, "Trouble Brewing")
}

func TestShell_PlayerLifecycle(t *testing.T) {
	sh := newTestShell(t)

	mustExec(t, sh, "player add Alice")
	mustExec(t, sh, "player add")

	snap := sh.Store().Snapshot()
	require.Len(t, snap.Players, 2)
	assert.Equal(t, "Alice", snap.Players[0].Name)
	assert.Equal(t, "Player 2", snap.Players[1].Name)

	mustExec(t, sh, "player rename Alice as: Bob")
	mustExec(t, sh, "player toggle Bob")

	snap = sh.Store().Snapshot()
	assert.Equal(t, "Bob", snap.Players[0].Name)
	assert.False(t, snap.Players[0].IsAlive)

	mustExec(t, sh, `player remove "Player 2"`)
	assert.Len(t, sh.Store().Snapshot().Players, 1)
}

func TestShell_PlayerUnknownName(t *testing.T) {
	sh := newTestShell(t)

	_, err := sh.Execute("player toggle Ghost")
	assert.Error(t, err)
}

func TestShell_AssignCharacter(t *testing.T) {
	sh := newTestShell(t)
	mustExec(t, sh, "script load tb")
	mustExec(t, sh, "player add Alice")

	out := mustExec(t, sh, "player assign Alice as: imp")
	assert.Contains(t, out, "Imp")

	snap := sh.Store().Snapshot()
	assert.Equal(t, "imp", snap.Players[0].CharacterID)
}

func TestShell_BagAndDrawFlow(t *testing.T) {
	sh := newTestShell(t)
	mustExec(t, sh, "script load tb")
	mustExec(t, sh, "bag add imp")
	mustExec(t, sh, "bag add slayer")

	engine.MockRand([]int{0})
	defer engine.ResetMockRand()

	mustExec(t, sh, "draw")
	snap := sh.Store().Snapshot()
	assert.Equal(t, "imp", snap.PendingDraw)

	_, err := sh.Execute("draw")
	assert.Error(t, err, "second draw while pending must be rejected")

	mustExec(t, sh, "confirm")
	snap = sh.Store().Snapshot()
	assert.Equal(t, []string{"slayer"}, snap.Bag)
	assert.Equal(t, []string{"imp"}, snap.Drawn)

	mustExec(t, sh, "bag reset")
	snap = sh.Store().Snapshot()
	assert.Empty(t, snap.Drawn)
	assert.Len(t, snap.Bag, 2)
}

func TestShell_BagTeamFill(t *testing.T) {
	sh := newTestShell(t)
	mustExec(t, sh, "script load tb")

	mustExec(t, sh, "bag add minion")
	snap := sh.Store().Snapshot()
	minions := snap.Script.Team(engine.TeamMinion)
	assert.Len(t, snap.Bag, len(minions))

	mustExec(t, sh, "bag add imp")
	mustExec(t, sh, "bag remove minion")
	assert.Equal(t, []string{"imp"}, sh.Store().Snapshot().Bag)
}

func TestShell_DrawEmptyBag(t *testing.T) {
	sh := newTestShell(t)
	mustExec(t, sh, "script load tb")

	_, err := sh.Execute("draw")
	assert.Error(t, err)
}

func TestShell_BagAddOutsideScript(t *testing.T) {
	sh := newTestShell(t)
	mustExec(t, sh, "script load tb")

	_, err := sh.Execute("bag add fanggu")
	assert.Error(t, err)
}

func TestShell_Reminders(t *testing.T) {
	sh := newTestShell(t)
	mustExec(t, sh, "player add Alice")

	mustExec(t, sh, "reminder add to: Alice label: poisoned")
	snap := sh.Store().Snapshot()
	assert.Equal(t, []string{"poisoned"}, snap.Players[0].Reminders)

	mustExec(t, sh, "reminder remove to: Alice index: 0")
	assert.Empty(t, sh.Store().Snapshot().Players[0].Reminders)
}

func TestShell_SetupFlow(t *testing.T) {
	sh := newTestShell(t)
	mustExec(t, sh, "script load tb")

	mustExec(t, sh, "setup players 10")
	snap := sh.Store().Snapshot()
	require.Len(t, snap.Players, 10)
	assert.Equal(t, "Player 10", snap.Players[9].Name)

	out := mustExec(t, sh, "setup show")
	assert.Contains(t, out, "Setup for 10 players")

	mustExec(t, sh, "setup fill 10")
	assert.Len(t, sh.Store().Snapshot().Bag, 10)
}

func TestShell_SetupWithoutCount(t *testing.T) {
	sh := newTestShell(t)

	_, err := sh.Execute("setup show")
	assert.Error(t, err, "no players seated and no count given")
}

func TestShell_GameReset(t *testing.T) {
	sh := newTestShell(t)
	mustExec(t, sh, "script load tb")
	mustExec(t, sh, "player add Alice")
	mustExec(t, sh, "phase day")
	mustExec(t, sh, "next")

	mustExec(t, sh, "game reset")
	snap := sh.Store().Snapshot()
	assert.NotNil(t, snap.Script)
	assert.Empty(t, snap.Players)
	assert.Equal(t, engine.PhaseSetup, snap.Phase)
	assert.Equal(t, 0, snap.DayNumber)
}

func TestShell_ParseErrorGuidance(t *testing.T) {
	sh := newTestShell(t)

	_, err := sh.Execute("bag explode")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bag")
}

func TestShell_Help(t *testing.T) {
	sh := newTestShell(t)

	out := mustExec(t, sh, "help")
	assert.Contains(t, out, "Commands")

	out = mustExec(t, sh, "help bag")
	assert.Contains(t, out, "bag add")
}
