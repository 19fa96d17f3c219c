package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suderio/grimoire/internal/engine"
)

func scriptWith(ids ...string) *engine.Script {
	chars := make([]engine.Character, 0, len(ids))
	for _, id := range ids {
		chars = append(chars, engine.Character{ID: id, Name: id})
	}
	return &engine.Script{Name: "test", Characters: chars}
}

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	r, err := NewRegistry()
	require.NoError(t, err)
	return r
}

func TestModifiers_InactiveWithoutSetupCharacters(t *testing.T) {
	assert.Empty(t, Modifiers(scriptWith("imp", "chef")))
	assert.False(t, HasModifiers(scriptWith("imp")))
	assert.Empty(t, Modifiers(nil))
}

func TestModifiedDistribution_NoModifiersMatchesBase(t *testing.T) {
	r := newTestRegistry(t)

	d, err := r.ModifiedDistribution(scriptWith("imp", "chef"), 10)
	require.NoError(t, err)
	assert.Equal(t, engine.BaseDistribution(10), d)
}

func TestModifiedDistribution_Baron(t *testing.T) {
	r := newTestRegistry(t)

	d, err := r.ModifiedDistribution(scriptWith("imp", "baron"), 10)
	require.NoError(t, err)
	assert.Equal(t, engine.Distribution{Townsfolk: 5, Outsider: 2, Minion: 2, Demon: 1}, d)
}

func TestModifiedDistribution_Fanggu(t *testing.T) {
	r := newTestRegistry(t)

	d, err := r.ModifiedDistribution(scriptWith("fanggu"), 9)
	require.NoError(t, err)
	assert.Equal(t, engine.Distribution{Townsfolk: 4, Outsider: 3, Minion: 1, Demon: 1}, d)
}

func TestModifiedDistribution_VigormortisClampsAtZero(t *testing.T) {
	r := newTestRegistry(t)

	// 10 players has zero outsiders; the subtraction folds into townsfolk.
	d, err := r.ModifiedDistribution(scriptWith("vigormortis"), 10)
	require.NoError(t, err)
	assert.Equal(t, engine.Distribution{Townsfolk: 7, Outsider: 0, Minion: 2, Demon: 1}, d)
}

func TestModifiedDistribution_Stacks(t *testing.T) {
	r := newTestRegistry(t)

	d, err := r.ModifiedDistribution(scriptWith("baron", "fanggu"), 12)
	require.NoError(t, err)
	assert.Equal(t, engine.Distribution{Townsfolk: 4, Outsider: 5, Minion: 2, Demon: 1}, d)
}

func TestEval_ScriptVariable(t *testing.T) {
	r := newTestRegistry(t)

	out, err := r.Eval(`"baron" in script`, map[string]any{
		"script": []string{"imp", "baron"},
	})
	require.NoError(t, err)
	assert.Equal(t, true, out)
}
