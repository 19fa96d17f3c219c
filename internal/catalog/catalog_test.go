package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suderio/grimoire/internal/engine"
)

func TestLoad_EmbeddedDataset(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)
	assert.NotEmpty(t, cat.Characters())
}

func TestCharacter_CaseInsensitiveLookup(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)

	ch, ok := cat.Character("IMP")
	require.True(t, ok)
	assert.Equal(t, "imp", ch.ID)
	assert.Equal(t, engine.TeamDemon, ch.Team)

	_, ok = cat.Character("not-a-character")
	assert.False(t, ok)
}

func TestScriptKeys_StableOrder(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)

	keys := cat.ScriptKeys()
	assert.Contains(t, keys, "tb")
	assert.Contains(t, keys, "snv")
	assert.Equal(t, keys, cat.ScriptKeys())
}

func TestScript_ExpandsOfficialDefinition(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)

	sc, ok := cat.Script("tb")
	require.True(t, ok)
	assert.Equal(t, "Trouble Brewing", sc.Name)
	assert.True(t, sc.Contains("imp"))
	assert.True(t, sc.Contains("slayer"))

	info, _ := cat.ScriptInfo("tb")
	assert.Len(t, sc.Characters, len(info.Characters))
}

func TestScript_UnknownKey(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)

	_, ok := cat.Script("ghost")
	assert.False(t, ok)
}
