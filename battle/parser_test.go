package battle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FrostyKingzly/PokebotRANKED/data"
)

func TestParseCommand_SwitchIntentKeywords(t *testing.T) {
	moves, err := data.LoadMovesDB([]byte(data.SampleMoves))
	require.NoError(t, err)
	c := testCombatant("bulbasaur", []string{"grass"}, 100, "tackle")

	for _, text := range []string{"switch to charmander", "swap pokemon", "go charmander!"} {
		action := ParseCommand(text, 1, c, moves)
		require.NotNil(t, action, text)
		assert.Equal(t, ActionSwitch, action.Kind)
		assert.Equal(t, -1, action.PartySlot)
	}
}

func TestParseCommand_MatchesMoveID(t *testing.T) {
	moves, err := data.LoadMovesDB([]byte(data.SampleMoves))
	require.NoError(t, err)
	c := testCombatant("charmander", []string{"fire"}, 100, "ember", "growl")

	action := ParseCommand("use ember", 1, c, moves)

	require.NotNil(t, action)
	assert.Equal(t, ActionMove, action.Kind)
	assert.Equal(t, "ember", action.MoveID)
}

func TestParseCommand_MatchesMoveNameCaseInsensitive(t *testing.T) {
	moves, err := data.LoadMovesDB([]byte(data.SampleMoves))
	require.NoError(t, err)
	c := testCombatant("rattata", []string{"normal"}, 100, "quick_attack")

	action := ParseCommand("Quick Attack!", 1, c, moves)

	require.NotNil(t, action)
	assert.Equal(t, "quick_attack", action.MoveID)
}

func TestParseCommand_ReturnsNilOnNoMatch(t *testing.T) {
	moves, err := data.LoadMovesDB([]byte(data.SampleMoves))
	require.NoError(t, err)
	c := testCombatant("charmander", []string{"fire"}, 100, "ember")

	assert.Nil(t, ParseCommand("do a barrel roll", 1, c, moves))
}
