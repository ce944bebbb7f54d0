package data_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FrostyKingzly/PokebotRANKED/data"
)

func TestLoadMovesDB(t *testing.T) {
	db, err := data.LoadMovesDB([]byte(data.SampleMoves))
	require.NoError(t, err)

	move, ok := db.GetMove("tackle")
	require.True(t, ok)
	assert.Equal(t, "Tackle", move.Name)
	assert.Equal(t, data.CategoryPhysical, move.Category)

	_, ok = db.GetMove("nonexistent")
	assert.False(t, ok)
}

func TestLoadTypeChart_Multiplier(t *testing.T) {
	chart, err := data.LoadTypeChart([]byte(data.SampleTypeChart))
	require.NoError(t, err)

	assert.Equal(t, 2.0, chart.Multiplier("fire", "grass"))
	assert.Equal(t, 0.5, chart.Multiplier("fire", "water"))
	assert.Equal(t, 1.0, chart.Multiplier("fire", "unknown_type"))
	// Lookup is case-insensitive.
	assert.Equal(t, 2.0, chart.Multiplier("Fire", "Grass"))
}

func TestLoadItemsDB(t *testing.T) {
	db, err := data.LoadItemsDB([]byte(data.SampleItems))
	require.NoError(t, err)

	item, ok := db.GetItem("focus_sash")
	require.True(t, ok)
	assert.True(t, item.PreventsKO)
	assert.True(t, item.OneTimeUse)
}

func TestLoadSpeciesDB(t *testing.T) {
	db, err := data.LoadSpeciesDB([]byte(data.SampleSpecies))
	require.NoError(t, err)

	sp, ok := db.GetSpecies(1)
	require.True(t, ok)
	assert.Equal(t, "Bulbasaur", sp.Name)
	assert.Equal(t, []string{"grass", "poison"}, sp.Types)
}

func TestLoadRulesetHandler_BansStruggleUnderUbers(t *testing.T) {
	handler, err := data.LoadRulesetHandler([]byte(data.SampleRulesets))
	require.NoError(t, err)

	ubers := handler.ResolveDefault("ubers")
	allowed, reason := handler.IsMoveAllowed("struggle", ubers)
	assert.False(t, allowed)
	assert.NotEmpty(t, reason)

	standard := handler.ResolveDefault("standard")
	allowed2, _ := handler.IsMoveAllowed("struggle", standard)
	assert.True(t, allowed2)
}

func TestLoadRulesetHandler_UnknownTagHasNoBans(t *testing.T) {
	handler, err := data.LoadRulesetHandler([]byte(data.SampleRulesets))
	require.NoError(t, err)

	rs := handler.ResolveDefault("homebrew")
	allowed, _ := handler.IsMoveAllowed("tackle", rs)
	assert.True(t, allowed)
}
