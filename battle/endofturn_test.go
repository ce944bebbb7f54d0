package battle

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FrostyKingzly/PokebotRANKED/status"
)

func TestRunEndOfTurn_AppliesPoisonDamage(t *testing.T) {
	moves, types, items, species, rulesets := loadSampleTables(t)
	engine := NewEngine(moves, types, items, species, rulesets, WithStatusManager(status.NewDefaultManager()))

	c := testCombatant("rattata", []string{"normal"}, 100, "tackle")
	status.NewDefaultManager().ApplyStatus(c.Conditions, status.MajorPoisoned)
	state := &State{
		Trainer:  oneMemberBattler(1, "Ash", c),
		Opponent: oneMemberBattler(2, "Gary", testCombatant("other", []string{"normal"}, 100, "tackle")),
	}
	state.Trainer.ActivePositions = []int{0}
	state.Opponent.ActivePositions = []int{0}

	runEndOfTurn(context.Background(), engine, state)

	assert.Equal(t, 88, c.HP.Current())
}

func TestRunEndOfTurn_LeftoversHealsBelowFullHP(t *testing.T) {
	moves, types, items, species, rulesets := loadSampleTables(t)
	engine := NewEngine(moves, types, items, species, rulesets)

	c := testCombatant("snorlax", []string{"normal"}, 160, "tackle")
	c.HP.Subtract(100)
	item, ok := engine.Items.GetItem("leftovers")
	require.True(t, ok)
	c.HeldItem = item

	state := &State{
		Trainer:  oneMemberBattler(1, "Ash", c),
		Opponent: oneMemberBattler(2, "Gary", testCombatant("other", []string{"normal"}, 100, "tackle")),
	}
	state.Trainer.ActivePositions = []int{0}
	state.Opponent.ActivePositions = []int{0}

	runEndOfTurn(context.Background(), engine, state)

	assert.Equal(t, 70, c.HP.Current())
}

func TestRunEndOfTurn_SkipsFaintedCombatants(t *testing.T) {
	moves, types, items, species, rulesets := loadSampleTables(t)
	engine := NewEngine(moves, types, items, species, rulesets, WithStatusManager(status.NewDefaultManager()))

	c := testCombatant("rattata", []string{"normal"}, 100, "tackle")
	c.HP.Subtract(100)
	state := &State{
		Trainer:  oneMemberBattler(1, "Ash", c),
		Opponent: oneMemberBattler(2, "Gary", testCombatant("other", []string{"normal"}, 100, "tackle")),
	}
	state.Trainer.ActivePositions = []int{0}
	state.Opponent.ActivePositions = []int{0}

	assert.NotPanics(t, func() {
		runEndOfTurn(context.Background(), engine, state)
	})
	assert.Equal(t, 0, c.HP.Current())
}

func TestDecrementWeatherAndTerrain_ExpiresAtZero(t *testing.T) {
	state := &State{
		Trainer:      oneMemberBattler(1, "Ash", testCombatant("a", []string{"normal"}, 100, "tackle")),
		Opponent:     oneMemberBattler(2, "Gary", testCombatant("b", []string{"normal"}, 100, "tackle")),
		Weather:      "rain",
		WeatherTurns: 1,
	}
	state.Trainer.ActivePositions = []int{0}
	state.Opponent.ActivePositions = []int{0}

	decrementWeatherAndTerrain(state)

	assert.Equal(t, "", state.Weather)
	assert.Equal(t, 0, state.WeatherTurns)
	assert.Contains(t, state.Messages()[0], "subsided")
}
