package battle_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/FrostyKingzly/PokebotRANKED/battle"
	"github.com/FrostyKingzly/PokebotRANKED/battle/mock"
	"github.com/FrostyKingzly/PokebotRANKED/data"
	"github.com/FrostyKingzly/PokebotRANKED/resources"
)

// TestProcessTurn_UsesInjectedDamageCalculator exercises the resolver's move
// dispatch against a gomock-generated DamageCalculator double, confirming
// CalculateDamage is invoked once per attacking side (twice total, one
// tackle each way) with the arguments the resolver is documented to pass.
func TestProcessTurn_UsesInjectedDamageCalculator(t *testing.T) {
	ctrl := gomock.NewController(t)
	calc := mock.NewMockDamageCalculator(ctrl)

	moves, err := data.LoadMovesDB([]byte(data.SampleMoves))
	require.NoError(t, err)
	types, err := data.LoadTypeChart([]byte(data.SampleTypeChart))
	require.NoError(t, err)
	items, err := data.LoadItemsDB([]byte(data.SampleItems))
	require.NoError(t, err)
	species, err := data.LoadSpeciesDB([]byte(data.SampleSpecies))
	require.NoError(t, err)
	rulesets, err := data.LoadRulesetHandler([]byte(data.SampleRulesets))
	require.NoError(t, err)

	calc.EXPECT().
		Speed(gomock.Any(), gomock.Any()).
		Return(50).
		AnyTimes()
	calc.EXPECT().
		CalculateDamage(gomock.Any(), gomock.Any(), gomock.Any(), "tackle", "", "", gomock.Any()).
		Return(15, false, 1.0, nil).
		Times(2)

	engine := battle.NewEngine(moves, types, items, species, rulesets, battle.WithCalculator(calc))
	registry := battle.NewRegistry(engine)

	attacker := battle.NewCombatant("attacker", 50,
		battle.Stats{HP: 100, Attack: 50, Defense: 50, SpAttack: 50, SpDefense: 50, Speed: 50},
		[]string{"normal"}, []battle.MoveSlot{{MoveID: "tackle", PP: resources.NewPool(35)}})
	defender := battle.NewCombatant("defender", 50,
		battle.Stats{HP: 100, Attack: 50, Defense: 50, SpAttack: 50, SpDefense: 50, Speed: 1},
		[]string{"normal"}, []battle.MoveSlot{{MoveID: "tackle", PP: resources.NewPool(35)}})

	id, err := registry.StartBattle(battle.StartBattleInput{
		Trainer:  &battle.Battler{ID: 1, DisplayName: "Ash", Party: []*battle.Combatant{attacker}},
		Opponent: &battle.Battler{ID: 2, DisplayName: "Gary", Party: []*battle.Combatant{defender}},
		Mode:     battle.ModeTrainer,
		Format:   battle.FormatSingles,
	})
	require.NoError(t, err)

	_, err = registry.RegisterAction(id, 1, battle.Action{BattlerID: 1, Kind: battle.ActionMove, MoveID: "tackle"})
	require.NoError(t, err)
	_, err = registry.RegisterAction(id, 2, battle.Action{BattlerID: 2, Kind: battle.ActionMove, MoveID: "tackle"})
	require.NoError(t, err)

	_, err = registry.ProcessTurn(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, 85, defender.HP.Current())
	assert.Equal(t, 85, attacker.HP.Current())
}
