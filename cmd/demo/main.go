// Package main demonstrates a full battle from start to terminal condition
// using the bundled sample data tables.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/FrostyKingzly/PokebotRANKED/battle"
	"github.com/FrostyKingzly/PokebotRANKED/data"
	"github.com/FrostyKingzly/PokebotRANKED/resources"
	"github.com/FrostyKingzly/PokebotRANKED/status"
)

func main() {
	moves, err := data.LoadMovesDB([]byte(data.SampleMoves))
	if err != nil {
		log.Fatalf("load moves: %v", err)
	}
	types, err := data.LoadTypeChart([]byte(data.SampleTypeChart))
	if err != nil {
		log.Fatalf("load type chart: %v", err)
	}
	items, err := data.LoadItemsDB([]byte(data.SampleItems))
	if err != nil {
		log.Fatalf("load items: %v", err)
	}
	species, err := data.LoadSpeciesDB([]byte(data.SampleSpecies))
	if err != nil {
		log.Fatalf("load species: %v", err)
	}
	rulesets, err := data.LoadRulesetHandler([]byte(data.SampleRulesets))
	if err != nil {
		log.Fatalf("load rulesets: %v", err)
	}

	engine := battle.NewEngine(moves, types, items, species, rulesets,
		battle.WithStatusManager(status.NewDefaultManager()),
		battle.WithRNGSeed(42),
	)
	registry := battle.NewRegistry(engine)

	charmander := mustCombatant(species, 4, "ember", "growl")
	squirtle := mustCombatant(species, 7, "tackle", "growl")

	trainer := &battle.Battler{ID: 1, DisplayName: "Ash", Party: []*battle.Combatant{charmander}}
	opponent := &battle.Battler{ID: 2, DisplayName: "Misty", Party: []*battle.Combatant{squirtle}}

	id, err := registry.StartBattle(battle.StartBattleInput{
		Trainer:  trainer,
		Opponent: opponent,
		Mode:     battle.ModeTrainer,
		Format:   battle.FormatSingles,
	})
	if err != nil {
		log.Fatalf("start battle: %v", err)
	}

	fmt.Println("=== Battle Start ===")
	fmt.Printf("%s sends out %s! %s sends out %s!\n\n", trainer.DisplayName, charmander.Species, opponent.DisplayName, squirtle.Species)

	for turn := 1; ; turn++ {
		if _, err := registry.RegisterAction(id, 1, battle.Action{BattlerID: 1, Kind: battle.ActionMove, MoveID: "ember"}); err != nil {
			log.Fatalf("register trainer action: %v", err)
		}
		if _, err := registry.RegisterAction(id, 2, battle.Action{BattlerID: 2, Kind: battle.ActionMove, MoveID: "tackle"}); err != nil {
			log.Fatalf("register opponent action: %v", err)
		}

		result, err := registry.ProcessTurn(context.Background(), id)
		if err != nil {
			log.Fatalf("process turn %d: %v", turn, err)
		}

		fmt.Printf("--- Turn %d ---\n", turn)
		for _, msg := range result.Messages {
			fmt.Println(msg)
		}
		fmt.Println()

		if result.IsOver {
			fmt.Printf("=== Battle Over: %s wins ===\n", result.Winner)
			return
		}
	}
}

func mustCombatant(db data.SpeciesDB, dexNumber int, moveIDs ...string) *battle.Combatant {
	sp, ok := db.GetSpecies(dexNumber)
	if !ok {
		log.Fatalf("unknown species %d", dexNumber)
	}

	slots := make([]battle.MoveSlot, len(moveIDs))
	for i, id := range moveIDs {
		slots[i] = battle.MoveSlot{MoveID: id, PP: resources.NewPool(20)}
	}

	stats := battle.Stats{
		HP:        sp.BaseStats.HP,
		Attack:    sp.BaseStats.Attack,
		Defense:   sp.BaseStats.Defense,
		SpAttack:  sp.BaseStats.SpAttack,
		SpDefense: sp.BaseStats.SpDefense,
		Speed:     sp.BaseStats.Speed,
	}

	return battle.NewCombatant(sp.Name, 50, stats, sp.Types, slots)
}
