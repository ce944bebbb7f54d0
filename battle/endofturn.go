package battle

import (
	"context"
	"fmt"
)

// runEndOfTurn implements §4.5 step 5: status damage, held-item end-of-turn
// heals, weather damage/heal, and weather/terrain timer decrement, for every
// currently active combatant on both sides.
func runEndOfTurn(ctx context.Context, engine *Engine, state *State) {
	for _, side := range []*Battler{state.Trainer, state.Opponent} {
		for _, c := range side.Active() {
			if !c.IsUsable() {
				continue
			}

			if dmg, msgs := engine.Status.EndOfTurnEffects(c.Conditions, c.HP, c.Species); dmg > 0 {
				for _, m := range msgs {
					state.appendLog(m)
				}
			}
			if !c.IsUsable() {
				continue
			}

			if heal, msg := engine.ItemFX.EndOfTurnHeal(c.HeldItem, c.HP.Current(), c.HP.Max()); heal > 0 {
				c.HP.Add(heal)
				state.appendLog(fmt.Sprintf("%s %s", c.Species, msg))
			}

			for _, m := range engine.Abilities.ApplyWeatherDamage(ctx, c, state) {
				state.appendLog(m)
			}
			for _, m := range engine.Abilities.ApplyWeatherHealing(ctx, c, state) {
				state.appendLog(m)
			}
		}
	}

	decrementWeatherAndTerrain(state)
}

func decrementWeatherAndTerrain(state *State) {
	if state.Weather != "" && state.WeatherTurns > 0 {
		state.WeatherTurns--
		if state.WeatherTurns == 0 {
			state.appendLog(fmt.Sprintf("The %s subsided.", state.Weather))
			state.Weather = ""
		}
	}
	if state.Terrain != "" && state.TerrainTurns > 0 {
		state.TerrainTurns--
		if state.TerrainTurns == 0 {
			state.appendLog(fmt.Sprintf("The %s faded.", state.Terrain))
			state.Terrain = ""
		}
	}
}
