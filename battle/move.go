package battle

import (
	"context"
	"fmt"

	"github.com/FrostyKingzly/PokebotRANKED/bus"
	"github.com/FrostyKingzly/PokebotRANKED/rng"
	"github.com/FrostyKingzly/PokebotRANKED/status"
)

// executeMove implements §4.5.1 move execution.
func executeMove(ctx context.Context, engine *Engine, state *State, attackerSide *Battler, action Action) {
	attackerIdx := firstActiveIndex(attackerSide)
	attacker := attackerSide.Party[attackerIdx]

	defenderSide := state.OpponentOf(action.BattlerID)
	defenderActive := defenderSide.Active()
	target := action.TargetSlot
	if target < 0 || target >= len(defenderActive) {
		target = 0
	}
	if len(defenderActive) == 0 || !defenderActive[target].IsUsable() {
		return
	}
	defender := defenderActive[target]

	if ok, msg := engine.Status.CanMove(attacker.Conditions, state.RNG); !ok {
		state.appendLog(fmt.Sprintf("%s %s", attacker.Species, msg))
		return
	}

	move, ok := engine.Moves.GetMove(action.MoveID)
	if !ok {
		engine.Logger.Warn("move: unknown move id submitted", "move_id", action.MoveID, "attacker", attacker.Species)
		state.appendLog(fmt.Sprintf("%s tried to use an unknown move", attacker.Species))
		return
	}

	if allowed, reason := engine.ItemFX.CheckMoveRestriction(attacker.HeldItem, attacker.ItemState, string(move.Category), move.ID); !allowed {
		state.appendLog(fmt.Sprintf("%s %s", attacker.Species, reason))
		return
	}

	ruleset := engine.Rulesets.ResolveDefault(state.RulesetTag)
	if allowed, reason := engine.Rulesets.IsMoveAllowed(move.ID, ruleset); !allowed {
		state.appendLog(reason)
		return
	}

	engine.ItemFX.RegisterChoiceLock(attacker.HeldItem, attacker.ItemState, move.ID)

	if slot := attacker.MoveSlotByID(move.ID); slot != nil {
		slot.PP.Subtract(1)
	}

	damage, isCrit, effectiveness, calcMessages := engine.Calculator.CalculateDamage(ctx, attacker, defender, move.ID, state.Weather, state.Terrain, state)
	for _, m := range calcMessages {
		state.appendLog(m)
	}

	powerMult := engine.ItemFX.PowerMultiplier(attacker.HeldItem, move.Type, string(move.Category))
	damage = int(float64(damage) * powerMult)
	defenseMult := engine.ItemFX.DefenseMultiplier(defender.HeldItem, string(move.Category))
	damage = int(float64(damage) * defenseMult)

	if damage >= defender.HP.Current() && defender.Conditions.HasVolatile(status.VolatileEndure) && defender.HP.Current() > 1 {
		damage = defender.HP.Current() - 1
		state.appendLog(fmt.Sprintf("%s endured the hit", defender.Species))
	}

	if capped, activated := engine.ItemFX.CheckFocusSurvival(defender.HeldItem, defender.ItemState, state.RNG, damage, defender.HP.Current(), defender.HP.Max()); activated {
		damage = capped
		name := "item"
		if defender.HeldItem != nil {
			name = defender.HeldItem.Name
		}
		state.appendLog(fmt.Sprintf("%s hung on using its %s", defender.Species, name))
	}

	defender.HP.Subtract(damage)
	state.appendLog(moveNarration(attacker, defender, move.Name, damage, isCrit, effectiveness))

	_ = state.Bus.Publish(bus.TopicDamageDealt, bus.DamageDealtEvent{
		AttackerBattlerID: attackerSide.ID,
		DefenderBattlerID: defenderSide.ID,
		Amount:            damage,
	})

	if recoil, msg := engine.ItemFX.AfterDamageEffects(attacker.HeldItem, attacker.HP.Max()); recoil > 0 {
		attacker.HP.Subtract(recoil)
		state.appendLog(fmt.Sprintf("%s %s", attacker.Species, msg))
	}

	handleFaintOrDaze(engine, state, defenderSide, target, defender)
	if attacker.HP.Current() <= 0 {
		handleFaintOrDaze(engine, state, attackerSide, 0, attacker)
	}
}

func moveNarration(attacker, defender *Combatant, moveName string, damage int, isCrit bool, effectiveness float64) string {
	msg := fmt.Sprintf("%s used %s! It dealt %d damage to %s", attacker.Species, moveName, damage, defender.Species)
	if isCrit {
		msg += " (critical hit!)"
	}
	switch {
	case effectiveness > 1:
		msg += " It's super effective!"
	case effectiveness > 0 && effectiveness < 1:
		msg += " It's not very effective..."
	case effectiveness == 0:
		msg += " It had no effect."
	}
	return msg
}

// performSwitch implements §4.5.2 switch execution.
func performSwitch(engine *Engine, state *State, side *Battler, activeIdx, targetSlot int, forced bool) []string {
	var messages []string

	if activeIdx < len(side.ActivePositions) {
		outgoingIdx := side.ActivePositions[activeIdx]
		if outgoingIdx >= 0 && outgoingIdx < len(side.Party) {
			outgoing := side.Party[outgoingIdx]
			outgoing.ItemState.ClearOnSwitchOut()
			outgoing.Conditions.ClearAllVolatiles()
			if !forced {
				messages = append(messages, fmt.Sprintf("%s withdrew %s!", side.DisplayName, outgoing.Species))
			}
		}
		side.ActivePositions[activeIdx] = targetSlot
	}

	incoming := side.Party[targetSlot]
	if forced {
		messages = append(messages, fmt.Sprintf("%s sent out %s!", side.DisplayName, incoming.Species))
	} else {
		messages = append(messages, fmt.Sprintf("Go, %s!", incoming.Species))
	}

	_ = state.Bus.Publish(bus.TopicCombatantEntered, bus.CombatantEnteredEvent{BattlerID: side.ID, Slot: targetSlot})

	return messages
}

// handleFaintOrDaze implements §4.5.3.
func handleFaintOrDaze(engine *Engine, state *State, defenderSide *Battler, activeIdx int, defender *Combatant) {
	if defender.HP.Current() > 0 {
		return
	}

	if state.Mode == ModeWild && defenderSide == state.Opponent {
		defender.HP.SetCurrent(1)
		state.WildDazed = true
		state.Phase = PhaseDazed
		return
	}

	state.appendLog(fmt.Sprintf("%s fainted!", defender.Species))

	_ = state.Bus.Publish(bus.TopicFaint, bus.FaintEvent{BattlerID: defenderSide.ID, Slot: defenderSide.ActivePositions[activeIdx]})

	if !defenderSide.HasUsable() {
		checkTerminal(state)
		return
	}

	faintedSlot := defenderSide.ActivePositions[activeIdx]
	if defenderSide.IsAI {
		replacement := defenderSide.FirstUsableBenchIndex(faintedSlot)
		if replacement >= 0 {
			state.Phase = PhaseForcedSwitch
			state.ForcedSwitchBattlerID = defenderSide.ID
			state.PendingAISwitchIndex = replacement
		} else {
			checkTerminal(state)
		}
		return
	}

	state.Phase = PhaseForcedSwitch
	state.ForcedSwitchBattlerID = defenderSide.ID
}

// executeFlee implements the flee half of §4.5.4.
func executeFlee(state *State, side *Battler) {
	if state.Mode != ModeWild {
		state.appendLog(fmt.Sprintf("%s can't flee from a %s battle!", side.DisplayName, state.Mode))
		return
	}
	if rng.Chance(state.RNG, 0.5) {
		state.IsOver = true
		state.Fled = true
		state.Winner = WinnerNone
		state.appendLog(fmt.Sprintf("%s fled from battle!", side.DisplayName))
		return
	}
	state.appendLog("Can't escape!")
}

// checkTerminal implements §4.5.5.
func checkTerminal(state *State) {
	trainerUsable := state.Trainer.HasUsable()
	opponentUsable := state.Opponent.HasUsable()

	switch {
	case !trainerUsable && !opponentUsable:
		state.IsOver = true
		state.Winner = WinnerDraw
	case !opponentUsable:
		state.IsOver = true
		state.Winner = WinnerTrainer
	case !trainerUsable:
		state.IsOver = true
		state.Winner = WinnerOpponent
	}
}
