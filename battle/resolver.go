package battle

import (
	"context"
	"fmt"

	"github.com/FrostyKingzly/PokebotRANKED/battlerr"
	"github.com/FrostyKingzly/PokebotRANKED/rng"
)

// Reserved move id submitted when every move in a combatant's move list is
// out of PP.
const MoveStruggle = "struggle"

// TurnResult is the outcome of resolving one turn.
type TurnResult struct {
	Success        bool
	TurnNumber     int
	Messages       []string
	SwitchMessages []string
	IsOver         bool
	Winner         Winner
}

// ProcessTurn drains a battle's pending actions: generates AI actions,
// orders them via the scheduler, dispatches each in turn, runs end-of-turn
// effects, resolves any pending AI forced switch, and checks the terminal
// condition.
func (r *Registry) ProcessTurn(ctx context.Context, id string) (TurnResult, error) {
	state, err := r.Get(id)
	if err != nil {
		return TurnResult{}, err
	}
	if state.IsOver {
		return TurnResult{}, battlerr.BattleOver()
	}

	generateAIActions(state, r.engine)

	state.TurnLog = nil
	state.SwitchLog = nil
	state.Phase = PhaseResolving

	actions := make([]Action, 0, len(state.PendingActions))
	for _, a := range state.PendingActions {
		actions = append(actions, a)
	}
	ordered := orderActions(ctx, state, actions, r.engine.Moves, r.engine.Calculator, r.engine.ItemFX)

	for _, action := range ordered {
		if state.IsOver || state.WildDazed {
			break
		}
		battler := state.BattlerFor(action.BattlerID)
		if battler == nil || !battler.HasUsable() {
			continue
		}
		if state.Phase == PhaseForcedSwitch && state.ForcedSwitchBattlerID == action.BattlerID && action.Kind != ActionSwitch {
			continue
		}
		dispatch(ctx, r.engine, state, battler, action)
	}

	if !state.WildDazed {
		runEndOfTurn(ctx, r.engine, state)
	}

	if state.Phase == PhaseForcedSwitch && state.PendingAISwitchIndex >= 0 {
		battler := state.BattlerFor(state.ForcedSwitchBattlerID)
		if battler != nil && battler.IsAI {
			for _, m := range performSwitch(r.engine, state, battler, 0, state.PendingAISwitchIndex, true) {
				state.appendSwitchLog(m)
			}
			state.Phase = PhaseWaitingActions
			state.ForcedSwitchBattlerID = 0
		}
		state.PendingAISwitchIndex = -1
	}

	checkTerminal(state)

	result := TurnResult{
		Success:        true,
		TurnNumber:     state.TurnNumber,
		Messages:       state.Messages(),
		SwitchMessages: state.SwitchMessages(),
		IsOver:         state.IsOver,
		Winner:         state.Winner,
	}

	state.PendingActions = make(map[int]Action)
	state.TurnNumber++
	if state.Phase == PhaseResolving {
		state.Phase = PhaseWaitingActions
	}

	return result, nil
}

// generateAIActions picks a uniformly-random usable move for any AI side
// without a stored action, falling back to Struggle when every move is out
// of PP.
func generateAIActions(state *State, engine *Engine) {
	for _, b := range []*Battler{state.Trainer, state.Opponent} {
		if !b.IsAI {
			continue
		}
		if _, ok := state.PendingActions[b.ID]; ok {
			continue
		}
		active := b.Active()
		if len(active) == 0 {
			continue
		}
		c := active[0]

		usable := make([]int, 0, len(c.Moves))
		for i, m := range c.Moves {
			if m.PP != nil && m.PP.Current() > 0 {
				usable = append(usable, i)
			}
		}

		moveID := MoveStruggle
		if len(usable) > 0 {
			pick := usable[rng.Pick(state.RNG, len(usable))]
			moveID = c.Moves[pick].MoveID
		}

		state.PendingActions[b.ID] = Action{BattlerID: b.ID, Kind: ActionMove, MoveID: moveID, TargetSlot: 0}
	}
}

func dispatch(ctx context.Context, engine *Engine, state *State, battler *Battler, action Action) {
	switch action.Kind {
	case ActionMove:
		executeMove(ctx, engine, state, battler, action)
	case ActionSwitch:
		for _, m := range performSwitch(engine, state, battler, 0, action.PartySlot, false) {
			state.appendSwitchLog(m)
		}
	case ActionFlee:
		executeFlee(state, battler)
	case ActionItem:
		state.appendLog(fmt.Sprintf("Used %s!", action.ItemID))
	}
}

func firstActiveIndex(b *Battler) int {
	if len(b.ActivePositions) == 0 {
		return 0
	}
	return b.ActivePositions[0]
}
