package battle

import (
	"context"
	"sort"

	"github.com/FrostyKingzly/PokebotRANKED/data"
	"github.com/FrostyKingzly/PokebotRANKED/itemfx"
)

// scheduledAction pairs an Action with the sort keys the scheduler computed
// for it, so ties can be inspected and the original submission order
// recovered for a stable sort.
type scheduledAction struct {
	action     Action
	class      int
	speed      int
	insertedAt int
}

// orderActions sorts actions by (class, speed) descending, a pure function
// that never mutates battle state. Equal (class, speed) pairs retain their
// original submission order.
func orderActions(ctx context.Context, state *State, actions []Action, moves data.MovesDB, calc DamageCalculator, items *itemfx.Manager) []Action {
	scheduled := make([]scheduledAction, len(actions))
	for i, a := range actions {
		scheduled[i] = scheduledAction{
			action:     a,
			class:      classOf(a, moves),
			speed:      effectiveSpeed(ctx, state, a, calc, items),
			insertedAt: i,
		}
	}

	sort.SliceStable(scheduled, func(i, j int) bool {
		if scheduled[i].class != scheduled[j].class {
			return scheduled[i].class > scheduled[j].class
		}
		return scheduled[i].speed > scheduled[j].speed
	})

	out := make([]Action, len(scheduled))
	for i, s := range scheduled {
		out[i] = s.action
	}
	return out
}

// classOf returns an action's priority class: switch/item/flee use their
// fixed tier, and a move uses its descriptor's intrinsic priority.
func classOf(a Action, moves data.MovesDB) int {
	switch a.Kind {
	case ActionSwitch:
		return classSwitch
	case ActionItem:
		return classItem
	case ActionFlee:
		return classFlee
	case ActionMove:
		if move, ok := moves.GetMove(a.MoveID); ok {
			return move.Priority
		}
		return 0
	default:
		return 0
	}
}

// effectiveSpeed resolves the attacker's speed stat through the damage
// calculator (which applies stage/status adjustments when enhanced) and
// then the held-item speed multiplier.
func effectiveSpeed(ctx context.Context, state *State, a Action, calc DamageCalculator, items *itemfx.Manager) int {
	battler := state.BattlerFor(a.BattlerID)
	if battler == nil {
		return 0
	}
	active := battler.Active()
	if len(active) == 0 {
		return 0
	}
	c := active[0]
	base := calc.Speed(ctx, c)
	mult := items.SpeedMultiplier(c.HeldItem)
	return int(float64(base) * mult)
}
