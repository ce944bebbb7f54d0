package itemfx

import (
	"fmt"
	"strings"

	"github.com/FrostyKingzly/PokebotRANKED/rng"
)

// Manager implements the six held-item contracts the Turn Resolver consults
// around a move attempt. A nil *Item is always treated as "holder has no
// held item" — every method degrades to a pass-through when item is nil, so
// callers never have to branch on whether a combatant is holding anything.
type Manager struct{}

// NewManager returns the engine's held-item contract implementation.
func NewManager() *Manager { return &Manager{} }

// CheckMoveRestriction implements contract 1: blocks status-category moves
// for items that forbid them, and enforces an existing choice lock. ok is
// false when the move must be refused without consuming PP.
func (m *Manager) CheckMoveRestriction(item *Item, state *State, moveCategory, moveID string) (ok bool, reason string) {
	if item == nil {
		return true, ""
	}
	if item.ForbidsStatusMoves && moveCategory == "status" {
		return false, fmt.Sprintf("%s prevents status moves", item.Name)
	}
	if locked := state.LockedMove(); locked != "" && locked != moveID {
		return false, fmt.Sprintf("is locked into the previous move by its %s", item.Name)
	}
	return true, ""
}

// RegisterChoiceLock implements contract 2: invoked whenever a move is
// attempted, even on a miss, so the lock takes effect regardless of whether
// the move connected.
func (m *Manager) RegisterChoiceLock(item *Item, state *State, moveID string) {
	if item == nil || !item.IsChoiceItem {
		return
	}
	if state.LockedMove() == "" {
		state.lockedMove = moveID
	}
}

// PowerMultiplier implements contract 3: type-bonus items multiply when the
// move's type matches, category-bonus items multiply when the move's
// category matches.
func (m *Manager) PowerMultiplier(item *Item, moveType, moveCategory string) float64 {
	if item == nil {
		return 1.0
	}
	mult := 1.0
	if item.TypeBoost != "" && strings.EqualFold(item.TypeBoost, moveType) {
		mult *= boostOr(item.PowerMultiplierValue)
	}
	if item.CategoryBoost != "" && strings.EqualFold(item.CategoryBoost, moveCategory) {
		mult *= boostOr(item.PowerMultiplierValue)
	}
	return mult
}

// DefenseMultiplier implements contract 4: divides incoming damage of the
// matching category.
func (m *Manager) DefenseMultiplier(item *Item, moveCategory string) float64 {
	if item == nil || item.DefenseBoostCategory == "" || !strings.EqualFold(item.DefenseBoostCategory, moveCategory) {
		return 1.0
	}
	div := boostOr(item.DefenseMultiplierValue)
	if div <= 0 {
		return 1.0
	}
	return 1.0 / div
}

// CheckFocusSurvival implements contract 5: caps lethal damage to leave
// exactly 1 HP when the item's survival condition is met. damage is the
// (possibly capped) damage to apply; activated reports whether the cap fired,
// so the caller can narrate it. For one-time items it also marks the item
// consumed via state.MarkConsumed.
func (m *Manager) CheckFocusSurvival(item *Item, state *State, src rng.Source, incomingDamage, currentHP, maxHP int) (damage int, activated bool) {
	if item == nil || !item.PreventsKO {
		return incomingDamage, false
	}
	if incomingDamage < currentHP {
		return incomingDamage, false
	}
	if currentHP <= 1 {
		return incomingDamage, false
	}
	if item.RequiresFullHP && currentHP != maxHP {
		return incomingDamage, false
	}
	if item.OneTimeUse && state.IsConsumed() {
		return incomingDamage, false
	}
	// RequiresFullHP items trigger deterministically once the full-HP
	// condition above holds. Everything else rolls ActivationChance.
	if !item.RequiresFullHP && item.ActivationChance > 0 && item.ActivationChance < 1 {
		if !rng.Chance(src, item.ActivationChance) {
			return incomingDamage, false
		}
	}

	if item.OneTimeUse {
		state.MarkConsumed()
	}
	return currentHP - 1, true
}

// AfterDamageEffects implements contract 6's recoil half: the holder takes
// recoil equal to RecoilPercent of its own max HP (minimum 1) for landing a
// damaging hit.
func (m *Manager) AfterDamageEffects(item *Item, maxHP int) (recoil int, msg string) {
	if item == nil || item.RecoilPercent <= 0 {
		return 0, ""
	}
	recoil = int(float64(maxHP) * item.RecoilPercent)
	if recoil < 1 {
		recoil = 1
	}
	return recoil, fmt.Sprintf("is hurt by recoil from its %s", item.Name)
}

// EndOfTurnHeal implements contract 6's heal half: restores HealPercent of
// max HP (minimum 1) whenever the holder is below full HP.
func (m *Manager) EndOfTurnHeal(item *Item, currentHP, maxHP int) (heal int, msg string) {
	if item == nil || item.HealPercent <= 0 || currentHP >= maxHP {
		return 0, ""
	}
	heal = int(float64(maxHP) * item.HealPercent)
	if heal < 1 {
		heal = 1
	}
	return heal, fmt.Sprintf("restored a little HP using its %s", item.Name)
}

// SpeedMultiplier returns the held item's effective-speed scaling for the
// Action Scheduler, defaulting to 1.0 when the holder has no item or the
// item doesn't touch speed.
func (m *Manager) SpeedMultiplier(item *Item) float64 {
	if item == nil || item.SpeedMultiplier <= 0 {
		return 1.0
	}
	return item.SpeedMultiplier
}

func boostOr(v float64) float64 {
	if v <= 0 {
		return 1.5
	}
	return v
}
