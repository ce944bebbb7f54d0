package itemfx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/FrostyKingzly/PokebotRANKED/itemfx"
	"github.com/FrostyKingzly/PokebotRANKED/rng"
)

func TestCheckMoveRestriction_NilItemAlwaysAllows(t *testing.T) {
	m := itemfx.NewManager()
	ok, _ := m.CheckMoveRestriction(nil, itemfx.NewState(), "physical", "tackle")
	assert.True(t, ok)
}

func TestCheckMoveRestriction_ForbidsStatusMoves(t *testing.T) {
	m := itemfx.NewManager()
	item := &itemfx.Item{Name: "Assault Vest", ForbidsStatusMoves: true}
	ok, reason := m.CheckMoveRestriction(item, itemfx.NewState(), "status", "growl")
	assert.False(t, ok)
	assert.Contains(t, reason, "status moves")
}

func TestChoiceLock_BlocksOtherMoves(t *testing.T) {
	m := itemfx.NewManager()
	item := &itemfx.Item{Name: "Choice Band", IsChoiceItem: true}
	state := itemfx.NewState()

	m.RegisterChoiceLock(item, state, "tackle")
	assert.Equal(t, "tackle", state.LockedMove())

	ok, reason := m.CheckMoveRestriction(item, state, "physical", "ember")
	assert.False(t, ok)
	assert.Contains(t, reason, "locked")

	ok2, _ := m.CheckMoveRestriction(item, state, "physical", "tackle")
	assert.True(t, ok2)
}

func TestChoiceLock_ClearedOnSwitchOut(t *testing.T) {
	item := &itemfx.Item{IsChoiceItem: true}
	state := itemfx.NewState()
	itemfx.NewManager().RegisterChoiceLock(item, state, "tackle")

	state.ClearOnSwitchOut()
	assert.Empty(t, state.LockedMove())
}

func TestPowerMultiplier_TypeAndCategoryBoost(t *testing.T) {
	m := itemfx.NewManager()
	item := &itemfx.Item{TypeBoost: "fire", PowerMultiplierValue: 1.2}
	assert.InDelta(t, 1.2, m.PowerMultiplier(item, "fire", "special"), 0.001)
	assert.InDelta(t, 1.0, m.PowerMultiplier(item, "water", "special"), 0.001)
}

func TestDefenseMultiplier_DividesMatchingCategory(t *testing.T) {
	m := itemfx.NewManager()
	item := &itemfx.Item{DefenseBoostCategory: "special", DefenseMultiplierValue: 2.0}
	assert.InDelta(t, 0.5, m.DefenseMultiplier(item, "special"), 0.001)
	assert.InDelta(t, 1.0, m.DefenseMultiplier(item, "physical"), 0.001)
}

func TestFocusSurvival_CapsLethalDamage(t *testing.T) {
	m := itemfx.NewManager()
	item := &itemfx.Item{Name: "Focus Sash", PreventsKO: true, RequiresFullHP: true, OneTimeUse: true}
	state := itemfx.NewState()

	dmg, activated := m.CheckFocusSurvival(item, state, rng.New(1), 50, 40, 40)
	assert.True(t, activated)
	assert.Equal(t, 39, dmg)
	assert.True(t, state.IsConsumed())
}

func TestFocusSurvival_RequiresFullHPDoesNotFireBelowFullHP(t *testing.T) {
	m := itemfx.NewManager()
	item := &itemfx.Item{Name: "Focus Sash", PreventsKO: true, RequiresFullHP: true, OneTimeUse: true}
	state := itemfx.NewState()

	dmg, activated := m.CheckFocusSurvival(item, state, rng.New(1), 50, 39, 40)
	assert.False(t, activated)
	assert.Equal(t, 50, dmg)
}

func TestFocusSurvival_DoesNotFireTwice(t *testing.T) {
	m := itemfx.NewManager()
	item := &itemfx.Item{PreventsKO: true, RequiresFullHP: true, OneTimeUse: true}
	state := itemfx.NewState()
	state.MarkConsumed()

	dmg, activated := m.CheckFocusSurvival(item, state, rng.New(1), 50, 40, 40)
	assert.False(t, activated)
	assert.Equal(t, 50, dmg)
}

func TestFocusSurvival_NoOpAtOneHP(t *testing.T) {
	m := itemfx.NewManager()
	item := &itemfx.Item{PreventsKO: true, RequiresFullHP: true}
	dmg, activated := m.CheckFocusSurvival(item, itemfx.NewState(), rng.New(1), 50, 1, 40)
	assert.False(t, activated)
	assert.Equal(t, 50, dmg)
}

func TestAfterDamageEffects_Recoil(t *testing.T) {
	m := itemfx.NewManager()
	item := &itemfx.Item{Name: "Life Orb", RecoilPercent: 0.1}
	recoil, msg := m.AfterDamageEffects(item, 100)
	assert.Equal(t, 10, recoil)
	assert.NotEmpty(t, msg)
}

func TestEndOfTurnHeal_SkipsAtFullHP(t *testing.T) {
	m := itemfx.NewManager()
	item := &itemfx.Item{Name: "Leftovers", HealPercent: 0.0625}
	heal, msg := m.EndOfTurnHeal(item, 100, 100)
	assert.Zero(t, heal)
	assert.Empty(t, msg)

	heal2, msg2 := m.EndOfTurnHeal(item, 50, 100)
	assert.Equal(t, 6, heal2)
	assert.NotEmpty(t, msg2)
}

func TestSpeedMultiplier_DefaultsToOne(t *testing.T) {
	m := itemfx.NewManager()
	assert.Equal(t, 1.0, m.SpeedMultiplier(nil))
	assert.Equal(t, 2.0, m.SpeedMultiplier(&itemfx.Item{SpeedMultiplier: 2.0}))
}
