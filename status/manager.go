package status

import (
	"fmt"

	"github.com/FrostyKingzly/PokebotRANKED/resources"
	"github.com/FrostyKingzly/PokebotRANKED/rng"
)

// Manager is the engine's status-manager contract: can a combatant act this
// turn, may a given status be applied, and what happens to a combatant at
// end of turn. The Turn Resolver treats a Manager as optional — when the
// caller supplies none, NoOpManager is wired in automatically and the engine
// runs with reduced fidelity rather than failing.
type Manager interface {
	// CanMove reports whether the combatant may act this turn. ok is false
	// when sleep, freeze, full paralysis, or flinch prevents the move; msg
	// is the player-facing narration for that prevention.
	CanMove(c *Conditions, src rng.Source) (ok bool, msg string)

	// CanApplyStatus reports whether m may be inflicted on a combatant
	// currently holding current. The series rule is "first status wins":
	// a combatant already carrying a major status resists a new one.
	CanApplyStatus(current Major, m Major) bool

	// ApplyStatus installs m on c if CanApplyStatus allows it, returning the
	// narration for the application (empty if it failed to apply).
	ApplyStatus(c *Conditions, m Major) string

	// EndOfTurnEffects applies status damage (poison/burn/toxic) to hp and
	// returns the damage dealt plus any narration. It never faints a
	// combatant below 0; the caller clamps via hp itself.
	EndOfTurnEffects(c *Conditions, hp *resources.Pool, name string) (damage int, messages []string)
}

// NoOpManager is the reduced-fidelity fallback wired in when the caller
// supplies no Manager: every combatant can always move, any status may
// always apply, and end-of-turn never deals status damage. It exists so the
// Turn Resolver never has to nil-check its status manager collaborator.
type NoOpManager struct{}

// NewNoOpManager returns the reduced-fidelity Manager described above.
func NewNoOpManager() *NoOpManager { return &NoOpManager{} }

func (NoOpManager) CanMove(*Conditions, rng.Source) (bool, string)  { return true, "" }
func (NoOpManager) CanApplyStatus(Major, Major) bool                { return true }
func (NoOpManager) ApplyStatus(c *Conditions, m Major) string {
	c.setMajor(m)
	return ""
}
func (NoOpManager) EndOfTurnEffects(*Conditions, *resources.Pool, string) (int, []string) {
	return 0, nil
}

// DefaultManager is the engine's standard status implementation, providing
// the full set of major/volatile behaviors described for the battle system:
// sleep/freeze/paralysis move prevention, flinch consumption, poison/burn/
// toxic end-of-turn damage, and "first status wins" apply-gating.
type DefaultManager struct {
	// ParalysisChance is the probability a paralyzed combatant fails to
	// move this turn.
	ParalysisChance float64
	// SleepWakeChance is the probability an asleep combatant wakes up and
	// moves normally this turn.
	SleepWakeChance float64
	// FreezeThawChance is the probability a frozen combatant thaws and
	// moves normally this turn.
	FreezeThawChance float64
}

// NewDefaultManager returns a DefaultManager with the series' canonical
// probabilities: 25% full paralysis, 20% wake from sleep, 20% thaw from
// freeze.
func NewDefaultManager() *DefaultManager {
	return &DefaultManager{
		ParalysisChance:  0.25,
		SleepWakeChance:  0.20,
		FreezeThawChance: 0.20,
	}
}

// CanMove implements Manager.
func (d *DefaultManager) CanMove(c *Conditions, src rng.Source) (bool, string) {
	if c.HasVolatile(VolatileFlinch) {
		c.ClearVolatile(VolatileFlinch)
		return false, "flinched and couldn't move"
	}

	switch c.major {
	case MajorAsleep:
		if rng.Chance(src, d.SleepWakeChance) {
			c.setMajor(MajorNone)
			return true, "woke up"
		}
		return false, "is fast asleep"
	case MajorFrozen:
		if rng.Chance(src, d.FreezeThawChance) {
			c.setMajor(MajorNone)
			return true, "thawed out"
		}
		return false, "is frozen solid"
	case MajorParalyzed:
		if rng.Chance(src, d.ParalysisChance) {
			return false, "is paralyzed and can't move"
		}
		return true, ""
	default:
		return true, ""
	}
}

// CanApplyStatus implements Manager: first status wins.
func (d *DefaultManager) CanApplyStatus(current Major, _ Major) bool {
	return current == MajorNone
}

// ApplyStatus implements Manager.
func (d *DefaultManager) ApplyStatus(c *Conditions, m Major) string {
	if !d.CanApplyStatus(c.major, m) {
		return ""
	}
	c.setMajor(m)
	return statusNarration(m)
}

// EndOfTurnEffects implements Manager.
func (d *DefaultManager) EndOfTurnEffects(c *Conditions, hp *resources.Pool, name string) (int, []string) {
	switch c.major {
	case MajorPoisoned:
		dmg := poisonDamage(hp.Max())
		hp.Subtract(dmg)
		return dmg, []string{fmt.Sprintf("%s is hurt by poison", name)}
	case MajorBadlyPoisoned:
		c.toxicTurns++
		dmg := toxicDamage(hp.Max(), c.toxicTurns)
		hp.Subtract(dmg)
		return dmg, []string{fmt.Sprintf("%s is hurt by poison", name)}
	case MajorBurned:
		dmg := burnDamage(hp.Max())
		hp.Subtract(dmg)
		return dmg, []string{fmt.Sprintf("%s is hurt by its burn", name)}
	default:
		return 0, nil
	}
}

func poisonDamage(maxHP int) int {
	dmg := maxHP / 8
	if dmg < 1 {
		dmg = 1
	}
	return dmg
}

func burnDamage(maxHP int) int {
	dmg := maxHP / 16
	if dmg < 1 {
		dmg = 1
	}
	return dmg
}

func toxicDamage(maxHP, turns int) int {
	dmg := maxHP * turns / 16
	if dmg < 1 {
		dmg = 1
	}
	return dmg
}

func statusNarration(m Major) string {
	switch m {
	case MajorPoisoned:
		return "was poisoned"
	case MajorBadlyPoisoned:
		return "was badly poisoned"
	case MajorBurned:
		return "was burned"
	case MajorParalyzed:
		return "was paralyzed"
	case MajorAsleep:
		return "fell asleep"
	case MajorFrozen:
		return "was frozen solid"
	default:
		return ""
	}
}
