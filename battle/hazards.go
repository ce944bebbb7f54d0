package battle

import (
	"fmt"

	"github.com/FrostyKingzly/PokebotRANKED/resources"
	"github.com/FrostyKingzly/PokebotRANKED/status"
)

// Hazard names the entry hazards the engine recognizes. Hazard maps live on
// the side the hazard *targets*: a hazard set by side A lives on side B's
// Battler.Hazards.
const (
	HazardStealthRock  = "stealth_rock"
	HazardSpikes       = "spikes"
	HazardToxicSpikes  = "toxic_spikes"
	HazardStickyWeb    = "sticky_web"
)

// applyEntryHazards runs every hazard currently set on the entering
// combatant's side against it, in the fixed order stealth rock, spikes,
// toxic spikes, sticky web, returning narration. Stealth rock hits every
// entrant purely via rock-type effectiveness; spikes, toxic spikes, and
// sticky web are grounded-only (Airborne/Levitate combatants skip them).
func applyEntryHazards(side *Battler, c *Combatant, chart typeChartLike, statusMgr status.Manager) []string {
	var messages []string

	if layers := side.Hazards[HazardStealthRock]; layers > 0 {
		if msg := applyStealthRock(c, chart); msg != "" {
			messages = append(messages, msg)
		}
	}

	if !c.IsGrounded() {
		return messages
	}

	if layers := side.Hazards[HazardSpikes]; layers > 0 {
		if msg := applySpikes(c, layers); msg != "" {
			messages = append(messages, msg)
		}
	}

	if layers := side.Hazards[HazardToxicSpikes]; layers > 0 {
		if msg := applyToxicSpikes(side, c, layers, statusMgr); msg != "" {
			messages = append(messages, msg)
		}
	}

	if layers := side.Hazards[HazardStickyWeb]; layers > 0 {
		if msg := applyStickyWeb(c); msg != "" {
			messages = append(messages, msg)
		}
	}

	return messages
}

// typeChartLike is the minimal type-effectiveness surface hazards need,
// kept separate from data.TypeChart so this file doesn't import data
// directly (avoids a needless package dependency for one method).
type typeChartLike interface {
	Multiplier(attackerType, defenderType string) float64
}

func applyStealthRock(c *Combatant, chart typeChartLike) string {
	ratio := 1.0
	for _, t := range c.Types {
		ratio *= chart.Multiplier("rock", t)
	}
	if ratio == 0 {
		return ""
	}
	base := c.HP.Max() / 8
	if base < 1 {
		base = 1
	}
	dmg := int(float64(base) * ratio)
	if dmg < 1 {
		dmg = 1
	}
	c.HP.Subtract(dmg)
	return fmt.Sprintf("%s was hurt by stealth rock", c.Species)
}

func applySpikes(c *Combatant, layers int) string {
	maxHP := c.HP.Max()
	var dmg int
	switch {
	case layers >= 3:
		dmg = maxHP / 4
	case layers == 2:
		dmg = maxHP / 6
	default:
		dmg = maxHP / 8
	}
	if dmg < 1 {
		dmg = 1
	}
	c.HP.Subtract(dmg)
	return fmt.Sprintf("%s was hurt by spikes", c.Species)
}

func applyToxicSpikes(side *Battler, c *Combatant, layers int, statusMgr status.Manager) string {
	if c.HasType("poison") {
		delete(side.Hazards, HazardToxicSpikes)
		return fmt.Sprintf("%s absorbed the toxic spikes", c.Species)
	}
	if c.HasType("steel") {
		return ""
	}

	major := status.MajorPoisoned
	if layers >= 2 {
		major = status.MajorBadlyPoisoned
	}
	if !statusMgr.CanApplyStatus(c.Conditions.Major(), major) {
		return ""
	}
	return statusMgr.ApplyStatus(c.Conditions, major)
}

func applyStickyWeb(c *Combatant) string {
	c.Stages.Modify(resources.StatSpeed, -1)
	return fmt.Sprintf("%s's speed fell due to the sticky web", c.Species)
}
