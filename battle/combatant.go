// Package battle implements the turn-based battle engine: the combatant and
// battle-state data model, the action scheduler, the turn resolver, the
// hazard engine, and the battle registry that ties them together.
package battle

import (
	"strings"

	"github.com/FrostyKingzly/PokebotRANKED/itemfx"
	"github.com/FrostyKingzly/PokebotRANKED/resources"
	"github.com/FrostyKingzly/PokebotRANKED/status"
)

// Stats holds a combatant's six base stats.
type Stats struct {
	HP       int
	Attack   int
	Defense  int
	SpAttack int
	SpDefense int
	Speed    int
}

// MoveSlot is one entry in a combatant's move list.
type MoveSlot struct {
	MoveID string
	PP     *resources.Pool
}

// Combatant is one fielded-or-benched creature. The engine mutates HP, PP,
// status, and stage fields in place; the caller persists them afterward.
type Combatant struct {
	Species string
	Level   int
	Stats   Stats
	Types   []string // ordered pair, second entry optional
	Ability string
	Nature  string
	Gender  string
	Shiny   bool

	Moves []MoveSlot

	HP         *resources.Pool
	Conditions *status.Conditions
	Stages     *resources.StageTracker
	Consumed   *resources.ConsumedSet

	HeldItem  *itemfx.Item
	ItemState *itemfx.State
}

// NewCombatant returns a Combatant with freshly initialized runtime state
// (full HP, no status, all stages at 0, no items consumed).
func NewCombatant(species string, level int, stats Stats, types []string, moves []MoveSlot) *Combatant {
	return &Combatant{
		Species:    species,
		Level:      level,
		Stats:      stats,
		Types:      types,
		Moves:      moves,
		HP:         resources.NewPool(stats.HP),
		Conditions: status.NewConditions(),
		Stages:     resources.NewStageTracker(),
		Consumed:   resources.NewConsumedSet(),
		ItemState:  itemfx.NewState(),
	}
}

// IsUsable reports whether this combatant can be fielded: current_hp > 0.
func (c *Combatant) IsUsable() bool {
	return c.HP != nil && c.HP.Current() > 0
}

// MoveSlotByID returns the move slot matching moveID, or nil if not found.
func (c *Combatant) MoveSlotByID(moveID string) *MoveSlot {
	for i := range c.Moves {
		if c.Moves[i].MoveID == moveID {
			return &c.Moves[i]
		}
	}
	return nil
}

// HasUsablePP reports whether any move slot still has pp > 0.
func (c *Combatant) HasUsablePP() bool {
	for _, m := range c.Moves {
		if m.PP != nil && m.PP.Current() > 0 {
			return true
		}
	}
	return false
}

// IsGrounded reports whether entry hazards affect this combatant: it is not
// a flying type and its ability is not Levitate. Unknown types/abilities are
// treated as grounded-capable.
func (c *Combatant) IsGrounded() bool {
	for _, t := range c.Types {
		if strings.EqualFold(t, "flying") {
			return false
		}
	}
	return !strings.EqualFold(c.Ability, "levitate")
}

// HasType reports whether t is one of this combatant's types.
func (c *Combatant) HasType(t string) bool {
	for _, own := range c.Types {
		if strings.EqualFold(own, t) {
			return true
		}
	}
	return false
}
