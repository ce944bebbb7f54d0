// Package itemfx implements the held-item effect contracts: move
// restriction, choice-lock tracking, damage multipliers, one-shot survival,
// and the recoil/heal ticks a held item drives after damage and at end of
// turn.
package itemfx

// Item is the held-item descriptor the data layer's ItemsDB resolves by id.
// Only the fields a contract actually reads are modeled; an item leaves the
// rest at its zero value when it doesn't participate in that contract.
type Item struct {
	ID   string
	Name string

	// TypeBoost multiplies move power when it matches the move's type
	// (e.g. a type-plate or gem).
	TypeBoost string
	// CategoryBoost multiplies move power when the move's category
	// ("physical" or "special") matches.
	CategoryBoost string
	// DefenseBoostCategory divides incoming damage of the matching
	// category ("physical" or "special").
	DefenseBoostCategory string
	PowerMultiplierValue   float64
	DefenseMultiplierValue float64

	// ForbidsStatusMoves blocks the holder from selecting a status-category move.
	ForbidsStatusMoves bool
	// IsChoiceItem locks the holder to the first move used while it is held.
	IsChoiceItem bool

	// PreventsKO, RequiresFullHP, and ActivationChance configure the focus
	// survival contract: an item may require full HP (Focus Sash-style
	// full-HP variants trigger without a roll), or roll a flat
	// ActivationChance (Focus Band-style).
	PreventsKO       bool
	RequiresFullHP   bool
	ActivationChance float64
	OneTimeUse       bool

	// RecoilPercent deals the holder damage equal to this fraction of its
	// max HP (minimum 1) whenever it lands a damaging hit.
	RecoilPercent float64
	// HealPercent restores this fraction of max HP (minimum 1) at the end
	// of every turn the holder is below full HP.
	HealPercent float64

	// SpeedMultiplier scales the holder's effective speed in the scheduler.
	SpeedMultiplier float64
}
