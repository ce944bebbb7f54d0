// Package status implements the battle engine's major and volatile status
// conditions: the move-prevention checks (sleep, freeze, paralysis, flinch),
// the apply-gates hazards and moves consult before inflicting a status, and
// the end-of-turn damage/clear ticks that drive them.
package status

// Major identifies the single persistent status a combatant can carry. A
// combatant holds at most one at a time; applying a new one when already
// carrying one is a caller error the manager simply ignores (first status
// wins, matching the series' own stacking rule).
type Major string

const (
	MajorNone      Major = ""
	MajorPoisoned  Major = "poisoned"
	MajorBadlyPoisoned Major = "badly_poisoned"
	MajorBurned    Major = "burned"
	MajorParalyzed Major = "paralyzed"
	MajorAsleep    Major = "asleep"
	MajorFrozen    Major = "frozen"
)

// Volatile identifies a non-persistent condition cleared on switch-out or
// battle end. A combatant may hold any number of these simultaneously.
type Volatile string

const (
	VolatileEndure     Volatile = "endure"
	VolatileFlinch     Volatile = "flinch"
	VolatileConfusion  Volatile = "confusion"
)

// Conditions is the full status state of one combatant. The zero value is a
// combatant with no status at all.
type Conditions struct {
	major      Major
	toxicTurns int // counts up while MajorBadlyPoisoned is active
	volatiles  map[Volatile]struct{}
}

// NewConditions returns a clean Conditions with no status applied.
func NewConditions() *Conditions {
	return &Conditions{volatiles: make(map[Volatile]struct{})}
}

// Major returns the combatant's current major status.
func (c *Conditions) Major() Major { return c.major }

// HasVolatile reports whether v is currently set.
func (c *Conditions) HasVolatile(v Volatile) bool {
	_, ok := c.volatiles[v]
	return ok
}

// SetVolatile adds v to the combatant's volatile set.
func (c *Conditions) SetVolatile(v Volatile) {
	c.volatiles[v] = struct{}{}
}

// ClearVolatile removes v from the combatant's volatile set.
func (c *Conditions) ClearVolatile(v Volatile) {
	delete(c.volatiles, v)
}

// ClearAllVolatiles wipes every volatile status, as happens on switch-out.
func (c *Conditions) ClearAllVolatiles() {
	c.volatiles = make(map[Volatile]struct{})
}

// setMajor installs m and resets the toxic counter used only by badly-poisoned.
func (c *Conditions) setMajor(m Major) {
	c.major = m
	c.toxicTurns = 0
}
