package resources

// StageMin and StageMax bound every stat stage a combatant can hold, matching
// the series' six-step stage table in both directions.
const (
	StageMin = -6
	StageMax = 6
)

// Stat identifies a stage-boostable battle stat. Stat is deliberately distinct
// from any base-stat key used by the data layer: stages only ever apply to
// the five modifiable battle stats plus accuracy/evasion.
type Stat string

const (
	StatAttack   Stat = "attack"
	StatDefense  Stat = "defense"
	StatSpAttack Stat = "sp_attack"
	StatSpDefense Stat = "sp_defense"
	StatSpeed    Stat = "speed"
	StatAccuracy Stat = "accuracy"
	StatEvasion  Stat = "evasion"
)

// StageTracker holds the current stage (-6..+6) for every stat of one
// combatant. The zero value is ready to use: every stat starts at 0.
type StageTracker struct {
	stages map[Stat]int
}

// NewStageTracker returns a StageTracker with every stat at stage 0.
func NewStageTracker() *StageTracker {
	return &StageTracker{stages: make(map[Stat]int)}
}

// Get returns the current stage for stat, defaulting to 0 if never modified.
func (s *StageTracker) Get(stat Stat) int {
	return s.stages[stat]
}

// Modify adjusts stat's stage by delta, clamping to [StageMin, StageMax], and
// returns the actual change applied (which may be less than delta if the
// stage was already near a bound — callers use this to report "won't go any
// higher/lower" to the player).
func (s *StageTracker) Modify(stat Stat, delta int) int {
	if s.stages == nil {
		s.stages = make(map[Stat]int)
	}
	before := s.stages[stat]
	after := before + delta
	if after > StageMax {
		after = StageMax
	}
	if after < StageMin {
		after = StageMin
	}
	s.stages[stat] = after
	return after - before
}

// Reset clears every stat back to stage 0, as happens on switch-out.
func (s *StageTracker) Reset() {
	s.stages = make(map[Stat]int)
}

// Multiplier returns the classic stage multiplier used to scale a stat
// (2+n)/2 for n>=0 and 2/(2-n) for n<0, e.g. +2 -> 2.0, -2 -> 0.5.
func Multiplier(stage int) float64 {
	if stage > StageMax {
		stage = StageMax
	}
	if stage < StageMin {
		stage = StageMin
	}
	if stage >= 0 {
		return float64(2+stage) / 2.0
	}
	return 2.0 / float64(2-stage)
}

// AccuracyMultiplier returns the separate accuracy/evasion stage multiplier,
// kept distinct from Multiplier because its base is 3 rather than 2:
// (3+n)/3 for n>=0 and 3/(3-n) for n<0.
func AccuracyMultiplier(stage int) float64 {
	if stage > StageMax {
		stage = StageMax
	}
	if stage < StageMin {
		stage = StageMin
	}
	if stage >= 0 {
		return float64(3+stage) / 3.0
	}
	return 3.0 / float64(3-stage)
}
