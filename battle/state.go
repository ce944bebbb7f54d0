package battle

import (
	"github.com/FrostyKingzly/PokebotRANKED/bus"
	"github.com/FrostyKingzly/PokebotRANKED/rng"
)

// Mode identifies the kind of encounter a battle represents.
type Mode string

const (
	ModeWild    Mode = "WILD"
	ModeTrainer Mode = "TRAINER"
	ModePVP     Mode = "PVP"
)

// Format identifies how many combatants per side are simultaneously active.
type Format string

const (
	FormatSingles Format = "SINGLES"
	FormatDoubles Format = "DOUBLES"
)

// Phase identifies the battle's current point in its turn lifecycle.
type Phase string

const (
	PhaseStart           Phase = "START"
	PhaseWaitingActions  Phase = "WAITING_ACTIONS"
	PhaseResolving       Phase = "RESOLVING"
	PhaseForcedSwitch    Phase = "FORCED_SWITCH"
	PhaseDazed           Phase = "DAZED"
	PhaseEnd             Phase = "END"
)

// Winner identifies the outcome of a decided battle.
type Winner string

const (
	WinnerNone     Winner = ""
	WinnerTrainer  Winner = "trainer"
	WinnerOpponent Winner = "opponent"
	WinnerDraw     Winner = "draw"
)

// Capabilities gates what a side is permitted to do mid-battle.
type Capabilities struct {
	CanSwitch  bool
	CanItems   bool
	CanFlee    bool
}

// Battler is one side of a battle: a trainer, a wild encounter, or an AI
// opponent, together with its party and which party slots are active.
type Battler struct {
	ID              int
	DisplayName     string
	Party           []*Combatant
	ActivePositions []int
	Capabilities    Capabilities
	TrainerClass    string
	Prize           int
	IsAI            bool

	// Hazards targeting this side, keyed by hazard name to layer count.
	Hazards map[string]int
	// Screens protecting this side, keyed by screen name to turns remaining.
	Screens map[string]int
}

// Active returns the combatants currently fielded for this battler, in
// ActivePositions order.
func (b *Battler) Active() []*Combatant {
	out := make([]*Combatant, 0, len(b.ActivePositions))
	for _, idx := range b.ActivePositions {
		if idx >= 0 && idx < len(b.Party) {
			out = append(out, b.Party[idx])
		}
	}
	return out
}

// HasUsable reports whether any party member (active or benched) can still
// be fielded.
func (b *Battler) HasUsable() bool {
	for _, c := range b.Party {
		if c.IsUsable() {
			return true
		}
	}
	return false
}

// FirstUsableBenchIndex returns the first party index, other than exclude,
// holding a usable combatant not already active, or -1 if none exists.
func (b *Battler) FirstUsableBenchIndex(exclude int) int {
	active := make(map[int]bool, len(b.ActivePositions))
	for _, idx := range b.ActivePositions {
		active[idx] = true
	}
	for i, c := range b.Party {
		if i == exclude || active[i] {
			continue
		}
		if c.IsUsable() {
			return i
		}
	}
	return -1
}

// State is a single battle's mutable session data: phase, both battlers,
// hazards/screens/weather, and the pending-action buffer the registry fills
// as each side submits its move for the turn.
type State struct {
	BattleID string
	Mode     Mode
	Format   Format

	Trainer  *Battler
	Opponent *Battler

	Ranked      bool
	RankedCtx   any

	TurnNumber int
	Phase      Phase

	ForcedSwitchBattlerID int
	IsOver                bool
	Winner                Winner
	Fled                  bool

	Weather      string
	WeatherTurns int
	Terrain      string
	TerrainTurns int

	PendingActions map[int]Action

	BattleLog    []string
	TurnLog      []string
	SwitchLog    []string

	PendingAISwitchIndex int // -1 when unset
	WildDazed            bool

	RulesetTag string

	RNG rng.Source
	Bus *bus.Bus
}

// BattlerFor returns the Battler owning battlerID, or nil.
func (s *State) BattlerFor(battlerID int) *Battler {
	if s.Trainer != nil && s.Trainer.ID == battlerID {
		return s.Trainer
	}
	if s.Opponent != nil && s.Opponent.ID == battlerID {
		return s.Opponent
	}
	return nil
}

// OpponentOf returns the other side relative to battlerID.
func (s *State) OpponentOf(battlerID int) *Battler {
	if s.Trainer != nil && s.Trainer.ID == battlerID {
		return s.Opponent
	}
	return s.Trainer
}

// Messages returns a defensive copy of the current turn's move/end-of-turn
// narration.
func (s *State) Messages() []string {
	out := make([]string, len(s.TurnLog))
	copy(out, s.TurnLog)
	return out
}

// SwitchMessages returns a defensive copy of the current turn's switch
// narration, rendered separately from move narration by the front end.
func (s *State) SwitchMessages() []string {
	out := make([]string, len(s.SwitchLog))
	copy(out, s.SwitchLog)
	return out
}

// appendLog records msg in both the turn log and the cumulative battle log.
func (s *State) appendLog(msg string) {
	s.TurnLog = append(s.TurnLog, msg)
	s.BattleLog = append(s.BattleLog, msg)
}

// appendSwitchLog records msg in the switch log and the cumulative battle log.
func (s *State) appendSwitchLog(msg string) {
	s.SwitchLog = append(s.SwitchLog, msg)
	s.BattleLog = append(s.BattleLog, msg)
}
