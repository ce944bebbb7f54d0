package battle

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/FrostyKingzly/PokebotRANKED/battlerr"
	"github.com/FrostyKingzly/PokebotRANKED/bus"
)

// Registry owns every live battle session, keyed by battle id. It is a
// concurrency-safe, mutex-guarded map sized for many concurrently live
// battles with no cross-battle lock contention: once a *State is fetched,
// the caller advances it without holding the registry's lock.
type Registry struct {
	mu       sync.RWMutex
	battles  map[string]*State
	engine   *Engine
	seedSeq  int64
}

// NewRegistry returns a Registry that constructs battles using engine.
func NewRegistry(engine *Engine) *Registry {
	return &Registry{
		battles: make(map[string]*State),
		engine:  engine,
	}
}

// StartBattleInput describes a new battle session.
type StartBattleInput struct {
	Trainer  *Battler
	Opponent *Battler
	Mode     Mode
	Format   Format
	Ranked   bool
	RankedCtx any
}

// StartBattle validates both sides, assigns active positions, synthesizes a
// missing opponent id, applies per-mode capability defaults, fires on-entry
// hooks for both sides' starting actives, and registers the new session.
func (r *Registry) StartBattle(in StartBattleInput) (string, error) {
	if in.Trainer == nil || len(in.Trainer.Party) == 0 {
		return "", battlerr.InvalidParty("trainer")
	}
	if in.Opponent == nil || len(in.Opponent.Party) == 0 {
		return "", battlerr.InvalidParty("opponent")
	}

	slots := 1
	if in.Format == FormatDoubles {
		slots = 2
	}
	assignActive(in.Trainer, slots)
	assignActive(in.Opponent, slots)

	if in.Opponent.ID == 0 {
		if in.Mode == ModeWild {
			in.Opponent.ID = -1
		} else {
			// Random negative id drawn from a seeded source; never -1,
			// which is reserved for wild opponents.
			idRNG := r.engine.newBattleRNG(atomic.AddInt64(&r.seedSeq, 1))
			in.Opponent.ID = -2 - idRNG.Intn(1<<30)
		}
	}

	applyModeDefaults(in.Mode, in.Trainer, in.Opponent)

	if in.Trainer.Hazards == nil {
		in.Trainer.Hazards = make(map[string]int)
	}
	if in.Opponent.Hazards == nil {
		in.Opponent.Hazards = make(map[string]int)
	}
	if in.Trainer.Screens == nil {
		in.Trainer.Screens = make(map[string]int)
	}
	if in.Opponent.Screens == nil {
		in.Opponent.Screens = make(map[string]int)
	}

	battleIndex := atomic.AddInt64(&r.seedSeq, 1)
	state := &State{
		BattleID:             uuid.NewString(),
		Mode:                 in.Mode,
		Format:               in.Format,
		Trainer:              in.Trainer,
		Opponent:             in.Opponent,
		Ranked:               in.Ranked,
		RankedCtx:            in.RankedCtx,
		TurnNumber:           1,
		Phase:                PhaseWaitingActions,
		PendingActions:       make(map[int]Action),
		PendingAISwitchIndex: -1,
		RulesetTag:           r.engine.DefaultRulesetTag,
		RNG:                  r.engine.newBattleRNG(battleIndex),
		Bus:                  bus.New(),
	}
	wireEntrySubscribers(state, r.engine)

	publishEntry(state, state.Trainer)
	publishEntry(state, state.Opponent)
	state.TurnLog = nil // entry narration at start belongs in battle_log only

	r.mu.Lock()
	r.battles[state.BattleID] = state
	r.mu.Unlock()

	return state.BattleID, nil
}

// Get returns the battle with id, or a NotFound error.
func (r *Registry) Get(id string) (*State, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	state, ok := r.battles[id]
	if !ok {
		return nil, battlerr.NotFound("battle " + id)
	}
	return state, nil
}

// End discards the battle with id. It is a no-op if id is unknown.
func (r *Registry) End(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.battles, id)
}

// RegisterActionResult reports the outcome of registering one side's action.
type RegisterActionResult struct {
	Pending       []int // human battler ids still to submit
	ReadyToResolve bool
}

// RegisterAction validates battlerID participates, enforces forced-switch
// phase restrictions, stores the action, and reports readiness to resolve.
func (r *Registry) RegisterAction(id string, battlerID int, action Action) (RegisterActionResult, error) {
	state, err := r.Get(id)
	if err != nil {
		return RegisterActionResult{}, err
	}
	if state.IsOver {
		return RegisterActionResult{}, battlerr.BattleOver()
	}

	battler := state.BattlerFor(battlerID)
	if battler == nil {
		return RegisterActionResult{}, battlerr.InvalidBattler(battlerID)
	}

	if state.Phase == PhaseForcedSwitch {
		if state.ForcedSwitchBattlerID != battlerID {
			return RegisterActionResult{}, battlerr.WrongPhase("move", string(PhaseForcedSwitch))
		}
		if action.Kind != ActionSwitch {
			return RegisterActionResult{}, battlerr.WrongPhase("non-switch action", string(PhaseForcedSwitch))
		}
	}

	state.PendingActions[battlerID] = action

	return r.readiness(state), nil
}

func (r *Registry) readiness(state *State) RegisterActionResult {
	var pending []int
	for _, b := range []*Battler{state.Trainer, state.Opponent} {
		if b.IsAI {
			continue
		}
		if _, ok := state.PendingActions[b.ID]; !ok {
			pending = append(pending, b.ID)
		}
	}
	return RegisterActionResult{Pending: pending, ReadyToResolve: len(pending) == 0}
}

// ForceSwitch resolves a mandatory switch outside normal turn order.
func (r *Registry) ForceSwitch(id string, battlerID, slot int) ([]string, error) {
	state, err := r.Get(id)
	if err != nil {
		return nil, err
	}
	if state.Phase != PhaseForcedSwitch {
		return nil, battlerr.WrongPhase("force_switch", string(state.Phase))
	}
	if state.ForcedSwitchBattlerID != battlerID {
		return nil, battlerr.InvalidBattler(battlerID)
	}

	battler := state.BattlerFor(battlerID)
	if battler == nil {
		return nil, battlerr.InvalidBattler(battlerID)
	}
	if slot < 0 || slot >= len(battler.Party) || !battler.Party[slot].IsUsable() {
		return nil, battlerr.InvalidTarget("switch target is out of range or fainted")
	}

	msgs := performSwitch(r.engine, state, battler, 0, slot, true)
	state.Phase = PhaseWaitingActions
	state.ForcedSwitchBattlerID = 0

	return msgs, nil
}

func assignActive(b *Battler, slots int) {
	if len(b.ActivePositions) > 0 {
		return
	}
	n := slots
	if n > len(b.Party) {
		n = len(b.Party)
	}
	for i := 0; i < n; i++ {
		b.ActivePositions = append(b.ActivePositions, i)
	}
}

func applyModeDefaults(mode Mode, trainer, opponent *Battler) {
	trainer.Capabilities = Capabilities{CanSwitch: true, CanItems: true, CanFlee: mode == ModeWild}
	switch mode {
	case ModeWild:
		opponent.Capabilities = Capabilities{CanSwitch: false, CanItems: false, CanFlee: false}
		opponent.IsAI = true
	default:
		opponent.Capabilities = Capabilities{CanSwitch: true, CanItems: true, CanFlee: false}
	}
}

// wireEntrySubscribers registers the on-entry ability hook and the hazard
// engine on state's bus, in that fixed order, so every future
// TopicCombatantEntered publish runs abilities before hazards regardless of
// how many other subscribers this battle ever adds.
func wireEntrySubscribers(state *State, engine *Engine) {
	state.Bus.Subscribe(bus.TopicCombatantEntered, func(event any) error {
		ev := event.(bus.CombatantEnteredEvent)
		battler := state.BattlerFor(ev.BattlerID)
		if battler == nil || ev.Slot >= len(battler.Party) {
			return nil
		}
		c := battler.Party[ev.Slot]
		for _, msg := range engine.Abilities.TriggerOnEntry(context.Background(), c, state) {
			state.appendLog(msg)
		}
		return nil
	})

	state.Bus.Subscribe(bus.TopicCombatantEntered, func(event any) error {
		ev := event.(bus.CombatantEnteredEvent)
		battler := state.BattlerFor(ev.BattlerID)
		if battler == nil || ev.Slot >= len(battler.Party) {
			return nil
		}
		c := battler.Party[ev.Slot]
		for _, msg := range applyEntryHazards(battler, c, engine.Types, engine.Status) {
			state.appendLog(msg)
		}
		return nil
	})
}

// publishEntry fires TopicCombatantEntered for every combatant currently
// active on side.
func publishEntry(state *State, side *Battler) {
	for _, slot := range side.ActivePositions {
		_ = state.Bus.Publish(bus.TopicCombatantEntered, bus.CombatantEnteredEvent{BattlerID: side.ID, Slot: slot})
	}
}
