package battle

import (
	"github.com/FrostyKingzly/PokebotRANKED/data"
	"github.com/FrostyKingzly/PokebotRANKED/itemfx"
	"github.com/FrostyKingzly/PokebotRANKED/rng"
	"github.com/FrostyKingzly/PokebotRANKED/status"
)

// Engine bundles the descriptor tables and optional enhanced subsystems the
// registry and resolver are constructed with. Required tables panic at
// construction time if nil; optional subsystems fall back to a no-op
// default so the rest of the engine never branches on "is available".
type Engine struct {
	Moves     data.MovesDB
	Types     data.TypeChart
	Items     data.ItemsDB
	Species   data.SpeciesDB
	Rulesets  data.RulesetHandler

	Calculator DamageCalculator
	Status     status.Manager
	Abilities  AbilityHandler

	ItemFX *itemfx.Manager
	Logger Logger

	DefaultRulesetTag string
	RNGSeed           int64
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithCalculator overrides the default fixed-10-damage fallback.
func WithCalculator(calc DamageCalculator) Option {
	return func(e *Engine) { e.Calculator = calc }
}

// WithStatusManager overrides the default no-op status manager.
func WithStatusManager(mgr status.Manager) Option {
	return func(e *Engine) { e.Status = mgr }
}

// WithAbilityHandler overrides the default no-op ability handler.
func WithAbilityHandler(handler AbilityHandler) Option {
	return func(e *Engine) { e.Abilities = handler }
}

// WithLogger overrides the default no-op logger.
func WithLogger(logger Logger) Option {
	return func(e *Engine) { e.Logger = logger }
}

// WithRuleset sets the tag resolved for battles that don't specify one.
func WithRuleset(tag string) Option {
	return func(e *Engine) { e.DefaultRulesetTag = tag }
}

// WithRNGSeed sets the seed used to construct each new battle's RNG source.
// Distinct battles still get distinct derived seeds (see newBattleRNG);
// this only fixes the registry's own seed sequence for reproducible tests.
func WithRNGSeed(seed int64) Option {
	return func(e *Engine) { e.RNGSeed = seed }
}

// NewEngine constructs an Engine from the required descriptor tables,
// applying options for any optional subsystem. It panics if any required
// table is nil — a programmer error, never a mid-battle content failure.
func NewEngine(moves data.MovesDB, types data.TypeChart, items data.ItemsDB, species data.SpeciesDB, rulesets data.RulesetHandler, opts ...Option) *Engine {
	if moves == nil || types == nil || items == nil || species == nil || rulesets == nil {
		panic("battle: NewEngine requires non-nil moves, types, items, species, and rulesets tables")
	}

	e := &Engine{
		Moves:             moves,
		Types:             types,
		Items:             items,
		Species:           species,
		Rulesets:          rulesets,
		Calculator:        NewFixedDamageCalculator(),
		Status:            status.NewNoOpManager(),
		Abilities:         NewNoOpAbilityHandler(),
		ItemFX:            itemfx.NewManager(),
		Logger:            NewNoOpLogger(),
		DefaultRulesetTag: "standard",
		RNGSeed:           1,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.guardNilCollaborators()
	return e
}

// guardNilCollaborators catches the case where an Option resolved an
// optional collaborator to nil (e.g. WithCalculator(nil)): logs a
// diagnostic and restores the no-op default rather than letting the
// resolver panic on a nil interface call mid-battle.
func (e *Engine) guardNilCollaborators() {
	if e.Logger == nil {
		e.Logger = NewNoOpLogger()
	}
	if e.Calculator == nil {
		e.Logger.Warn("engine: DamageCalculator resolved nil, falling back to fixed default")
		e.Calculator = NewFixedDamageCalculator()
	}
	if e.Status == nil {
		e.Logger.Warn("engine: status.Manager resolved nil, falling back to no-op default")
		e.Status = status.NewNoOpManager()
	}
	if e.Abilities == nil {
		e.Logger.Warn("engine: AbilityHandler resolved nil, falling back to no-op default")
		e.Abilities = NewNoOpAbilityHandler()
	}
}

// newBattleRNG derives a fresh rng.Source for one battle so concurrently
// live battles never share a Source, while remaining deterministic given
// the same engine seed and battle index.
func (e *Engine) newBattleRNG(battleIndex int64) rng.Source {
	return rng.New(e.RNGSeed + battleIndex)
}
