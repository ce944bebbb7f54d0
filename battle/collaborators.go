package battle

import "context"

// DamageCalculator computes a move's damage and effective speed. It is an
// optional enhanced subsystem: when the caller supplies none, the engine
// wires in fixedDamageCalculator automatically and runs with reduced
// fidelity rather than failing.
type DamageCalculator interface {
	CalculateDamage(ctx context.Context, attacker, defender *Combatant, moveID, weather, terrain string, state *State) (damage int, isCrit bool, effectiveness float64, messages []string)
	Speed(ctx context.Context, c *Combatant) int
}

// fixedDamageCalculator is the no-op default: every hit deals a flat 10
// damage with no crit and neutral effectiveness, and speed is read straight
// off the combatant's base stat with no stage or status adjustment.
type fixedDamageCalculator struct{}

// NewFixedDamageCalculator returns the engine's fixed-10-damage fallback.
func NewFixedDamageCalculator() DamageCalculator { return fixedDamageCalculator{} }

func (fixedDamageCalculator) CalculateDamage(_ context.Context, _, _ *Combatant, _, _, _ string, _ *State) (int, bool, float64, []string) {
	return 10, false, 1.0, nil
}

func (fixedDamageCalculator) Speed(_ context.Context, c *Combatant) int {
	return c.Stats.Speed
}

// AbilityHandler implements ability-driven effects: on-entry hooks, and
// weather damage/healing ticks. It is an optional enhanced subsystem; the
// engine wires in noOpAbilityHandler when the caller supplies none.
type AbilityHandler interface {
	TriggerOnEntry(ctx context.Context, c *Combatant, state *State) []string
	ApplyWeatherDamage(ctx context.Context, c *Combatant, state *State) []string
	ApplyWeatherHealing(ctx context.Context, c *Combatant, state *State) []string
}

// noOpAbilityHandler is the engine's reduced-fidelity fallback: no ability
// ever does anything, and weather never damages or heals.
type noOpAbilityHandler struct{}

// NewNoOpAbilityHandler returns a Handler with no ability behavior at all.
func NewNoOpAbilityHandler() AbilityHandler { return noOpAbilityHandler{} }

func (noOpAbilityHandler) TriggerOnEntry(context.Context, *Combatant, *State) []string { return nil }
func (noOpAbilityHandler) ApplyWeatherDamage(context.Context, *Combatant, *State) []string {
	return nil
}
func (noOpAbilityHandler) ApplyWeatherHealing(context.Context, *Combatant, *State) []string {
	return nil
}

// Logger is the engine's injectable structured-logging contract, for
// engine-internal diagnostics only — narration is returned to the caller
// separately and the two channels are never conflated.
type Logger interface {
	Debug(msg string, kv ...any)
	Info(msg string, kv ...any)
	Warn(msg string, kv ...any)
	Error(msg string, kv ...any)
}

// noOpLogger discards everything. It is the default when the caller
// supplies no Logger.
type noOpLogger struct{}

// NewNoOpLogger returns a Logger that discards every call.
func NewNoOpLogger() Logger { return noOpLogger{} }

func (noOpLogger) Debug(string, ...any) {}
func (noOpLogger) Info(string, ...any)  {}
func (noOpLogger) Warn(string, ...any)  {}
func (noOpLogger) Error(string, ...any) {}
