package battle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FrostyKingzly/PokebotRANKED/data"
	"github.com/FrostyKingzly/PokebotRANKED/status"
)

func loadSampleTables(t *testing.T) (data.MovesDB, data.TypeChart, data.ItemsDB, data.SpeciesDB, data.RulesetHandler) {
	t.Helper()
	moves, err := data.LoadMovesDB([]byte(data.SampleMoves))
	require.NoError(t, err)
	types, err := data.LoadTypeChart([]byte(data.SampleTypeChart))
	require.NoError(t, err)
	items, err := data.LoadItemsDB([]byte(data.SampleItems))
	require.NoError(t, err)
	species, err := data.LoadSpeciesDB([]byte(data.SampleSpecies))
	require.NoError(t, err)
	rulesets, err := data.LoadRulesetHandler([]byte(data.SampleRulesets))
	require.NoError(t, err)
	return moves, types, items, species, rulesets
}

func TestNewEngine_AppliesNoOpDefaults(t *testing.T) {
	moves, types, items, species, rulesets := loadSampleTables(t)

	engine := NewEngine(moves, types, items, species, rulesets)

	assert.Equal(t, "standard", engine.DefaultRulesetTag)
	assert.IsType(t, fixedDamageCalculator{}, engine.Calculator)
	assert.IsType(t, &status.NoOpManager{}, engine.Status)
	assert.IsType(t, noOpAbilityHandler{}, engine.Abilities)
	require.NotNil(t, engine.ItemFX)
	require.NotNil(t, engine.Logger)
}

func TestNewEngine_OptionsOverrideDefaults(t *testing.T) {
	moves, types, items, species, rulesets := loadSampleTables(t)

	engine := NewEngine(moves, types, items, species, rulesets,
		WithStatusManager(status.NewDefaultManager()),
		WithRuleset("ubers"),
		WithRNGSeed(99),
	)

	assert.IsType(t, &status.DefaultManager{}, engine.Status)
	assert.Equal(t, "ubers", engine.DefaultRulesetTag)
	assert.Equal(t, int64(99), engine.RNGSeed)
}

func TestNewEngine_PanicsOnNilRequiredTable(t *testing.T) {
	moves, types, items, species, rulesets := loadSampleTables(t)

	assert.Panics(t, func() {
		NewEngine(nil, types, items, species, rulesets)
	})
	assert.Panics(t, func() {
		NewEngine(moves, types, items, species, nil)
	})
}

func TestNewBattleRNG_DeterministicPerSeedAndIndex(t *testing.T) {
	moves, types, items, species, rulesets := loadSampleTables(t)
	engine := NewEngine(moves, types, items, species, rulesets, WithRNGSeed(5))

	a := engine.newBattleRNG(1)
	b := engine.newBattleRNG(1)

	assert.Equal(t, a.Intn(1000), b.Intn(1000))
}

// spyLogger records every Warn call so tests can assert on the engine's
// diagnostic-logging call sites without a real logging backend.
type spyLogger struct {
	warnings []string
}

func (s *spyLogger) Debug(string, ...any) {}
func (s *spyLogger) Info(string, ...any)  {}
func (s *spyLogger) Warn(msg string, _ ...any) {
	s.warnings = append(s.warnings, msg)
}
func (s *spyLogger) Error(string, ...any) {}

func TestNewEngine_NilCalculatorOptionFallsBackToDefaultAndLogs(t *testing.T) {
	moves, types, items, species, rulesets := loadSampleTables(t)
	logger := &spyLogger{}

	engine := NewEngine(moves, types, items, species, rulesets,
		WithLogger(logger),
		WithCalculator(nil),
	)

	assert.IsType(t, fixedDamageCalculator{}, engine.Calculator)
	assert.Contains(t, logger.warnings, "engine: DamageCalculator resolved nil, falling back to fixed default")
}
