package rng_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/FrostyKingzly/PokebotRANKED/rng"
)

func TestNew_Deterministic(t *testing.T) {
	a := rng.New(42)
	b := rng.New(42)

	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Intn(100), b.Intn(100))
	}
}

func TestChance_Boundaries(t *testing.T) {
	src := rng.NewMockSource(nil, []float64{0.999})
	assert.False(t, rng.Chance(src, 0))
	assert.True(t, rng.Chance(src, 1))
	// 0.999 < 0.5 is false, so a 50% chance with a high roll fails.
	assert.False(t, rng.Chance(src, 0.5))
}

func TestChance_UsesSourceWhenMiddle(t *testing.T) {
	src := rng.NewMockSource(nil, []float64{0.1})
	assert.True(t, rng.Chance(src, 0.5))
}

func TestMockSource_Cycles(t *testing.T) {
	src := rng.NewMockSource([]int{1, 2, 3}, nil)
	got := []int{src.Intn(10), src.Intn(10), src.Intn(10), src.Intn(10)}
	assert.Equal(t, []int{1, 2, 3, 1}, got)
}

func TestPick_EmptyReturnsSentinel(t *testing.T) {
	assert.Equal(t, -1, rng.Pick(rng.New(1), 0))
}
