package instance_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knapsack/bnb"
	"github.com/katalvlaran/knapsack/instance"
)

func TestGenerate_Deterministic(t *testing.T) {
	cfg := instance.DefaultGenConfig()
	cfg.Seed = 42

	a, err := instance.Generate(cfg)
	require.NoError(t, err)
	b, err := instance.Generate(cfg)
	require.NoError(t, err)
	assert.Equal(t, a, b, "same config must yield the same instance")

	cfg.Seed = 43
	c, err := instance.Generate(cfg)
	require.NoError(t, err)
	assert.NotEqual(t, a.Items, c.Items)
}

func TestGenerate_ZeroSeedPolicy(t *testing.T) {
	cfg := instance.DefaultGenConfig()
	zero, err := instance.Generate(cfg)
	require.NoError(t, err)

	cfg.Seed = 1 // defaultSeed
	one, err := instance.Generate(cfg)
	require.NoError(t, err)
	assert.Equal(t, zero.Items, one.Items)
	assert.Equal(t, "random-n10-s0", zero.Name)
}

func TestGenerate_Ranges(t *testing.T) {
	cfg := instance.GenConfig{Name: "ranges", N: 200, Seed: 7, MaxWeight: 5, MaxValue: 3, CapacityRatio: 0.25}
	in, err := instance.Generate(cfg)
	require.NoError(t, err)
	require.Len(t, in.Items, 200)
	assert.Equal(t, "ranges", in.Name)

	var (
		total int64
		e     instance.Entry
	)
	for _, e = range in.Items {
		assert.GreaterOrEqual(t, e.Weight, int64(1))
		assert.LessOrEqual(t, e.Weight, int64(5))
		assert.GreaterOrEqual(t, e.Value, int64(0))
		assert.LessOrEqual(t, e.Value, int64(3))
		total += e.Weight
	}
	assert.Equal(t, int64(0.25*float64(total)), in.Capacity)

	// Generated instances are always valid solver input.
	_, err = bnb.Knapsack(in.Capacity, in.BnbItems())
	assert.NoError(t, err)
}

func TestGenerate_Empty(t *testing.T) {
	cfg := instance.DefaultGenConfig()
	cfg.N = 0
	in, err := instance.Generate(cfg)
	require.NoError(t, err)
	assert.Empty(t, in.Items)
	assert.Zero(t, in.Capacity)
}

func TestGenerate_BadConfig(t *testing.T) {
	bad := []func(*instance.GenConfig){
		func(c *instance.GenConfig) { c.N = -1 },
		func(c *instance.GenConfig) { c.MaxWeight = 0 },
		func(c *instance.GenConfig) { c.MaxValue = -1 },
		func(c *instance.GenConfig) { c.MaxValue = math.MaxInt64 },
		func(c *instance.GenConfig) { c.CapacityRatio = 1.5 },
		func(c *instance.GenConfig) { c.CapacityRatio = math.NaN() },
	}
	var mutate func(*instance.GenConfig)
	for _, mutate = range bad {
		cfg := instance.DefaultGenConfig()
		mutate(&cfg)
		_, err := instance.Generate(cfg)
		assert.ErrorIs(t, err, instance.ErrBadGenConfig)
	}
}
