// Package instance - deterministic random instances.
//
// Generate is used by the CLI "generate" command, by tests and by
// benchmarks. The same GenConfig always yields the same Instance.
//
// Seed policy: Seed == 0 ⇒ defaultSeed; otherwise the seed is used verbatim.
// math/rand.Rand is not goroutine-safe; every call owns its own stream.

package instance

import (
	"fmt"
	"math"
	"math/rand"
)

// defaultSeed is the stream used when callers pass Seed == 0.
const defaultSeed int64 = 1

// GenConfig controls Generate.
type GenConfig struct {
	// Name of the generated instance; empty ⇒ "random-n<N>-s<Seed>".
	Name string

	// N is the number of items (≥ 0).
	N int

	// Seed selects the random stream (0 ⇒ defaultSeed).
	Seed int64

	// MaxWeight bounds item weights to [1, MaxWeight] (≥ 1).
	MaxWeight int64

	// MaxValue bounds item values to [0, MaxValue] (0 ≤ MaxValue < MaxInt64).
	MaxValue int64

	// CapacityRatio sets capacity = ⌊ratio · total weight⌋ (0 ≤ ratio ≤ 1).
	CapacityRatio float64
}

// DefaultGenConfig returns a 10-item configuration with weights and values
// up to 100 and half of the total weight as capacity.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		N:             10,
		MaxWeight:     100,
		MaxValue:      100,
		CapacityRatio: 0.5,
	}
}

// rngFromSeed returns a deterministic *rand.Rand honoring the seed policy.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

func (c GenConfig) validate() error {
	switch {
	case c.N < 0:
		return fmt.Errorf("%w: N=%d", ErrBadGenConfig, c.N)
	case c.MaxWeight < 1:
		return fmt.Errorf("%w: MaxWeight=%d", ErrBadGenConfig, c.MaxWeight)
	case c.MaxValue < 0 || c.MaxValue == math.MaxInt64:
		return fmt.Errorf("%w: MaxValue=%d", ErrBadGenConfig, c.MaxValue)
	case !(c.CapacityRatio >= 0 && c.CapacityRatio <= 1):
		return fmt.Errorf("%w: CapacityRatio=%g", ErrBadGenConfig, c.CapacityRatio)
	}

	return nil
}

// Generate builds a random instance from cfg.
//
// Complexity: O(N).
func Generate(cfg GenConfig) (Instance, error) {
	if err := cfg.validate(); err != nil {
		return Instance{}, err
	}

	rng := rngFromSeed(cfg.Seed)
	in := Instance{
		Name:  cfg.Name,
		Items: make([]Entry, cfg.N),
	}
	if in.Name == "" {
		in.Name = fmt.Sprintf("random-n%d-s%d", cfg.N, cfg.Seed)
	}

	var (
		i     int
		total int64
	)
	for i = 0; i < cfg.N; i++ {
		in.Items[i] = Entry{
			Name:   fmt.Sprintf("item-%d", i),
			Weight: 1 + rng.Int63n(cfg.MaxWeight),
			Value:  rng.Int63n(cfg.MaxValue + 1),
		}
		total += in.Items[i].Weight
	}
	in.Capacity = int64(cfg.CapacityRatio * float64(total))

	return in, nil
}
