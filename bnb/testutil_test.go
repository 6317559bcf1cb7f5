// Package bnb_test provides helpers shared across *_test.go files of the
// branch-and-bound solver: fixtures, an exhaustive oracle and seeded
// random instances.
package bnb_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/katalvlaran/knapsack/bnb"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// seedDet is the base seed for randomized property tests.
	seedDet = int64(20240917)

	// propertyRuns is the number of random instances per property test.
	propertyRuns = 60

	// maxOracleN keeps the exhaustive oracle cheap (2ⁿ subsets).
	maxOracleN = 14

	// boundSlack absorbs float64 rounding in the fractional term.
	boundSlack = 1e-9
)

// strategies lists every traversal order; property tests run them all.
var strategies = []bnb.Strategy{bnb.BestFirst, bnb.BreadthFirst, bnb.DepthFirst}

// -----------------------------------------------------------------------------
// Fixtures
// -----------------------------------------------------------------------------

type scenario struct {
	name     string
	capacity int64
	items    []bnb.Item
	want     int64
	selected []int
}

// pairs converts (weight, value) pairs into items.
func pairs(wv ...[2]int64) []bnb.Item {
	items := make([]bnb.Item, len(wv))
	var i int
	for i = range wv {
		items[i] = bnb.Item{Weight: wv[i][0], Value: wv[i][1]}
	}

	return items
}

// scenarios are hand-checked instances with a unique optimal subset.
func scenarios() []scenario {
	return []scenario{
		{
			name:     "three_items_cap50",
			capacity: 50,
			items:    pairs([2]int64{10, 60}, [2]int64{20, 100}, [2]int64{30, 120}),
			want:     220,
			selected: []int{1, 2},
		},
		{
			name:     "four_items_cap10",
			capacity: 10,
			items:    pairs([2]int64{5, 10}, [2]int64{4, 40}, [2]int64{6, 30}, [2]int64{3, 50}),
			want:     90,
			selected: []int{1, 3},
		},
		{
			name:     "zero_capacity",
			capacity: 0,
			items:    pairs([2]int64{1, 1}),
			want:     0,
			selected: []int{},
		},
		{
			name:     "ten_items_cap269",
			capacity: 269,
			items: pairs(
				[2]int64{95, 55}, [2]int64{4, 10}, [2]int64{60, 47}, [2]int64{32, 5}, [2]int64{23, 4},
				[2]int64{72, 50}, [2]int64{80, 8}, [2]int64{62, 61}, [2]int64{65, 85}, [2]int64{46, 87},
			),
			want:     295,
			selected: []int{1, 2, 3, 7, 8, 9},
		},
	}
}

// -----------------------------------------------------------------------------
// Oracle and generators
// -----------------------------------------------------------------------------

// bruteForce enumerates every subset and returns the best feasible value.
func bruteForce(capacity int64, items []bnb.Item) int64 {
	var best int64
	var walk func(i int, w, v int64)
	walk = func(i int, w, v int64) {
		if w > capacity {
			return
		}
		if i == len(items) {
			if v > best {
				best = v
			}
			return
		}
		walk(i+1, w+items[i].Weight, v+items[i].Value)
		walk(i+1, w, v)
	}
	walk(0, 0, 0)

	return best
}

// randomItems returns n items with weights in [1, maxW] and values in [0, maxV].
func randomItems(rng *rand.Rand, n int, maxW, maxV int64) []bnb.Item {
	items := make([]bnb.Item, n)
	var i int
	for i = 0; i < n; i++ {
		items[i] = bnb.Item{
			Weight: 1 + rng.Int63n(maxW),
			Value:  rng.Int63n(maxV + 1),
		}
	}

	return items
}

// randomInstance returns items plus a capacity around half their total weight.
func randomInstance(rng *rand.Rand, n int) (int64, []bnb.Item) {
	items := randomItems(rng, n, 40, 60)
	var total int64
	var it bnb.Item
	for _, it = range items {
		total += it.Weight
	}

	return rng.Int63n(total + 1), items
}

// -----------------------------------------------------------------------------
// Generic helpers
// -----------------------------------------------------------------------------

// Repeat runs fn N times. Useful for determinism checks.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	var i int
	for i = 0; i < n; i++ {
		fn(t)
	}
}

// mustErrIs asserts that err matches target using errors.Is.
func mustErrIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v, got %v", target, err)
	}
}

// sumSelected returns the total weight and value of the selected indices.
func sumSelected(items []bnb.Item, selected []int) (int64, int64) {
	var w, v int64
	var idx int
	for _, idx = range selected {
		w += items[idx].Weight
		v += items[idx].Value
	}

	return w, v
}
