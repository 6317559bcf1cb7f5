package bnb

import (
	"math/bits"
	"slices"
)

// SortByDensity returns the items ranked by value density, densest first.
// Equal densities keep their input order, so the ranking is deterministic.
// The input slice is not modified.
//
// Densities are compared exactly by cross-multiplication
// (a.Value·b.Weight vs b.Value·a.Weight) in 128-bit arithmetic, so ratios
// such as 1/3 and 2/6 are recognized as ties. Items are expected to be
// validated (Weight > 0, Value ≥ 0).
//
// Complexity: O(n log n) time, O(n) space.
func SortByDensity(items []Item) []Ranked {
	ranked := make([]Ranked, len(items))
	var i int
	for i = range items {
		ranked[i] = Ranked{Item: items[i], Index: i}
	}
	slices.SortStableFunc(ranked, func(a, b Ranked) int {
		return compareDensity(b.Item, a.Item)
	})

	return ranked
}

// compareDensity returns -1, 0 or +1 when a is less dense than, as dense as,
// or denser than b.
func compareDensity(a, b Item) int {
	lhsHi, lhsLo := bits.Mul64(uint64(a.Value), uint64(b.Weight))
	rhsHi, rhsLo := bits.Mul64(uint64(b.Value), uint64(a.Weight))
	switch {
	case lhsHi < rhsHi, lhsHi == rhsHi && lhsLo < rhsLo:
		return -1
	case lhsHi == rhsHi && lhsLo == rhsLo:
		return 0
	default:
		return 1
	}
}
