package bnb

import (
	"fmt"
	"math"
)

// maxExactValue is 2⁵³: up to here every integer is exact in float64, so a
// float bound compares against an integer incumbent without rounding.
const maxExactValue = int64(1) << 53

// validateInstance checks the capacity and every item before search starts.
//
// Stages:
//  1. capacity ≥ 0                    (ErrInvalidCapacity)
//  2. per item: weight > 0, value ≥ 0  (ErrInvalidItem, wrapped with the index)
//  3. running totals stay in range     (ErrValueOverflow)
//
// Complexity: O(n).
func validateInstance(capacity int64, items []Item) error {
	if capacity < 0 {
		return fmt.Errorf("%w: capacity=%d", ErrInvalidCapacity, capacity)
	}

	var (
		i              int
		it             Item
		sumW, sumValue int64
	)
	for i, it = range items {
		if it.Weight <= 0 {
			return fmt.Errorf("%w: item %d weight=%d", ErrInvalidItem, i, it.Weight)
		}
		if it.Value < 0 {
			return fmt.Errorf("%w: item %d value=%d", ErrInvalidItem, i, it.Value)
		}
		if sumW > math.MaxInt64-it.Weight {
			return fmt.Errorf("%w: total weight overflows at item %d", ErrValueOverflow, i)
		}
		if sumValue > maxExactValue-it.Value {
			return fmt.Errorf("%w: total value exceeds %d at item %d", ErrValueOverflow, maxExactValue, i)
		}
		sumW += it.Weight
		sumValue += it.Value
	}

	return nil
}
