package bnb

// upperBound implements the fractional (LP) relaxation bound.
//
// Starting from the node totals, whole items level+1, level+2, … are added
// in density order while they fit; the first item that does not fit
// contributes remaining·density. Any 0/1 completion of the node takes a
// subset of the same items, and the greedy fractional fill is the optimum
// of the relaxed problem over those items, therefore:
//
//	bound ≥ value of every feasible completion.
//
// A node strictly over capacity has no feasible completion and gets 0.
// A node exactly at capacity gets its own value (the fractional term is 0).
//
// Complexity: O(n − level).
func (e *engine) upperBound(level int, value, weight int64) float64 {
	if weight > e.capacity {
		return 0
	}

	var (
		j     = level + 1
		total = weight
		sum   = value
	)
	for j < e.n && total+e.items[j].Weight <= e.capacity {
		total += e.items[j].Weight
		sum += e.items[j].Value
		j++
	}

	bound := float64(sum)
	if j < e.n {
		// rem·v first: an integral fractional term stays exact.
		bound += float64(e.capacity-total) * float64(e.items[j].Value) / float64(e.items[j].Weight)
	}

	return bound
}
