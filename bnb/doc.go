// Package bnb solves the 0/1 knapsack problem exactly with branch-and-bound.
//
// Given a capacity and a list of items (weight, value), Knapsack finds the
// maximum total value of a subset whose total weight does not exceed the
// capacity. Every item is either taken whole or left out.
//
// Algorithm:
//
//  1. Preprocessing: items are ranked by value density (value ÷ weight),
//     densest first (SortByDensity). Ties keep the input order.
//  2. Search: an implicit binary tree is explored; the node at level i has
//     decided items 0..i of the ranked list. Each expansion produces an
//     "include item i+1" child and an "exclude item i+1" child.
//  3. Bounding: every child gets the fractional-relaxation bound: the
//     remaining capacity is filled greedily with whole items in density
//     order, then with the fitting fraction of the first item that does not
//     fit. This bound never underestimates the best completion.
//  4. Pruning: a child is kept only if its bound is strictly greater than
//     the best value found so far. Kept children wait in a frontier.
//
// Traversal order (Strategy) decides which pending node is expanded next:
//
//	BestFirst   : largest bound first (default; tightens the incumbent early).
//	BreadthFirst: FIFO, level by level.
//	DepthFirst  : LIFO, one branch down to the leaves before the next.
//
// The optimum does not depend on the strategy; only the number of explored
// nodes does.
//
// Complexity:
//   - Preprocessing: O(n log n).
//   - Bound: O(n) per node.
//   - Search: O(2ⁿ) nodes in the worst case; pruning keeps it far smaller
//     in practice. Frontier operations are O(1) (FIFO/LIFO) or O(log F)
//     (BestFirst) where F is the frontier size.
//
// Errors (sentinel, see types.go):
//
//	ErrInvalidCapacity: capacity < 0.
//	ErrInvalidItem: an item with weight ≤ 0 or value < 0.
//	ErrValueOverflow: item totals exceed the exactly representable range.
//	ErrOptionViolation: an invalid Option was supplied.
//
// An empty item list is not an error: the answer is 0.
//
// Example:
//
//	items := []bnb.Item{{Weight: 10, Value: 60}, {Weight: 20, Value: 100}, {Weight: 30, Value: 120}}
//	res, err := bnb.Knapsack(50, items)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Value, res.Selected) // 220 [1 2]
package bnb
