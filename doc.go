// Package knapsack is an exact solver for the 0/1 knapsack problem, plus the
// tooling around it: instance files, a seeded generator and a command-line
// front end.
//
// 🚀 What is in the box?
//
//	• bnb/       - branch-and-bound search with a fractional (LP-relaxation) bound
//	               and three frontier orders: best-first, breadth-first, depth-first
//	• instance/  - JSON / YAML / TOML instance files and a deterministic generator
//	• cmd/knapsack - the "knapsack solve" and "knapsack generate" commands
//
// ✨ Guarantees
//
//   - Exact – the returned value is the true optimum, never an approximation
//   - Deterministic – equal inputs give equal results, counters included
//   - Validated – bad capacities and items fail fast with sentinel errors
//   - Observable – OnNode / OnImprove hooks expose every step of the search
//
// Quick example:
//
//	items := []bnb.Item{{Weight: 10, Value: 60}, {Weight: 20, Value: 100}, {Weight: 30, Value: 120}}
//	best, _ := bnb.Solve(50, items) // 220: items 1 and 2
//
// From the shell:
//
//	knapsack solve -c 50 -i 10:60 -i 20:100 -i 30:120
//	knapsack generate -n 30 --seed 7 -o random.yaml && knapsack solve -f random.yaml
package knapsack
