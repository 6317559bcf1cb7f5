package bnb

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned by the knapsack solver.
var (
	// ErrInvalidCapacity indicates a negative knapsack capacity.
	ErrInvalidCapacity = errors.New("bnb: capacity must be non-negative")

	// ErrInvalidItem indicates an item with non-positive weight or negative value.
	// A zero weight would make the item density undefined.
	ErrInvalidItem = errors.New("bnb: item weight must be positive and value non-negative")

	// ErrValueOverflow indicates that the summed item values exceed 2⁵³ (the
	// largest range in which float64 bounds compare exactly against integer
	// values) or that the summed weights overflow int64.
	ErrValueOverflow = errors.New("bnb: item totals out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bnb: invalid option supplied")
)

// Item is a single knapsack item. Weight must be positive, Value non-negative.
type Item struct {
	Weight int64
	Value  int64
}

// Density returns Value/Weight. The caller guarantees Weight > 0.
func (it Item) Density() float64 {
	return float64(it.Value) / float64(it.Weight)
}

// Ranked is an item placed in density order. Index is the item's position
// in the caller's original slice.
type Ranked struct {
	Item
	Index int
}

// Node is a partial decision state of the search tree.
//
// Level is the ranked index of the last decided item (-1 for the root).
// Value and Weight are the totals of the included items so far.
// Bound is the optimistic estimate of the best total reachable from here.
type Node struct {
	Level  int
	Value  int64
	Weight int64
	Bound  float64
}

// Result holds the outcome of a knapsack search.
type Result struct {
	// Value is the maximum achievable total value.
	Value int64

	// Weight is the total weight of the selected items.
	Weight int64

	// Selected lists the original indices of the chosen items, ascending.
	Selected []int

	// Explored counts the nodes taken from the frontier and processed.
	Explored int

	// Pruned counts nodes discarded without expansion: children whose bound
	// did not beat the incumbent, and frontier nodes overtaken by a later
	// improvement of the incumbent.
	Pruned int
}

// Strategy selects the order in which pending nodes are expanded.
type Strategy int

const (
	// BestFirst expands the pending node with the largest bound first.
	BestFirst Strategy = iota

	// BreadthFirst expands nodes in insertion order (FIFO).
	BreadthFirst

	// DepthFirst expands the most recently inserted node first (LIFO).
	DepthFirst
)

// String returns the canonical flag spelling of the strategy.
func (s Strategy) String() string {
	switch s {
	case BestFirst:
		return "best-first"
	case BreadthFirst:
		return "breadth-first"
	case DepthFirst:
		return "depth-first"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

func (s Strategy) valid() bool {
	return s == BestFirst || s == BreadthFirst || s == DepthFirst
}

// ParseStrategy maps a name to a Strategy. Accepted (case-insensitive):
// "best-first"/"best", "breadth-first"/"bfs"/"fifo", "depth-first"/"dfs"/"lifo".
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "best-first", "best":
		return BestFirst, nil
	case "breadth-first", "bfs", "fifo":
		return BreadthFirst, nil
	case "depth-first", "dfs", "lifo":
		return DepthFirst, nil
	default:
		return 0, fmt.Errorf("%w: unknown strategy %q", ErrOptionViolation, name)
	}
}

// Options configures a knapsack search.
type Options struct {
	// Strategy is the frontier traversal order. Default BestFirst.
	Strategy Strategy

	// Prune enables the bound-vs-incumbent test. Disabling it makes the
	// search enumerate every feasible node; intended for testing only.
	Prune bool

	// OnNode is called for every constructed child, after its bound is set.
	OnNode func(n Node)

	// OnImprove is called each time the incumbent value increases.
	OnImprove func(value int64)

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Knapsack.
type Option func(*Options)

// DefaultOptions returns Options with BestFirst traversal, pruning enabled
// and no hooks.
func DefaultOptions() Options {
	return Options{
		Strategy: BestFirst,
		Prune:    true,
	}
}

// WithStrategy sets the traversal order. An unknown strategy is recorded and
// surfaced as ErrOptionViolation when Knapsack runs.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if !s.valid() {
			o.err = fmt.Errorf("%w: unknown strategy %d", ErrOptionViolation, int(s))
			return
		}
		o.Strategy = s
	}
}

// WithoutPruning disables bound pruning (testing and benchmarking only).
func WithoutPruning() Option {
	return func(o *Options) {
		o.Prune = false
	}
}

// WithOnNode registers a callback invoked for every constructed child node.
func WithOnNode(fn func(n Node)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnNode = fn
		}
	}
}

// WithOnImprove registers a callback invoked on every incumbent improvement.
func WithOnImprove(fn func(value int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnImprove = fn
		}
	}
}
