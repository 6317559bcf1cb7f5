// Package bnb - search engine.
//
// The engine keeps configuration, the ranked items, the frontier and the
// incumbent in one struct that lives for a single call, so Knapsack is
// reentrant and has no package-level state.
//
// Expansion of a popped node u (level L):
//  1. If pruning is on and u.Bound ≤ best (the incumbent improved after u
//     was queued), u is discarded.
//  2. If L == n−1, u is terminal: nothing left to decide.
//  3. Include child (item L+1 taken): if it fits and beats the incumbent,
//     the incumbent is updated immediately, before the child's own pruning
//     test. The child is queued iff bound > best.
//  4. Exclude child (item L+1 skipped): queued iff bound > best, tested
//     against the incumbent as updated in step 3.
//
// Without pruning every feasible child is queued, so the whole feasible
// tree is enumerated.

package bnb

import "slices"

type engine struct {
	// Configuration
	capacity int64
	n        int
	items    []Ranked
	prune    bool

	// Hooks (nil when not set)
	onNode    func(Node)
	onImprove func(int64)

	// Search state
	frontier frontier
	seq      uint64

	// Incumbent
	best       int64
	bestWeight int64
	bestTaken  *choice

	// Statistics
	explored int
	pruned   int
}

func newEngine(capacity int64, ranked []Ranked, opts Options) *engine {
	return &engine{
		capacity:  capacity,
		n:         len(ranked),
		items:     ranked,
		prune:     opts.Prune,
		onNode:    opts.OnNode,
		onImprove: opts.OnImprove,
		frontier:  newFrontier(opts.Strategy, 2*len(ranked)+1),
	}
}

// push assigns the insertion sequence and queues n.
func (e *engine) push(n *node) {
	n.seq = e.seq
	e.seq++
	e.frontier.Push(n)
}

// promising reports whether a child may enter the frontier.
func (e *engine) promising(c *node) bool {
	if !e.prune {
		return c.Weight <= e.capacity
	}

	return c.Bound > float64(e.best)
}

// offer computes the child's bound, reports it, and queues or prunes it.
func (e *engine) offer(c *node) {
	c.Bound = e.upperBound(c.Level, c.Value, c.Weight)
	if e.onNode != nil {
		e.onNode(c.Node)
	}
	if e.promising(c) {
		e.push(c)
		return
	}
	e.pruned++
}

// improve records c as the new incumbent.
func (e *engine) improve(c *node) {
	e.best = c.Value
	e.bestWeight = c.Weight
	e.bestTaken = c.taken
	if e.onImprove != nil {
		e.onImprove(e.best)
	}
}

// expand produces and offers both children of u.
func (e *engine) expand(u *node) {
	var (
		level = u.Level + 1
		it    = e.items[level]
	)

	include := &node{Node: Node{
		Level:  level,
		Value:  u.Value + it.Value,
		Weight: u.Weight + it.Weight,
	}}
	if include.Weight <= e.capacity {
		include.taken = &choice{rank: level, next: u.taken}
		if include.Value > e.best {
			e.improve(include)
		}
	}
	e.offer(include)

	exclude := &node{
		Node:  Node{Level: level, Value: u.Value, Weight: u.Weight},
		taken: u.taken,
	}
	e.offer(exclude)
}

// run drives the search until the frontier is empty.
func (e *engine) run() {
	root := &node{Node: Node{Level: -1}}
	root.Bound = e.upperBound(root.Level, 0, 0)
	e.push(root)

	var u *node
	for e.frontier.Len() > 0 {
		u = e.frontier.Pop()
		if e.prune && u.Bound <= float64(e.best) {
			e.pruned++
			continue
		}
		e.explored++
		if u.Level == e.n-1 {
			continue
		}
		e.expand(u)
	}
}

// result materializes the incumbent into caller terms.
func (e *engine) result() Result {
	selected := make([]int, 0, e.n)
	var c *choice
	for c = e.bestTaken; c != nil; c = c.next {
		selected = append(selected, e.items[c.rank].Index)
	}
	slices.Sort(selected)

	return Result{
		Value:    e.best,
		Weight:   e.bestWeight,
		Selected: selected,
		Explored: e.explored,
		Pruned:   e.pruned,
	}
}

// Knapsack validates the instance, ranks the items by density and runs the
// branch-and-bound search.
//
// Validation (in order), all before any search work:
//  1. options                  (ErrOptionViolation)
//  2. capacity ≥ 0             (ErrInvalidCapacity)
//  3. weight > 0, value ≥ 0    (ErrInvalidItem)
//  4. totals in range          (ErrValueOverflow)
//
// An empty item list returns a zero Result without searching.
// The items slice is not modified.
func Knapsack(capacity int64, items []Item, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.err != nil {
		return Result{}, cfg.err
	}

	if err := validateInstance(capacity, items); err != nil {
		return Result{}, err
	}
	if len(items) == 0 {
		return Result{Selected: []int{}}, nil
	}

	e := newEngine(capacity, SortByDensity(items), cfg)
	e.run()

	return e.result(), nil
}

// Solve returns the maximum achievable value for the instance using the
// default options. Errors are the validation sentinels of Knapsack; on error
// the returned value is 0 and must be ignored.
func Solve(capacity int64, items []Item) (int64, error) {
	res, err := Knapsack(capacity, items)
	if err != nil {
		return 0, err
	}

	return res.Value, nil
}
