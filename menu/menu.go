// SPDX-License-Identifier: MIT

package menu

import (
	"math"

	"github.com/katalvlaran/complx/internal/search"
)

// Optimizer is the pending phase of a menu search. It holds configuration
// only and has no Report method.
type Optimizer struct {
	cfg search.Config
}

// New returns a pending Optimizer.
func New(opts ...Option) *Optimizer {
	return &Optimizer{cfg: search.Apply(opts...)}
}

// engine holds the mutable state of one backtracking run. Parallel runs use
// one engine per branch.
type engine struct {
	target int
	base   []Dish

	// working subset, pushed/popped around each recursive call
	curr []Dish

	best     []Dish
	bestDiff int
	found    bool
	explored int
}

func newEngine(target int, base []Dish) *engine {
	return &engine{
		target:   target,
		base:     base,
		curr:     make([]Dish, 0, len(base)),
		bestDiff: math.MaxInt,
	}
}

// consider evaluates the current subset as a candidate.
func (e *engine) consider(total int) {
	e.explored++
	if total < e.target || total-e.target >= e.bestDiff {
		return
	}
	e.bestDiff = total - e.target
	e.best = append(e.best[:0], e.curr...)
	e.found = true
}

// backtrack visits the current node, then every extension of it by a dish
// at index ≥ entry (choose / explore / un-choose).
func (e *engine) backtrack(entry, total int) {
	e.consider(total)
	for i := entry; i < len(e.base); i++ {
		d := e.base[i]
		e.curr = append(e.curr, d)
		e.backtrack(i+1, total+d.Calories)
		e.curr = e.curr[:len(e.curr)-1]
	}
}

// branch explores the subtree of subsets whose lowest index is first.
func (e *engine) branch(first int) {
	d := e.base[first]
	e.curr = append(e.curr, d)
	e.backtrack(first+1, d.Calories)
	e.curr = e.curr[:0]
}

// FindOptimalMenu searches every subset of base for the smallest
// non-negative overshoot over target and returns the completed result.
// base is not modified.
//
// Complexity: O(n·2ⁿ) time, O(n) memory per worker.
func (o *Optimizer) FindOptimalMenu(target int, base []Dish) *Ready {
	log := o.cfg.Logger.With("optimizer", "menu")
	log.Debug("search started", "target", target, "dishes", len(base), "workers", o.cfg.Workers)

	var e *engine
	if o.cfg.Workers <= 1 {
		e = newEngine(target, base)
		e.backtrack(0, 0)
	} else {
		e = o.parallel(target, base)
	}

	r := &Ready{
		target:    target,
		overshoot: e.bestDiff,
		found:     e.found,
		explored:  e.explored,
	}
	if e.found {
		r.menu = append([]Dish{}, e.best...)
	}
	log.Debug("search finished", "found", r.found, "overshoot", r.overshoot, "explored", r.explored)

	return r
}

// parallel evaluates the empty subset on the caller's goroutine, forks one
// branch per first dish, and reduces branches in index order so the
// first-seen witness matches the sequential enumeration.
func (o *Optimizer) parallel(target int, base []Dish) *engine {
	root := newEngine(target, base)
	root.consider(0)

	branches := make([]*engine, len(base))
	search.Fork(len(base), o.cfg.Workers, func(i int) {
		b := newEngine(target, base)
		b.branch(i)
		branches[i] = b
	})

	for _, b := range branches {
		root.explored += b.explored
		if b.found && b.bestDiff < root.bestDiff {
			root.bestDiff = b.bestDiff
			root.best = b.best
			root.found = true
		}
	}

	return root
}
