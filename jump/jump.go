// SPDX-License-Identifier: MIT

package jump

import (
	"fmt"

	"github.com/katalvlaran/complx/field"
	"github.com/katalvlaran/complx/internal/search"
)

// Optimizer is the pending phase of a jump search. It owns the visit grid
// used as backtracking scratch. It is not safe for concurrent use.
type Optimizer struct {
	size    field.Field
	jump    field.Jump
	visited *field.VisitGrid
	cfg     search.Config
	err     error
}

// New returns a pending Optimizer for a field of the given size, with an
// all-false visit grid. A field too large to index is not an error here;
// FindMinJumps reports it as field.ErrTooLarge.
func New(size field.Field, jump field.Jump, opts ...Option) *Optimizer {
	return &Optimizer{
		size:    size,
		jump:    jump,
		visited: field.NewVisitGrid(size),
		cfg:     search.Apply(opts...),
		err:     size.Validate(),
	}
}

// Clean reports whether the visit grid holds no marks.
func (o *Optimizer) Clean() bool { return o.visited.Clean() }

// engine is one depth-first search over a visit grid. Parallel branches
// each own an engine and a cloned grid but share best.
type engine struct {
	offsets  [8][2]int
	visited  *field.VisitGrid
	target   field.Point
	best     *search.Incumbent
	explored int
}

// backtrack explores every valid jump from p, p already being marked.
func (e *engine) backtrack(p field.Point, jumps int) {
	e.explored++
	if p == e.target {
		e.best.Offer(jumps)
		return
	}
	if e.best.Beaten(jumps) {
		return
	}
	for _, d := range e.offsets {
		next := p.Move(d)
		if !e.visited.Open(next) {
			continue
		}
		e.visited.Mark(next)
		e.backtrack(next, jumps+1)
		e.visited.Unmark(next)
	}
}

// FindMinJumps returns the minimum number of jumps from start to target.
// ErrOutOfBounds (wrapped with the offending point) is returned before any
// grid mutation when target or start lies outside the field, and
// field.ErrTooLarge when the field cannot be indexed at all.
func (o *Optimizer) FindMinJumps(start, target field.Point) (*Ready, error) {
	if o.err != nil {
		return nil, o.err
	}
	if err := o.size.Check(target); err != nil {
		return nil, fmt.Errorf("target: %w", err)
	}
	if err := o.size.Check(start); err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}

	log := o.cfg.Logger.With("optimizer", "jump")
	log.Debug("search started", "field", fmt.Sprintf("%dx%d", o.size.Width, o.size.Height),
		"jump", fmt.Sprintf("%d/%d", o.jump.DX, o.jump.DY), "start", start, "target", target, "workers", o.cfg.Workers)

	best := search.NewIncumbent()
	root := &engine{
		offsets: o.jump.Offsets(),
		visited: o.visited,
		target:  target,
		best:    best,
	}

	o.visited.Mark(start)
	if o.cfg.Workers <= 1 || start == target {
		root.backtrack(start, 0)
	} else {
		o.parallel(root, start)
	}
	o.visited.Unmark(start)

	r := &Ready{start: start, target: target, explored: root.explored}
	r.minJumps, r.reachable = best.Load()
	log.Debug("search finished", "reachable", r.reachable, "jumps", r.minJumps, "explored", r.explored)

	return r, nil
}

// parallel forks one branch per first jump. Each branch clones the grid
// (start already marked) so no scratch is shared; the incumbent is.
func (o *Optimizer) parallel(root *engine, start field.Point) {
	root.explored++
	branches := make([]*engine, len(root.offsets))
	search.Fork(len(root.offsets), o.cfg.Workers, func(i int) {
		next := start.Move(root.offsets[i])
		if !root.visited.Open(next) {
			return
		}
		b := &engine{
			offsets: root.offsets,
			visited: root.visited.Clone(),
			target:  root.target,
			best:    root.best,
		}
		branches[i] = b
		b.visited.Mark(next)
		b.backtrack(next, 1)
	})
	for _, b := range branches {
		if b != nil {
			root.explored += b.explored
		}
	}
}
