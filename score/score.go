// SPDX-License-Identifier: MIT

package score

import (
	"fmt"
	"math"

	"github.com/katalvlaran/complx/internal/search"
)

// Optimizer is the pending phase of an assignment search: a validated,
// privately owned preference matrix and configuration. It has no Report
// method.
type Optimizer struct {
	prefs    Preferences
	teams    int
	arbiters int
	cfg      search.Config
}

// Build validates p and returns a pending Optimizer holding a deep copy.
//
// Errors, in check order: ErrNoTeams, ErrOddTeams, ErrRaggedRows,
// ErrTooFewArbiters, ErrPreferenceRange. The optimizer is never constructed
// on error.
// Complexity: O(T×A).
func Build(p Preferences, opts ...Option) (*Optimizer, error) {
	teams := p.Teams()
	if teams == 0 {
		return nil, ErrNoTeams
	}
	if teams%2 != 0 {
		return nil, fmt.Errorf("%d teams: %w", teams, ErrOddTeams)
	}
	arbiters := p.Arbiters()
	for t, row := range p {
		if len(row) != arbiters {
			return nil, fmt.Errorf("team %d rates %d arbiters, team 0 rates %d: %w", t, len(row), arbiters, ErrRaggedRows)
		}
	}
	if arbiters == 0 || teams/2 > arbiters {
		return nil, fmt.Errorf("%d arbiters for %d matches: %w", arbiters, teams/2, ErrTooFewArbiters)
	}

	limit := MaxPreference(teams / 2)
	cp := make(Preferences, teams)
	for t := range p {
		for a, v := range p[t] {
			if v != Refused && (v > limit || v < -limit) {
				return nil, fmt.Errorf("team %d, arbiter %d: %d outside ±%d: %w", t, a, v, limit, ErrPreferenceRange)
			}
		}
		cp[t] = append([]int(nil), p[t]...)
	}

	return &Optimizer{
		prefs:    cp,
		teams:    teams,
		arbiters: arbiters,
		cfg:      search.Apply(opts...),
	}, nil
}

// engine is the scratch state of one backtracking run.
type engine struct {
	prefs    Preferences
	teams    int
	arbiters int
	matches  int

	// curr packs (arbiter, team) of match k at 2k, 2k+1
	curr     []int
	usedArb  []bool
	usedTeam []bool

	best      []int
	bestScore int
	found     bool
	explored  int
}

func (o *Optimizer) newEngine() *engine {
	return &engine{
		prefs:     o.prefs,
		teams:     o.teams,
		arbiters:  o.arbiters,
		matches:   o.teams / 2,
		curr:      make([]int, o.teams),
		usedArb:   make([]bool, o.arbiters),
		usedTeam:  make([]bool, o.teams),
		best:      make([]int, o.teams),
		bestScore: math.MinInt,
	}
}

// acceptable reports whether some unused team accepts arbiter a.
func (e *engine) acceptable(a int) bool {
	for t := 0; t < e.teams; t++ {
		if !e.usedTeam[t] && e.prefs[t][a] != Refused {
			return true
		}
	}

	return false
}

// assign fills match slot m with (a, t); unassign reverts it.
func (e *engine) assign(m, a, t int) {
	e.curr[2*m], e.curr[2*m+1] = a, t
	e.usedArb[a], e.usedTeam[t] = true, true
}

func (e *engine) unassign(m, a, t int) {
	e.curr[2*m], e.curr[2*m+1] = 0, 0
	e.usedArb[a], e.usedTeam[t] = false, false
}

// backtrack fills match slots from m onwards.
func (e *engine) backtrack(m, score int) {
	e.explored++
	if m == e.matches {
		if !e.found || score > e.bestScore {
			e.bestScore = score
			copy(e.best, e.curr)
			e.found = true
		}
		return
	}

	for a := 0; a < e.arbiters; a++ {
		if e.usedArb[a] || !e.acceptable(a) {
			continue
		}
		for t := 0; t < e.teams; t++ {
			if e.usedTeam[t] || e.prefs[t][a] == Refused {
				continue
			}
			e.assign(m, a, t)
			e.backtrack(m+1, score+e.prefs[t][a])
			e.unassign(m, a, t)
		}
	}
}

// FindOptimalAssignment runs the backtracking search and returns the
// completed result. When no assignment satisfies the constraints the result
// reports so instead of failing.
func (o *Optimizer) FindOptimalAssignment() *Ready {
	log := o.cfg.Logger.With("optimizer", "score")
	log.Debug("search started", "teams", o.teams, "arbiters", o.arbiters, "workers", o.cfg.Workers)

	var e *engine
	if o.cfg.Workers <= 1 {
		e = o.newEngine()
		e.backtrack(0, 0)
	} else {
		e = o.parallel()
	}

	r := &Ready{
		prefs:      o.prefs,
		assignment: append([]int(nil), e.best...),
		best:       e.bestScore,
		found:      e.found,
		explored:   e.explored,
	}
	log.Debug("search finished", "found", r.found, "score", r.best, "explored", r.explored)

	return r
}

// parallel forks one branch per (arbiter, team) choice for the first match,
// in enumeration order, and keeps the first branch reaching the maximum.
func (o *Optimizer) parallel() *engine {
	root := o.newEngine()
	root.explored = 1

	n := o.arbiters * o.teams
	branches := make([]*engine, n)
	search.Fork(n, o.cfg.Workers, func(i int) {
		a, t := i/o.teams, i%o.teams
		b := o.newEngine()
		branches[i] = b
		if o.prefs[t][a] == Refused {
			return
		}
		b.assign(0, a, t)
		b.backtrack(1, o.prefs[t][a])
	})

	for _, b := range branches {
		root.explored += b.explored
		if b.found && (!root.found || b.bestScore > root.bestScore) {
			root.bestScore = b.bestScore
			copy(root.best, b.best)
			root.found = true
		}
	}

	return root
}
