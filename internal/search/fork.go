// SPDX-License-Identifier: MIT

package search

import (
	"math"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Fork runs branch(i) for every i in [0, n) with at most workers branches
// in flight, and returns once all of them have finished. With workers <= 1
// the branches run in order on the calling goroutine.
//
// Branches must not share mutable scratch; each one writes its own result
// slot and the caller reduces the slots in index order afterwards, which
// keeps first-seen tie-breaking identical to a sequential run.
func Fork(n, workers int, branch func(i int)) {
	if workers <= 1 || n <= 1 {
		for i := 0; i < n; i++ {
			branch(i)
		}
		return
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			branch(i)
			return nil
		})
	}
	_ = g.Wait() // branches never fail
}

// Incumbent is a best-so-far minimum shared by concurrent branches.
// The zero value is not ready for use; call NewIncumbent.
type Incumbent struct {
	v atomic.Int64
}

// NewIncumbent returns an Incumbent with no value recorded.
func NewIncumbent() *Incumbent {
	in := &Incumbent{}
	in.v.Store(math.MaxInt64)

	return in
}

// Offer records x if it is smaller than the current value, using a
// compare-and-swap loop so concurrent offers never lose an improvement.
// It reports whether x became the new value.
func (in *Incumbent) Offer(x int) bool {
	nx := int64(x)
	for {
		cur := in.v.Load()
		if nx >= cur {
			return false
		}
		if in.v.CompareAndSwap(cur, nx) {
			return true
		}
	}
}

// Load returns the current value and whether one has been recorded.
func (in *Incumbent) Load() (int, bool) {
	cur := in.v.Load()
	if cur == math.MaxInt64 {
		return 0, false
	}

	return int(cur), true
}

// Beaten reports whether a partial solution of size x can no longer
// improve on the incumbent.
func (in *Incumbent) Beaten(x int) bool {
	return int64(x) >= in.v.Load()
}
