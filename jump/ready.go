// SPDX-License-Identifier: MIT

package jump

import (
	"fmt"

	"github.com/katalvlaran/complx/field"
	"github.com/katalvlaran/complx/report"
)

var _ report.Reporter = (*Ready)(nil)

// Ready is the completed phase of a jump search. A zero Ready reports an
// unreachable 0/0 target.
type Ready struct {
	start, target field.Point
	minJumps      int
	reachable     bool
	explored      int
}

// MinJumps returns the minimum jump count; ok is false when the target
// cannot be reached.
func (r *Ready) MinJumps() (jumps int, ok bool) {
	return r.minJumps, r.reachable
}

// Reachable reports whether some path reached the target.
func (r *Ready) Reachable() bool { return r.reachable }

// Explored returns the number of search-tree nodes visited. With more than
// one worker the count depends on scheduling.
func (r *Ready) Explored() int { return r.explored }

// Report states the minimum jump count or that the target is unreachable.
func (r *Ready) Report() string {
	if !r.reachable {
		return fmt.Sprintf("It was not possible to get from point A (%v) to point B (%v).", r.start, r.target)
	}

	return fmt.Sprintf("The minimum number of jumps to go from point A (%v) to point B (%v) is %d.",
		r.start, r.target, r.minJumps)
}
