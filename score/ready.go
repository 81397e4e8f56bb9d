// SPDX-License-Identifier: MIT

package score

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/complx/report"
)

var _ report.Reporter = (*Ready)(nil)

// Ready is the completed phase of an assignment search. A zero Ready
// reports as a search that found no assignment.
type Ready struct {
	prefs      Preferences
	assignment []int
	best       int
	found      bool
	explored   int
}

// Found reports whether a valid assignment of every match exists.
func (r *Ready) Found() bool { return r.found }

// Score returns the maximal total preference; ok is false when no
// assignment exists (the internal sentinel is never exposed).
func (r *Ready) Score() (score int, ok bool) {
	if !r.found {
		return 0, false
	}

	return r.best, true
}

// Assignment returns a copy of the packed assignment: for match k,
// element 2k is the arbiter and 2k+1 the team. It is all zeros when no
// assignment was found.
func (r *Ready) Assignment() []int {
	return append([]int(nil), r.assignment...)
}

// Matches unpacks Assignment into match slots; nil when not found.
func (r *Ready) Matches() []Match {
	if !r.found {
		return nil
	}
	out := make([]Match, len(r.assignment)/2)
	for k := range out {
		out[k] = Match{Arbiter: r.assignment[2*k], Team: r.assignment[2*k+1]}
	}

	return out
}

// Explored returns the number of search-tree nodes visited.
func (r *Ready) Explored() int { return r.explored }

// Report prints the maximal score and the assignment, or states that no
// assignment exists.
func (r *Ready) Report() string {
	if !r.found {
		return "None of the arbiters could be assigned to every match."
	}

	parts := make([]string, len(r.assignment))
	for i, v := range r.assignment {
		parts[i] = strconv.Itoa(v)
	}

	var sb strings.Builder
	sb.WriteString("Score information:\n")
	fmt.Fprintf(&sb, "  Maximum score: %d\n", r.best)
	fmt.Fprintf(&sb, "  Assigned arbiters: [ %s ]", strings.Join(parts, ", "))
	for k, m := range r.Matches() {
		fmt.Fprintf(&sb, "\n  Match %d: arbiter %d -> team %d (%d)", k+1, m.Arbiter, m.Team, r.prefs[m.Team][m.Arbiter])
	}

	return sb.String()
}
