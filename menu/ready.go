// SPDX-License-Identifier: MIT

package menu

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/complx/report"
)

var _ report.Reporter = (*Ready)(nil)

// Ready is the completed phase of a menu search. It is produced only by
// FindOptimalMenu and is immutable. A zero Ready reports as a search that
// found no menu.
type Ready struct {
	target    int
	menu      []Dish
	overshoot int
	found     bool
	explored  int
}

// Found reports whether some subset reached the target.
func (r *Ready) Found() bool { return r.found }

// Menu returns a copy of the optimal subset in base-menu order, or nil when
// nothing reached the target. A found empty menu (target ≤ 0) is non-nil.
func (r *Ready) Menu() []Dish {
	if !r.found {
		return nil
	}

	return append([]Dish{}, r.menu...)
}

// Overshoot returns total-target of the optimal menu; ok is false when no
// menu was found.
func (r *Ready) Overshoot() (overshoot int, ok bool) {
	if !r.found {
		return 0, false
	}

	return r.overshoot, true
}

// Total returns the calorie sum of the optimal menu (0 when not found).
func (r *Ready) Total() int {
	total := 0
	for _, d := range r.menu {
		total += d.Calories
	}

	return total
}

// Target returns the calorie target the search ran with.
func (r *Ready) Target() int { return r.target }

// Explored returns the number of search-tree nodes visited.
func (r *Ready) Explored() int { return r.explored }

// Report lists the chosen dishes and their total, or states that no menu
// reaches the target.
func (r *Ready) Report() string {
	if !r.found {
		return "It was not possible to find an optimal menu for the target calories specified."
	}

	var sb strings.Builder
	sb.WriteString("Optimal menu found:\n")
	for i, d := range r.menu {
		fmt.Fprintf(&sb, "  %d: %s -> %d calories\n", i+1, d.Name, d.Calories)
	}
	fmt.Fprintf(&sb, "Total calories: %d (target %d, overshoot %d)", r.Total(), r.target, r.overshoot)

	return sb.String()
}
