// SPDX-License-Identifier: MIT

package field

// VisitGrid is a row-major boolean grid sized to a Field. Every Mark made
// during a backtracking search is expected to be paired with an Unmark on
// the way back, leaving the grid Clean when the search returns.
//
// A VisitGrid is not safe for concurrent use; parallel searches work on
// their own Clone.
type VisitGrid struct {
	f     Field
	cells []bool
}

// NewVisitGrid allocates an all-false grid for f.
// Complexity: O(W×H) time and memory.
func NewVisitGrid(f Field) *VisitGrid {
	return &VisitGrid{f: f, cells: make([]bool, f.Cells())}
}

// Field returns the bounds the grid was built for.
func (g *VisitGrid) Field() Field { return g.f }

// Mark flags p as visited. p must be in bounds.
func (g *VisitGrid) Mark(p Point) { g.cells[g.f.Index(p)] = true }

// Unmark clears the visited flag of p. p must be in bounds.
func (g *VisitGrid) Unmark(p Point) { g.cells[g.f.Index(p)] = false }

// Visited reports whether p is currently marked. p must be in bounds.
func (g *VisitGrid) Visited(p Point) bool { return g.cells[g.f.Index(p)] }

// Open reports whether p is inside the field and not marked.
func (g *VisitGrid) Open(p Point) bool {
	return g.f.InBounds(p) && !g.cells[g.f.Index(p)]
}

// Clean reports whether no cell is marked.
// Complexity: O(W×H).
func (g *VisitGrid) Clean() bool {
	for _, v := range g.cells {
		if v {
			return false
		}
	}

	return true
}

// Reset clears every mark.
func (g *VisitGrid) Reset() {
	clear(g.cells)
}

// Clone returns an independent copy of the grid, marks included.
func (g *VisitGrid) Clone() *VisitGrid {
	cells := make([]bool, len(g.cells))
	copy(cells, g.cells)

	return &VisitGrid{f: g.f, cells: cells}
}
