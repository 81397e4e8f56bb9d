// SPDX-License-Identifier: MIT

package field

import "fmt"

// InBounds reports whether p lies within the field boundaries.
// Complexity: O(1).
func (f Field) InBounds(p Point) bool {
	return p.X >= 0 && p.X < f.Width && p.Y >= 0 && p.Y < f.Height
}

// Check returns ErrOutOfBounds, wrapped with the point and the field size,
// when p is outside the field.
func (f Field) Check(p Point) error {
	if !f.InBounds(p) {
		return fmt.Errorf("%v in %dx%d field: %w", p, f.Width, f.Height, ErrOutOfBounds)
	}

	return nil
}

// Index maps p to its row-major index: Y*Width + X.
// The caller must ensure p is in bounds.
// Complexity: O(1).
func (f Field) Index(p Point) int {
	return p.Y*f.Width + p.X
}

// Coordinate converts a row-major index back to a Point.
// Complexity: O(1).
func (f Field) Coordinate(idx int) Point {
	return Point{X: idx % f.Width, Y: idx / f.Width}
}

// Offsets expands j into its eight symmetric moves, in the order
//
//	( p, q) ( p,-q) (-p, q) (-p,-q) ( q, p) ( q,-p) (-q, p) (-q,-p)
//
// where (p, q) = (DX, DY). Searches iterate in this order, so it fixes which
// witness a depth-first search finds first. Duplicates (p == q or a zero
// component) are kept; visited tracking makes them harmless.
func (j Jump) Offsets() [8][2]int {
	p, q := j.DX, j.DY

	return [8][2]int{
		{p, q}, {p, -q}, {-p, q}, {-p, -q},
		{q, p}, {q, -p}, {-q, p}, {-q, -p},
	}
}

// Move returns the point reached from p by offset d.
func (p Point) Move(d [2]int) Point {
	return Point{X: p.X + d[0], Y: p.Y + d[1]}
}
