// Package field models a bounded rectangular field of cells that a piece
// crosses by fixed-length jumps.
//
// What:
//
//   - Field holds the Width × Height bounds; cells are addressed by Point{X, Y}
//     with 0 ≤ X < Width and 0 ≤ Y < Height.
//   - Jump{DX, DY} expands into the eight symmetric offsets
//     (±DX,±DY) and (±DY,±DX) in a fixed order.
//   - VisitGrid is a row-major boolean scratch grid with paired Mark/Unmark
//     for mark/recurse/unmark backtracking.
//
// Complexity:
//
//   - InBounds, Index, Coordinate, Mark, Unmark, Visited: O(1).
//   - NewVisitGrid, Clean, Clone: O(W×H), Memory: O(W×H).
//
// Errors:
//
//   - ErrOutOfBounds: a point lies outside the field.
package field
