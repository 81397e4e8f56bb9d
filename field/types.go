// SPDX-License-Identifier: MIT

package field

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrOutOfBounds indicates a point outside the field bounds.
	ErrOutOfBounds = errors.New("field: point out of bounds")
	// ErrTooLarge indicates a field whose cell count does not fit in an int.
	ErrTooLarge = errors.New("field: too many cells")
)

// Point is a cell coordinate. X runs along the width, Y along the height.
type Point struct {
	X, Y int
}

// String renders the point as "x/y", the same syntax used on the command line.
func (p Point) String() string {
	return fmt.Sprintf("%d/%d", p.X, p.Y)
}

// Jump is the (DX, DY) length of a single jump before symmetry is applied.
type Jump struct {
	DX, DY int
}

// Field is a Width × Height rectangle of cells. It is a plain value and
// carries no per-cell data; mutable scratch lives in VisitGrid.
type Field struct {
	Width, Height int
}

// Cells returns the number of cells in the field. Non-positive sizes and
// sizes whose product overflows an int yield 0; Validate tells them apart.
func (f Field) Cells() int {
	if f.Width <= 0 || f.Height <= 0 || f.Width > math.MaxInt/f.Height {
		return 0
	}

	return f.Width * f.Height
}

// Validate returns ErrTooLarge when Width×Height overflows an int.
func (f Field) Validate() error {
	if f.Width > 0 && f.Height > 0 && f.Width > math.MaxInt/f.Height {
		return fmt.Errorf("%dx%d: %w", f.Width, f.Height, ErrTooLarge)
	}

	return nil
}
