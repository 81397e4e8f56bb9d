// SPDX-License-Identifier: MIT

package jump

import (
	"log/slog"

	"github.com/katalvlaran/complx/field"
	"github.com/katalvlaran/complx/internal/search"
)

// ErrOutOfBounds is returned by FindMinJumps when start or target lies
// outside the field. It is field.ErrOutOfBounds, so either name matches
// with errors.Is.
var ErrOutOfBounds = field.ErrOutOfBounds

// ErrTooLarge is returned by FindMinJumps when the field's cell count
// overflows an int. It is field.ErrTooLarge.
var ErrTooLarge = field.ErrTooLarge

// Option configures an Optimizer.
type Option = search.Option

// WithWorkers explores the eight first jumps on up to n goroutines, each with
// its own copy of the visit grid, sharing the incumbent for pruning.
// Panics when n is outside [1, 256].
func WithWorkers(n int) Option { return search.WithWorkers(n) }

// WithLogger attaches a structured logger for debug records. Panics on nil.
func WithLogger(l *slog.Logger) Option { return search.WithLogger(l) }
