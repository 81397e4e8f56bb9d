// SPDX-License-Identifier: MIT

package menu

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/complx/internal/search"
)

var (
	// ErrNegativeCalories indicates a dish with a negative calorie count.
	ErrNegativeCalories = errors.New("menu: dish calories must be non-negative")
	// ErrEmptyDishName indicates a dish without a name.
	ErrEmptyDishName = errors.New("menu: dish name must not be empty")
)

// Dish is one entry of the base menu.
type Dish struct {
	Name     string
	Calories int
}

// Option configures an Optimizer.
type Option = search.Option

// WithWorkers runs the top-level branches on up to n goroutines.
// Panics when n is outside [1, 256].
func WithWorkers(n int) Option { return search.WithWorkers(n) }

// WithLogger attaches a structured logger for debug records. Panics on nil.
func WithLogger(l *slog.Logger) Option { return search.WithLogger(l) }

// Validate checks that every dish is named and has non-negative calories.
// Complexity: O(n).
func Validate(base []Dish) error {
	for i, d := range base {
		if d.Name == "" {
			return fmt.Errorf("dish %d: %w", i, ErrEmptyDishName)
		}
		if d.Calories < 0 {
			return fmt.Errorf("dish %d (%s): %w", i, d.Name, ErrNegativeCalories)
		}
	}

	return nil
}
