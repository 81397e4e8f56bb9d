// SPDX-License-Identifier: MIT

package problem

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/complx/field"
	"github.com/katalvlaran/complx/menu"
	"github.com/katalvlaran/complx/score"
)

// RefusedToken is the command-line spelling of score.Refused in a row.
const RefusedToken = "x"

// splitPair cuts s at its first '/'.
func splitPair(s string) (key, value string, err error) {
	key, value, ok := strings.Cut(s, "/")
	if !ok {
		return "", "", fmt.Errorf(`invalid key/value pair, no "/" found in %q: %w`, s, ErrMalformed)
	}

	return key, value, nil
}

// nonNegative parses a base-10 integer ≥ 0.
func nonNegative(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%q is not an integer: %w", s, ErrMalformed)
	}
	if n < 0 {
		return 0, fmt.Errorf("%d is negative: %w", n, ErrMalformed)
	}

	return n, nil
}

// ParsePair parses "a/b" into two non-negative integers.
func ParsePair(s string) (a, b int, err error) {
	ka, kb, err := splitPair(s)
	if err != nil {
		return 0, 0, err
	}
	if a, err = nonNegative(ka); err != nil {
		return 0, 0, err
	}
	if b, err = nonNegative(kb); err != nil {
		return 0, 0, err
	}

	return a, b, nil
}

// ParsePoint parses "x/y".
func ParsePoint(s string) (field.Point, error) {
	x, y, err := ParsePair(s)

	return field.Point{X: x, Y: y}, err
}

// ParseField parses "width/height".
func ParseField(s string) (field.Field, error) {
	w, h, err := ParsePair(s)

	return field.Field{Width: w, Height: h}, err
}

// ParseJump parses "dx/dy".
func ParseJump(s string) (field.Jump, error) {
	dx, dy, err := ParsePair(s)

	return field.Jump{DX: dx, DY: dy}, err
}

// ParseDish parses "name/calories".
func ParseDish(s string) (menu.Dish, error) {
	name, cals, err := splitPair(s)
	if err != nil {
		return menu.Dish{}, err
	}
	c, err := nonNegative(cals)
	if err != nil {
		return menu.Dish{}, fmt.Errorf("dish %q: %w", name, err)
	}
	d := menu.Dish{Name: strings.TrimSpace(name), Calories: c}
	if err := menu.Validate([]menu.Dish{d}); err != nil {
		return menu.Dish{}, err
	}

	return d, nil
}

// ParseRow parses a comma-separated preference row. The token "x" marks a
// refused arbiter.
func ParseRow(s string) ([]int, error) {
	fields := strings.Split(s, ",")
	row := make([]int, len(fields))
	for i, f := range fields {
		f = strings.TrimSpace(f)
		if strings.EqualFold(f, RefusedToken) {
			row[i] = score.Refused
			continue
		}
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("row %q, column %d: %q is not an integer: %w", s, i, f, ErrMalformed)
		}
		if v == score.Refused {
			return nil, fmt.Errorf("row %q, column %d: use %q for refusal: %w", s, i, RefusedToken, ErrMalformed)
		}
		row[i] = v
	}

	return row, nil
}
