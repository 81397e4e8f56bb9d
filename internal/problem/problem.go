// SPDX-License-Identifier: MIT

// Package problem turns external input (command-line tokens, JSON problem
// files) into typed optimizer inputs and runs the matching optimizer.
//
// The optimizer packages trust their inputs; everything untrusted is
// checked here and reported with ErrMalformed or ErrUnknownKind.
package problem

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/complx/field"
	"github.com/katalvlaran/complx/internal/search"
	"github.com/katalvlaran/complx/jump"
	"github.com/katalvlaran/complx/menu"
	"github.com/katalvlaran/complx/report"
	"github.com/katalvlaran/complx/score"
)

var (
	// ErrMalformed indicates input that does not describe a valid problem.
	ErrMalformed = errors.New("problem: malformed input")
	// ErrUnknownKind indicates a problem file whose "kind" is not recognized.
	ErrUnknownKind = errors.New("problem: unknown kind")
)

// Kind names one of the three optimizers.
type Kind string

const (
	KindMenu  Kind = "menu"
	KindScore Kind = "score"
	KindJump  Kind = "jump"
)

// Problem is a fully parsed optimizer input.
type Problem interface {
	Kind() Kind
	// Solve runs the optimizer and returns its Ready value. Only
	// precondition failures are errors; "no solution" is a report.
	Solve(opts ...search.Option) (report.Reporter, error)
}

// Menu is a calorie-target menu problem.
type Menu struct {
	Target int
	Dishes []menu.Dish
}

// Kind implements Problem.
func (Menu) Kind() Kind { return KindMenu }

// Solve validates the dishes and runs menu.FindOptimalMenu.
func (p Menu) Solve(opts ...search.Option) (report.Reporter, error) {
	if p.Target < 0 {
		return nil, fmt.Errorf("target calories %d: %w", p.Target, ErrMalformed)
	}
	if err := menu.Validate(p.Dishes); err != nil {
		return nil, err
	}

	return menu.New(opts...).FindOptimalMenu(p.Target, p.Dishes), nil
}

// Score is an arbiter assignment problem.
type Score struct {
	Preferences score.Preferences
}

// Kind implements Problem.
func (Score) Kind() Kind { return KindScore }

// Solve builds the score optimizer and runs the assignment search.
func (p Score) Solve(opts ...search.Option) (report.Reporter, error) {
	o, err := score.Build(p.Preferences, opts...)
	if err != nil {
		return nil, err
	}

	return o.FindOptimalAssignment(), nil
}

// Jump is a minimum-jumps problem.
type Jump struct {
	Field  field.Field
	Jump   field.Jump
	Start  field.Point
	Target field.Point
}

// Kind implements Problem.
func (Jump) Kind() Kind { return KindJump }

// Solve runs jump.FindMinJumps.
func (p Jump) Solve(opts ...search.Option) (report.Reporter, error) {
	r, err := jump.New(p.Field, p.Jump, opts...).FindMinJumps(p.Start, p.Target)
	if err != nil {
		return nil, err
	}

	return r, nil
}
