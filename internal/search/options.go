// SPDX-License-Identifier: MIT

// Package search holds the plumbing shared by the backtracking optimizers:
// functional options, the fork-join helper used to run top-level branches
// in parallel, and an atomic incumbent for branch-and-bound across workers.
//
// Contract:
//   - Option constructors validate and panic on meaningless inputs;
//     the searches themselves never panic.
//   - Workers == 1 (the default) runs everything on the caller's goroutine.
package search

import (
	"io"
	"log/slog"
)

// MaxWorkers caps the parallelism any optimizer will use.
const MaxWorkers = 256

// Config is the resolved option set of one optimizer.
type Config struct {
	// Workers bounds how many top-level branches run concurrently.
	Workers int
	// Logger receives one Debug record at search start and one at completion.
	Logger *slog.Logger
}

// Option customizes an optimizer's Config.
type Option func(*Config)

// DefaultConfig returns a sequential configuration with a discard logger.
func DefaultConfig() Config {
	return Config{
		Workers: 1,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Apply resolves opts over DefaultConfig.
func Apply(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithWorkers sets the number of top-level branches explored concurrently.
// Panics when n is outside [1, MaxWorkers].
func WithWorkers(n int) Option {
	if n < 1 || n > MaxWorkers {
		panic("search: WithWorkers out of range")
	}
	return func(c *Config) {
		c.Workers = n
	}
}

// WithLogger attaches a structured logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("search: WithLogger(nil)")
	}
	return func(c *Config) {
		c.Logger = l
	}
}
