// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/complx/internal/config"
	"github.com/katalvlaran/complx/internal/problem"
	"github.com/katalvlaran/complx/internal/search"
	"github.com/katalvlaran/complx/report"
)

// app carries resolved settings and writers shared by every sub-command.
type app struct {
	stdin          io.Reader
	stdout, stderr io.Writer

	// persistent flags
	configPath string
	logLevel   string
	workers    int

	cfg config.Config
	log *slog.Logger
}

// setup resolves configuration, applies flag overrides and builds the logger.
// It runs as the root command's PersistentPreRunE.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = a.workers
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = strings.ToLower(a.logLevel)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	a.log = newLogger(a.stderr, cfg).With("run_id", uuid.NewString())
	a.log.Debug("configuration loaded", "workers", cfg.Workers, "log_level", cfg.LogLevel)

	return nil
}

// newLogger builds a text or JSON slog handler at the configured level.
func newLogger(w io.Writer, cfg config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

// options converts the resolved configuration into optimizer options.
func (a *app) options() []search.Option {
	return []search.Option{
		search.WithWorkers(a.cfg.Workers),
		search.WithLogger(a.log),
	}
}

// solve runs p and prints its report.
func (a *app) solve(p problem.Problem) error {
	start := time.Now()
	r, err := p.Solve(a.options()...)
	if err != nil {
		a.log.Error("search could not start", "kind", p.Kind(), "err", err)
		return fmt.Errorf("%s: %w", p.Kind(), err)
	}
	a.log.Info("search complete", "kind", p.Kind(), "elapsed", time.Since(start))

	return report.Write(a.stdout, r)
}
