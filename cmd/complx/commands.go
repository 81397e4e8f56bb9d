// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/complx/internal/problem"
	"github.com/katalvlaran/complx/menu"
	"github.com/katalvlaran/complx/score"
)

// newRootCmd assembles the command tree around a fresh app.
func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:               "complx",
		Short:             "Backtracking optimizers for menus, arbiter assignments and jumps",
		Version:           "0.1.0",
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&a.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	pf.IntVar(&a.workers, "workers", 1, "goroutines exploring top-level search branches")

	root.AddCommand(
		newMenuCmd(a),
		newScoreCmd(a),
		newJumpsCmd(a),
		newSolveCmd(a),
	)

	return root
}

func newMenuCmd(a *app) *cobra.Command {
	var (
		target int
		dishes []string
	)
	cmd := &cobra.Command{
		Use:   "menu-optimizer",
		Short: "Discover the menu that meets a calorie target with the least excess",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(dishes) < 2 {
				return fmt.Errorf("at least two dishes are required: %w", problem.ErrMalformed)
			}
			p := problem.Menu{Target: target, Dishes: make([]menu.Dish, 0, len(dishes))}
			for _, s := range dishes {
				d, err := problem.ParseDish(s)
				if err != nil {
					return err
				}
				p.Dishes = append(p.Dishes, d)
			}

			return a.solve(p)
		},
	}
	cmd.Flags().IntVarP(&target, "target-calories", "t", 0, "calories the menu has to reach")
	cmd.Flags().StringArrayVarP(&dishes, "dishes", "d", nil, "dish as name/calories (repeatable)")
	_ = cmd.MarkFlagRequired("target-calories")
	_ = cmd.MarkFlagRequired("dishes")

	return cmd
}

func newScoreCmd(a *app) *cobra.Command {
	var rows []string
	cmd := &cobra.Command{
		Use:   "score-optimizer",
		Short: "Assign the arbiters preferred by N teams to N/2 matches",
		Long: `Assign the arbiters preferred by N teams to N/2 matches.

Each --preferences row lists one team's rating of every arbiter, comma
separated. Use "x" for an arbiter the team refuses.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(rows) < 2 {
				return fmt.Errorf("at least two preference rows are required: %w", problem.ErrMalformed)
			}
			prefs := make(score.Preferences, 0, len(rows))
			for _, s := range rows {
				row, err := problem.ParseRow(s)
				if err != nil {
					return err
				}
				prefs = append(prefs, row)
			}

			return a.solve(problem.Score{Preferences: prefs})
		},
	}
	cmd.Flags().StringArrayVarP(&rows, "preferences", "p", nil, "one team's arbiter ratings, comma separated (repeatable)")
	_ = cmd.MarkFlagRequired("preferences")

	return cmd
}

func newJumpsCmd(a *app) *cobra.Command {
	var fieldSize, jumpLength, startPoint, targetPoint string
	cmd := &cobra.Command{
		Use:   "jumps-optimizer",
		Short: "Find the minimum number of jumps from point A to point B in a field",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				p   problem.Jump
				err error
			)
			if p.Field, err = problem.ParseField(fieldSize); err != nil {
				return fmt.Errorf("--field-size: %w", err)
			}
			if p.Jump, err = problem.ParseJump(jumpLength); err != nil {
				return fmt.Errorf("--jump-length: %w", err)
			}
			if p.Start, err = problem.ParsePoint(startPoint); err != nil {
				return fmt.Errorf("--start-point: %w", err)
			}
			if p.Target, err = problem.ParsePoint(targetPoint); err != nil {
				return fmt.Errorf("--target-point: %w", err)
			}

			return a.solve(p)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&fieldSize, "field-size", "f", "", "field size as width/height")
	f.StringVarP(&jumpLength, "jump-length", "l", "", "jump length as dx/dy")
	f.StringVarP(&startPoint, "start-point", "s", "", "start cell as x/y")
	f.StringVarP(&targetPoint, "target-point", "t", "", "target cell as x/y")
	for _, name := range []string{"field-size", "jump-length", "start-point", "target-point"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func newSolveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "solve FILE",
		Short: `Solve a JSON problem file ("-" reads stdin)`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				data []byte
				err  error
			)
			if args[0] == "-" {
				data, err = io.ReadAll(a.stdin)
			} else {
				data, err = os.ReadFile(args[0])
			}
			if err != nil {
				return fmt.Errorf("read problem: %w", err)
			}
			p, err := problem.Decode(data)
			if err != nil {
				return err
			}

			return a.solve(p)
		},
	}
}
