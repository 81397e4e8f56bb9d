// SPDX-License-Identifier: MIT

package score

import (
	"errors"
	"log/slog"
	"math"

	"github.com/katalvlaran/complx/internal/search"
)

// Refused marks a team that refuses an arbiter. It is distinct from any
// preference a caller should use.
const Refused = math.MinInt

// Sentinel errors for Build.
var (
	// ErrNoTeams indicates an empty preference matrix.
	ErrNoTeams = errors.New("score: preference matrix has no teams")
	// ErrOddTeams indicates a team count that cannot be split into matches.
	ErrOddTeams = errors.New("score: the number of teams must be even")
	// ErrRaggedRows indicates rows with differing arbiter counts.
	ErrRaggedRows = errors.New("score: every team must rate the same number of arbiters")
	// ErrTooFewArbiters indicates fewer arbiters than matches.
	ErrTooFewArbiters = errors.New("score: the number of arbiters must be at least the number of matches")
	// ErrPreferenceRange indicates a rating large enough to overflow a total.
	ErrPreferenceRange = errors.New("score: preference out of range")
)

// Preferences is a rectangular [team][arbiter] rating table. Apart from
// Refused, every rating must satisfy |v| <= MaxPreference(teams/2) so that
// no total of one rating per match can overflow.
type Preferences [][]int

// Teams returns the number of rows.
func (p Preferences) Teams() int { return len(p) }

// Arbiters returns the length of the first row, or 0 for an empty matrix.
func (p Preferences) Arbiters() int {
	if len(p) == 0 {
		return 0
	}

	return len(p[0])
}

// Match is one filled match slot.
type Match struct {
	Arbiter int
	Team    int
}

// Option configures an Optimizer.
type Option = search.Option

// WithWorkers runs the first-match branches on up to n goroutines.
// Panics when n is outside [1, 256].
func WithWorkers(n int) Option { return search.WithWorkers(n) }

// WithLogger attaches a structured logger for debug records. Panics on nil.
func WithLogger(l *slog.Logger) Option { return search.WithLogger(l) }

// MaxPreference returns the largest rating magnitude allowed when matches
// ratings are summed.
func MaxPreference(matches int) int {
	if matches <= 1 {
		return math.MaxInt
	}

	return math.MaxInt / matches
}
