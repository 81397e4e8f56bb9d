// SPDX-License-Identifier: MIT

// Package report defines the single capability shared by every completed
// optimizer: rendering its result as human-readable text.
//
// Only the Ready phase of an optimizer implements Reporter. A pending
// optimizer has no Report method, so asking for a report before the search
// has run does not compile.
package report

import (
	"errors"
	"fmt"
	"io"
	"reflect"
)

// ErrNilReporter is returned by Write when a nil Reporter is passed.
var ErrNilReporter = errors.New("report: nil reporter")

// Reporter produces a summary of a finished search.
// Report must be pure: repeated calls on the same value return identical text.
type Reporter interface {
	Report() string
}

// Write renders each reporter to w, one report per line block.
// It stops at the first nil reporter or write failure. A nil pointer held
// in a non-nil interface, such as (*menu.Ready)(nil), counts as nil.
func Write(w io.Writer, rs ...Reporter) error {
	for i, r := range rs {
		if isNil(r) {
			return fmt.Errorf("reporter %d: %w", i, ErrNilReporter)
		}
		if _, err := io.WriteString(w, r.Report()+"\n"); err != nil {
			return fmt.Errorf("write report %d: %w", i, err)
		}
	}

	return nil
}

// isNil reports whether r is nil or wraps a nil pointer.
func isNil(r Reporter) bool {
	if r == nil {
		return true
	}
	v := reflect.ValueOf(r)

	return v.Kind() == reflect.Pointer && v.IsNil()
}
