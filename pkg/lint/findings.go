// Package lint implements the recipe lint rule engine: an ordered catalog of
// independent validation rules run against a parsed recipe document, plus the
// orchestrator that loads, renders, and parses a recipe directory.
//
// Rules append plain-text findings of two severities to a shared accumulator:
// blocking lint errors and non-blocking hints. A rule that cannot evaluate
// (missing file, malformed section) degrades by skipping or recording a
// finding; it never aborts the pass.
package lint

import "fmt"

// Findings accumulates lint errors and hints in the order rules emit them.
// The order is deterministic for identical inputs.
type Findings struct {
	Errors []string
	Hints  []string
}

// AddError records a blocking lint error.
func (f *Findings) AddError(message string) {
	f.Errors = append(f.Errors, message)
}

// AddErrorf records a formatted blocking lint error.
func (f *Findings) AddErrorf(format string, args ...any) {
	f.Errors = append(f.Errors, fmt.Sprintf(format, args...))
}

// AddHint records a non-blocking hint.
func (f *Findings) AddHint(message string) {
	f.Hints = append(f.Hints, message)
}

// AddHintf records a formatted non-blocking hint.
func (f *Findings) AddHintf(format string, args ...any) {
	f.Hints = append(f.Hints, fmt.Sprintf(format, args...))
}
