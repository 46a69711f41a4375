package types

import "fmt"

// ParseError represents a structural problem found while parsing, with
// 1-based line and 0-based column positions.
type ParseError struct {
	Line    int
	Column  int
	Message string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
}

// ParseResult is the outcome of one parse call. Success reports whether a
// scenario was produced at all; Errors may be non-empty even on success,
// for example when a step was dropped. Scenario is nil whenever Success
// is false.
type ParseResult struct {
	Success  bool
	Scenario *TestScenario
	Errors   []ParseError
	Warnings []string
}
