// Package types provides the parsed scenario model shared across the bts packages.
package types

import "strings"

// Priority represents a scenario's priority level.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// ParsePriority maps a keyword to a Priority, case-insensitively.
// The second return value reports whether the keyword was recognized;
// unrecognized values fall back to PriorityMedium.
func ParsePriority(s string) (Priority, bool) {
	switch strings.ToLower(s) {
	case "critical":
		return PriorityCritical, true
	case "high":
		return PriorityHigh, true
	case "medium":
		return PriorityMedium, true
	case "low":
		return PriorityLow, true
	default:
		return PriorityMedium, false
	}
}

// TestScenario represents one parsed test case: metadata plus an ordered
// list of steps. Name is non-empty on any scenario returned by the parser;
// ID is generated fresh per parse call.
type TestScenario struct {
	ID          string
	Name        string
	Description string
	StartURL    string
	Steps       []TestStep
	Tags        []string
	Priority    Priority
}

// TestStep represents one step of a scenario.
//
// A step runs exactly one action. When a step body contains more than one
// action, the parser keeps the first and records a warning for the rest;
// a step whose body resolves no action at all is dropped with an error.
type TestStep struct {
	ID                string
	Description       string
	Action            Action
	ExpectedOutcome   string
	TimeoutMs         *int
	RetryCount        int
	ContinueOnFailure bool
}
