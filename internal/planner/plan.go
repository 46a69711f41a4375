// Package planner resolves a parsed scenario into an execution plan:
// per-step defaults applied, every action summarized, cross-step facts
// checked. The plan is what a downstream executor would consume; this
// package performs no browser I/O.
package planner

import (
	"fmt"

	"github.com/btslang/bts/internal/types"
)

// DefaultStepTimeoutMs is the per-step timeout applied when a step
// carries no explicit timeout modifier.
const DefaultStepTimeoutMs = 30000

// ExecutionPlan is a fully resolved scenario ready for an executor.
type ExecutionPlan struct {
	ScenarioID  string         `json:"scenario_id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	StartURL    string         `json:"start_url,omitempty"`
	Tags        []string       `json:"tags,omitempty"`
	Priority    types.Priority `json:"priority"`
	Steps       []PlannedStep  `json:"steps"`
	Totals      Totals         `json:"totals"`
	Warnings    []string       `json:"warnings,omitempty"`
}

// PlannedStep is one step with its defaults resolved.
type PlannedStep struct {
	Index             int    `json:"index"`
	ID                string `json:"id"`
	Description       string `json:"description"`
	Kind              string `json:"kind"`
	Summary           string `json:"summary"`
	TimeoutMs         int    `json:"timeout_ms"`
	RetryCount        int    `json:"retry_count,omitempty"`
	ContinueOnFailure bool   `json:"continue_on_failure,omitempty"`
	ExpectedOutcome   string `json:"expected_outcome,omitempty"`
}

// Totals aggregates scenario-level facts for the plan header.
// EstimatedMinMs is the floor running time: the sum of fixed wait
// durations, the only delays guaranteed to elapse in full.
type Totals struct {
	Steps          int `json:"steps"`
	RetryBudget    int `json:"retry_budget"`
	EstimatedMinMs int `json:"estimated_min_ms"`
}

// Plan creates an ExecutionPlan from a parsed scenario.
func Plan(sc *types.TestScenario) (*ExecutionPlan, error) {
	if sc == nil {
		return nil, fmt.Errorf("no scenario to plan")
	}

	plan := &ExecutionPlan{
		ScenarioID:  sc.ID,
		Name:        sc.Name,
		Description: sc.Description,
		StartURL:    sc.StartURL,
		Tags:        sc.Tags,
		Priority:    sc.Priority,
		Steps:       make([]PlannedStep, 0, len(sc.Steps)),
	}

	for i, step := range sc.Steps {
		timeoutMs := DefaultStepTimeoutMs
		if step.TimeoutMs != nil {
			timeoutMs = *step.TimeoutMs
		}
		plan.Steps = append(plan.Steps, PlannedStep{
			Index:             i + 1,
			ID:                step.ID,
			Description:       step.Description,
			Kind:              Kind(step.Action),
			Summary:           Summary(step.Action),
			TimeoutMs:         timeoutMs,
			RetryCount:        step.RetryCount,
			ContinueOnFailure: step.ContinueOnFailure,
			ExpectedOutcome:   step.ExpectedOutcome,
		})

		plan.Totals.RetryBudget += step.RetryCount
		if wait, ok := step.Action.(types.WaitAction); ok {
			if d, ok := wait.Condition.(types.WaitDuration); ok {
				plan.Totals.EstimatedMinMs += d.Ms
			}
		}
	}
	plan.Totals.Steps = len(plan.Steps)
	plan.Warnings = planWarnings(sc)

	return plan, nil
}

// planWarnings checks cross-step facts the parser cannot see.
func planWarnings(sc *types.TestScenario) []string {
	var warnings []string

	if len(sc.Steps) == 0 {
		warnings = append(warnings, "scenario has no steps")
		return warnings
	}

	seenDesc := make(map[string]int)
	seenShot := make(map[string]int)
	for i, step := range sc.Steps {
		n := i + 1
		if step.Description != "" {
			if first, ok := seenDesc[step.Description]; ok {
				warnings = append(warnings, fmt.Sprintf(
					"steps %d and %d share the description %q", first, n, step.Description))
			} else {
				seenDesc[step.Description] = n
			}
		}
		if shot, ok := step.Action.(types.ScreenshotAction); ok {
			if first, ok := seenShot[shot.Name]; ok {
				warnings = append(warnings, fmt.Sprintf(
					"steps %d and %d both capture a screenshot named %q", first, n, shot.Name))
			} else {
				seenShot[shot.Name] = n
			}
		}
	}

	return warnings
}
