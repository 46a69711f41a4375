// Package output renders parse results and execution plans, as styled
// text for people and as JSON for machines.
package output

import (
	"encoding/json"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/btslang/bts/internal/planner"
	"github.com/btslang/bts/internal/types"
)

// ResultDoc is the machine form of a ParseResult. Error and warning
// slices are always present in the JSON, never null, so consumers can
// index without checking.
type ResultDoc struct {
	Success  bool         `json:"success"`
	Scenario *ScenarioDoc `json:"scenario,omitempty"`
	Errors   []ErrorDoc   `json:"errors"`
	Warnings []string     `json:"warnings"`
}

// ScenarioDoc is the serialized scenario with each step's action
// flattened to its kind and summary line.
type ScenarioDoc struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	StartURL    string    `json:"start_url,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	Priority    string    `json:"priority"`
	Steps       []StepDoc `json:"steps"`
}

type StepDoc struct {
	ID                string `json:"id"`
	Description       string `json:"description"`
	Kind              string `json:"kind"`
	Summary           string `json:"summary"`
	ExpectedOutcome   string `json:"expected_outcome,omitempty"`
	TimeoutMs         *int   `json:"timeout_ms,omitempty"`
	RetryCount        int    `json:"retry_count,omitempty"`
	ContinueOnFailure bool   `json:"continue_on_failure,omitempty"`
}

type ErrorDoc struct {
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Message string `json:"message"`
}

// NewResultDoc flattens a ParseResult for serialization.
func NewResultDoc(res *types.ParseResult) ResultDoc {
	doc := ResultDoc{
		Success:  res.Success,
		Errors:   make([]ErrorDoc, 0, len(res.Errors)),
		Warnings: res.Warnings,
	}
	if doc.Warnings == nil {
		doc.Warnings = []string{}
	}
	for _, e := range res.Errors {
		doc.Errors = append(doc.Errors, ErrorDoc{Line: e.Line, Column: e.Column, Message: e.Message})
	}
	if res.Scenario != nil {
		sc := res.Scenario
		sd := &ScenarioDoc{
			ID:          sc.ID,
			Name:        sc.Name,
			Description: sc.Description,
			StartURL:    sc.StartURL,
			Tags:        sc.Tags,
			Priority:    string(sc.Priority),
			Steps:       make([]StepDoc, 0, len(sc.Steps)),
		}
		for _, step := range sc.Steps {
			sd.Steps = append(sd.Steps, StepDoc{
				ID:                step.ID,
				Description:       step.Description,
				Kind:              planner.Kind(step.Action),
				Summary:           planner.Summary(step.Action),
				ExpectedOutcome:   step.ExpectedOutcome,
				TimeoutMs:         step.TimeoutMs,
				RetryCount:        step.RetryCount,
				ContinueOnFailure: step.ContinueOnFailure,
			})
		}
		doc.Scenario = sd
	}
	return doc
}

// FormatResult marshals a parse result: indented when stdout is a
// terminal, compact when piped.
func FormatResult(res *types.ParseResult) ([]byte, error) {
	return marshal(NewResultDoc(res))
}

// FormatPlan marshals an execution plan the same way.
func FormatPlan(plan *planner.ExecutionPlan) ([]byte, error) {
	return marshal(plan)
}

func marshal(v any) ([]byte, error) {
	if isatty.IsTerminal(os.Stdout.Fd()) {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
