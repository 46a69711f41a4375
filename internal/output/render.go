package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/btslang/bts/internal/planner"
	"github.com/btslang/bts/internal/types"
)

var (
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	boldStyle  = lipgloss.NewStyle().Bold(true)
	faintStyle = lipgloss.NewStyle().Faint(true)
)

// RenderResult prints the human form of a parse result: a scenario
// header and step list on success, then any diagnostics with their
// line:col positions.
func RenderResult(w io.Writer, res *types.ParseResult) {
	if res.Success {
		sc := res.Scenario
		fmt.Fprintln(w, okStyle.Render("ok")+"     "+boldStyle.Render(sc.Name)+
			faintStyle.Render(fmt.Sprintf("  %d steps, priority %s", len(sc.Steps), sc.Priority)))
		if sc.StartURL != "" {
			fmt.Fprintln(w, "       "+faintStyle.Render("url  ")+sc.StartURL)
		}
		if len(sc.Tags) > 0 {
			fmt.Fprintln(w, "       "+faintStyle.Render("tags ")+strings.Join(sc.Tags, ", "))
		}
		for i, step := range sc.Steps {
			fmt.Fprintf(w, "  %2d.  %s\n", i+1, step.Description)
			fmt.Fprintln(w, "       "+faintStyle.Render(planner.Summary(step.Action)))
		}
	} else {
		fmt.Fprintln(w, errStyle.Render("failed")+" no scenario produced")
	}

	for _, e := range res.Errors {
		fmt.Fprintln(w, errStyle.Render("error")+fmt.Sprintf("  %d:%d  %s", e.Line, e.Column, e.Message))
	}
	for _, warning := range res.Warnings {
		fmt.Fprintln(w, warnStyle.Render("warn")+"   "+warning)
	}
}

// RenderPlan prints the human form of an execution plan.
func RenderPlan(w io.Writer, plan *planner.ExecutionPlan) {
	fmt.Fprintln(w, boldStyle.Render(plan.Name)+faintStyle.Render(
		fmt.Sprintf("  priority %s, %d steps", plan.Priority, plan.Totals.Steps)))
	if plan.StartURL != "" {
		fmt.Fprintln(w, faintStyle.Render("start at ")+plan.StartURL)
	}

	for _, step := range plan.Steps {
		fmt.Fprintf(w, "  %2d.  %s\n", step.Index, step.Summary)
		detail := fmt.Sprintf("timeout %dms", step.TimeoutMs)
		if step.RetryCount > 0 {
			detail += fmt.Sprintf(", retry %d", step.RetryCount)
		}
		if step.ContinueOnFailure {
			detail += ", continue on failure"
		}
		if step.ExpectedOutcome != "" {
			detail += fmt.Sprintf(", expect %q", step.ExpectedOutcome)
		}
		fmt.Fprintln(w, "       "+faintStyle.Render(detail))
	}

	if plan.Totals.RetryBudget > 0 || plan.Totals.EstimatedMinMs > 0 {
		fmt.Fprintln(w, faintStyle.Render(fmt.Sprintf(
			"retry budget %d, at least %dms of fixed waits", plan.Totals.RetryBudget, plan.Totals.EstimatedMinMs)))
	}
	for _, warning := range plan.Warnings {
		fmt.Fprintln(w, warnStyle.Render("warn")+"   "+warning)
	}
}
