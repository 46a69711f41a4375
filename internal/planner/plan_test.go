package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/btslang/bts/internal/parser"
	"github.com/btslang/bts/internal/types"
)

func intp(n int) *int { return &n }

func TestPlanNilScenario(t *testing.T) {
	_, err := Plan(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no scenario")
}

func TestPlanResolvesStepDefaults(t *testing.T) {
	sc := &types.TestScenario{
		ID:       "scenario_1",
		Name:     "S",
		Priority: types.PriorityMedium,
		Steps: []types.TestStep{
			{ID: "step_1", Description: "open", Action: types.NavigateAction{URL: "https://example.com"}},
			{ID: "step_2", Description: "click", Action: types.ClickAction{TargetID: 1, Button: types.MouseLeft, ClickCount: 1}, TimeoutMs: intp(8000), RetryCount: 2},
		},
	}

	plan, err := Plan(sc)
	require.NoError(t, err)
	require.Len(t, plan.Steps, 2)

	assert.Equal(t, 1, plan.Steps[0].Index)
	assert.Equal(t, DefaultStepTimeoutMs, plan.Steps[0].TimeoutMs)
	assert.Equal(t, "navigate", plan.Steps[0].Kind)
	assert.Equal(t, "navigate to https://example.com", plan.Steps[0].Summary)

	assert.Equal(t, 2, plan.Steps[1].Index)
	assert.Equal(t, 8000, plan.Steps[1].TimeoutMs)
	assert.Equal(t, 2, plan.Steps[1].RetryCount)
	assert.Empty(t, plan.Warnings)
}

func TestPlanTotals(t *testing.T) {
	sc := &types.TestScenario{
		ID:       "scenario_1",
		Name:     "S",
		Priority: types.PriorityMedium,
		Steps: []types.TestStep{
			{ID: "step_1", Description: "pause", Action: types.WaitAction{Condition: types.WaitDuration{Ms: 1500}, TimeoutMs: 5000}},
			{ID: "step_2", Description: "settle", Action: types.WaitAction{Condition: types.NetworkIdle{TimeoutMs: 5000}, TimeoutMs: 5000}, RetryCount: 1},
			{ID: "step_3", Description: "pause again", Action: types.WaitAction{Condition: types.WaitDuration{Ms: 500}, TimeoutMs: 5000}, RetryCount: 2},
		},
	}

	plan, err := Plan(sc)
	require.NoError(t, err)

	assert.Equal(t, 3, plan.Totals.Steps)
	assert.Equal(t, 3, plan.Totals.RetryBudget)
	// Only fixed-duration waits count toward the floor.
	assert.Equal(t, 2000, plan.Totals.EstimatedMinMs)
}

func TestPlanWarnings(t *testing.T) {
	t.Run("no steps", func(t *testing.T) {
		plan, err := Plan(&types.TestScenario{ID: "s", Name: "S", Priority: types.PriorityMedium})
		require.NoError(t, err)
		assert.Equal(t, []string{"scenario has no steps"}, plan.Warnings)
	})

	t.Run("duplicate descriptions", func(t *testing.T) {
		sc := &types.TestScenario{
			ID: "s", Name: "S", Priority: types.PriorityMedium,
			Steps: []types.TestStep{
				{ID: "step_1", Description: "do it", Action: types.RefreshAction{}},
				{ID: "step_2", Description: "do it", Action: types.GoBackAction{}},
			},
		}
		plan, err := Plan(sc)
		require.NoError(t, err)
		require.Len(t, plan.Warnings, 1)
		assert.Contains(t, plan.Warnings[0], `steps 1 and 2 share the description "do it"`)
	})

	t.Run("screenshot name collision", func(t *testing.T) {
		sc := &types.TestScenario{
			ID: "s", Name: "S", Priority: types.PriorityMedium,
			Steps: []types.TestStep{
				{ID: "step_1", Description: "before", Action: types.ScreenshotAction{Name: "cart"}},
				{ID: "step_2", Description: "after", Action: types.ScreenshotAction{Name: "cart", FullPage: true}},
			},
		}
		plan, err := Plan(sc)
		require.NoError(t, err)
		require.Len(t, plan.Warnings, 1)
		assert.Contains(t, plan.Warnings[0], `screenshot named "cart"`)
	})
}

func TestPlanFromParsedScenario(t *testing.T) {
	res := parser.Parse(`
scenario "Checkout" {
	url "https://shop.example.com"
	priority high

	step "open cart" { click #4 }
	step "wait for totals" {
		wait textPresent "Total" timeout 3000
		retry 1
	}
}`)
	require.True(t, res.Success)

	plan, err := Plan(res.Scenario)
	require.NoError(t, err)

	assert.Equal(t, "Checkout", plan.Name)
	assert.Equal(t, types.PriorityHigh, plan.Priority)
	require.Len(t, plan.Steps, 2)
	assert.Equal(t, "click", plan.Steps[0].Kind)
	assert.Equal(t, `wait until text "Total" is present (timeout 3000ms)`, plan.Steps[1].Summary)
	// The wait's own timeout does not become the step timeout.
	assert.Equal(t, DefaultStepTimeoutMs, plan.Steps[1].TimeoutMs)
	assert.Equal(t, 1, plan.Totals.RetryBudget)
}

func TestKindCoversEveryAction(t *testing.T) {
	tests := []struct {
		action types.Action
		want   string
	}{
		{types.ClickAction{}, "click"},
		{types.TypeAction{}, "type"},
		{types.HoverAction{}, "hover"},
		{types.ScrollAction{}, "scroll"},
		{types.WaitAction{}, "wait"},
		{types.PressKeyAction{}, "pressKey"},
		{types.NavigateAction{}, "navigate"},
		{types.GoBackAction{}, "goBack"},
		{types.GoForwardAction{}, "goForward"},
		{types.RefreshAction{}, "refresh"},
		{types.AssertAction{}, "assert"},
		{types.SelectAction{}, "select"},
		{types.UploadFileAction{}, "uploadFile"},
		{types.ScreenshotAction{}, "screenshot"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Kind(tt.action))
		})
	}
}

func TestSummary(t *testing.T) {
	tests := []struct {
		name   string
		action types.Action
		want   string
	}{
		{
			"plain click",
			types.ClickAction{TargetID: 3, Button: types.MouseLeft, ClickCount: 1},
			"click #3",
		},
		{
			"double right click",
			types.ClickAction{TargetID: 3, Button: types.MouseRight, ClickCount: 2},
			"double-click #3 (right button)",
		},
		{
			"type with flags",
			types.TypeAction{TargetID: 2, Text: "hi", ClearFirst: true, PressEnter: true},
			`type "hi" into #2 after clearing it, then press Enter`,
		},
		{
			"hover",
			types.HoverAction{TargetID: 4},
			"hover over #4",
		},
		{
			"scroll in element",
			types.ScrollAction{Direction: types.ScrollUp, Amount: 120, TargetID: intp(9)},
			"scroll up 120px in #9",
		},
		{
			"fixed wait",
			types.WaitAction{Condition: types.WaitDuration{Ms: 1500}, TimeoutMs: 5000},
			"wait 1500ms",
		},
		{
			"conditional wait",
			types.WaitAction{Condition: types.ElementVisible{TargetID: 3}, TimeoutMs: 5000},
			"wait until element #3 is visible (timeout 5000ms)",
		},
		{
			"press key with modifiers",
			types.PressKeyAction{Key: "Enter", Ctrl: true, Shift: true},
			"press ctrl+shift+Enter",
		},
		{
			"press key plain",
			types.PressKeyAction{Key: "Escape"},
			`press "Escape"`,
		},
		{
			"assert attribute",
			types.AssertAction{TargetID: 6, Assertion: types.AssertAttributeEquals{Attr: "href", Value: "/home"}},
			`assert #6 attribute "href" equals "/home"`,
		},
		{
			"assert checked",
			types.AssertAction{TargetID: 6, Assertion: types.AssertChecked{}},
			"assert #6 is checked",
		},
		{
			"select by value and index",
			types.SelectAction{TargetID: 7, Value: strp("US"), Index: intp(2)},
			`select value "US", index 2 in #7`,
		},
		{
			"select with nothing",
			types.SelectAction{TargetID: 7},
			"select an option in #7",
		},
		{
			"upload",
			types.UploadFileAction{TargetID: 8, FilePath: "/tmp/a.png"},
			`upload "/tmp/a.png" to #8`,
		},
		{
			"full page screenshot",
			types.ScreenshotAction{Name: "cart", FullPage: true},
			`capture screenshot "cart" (full page)`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Summary(tt.action))
		})
	}
}

func strp(s string) *string { return &s }
