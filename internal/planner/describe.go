package planner

import (
	"fmt"
	"strings"

	"github.com/btslang/bts/internal/types"
)

// Kind returns the canonical keyword for an action, matching the
// grammar's display spelling. Catalog rows and plan output both key on
// this, so the switch must cover every variant.
func Kind(a types.Action) string {
	switch a.(type) {
	case types.ClickAction:
		return "click"
	case types.TypeAction:
		return "type"
	case types.HoverAction:
		return "hover"
	case types.ScrollAction:
		return "scroll"
	case types.WaitAction:
		return "wait"
	case types.PressKeyAction:
		return "pressKey"
	case types.NavigateAction:
		return "navigate"
	case types.GoBackAction:
		return "goBack"
	case types.GoForwardAction:
		return "goForward"
	case types.RefreshAction:
		return "refresh"
	case types.AssertAction:
		return "assert"
	case types.SelectAction:
		return "select"
	case types.UploadFileAction:
		return "uploadFile"
	case types.ScreenshotAction:
		return "screenshot"
	default:
		return "unknown"
	}
}

// Summary renders one human-readable line for an action.
func Summary(a types.Action) string {
	switch act := a.(type) {
	case types.ClickAction:
		verb := "click"
		if act.ClickCount == 2 {
			verb = "double-click"
		}
		s := fmt.Sprintf("%s #%d", verb, act.TargetID)
		if act.Button != types.MouseLeft {
			s += fmt.Sprintf(" (%s button)", act.Button)
		}
		return s
	case types.TypeAction:
		s := fmt.Sprintf("type %q into #%d", act.Text, act.TargetID)
		if act.ClearFirst {
			s += " after clearing it"
		}
		if act.PressEnter {
			s += ", then press Enter"
		}
		return s
	case types.HoverAction:
		return fmt.Sprintf("hover over #%d", act.TargetID)
	case types.ScrollAction:
		s := fmt.Sprintf("scroll %s %dpx", act.Direction, act.Amount)
		if act.TargetID != nil {
			s += fmt.Sprintf(" in #%d", *act.TargetID)
		}
		return s
	case types.WaitAction:
		if d, ok := act.Condition.(types.WaitDuration); ok {
			return fmt.Sprintf("wait %dms", d.Ms)
		}
		return fmt.Sprintf("wait until %s (timeout %dms)", describeCondition(act.Condition), act.TimeoutMs)
	case types.PressKeyAction:
		var mods []string
		if act.Ctrl {
			mods = append(mods, "ctrl")
		}
		if act.Alt {
			mods = append(mods, "alt")
		}
		if act.Shift {
			mods = append(mods, "shift")
		}
		if act.Meta {
			mods = append(mods, "meta")
		}
		if len(mods) == 0 {
			return fmt.Sprintf("press %q", act.Key)
		}
		return fmt.Sprintf("press %s+%s", strings.Join(mods, "+"), act.Key)
	case types.NavigateAction:
		return fmt.Sprintf("navigate to %s", act.URL)
	case types.GoBackAction:
		return "go back"
	case types.GoForwardAction:
		return "go forward"
	case types.RefreshAction:
		return "refresh the page"
	case types.AssertAction:
		return fmt.Sprintf("assert #%d %s", act.TargetID, describeAssertion(act.Assertion))
	case types.SelectAction:
		var by []string
		if act.Value != nil {
			by = append(by, fmt.Sprintf("value %q", *act.Value))
		}
		if act.Label != nil {
			by = append(by, fmt.Sprintf("label %q", *act.Label))
		}
		if act.Index != nil {
			by = append(by, fmt.Sprintf("index %d", *act.Index))
		}
		if len(by) == 0 {
			return fmt.Sprintf("select an option in #%d", act.TargetID)
		}
		return fmt.Sprintf("select %s in #%d", strings.Join(by, ", "), act.TargetID)
	case types.UploadFileAction:
		return fmt.Sprintf("upload %q to #%d", act.FilePath, act.TargetID)
	case types.ScreenshotAction:
		s := fmt.Sprintf("capture screenshot %q", act.Name)
		if act.FullPage {
			s += " (full page)"
		}
		return s
	default:
		return "unknown action"
	}
}

func describeCondition(c types.WaitCondition) string {
	switch cond := c.(type) {
	case types.WaitDuration:
		return fmt.Sprintf("%dms", cond.Ms)
	case types.ElementVisible:
		return fmt.Sprintf("element #%d is visible", cond.TargetID)
	case types.ElementHidden:
		return fmt.Sprintf("element #%d is hidden", cond.TargetID)
	case types.ElementEnabled:
		return fmt.Sprintf("element #%d is enabled", cond.TargetID)
	case types.TextPresent:
		return fmt.Sprintf("text %q is present", cond.Text)
	case types.URLContains:
		return fmt.Sprintf("the url contains %q", cond.Substring)
	case types.PageLoaded:
		return "the page has loaded"
	case types.NetworkIdle:
		return "the network is idle"
	default:
		return "unknown condition"
	}
}

func describeAssertion(a types.Assertion) string {
	switch as := a.(type) {
	case types.AssertVisible:
		return "is visible"
	case types.AssertHidden:
		return "is hidden"
	case types.AssertEnabled:
		return "is enabled"
	case types.AssertDisabled:
		return "is disabled"
	case types.AssertChecked:
		return "is checked"
	case types.AssertUnchecked:
		return "is unchecked"
	case types.AssertTextEquals:
		return fmt.Sprintf("text equals %q", as.Text)
	case types.AssertTextContains:
		return fmt.Sprintf("text contains %q", as.Text)
	case types.AssertAttributeEquals:
		return fmt.Sprintf("attribute %q equals %q", as.Attr, as.Value)
	case types.AssertHasClass:
		return fmt.Sprintf("has class %q", as.ClassName)
	default:
		return "unknown assertion"
	}
}
