package parser

import (
	"fmt"

	"github.com/btslang/bts/internal/grammar"
	"github.com/btslang/bts/internal/types"
)

// parseAction dispatches an action token span. span[0] is the keyword
// that opened the span; the rest are its arguments. Arguments are
// matched by kind, not position, so `click left #1` and `click #1 left`
// parse the same. A nil return means the span resolved no action.
func (r *run) parseAction(span []token) types.Action {
	keyword := span[0]
	args := span[1:]

	// A second action keyword inside the span means two actions were
	// written back to back with no boundary keyword between them. The
	// first one owns the span; say so instead of discarding silently.
	if grammar.IsAction(keyword.text) {
		for _, t := range args {
			if t.kind == tokenKeyword && grammar.IsAction(t.text) {
				r.warnings = append(r.warnings, fmt.Sprintf(
					"line %d: a step runs a single action, ignoring %q after %q", t.line, t.text, keyword.text))
				break
			}
		}
	}

	switch grammar.Normalize(keyword.text) {
	case grammar.ActionClick:
		return parseClick(args)
	case grammar.ActionType:
		return parseType(args)
	case grammar.ActionHover:
		return parseHover(args)
	case grammar.ActionScroll:
		return parseScroll(args)
	case grammar.ActionWait:
		return parseWait(args)
	case grammar.ActionPressKey:
		return parsePressKey(args)
	case grammar.ActionNavigate:
		return parseNavigate(args)
	case grammar.ActionGoBack:
		return types.GoBackAction{}
	case grammar.ActionGoForward:
		return types.GoForwardAction{}
	case grammar.ActionRefresh:
		return types.RefreshAction{}
	case grammar.ActionAssert:
		return parseAssert(args)
	case grammar.ActionSelect:
		return parseSelect(args)
	case grammar.ActionUploadFile:
		return parseUploadFile(args)
	case grammar.ActionScreenshot:
		return parseScreenshot(args)
	default:
		msg := fmt.Sprintf("line %d: unknown action %q", keyword.line, keyword.text)
		if s := grammar.Suggest(keyword.text); s != "" {
			msg += fmt.Sprintf(" (did you mean %q?)", s)
		}
		r.warnings = append(r.warnings, msg)
		return nil
	}
}

// parseClick parses `click #<id> [left|right|middle] [double]`.
func parseClick(args []token) types.Action {
	id, ok := firstTargetID(args)
	if !ok {
		return nil
	}
	a := types.ClickAction{TargetID: id, Button: types.MouseLeft, ClickCount: 1}
	for _, t := range args {
		if t.kind != tokenKeyword {
			continue
		}
		switch grammar.Normalize(t.text) {
		case "left":
			a.Button = types.MouseLeft
		case "right":
			a.Button = types.MouseRight
		case "middle":
			a.Button = types.MouseMiddle
		case "double":
			a.ClickCount = 2
		}
	}
	return a
}

// parseType parses `type #<id> "<text>" [clearFirst] [pressEnter]`.
func parseType(args []token) types.Action {
	id, okID := firstTargetID(args)
	text, okText := firstString(args)
	if !okID || !okText {
		return nil
	}
	return types.TypeAction{
		TargetID:   id,
		Text:       text,
		ClearFirst: hasFlag(args, "clearfirst"),
		PressEnter: hasFlag(args, "pressenter"),
	}
}

func parseHover(args []token) types.Action {
	id, ok := firstTargetID(args)
	if !ok {
		return nil
	}
	return types.HoverAction{TargetID: id}
}

// parseScroll parses `scroll [up|down|left|right] [<amount>] [#<id>]`.
// All arguments are optional; the defaults are down by 300 pixels on
// the page itself.
func parseScroll(args []token) types.Action {
	a := types.ScrollAction{Direction: types.ScrollDown, Amount: 300}
	if id, ok := firstTargetID(args); ok {
		a.TargetID = &id
	}
	if n, ok := firstNumber(args); ok {
		a.Amount = n
	}
	for _, t := range args {
		if t.kind != tokenKeyword {
			continue
		}
		switch grammar.Normalize(t.text) {
		case "up":
			a.Direction = types.ScrollUp
		case "down":
			a.Direction = types.ScrollDown
		case "left":
			a.Direction = types.ScrollLeft
		case "right":
			a.Direction = types.ScrollRight
		}
	}
	return a
}

// parseWait parses `wait <condition> [timeout <ms>]`. The condition is
// resolved in scan order and the first match wins; a bare number means
// a fixed duration. The trailing timeout bounds the wait itself and
// defaults to 5000ms; pageLoaded and networkIdle mirror it into the
// condition.
func parseWait(args []token) types.Action {
	var condition types.WaitCondition
	timeoutMs := 0
	timeoutSet := false

	for i := 0; i < len(args); i++ {
		t := args[i]
		switch t.kind {
		case tokenNumber:
			if condition == nil {
				condition = types.WaitDuration{Ms: intValue(t.text)}
			}
		case tokenKeyword:
			switch grammar.Normalize(t.text) {
			case "duration":
				if condition == nil && i+1 < len(args) && args[i+1].kind == tokenNumber {
					condition = types.WaitDuration{Ms: intValue(args[i+1].text)}
					i++
				}
			case "visible":
				if condition == nil && i+1 < len(args) && args[i+1].kind == tokenTargetID {
					condition = types.ElementVisible{TargetID: intValue(args[i+1].text)}
					i++
				}
			case "hidden":
				if condition == nil && i+1 < len(args) && args[i+1].kind == tokenTargetID {
					condition = types.ElementHidden{TargetID: intValue(args[i+1].text)}
					i++
				}
			case "enabled":
				if condition == nil && i+1 < len(args) && args[i+1].kind == tokenTargetID {
					condition = types.ElementEnabled{TargetID: intValue(args[i+1].text)}
					i++
				}
			case "textpresent":
				if condition == nil && i+1 < len(args) && args[i+1].kind == tokenString {
					condition = types.TextPresent{Text: args[i+1].text}
					i++
				}
			case "urlcontains":
				if condition == nil && i+1 < len(args) && args[i+1].kind == tokenString {
					condition = types.URLContains{Substring: args[i+1].text}
					i++
				}
			case "pageloaded":
				if condition == nil {
					condition = types.PageLoaded{}
				}
			case "networkidle":
				if condition == nil {
					condition = types.NetworkIdle{}
				}
			case "timeout":
				if i+1 < len(args) && args[i+1].kind == tokenNumber {
					timeoutMs = intValue(args[i+1].text)
					timeoutSet = true
					i++
				}
			}
		}
	}

	if condition == nil {
		return nil
	}
	if !timeoutSet {
		timeoutMs = 5000
	}
	switch condition.(type) {
	case types.PageLoaded:
		condition = types.PageLoaded{TimeoutMs: timeoutMs}
	case types.NetworkIdle:
		condition = types.NetworkIdle{TimeoutMs: timeoutMs}
	}
	return types.WaitAction{Condition: condition, TimeoutMs: timeoutMs}
}

// parsePressKey parses `pressKey "<key>" [ctrl] [alt] [shift] [meta]`.
func parsePressKey(args []token) types.Action {
	key, ok := firstString(args)
	if !ok {
		return nil
	}
	return types.PressKeyAction{
		Key:   key,
		Ctrl:  hasFlag(args, "ctrl"),
		Alt:   hasFlag(args, "alt"),
		Shift: hasFlag(args, "shift"),
		Meta:  hasFlag(args, "meta"),
	}
}

func parseNavigate(args []token) types.Action {
	url, ok := firstString(args)
	if !ok {
		return nil
	}
	return types.NavigateAction{URL: url}
}

// parseAssert parses `assert #<id> <assertion> [<value(s)>]`. The
// assertion is resolved in scan order; value-bearing assertions take
// the string tokens that follow their keyword.
func parseAssert(args []token) types.Action {
	id, ok := firstTargetID(args)
	if !ok {
		return nil
	}
	for i := 0; i < len(args); i++ {
		t := args[i]
		if t.kind != tokenKeyword {
			continue
		}
		switch grammar.Normalize(t.text) {
		case "visible":
			return types.AssertAction{TargetID: id, Assertion: types.AssertVisible{}}
		case "hidden":
			return types.AssertAction{TargetID: id, Assertion: types.AssertHidden{}}
		case "enabled":
			return types.AssertAction{TargetID: id, Assertion: types.AssertEnabled{}}
		case "disabled":
			return types.AssertAction{TargetID: id, Assertion: types.AssertDisabled{}}
		case "checked":
			return types.AssertAction{TargetID: id, Assertion: types.AssertChecked{}}
		case "unchecked":
			return types.AssertAction{TargetID: id, Assertion: types.AssertUnchecked{}}
		case "textequals":
			if s, ok := stringFrom(args, i+1); ok {
				return types.AssertAction{TargetID: id, Assertion: types.AssertTextEquals{Text: s}}
			}
		case "textcontains":
			if s, ok := stringFrom(args, i+1); ok {
				return types.AssertAction{TargetID: id, Assertion: types.AssertTextContains{Text: s}}
			}
		case "hasclass":
			if s, ok := stringFrom(args, i+1); ok {
				return types.AssertAction{TargetID: id, Assertion: types.AssertHasClass{ClassName: s}}
			}
		case "attributeequals":
			var vals []string
			for j := i + 1; j < len(args) && len(vals) < 2; j++ {
				if args[j].kind == tokenString {
					vals = append(vals, args[j].text)
				}
			}
			if len(vals) == 2 {
				return types.AssertAction{TargetID: id, Assertion: types.AssertAttributeEquals{Attr: vals[0], Value: vals[1]}}
			}
		}
	}
	return nil
}

// parseSelect parses `select #<id> [value "<v>"] [label "<l>"] [index <n>]`.
// Each selector keyword takes the token immediately after it.
func parseSelect(args []token) types.Action {
	id, ok := firstTargetID(args)
	if !ok {
		return nil
	}
	a := types.SelectAction{TargetID: id}
	for i := 0; i < len(args); i++ {
		t := args[i]
		if t.kind != tokenKeyword {
			continue
		}
		switch grammar.Normalize(t.text) {
		case "value":
			if i+1 < len(args) && args[i+1].kind == tokenString {
				v := args[i+1].text
				a.Value = &v
				i++
			}
		case "label":
			if i+1 < len(args) && args[i+1].kind == tokenString {
				l := args[i+1].text
				a.Label = &l
				i++
			}
		case "index":
			if i+1 < len(args) && args[i+1].kind == tokenNumber {
				n := intValue(args[i+1].text)
				a.Index = &n
				i++
			}
		}
	}
	return a
}

func parseUploadFile(args []token) types.Action {
	id, okID := firstTargetID(args)
	path, okPath := firstString(args)
	if !okID || !okPath {
		return nil
	}
	return types.UploadFileAction{TargetID: id, FilePath: path}
}

// parseScreenshot parses `screenshot ["<name>"] [fullPage]`. A missing
// name falls back to "screenshot".
func parseScreenshot(args []token) types.Action {
	a := types.ScreenshotAction{Name: "screenshot"}
	if s, ok := firstString(args); ok {
		a.Name = s
	}
	a.FullPage = hasFlag(args, "fullpage")
	return a
}

func firstTargetID(args []token) (int, bool) {
	for _, t := range args {
		if t.kind == tokenTargetID {
			return intValue(t.text), true
		}
	}
	return 0, false
}

func firstString(args []token) (string, bool) {
	for _, t := range args {
		if t.kind == tokenString {
			return t.text, true
		}
	}
	return "", false
}

func firstNumber(args []token) (int, bool) {
	for _, t := range args {
		if t.kind == tokenNumber {
			return intValue(t.text), true
		}
	}
	return 0, false
}

// stringFrom returns the first string token at or after index i.
func stringFrom(args []token, i int) (string, bool) {
	for ; i < len(args); i++ {
		if args[i].kind == tokenString {
			return args[i].text, true
		}
	}
	return "", false
}

// hasFlag reports whether the normalized keyword appears anywhere in
// the argument span.
func hasFlag(args []token, name string) bool {
	for _, t := range args {
		if t.kind == tokenKeyword && grammar.Normalize(t.text) == name {
			return true
		}
	}
	return false
}
