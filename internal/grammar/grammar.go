// Package grammar defines the structured keyword surface of the bts
// scenario language. Every keyword comparison in the parser goes through
// this package, so the tables here are the single place the vocabulary
// is spelled out.
package grammar

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Normalize folds a keyword for table lookup. Keyword matching is
// case-insensitive at the parser layer, never at the tokenizer.
func Normalize(s string) string {
	return strings.ToLower(s)
}

// Normalized action keywords.
const (
	ActionClick      = "click"
	ActionType       = "type"
	ActionHover      = "hover"
	ActionScroll     = "scroll"
	ActionWait       = "wait"
	ActionPressKey   = "presskey"
	ActionNavigate   = "navigate"
	ActionGoBack     = "goback"
	ActionGoForward  = "goforward"
	ActionRefresh    = "refresh"
	ActionAssert     = "assert"
	ActionSelect     = "select"
	ActionUploadFile = "uploadfile"
	ActionScreenshot = "screenshot"
)

// Normalized scenario-level keywords.
const (
	KeywordScenario    = "scenario"
	KeywordDescription = "description"
	KeywordURL         = "url"
	KeywordTags        = "tags"
	KeywordPriority    = "priority"
	KeywordStep        = "step"
)

// Normalized step modifier keywords. These are the boundary keywords that
// terminate an action's token span within a step body.
const (
	ModifierExpect            = "expect"
	ModifierTimeout           = "timeout"
	ModifierRetry             = "retry"
	ModifierContinueOnFailure = "continueonfailure"
)

// Action describes one action keyword for help and snapshot output.
type Action struct {
	Name        string
	Description string
	Example     string
}

// Modifier describes one step modifier keyword.
type Modifier struct {
	Name        string
	Description string
	Example     string
}

// Grammar contains the complete language definition.
type Grammar struct {
	Actions        []Action
	Modifiers      []Modifier
	WaitConditions []string
	Assertions     []string
	Priorities     []string
}

// GetGrammar returns the canonical grammar definition.
func GetGrammar() Grammar {
	return Grammar{
		Actions: []Action{
			{Name: "click", Description: "Click an element", Example: "click #3 [left|right|middle] [double]"},
			{Name: "type", Description: "Type text into an element", Example: "type #2 \"hello\" [clearFirst] [pressEnter]"},
			{Name: "hover", Description: "Hover over an element", Example: "hover #4"},
			{Name: "scroll", Description: "Scroll the page or an element", Example: "scroll down 300 [#5]"},
			{Name: "wait", Description: "Wait for a condition", Example: "wait textPresent \"Done\" [timeout 3000]"},
			{Name: "pressKey", Description: "Press a key with optional modifiers", Example: "pressKey \"Enter\" [ctrl] [alt] [shift] [meta]"},
			{Name: "navigate", Description: "Load a URL", Example: "navigate \"https://example.com\""},
			{Name: "goBack", Description: "Go back in history", Example: "goBack"},
			{Name: "goForward", Description: "Go forward in history", Example: "goForward"},
			{Name: "refresh", Description: "Reload the page", Example: "refresh"},
			{Name: "assert", Description: "Check an element assertion", Example: "assert #6 textContains \"Welcome\""},
			{Name: "select", Description: "Pick an option from a select", Example: "select #7 [value \"v\"] [label \"l\"] [index 2]"},
			{Name: "uploadFile", Description: "Attach a file to a file input", Example: "uploadFile #8 \"/tmp/avatar.png\""},
			{Name: "screenshot", Description: "Capture a screenshot", Example: "screenshot \"checkout\" [fullPage]"},
		},
		Modifiers: []Modifier{
			{Name: "expect", Description: "Expected outcome text for the step", Example: "expect \"dashboard is shown\""},
			{Name: "timeout", Description: "Step timeout in milliseconds", Example: "timeout 5000"},
			{Name: "retry", Description: "Retry count for the step", Example: "retry 2"},
			{Name: "continueOnFailure", Description: "Keep running later steps if this one fails", Example: "continueOnFailure"},
		},
		WaitConditions: []string{
			"duration", "visible", "hidden", "enabled",
			"textPresent", "urlContains", "pageLoaded", "networkIdle",
		},
		Assertions: []string{
			"visible", "hidden", "enabled", "disabled", "checked", "unchecked",
			"textEquals", "textContains", "attributeEquals", "hasClass",
		},
		Priorities: []string{"critical", "high", "medium", "low"},
	}
}

// StepBoundaries returns the boundary keyword set used while collecting an
// action's token span.
func StepBoundaries() map[string]bool {
	return map[string]bool{
		ModifierExpect:            true,
		ModifierTimeout:           true,
		ModifierRetry:             true,
		ModifierContinueOnFailure: true,
	}
}

// WaitBoundaries returns the boundary set for wait actions. A wait
// consumes its own trailing timeout, so timeout is not a boundary there.
func WaitBoundaries() map[string]bool {
	return map[string]bool{
		ModifierExpect:            true,
		ModifierRetry:             true,
		ModifierContinueOnFailure: true,
	}
}

// IsAction reports whether word names an action keyword.
func IsAction(word string) bool {
	switch Normalize(word) {
	case ActionClick, ActionType, ActionHover, ActionScroll, ActionWait,
		ActionPressKey, ActionNavigate, ActionGoBack, ActionGoForward,
		ActionRefresh, ActionAssert, ActionSelect, ActionUploadFile,
		ActionScreenshot:
		return true
	}
	return false
}

// Suggest finds the closest action keyword to word using fuzzy matching,
// for "did you mean" diagnostics. Returns "" when nothing is close.
func Suggest(word string) string {
	g := GetGrammar()
	candidates := make([]string, len(g.Actions))
	for i, a := range g.Actions {
		candidates[i] = a.Name
	}

	ranks := fuzzy.RankFindFold(word, candidates)
	if len(ranks) == 0 {
		return ""
	}
	sort.Sort(ranks)
	return ranks[0].Target
}
