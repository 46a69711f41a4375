package parser

import (
	"fmt"

	"github.com/btslang/bts/internal/grammar"
	"github.com/btslang/bts/internal/types"
)

// parseStep parses one step with the cursor just past the step keyword.
// A step carries exactly one action: the first keyword run that
// resolves to an action wins, later runs are ignored with a warning,
// and a step whose body resolves no action at all is dropped with an
// error. Returns nil for a dropped step.
func (r *run) parseStep() *types.TestStep {
	errLine, errColumn := r.position()

	description := ""
	if r.pos < len(r.tokens) && r.tokens[r.pos].kind == tokenString {
		description = r.tokens[r.pos].text
		r.pos++
	}

	body := r.stepBody()
	step := &types.TestStep{Description: description}
	var action types.Action

	i := 0
	for i < len(body) {
		tok := body[i]
		if tok.kind != tokenKeyword {
			i++
			continue
		}
		switch grammar.Normalize(tok.text) {
		case grammar.ModifierExpect:
			if i+1 < len(body) && body[i+1].kind == tokenString {
				step.ExpectedOutcome = body[i+1].text
				i += 2
			} else {
				i++
			}
		case grammar.ModifierTimeout:
			if i+1 < len(body) && body[i+1].kind == tokenNumber {
				ms := intValue(body[i+1].text)
				step.TimeoutMs = &ms
				i += 2
			} else {
				i++
			}
		case grammar.ModifierRetry:
			if i+1 < len(body) && body[i+1].kind == tokenNumber {
				step.RetryCount = intValue(body[i+1].text)
				i += 2
			} else {
				i++
			}
		case grammar.ModifierContinueOnFailure:
			step.ContinueOnFailure = true
			i++
		default:
			// A wait action owns its trailing timeout, so the boundary
			// set for wait spans excludes the timeout keyword.
			boundaries := grammar.StepBoundaries()
			if grammar.Normalize(tok.text) == grammar.ActionWait {
				boundaries = grammar.WaitBoundaries()
			}
			span, next := collectUntilBoundary(body, i, boundaries)
			if action == nil {
				action = r.parseAction(span)
			} else if grammar.IsAction(tok.text) {
				r.warnings = append(r.warnings, fmt.Sprintf(
					"line %d: step %q already has an action, ignoring %q", tok.line, description, tok.text))
			}
			i = next
		}
	}

	if action == nil {
		r.errors = append(r.errors, types.ParseError{
			Line:    errLine,
			Column:  errColumn,
			Message: fmt.Sprintf("Step '%s' has no action", description),
		})
		return nil
	}
	step.Action = action
	return step
}

// stepBody collects the tokens strictly between the step's braces and
// advances the cursor past the closing brace. An unterminated body
// runs to the end of the stream.
func (r *run) stepBody() []token {
	for r.pos < len(r.tokens) && r.tokens[r.pos].kind != tokenBraceOpen {
		r.pos++
	}
	if r.pos >= len(r.tokens) {
		return nil
	}
	r.pos++
	start := r.pos
	depth := 1
	for r.pos < len(r.tokens) {
		switch r.tokens[r.pos].kind {
		case tokenBraceOpen:
			depth++
		case tokenBraceClose:
			depth--
			if depth == 0 {
				body := r.tokens[start:r.pos]
				r.pos++
				return body
			}
		}
		r.pos++
	}
	return r.tokens[start:]
}

// collectUntilBoundary returns the token span starting at start and the
// index just past it. The span runs up to, but not including, the next
// keyword present in boundaries; span[0] is always the token at start.
func collectUntilBoundary(tokens []token, start int, boundaries map[string]bool) ([]token, int) {
	i := start + 1
	for i < len(tokens) {
		t := tokens[i]
		if t.kind == tokenKeyword && boundaries[grammar.Normalize(t.text)] {
			break
		}
		i++
	}
	return tokens[start:i], i
}
