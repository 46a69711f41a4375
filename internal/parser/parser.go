// Package parser implements the tokenizer and parser for the bts
// scenario language.
//
// Grammar (informal EBNF):
//
//	scenario = "scenario" string "{" { field | step } "}"
//	field    = "description" string
//	         | "url" string
//	         | "tags" array
//	         | "priority" keyword
//	step     = "step" string "{" { modifier | action } "}"
//	modifier = "expect" string
//	         | "timeout" number
//	         | "retry" number
//	         | "continueOnFailure"
//	action   = "click" target [ "left" | "right" | "middle" ] [ "double" ]
//	         | "type" target string [ "clearFirst" ] [ "pressEnter" ]
//	         | "hover" target
//	         | "scroll" [ direction ] [ number ] [ target ]
//	         | "wait" condition [ "timeout" number ]
//	         | "pressKey" string { "ctrl" | "alt" | "shift" | "meta" }
//	         | "navigate" string
//	         | "goBack" | "goForward" | "refresh"
//	         | "assert" target assertion
//	         | "select" target [ "value" string ] [ "label" string ] [ "index" number ]
//	         | "uploadFile" target string
//	         | "screenshot" [ string ] [ "fullPage" ]
//
// Keywords match case-insensitively. Parsing is a lenient linear scan
// over the token stream rather than a strict grammar walk: unknown
// tokens are skipped, malformed structures stop contributing data, and
// problems surface as errors and warnings on the ParseResult instead
// of aborting the parse.
package parser

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/btslang/bts/internal/grammar"
	"github.com/btslang/bts/internal/types"
)

// run carries the state of a single Parse call. A fresh run per call
// keeps the package safe for concurrent use with no reset step.
type run struct {
	tokens   []token
	pos      int
	errors   []types.ParseError
	warnings []string
}

// Parse parses scenario script text into a ParseResult. It never
// returns a Go error and never panics: structural problems accumulate
// as errors and warnings on the result, and an unexpected panic inside
// the parser converts to a single ParseError at the current token.
func Parse(input string) (result *types.ParseResult) {
	r := &run{tokens: tokenize(input)}

	defer func() {
		if rec := recover(); rec != nil {
			line, column := r.position()
			result = &types.ParseResult{
				Errors:   append(r.errors, types.ParseError{Line: line, Column: column, Message: fmt.Sprint(rec)}),
				Warnings: r.warnings,
			}
		}
	}()

	scenario := r.parseScenario()
	if scenario == nil {
		return &types.ParseResult{Errors: r.errors, Warnings: r.warnings}
	}
	return &types.ParseResult{
		Success:  true,
		Scenario: scenario,
		Errors:   r.errors,
		Warnings: r.warnings,
	}
}

// parseScenario scans the whole token stream for scenario fields and
// steps. Later occurrences of a field overwrite earlier ones; unknown
// top-level keywords are skipped without comment.
func (r *run) parseScenario() *types.TestScenario {
	sc := &types.TestScenario{
		ID:       fmt.Sprintf("scenario_%d", time.Now().UnixNano()),
		Priority: types.PriorityMedium,
	}

	for r.pos < len(r.tokens) {
		tok := r.tokens[r.pos]
		if tok.kind != tokenKeyword {
			r.pos++
			continue
		}
		switch grammar.Normalize(tok.text) {
		case grammar.KeywordScenario:
			if s, ok := r.stringAfter(); ok {
				sc.Name = s
			}
		case grammar.KeywordDescription:
			if s, ok := r.stringAfter(); ok {
				sc.Description = s
			}
		case grammar.KeywordURL:
			if s, ok := r.stringAfter(); ok {
				sc.StartURL = s
			}
		case grammar.KeywordTags:
			if raw, ok := r.arrayAfter(); ok {
				sc.Tags = splitTags(raw)
			}
		case grammar.KeywordPriority:
			if kw, ok := r.keywordAfter(); ok {
				p, _ := types.ParsePriority(kw)
				sc.Priority = p
			}
		case grammar.KeywordStep:
			r.pos++
			if step := r.parseStep(); step != nil {
				step.ID = fmt.Sprintf("step_%d", len(sc.Steps)+1)
				sc.Steps = append(sc.Steps, *step)
			}
		default:
			r.pos++
		}
	}

	if sc.Name == "" {
		r.errors = append(r.errors, types.ParseError{Line: 1, Column: 0, Message: "Scenario name is required"})
		return nil
	}
	return sc
}

// stringAfter consumes the keyword under the cursor plus the string
// that must immediately follow it. When the next token is not a string
// only the keyword is consumed and ok is false.
func (r *run) stringAfter() (string, bool) {
	if r.pos+1 < len(r.tokens) && r.tokens[r.pos+1].kind == tokenString {
		s := r.tokens[r.pos+1].text
		r.pos += 2
		return s, true
	}
	r.pos++
	return "", false
}

func (r *run) arrayAfter() (string, bool) {
	if r.pos+1 < len(r.tokens) && r.tokens[r.pos+1].kind == tokenArray {
		s := r.tokens[r.pos+1].text
		r.pos += 2
		return s, true
	}
	r.pos++
	return "", false
}

func (r *run) keywordAfter() (string, bool) {
	if r.pos+1 < len(r.tokens) && r.tokens[r.pos+1].kind == tokenKeyword {
		s := r.tokens[r.pos+1].text
		r.pos += 2
		return s, true
	}
	r.pos++
	return "", false
}

// position reports the line and column of the token under the cursor,
// clamped to the last token. Used for step diagnostics and by the
// panic recovery path in Parse.
func (r *run) position() (int, int) {
	if len(r.tokens) == 0 {
		return 1, 0
	}
	i := r.pos
	if i >= len(r.tokens) {
		i = len(r.tokens) - 1
	}
	return r.tokens[i].line, r.tokens[i].column
}

// splitTags parses a bracketed tag literal captured verbatim by the
// tokenizer, e.g. `["smoke", "login"]`. Entries are comma separated
// and optionally quoted; empties are dropped and duplicates keep their
// first occurrence.
func splitTags(raw string) []string {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "[")
	raw = strings.TrimSuffix(raw, "]")

	var tags []string
	seen := make(map[string]bool)
	for _, part := range strings.Split(raw, ",") {
		tag := strings.TrimSpace(part)
		tag = strings.Trim(tag, `"'`)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	return tags
}

// intValue parses a number token's text, truncating any decimal part.
// The tokenizer guarantees the text is numeric, so failure collapses
// to zero rather than an error.
func intValue(text string) int {
	if n, err := strconv.Atoi(text); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(text, 64); err == nil {
		return int(f)
	}
	return 0
}
