package parser

import "strings"

// tokenKind classifies a lexical token.
type tokenKind int

const (
	tokenKeyword tokenKind = iota
	tokenString
	tokenNumber
	tokenTargetID
	tokenArray
	tokenBraceOpen
	tokenBraceClose
)

// token is one lexical unit. line is 1-based; column is the 0-based
// offset of the token's first character within its line. Tokens are
// immutable once produced.
type token struct {
	kind   tokenKind
	text   string
	line   int
	column int
}

// tokenize converts raw script text into a flat token stream. It never
// fails: malformed input degrades to a shorter or misaligned stream that
// the parser surfaces as errors, not the tokenizer.
func tokenize(input string) []token {
	var tokens []token
	for n, raw := range strings.Split(input, "\n") {
		line := strings.TrimSuffix(raw, "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "//") || strings.HasPrefix(trimmed, "#") {
			continue
		}
		tokens = append(tokens, tokenizeLine([]rune(line), n+1)...)
	}
	return tokens
}

func tokenizeLine(line []rune, lineNo int) []token {
	var tokens []token
	i := 0
	for i < len(line) {
		ch := line[i]
		switch {
		case ch == '"':
			text, next := scanString(line, i+1)
			tokens = append(tokens, token{tokenString, text, lineNo, i})
			i = next
		case ch == '#' && i+1 < len(line) && isDigit(line[i+1]):
			start := i
			j := i + 1
			for j < len(line) && isDigit(line[j]) {
				j++
			}
			tokens = append(tokens, token{tokenTargetID, string(line[i+1 : j]), lineNo, start})
			i = j
		case ch == '[':
			text, next := scanArray(line, i)
			tokens = append(tokens, token{tokenArray, text, lineNo, i})
			i = next
		case ch == '{':
			tokens = append(tokens, token{tokenBraceOpen, "{", lineNo, i})
			i++
		case ch == '}':
			tokens = append(tokens, token{tokenBraceClose, "}", lineNo, i})
			i++
		case isDigit(ch) || (ch == '-' && i+1 < len(line) && isDigit(line[i+1])):
			text, next := scanNumber(line, i)
			tokens = append(tokens, token{tokenNumber, text, lineNo, i})
			i = next
		case isLetter(ch) || ch == '_':
			j := i
			for j < len(line) && isWordChar(line[j]) {
				j++
			}
			tokens = append(tokens, token{tokenKeyword, string(line[i:j]), lineNo, i})
			i = j
		default:
			i++
		}
	}
	return tokens
}

// scanString decodes a string literal starting just past the opening
// quote. Escapes \n, \t, \" and \\ are translated; any other escaped
// character passes through literally. An unterminated literal consumes
// to the end of the line.
func scanString(line []rune, start int) (string, int) {
	var b strings.Builder
	i := start
	for i < len(line) {
		ch := line[i]
		if ch == '\\' && i+1 < len(line) {
			switch line[i+1] {
			case 'n':
				b.WriteRune('\n')
			case 't':
				b.WriteRune('\t')
			case '"':
				b.WriteRune('"')
			case '\\':
				b.WriteRune('\\')
			default:
				b.WriteRune(line[i+1])
			}
			i += 2
			continue
		}
		if ch == '"' {
			return b.String(), i + 1
		}
		b.WriteRune(ch)
		i++
	}
	return b.String(), i
}

// scanArray captures a bracketed literal verbatim, outer brackets
// included, tracking depth so nested brackets do not close it early.
// The contents are split later by tag-specific logic, not here.
func scanArray(line []rune, start int) (string, int) {
	depth := 0
	for i := start; i < len(line); i++ {
		switch line[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return string(line[start : i+1]), i + 1
			}
		}
	}
	return string(line[start:]), len(line)
}

// scanNumber captures digits with an optional leading minus and at most
// one decimal point. No exponent support.
func scanNumber(line []rune, start int) (string, int) {
	i := start
	if line[i] == '-' {
		i++
	}
	for i < len(line) && isDigit(line[i]) {
		i++
	}
	if i+1 < len(line) && line[i] == '.' && isDigit(line[i+1]) {
		i++
		for i < len(line) && isDigit(line[i]) {
			i++
		}
	}
	return string(line[start:i]), i
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isLetter(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isWordChar(ch rune) bool {
	return isLetter(ch) || isDigit(ch) || ch == '_'
}
