package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(tokens []token) []tokenKind {
	out := make([]tokenKind, len(tokens))
	for i, t := range tokens {
		out[i] = t.kind
	}
	return out
}

func texts(tokens []token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.text
	}
	return out
}

func TestTokenizeMinimalScenario(t *testing.T) {
	tokens := tokenize(`scenario "S" {
	step "click it" {
		click #1
	}
}`)

	assert.Equal(t, []tokenKind{
		tokenKeyword, tokenString, tokenBraceOpen,
		tokenKeyword, tokenString, tokenBraceOpen,
		tokenKeyword, tokenTargetID,
		tokenBraceClose,
		tokenBraceClose,
	}, kinds(tokens))
	assert.Equal(t, []string{
		"scenario", "S", "{",
		"step", "click it", "{",
		"click", "1",
		"}",
		"}",
	}, texts(tokens))
}

func TestTokenizeSkipsCommentsAndBlanks(t *testing.T) {
	tokens := tokenize("// a comment\n\n# another\n   \nclick #1\n  // indented comment\n")

	require.Len(t, tokens, 2)
	assert.Equal(t, "click", tokens[0].text)
	assert.Equal(t, 5, tokens[0].line)
}

func TestTokenizeStringEscapes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"newline", `"a\nb"`, "a\nb"},
		{"tab", `"a\tb"`, "a\tb"},
		{"quote", `"say \"hi\""`, `say "hi"`},
		{"backslash", `"c:\\temp"`, `c:\temp`},
		{"unknown passthrough", `"a\qb"`, "aqb"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := tokenize(tt.input)
			require.Len(t, tokens, 1)
			assert.Equal(t, tokenString, tokens[0].kind)
			assert.Equal(t, tt.want, tokens[0].text)
		})
	}
}

func TestTokenizeUnterminatedString(t *testing.T) {
	tokens := tokenize("navigate \"no closing quote\nclick #2")

	require.Len(t, tokens, 4)
	assert.Equal(t, tokenString, tokens[1].kind)
	assert.Equal(t, "no closing quote", tokens[1].text)
	// The next line still tokenizes normally.
	assert.Equal(t, "click", tokens[2].text)
	assert.Equal(t, 2, tokens[2].line)
}

func TestTokenizeTargetID(t *testing.T) {
	tokens := tokenize("click #42")

	require.Len(t, tokens, 2)
	assert.Equal(t, tokenTargetID, tokens[1].kind)
	assert.Equal(t, "42", tokens[1].text)
	assert.Equal(t, 6, tokens[1].column)
}

func TestTokenizeArrays(t *testing.T) {
	t.Run("flat", func(t *testing.T) {
		tokens := tokenize(`tags ["smoke", "login"]`)
		require.Len(t, tokens, 2)
		assert.Equal(t, tokenArray, tokens[1].kind)
		assert.Equal(t, `["smoke", "login"]`, tokens[1].text)
	})

	t.Run("nested brackets kept verbatim", func(t *testing.T) {
		tokens := tokenize(`tags [["a"], "b"]`)
		require.Len(t, tokens, 2)
		assert.Equal(t, `[["a"], "b"]`, tokens[1].text)
	})

	t.Run("unterminated consumes to end of line", func(t *testing.T) {
		tokens := tokenize("tags [\"a\", \"b\"\nclick #1")
		require.Len(t, tokens, 4)
		assert.Equal(t, `["a", "b"`, tokens[1].text)
		assert.Equal(t, "click", tokens[2].text)
	})
}

func TestTokenizeNumbers(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"300", []string{"300"}},
		{"-12", []string{"-12"}},
		{"3.5", []string{"3.5"}},
		// A dot with no digit after it does not join the number.
		{"3.", []string{"3"}},
		{"1.2.3", []string{"1.2", "3"}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens := tokenize(tt.input)
			for _, tok := range tokens {
				assert.Equal(t, tokenNumber, tok.kind)
			}
			assert.Equal(t, tt.want, texts(tokens))
		})
	}
}

func TestTokenizeLineAndColumn(t *testing.T) {
	tokens := tokenize("scenario \"S\"\n  step \"x\"")

	require.Len(t, tokens, 4)
	assert.Equal(t, 1, tokens[0].line)
	assert.Equal(t, 0, tokens[0].column)
	assert.Equal(t, 1, tokens[1].line)
	assert.Equal(t, 9, tokens[1].column)
	assert.Equal(t, 2, tokens[2].line)
	assert.Equal(t, 2, tokens[2].column)
}

func TestTokenizeIgnoresGarbage(t *testing.T) {
	// Tokenization never fails, whatever the input. Unknown characters
	// drop out of the stream.
	tokens := tokenize("@$%^&* click !~ #1 ??")

	assert.Equal(t, []string{"click", "1"}, texts(tokens))
}

func TestTokenizeKeywordCharset(t *testing.T) {
	tokens := tokenize("continueOnFailure _private x9")

	require.Len(t, tokens, 3)
	assert.Equal(t, "continueOnFailure", tokens[0].text)
	assert.Equal(t, "_private", tokens[1].text)
	assert.Equal(t, "x9", tokens[2].text)
	for _, tok := range tokens {
		assert.Equal(t, tokenKeyword, tok.kind)
	}
}

func TestTokenizeCarriageReturns(t *testing.T) {
	tokens := tokenize("click #1\r\nhover #2\r\n")

	assert.Equal(t, []string{"click", "1", "hover", "2"}, texts(tokens))
	assert.Equal(t, 2, tokens[2].line)
}
