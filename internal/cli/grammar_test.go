package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrammar_PrintsReference(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RunGrammar(&buf, false))

	out := buf.String()
	assert.Contains(t, out, "bts scenario language")
	assert.Contains(t, out, "Actions:")
	assert.Contains(t, out, "click")
	assert.Contains(t, out, "uploadFile")
	assert.Contains(t, out, "continueOnFailure")
	assert.Contains(t, out, "Wait conditions:")
	assert.Contains(t, out, "Priorities:")
}

func TestGrammar_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RunGrammar(&buf, true))

	var snap struct {
		Actions []struct {
			Name string `json:"name"`
		} `json:"actions"`
		Modifiers      []string `json:"modifiers"`
		WaitConditions []string `json:"wait_conditions"`
		Assertions     []string `json:"assertions"`
		Priorities     []string `json:"priorities"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &snap))

	assert.Len(t, snap.Actions, 14)
	assert.Len(t, snap.WaitConditions, 8)
	assert.Len(t, snap.Assertions, 10)
	assert.Equal(t, []string{"critical", "high", "medium", "low"}, snap.Priorities)
	assert.Contains(t, snap.Modifiers, "continueOnFailure")
}
