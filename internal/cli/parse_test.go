package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_RendersScenario(t *testing.T) {
	inTempDir(t)
	require.NoError(t, os.WriteFile("login.bts", []byte(loginScript), 0o644))

	var buf bytes.Buffer
	require.NoError(t, RunParse(&buf, "login.bts", false))

	out := buf.String()
	assert.Contains(t, out, "Login flow")
	assert.Contains(t, out, "2 steps, priority high")
	assert.Contains(t, out, "open the form")
	assert.Contains(t, out, "click #1")
}

func TestParse_ReportsErrorsWithoutFailing(t *testing.T) {
	inTempDir(t)
	require.NoError(t, os.WriteFile("broken.bts", []byte(namelessScript), 0o644))

	var buf bytes.Buffer
	require.NoError(t, RunParse(&buf, "broken.bts", false))

	out := buf.String()
	assert.Contains(t, out, "no scenario produced")
	assert.Contains(t, out, "error  1:0  Scenario name is required")
}

func TestParse_JSON(t *testing.T) {
	inTempDir(t)
	require.NoError(t, os.WriteFile("login.bts", []byte(loginScript), 0o644))

	var buf bytes.Buffer
	require.NoError(t, RunParse(&buf, "login.bts", true))

	var doc struct {
		Success  bool `json:"success"`
		Scenario struct {
			Name     string `json:"name"`
			Priority string `json:"priority"`
			Steps    []struct {
				Kind    string `json:"kind"`
				Summary string `json:"summary"`
			} `json:"steps"`
		} `json:"scenario"`
		Errors []any `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	assert.True(t, doc.Success)
	assert.Equal(t, "Login flow", doc.Scenario.Name)
	assert.Equal(t, "high", doc.Scenario.Priority)
	require.Len(t, doc.Scenario.Steps, 2)
	assert.Equal(t, "click", doc.Scenario.Steps[0].Kind)
	assert.Equal(t, "wait", doc.Scenario.Steps[1].Kind)
	assert.Empty(t, doc.Errors)
}

func TestParse_MissingFile(t *testing.T) {
	inTempDir(t)

	var buf bytes.Buffer
	err := RunParse(&buf, "absent.bts", false)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading absent.bts")
}
