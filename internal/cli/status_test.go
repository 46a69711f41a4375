package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_PrintsCounts(t *testing.T) {
	inTempDir(t)
	runInit(t)
	writeScript(t, "login.bts", loginScript)
	writeScript(t, "checkout.bts", checkoutScript)
	writeScript(t, "broken.bts", namelessScript)
	runSync(t)

	var buf bytes.Buffer
	require.NoError(t, RunStatus(&buf, "bts/bts.db"))

	out := buf.String()
	assert.Contains(t, out, "Files: 3")
	assert.Contains(t, out, "Files with errors: 1")
	assert.Contains(t, out, "Scenarios: 2")
	assert.Contains(t, out, "Steps: 3")
	assert.Contains(t, out, "  critical: 1")
	assert.Contains(t, out, "  high: 1")

	criticalIdx := strings.Index(out, "critical: 1")
	highIdx := strings.Index(out, "high: 1")
	require.True(t, criticalIdx >= 0 && highIdx >= 0)
	assert.Less(t, criticalIdx, highIdx)
}

func TestStatus_OmitsErrorLineWhenClean(t *testing.T) {
	inTempDir(t)
	runInit(t)
	writeScript(t, "login.bts", loginScript)
	runSync(t)

	var buf bytes.Buffer
	require.NoError(t, RunStatus(&buf, "bts/bts.db"))

	out := buf.String()
	assert.Contains(t, out, "Files: 1")
	assert.NotContains(t, out, "Files with errors")
}

func TestStatus_EmptyCatalog(t *testing.T) {
	inTempDir(t)
	runInit(t)

	var buf bytes.Buffer
	require.NoError(t, RunStatus(&buf, "bts/bts.db"))

	out := buf.String()
	assert.Contains(t, out, "Files: 0")
	assert.Contains(t, out, "Scenarios: 0")
	assert.Contains(t, out, "Steps: 0")
}

func TestStatus_WithoutInit(t *testing.T) {
	inTempDir(t)

	var buf bytes.Buffer
	err := RunStatus(&buf, "bts/bts.db")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "run `bts init` first")
}
