package cli

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_PassingFiles(t *testing.T) {
	inTempDir(t)
	require.NoError(t, os.WriteFile("login.bts", []byte(loginScript), 0o644))
	require.NoError(t, os.WriteFile("checkout.bts", []byte(checkoutScript), 0o644))

	var buf bytes.Buffer
	require.NoError(t, RunValidate(&buf, []string{"login.bts", "checkout.bts"}))

	out := buf.String()
	assert.Contains(t, out, "ok   login.bts  2 steps")
	assert.Contains(t, out, "ok   checkout.bts  1 steps")
}

func TestValidate_FailingFile(t *testing.T) {
	inTempDir(t)
	require.NoError(t, os.WriteFile("login.bts", []byte(loginScript), 0o644))
	require.NoError(t, os.WriteFile("broken.bts", []byte(namelessScript), 0o644))

	var buf bytes.Buffer
	err := RunValidate(&buf, []string{"login.bts", "broken.bts"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 files failed")

	out := buf.String()
	assert.Contains(t, out, "ok   login.bts")
	assert.Contains(t, out, "fail broken.bts  1:0 Scenario name is required")
}

func TestValidate_DroppedStepFailsFile(t *testing.T) {
	inTempDir(t)
	script := `scenario "Checkout"

step "submit the order" {
  click #9
}

step "confirm nothing" {
}
`
	require.NoError(t, os.WriteFile("checkout.bts", []byte(script), 0o644))

	var buf bytes.Buffer
	err := RunValidate(&buf, []string{"checkout.bts"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 1 files failed")
	assert.Contains(t, buf.String(), "has no action")
}

func TestValidate_WarningsDoNotFail(t *testing.T) {
	inTempDir(t)
	script := `scenario "Busy step"

step "does two things" {
  click #1
  type #2 "hello"
}
`
	require.NoError(t, os.WriteFile("busy.bts", []byte(script), 0o644))

	var buf bytes.Buffer
	require.NoError(t, RunValidate(&buf, []string{"busy.bts"}))

	assert.Contains(t, buf.String(), "1 steps, 1 warnings")
}

func TestValidate_MissingFile(t *testing.T) {
	inTempDir(t)

	var buf bytes.Buffer
	err := RunValidate(&buf, []string{"absent.bts"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading absent.bts")
}
