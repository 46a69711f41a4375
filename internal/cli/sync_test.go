package cli

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/btslang/bts/internal/catalog"
)

func runSync(t *testing.T) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, RunSync(&buf, "bts", "bts/bts.db"))
	return buf.String()
}

func TestSync_RegisterNewFile(t *testing.T) {
	inTempDir(t)
	runInit(t)
	writeScript(t, "login.bts", loginScript)

	out := runSync(t)

	db, err := catalog.Open("bts/bts.db")
	require.NoError(t, err)
	defer db.Close()

	var filePath string
	require.NoError(t, db.QueryRow(`SELECT file_path FROM files WHERE file_path = ?`, "bts/login.bts").Scan(&filePath))
	assert.Equal(t, "bts/login.bts", filePath)
	assert.Contains(t, out, "new  bts/login.bts")
}

func TestSync_RegisterMultipleFiles(t *testing.T) {
	inTempDir(t)
	runInit(t)
	writeScript(t, "login.bts", loginScript)
	writeScript(t, "checkout.bts", checkoutScript)

	out := runSync(t)

	db, err := catalog.Open("bts/bts.db")
	require.NoError(t, err)
	defer db.Close()

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM files`).Scan(&count))
	assert.Equal(t, 2, count)
	assert.Contains(t, out, "new  bts/login.bts")
	assert.Contains(t, out, "new  bts/checkout.bts")
}

func TestSync_SecondSyncShowsUpdated(t *testing.T) {
	inTempDir(t)
	runInit(t)
	writeScript(t, "login.bts", loginScript)

	runSync(t)
	out := runSync(t)

	assert.Contains(t, out, "upd  bts/login.bts")
	assert.NotContains(t, out, "new  bts/login.bts")
}

func TestSync_RegistersScenarioAndSteps(t *testing.T) {
	inTempDir(t)
	runInit(t)
	writeScript(t, "login.bts", loginScript)

	runSync(t)

	db, err := catalog.Open("bts/bts.db")
	require.NoError(t, err)
	defer db.Close()

	var name, priority string
	require.NoError(t, db.QueryRow(`SELECT name, priority FROM scenarios`).Scan(&name, &priority))
	assert.Equal(t, "Login flow", name)
	assert.Equal(t, "high", priority)

	var steps int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM steps`).Scan(&steps))
	assert.Equal(t, 2, steps)
}

func TestSync_ParseErrorShowsErrLine(t *testing.T) {
	inTempDir(t)
	runInit(t)
	writeScript(t, "broken.bts", namelessScript)

	out := runSync(t)

	assert.Contains(t, out, "err  bts/broken.bts")
	assert.Contains(t, out, "1:0 Scenario name is required")

	db, err := catalog.Open("bts/bts.db")
	require.NoError(t, err)
	defer db.Close()

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM scenarios`).Scan(&count))
	assert.Equal(t, 0, count)
}

func TestSync_NonScriptFilesIgnored(t *testing.T) {
	inTempDir(t)
	runInit(t)
	require.NoError(t, os.WriteFile("bts/notes.txt", []byte("not a script"), 0o644))
	writeScript(t, "login.bts", loginScript)

	out := runSync(t)

	db, err := catalog.Open("bts/bts.db")
	require.NoError(t, err)
	defer db.Close()

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM files`).Scan(&count))
	assert.Equal(t, 1, count)
	assert.Contains(t, out, "synced 1 files, 1 scenarios")
}

func TestSync_NoScriptFiles(t *testing.T) {
	inTempDir(t)
	runInit(t)

	out := runSync(t)

	assert.Contains(t, out, "synced 0 files, 0 scenarios")
}

func TestSync_SummaryLine(t *testing.T) {
	inTempDir(t)
	runInit(t)
	writeScript(t, "login.bts", loginScript)
	writeScript(t, "checkout.bts", checkoutScript)

	out := runSync(t)

	assert.Contains(t, out, "synced 2 files, 2 scenarios")
}

func TestSync_IsIdempotent(t *testing.T) {
	inTempDir(t)
	runInit(t)
	writeScript(t, "login.bts", loginScript)

	runSync(t)
	runSync(t)

	db, err := catalog.Open("bts/bts.db")
	require.NoError(t, err)
	defer db.Close()

	var files, scenarios, steps int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM files`).Scan(&files))
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM scenarios`).Scan(&scenarios))
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM steps`).Scan(&steps))
	assert.Equal(t, 1, files)
	assert.Equal(t, 1, scenarios)
	assert.Equal(t, 2, steps)
}

func TestSync_FixedFileClearsError(t *testing.T) {
	inTempDir(t)
	runInit(t)
	writeScript(t, "login.bts", namelessScript)
	runSync(t)

	writeScript(t, "login.bts", loginScript)
	out := runSync(t)

	assert.Contains(t, out, "upd  bts/login.bts")

	db, err := catalog.Open("bts/bts.db")
	require.NoError(t, err)
	defer db.Close()

	var errorCount int
	require.NoError(t, db.QueryRow(`SELECT error_count FROM files WHERE file_path = ?`, "bts/login.bts").Scan(&errorCount))
	assert.Equal(t, 0, errorCount)
}

func TestSync_WithoutInit(t *testing.T) {
	inTempDir(t)

	var buf bytes.Buffer
	err := RunSync(&buf, "bts", "bts/bts.db")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "run `bts init` first")
}
