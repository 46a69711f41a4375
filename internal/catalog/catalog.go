// Package catalog persists parse results in a SQLite database so scripts
// can be listed and inspected without re-parsing the whole directory. It
// stores the raw script text alongside the parsed rows; it never
// regenerates script text from the model.
package catalog

import (
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/btslang/bts/internal/planner"
	"github.com/btslang/bts/internal/types"
)

// Open opens the catalog database at path, enabling WAL and applying any
// pending migrations.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	if _, err := db.Exec(`PRAGMA journal_mode=WAL`); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL on %s: %w", path, err)
	}
	if err := Migrate(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// Outcome reports what SyncFile did with one script file.
type Outcome struct {
	Created    bool
	Scenarios  int
	Steps      int
	ErrorCount int
	LastError  string
}

// SyncFile upserts the file row for path and replaces its scenario and
// step rows with the given parse result. The raw script text and any
// parse errors are stored with the file row; step rows carry planner
// output so list and show never re-parse.
func SyncFile(db *sql.DB, path, script string, res *types.ParseResult) (Outcome, error) {
	var out Outcome
	out.ErrorCount = len(res.Errors)
	if out.ErrorCount > 0 {
		e := res.Errors[0]
		out.LastError = fmt.Sprintf("%d:%d %s", e.Line, e.Column, e.Message)
	}

	tx, err := db.Begin()
	if err != nil {
		return out, fmt.Errorf("beginning sync of %s: %w", path, err)
	}
	defer tx.Rollback()

	var fileID int64
	err = tx.QueryRow(`SELECT id FROM files WHERE file_path = ?`, path).Scan(&fileID)
	switch {
	case err == sql.ErrNoRows:
		ins, err := tx.Exec(
			`INSERT INTO files (file_path, script, error_count, last_error) VALUES (?, ?, ?, ?)`,
			path, script, out.ErrorCount, out.LastError)
		if err != nil {
			return out, fmt.Errorf("inserting %s: %w", path, err)
		}
		fileID, err = ins.LastInsertId()
		if err != nil {
			return out, fmt.Errorf("reading file id for %s: %w", path, err)
		}
		out.Created = true
	case err != nil:
		return out, fmt.Errorf("querying %s: %w", path, err)
	default:
		_, err := tx.Exec(
			`UPDATE files SET script = ?, error_count = ?, last_error = ?, updated_at = datetime('now') WHERE id = ?`,
			script, out.ErrorCount, out.LastError, fileID)
		if err != nil {
			return out, fmt.Errorf("updating %s: %w", path, err)
		}
	}

	if _, err := tx.Exec(
		`DELETE FROM steps WHERE scenario_id IN (SELECT id FROM scenarios WHERE file_id = ?)`, fileID); err != nil {
		return out, fmt.Errorf("clearing steps for %s: %w", path, err)
	}
	if _, err := tx.Exec(`DELETE FROM scenarios WHERE file_id = ?`, fileID); err != nil {
		return out, fmt.Errorf("clearing scenarios for %s: %w", path, err)
	}

	if res.Scenario != nil {
		plan, err := planner.Plan(res.Scenario)
		if err != nil {
			return out, fmt.Errorf("planning %s: %w", path, err)
		}

		sc := res.Scenario
		ins, err := tx.Exec(
			`INSERT INTO scenarios (file_id, name, description, start_url, tags, priority) VALUES (?, ?, ?, ?, ?, ?)`,
			fileID, sc.Name, sc.Description, sc.StartURL, strings.Join(sc.Tags, ","), string(sc.Priority))
		if err != nil {
			return out, fmt.Errorf("inserting scenario for %s: %w", path, err)
		}
		scenarioID, err := ins.LastInsertId()
		if err != nil {
			return out, fmt.Errorf("reading scenario id for %s: %w", path, err)
		}
		out.Scenarios = 1

		for _, step := range plan.Steps {
			_, err := tx.Exec(
				`INSERT INTO steps (scenario_id, idx, description, kind, summary, timeout_ms, retry_count, continue_on_failure, expected_outcome)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				scenarioID, step.Index, step.Description, step.Kind, step.Summary,
				step.TimeoutMs, step.RetryCount, step.ContinueOnFailure, step.ExpectedOutcome)
			if err != nil {
				return out, fmt.Errorf("inserting step %d for %s: %w", step.Index, path, err)
			}
			out.Steps++
		}
	}

	if err := tx.Commit(); err != nil {
		return out, fmt.Errorf("committing sync of %s: %w", path, err)
	}
	return out, nil
}
