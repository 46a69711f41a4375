package catalog

import (
	"database/sql"
	"fmt"
	"strings"
)

// ScenarioRow is one line of the list output.
type ScenarioRow struct {
	ID       int64
	Name     string
	File     string
	Priority string
	Steps    int
	Errors   int
}

// ListScenarios returns every cataloged scenario ordered by file path.
func ListScenarios(db *sql.DB) ([]ScenarioRow, error) {
	rows, err := db.Query(`
		SELECT s.id, s.name, f.file_path, s.priority, COUNT(st.id), f.error_count
		FROM scenarios s
		JOIN files f ON s.file_id = f.id
		LEFT JOIN steps st ON st.scenario_id = s.id
		GROUP BY s.id
		ORDER BY f.file_path, s.id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying scenarios: %w", err)
	}
	defer rows.Close()

	var results []ScenarioRow
	for rows.Next() {
		var r ScenarioRow
		if err := rows.Scan(&r.ID, &r.Name, &r.File, &r.Priority, &r.Steps, &r.Errors); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}
	return results, nil
}

// ScenarioDetail is one scenario with its steps and source, as shown by
// the show command.
type ScenarioDetail struct {
	ID          int64
	Name        string
	Description string
	StartURL    string
	Tags        []string
	Priority    string
	File        string
	Script      string
	Steps       []StepRow
}

// StepRow is one planned step as stored in the catalog.
type StepRow struct {
	Idx               int
	Description       string
	Kind              string
	Summary           string
	TimeoutMs         int
	RetryCount        int
	ContinueOnFailure bool
	ExpectedOutcome   string
}

// GetScenario loads one scenario by its catalog ID.
func GetScenario(db *sql.DB, id int64) (*ScenarioDetail, error) {
	var d ScenarioDetail
	var tags string
	err := db.QueryRow(`
		SELECT s.id, s.name, s.description, s.start_url, s.tags, s.priority, f.file_path, f.script
		FROM scenarios s
		JOIN files f ON s.file_id = f.id
		WHERE s.id = ?
	`, id).Scan(&d.ID, &d.Name, &d.Description, &d.StartURL, &tags, &d.Priority, &d.File, &d.Script)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("scenario %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("querying scenario %d: %w", id, err)
	}
	if tags != "" {
		d.Tags = strings.Split(tags, ",")
	}

	rows, err := db.Query(`
		SELECT idx, description, kind, summary, timeout_ms, retry_count, continue_on_failure, expected_outcome
		FROM steps
		WHERE scenario_id = ?
		ORDER BY idx
	`, id)
	if err != nil {
		return nil, fmt.Errorf("querying steps for scenario %d: %w", id, err)
	}
	defer rows.Close()

	for rows.Next() {
		var s StepRow
		if err := rows.Scan(&s.Idx, &s.Description, &s.Kind, &s.Summary,
			&s.TimeoutMs, &s.RetryCount, &s.ContinueOnFailure, &s.ExpectedOutcome); err != nil {
			return nil, fmt.Errorf("scanning step: %w", err)
		}
		d.Steps = append(d.Steps, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating steps: %w", err)
	}
	return &d, nil
}

// StatusReport aggregates catalog counts for the status command.
type StatusReport struct {
	Files      int
	Scenarios  int
	Steps      int
	ErrorFiles int
	Priorities []PriorityCount
}

// PriorityCount is the number of scenarios at one priority level.
type PriorityCount struct {
	Priority string
	Count    int
}

// Status reports catalog-wide counts, with scenarios broken down by
// priority from critical down to low.
func Status(db *sql.DB) (*StatusReport, error) {
	var r StatusReport
	if err := db.QueryRow(`SELECT COUNT(*) FROM files`).Scan(&r.Files); err != nil {
		return nil, fmt.Errorf("counting files: %w", err)
	}
	if err := db.QueryRow(`SELECT COUNT(*) FROM scenarios`).Scan(&r.Scenarios); err != nil {
		return nil, fmt.Errorf("counting scenarios: %w", err)
	}
	if err := db.QueryRow(`SELECT COUNT(*) FROM steps`).Scan(&r.Steps); err != nil {
		return nil, fmt.Errorf("counting steps: %w", err)
	}
	if err := db.QueryRow(`SELECT COUNT(*) FROM files WHERE error_count > 0`).Scan(&r.ErrorFiles); err != nil {
		return nil, fmt.Errorf("counting files with errors: %w", err)
	}

	rows, err := db.Query(`
		SELECT priority, COUNT(*) AS cnt
		FROM scenarios
		GROUP BY priority
		ORDER BY CASE priority
			WHEN 'critical' THEN 0
			WHEN 'high' THEN 1
			WHEN 'medium' THEN 2
			ELSE 3
		END
	`)
	if err != nil {
		return nil, fmt.Errorf("querying priority counts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var pc PriorityCount
		if err := rows.Scan(&pc.Priority, &pc.Count); err != nil {
			return nil, fmt.Errorf("scanning priority row: %w", err)
		}
		r.Priorities = append(r.Priorities, pc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating priority rows: %w", err)
	}
	return &r, nil
}
