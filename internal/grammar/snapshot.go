package grammar

import "encoding/json"

// Snapshot represents a snapshot of the grammar for drift detection.
type Snapshot struct {
	Actions        []ActionSnapshot `json:"actions"`
	Modifiers      []string         `json:"modifiers"`
	WaitConditions []string         `json:"wait_conditions"`
	Assertions     []string         `json:"assertions"`
	Priorities     []string         `json:"priorities"`
}

// ActionSnapshot represents one action keyword in the snapshot.
type ActionSnapshot struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// GetSnapshot returns a JSON-serializable snapshot of the grammar.
func GetSnapshot() Snapshot {
	g := GetGrammar()

	actions := make([]ActionSnapshot, len(g.Actions))
	for i, a := range g.Actions {
		actions[i] = ActionSnapshot{Name: a.Name, Description: a.Description}
	}

	modifiers := make([]string, len(g.Modifiers))
	for i, m := range g.Modifiers {
		modifiers[i] = m.Name
	}

	return Snapshot{
		Actions:        actions,
		Modifiers:      modifiers,
		WaitConditions: g.WaitConditions,
		Assertions:     g.Assertions,
		Priorities:     g.Priorities,
	}
}

// GetSnapshotJSON returns the snapshot as indented JSON bytes.
func GetSnapshotJSON() ([]byte, error) {
	return json.MarshalIndent(GetSnapshot(), "", "  ")
}
