package update

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

// sessionState holds the UI preferences that survive a restart. Tasks
// themselves live in storage; this file only remembers how the user was
// looking at them.
type sessionState struct {
	View      string `json:"view"`
	Query     string `json:"query"`
	Priority  string `json:"priority"`
	Status    string `json:"status"`
	UIDensity int    `json:"ui_density"`
}

func (m *Model) persistSessionState() error {
	if strings.TrimSpace(m.stateFilePath) == "" {
		return nil
	}
	dir := filepath.Dir(m.stateFilePath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	payload, err := json.MarshalIndent(sessionState{
		View:      string(m.CurrentView),
		Query:     m.Filter.Query,
		Priority:  m.Filter.Priority,
		Status:    m.Filter.Status,
		UIDensity: m.uiDensity,
	}, "", "  ")
	if err != nil {
		return err
	}
	tmp := m.stateFilePath + ".tmp"
	if err := os.WriteFile(tmp, append(payload, '\n'), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, m.stateFilePath)
}

func loadSessionState(path string) (sessionState, bool, error) {
	var state sessionState
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return state, false, nil
	}
	raw, err := os.ReadFile(trimmed)
	if err != nil {
		if os.IsNotExist(err) {
			return state, false, nil
		}
		return state, false, err
	}
	if strings.TrimSpace(string(raw)) == "" {
		return state, false, nil
	}
	if err := json.Unmarshal(raw, &state); err != nil {
		return state, false, err
	}
	return state, true, nil
}
