package update

import (
	tea "github.com/charmbracelet/bubbletea"

	"taskdeck/internal/export"
)

func (m Model) handleDashboardKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "x":
		return m.exportTasks(export.FormatCSV, "")
	}
	return m
}
