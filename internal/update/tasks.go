package update

import (
	"context"
	"fmt"

	"taskdeck/internal/model"
	"taskdeck/internal/storage"
)

// reloadTasks re-reads the full list from storage after every mutation and
// recomputes the dashboard summary from the unfiltered list.
func (m *Model) reloadTasks() error {
	rows, err := m.repo.ListTasks(context.Background(), storage.TaskListFilter{})
	if err != nil {
		return err
	}
	tasks := make([]model.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, taskFromStorage(row))
	}
	m.Tasks = tasks
	m.Summary = model.Summarize(tasks)
	m.rebuildVisible()
	return nil
}

// rebuildVisible applies the in-memory filter and orders the board rows
// pending first, completed after, each slice keeping the due-date order
// storage returned.
func (m *Model) rebuildVisible() {
	filtered := m.Filter.Apply(m.Tasks)
	visible := make([]model.Task, 0, len(filtered))
	for _, t := range filtered {
		if t.Status != model.StatusCompleted {
			visible = append(visible, t)
		}
	}
	for _, t := range filtered {
		if t.Status == model.StatusCompleted {
			visible = append(visible, t)
		}
	}
	m.Visible = visible
	m.clampCursor()
}

func (m *Model) clampCursor() {
	if m.Cursor < 0 {
		m.Cursor = 0
	}
	if m.Cursor >= len(m.Visible) && len(m.Visible) > 0 {
		m.Cursor = len(m.Visible) - 1
	}
}

func (m Model) currentTask() (model.Task, bool) {
	if len(m.Visible) == 0 {
		return model.Task{}, false
	}
	if m.Cursor < 0 || m.Cursor >= len(m.Visible) {
		return model.Task{}, false
	}
	return m.Visible[m.Cursor], true
}

func (m *Model) reportError(action string, err error) {
	m.LastError = err
	m.Status = StatusBar{Text: fmt.Sprintf("%s failed: %v", action, err), IsError: true}
	m.notify("Error", m.Status.Text, "error")
}

func taskFromStorage(t storage.Task) model.Task {
	return model.Task{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    model.Priority(t.Priority),
		DueDate:     t.DueDate,
		Status:      model.Status(t.Status),
		CreatedAt:   t.CreatedAt,
	}
}
