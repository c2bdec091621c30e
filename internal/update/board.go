package update

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"taskdeck/internal/export"
	"taskdeck/internal/model"
)

func (m Model) handleBoardKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Visible)-1 {
			m.Cursor++
		}
	case " ":
		return m.toggleCurrentTask()
	case "a":
		m.openAddForm()
	case "e":
		if task, ok := m.currentTask(); ok {
			m.openEditForm(task)
		} else {
			m.Status = StatusBar{Text: "no task selected", IsError: false}
		}
	case "d":
		return m.deleteCurrentTask()
	case "p":
		m.Filter.Priority = nextPriorityFilter(m.Filter.Priority)
		m.rebuildVisible()
		m.Status = StatusBar{Text: fmt.Sprintf("priority filter: %s", m.Filter.Priority), IsError: false}
	case "s":
		m.Filter.Status = nextStatusFilter(m.Filter.Status)
		m.rebuildVisible()
		m.Status = StatusBar{Text: fmt.Sprintf("status filter: %s", m.Filter.Status), IsError: false}
	case "c":
		m.Filter = model.NewFilter()
		m.rebuildVisible()
		m.Status = StatusBar{Text: "filters cleared", IsError: false}
	case "x":
		return m.exportTasks(export.FormatCSV, "")
	}
	return m
}

// toggleCurrentTask flips a task between Pending and Completed. Unchecking a
// completed task keeps every other field intact.
func (m Model) toggleCurrentTask() Model {
	task, ok := m.currentTask()
	if !ok {
		m.Status = StatusBar{Text: "no task selected", IsError: false}
		return m
	}
	next := model.StatusCompleted
	verb := "completed"
	if task.Status == model.StatusCompleted {
		next = model.StatusPending
		verb = "reopened"
	}
	if err := m.repo.UpdateTaskStatus(context.Background(), task.ID, string(next)); err != nil {
		m.reportError("update status", err)
		return m
	}
	m.Status = StatusBar{Text: fmt.Sprintf("task %s: #%d", verb, task.ID), IsError: false}
	m.notify("Task", m.Status.Text, "info")
	if err := m.reloadTasks(); err != nil {
		m.reportError("load tasks", err)
	}
	return m
}

func (m Model) deleteCurrentTask() Model {
	task, ok := m.currentTask()
	if !ok {
		m.Status = StatusBar{Text: "no task selected", IsError: false}
		return m
	}
	if err := m.repo.DeleteTask(context.Background(), task.ID); err != nil {
		m.reportError("delete task", err)
		return m
	}
	m.Status = StatusBar{Text: fmt.Sprintf("task deleted: #%d", task.ID), IsError: false}
	m.notify("Task", m.Status.Text, "info")
	if err := m.reloadTasks(); err != nil {
		m.reportError("load tasks", err)
	}
	return m
}

func (m Model) exportTasks(format string, dir string) Model {
	if dir == "" {
		dir = m.exportDir
	}
	path, err := m.exporter.WriteFile(context.Background(), format, dir)
	if err != nil {
		m.reportError("export", err)
		return m
	}
	m.Status = StatusBar{Text: fmt.Sprintf("exported: %s", path), IsError: false}
	m.notify("Export", m.Status.Text, "info")
	return m
}

func nextPriorityFilter(current string) string {
	order := []string{model.FilterAll, string(model.PriorityHigh), string(model.PriorityMedium), string(model.PriorityLow)}
	for i, cand := range order {
		if cand == current {
			return order[(i+1)%len(order)]
		}
	}
	return order[0]
}

func nextStatusFilter(current string) string {
	order := []string{model.FilterAll, string(model.StatusPending), string(model.StatusCompleted)}
	for i, cand := range order {
		if cand == current {
			return order[(i+1)%len(order)]
		}
	}
	return order[0]
}
