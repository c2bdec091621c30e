package update

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"taskdeck/internal/commands"
	"taskdeck/internal/model"
	"taskdeck/internal/storage"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.Palette.Active = false
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Blur()
		m.Status = StatusBar{Text: "command palette closed", IsError: false}
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		m = m.executePaletteCommand()
	default:
		if msg.Type == tea.KeyRunes {
			m.commandInput.SetValue(m.commandInput.Value() + string(msg.Runes))
			m.Palette.Input = m.commandInput.Value()
			return m
		}
		var cmd tea.Cmd
		m.commandInput, cmd = m.commandInput.Update(msg)
		_ = cmd
		m.Palette.Input = m.commandInput.Value()
	}
	return m
}

func (m Model) executePaletteCommand() Model {
	raw := strings.TrimSpace(m.Palette.Input)
	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.Palette.Active = false
		m.Palette.Input = ""
		return m
	}

	ctx := context.Background()
	mutated := false
	res, err := commands.Execute(cmd, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			id, err := m.repo.CreateTask(ctx, storage.Task{
				Title:    a.Title,
				Priority: string(model.PriorityMedium),
				DueDate:  model.DateOf(time.Now().UTC()),
			})
			if err != nil {
				return commands.Result{}, err
			}
			mutated = true
			return commands.Result{Message: fmt.Sprintf("task added: #%d %s", id, a.Title)}, nil
		},
		Search: func(a commands.SearchArgs) (commands.Result, error) {
			m.Filter.Query = a.Query
			m.rebuildVisible()
			if a.Query == "" {
				return commands.Result{Message: "search cleared"}, nil
			}
			return commands.Result{Message: fmt.Sprintf("search: %s", a.Query)}, nil
		},
		Filter: func(a commands.FilterArgs) (commands.Result, error) {
			if a.Priority != "" {
				m.Filter.Priority = a.Priority
			}
			if a.Status != "" {
				m.Filter.Status = a.Status
			}
			m.rebuildVisible()
			return commands.Result{Message: fmt.Sprintf("filter applied: priority=%s status=%s", m.Filter.Priority, m.Filter.Status)}, nil
		},
		Done: func(a commands.TaskIDArgs) (commands.Result, error) {
			if err := m.setTaskStatus(ctx, a.ID, model.StatusCompleted); err != nil {
				return commands.Result{}, err
			}
			mutated = true
			return commands.Result{Message: fmt.Sprintf("task completed: #%d", a.ID)}, nil
		},
		Undone: func(a commands.TaskIDArgs) (commands.Result, error) {
			if err := m.setTaskStatus(ctx, a.ID, model.StatusPending); err != nil {
				return commands.Result{}, err
			}
			mutated = true
			return commands.Result{Message: fmt.Sprintf("task reopened: #%d", a.ID)}, nil
		},
		Delete: func(a commands.TaskIDArgs) (commands.Result, error) {
			if err := m.repo.DeleteTask(ctx, a.ID); err != nil {
				if errors.Is(err, storage.ErrNotFound) {
					return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("no task with id %d", a.ID)}
				}
				return commands.Result{}, err
			}
			mutated = true
			return commands.Result{Message: fmt.Sprintf("task deleted: #%d", a.ID)}, nil
		},
		Export: func(a commands.ExportArgs) (commands.Result, error) {
			dir := a.Dir
			if dir == "" {
				dir = m.exportDir
			}
			path, err := m.exporter.WriteFile(ctx, a.Format, dir)
			if err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("exported: %s", path)}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.notify("Command Failed", err.Error(), "error")
	} else {
		m.Status = StatusBar{Text: res.Message, IsError: false}
		m.notify("Command", res.Message, "info")
		if mutated {
			if err := m.reloadTasks(); err != nil {
				m.reportError("load tasks", err)
			}
		}
	}

	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	return m
}

func (m Model) setTaskStatus(ctx context.Context, id int64, status model.Status) error {
	if err := m.repo.UpdateTaskStatus(ctx, id, string(status)); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("no task with id %d", id)}
		}
		return err
	}
	return nil
}
