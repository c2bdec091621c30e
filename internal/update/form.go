package update

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"taskdeck/internal/model"
	"taskdeck/internal/storage"
)

const formDateLayout = "2006-01-02"

func (m *Model) openAddForm() {
	m.Form = TaskFormState{
		Active:   true,
		Mode:     FormModeAdd,
		Field:    FieldTitle,
		Priority: model.PriorityMedium,
		Due:      time.Now().UTC().Format(formDateLayout),
	}
	m.Status = StatusBar{Text: "adding task", IsError: false}
}

func (m *Model) openEditForm(task model.Task) {
	m.Form = TaskFormState{
		Active:    true,
		Mode:      FormModeEdit,
		EditingID: task.ID,
		Field:     FieldTitle,
		Title:     task.Title,
		Notes:     task.Description,
		Priority:  task.Priority,
		Due:       task.DueDate.Format(formDateLayout),
	}
	m.Status = StatusBar{Text: fmt.Sprintf("editing task #%d", task.ID), IsError: false}
}

func (m Model) handleFormKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		mode := m.Form.Mode
		m.Form = TaskFormState{}
		m.Status = StatusBar{Text: fmt.Sprintf("%s cancelled", mode), IsError: false}
	case "tab":
		m.Form.Field = nextFormField(m.Form.Field)
	case "shift+tab":
		m.Form.Field = prevFormField(m.Form.Field)
	case "enter":
		return m.saveForm()
	case "backspace":
		if m.Form.Field != FieldPriority {
			m.setFocusedText(trimLastRune(m.focusedText()))
		}
	case " ":
		if m.Form.Field == FieldPriority {
			m.Form.Priority = nextPriority(m.Form.Priority)
		} else {
			m.setFocusedText(m.focusedText() + " ")
		}
	default:
		if msg.Type == tea.KeyRunes && m.Form.Field != FieldPriority {
			m.setFocusedText(m.focusedText() + string(msg.Runes))
		}
	}
	return m
}

func (m Model) saveForm() Model {
	title := strings.TrimSpace(m.Form.Title)
	if title == "" {
		m.Form.Err = "title is required"
		return m
	}
	if utf8.RuneCountInString(title) > model.TitleMaxLen {
		m.Form.Err = fmt.Sprintf("title must be at most %d characters", model.TitleMaxLen)
		return m
	}
	due, err := time.ParseInLocation(formDateLayout, strings.TrimSpace(m.Form.Due), time.UTC)
	if err != nil {
		m.Form.Err = "due date must use YYYY-MM-DD"
		return m
	}
	if m.Form.Mode == FormModeAdd && model.DateOf(due).Before(model.DateOf(time.Now().UTC())) {
		m.Form.Err = "due date cannot be in the past"
		return m
	}

	ctx := context.Background()
	notes := strings.TrimSpace(m.Form.Notes)
	switch m.Form.Mode {
	case FormModeEdit:
		in := storage.Task{
			ID:          m.Form.EditingID,
			Title:       title,
			Description: notes,
			Priority:    string(m.Form.Priority),
			DueDate:     due,
		}
		if err := m.repo.UpdateTaskDetails(ctx, in); err != nil {
			m.Form = TaskFormState{}
			m.reportError("update task", err)
			return m
		}
		m.Status = StatusBar{Text: fmt.Sprintf("task updated: #%d", in.ID), IsError: false}
	default:
		in := storage.Task{
			Title:       title,
			Description: notes,
			Priority:    string(m.Form.Priority),
			DueDate:     due,
		}
		id, err := m.repo.CreateTask(ctx, in)
		if err != nil {
			m.Form = TaskFormState{}
			m.reportError("add task", err)
			return m
		}
		m.Status = StatusBar{Text: fmt.Sprintf("task added: #%d %s", id, title), IsError: false}
	}
	m.notify("Task", m.Status.Text, "info")
	m.Form = TaskFormState{}
	if err := m.reloadTasks(); err != nil {
		m.reportError("load tasks", err)
	}
	return m
}

func (m Model) focusedText() string {
	switch m.Form.Field {
	case FieldNotes:
		return m.Form.Notes
	case FieldDue:
		return m.Form.Due
	default:
		return m.Form.Title
	}
}

func (m *Model) setFocusedText(v string) {
	switch m.Form.Field {
	case FieldNotes:
		m.Form.Notes = v
	case FieldDue:
		m.Form.Due = v
	case FieldTitle:
		m.Form.Title = v
	}
}

func nextFormField(f FormField) FormField {
	switch f {
	case FieldTitle:
		return FieldNotes
	case FieldNotes:
		return FieldPriority
	case FieldPriority:
		return FieldDue
	default:
		return FieldTitle
	}
}

func prevFormField(f FormField) FormField {
	switch f {
	case FieldTitle:
		return FieldDue
	case FieldDue:
		return FieldPriority
	case FieldPriority:
		return FieldNotes
	default:
		return FieldTitle
	}
}

func nextPriority(p model.Priority) model.Priority {
	order := model.Priorities()
	for i, cand := range order {
		if cand == p {
			return order[(i+1)%len(order)]
		}
	}
	return order[0]
}
