package update

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"taskdeck/internal/model"
	"taskdeck/internal/views"
)

func (m *Model) initBubbleComponents() {
	m.taskList = list.New([]list.Item{}, list.NewDefaultDelegate(), 56, 12)
	m.taskList.Title = "Tasks (list)"
	m.taskList.SetShowHelp(false)
	m.taskList.SetFilteringEnabled(false)

	cols := []table.Column{
		{Title: "ID", Width: 4},
		{Title: "Title", Width: 24},
		{Title: "Priority", Width: 8},
		{Title: "Due", Width: 12},
		{Title: "Status", Width: 10},
	}
	m.summaryTable = table.New(table.WithColumns(cols), table.WithRows([]table.Row{}), table.WithFocused(true), table.WithHeight(10))

	m.titleInput = textinput.New()
	m.titleInput.Prompt = "title> "
	m.titleInput.CharLimit = model.TitleMaxLen
	m.titleInput.Width = 42

	m.dueInput = textinput.New()
	m.dueInput.Prompt = "due> "
	m.dueInput.CharLimit = 10
	m.dueInput.Width = 14

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.notesArea = textarea.New()
	m.notesArea.SetWidth(54)
	m.notesArea.SetHeight(8)
	m.notesArea.ShowLineNumbers = false
	m.notesArea.Placeholder = "Task description (markdown)"

	m.rateProgress = progress.New(progress.WithDefaultGradient())

	m.helpModel = help.New()
	m.descViewport = viewport.New(54, 12)
}

func (m *Model) syncBubbleData() {
	listWidth, listHeight, tableHeight, notesHeight, viewportHeight := densityDimensions(m.uiDensity)
	m.taskList.SetSize(listWidth, listHeight)
	m.summaryTable.SetHeight(tableHeight)
	m.notesArea.SetHeight(notesHeight)
	m.descViewport.Height = viewportHeight

	now := time.Now().UTC()
	items := make([]list.Item, 0, len(m.Visible))
	for _, t := range m.Visible {
		desc := fmt.Sprintf("%s | due %s | %s", t.Priority, t.DueDate.Format("Jan 02, 2006"), t.Status)
		if t.Overdue(now) {
			desc += " | overdue"
		}
		items = append(items, listItem{title: t.Title, description: desc})
	}
	m.taskList.SetItems(items)
	if len(items) > 0 {
		m.taskList.Select(m.Cursor)
	}

	rows := make([]table.Row, 0, len(m.Visible))
	for _, t := range m.Visible {
		rows = append(rows, table.Row{strconv.FormatInt(t.ID, 10), t.Title, string(t.Priority), t.DueDate.Format("2006-01-02"), string(t.Status)})
	}
	m.summaryTable.SetRows(rows)
	if len(rows) > 0 && m.Cursor < len(rows) {
		m.summaryTable.SetCursor(m.Cursor)
	}

	m.commandInput.SetValue(m.Palette.Input)
	if m.Palette.Active {
		m.commandInput.Focus()
	}

	m.titleInput.SetValue(m.Form.Title)
	m.dueInput.SetValue(m.Form.Due)
	if m.Form.Active {
		m.notesArea.SetValue(m.Form.Notes)
		switch m.Form.Field {
		case FieldTitle:
			m.titleInput.Focus()
			m.dueInput.Blur()
		case FieldDue:
			m.dueInput.Focus()
			m.titleInput.Blur()
		default:
			m.titleInput.Blur()
			m.dueInput.Blur()
		}
	} else if sel, ok := m.currentTask(); ok {
		md := sel.Description
		if strings.TrimSpace(md) == "" {
			md = "_No description_"
		}
		m.notesArea.SetValue(md)
		m.descViewport.SetContent(views.RenderMarkdown(md))
	}
}

func densityDimensions(level int) (listWidth int, listHeight int, tableHeight int, notesHeight int, viewportHeight int) {
	switch level {
	case 2:
		return 60, 14, 12, 10, 14
	case 3:
		return 64, 16, 14, 12, 16
	default:
		return 56, 12, 10, 8, 12
	}
}

func (m *Model) ensureBoardState() {
	m.clampCursor()
}

func (m *Model) cycleDensity() {
	m.uiDensity++
	if m.uiDensity > 3 {
		m.uiDensity = 1
	}
	m.Status = StatusBar{
		Text:    fmt.Sprintf("density level: %d", m.uiDensity),
		IsError: false,
	}
}
