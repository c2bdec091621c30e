package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"taskdeck/internal/views"
)

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		m.ensureBoardState()

		if m.Palette.Active {
			if typed.String() == m.Keys.Help {
				m.HelpVisible = !m.HelpVisible
				return m, nil
			}
			next := m.handlePaletteKey(typed)
			return next, nil
		}

		if m.Form.Active {
			next := m.handleFormKey(typed)
			return next, nil
		}

		switch typed.String() {
		case "/":
			m.Palette.Active = true
			m.Palette.Input = ""
			m.commandInput.Focus()
			m.commandInput.SetValue("")
			m.Status = StatusBar{Text: "command palette active", IsError: false}
			return m, nil
		case m.Keys.Board:
			m.CurrentView = ViewBoard
			return m, nil
		case m.Keys.Dashboard:
			m.CurrentView = ViewDashboard
			return m, nil
		case m.Keys.Help:
			m.HelpVisible = !m.HelpVisible
			if m.HelpVisible {
				m.Status = StatusBar{Text: "help shown", IsError: false}
			} else {
				m.Status = StatusBar{Text: "help hidden", IsError: false}
			}
			return m, nil
		case "D":
			m.cycleDensity()
			return m, nil
		case "ctrl+c", m.Keys.Quit:
			_ = m.persistSessionState()
			m.Quitting = true
			return m, tea.Quit
		}
		if m.CurrentView == ViewBoard {
			return m.handleBoardKey(typed), nil
		}
		if m.CurrentView == ViewDashboard {
			return m.handleDashboardKey(typed), nil
		}
	case SwitchViewMsg:
		if isKnownView(typed.View) {
			m.CurrentView = typed.View
		}
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		m.notify("Status", typed.Text, levelFromError(typed.IsError))
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
			m.notify("Error", typed.Err.Error(), "error")
		}
		return m, nil
	}

	return m, nil
}

// View syncs the bubble components right before rendering so they always
// reflect the state produced by the last Update.
func (m Model) View() string {
	m.syncBubbleData()

	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}
	leftPane := ""
	rightPane := ""
	switch m.CurrentView {
	case ViewBoard:
		leftPane = m.renderBoardView()
		rightPane = joinPanes(m.renderTaskDetailPane(), m.renderTaskTablePane(), m.renderTaskFormIfActive(), m.renderCommandPalette(), m.renderHelpIfVisible())
	case ViewDashboard:
		leftPane = m.renderDashboardView()
		rightPane = joinPanes(m.renderCommandPalette(), m.renderHelpIfVisible())
	}
	notificationView := strings.TrimSpace(m.renderNotificationsView())

	selected := "-"
	if task, ok := m.currentTask(); ok {
		selected = fmt.Sprintf("#%d", task.ID)
	}

	return views.RenderApp(views.AppData{
		Header:        fmt.Sprintf("taskdeck | view: %s | selected: %s", m.CurrentView, selected),
		LeftPane:      leftPane,
		RightPane:     rightPane,
		StatusLine:    status,
		StatusIsError: m.Status.IsError,
		Notification:  notificationView,
		Footer:        fmt.Sprintf("keys: %s board | %s dashboard | / cmd | %s help | %s quit", m.Keys.Board, m.Keys.Dashboard, m.Keys.Help, m.Keys.Quit),
	})
}

func isKnownView(v View) bool {
	switch v {
	case ViewBoard, ViewDashboard:
		return true
	default:
		return false
	}
}

func joinPanes(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		kept = append(kept, trimmed)
	}
	return strings.Join(kept, "\n\n")
}
