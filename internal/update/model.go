package update

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"taskdeck/internal/export"
	"taskdeck/internal/model"
	"taskdeck/internal/storage"
	"taskdeck/internal/views"
)

type View string

const (
	ViewBoard     View = "Board"
	ViewDashboard View = "Dashboard"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Board     string
	Dashboard string
	Help      string
	Quit      string
}

type FormMode string

const (
	FormModeAdd  FormMode = "add"
	FormModeEdit FormMode = "edit"
)

type FormField string

const (
	FieldTitle    FormField = "title"
	FieldNotes    FormField = "notes"
	FieldPriority FormField = "priority"
	FieldDue      FormField = "due"
)

// TaskFormState backs the add/edit overlay. EditingID is set only in edit
// mode and is cleared again on save or cancel.
type TaskFormState struct {
	Active    bool
	Mode      FormMode
	EditingID int64
	Field     FormField
	Title     string
	Notes     string
	Priority  model.Priority
	Due       string
	Err       string
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type Model struct {
	CurrentView    View
	Tasks          []model.Task
	Visible        []model.Task
	Summary        model.Summary
	Filter         model.Filter
	Cursor         int
	Form           TaskFormState
	Palette        CommandPaletteState
	HelpVisible    bool
	Notifications  []Notification
	DesktopEnabled bool
	notifier       DesktopNotifier
	Status         StatusBar
	Keys           GlobalKeyMap
	Quitting       bool
	LastError      error
	Quote          string

	repo     storage.Repository
	exporter *export.Exporter

	// Bubble components used for rich TUI controls
	taskList      list.Model
	summaryTable  table.Model
	titleInput    textinput.Model
	dueInput      textinput.Model
	commandInput  textinput.Model
	notesArea     textarea.Model
	rateProgress  progress.Model
	helpModel     help.Model
	descViewport  viewport.Model
	stateFilePath string
	exportDir     string
	uiDensity     int
}

type listItem struct {
	title       string
	description string
}

func (i listItem) FilterValue() string { return i.title + " " + i.description }
func (i listItem) Title() string       { return i.title }
func (i listItem) Description() string { return i.description }

type Notification struct {
	Title string
	Body  string
	Level string
	At    time.Time
}

type DesktopNotifier interface {
	Send(Notification) error
}

type NoopDesktopNotifier struct{}

func (NoopDesktopNotifier) Send(Notification) error { return nil }

type ExecDesktopNotifier struct{}

func (ExecDesktopNotifier) Send(n Notification) error {
	switch runtime.GOOS {
	case "linux":
		return exec.Command("notify-send", n.Title, n.Body).Run()
	case "darwin":
		script := fmt.Sprintf(`display notification "%s" with title "%s"`, escapeAppleScript(n.Body), escapeAppleScript(n.Title))
		return exec.Command("osascript", "-e", script).Run()
	default:
		return nil
	}
}

type SwitchViewMsg struct {
	View View
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

func NewModel(repo storage.Repository) Model {
	m := Model{
		CurrentView:    ViewBoard,
		Filter:         model.NewFilter(),
		DesktopEnabled: false,
		notifier:       NoopDesktopNotifier{},
		Keys: GlobalKeyMap{
			Board:     "1",
			Dashboard: "2",
			Help:      "?",
			Quit:      "q",
		},
		Quote:     views.RandomQuote(),
		repo:      repo,
		exportDir: ".",
		uiDensity: 1,
	}
	if repo != nil {
		m.exporter = export.NewExporter(repo)
		if err := m.reloadTasks(); err != nil {
			m.reportError("load tasks", err)
		}
	}
	m.initBubbleComponents()
	m.syncBubbleData()
	return m
}

func NewModelWithRuntime(repo storage.Repository, desktopEnabled bool, notifier DesktopNotifier) Model {
	cfg := DefaultRuntimeConfig()
	cfg.DesktopNotifications = desktopEnabled
	return NewModelWithConfig(repo, notifier, cfg)
}

func NewModelWithConfig(repo storage.Repository, notifier DesktopNotifier, cfg RuntimeConfig) Model {
	m := NewModel(repo)
	m.DesktopEnabled = cfg.DesktopNotifications
	m.stateFilePath = strings.TrimSpace(cfg.StateFilePath)
	if notifier != nil {
		m.notifier = notifier
	}
	if strings.TrimSpace(cfg.ExportDir) != "" {
		m.exportDir = cfg.ExportDir
	}
	if cfg.UIDensity >= 1 && cfg.UIDensity <= 3 {
		m.uiDensity = cfg.UIDensity
	}
	if m.stateFilePath != "" {
		if state, ok, err := loadSessionState(m.stateFilePath); err == nil && ok {
			m.applySessionState(state)
		}
	}
	m.rebuildVisible()
	m.syncBubbleData()
	return m
}

func (m *Model) applySessionState(state sessionState) {
	if v := View(state.View); isKnownView(v) {
		m.CurrentView = v
	}
	m.Filter.Query = state.Query
	if state.Priority != "" {
		m.Filter.Priority = state.Priority
	}
	if state.Status != "" {
		m.Filter.Status = state.Status
	}
	if state.UIDensity >= 1 && state.UIDensity <= 3 {
		m.uiDensity = state.UIDensity
	}
}
