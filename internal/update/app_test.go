package update

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"taskdeck/internal/model"
	"taskdeck/internal/storage"
)

func openRepo(t *testing.T) *storage.SQLiteRepository {
	t.Helper()
	repo, err := storage.OpenSQLite(filepath.Join(t.TempDir(), "tasks.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	if err := repo.Migrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return repo
}

func newBoardModel(t *testing.T, repo *storage.SQLiteRepository) Model {
	t.Helper()
	cfg := DefaultRuntimeConfig()
	cfg.StateFilePath = ""
	cfg.ExportDir = t.TempDir()
	return NewModelWithConfig(repo, nil, cfg)
}

func seedTask(t *testing.T, repo *storage.SQLiteRepository, title string, due time.Time) int64 {
	t.Helper()
	id, err := repo.CreateTask(t.Context(), storage.Task{
		Title:    title,
		Priority: string(model.PriorityMedium),
		DueDate:  due,
	})
	if err != nil {
		t.Fatalf("seed task %q: %v", title, err)
	}
	return id
}

func pressKey(t *testing.T, m Model, key string) Model {
	t.Helper()
	var msg tea.KeyMsg
	switch key {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	case " ":
		msg = tea.KeyMsg{Type: tea.KeySpace}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	updated, _ := m.Update(msg)
	return updated.(Model)
}

func TestNewModelDefaults(t *testing.T) {
	m := newBoardModel(t, openRepo(t))
	if m.CurrentView != ViewBoard {
		t.Fatalf("expected default view %q, got %q", ViewBoard, m.CurrentView)
	}
	if m.Keys.Quit != "q" {
		t.Fatalf("expected quit key q, got %q", m.Keys.Quit)
	}
	if m.Filter.Priority != model.FilterAll || m.Filter.Status != model.FilterAll {
		t.Fatalf("expected open filters, got %+v", m.Filter)
	}
	if m.Quote == "" {
		t.Fatal("expected a dashboard quote")
	}
}

func TestUpdateKeySwitchesView(t *testing.T) {
	m := newBoardModel(t, openRepo(t))
	m = pressKey(t, m, "2")
	if m.CurrentView != ViewDashboard {
		t.Fatalf("expected dashboard view, got %q", m.CurrentView)
	}
	m = pressKey(t, m, "1")
	if m.CurrentView != ViewBoard {
		t.Fatalf("expected board view, got %q", m.CurrentView)
	}
}

func TestUpdateSwitchViewMsg(t *testing.T) {
	m := newBoardModel(t, openRepo(t))
	updated, _ := m.Update(SwitchViewMsg{View: ViewDashboard})
	next := updated.(Model)
	if next.CurrentView != ViewDashboard {
		t.Fatalf("expected dashboard view, got %q", next.CurrentView)
	}

	updated, _ = next.Update(SwitchViewMsg{View: View("Unknown")})
	next = updated.(Model)
	if next.CurrentView != ViewDashboard {
		t.Fatalf("expected view unchanged for unknown view, got %q", next.CurrentView)
	}
}

func TestUpdateStatusAndError(t *testing.T) {
	m := newBoardModel(t, openRepo(t))
	updated, _ := m.Update(SetStatusMsg{Text: "ready", IsError: false})
	next := updated.(Model)
	if next.Status.Text != "ready" || next.Status.IsError {
		t.Fatalf("unexpected status: %+v", next.Status)
	}

	errMsg := errors.New("boom")
	updated, _ = next.Update(AppErrorMsg{Err: errMsg})
	next = updated.(Model)
	if next.LastError == nil || next.LastError.Error() != "boom" {
		t.Fatalf("expected last error boom, got: %v", next.LastError)
	}
	if !next.Status.IsError || next.Status.Text != "boom" {
		t.Fatalf("unexpected error status: %+v", next.Status)
	}

	updated, _ = next.Update(ClearStatusMsg{})
	next = updated.(Model)
	if next.Status.Text != "" || next.Status.IsError {
		t.Fatalf("expected cleared status, got: %+v", next.Status)
	}
}

func TestUpdateQuitKey(t *testing.T) {
	m := newBoardModel(t, openRepo(t))
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	next := updated.(Model)
	if !next.Quitting {
		t.Fatal("expected quitting flag true")
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
}

func TestToggleCompletesAndReopensTask(t *testing.T) {
	repo := openRepo(t)
	id := seedTask(t, repo, "Buy milk", time.Now().UTC().AddDate(0, 0, 1))
	m := newBoardModel(t, repo)

	m = pressKey(t, m, " ")
	got, err := repo.GetTask(t.Context(), id)
	if err != nil {
		t.Fatalf("get task: %v", err)
	}
	if got.Status != string(model.StatusCompleted) {
		t.Fatalf("expected Completed after toggle, got %q", got.Status)
	}
	if m.Summary.Completed != 1 {
		t.Fatalf("expected summary completed 1, got %d", m.Summary.Completed)
	}

	m = pressKey(t, m, " ")
	got, err = repo.GetTask(t.Context(), id)
	if err != nil {
		t.Fatalf("get task: %v", err)
	}
	if got.Status != string(model.StatusPending) {
		t.Fatalf("expected Pending after second toggle, got %q", got.Status)
	}
	if got.Title != "Buy milk" {
		t.Fatalf("expected title preserved, got %q", got.Title)
	}
	if m.Summary.Pending != 1 {
		t.Fatalf("expected summary pending 1, got %d", m.Summary.Pending)
	}
}

func TestAddFormCreatesPendingTask(t *testing.T) {
	repo := openRepo(t)
	m := newBoardModel(t, repo)

	m = pressKey(t, m, "a")
	if !m.Form.Active || m.Form.Mode != FormModeAdd {
		t.Fatalf("expected active add form, got %+v", m.Form)
	}
	m = pressKey(t, m, "Buy milk")
	m = pressKey(t, m, "enter")

	if m.Form.Active {
		t.Fatalf("expected form closed after save, err=%q", m.Form.Err)
	}
	tasks, err := repo.ListTasks(t.Context(), storage.TaskListFilter{})
	if err != nil {
		t.Fatalf("list tasks: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
	if tasks[0].Title != "Buy milk" || tasks[0].Status != string(model.StatusPending) {
		t.Fatalf("unexpected task: %+v", tasks[0])
	}
	if !strings.Contains(m.Status.Text, "task added") {
		t.Fatalf("unexpected status: %q", m.Status.Text)
	}
}

func TestAddFormValidation(t *testing.T) {
	repo := openRepo(t)
	m := newBoardModel(t, repo)

	m = pressKey(t, m, "a")
	m = pressKey(t, m, "enter")
	if !m.Form.Active || m.Form.Err != "title is required" {
		t.Fatalf("expected title error, got %+v", m.Form)
	}

	m.Form.Title = "File taxes"
	m.Form.Due = "2020-01-01"
	m = pressKey(t, m, "enter")
	if !m.Form.Active || m.Form.Err != "due date cannot be in the past" {
		t.Fatalf("expected past due error, got %+v", m.Form)
	}

	m.Form.Due = "not-a-date"
	m = pressKey(t, m, "enter")
	if !m.Form.Active || m.Form.Err != "due date must use YYYY-MM-DD" {
		t.Fatalf("expected date format error, got %+v", m.Form)
	}

	m.Form.Title = strings.Repeat("x", model.TitleMaxLen+1)
	m.Form.Due = time.Now().UTC().Format("2006-01-02")
	m = pressKey(t, m, "enter")
	if !m.Form.Active || !strings.Contains(m.Form.Err, "at most") {
		t.Fatalf("expected title length error, got %+v", m.Form)
	}

	tasks, err := repo.ListTasks(t.Context(), storage.TaskListFilter{})
	if err != nil {
		t.Fatalf("list tasks: %v", err)
	}
	if len(tasks) != 0 {
		t.Fatalf("expected no tasks saved, got %d", len(tasks))
	}
}

func TestEditFormUpdatesDetailsAndKeepsStatus(t *testing.T) {
	repo := openRepo(t)
	id := seedTask(t, repo, "Write report", time.Now().UTC().AddDate(0, 0, 2))
	if err := repo.UpdateTaskStatus(t.Context(), id, string(model.StatusCompleted)); err != nil {
		t.Fatalf("complete task: %v", err)
	}
	m := newBoardModel(t, repo)

	m = pressKey(t, m, "e")
	if !m.Form.Active || m.Form.Mode != FormModeEdit || m.Form.EditingID != id {
		t.Fatalf("expected edit form for #%d, got %+v", id, m.Form)
	}
	if m.Form.Title != "Write report" {
		t.Fatalf("expected prefilled title, got %q", m.Form.Title)
	}

	m = pressKey(t, m, " v2")
	m = pressKey(t, m, "enter")

	if m.Form.Active || m.Form.EditingID != 0 {
		t.Fatalf("expected cleared edit state, got %+v", m.Form)
	}
	got, err := repo.GetTask(t.Context(), id)
	if err != nil {
		t.Fatalf("get task: %v", err)
	}
	if got.Title != "Write report v2" {
		t.Fatalf("expected updated title, got %q", got.Title)
	}
	if got.Status != string(model.StatusCompleted) {
		t.Fatalf("expected status preserved, got %q", got.Status)
	}
}

func TestEditFormCancelClearsEditingState(t *testing.T) {
	repo := openRepo(t)
	seedTask(t, repo, "Write report", time.Now().UTC().AddDate(0, 0, 2))
	m := newBoardModel(t, repo)

	m = pressKey(t, m, "e")
	if !m.Form.Active {
		t.Fatal("expected active edit form")
	}
	m = pressKey(t, m, "esc")
	if m.Form.Active || m.Form.EditingID != 0 {
		t.Fatalf("expected cleared form after cancel, got %+v", m.Form)
	}
}

func TestDeleteKeyRemovesTask(t *testing.T) {
	repo := openRepo(t)
	seedTask(t, repo, "Old chore", time.Now().UTC())
	m := newBoardModel(t, repo)

	m = pressKey(t, m, "d")
	tasks, err := repo.ListTasks(t.Context(), storage.TaskListFilter{})
	if err != nil {
		t.Fatalf("list tasks: %v", err)
	}
	if len(tasks) != 0 {
		t.Fatalf("expected empty store, got %d tasks", len(tasks))
	}
	if m.Summary.Total != 0 {
		t.Fatalf("expected summary total 0, got %d", m.Summary.Total)
	}
}

func TestStorageFailureKeepsListAndSetsErrorStatus(t *testing.T) {
	repo := openRepo(t)
	seedTask(t, repo, "Buy milk", time.Now().UTC().AddDate(0, 0, 1))
	m := newBoardModel(t, repo)
	if err := repo.Close(); err != nil {
		t.Fatalf("close repo: %v", err)
	}

	m = pressKey(t, m, " ")
	if !m.Status.IsError {
		t.Fatalf("expected error status, got %+v", m.Status)
	}
	if m.LastError == nil {
		t.Fatal("expected last error recorded")
	}
	if len(m.Tasks) != 1 || m.Tasks[0].Title != "Buy milk" {
		t.Fatalf("expected prior list preserved, got %+v", m.Tasks)
	}
}

func TestFilterKeysCycleAndClear(t *testing.T) {
	repo := openRepo(t)
	seedTask(t, repo, "Buy milk", time.Now().UTC().AddDate(0, 0, 1))
	done := seedTask(t, repo, "Write report", time.Now().UTC().AddDate(0, 0, 2))
	if err := repo.UpdateTaskStatus(t.Context(), done, string(model.StatusCompleted)); err != nil {
		t.Fatalf("complete task: %v", err)
	}
	m := newBoardModel(t, repo)

	m = pressKey(t, m, "s")
	if m.Filter.Status != string(model.StatusPending) || len(m.Visible) != 1 {
		t.Fatalf("expected pending filter with 1 visible, got %q / %d", m.Filter.Status, len(m.Visible))
	}
	m = pressKey(t, m, "s")
	if m.Filter.Status != string(model.StatusCompleted) || len(m.Visible) != 1 {
		t.Fatalf("expected completed filter with 1 visible, got %q / %d", m.Filter.Status, len(m.Visible))
	}
	m = pressKey(t, m, "p")
	if m.Filter.Priority != string(model.PriorityHigh) || len(m.Visible) != 0 {
		t.Fatalf("expected high priority filter with 0 visible, got %q / %d", m.Filter.Priority, len(m.Visible))
	}
	m = pressKey(t, m, "c")
	if m.Filter.Active() || len(m.Visible) != 2 {
		t.Fatalf("expected cleared filters with 2 visible, got %+v / %d", m.Filter, len(m.Visible))
	}
}

func TestPaletteSearchNarrowsBoard(t *testing.T) {
	repo := openRepo(t)
	seedTask(t, repo, "Buy milk", time.Now().UTC().AddDate(0, 0, 1))
	seedTask(t, repo, "Write report", time.Now().UTC().AddDate(0, 0, 2))
	m := newBoardModel(t, repo)

	m = pressKey(t, m, "/")
	if !m.Palette.Active {
		t.Fatal("expected active palette")
	}
	m = pressKey(t, m, "search milk")
	m = pressKey(t, m, "enter")

	if m.Palette.Active {
		t.Fatal("expected palette closed after execute")
	}
	if len(m.Visible) != 1 || m.Visible[0].Title != "Buy milk" {
		t.Fatalf("expected only Buy milk visible, got %+v", m.Visible)
	}
	out := m.View()
	if !strings.Contains(out, "Buy milk") {
		t.Fatalf("expected matching task in view: %q", out)
	}
	if strings.Contains(out, "Write report") {
		t.Fatalf("expected filtered-out task hidden: %q", out)
	}
}

func TestPaletteDoneAndDeleteCommands(t *testing.T) {
	repo := openRepo(t)
	id := seedTask(t, repo, "Buy milk", time.Now().UTC().AddDate(0, 0, 1))
	m := newBoardModel(t, repo)

	m = pressKey(t, m, "/")
	m = pressKey(t, m, "done 1")
	m = pressKey(t, m, "enter")
	got, err := repo.GetTask(t.Context(), id)
	if err != nil {
		t.Fatalf("get task: %v", err)
	}
	if got.Status != string(model.StatusCompleted) {
		t.Fatalf("expected Completed, got %q", got.Status)
	}

	m = pressKey(t, m, "/")
	m = pressKey(t, m, "delete 1")
	m = pressKey(t, m, "enter")
	if _, err := repo.GetTask(t.Context(), id); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if m.Summary.Total != 0 {
		t.Fatalf("expected summary total 0, got %d", m.Summary.Total)
	}
}

func TestPaletteRejectsUnknownCommand(t *testing.T) {
	m := newBoardModel(t, openRepo(t))
	m = pressKey(t, m, "/")
	m = pressKey(t, m, "archive 3")
	m = pressKey(t, m, "enter")
	if !m.Status.IsError {
		t.Fatalf("expected error status, got %+v", m.Status)
	}
	if !strings.Contains(m.Status.Text, "unknown_command") {
		t.Fatalf("expected unknown command error, got %q", m.Status.Text)
	}
}

func TestPaletteUnknownTaskIDSurfacesError(t *testing.T) {
	m := newBoardModel(t, openRepo(t))
	m = pressKey(t, m, "/")
	m = pressKey(t, m, "done 99")
	m = pressKey(t, m, "enter")
	if !m.Status.IsError || !strings.Contains(m.Status.Text, "no task with id 99") {
		t.Fatalf("expected missing task error, got %+v", m.Status)
	}
}

func TestPaletteExportWritesFile(t *testing.T) {
	repo := openRepo(t)
	seedTask(t, repo, "Buy milk", time.Now().UTC().AddDate(0, 0, 1))
	dir := t.TempDir()
	m := newBoardModel(t, repo)

	m = pressKey(t, m, "/")
	m = pressKey(t, m, "export csv "+dir)
	m = pressKey(t, m, "enter")

	if m.Status.IsError {
		t.Fatalf("unexpected error status: %+v", m.Status)
	}
	raw, err := os.ReadFile(filepath.Join(dir, "my_tasks.csv"))
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if !strings.HasPrefix(string(raw), "ID,Title,") {
		t.Fatalf("unexpected export header: %q", string(raw)[:40])
	}
}

func TestViewContainsCoreState(t *testing.T) {
	repo := openRepo(t)
	seedTask(t, repo, "Buy milk", time.Now().UTC().AddDate(0, 0, 1))
	m := newBoardModel(t, repo)
	m.Status = StatusBar{Text: "all good"}

	out := m.View()
	if !strings.Contains(out, "view: Board") {
		t.Fatalf("expected view text in output: %q", out)
	}
	if !strings.Contains(out, "selected: #1") {
		t.Fatalf("expected selected task in output: %q", out)
	}
	if !strings.Contains(out, "status: all good") {
		t.Fatalf("expected status in output: %q", out)
	}
	if !strings.Contains(out, "Pending:") || !strings.Contains(out, "Completed:") {
		t.Fatalf("expected board sections in output: %q", out)
	}
}

func TestDashboardViewShowsMetricsAndQuote(t *testing.T) {
	repo := openRepo(t)
	seedTask(t, repo, "Buy milk", time.Now().UTC().AddDate(0, 0, 1))
	done := seedTask(t, repo, "Write report", time.Now().UTC().AddDate(0, 0, 2))
	if err := repo.UpdateTaskStatus(t.Context(), done, string(model.StatusCompleted)); err != nil {
		t.Fatalf("complete task: %v", err)
	}
	m := newBoardModel(t, repo)

	m = pressKey(t, m, "2")
	out := m.View()
	if !strings.Contains(out, "total tasks: 2") {
		t.Fatalf("expected total in output: %q", out)
	}
	if !strings.Contains(out, "completion: 50.00%") {
		t.Fatalf("expected completion rate in output: %q", out)
	}
	if !strings.Contains(out, "[###############---------------]") {
		t.Fatalf("expected half-filled bar in output: %q", out)
	}
	if !strings.Contains(out, "> ") {
		t.Fatalf("expected quote line in output: %q", out)
	}
}

func TestOverdueTaskMarkedOnBoard(t *testing.T) {
	repo := openRepo(t)
	seedTask(t, repo, "Pay rent", time.Now().UTC().AddDate(0, 0, -3))
	m := newBoardModel(t, repo)

	out := m.View()
	if !strings.Contains(out, "OVERDUE") {
		t.Fatalf("expected overdue marker in output: %q", out)
	}
}

func TestHelpToggle(t *testing.T) {
	m := newBoardModel(t, openRepo(t))
	m = pressKey(t, m, "?")
	if !m.HelpVisible {
		t.Fatal("expected help visible")
	}
	if !strings.Contains(m.View(), "help:") {
		t.Fatal("expected help panel in view")
	}
	m = pressKey(t, m, "?")
	if m.HelpVisible {
		t.Fatal("expected help hidden")
	}
}
