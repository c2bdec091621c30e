package update

import (
	"fmt"
	"strings"
	"time"

	"taskdeck/internal/model"
	"taskdeck/internal/views"
)

func (m Model) renderBoardView() string {
	now := time.Now().UTC()
	pending := make([]views.TaskRowData, 0, len(m.Visible))
	completed := make([]views.TaskRowData, 0)
	for _, t := range m.Visible {
		row := views.TaskRowData{
			ID:       t.ID,
			Title:    t.Title,
			Priority: string(t.Priority),
			DueDate:  t.DueDate.Format("Jan 02, 2006"),
			Overdue:  t.Overdue(now),
			Done:     t.Status == model.StatusCompleted,
		}
		if row.Done {
			completed = append(completed, row)
		} else {
			pending = append(pending, row)
		}
	}
	return views.RenderBoardPanel(views.BoardPanelData{
		ListView:   m.taskList.View(),
		FilterLine: m.filterLine(),
		Pending:    pending,
		Completed:  completed,
		SelectedID: m.selectedID(),
	})
}

func (m Model) renderDashboardView() string {
	pct := m.Summary.CompletionRate / 100
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	return views.RenderDashboardPanel(views.DashboardPanelData{
		Quote:        m.Quote,
		Total:        m.Summary.Total,
		Completed:    m.Summary.Completed,
		Pending:      m.Summary.Pending,
		RateText:     fmt.Sprintf("%.2f%%", m.Summary.CompletionRate),
		ProgressView: m.rateProgress.ViewAs(pct),
		TextBar:      progressBar(pct, 30),
	})
}

func (m Model) renderTaskDetailPane() string {
	task, ok := m.currentTask()
	if !ok {
		return "task:\n(no selection)"
	}
	return views.RenderTaskDetailPane(views.TaskDetailData{
		SelectedID:      task.ID,
		Title:           task.Title,
		Priority:        string(task.Priority),
		DueDate:         task.DueDate.Format("2006-01-02"),
		Status:          string(task.Status),
		CreatedAt:       task.CreatedAt.Format("2006-01-02 15:04:05"),
		Overdue:         task.Overdue(time.Now().UTC()),
		NotesEditorView: m.notesArea.View(),
		MarkdownView:    m.descViewport.View(),
	})
}

func (m Model) renderTaskTablePane() string {
	return "tasks:\n" + m.summaryTable.View()
}

func (m Model) renderTaskFormIfActive() string {
	return views.RenderTaskForm(views.TaskFormData{
		Active:    m.Form.Active,
		Mode:      string(m.Form.Mode),
		Field:     string(m.Form.Field),
		TitleView: m.titleInput.View(),
		NotesView: m.notesArea.View(),
		Priority:  string(m.Form.Priority),
		DueView:   m.dueInput.View(),
		ErrorText: m.Form.Err,
	})
}

func (m Model) renderCommandPalette() string {
	return views.RenderCommandPalette(m.Palette.Active, m.Palette.Input)
}

func (m Model) renderNotificationsView() string {
	if len(m.Notifications) == 0 {
		return ""
	}
	n := m.Notifications[len(m.Notifications)-1]
	return views.RenderNotification(n.Level, n.Body)
}

func (m Model) filterLine() string {
	if !m.Filter.Active() {
		return ""
	}
	parts := make([]string, 0, 3)
	if strings.TrimSpace(m.Filter.Query) != "" {
		parts = append(parts, fmt.Sprintf("query=%q", m.Filter.Query))
	}
	if m.Filter.Priority != "" && m.Filter.Priority != model.FilterAll {
		parts = append(parts, "priority="+m.Filter.Priority)
	}
	if m.Filter.Status != "" && m.Filter.Status != model.FilterAll {
		parts = append(parts, "status="+m.Filter.Status)
	}
	return strings.Join(parts, " ")
}

func (m Model) selectedID() int64 {
	if task, ok := m.currentTask(); ok {
		return task.ID
	}
	return 0
}

func (m *Model) notify(title, body, level string) {
	if strings.TrimSpace(body) == "" {
		return
	}
	n := Notification{
		Title: title,
		Body:  body,
		Level: level,
		At:    time.Now().UTC(),
	}
	m.Notifications = append(m.Notifications, n)
	if len(m.Notifications) > 40 {
		m.Notifications = m.Notifications[len(m.Notifications)-40:]
	}
	if m.DesktopEnabled && m.notifier != nil {
		_ = m.notifier.Send(n)
	}
}
