package views

import (
	"fmt"
	"strings"
)

type TaskRowData struct {
	ID       int64
	Title    string
	Priority string
	DueDate  string
	Overdue  bool
	Done     bool
}

type BoardPanelData struct {
	ListView   string
	FilterLine string
	Pending    []TaskRowData
	Completed  []TaskRowData
	SelectedID int64
}

type TaskDetailData struct {
	SelectedID      int64
	Title           string
	Priority        string
	DueDate         string
	Status          string
	CreatedAt       string
	Overdue         bool
	NotesEditorView string
	MarkdownView    string
}

type TaskFormData struct {
	Active    bool
	Mode      string
	Field     string
	TitleView string
	NotesView string
	Priority  string
	DueView   string
	ErrorText string
}

type DashboardPanelData struct {
	Quote        string
	Total        int
	Completed    int
	Pending      int
	RateText     string
	ProgressView string
	TextBar      string
}

type HelpPanelData struct {
	CurrentView string
	Bindings    []string
	HelpView    string
}

func RenderBoardPanel(data BoardPanelData) string {
	var b strings.Builder
	b.WriteString("board:\n")
	b.WriteString("actions: [j/k]move [space]toggle [a]dd [e]dit [d]elete [x]export\n")
	if data.FilterLine != "" {
		b.WriteString("filters: " + data.FilterLine + "\n")
	}
	b.WriteString(data.ListView + "\n")
	renderTaskSection(&b, "Pending", data.Pending, data.SelectedID, "(no pending tasks, all caught up)")
	renderTaskSection(&b, "Completed", data.Completed, data.SelectedID, "(no tasks completed yet)")
	return strings.TrimSpace(b.String())
}

func RenderDashboardPanel(data DashboardPanelData) string {
	var b strings.Builder
	b.WriteString("dashboard:\n")
	b.WriteString("actions: [1]board [2]dashboard [x]export\n")
	b.WriteString(quoteStyle.Render("> "+data.Quote) + "\n\n")
	b.WriteString(fmt.Sprintf("total tasks: %d\n", data.Total))
	b.WriteString(fmt.Sprintf("completed: %d\n", data.Completed))
	b.WriteString(fmt.Sprintf("pending: %d\n", data.Pending))
	b.WriteString(fmt.Sprintf("completion: %s\n", data.RateText))
	b.WriteString(data.ProgressView)
	if data.TextBar != "" {
		b.WriteString("\n" + data.TextBar)
	}
	return strings.TrimSpace(b.String())
}

func RenderTaskDetailPane(data TaskDetailData) string {
	if data.SelectedID == 0 {
		return "task:\n(no selection)"
	}
	var b strings.Builder
	b.WriteString("task:\n")
	b.WriteString(fmt.Sprintf("id: %d\n", data.SelectedID))
	b.WriteString(fmt.Sprintf("title: %s\n", data.Title))
	b.WriteString(fmt.Sprintf("priority: %s %s\n", priorityBadge(data.Priority), data.Priority))
	if data.Overdue {
		b.WriteString(fmt.Sprintf("due: %s %s\n", data.DueDate, overdueStyle.Render("OVERDUE")))
	} else {
		b.WriteString(fmt.Sprintf("due: %s\n", data.DueDate))
	}
	b.WriteString(fmt.Sprintf("status: %s\n", data.Status))
	b.WriteString(fmt.Sprintf("created: %s\n", data.CreatedAt))
	b.WriteString("\nnotes-editor:\n" + data.NotesEditorView + "\n")
	b.WriteString("\nmarkdown-preview:\n" + data.MarkdownView)
	return strings.TrimSpace(b.String())
}

func RenderTaskForm(data TaskFormData) string {
	if !data.Active {
		return ""
	}
	var b strings.Builder
	b.WriteString("\ntask-editor:\n")
	b.WriteString(fmt.Sprintf("mode: %s\n", data.Mode))
	b.WriteString("keys: [tab] field [space] cycle-priority [enter] save [esc] cancel\n")
	b.WriteString(formFieldLine("title", data.Field == "title", data.TitleView))
	b.WriteString(formFieldLine("notes", data.Field == "notes", data.NotesView))
	b.WriteString(formFieldLine("priority", data.Field == "priority", priorityBadge(data.Priority)+" "+data.Priority))
	b.WriteString(formFieldLine("due", data.Field == "due", data.DueView))
	if data.ErrorText != "" {
		b.WriteString("error: " + data.ErrorText + "\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: /%s", input)
}

func RenderNotification(level string, body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	return fmt.Sprintf("\nnotification: [%s] %s", strings.ToUpper(level), body)
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help:\nglobal:\n%s view:\n%s\n%s",
		strings.ToLower(data.CurrentView),
		strings.Join(data.Bindings, "\n"),
		data.HelpView,
	)
}

func renderTaskSection(b *strings.Builder, name string, items []TaskRowData, selectedID int64, empty string) {
	b.WriteString(fmt.Sprintf("\n%s:\n", name))
	if len(items) == 0 {
		b.WriteString("  " + empty + "\n")
		return
	}
	for _, item := range items {
		cursor := " "
		if selectedID == item.ID {
			cursor = ">"
		}
		check := "[ ]"
		label := item.Title
		if item.Done {
			check = "[x]"
			label = doneStyle.Render(label)
		}
		b.WriteString(fmt.Sprintf("%s %s %s #%d %s due:%s", cursor, check, priorityBadge(item.Priority), item.ID, label, item.DueDate))
		if item.Overdue {
			b.WriteString(" " + overdueStyle.Render("OVERDUE"))
		}
		b.WriteString("\n")
	}
}

func priorityBadge(priority string) string {
	switch priority {
	case "High":
		return "[RED]"
	case "Medium":
		return "[YELLOW]"
	default:
		return "[GREEN]"
	}
}

func formFieldLine(name string, focused bool, view string) string {
	marker := " "
	if focused {
		marker = ">"
	}
	return fmt.Sprintf("%s %s: %s\n", marker, name, view)
}
