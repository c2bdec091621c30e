package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// paneWidth is the rendered width of each of the two main panes; the
// markdown word wrap in RenderMarkdown derives from it.
const paneWidth = 58

type AppData struct {
	Header        string
	LeftPane      string
	RightPane     string
	StatusLine    string
	StatusIsError bool
	Footer        string
	Notification  string
}

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	panelStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	notifyStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Foreground(lipgloss.Color("11"))
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	overdueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	doneStyle    = lipgloss.NewStyle().Strikethrough(true).Faint(true)
	quoteStyle   = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("14"))
)

func RenderApp(data AppData) string {
	panes := lipgloss.JoinHorizontal(lipgloss.Top,
		panelStyle.Width(paneWidth).Render(data.LeftPane),
		panelStyle.Width(paneWidth).Render(data.RightPane),
	)

	statusLine := statusStyle.Render(data.StatusLine)
	if data.StatusIsError {
		statusLine = errorStyle.Render(data.StatusLine)
	}

	out := []string{
		headerStyle.Render(data.Header),
		panes,
		statusLine,
	}
	if data.Notification != "" {
		out = append(out, notifyStyle.Render(data.Notification))
	}
	if data.Footer != "" {
		out = append(out, footerStyle.Render(data.Footer))
	}
	return strings.Join(out, "\n")
}

func RenderMarkdown(md string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(paneWidth-4),
	)
	if err != nil {
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
