// Package views renders plain data structs to terminal output. Nothing in
// here reads application state; the update layer assembles the data.
package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

type DashboardData struct {
	Header     string
	LeftPane   string
	RightPane  string
	StatusLine string
	Footer     string
}

type HeaderData struct {
	Title        string
	Caption      string
	ProgressView string
	ProgressPct  int
}

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	captionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	panelStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	dimCellStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	presentCellStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	streakCellStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	missedCellStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	selectedCellStyle = lipgloss.NewStyle().Reverse(true)
)

func RenderDashboard(data DashboardData) string {
	left := panelStyle.Width(58).Render(data.LeftPane)
	right := panelStyle.Width(58).Render(data.RightPane)
	row := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	status := statusStyle.Render(data.StatusLine)
	if strings.Contains(strings.ToLower(data.StatusLine), "error") {
		status = errorStyle.Render(data.StatusLine)
	}

	lines := []string{
		data.Header,
		row,
		status,
	}
	if data.Footer != "" {
		lines = append(lines, footerStyle.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

func RenderHeader(data HeaderData) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(data.Title))
	b.WriteString("\n")
	b.WriteString(captionStyle.Render(data.Caption))
	b.WriteString("  ")
	b.WriteString(data.ProgressView)
	return b.String()
}

func RenderMarkdown(md string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	out, err := glamour.Render(md, "dark")
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
