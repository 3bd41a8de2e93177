package views

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
)

type CalendarCellData struct {
	Day        int
	InMonth    bool
	Status     string
	Streak     bool
	Selected   bool
	EventCount int
}

type StatCardData struct {
	Label string
	Value string
}

type CalendarPanelData struct {
	MonthTitle  string
	Cells       []CalendarCellData
	StatCards   []StatCardData
	CoachPrompt string
}

type EventCardData struct {
	Title       string
	Description string
	Time        string
	Type        string
}

type QuestRowData struct {
	Title     string
	Completed bool
}

type TaskRowData struct {
	Number      int
	Description string
	Completed   bool
	Selected    bool
	Editable    bool
	Missed      bool
}

type DayDialogData struct {
	Date        string
	Status      string
	Loading     bool
	SpinnerView string
	Events      []EventCardData
	Quests      []QuestRowData
	HasTasks    bool
	Tasks       []TaskRowData
}

type GaugeData struct {
	Label   string
	Minutes int
	Ceiling int
	Percent int
}

type ActivityPanelData struct {
	Loaded bool
	Gauges []GaugeData
}

type ContentCardsData struct {
	QuoteText   string
	QuoteAuthor string
	InsightText string
	CoachPrompt string
}

type HelpPanelData struct {
	CurrentTab string
	Bindings   []string
	HelpView   string
}

func RenderCalendarPanel(data CalendarPanelData) string {
	var b strings.Builder
	b.WriteString(data.MonthTitle + "\n")
	b.WriteString(" Su  Mo  Tu  We  Th  Fr  Sa\n")

	for i, cell := range data.Cells {
		b.WriteString(renderCalendarCell(cell))
		if (i+1)%7 == 0 {
			b.WriteString("\n")
		}
	}

	if len(data.StatCards) > 0 {
		b.WriteString("\n")
		for _, card := range data.StatCards {
			b.WriteString(fmt.Sprintf("%s: %s  ", card.Label, card.Value))
		}
		b.WriteString("\n")
	}
	if data.CoachPrompt != "" {
		b.WriteString(fmt.Sprintf("\nAre you struggling with %s?\n", data.CoachPrompt))
	}
	return strings.TrimSpace(b.String())
}

func renderCalendarCell(cell CalendarCellData) string {
	text := fmt.Sprintf("%3d", cell.Day)
	if cell.EventCount > 0 {
		text += "*"
	} else {
		text += " "
	}

	style := lipgloss.NewStyle()
	switch {
	case !cell.InMonth:
		style = dimCellStyle
	case cell.Streak:
		style = streakCellStyle
	case cell.Status == "present":
		style = presentCellStyle
	case cell.Status == "recent-past":
		style = missedCellStyle
	case cell.Status == "far-past":
		style = dimCellStyle
	}
	if cell.Selected {
		style = selectedCellStyle
	}
	return style.Render(text)
}

func RenderDayDialog(data DayDialogData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("day detail: %s (%s)\n", data.Date, data.Status))

	if data.Loading {
		b.WriteString(data.SpinnerView + " loading\n")
		return strings.TrimSpace(b.String())
	}

	if len(data.Events) > 0 {
		b.WriteString("\nsessions:\n")
		for _, ev := range data.Events {
			b.WriteString(fmt.Sprintf("- [%s] %s %s\n", strings.ToUpper(ev.Type), ev.Time, ev.Title))
			if ev.Description != "" {
				b.WriteString("    " + ev.Description + "\n")
			}
		}
	}

	if len(data.Quests) > 0 {
		b.WriteString("\nquests:\n")
		for _, q := range data.Quests {
			b.WriteString(fmt.Sprintf("%s %s\n", checkbox(q.Completed), q.Title))
		}
	}

	if data.HasTasks {
		b.WriteString("\ntasks:\n")
		for _, task := range data.Tasks {
			cursor := " "
			if task.Selected {
				cursor = ">"
			}
			mark := checkbox(task.Completed)
			if task.Missed {
				mark = "[missed]"
			}
			lock := ""
			if !task.Editable {
				lock = " (read-only)"
			}
			b.WriteString(fmt.Sprintf("%s %s %d. %s%s\n", cursor, mark, task.Number, task.Description, lock))
		}
	} else {
		b.WriteString("\n(no task detail for this date)\n")
	}
	b.WriteString("\nkeys: [j/k] move [space] toggle [esc] close")
	return strings.TrimSpace(b.String())
}

func RenderActivityPanel(data ActivityPanelData) string {
	var b strings.Builder
	b.WriteString("activity:\n")
	if !data.Loaded {
		b.WriteString("(not loaded, press r to fetch)\n")
	}
	for _, g := range data.Gauges {
		b.WriteString(fmt.Sprintf("%-8s %5dm / %5dm  %s %3d%%\n",
			g.Label, g.Minutes, g.Ceiling, textGauge(g.Percent, 20), g.Percent))
	}
	b.WriteString("\n" + renderActivityChart(data.Gauges))
	return strings.TrimSpace(b.String())
}

// renderActivityChart draws the four windows as a bar chart of fill
// percentages, so wildly different ceilings share one scale.
func renderActivityChart(gauges []GaugeData) string {
	if len(gauges) == 0 {
		return ""
	}
	chart := barchart.New(48, 8)
	bars := make([]barchart.BarData, 0, len(gauges))
	for _, g := range gauges {
		bars = append(bars, barchart.BarData{
			Label: g.Label,
			Values: []barchart.BarValue{{
				Name:  g.Label,
				Value: float64(g.Percent),
				Style: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			}},
		})
	}
	chart.PushAll(bars)
	chart.Draw()
	return chart.View()
}

func RenderContentCards(data ContentCardsData) string {
	var parts []string
	if data.QuoteText != "" {
		md := fmt.Sprintf("> %s", data.QuoteText)
		if data.QuoteAuthor != "" {
			md += fmt.Sprintf("\n>\n> — %s", data.QuoteAuthor)
		}
		parts = append(parts, "quote of the day:\n"+RenderMarkdown(md))
	}
	if data.InsightText != "" {
		parts = append(parts, "daily insight:\n"+RenderMarkdown(data.InsightText))
	}
	if data.CoachPrompt != "" {
		parts = append(parts, fmt.Sprintf("Are you struggling with %s?", data.CoachPrompt))
	}
	return strings.Join(parts, "\n\n")
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("\ncommand: /%s", input)
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("\nhelp:\nglobal:\n%s tab:\n%s\n%s",
		strings.ToLower(data.CurrentTab),
		strings.Join(data.Bindings, "\n"),
		data.HelpView,
	)
}

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

func textGauge(percent, width int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := percent * width / 100
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}
