package update

import (
	"fmt"

	"github.com/lucasvw/gameplan/internal/model"
	"github.com/lucasvw/gameplan/internal/views"
)

func (m Model) renderHeader() string {
	member := "(no member)"
	if m.api != nil && m.api.MemberID() != "" {
		member = m.api.MemberID()
	}
	return views.RenderHeader(views.HeaderData{
		Title:        fmt.Sprintf("gameplan | %s | member: %s", m.CurrentTab, member),
		Caption:      "Your 90-day game plan",
		ProgressView: m.headerGauge.ViewAs(m.ProgressRatio()),
		ProgressPct:  int(m.ProgressRatio() * 100),
	})
}

func (m Model) renderCalendarPanel() string {
	year, month, currentDay := m.Today()
	sameMonth := m.Calendar.Year == year && m.Calendar.Month == month

	cells := make([]views.CalendarCellData, 0, len(m.Calendar.Grid))
	for i, cell := range m.Calendar.Grid {
		data := views.CalendarCellData{
			Day:      cell.Day,
			InMonth:  cell.InCurrentMonth,
			Selected: i == m.Calendar.Cursor,
		}
		if cell.InCurrentMonth {
			if sameMonth {
				data.Status = string(model.ClassifyDay(cell.Day, currentDay))
			} else if m.Calendar.Year < year || (m.Calendar.Year == year && m.Calendar.Month < month) {
				data.Status = string(model.StatusFarPast)
			} else {
				data.Status = string(model.StatusFuture)
			}
			data.Streak = m.streakDay(cell.Day)
			if entry, ok := m.Calendar.Events[cell.Day]; ok {
				data.EventCount = len(entry.Events)
			}
		}
		cells = append(cells, data)
	}

	return views.RenderCalendarPanel(views.CalendarPanelData{
		MonthTitle:  fmt.Sprintf("%s %d", m.Calendar.Month, m.Calendar.Year),
		Cells:       cells,
		StatCards:   m.statCards(),
		CoachPrompt: m.coachPrompt(),
	})
}

// statCards summarizes the displayed month: streak days, booked sessions,
// and the next upcoming event.
func (m Model) statCards() []views.StatCardData {
	streaks := 0
	sessions := 0
	nextEvent := ""
	_, _, currentDay := m.Today()
	for day := 1; day <= len(m.Calendar.Events); day++ {
		entry, ok := m.Calendar.Events[day]
		if !ok {
			continue
		}
		if m.streakDay(day) {
			streaks++
		}
		sessions += len(entry.Events)
		if nextEvent == "" && day >= currentDay && len(entry.Events) > 0 {
			nextEvent = fmt.Sprintf("day %d: %s", day, entry.Events[0].Title)
		}
	}
	if nextEvent == "" {
		nextEvent = "none scheduled"
	}
	return []views.StatCardData{
		{Label: "streak days", Value: fmt.Sprintf("%d", streaks)},
		{Label: "sessions", Value: fmt.Sprintf("%d", sessions)},
		{Label: "next event", Value: nextEvent},
	}
}

func (m Model) renderDayDialog() string {
	status := m.dialogStatus()
	editable := m.Dialog.Date == m.TodayISO() && status.Mutable()

	data := views.DayDialogData{
		Date:        m.Dialog.Date,
		Status:      string(status),
		Loading:     m.Dialog.Loading,
		SpinnerView: m.dialogSpinner.View(),
		HasTasks:    m.Dialog.HasDetail,
	}

	if entry, ok := m.Calendar.Events[m.Dialog.Day]; ok {
		for _, ev := range entry.Events {
			data.Events = append(data.Events, views.EventCardData{
				Title:       ev.Title,
				Description: ev.Description,
				Time:        ev.Time,
				Type:        string(ev.Type),
			})
		}
		for _, q := range entry.Quests {
			data.Quests = append(data.Quests, views.QuestRowData{
				Title:     q.Title,
				Completed: m.CompletedQuests[q.ID],
			})
		}
	}

	for i, task := range m.Dialog.Detail.Tasks {
		data.Tasks = append(data.Tasks, views.TaskRowData{
			Number:      task.Number,
			Description: task.Description,
			Completed:   task.Completed,
			Selected:    i == m.Dialog.TaskCursor,
			Editable:    editable,
			Missed:      !task.Completed && (status == model.StatusFarPast || status == model.StatusRecentPast),
		})
	}
	return views.RenderDayDialog(data)
}

func (m Model) renderActivityPanel() string {
	gauges := make([]views.GaugeData, 0, len(model.ActivityWindows))
	for _, window := range model.ActivityWindows {
		minutes := m.Activity.Summary.Minutes(window)
		gauges = append(gauges, views.GaugeData{
			Label:   window.Label(),
			Minutes: minutes,
			Ceiling: window.CeilingMinutes(),
			Percent: model.ActivityPercent(minutes, window),
		})
	}
	return views.RenderActivityPanel(views.ActivityPanelData{
		Loaded: m.Activity.Loaded,
		Gauges: gauges,
	})
}

func (m Model) renderContentCards() string {
	return views.RenderContentCards(views.ContentCardsData{
		QuoteText:   m.Content.Quote.Text,
		QuoteAuthor: m.Content.Quote.Author,
		InsightText: m.Content.Insight.Text,
		CoachPrompt: m.coachPrompt(),
	})
}

func (m Model) renderCommandPalette() string {
	return views.RenderCommandPalette(m.Palette.Active, m.Palette.Input)
}
