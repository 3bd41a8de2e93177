package update

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lucasvw/gameplan/internal/model"
	"github.com/lucasvw/gameplan/internal/reconcile"
)

func (m Model) handleCalendarKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "h", "left":
		m.moveGridCursor(-1)
	case "l", "right":
		m.moveGridCursor(1)
	case "k", "up":
		m.moveGridCursor(-7)
	case "j", "down":
		m.moveGridCursor(7)
	case "[", "p":
		return m.shiftMonth(-1)
	case "]", "n":
		return m.shiftMonth(1)
	case "t":
		year, month, day := m.Today()
		if year != m.Calendar.Year || month != m.Calendar.Month {
			cmd := m.showMonth(year, month)
			m.Calendar.Cursor = cursorForDay(m.Calendar.Grid, day)
			return m, cmd
		}
		m.Calendar.Cursor = cursorForDay(m.Calendar.Grid, day)
	case m.Keys.Refresh:
		m.Status = StatusBar{Text: "refreshing sessions", IsError: false}
		return m, m.fetchSessionsCmd(m.Calendar.Year, m.Calendar.Month)
	case "enter", " ":
		return m.openSelectedDay()
	}
	return m, nil
}

func (m *Model) moveGridCursor(delta int) {
	next := m.Calendar.Cursor + delta
	if next < 0 || next >= len(m.Calendar.Grid) {
		return
	}
	m.Calendar.Cursor = next
}

func (m Model) shiftMonth(delta int) (Model, tea.Cmd) {
	ref := time.Date(m.Calendar.Year, m.Calendar.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, delta, 0)
	cmd := m.showMonth(ref.Year(), ref.Month())
	return m, cmd
}

// showMonth swaps the displayed month: rebuilds the grid and a quest-seeded
// event map immediately, then kicks off the session fetch for the new month.
// Sessions arrive later via a tagged message.
func (m *Model) showMonth(year int, month time.Month) tea.Cmd {
	m.Calendar.Year = year
	m.Calendar.Month = month
	m.Calendar.Grid = model.MonthGrid(year, month)
	m.Calendar.Events = reconcile.BuildDayEvents(year, month, nil)
	if m.Calendar.Cursor >= len(m.Calendar.Grid) {
		m.Calendar.Cursor = 0
	}
	m.Dialog = DialogState{}
	m.Status = StatusBar{
		Text:    fmt.Sprintf("showing %s %d", month, year),
		IsError: false,
	}
	return m.fetchSessionsCmd(year, month)
}

// openSelectedDay opens the detail dialog for the cell under the cursor.
// Padding cells from adjacent months are not selectable.
func (m Model) openSelectedDay() (Model, tea.Cmd) {
	cell, ok := m.selectedCell()
	if !ok || !cell.InCurrentMonth {
		return m, nil
	}
	date := model.ISODate(m.Calendar.Year, m.Calendar.Month, cell.Day)
	m.Dialog = DialogState{
		Open:    true,
		Day:     cell.Day,
		Date:    date,
		Loading: true,
	}
	m.Status = StatusBar{Text: fmt.Sprintf("loading %s", date), IsError: false}
	return m, tea.Batch(m.dialogSpinner.Tick, m.fetchDayDetailCmd(date))
}

func (m Model) selectedCell() (model.CalendarDay, bool) {
	if m.Calendar.Cursor < 0 || m.Calendar.Cursor >= len(m.Calendar.Grid) {
		return model.CalendarDay{}, false
	}
	return m.Calendar.Grid[m.Calendar.Cursor], true
}

func (m *Model) ensureCalendarState() {
	if m.Calendar.Month == 0 {
		now := m.now()
		m.Calendar.Year = now.Year()
		m.Calendar.Month = now.Month()
	}
	if len(m.Calendar.Grid) == 0 {
		m.Calendar.Grid = model.MonthGrid(m.Calendar.Year, m.Calendar.Month)
	}
	if m.Calendar.Events == nil {
		m.Calendar.Events = reconcile.BuildDayEvents(m.Calendar.Year, m.Calendar.Month, nil)
	}
	if m.Calendar.Cursor < 0 {
		m.Calendar.Cursor = 0
	}
	if m.Calendar.Cursor >= len(m.Calendar.Grid) {
		m.Calendar.Cursor = len(m.Calendar.Grid) - 1
	}
}

// applySessions installs a fetched session list, unless the user has since
// navigated to a different month.
func (m *Model) applySessions(msg SessionsFetchedMsg) {
	if msg.Year != m.Calendar.Year || msg.Month != m.Calendar.Month {
		return
	}
	if msg.Err != nil {
		m.LastError = msg.Err
		m.Status = StatusBar{Text: "session fetch failed, showing quests only", IsError: true}
		return
	}
	m.Calendar.Events = reconcile.BuildDayEvents(m.Calendar.Year, m.Calendar.Month, msg.Sessions)
	m.Status = StatusBar{Text: fmt.Sprintf("sessions loaded for %s %d", m.Calendar.Month, m.Calendar.Year), IsError: false}
}
