package update

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lucasvw/gameplan/internal/api"
	"github.com/lucasvw/gameplan/internal/model"
)

func (m Model) handleDialogKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.Dialog = DialogState{}
		m.Status = StatusBar{Text: "dialog closed", IsError: false}
	case "k", "up":
		if m.Dialog.TaskCursor > 0 {
			m.Dialog.TaskCursor--
		}
	case "j", "down":
		if m.Dialog.TaskCursor < len(m.Dialog.Detail.Tasks)-1 {
			m.Dialog.TaskCursor++
		}
	case "enter", " ", "x":
		return m.toggleSelectedTask()
	case m.Keys.Refresh:
		m.Dialog.Loading = true
		return m, tea.Batch(m.dialogSpinner.Tick, m.fetchDayDetailCmd(m.Dialog.Date))
	}
	return m, nil
}

// applyDayDetail installs a fetched detail unless the dialog has moved on to
// another date (or closed) since the fetch was issued. Streak markers update
// from any successful fetch, dialog or poll.
func (m *Model) applyDayDetail(msg DayDetailMsg) {
	if msg.Err == nil {
		m.recordDayCompletion(msg.Date, msg.Detail)
	}
	if !m.Dialog.Open || msg.Date != m.Dialog.Date {
		return
	}
	m.Dialog.Loading = false
	if msg.Err != nil {
		m.Dialog.HasDetail = false
		m.Dialog.Detail = model.DayDetail{}
		switch {
		case errors.Is(msg.Err, api.ErrNotFound):
			m.Status = StatusBar{Text: fmt.Sprintf("no tasks recorded for %s", msg.Date), IsError: false}
		case errors.Is(msg.Err, api.ErrNoMember):
			m.Status = StatusBar{Text: "set a member id first (member <id>)", IsError: true}
		default:
			m.LastError = msg.Err
			m.Status = StatusBar{Text: fmt.Sprintf("could not load %s", msg.Date), IsError: true}
		}
		return
	}
	m.Dialog.Detail = msg.Detail
	m.Dialog.HasDetail = true
	if m.Dialog.TaskCursor >= len(msg.Detail.Tasks) {
		m.Dialog.TaskCursor = 0
	}
	m.Status = StatusBar{Text: fmt.Sprintf("loaded %s", msg.Date), IsError: false}
}

// recordDayCompletion keeps the streak-marker set in sync with fetched state.
func (m *Model) recordDayCompletion(date string, detail model.DayDetail) {
	if detail.AllCompleted() {
		m.CompletedDates[date] = true
	} else {
		delete(m.CompletedDates, date)
	}
}

// dialogStatus classifies the dialog's date against today. Editability
// follows the status, not the hidden controls.
func (m Model) dialogStatus() model.DayStatus {
	year, month, currentDay := m.Today()
	if m.Calendar.Year != year || m.Calendar.Month != month {
		if m.Calendar.Year < year || (m.Calendar.Year == year && m.Calendar.Month < month) {
			return model.StatusFarPast
		}
		return model.StatusFuture
	}
	return model.ClassifyDay(m.Dialog.Day, currentDay)
}
