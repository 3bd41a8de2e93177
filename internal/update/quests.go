package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lucasvw/gameplan/internal/model"
)

// planDays is the length of the game plan the header progress bar tracks.
const planDays = 90

// toggleSelectedTask flips the task under the dialog cursor. The mutation is
// optimistic: local state changes immediately, the POST follows, and a failed
// POST is repaired by refetching authoritative state for that date. Any date
// other than today is a no-op.
func (m Model) toggleSelectedTask() (Model, tea.Cmd) {
	if !m.Dialog.Open || !m.Dialog.HasDetail {
		return m, nil
	}
	if m.Dialog.Date != m.TodayISO() || !m.dialogStatus().Mutable() {
		m.Status = StatusBar{Text: "only today's tasks can be changed", IsError: false}
		return m, nil
	}

	number := m.Dialog.TaskCursor + 1
	task, ok := m.Dialog.Detail.Task(number)
	if !ok {
		return m, nil
	}
	completed := !task.Completed

	detail := m.Dialog.Detail.SetCompleted(number, completed)
	m.Dialog.Detail = detail
	m.setQuestCompleted(model.QuestID(m.Dialog.Day, number), completed)
	m.recordDayCompletion(m.Dialog.Date, detail)

	m.Status = StatusBar{Text: fmt.Sprintf("task %d %s", number, completedWord(completed)), IsError: false}
	return m, m.saveTaskCmd(m.Dialog.Date, number, completed)
}

// applyTaskSaved handles the POST result. Success needs nothing further; a
// failure refetches the date instead of replaying the inverse toggle, so a
// concurrent mutation elsewhere cannot be clobbered.
func (m *Model) applyTaskSaved(msg TaskSavedMsg) tea.Cmd {
	if msg.Err == nil {
		return nil
	}
	m.LastError = msg.Err
	m.Status = StatusBar{Text: fmt.Sprintf("save failed for task %d, reloading %s", msg.TaskNumber, msg.Date), IsError: true}
	if m.Dialog.Open && m.Dialog.Date == msg.Date {
		m.Dialog.Loading = true
		return tea.Batch(m.dialogSpinner.Tick, m.fetchDayDetailCmd(msg.Date))
	}
	return m.fetchDayDetailCmd(msg.Date)
}

func (m *Model) setQuestCompleted(id string, completed bool) {
	if m.CompletedQuests == nil {
		m.CompletedQuests = make(map[string]bool)
	}
	if completed {
		m.CompletedQuests[id] = true
	} else {
		delete(m.CompletedQuests, id)
	}
	if m.kv != nil {
		_ = m.kv.SaveCompletedQuestIDs(m.CompletedQuests)
	}
}

// ProgressRatio is the overall plan progress shown in the header: completed
// quests against the full 90-day plan.
func (m Model) ProgressRatio() float64 {
	total := planDays * model.QuestsPerDay
	done := 0
	for _, ok := range m.CompletedQuests {
		if ok {
			done++
		}
	}
	ratio := float64(done) / float64(total)
	if ratio > 1 {
		ratio = 1
	}
	return ratio
}

// streakDay reports whether a day of the displayed month renders as a streak
// cell (all three tasks done that date).
func (m Model) streakDay(day int) bool {
	return m.CompletedDates[model.ISODate(m.Calendar.Year, m.Calendar.Month, day)]
}

func completedWord(completed bool) string {
	if completed {
		return "completed"
	}
	return "reopened"
}
