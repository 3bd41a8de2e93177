package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleActivityKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case m.Keys.Refresh:
		m.Status = StatusBar{Text: "refreshing activity", IsError: false}
		return m, m.fetchActivityCmd()
	}
	return m, nil
}

func (m *Model) applyActivity(msg ActivityFetchedMsg) {
	if msg.Err != nil {
		m.LastError = msg.Err
		m.Activity.Loaded = false
		m.Status = StatusBar{Text: "activity fetch failed", IsError: true}
		return
	}
	m.Activity.Summary = msg.Summary
	m.Activity.Loaded = true
	m.Status = StatusBar{Text: "activity updated", IsError: false}
}

// applyActivityLogged confirms a tracked-minutes POST and refetches the
// rolled-up windows so the gauges reflect it.
func (m *Model) applyActivityLogged(msg ActivityLoggedMsg) tea.Cmd {
	if msg.Err != nil {
		m.LastError = msg.Err
		m.Status = StatusBar{Text: "could not log activity", IsError: true}
		return nil
	}
	m.Status = StatusBar{Text: fmt.Sprintf("logged %d minutes", msg.Minutes), IsError: false}
	return m.fetchActivityCmd()
}
