package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lucasvw/gameplan/internal/scheduler"
	"github.com/lucasvw/gameplan/internal/views"
)

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.fetchSessionsCmd(m.Calendar.Year, m.Calendar.Month),
		m.fetchActivityCmd(),
	}
	if m.Scheduler != nil {
		cmds = append(cmds, waitForRefreshCmd(m.Scheduler.C()))
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		m.ensureCalendarState()

		if m.Palette.Active {
			if typed.String() == m.Keys.Help {
				m.HelpVisible = !m.HelpVisible
				return m, nil
			}
			return m.handlePaletteKey(typed)
		}

		keyStr := typed.String()
		switch keyStr {
		case "/":
			m.Palette.Active = true
			m.Palette.Input = ""
			m.commandInput.Focus()
			m.commandInput.SetValue("")
			m.Status = StatusBar{Text: "command palette active", IsError: false}
			return m, nil
		case m.Keys.Help:
			m.HelpVisible = !m.HelpVisible
			return m, nil
		case "ctrl+c":
			m.Quitting = true
			return m, tea.Quit
		}

		if m.Dialog.Open {
			return m.handleDialogKey(typed)
		}

		switch keyStr {
		case m.Keys.Calendar:
			m.CurrentTab = TabCalendar
			return m, nil
		case m.Keys.Activity:
			m.CurrentTab = TabActivity
			if !m.Activity.Loaded {
				return m, m.fetchActivityCmd()
			}
			return m, nil
		case m.Keys.Quit:
			m.Quitting = true
			return m, tea.Quit
		}

		if m.CurrentTab == TabActivity {
			return m.handleActivityKey(typed)
		}
		return m.handleCalendarKey(typed)

	case spinner.TickMsg:
		if m.Dialog.Open && m.Dialog.Loading {
			var cmd tea.Cmd
			m.dialogSpinner, cmd = m.dialogSpinner.Update(typed)
			return m, cmd
		}
		return m, nil

	case SwitchTabMsg:
		if typed.Tab == TabCalendar || typed.Tab == TabActivity {
			m.CurrentTab = typed.Tab
		}
		return m, nil

	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil

	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil

	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
		}
		return m, nil

	case SessionsFetchedMsg:
		m.applySessions(typed)
		return m, nil

	case DayDetailMsg:
		m.applyDayDetail(typed)
		return m, nil

	case ActivityFetchedMsg:
		m.applyActivity(typed)
		return m, nil

	case TaskSavedMsg:
		cmd := m.applyTaskSaved(typed)
		return m, cmd

	case ActivityLoggedMsg:
		cmd := m.applyActivityLogged(typed)
		return m, cmd

	case RefreshDueMsg:
		cmd := m.applyRefreshEvent(typed.Event)
		if m.Scheduler != nil {
			return m, tea.Batch(cmd, waitForRefreshCmd(m.Scheduler.C()))
		}
		return m, cmd
	}

	return m, nil
}

// applyRefreshEvent dispatches one scheduler fire. The rotation check runs
// every minute but only rotates once per day; the task poll refetches today's
// state regardless of what is on screen.
func (m *Model) applyRefreshEvent(ev scheduler.RefreshEvent) tea.Cmd {
	switch ev.Kind {
	case scheduler.KindRotationCheck:
		m.advanceCoachPrompt()
		if m.rotateContentIfDue() {
			m.Status = StatusBar{Text: "daily content rotated", IsError: false}
		}
		return nil
	case scheduler.KindTaskPoll:
		cmds := []tea.Cmd{m.fetchDayDetailCmd(m.TodayISO()), m.fetchActivityCmd()}
		return tea.Batch(cmds...)
	case scheduler.KindSessionRefresh:
		return m.fetchSessionsCmd(m.Calendar.Year, m.Calendar.Month)
	}
	return nil
}

func (m Model) View() string {
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	leftPane := ""
	rightPane := ""
	switch m.CurrentTab {
	case TabActivity:
		leftPane = m.renderActivityPanel()
		rightPane = m.renderContentCards() + m.renderHelpIfVisible()
	default:
		leftPane = m.renderCalendarPanel()
		if m.Dialog.Open {
			rightPane = m.renderDayDialog()
		} else {
			rightPane = m.renderContentCards()
		}
		rightPane += m.renderCommandPalette() + m.renderHelpIfVisible()
	}

	return views.RenderDashboard(views.DashboardData{
		Header:     m.renderHeader(),
		LeftPane:   leftPane,
		RightPane:  rightPane,
		StatusLine: status,
		Footer: fmt.Sprintf("keys: %s calendar | %s activity | [/] month | t today | enter open day | / cmd | %s help | %s quit",
			m.Keys.Calendar, m.Keys.Activity, m.Keys.Help, m.Keys.Quit),
	})
}
