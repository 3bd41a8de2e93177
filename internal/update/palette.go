package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lucasvw/gameplan/internal/commands"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Palette.Active = false
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Blur()
		m.Status = StatusBar{Text: "command palette closed", IsError: false}
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		return m.executePaletteCommand()
	default:
		if msg.Type == tea.KeyRunes {
			m.commandInput.SetValue(m.commandInput.Value() + string(msg.Runes))
			m.Palette.Input = m.commandInput.Value()
			return m, nil
		}
		var cmd tea.Cmd
		m.commandInput, cmd = m.commandInput.Update(msg)
		_ = cmd
		m.Palette.Input = m.commandInput.Value()
	}
	return m, nil
}

func (m Model) executePaletteCommand() (Model, tea.Cmd) {
	raw := strings.TrimSpace(m.Palette.Input)
	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")

	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}

	var teaCmd tea.Cmd
	res, err := commands.Execute(cmd, commands.Handlers{
		Goto: func(a commands.GotoArgs) (commands.Result, error) {
			m.CurrentTab = TabCalendar
			teaCmd = m.showMonth(a.Year, a.Month)
			return commands.Result{Message: fmt.Sprintf("jumped to %s %d", a.Month, a.Year)}, nil
		},
		Member: func(a commands.MemberArgs) (commands.Result, error) {
			if m.api != nil {
				m.api.SetMember(a.ID)
			}
			if m.kv != nil {
				_ = m.kv.SaveMemberID(a.ID)
			}
			teaCmd = tea.Batch(
				m.fetchSessionsCmd(m.Calendar.Year, m.Calendar.Month),
				m.fetchActivityCmd(),
			)
			return commands.Result{Message: fmt.Sprintf("member set to %s", a.ID)}, nil
		},
		Refresh: func(a commands.RefreshArgs) (commands.Result, error) {
			teaCmd = m.refreshCmdFor(a.Subject)
			return commands.Result{Message: fmt.Sprintf("refreshing %s", a.Subject)}, nil
		},
		Track: func(a commands.TrackArgs) (commands.Result, error) {
			teaCmd = m.logActivityCmd(a.Minutes)
			return commands.Result{Message: fmt.Sprintf("logging %d minutes", a.Minutes)}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}
	m.Status = StatusBar{Text: res.Message, IsError: false}
	return m, teaCmd
}

func (m *Model) refreshCmdFor(subject string) tea.Cmd {
	switch subject {
	case "sessions":
		return m.fetchSessionsCmd(m.Calendar.Year, m.Calendar.Month)
	case "tasks":
		return m.fetchDayDetailCmd(m.TodayISO())
	case "activity":
		return m.fetchActivityCmd()
	case "content":
		m.refreshContent()
		return nil
	default:
		m.refreshContent()
		return tea.Batch(
			m.fetchSessionsCmd(m.Calendar.Year, m.Calendar.Month),
			m.fetchDayDetailCmd(m.TodayISO()),
			m.fetchActivityCmd(),
		)
	}
}
