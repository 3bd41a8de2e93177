package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/lucasvw/gameplan/internal/views"
)

type KeyBinding struct {
	Key    string
	Action string
}

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	return m.renderHelpView()
}

func (m Model) renderHelpView() string {
	bindings := m.helpBindings()
	var plain []string
	for _, kb := range m.tabBindings() {
		plain = append(plain, fmt.Sprintf("- %s: %s", kb.Key, kb.Action))
	}
	return views.RenderHelpPanel(views.HelpPanelData{
		CurrentTab: string(m.CurrentTab),
		Bindings:   plain,
		HelpView: m.helpModel.View(helpKeyMap{
			short: bindings,
			full:  [][]key.Binding{bindings},
		}),
	})
}

func (m Model) globalBindings() []KeyBinding {
	return []KeyBinding{
		{Key: m.Keys.Calendar, Action: "calendar tab"},
		{Key: m.Keys.Activity, Action: "activity tab"},
		{Key: "/", Action: "open command palette"},
		{Key: m.Keys.Help, Action: "toggle help panel"},
		{Key: m.Keys.Quit, Action: "quit"},
	}
}

func (m Model) tabBindings() []KeyBinding {
	if m.Dialog.Open {
		return []KeyBinding{
			{Key: "j/k", Action: "move task cursor"},
			{Key: "space/enter", Action: "toggle task (today only)"},
			{Key: "r", Action: "reload day"},
			{Key: "esc", Action: "close dialog"},
		}
	}
	switch m.CurrentTab {
	case TabActivity:
		return []KeyBinding{
			{Key: "r", Action: "refresh gauges"},
		}
	default:
		return []KeyBinding{
			{Key: "h/j/k/l", Action: "move day cursor"},
			{Key: "[/]", Action: "previous/next month"},
			{Key: "t", Action: "jump to today"},
			{Key: "enter", Action: "open day detail"},
			{Key: "r", Action: "refresh sessions"},
		}
	}
}

func (m Model) helpBindings() []key.Binding {
	out := make([]key.Binding, 0, len(m.globalBindings())+len(m.tabBindings()))
	for _, kb := range m.globalBindings() {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	for _, kb := range m.tabBindings() {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	return out
}
