package update

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/lucasvw/gameplan/internal/model"
	"github.com/lucasvw/gameplan/internal/reconcile"
	"github.com/lucasvw/gameplan/internal/scheduler"
	"github.com/lucasvw/gameplan/internal/store"
)

type Tab string

const (
	TabCalendar Tab = "Calendar"
	TabActivity Tab = "Activity"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Calendar string
	Activity string
	Refresh  string
	Help     string
	Quit     string
}

// CalendarState is the visible month: its 42-cell grid, the reconciled
// per-day event map, and the grid cursor.
type CalendarState struct {
	Year   int
	Month  time.Month
	Grid   []model.CalendarDay
	Events reconcile.DayEvents
	Cursor int
}

// DialogState is the day-detail dialog. Date is built from the displayed
// month/year plus the selected day, not from today, so detail fetches follow
// month navigation.
type DialogState struct {
	Open       bool
	Day        int
	Date       string
	Detail     model.DayDetail
	HasDetail  bool
	Loading    bool
	TaskCursor int
}

type ActivityState struct {
	Summary model.ActivitySummary
	Loaded  bool
}

// ContentState holds the rotating daily content: quote and insight cards plus
// the cycling coach prompt. LastRotated gates the once-per-day rotation.
type ContentState struct {
	Quote       store.CachedContent
	Insight     store.CachedContent
	PromptIndex int
	LastRotated time.Time
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type Model struct {
	CurrentTab Tab
	Calendar   CalendarState
	Dialog     DialogState
	Activity   ActivityState
	Content    ContentState

	// CompletedQuests is the persisted quest-id set; CompletedDates marks ISO
	// dates whose three daily tasks are all done (the streak markers).
	CompletedQuests map[string]bool
	CompletedDates  map[string]bool

	Scheduler   *scheduler.Engine
	Palette     CommandPaletteState
	HelpVisible bool
	Status      StatusBar
	Keys        GlobalKeyMap
	Quitting    bool
	LastError   error

	api RemoteAPI
	kv  store.KV
	now func() time.Time

	commandInput  textinput.Model
	dialogSpinner spinner.Model
	headerGauge   progress.Model
	helpModel     help.Model
}

type SwitchTabMsg struct {
	Tab Tab
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

// SessionsFetchedMsg carries the month/year the fetch was issued for; the
// update loop discards it if the user has navigated away in the meantime.
type SessionsFetchedMsg struct {
	Year     int
	Month    time.Month
	Sessions []reconcile.Session
	Err      error
}

// DayDetailMsg is tagged with the ISO date it was fetched for and discarded
// unless the dialog is still open on that date.
type DayDetailMsg struct {
	Date   string
	Detail model.DayDetail
	Err    error
}

type ActivityFetchedMsg struct {
	Summary model.ActivitySummary
	Err     error
}

type TaskSavedMsg struct {
	Date       string
	TaskNumber int
	Completed  bool
	Err        error
}

type ActivityLoggedMsg struct {
	Minutes int
	Err     error
}

type RefreshDueMsg struct {
	Event scheduler.RefreshEvent
}

func NewModel(api RemoteAPI, kv store.KV) Model {
	return newModel(api, kv, time.Now)
}

func NewModelWithScheduler(api RemoteAPI, kv store.KV, engine *scheduler.Engine) Model {
	m := NewModel(api, kv)
	m.Scheduler = engine
	return m
}

// NewModelWithClock injects a clock so rotation and day-status logic can be
// driven by tests.
func NewModelWithClock(api RemoteAPI, kv store.KV, now func() time.Time) Model {
	return newModel(api, kv, now)
}

func newModel(api RemoteAPI, kv store.KV, clock func() time.Time) Model {
	m := Model{
		CurrentTab:      TabCalendar,
		CompletedQuests: make(map[string]bool),
		CompletedDates:  make(map[string]bool),
		api:             api,
		kv:              kv,
		now:             clock,
		Keys: GlobalKeyMap{
			Calendar: "1",
			Activity: "2",
			Refresh:  "r",
			Help:     "?",
			Quit:     "q",
		},
	}
	m.initBubbleComponents()

	now := m.now()
	m.Calendar.Year = now.Year()
	m.Calendar.Month = now.Month()
	m.Calendar.Grid = model.MonthGrid(m.Calendar.Year, m.Calendar.Month)
	m.Calendar.Events = reconcile.BuildDayEvents(m.Calendar.Year, m.Calendar.Month, nil)
	m.Calendar.Cursor = cursorForDay(m.Calendar.Grid, now.Day())

	if kv != nil {
		if completed, err := kv.CompletedQuestIDs(); err == nil {
			m.CompletedQuests = completed
		}
		if quote, err := kv.Quote(); err == nil {
			m.Content.Quote = quote
			m.Content.LastRotated = quote.FetchedAt
		}
		if insight, err := kv.Insight(); err == nil {
			m.Content.Insight = insight
		}
	}
	if m.Content.Quote.Text == "" {
		m.Content.Quote = quoteForDay(now)
		m.Content.Insight = insightForDay(now)
	}
	return m
}

func (m *Model) initBubbleComponents() {
	input := textinput.New()
	input.Placeholder = "goto 2025-01 | member <id> | refresh | track <minutes>"
	input.CharLimit = 120
	m.commandInput = input

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	m.dialogSpinner = sp

	m.headerGauge = progress.New(progress.WithDefaultGradient())
	m.headerGauge.Width = 30

	m.helpModel = help.New()
}

// cursorForDay finds the grid index of a current-month day.
func cursorForDay(grid []model.CalendarDay, day int) int {
	for i, cell := range grid {
		if cell.InCurrentMonth && cell.Day == day {
			return i
		}
	}
	return 0
}

// WithCompletedDates seeds the streak markers from cached state, so the
// calendar shows history before the first remote fetch lands.
func (m Model) WithCompletedDates(dates []string) Model {
	for _, date := range dates {
		m.CompletedDates[date] = true
	}
	return m
}

// Today reports the real current date, independent of the displayed month.
func (m Model) Today() (int, time.Month, int) {
	now := m.now()
	return now.Year(), now.Month(), now.Day()
}

// TodayISO is the ISO date mutations are permitted on.
func (m Model) TodayISO() string {
	year, month, day := m.Today()
	return model.ISODate(year, month, day)
}
