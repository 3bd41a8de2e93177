package model

import "errors"

var ErrInvalidActivityWindow = errors.New("model: invalid activity window")

type ActivityWindow string

const (
	WindowToday ActivityWindow = "today"
	WindowWeek  ActivityWindow = "week"
	WindowMonth ActivityWindow = "month"
	WindowYear  ActivityWindow = "year"
)

// ActivityWindows lists the four trailing windows in display order.
var ActivityWindows = []ActivityWindow{WindowToday, WindowWeek, WindowMonth, WindowYear}

func (w ActivityWindow) IsValid() bool {
	switch w {
	case WindowToday, WindowWeek, WindowMonth, WindowYear:
		return true
	default:
		return false
	}
}

func (w ActivityWindow) Label() string {
	switch w {
	case WindowToday:
		return "TODAY"
	case WindowWeek:
		return "THIS WEEK"
	case WindowMonth:
		return "THIS MONTH"
	case WindowYear:
		return "THIS YEAR"
	default:
		return string(w)
	}
}

// CeilingMinutes returns the policy ceiling that counts as "100% full" for a
// window. These are product constants, not derived values: changing one
// rescales the gauge without touching any fetch or aggregation logic.
func (w ActivityWindow) CeilingMinutes() int {
	switch w {
	case WindowToday:
		return 120
	case WindowWeek:
		return 840
	case WindowMonth:
		return 3600
	case WindowYear:
		return 43800
	default:
		return 0
	}
}

// ActivityPercent converts tracked minutes into a gauge percentage for a
// window, clamped to [0,100].
func ActivityPercent(minutes int, window ActivityWindow) int {
	ceiling := window.CeilingMinutes()
	if ceiling <= 0 || minutes <= 0 {
		return 0
	}
	pct := minutes * 100 / ceiling
	if pct > 100 {
		return 100
	}
	return pct
}

// ActivitySummary holds the rolled-up tracked minutes for the four trailing
// windows, as returned by the remote API.
type ActivitySummary struct {
	TodayMinutes int
	WeekMinutes  int
	MonthMinutes int
	YearMinutes  int
}

func (s ActivitySummary) Minutes(window ActivityWindow) int {
	switch window {
	case WindowToday:
		return s.TodayMinutes
	case WindowWeek:
		return s.WeekMinutes
	case WindowMonth:
		return s.MonthMinutes
	case WindowYear:
		return s.YearMinutes
	default:
		return 0
	}
}
