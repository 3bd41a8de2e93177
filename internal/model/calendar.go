package model

import "time"

// GridSize is the fixed cell count of the month grid: six full weeks, so the
// layout never reflows when navigating between short and long months.
const GridSize = 42

// CalendarDay is one cell of the 42-cell month grid. Cells padded from the
// adjacent months carry InCurrentMonth=false and render dimmed.
type CalendarDay struct {
	Day            int
	InCurrentMonth bool
}

// DaysIn returns the number of days in the given month, via calendar
// arithmetic so leap-year February comes out right.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthGrid produces the 42 cells for a month, ordered left-to-right,
// top-to-bottom starting Sunday: the trailing days of the previous month
// first, then every day of the target month, then leading days of the next
// month up to 42.
func MonthGrid(year int, month time.Month) []CalendarDay {
	daysInMonth := DaysIn(year, month)
	firstWeekday := int(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday())
	prevMonthDays := time.Date(year, month, 0, 0, 0, 0, 0, time.UTC).Day()

	grid := make([]CalendarDay, 0, GridSize)
	for i := firstWeekday - 1; i >= 0; i-- {
		grid = append(grid, CalendarDay{Day: prevMonthDays - i})
	}
	for d := 1; d <= daysInMonth; d++ {
		grid = append(grid, CalendarDay{Day: d, InCurrentMonth: true})
	}
	for d := 1; len(grid) < GridSize; d++ {
		grid = append(grid, CalendarDay{Day: d})
	}
	return grid
}

type DayStatus string

const (
	StatusFarPast    DayStatus = "far-past"
	StatusRecentPast DayStatus = "recent-past"
	StatusPresent    DayStatus = "present"
	StatusFuture     DayStatus = "future"
)

// ClassifyDay buckets a day of the displayed month relative to today's day
// number. The recent-past window is exactly five days: day currentDay-5 is
// still recent-past, day currentDay-6 is far-past. The strict `<` on the
// far-past cutoff is intentional and load-bearing for rendering.
func ClassifyDay(day, currentDay int) DayStatus {
	switch {
	case day < currentDay-5:
		return StatusFarPast
	case day < currentDay:
		return StatusRecentPast
	case day == currentDay:
		return StatusPresent
	default:
		return StatusFuture
	}
}

// Mutable reports whether completion state may be changed for a day with the
// given status. Only the present day is writable; past days are read-only
// history and future days are locked.
func (s DayStatus) Mutable() bool {
	return s == StatusPresent
}

// ISODate formats a (year, month, day) triple as the wire date string used
// by the remote API and the local caches.
func ISODate(year int, month time.Month, day int) string {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
}
