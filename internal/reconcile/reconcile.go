// Package reconcile rebuilds the per-day event map for the displayed month.
// The map is a pure function of (year, month, session list): it is thrown
// away and rebuilt whole on every month change and every session fetch, so
// stale days can never leak across months.
package reconcile

import (
	"time"

	"github.com/lucasvw/gameplan/internal/model"
)

// Session is one remote coaching-session record. Day/Month/Year locate it on
// the calendar; records outside the displayed month are ignored.
type Session struct {
	Day         int
	Month       time.Month
	Year        int
	Time        string
	Title       string
	Description string
}

// DayEntry holds everything shown for one day of the displayed month.
type DayEntry struct {
	Quests []model.Quest
	Events []model.Event
}

// DayEvents maps day-of-month to its entry. Keys exist only for days within
// the displayed month (1..daysInMonth).
type DayEvents map[int]*DayEntry

// BuildDayEvents seeds every day of the month with its generated quests and
// merges in the sessions that fall inside the month. Sessions are additive:
// an empty or failed fetch still yields a fully quest-seeded map.
func BuildDayEvents(year int, month time.Month, sessions []Session) DayEvents {
	daysInMonth := model.DaysIn(year, month)
	out := make(DayEvents, daysInMonth)
	for day := 1; day <= daysInMonth; day++ {
		out[day] = &DayEntry{
			Quests: model.QuestsForDay(day),
			Events: []model.Event{},
		}
	}
	MergeSessions(out, year, month, sessions)
	return out
}

// MergeSessions appends the sessions belonging to the displayed month into
// their day entries. A record whose title and time already exist for that day
// is skipped, so merging the same fetch result twice changes nothing.
func MergeSessions(events DayEvents, year int, month time.Month, sessions []Session) {
	for _, s := range sessions {
		if s.Year != year || s.Month != month {
			continue
		}
		entry, ok := events[s.Day]
		if !ok {
			continue
		}
		candidate := model.Event{
			Title:       s.Title,
			Description: s.Description,
			Time:        s.Time,
			Type:        model.EventTypeSession,
		}
		if hasOccurrence(entry.Events, candidate) {
			continue
		}
		entry.Events = append(entry.Events, candidate)
	}
}

func hasOccurrence(events []model.Event, candidate model.Event) bool {
	for _, ev := range events {
		if ev.SameOccurrence(candidate) {
			return true
		}
	}
	return false
}
