package storage

import (
	"time"

	"github.com/lucasvw/gameplan/internal/model"
)

// DayDetailRow is the cached copy of one remote daily-task record. The
// backend stays authoritative; rows here are what the dashboard degrades to
// when a fetch fails, and what seeds the streak markers on startup.
type DayDetailRow struct {
	MemberID  string
	Date      string
	Task1     string
	Task2     string
	Task3     string
	Task1Done bool
	Task2Done bool
	Task3Done bool
	FetchedAt time.Time
}

func (r DayDetailRow) ToDetail() model.DayDetail {
	return model.DayDetail{
		Date: r.Date,
		Tasks: []model.DailyTask{
			{Number: 1, Description: r.Task1, Completed: r.Task1Done},
			{Number: 2, Description: r.Task2, Completed: r.Task2Done},
			{Number: 3, Description: r.Task3, Completed: r.Task3Done},
		},
	}
}

// RowFromDetail flattens a validated detail into its cached form.
func RowFromDetail(memberID string, detail model.DayDetail, fetchedAt time.Time) DayDetailRow {
	row := DayDetailRow{MemberID: memberID, Date: detail.Date, FetchedAt: fetchedAt}
	for _, task := range detail.Tasks {
		switch task.Number {
		case 1:
			row.Task1, row.Task1Done = task.Description, task.Completed
		case 2:
			row.Task2, row.Task2Done = task.Description, task.Completed
		case 3:
			row.Task3, row.Task3Done = task.Description, task.Completed
		}
	}
	return row
}

// ActivityEntry is one locally logged block of tracked minutes. Entries are
// written before the remote POST so tracked time is never lost; Synced flips
// once the backend acknowledges the entry.
type ActivityEntry struct {
	ID       int64
	MemberID string
	Minutes  int
	LoggedAt time.Time
	Synced   bool
}

// DayDetailFilter scopes completed-date listings to one member and month.
type DayDetailFilter struct {
	MemberID string
	Year     int
	Month    time.Month
}
