package api

import (
	"fmt"
	"time"

	"github.com/lucasvw/gameplan/internal/model"
	"github.com/lucasvw/gameplan/internal/reconcile"
)

// activityResponse is the wire shape of GET /api/activity.
type activityResponse struct {
	TimeToday *int `json:"timeToday"`
	TimeWeek  *int `json:"timeWeek"`
	TimeMonth *int `json:"timeMonth"`
	TimeYear  *int `json:"timeYear"`
}

func (r activityResponse) toSummary() (model.ActivitySummary, error) {
	if r.TimeToday == nil || r.TimeWeek == nil || r.TimeMonth == nil || r.TimeYear == nil {
		return model.ActivitySummary{}, fmt.Errorf("%w: activity response missing duration fields", ErrBadResponse)
	}
	return model.ActivitySummary{
		TodayMinutes: *r.TimeToday,
		WeekMinutes:  *r.TimeWeek,
		MonthMinutes: *r.TimeMonth,
		YearMinutes:  *r.TimeYear,
	}, nil
}

type logActivityRequest struct {
	MemberID string `json:"memberId"`
	Minutes  int    `json:"minutes"`
}

// dailyTasksResponse is the wire shape of GET /api/daily-tasks.
type dailyTasksResponse struct {
	Date           string  `json:"date"`
	Task1          *string `json:"task1"`
	Task2          *string `json:"task2"`
	Task3          *string `json:"task3"`
	Task1Completed bool    `json:"task1Completed"`
	Task2Completed bool    `json:"task2Completed"`
	Task3Completed bool    `json:"task3Completed"`
}

func (r dailyTasksResponse) toDetail(date string) (model.DayDetail, error) {
	if r.Task1 == nil || r.Task2 == nil || r.Task3 == nil {
		return model.DayDetail{}, fmt.Errorf("%w: daily tasks response missing task fields", ErrBadResponse)
	}
	detail := model.DayDetail{
		Date: date,
		Tasks: []model.DailyTask{
			{Number: 1, Description: *r.Task1, Completed: r.Task1Completed},
			{Number: 2, Description: *r.Task2, Completed: r.Task2Completed},
			{Number: 3, Description: *r.Task3, Completed: r.Task3Completed},
		},
	}
	if err := detail.Validate(); err != nil {
		return model.DayDetail{}, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	return detail, nil
}

type taskCompletionRequest struct {
	MemberID   string `json:"memberId"`
	TaskNumber int    `json:"taskNumber"`
	Completed  bool   `json:"completed"`
	Date       string `json:"date"`
}

// sessionRecord is one element of GET /api/sessions.
type sessionRecord struct {
	Day         int    `json:"day"`
	Month       int    `json:"month"`
	Year        int    `json:"year"`
	Time        string `json:"time"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (r sessionRecord) toSession() (reconcile.Session, error) {
	if r.Month < 1 || r.Month > 12 {
		return reconcile.Session{}, fmt.Errorf("%w: session month %d out of range", ErrBadResponse, r.Month)
	}
	if r.Day < 1 || r.Day > 31 {
		return reconcile.Session{}, fmt.Errorf("%w: session day %d out of range", ErrBadResponse, r.Day)
	}
	if r.Title == "" {
		return reconcile.Session{}, fmt.Errorf("%w: session title is required", ErrBadResponse)
	}
	return reconcile.Session{
		Day:         r.Day,
		Month:       time.Month(r.Month),
		Year:        r.Year,
		Time:        r.Time,
		Title:       r.Title,
		Description: r.Description,
	}, nil
}
