package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidTaskNumber = errors.New("model: task number must be 1..3")
	ErrInvalidDate       = errors.New("model: date must be YYYY-MM-DD")
)

// DailyTaskCount is the fixed number of coached daily tasks per date.
const DailyTaskCount = 3

// DailyTask is one of the three remote-backed tasks for a date.
type DailyTask struct {
	Number      int
	Description string
	Completed   bool
}

// DayDetail is the authoritative per-date task state fetched from the remote
// backend, cached locally between fetches.
type DayDetail struct {
	Date  string
	Tasks []DailyTask
}

func (d DayDetail) Validate() error {
	if err := ValidateISODate(d.Date); err != nil {
		return err
	}
	if len(d.Tasks) != DailyTaskCount {
		return fmt.Errorf("model: expected %d tasks, got %d", DailyTaskCount, len(d.Tasks))
	}
	for _, t := range d.Tasks {
		if t.Number < 1 || t.Number > DailyTaskCount {
			return fmt.Errorf("%w: got %d", ErrInvalidTaskNumber, t.Number)
		}
	}
	return nil
}

// AllCompleted reports whether every task for the date is done. This drives
// the green streak marker on the calendar.
func (d DayDetail) AllCompleted() bool {
	if len(d.Tasks) == 0 {
		return false
	}
	for _, t := range d.Tasks {
		if !t.Completed {
			return false
		}
	}
	return true
}

// Task returns the task with the given number, if present.
func (d DayDetail) Task(number int) (DailyTask, bool) {
	for _, t := range d.Tasks {
		if t.Number == number {
			return t, true
		}
	}
	return DailyTask{}, false
}

// SetCompleted returns a copy of the detail with one task's completion
// flipped to the given value. The receiver is not modified.
func (d DayDetail) SetCompleted(number int, completed bool) DayDetail {
	out := DayDetail{Date: d.Date, Tasks: make([]DailyTask, len(d.Tasks))}
	copy(out.Tasks, d.Tasks)
	for i := range out.Tasks {
		if out.Tasks[i].Number == number {
			out.Tasks[i].Completed = completed
		}
	}
	return out
}

func ValidateISODate(date string) error {
	if strings.TrimSpace(date) == "" {
		return fmt.Errorf("%w: empty", ErrInvalidDate)
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return nil
}
