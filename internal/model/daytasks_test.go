package model

import (
	"errors"
	"testing"
)

func validDetail() DayDetail {
	return DayDetail{
		Date: "2025-01-26",
		Tasks: []DailyTask{
			{Number: 1, Description: "Make 50 cold calls"},
			{Number: 2, Description: "Follow up with 20 leads"},
			{Number: 3, Description: "Schedule 5 meetings"},
		},
	}
}

func TestDayDetailValidate(t *testing.T) {
	if err := validDetail().Validate(); err != nil {
		t.Fatalf("expected valid detail, got %v", err)
	}

	bad := validDetail()
	bad.Date = "26-01-2025"
	if err := bad.Validate(); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}

	bad = validDetail()
	bad.Tasks = bad.Tasks[:2]
	if err := bad.Validate(); err == nil {
		t.Fatal("expected error for wrong task count")
	}

	bad = validDetail()
	bad.Tasks[1].Number = 7
	if err := bad.Validate(); !errors.Is(err, ErrInvalidTaskNumber) {
		t.Fatalf("expected ErrInvalidTaskNumber, got %v", err)
	}
}

func TestDayDetailAllCompleted(t *testing.T) {
	d := validDetail()
	if d.AllCompleted() {
		t.Fatal("fresh detail should not be all-completed")
	}
	for i := range d.Tasks {
		d.Tasks[i].Completed = true
	}
	if !d.AllCompleted() {
		t.Fatal("expected all-completed after marking every task")
	}
	if (DayDetail{}).AllCompleted() {
		t.Fatal("empty detail should not count as all-completed")
	}
}

func TestDayDetailSetCompletedDoesNotMutateReceiver(t *testing.T) {
	d := validDetail()
	updated := d.SetCompleted(2, true)

	if task, _ := d.Task(2); task.Completed {
		t.Fatal("receiver should be unchanged")
	}
	task, ok := updated.Task(2)
	if !ok || !task.Completed {
		t.Fatalf("expected task 2 completed in copy, got %+v", task)
	}

	reverted := updated.SetCompleted(2, false)
	if task, _ := reverted.Task(2); task.Completed {
		t.Fatal("expected task 2 incomplete after revert")
	}
}
