package model

import (
	"testing"
	"time"
)

func TestMonthGridAlwaysHas42Cells(t *testing.T) {
	for year := 2023; year <= 2026; year++ {
		for month := time.January; month <= time.December; month++ {
			grid := MonthGrid(year, month)
			if len(grid) != GridSize {
				t.Fatalf("%d-%s: expected %d cells, got %d", year, month, GridSize, len(grid))
			}
			current := 0
			for _, cell := range grid {
				if cell.InCurrentMonth {
					current++
				}
			}
			if current != DaysIn(year, month) {
				t.Fatalf("%d-%s: expected %d current-month cells, got %d", year, month, DaysIn(year, month), current)
			}
		}
	}
}

func TestMonthGridStartsOnSunday(t *testing.T) {
	// March 2025 starts on a Saturday, so six previous-month cells lead.
	grid := MonthGrid(2025, time.March)
	for i := 0; i < 6; i++ {
		if grid[i].InCurrentMonth {
			t.Fatalf("cell %d should belong to February, got current-month day %d", i, grid[i].Day)
		}
	}
	if !grid[6].InCurrentMonth || grid[6].Day != 1 {
		t.Fatalf("cell 6 should be March 1, got %+v", grid[6])
	}
}

func TestMonthGridNoLeadingCellsWhenMonthStartsSunday(t *testing.T) {
	// June 2025 starts on a Sunday.
	grid := MonthGrid(2025, time.June)
	if !grid[0].InCurrentMonth || grid[0].Day != 1 {
		t.Fatalf("expected grid to open with June 1, got %+v", grid[0])
	}
}

func TestDaysInFebruaryLeapYears(t *testing.T) {
	if got := DaysIn(2024, time.February); got != 29 {
		t.Fatalf("Feb 2024: expected 29 days, got %d", got)
	}
	if got := DaysIn(2023, time.February); got != 28 {
		t.Fatalf("Feb 2023: expected 28 days, got %d", got)
	}

	leapGrid := MonthGrid(2024, time.February)
	count := 0
	for _, cell := range leapGrid {
		if cell.InCurrentMonth {
			count++
		}
	}
	if count != 29 {
		t.Fatalf("Feb 2024 grid: expected 29 current-month cells, got %d", count)
	}
}

func TestClassifyDayBoundaries(t *testing.T) {
	const currentDay = 26
	cases := []struct {
		day  int
		want DayStatus
	}{
		{day: 1, want: StatusFarPast},
		{day: 20, want: StatusFarPast},
		{day: 21, want: StatusRecentPast}, // currentDay-5 is still recent
		{day: 25, want: StatusRecentPast},
		{day: 26, want: StatusPresent},
		{day: 27, want: StatusFuture},
		{day: 31, want: StatusFuture},
	}
	for _, tc := range cases {
		if got := ClassifyDay(tc.day, currentDay); got != tc.want {
			t.Fatalf("ClassifyDay(%d, %d): expected %s, got %s", tc.day, currentDay, tc.want, got)
		}
	}
}

func TestClassifyDayIsMonotonic(t *testing.T) {
	order := map[DayStatus]int{
		StatusFarPast:    0,
		StatusRecentPast: 1,
		StatusPresent:    2,
		StatusFuture:     3,
	}
	for currentDay := 1; currentDay <= 31; currentDay++ {
		prev := -1
		for day := 1; day <= 31; day++ {
			rank := order[ClassifyDay(day, currentDay)]
			if rank < prev {
				t.Fatalf("currentDay=%d: status rank moved backward at day %d", currentDay, day)
			}
			prev = rank
		}
	}
}

func TestOnlyPresentIsMutable(t *testing.T) {
	for _, status := range []DayStatus{StatusFarPast, StatusRecentPast, StatusFuture} {
		if status.Mutable() {
			t.Fatalf("status %s should not be mutable", status)
		}
	}
	if !StatusPresent.Mutable() {
		t.Fatal("present status should be mutable")
	}
}

func TestISODate(t *testing.T) {
	if got := ISODate(2025, time.January, 26); got != "2025-01-26" {
		t.Fatalf("expected 2025-01-26, got %s", got)
	}
	if got := ISODate(2024, time.February, 29); got != "2024-02-29" {
		t.Fatalf("expected 2024-02-29, got %s", got)
	}
}
