package storage

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/lucasvw/gameplan/internal/model"
)

func setupRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "gameplan-test.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := MigrateUp(db); err != nil {
		t.Fatalf("migrate up: %v", err)
	}

	repo, err := NewSQLiteRepository(db)
	if err != nil {
		t.Fatalf("new repo: %v", err)
	}
	return repo
}

func sampleRow(date string, allDone bool) DayDetailRow {
	return DayDetailRow{
		MemberID:  "member-1",
		Date:      date,
		Task1:     "Make 50 cold calls",
		Task2:     "Follow up with 20 leads",
		Task3:     "Schedule 5 meetings",
		Task1Done: allDone,
		Task2Done: allDone,
		Task3Done: allDone,
		FetchedAt: time.Date(2025, 1, 26, 9, 0, 0, 0, time.UTC),
	}
}

func TestDayDetailUpsertAndGet(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	row := sampleRow("2025-01-26", false)
	if err := repo.UpsertDayDetail(ctx, row); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	got, err := repo.GetDayDetail(ctx, "member-1", "2025-01-26")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Task1 != row.Task1 || got.Task1Done {
		t.Fatalf("unexpected row: %#v", got)
	}
	if !got.FetchedAt.Equal(row.FetchedAt) {
		t.Fatalf("fetched_at mismatch: %v vs %v", got.FetchedAt, row.FetchedAt)
	}

	// Upsert with the same key replaces, not duplicates.
	row.Task2Done = true
	if err := repo.UpsertDayDetail(ctx, row); err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	got, err = repo.GetDayDetail(ctx, "member-1", "2025-01-26")
	if err != nil {
		t.Fatalf("get after upsert: %v", err)
	}
	if !got.Task2Done || got.Task3Done {
		t.Fatalf("unexpected row after upsert: %#v", got)
	}
}

func TestGetDayDetailNotFound(t *testing.T) {
	repo := setupRepo(t)
	_, err := repo.GetDayDetail(context.Background(), "member-1", "2025-01-01")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListCompletedDatesFiltersMemberAndMonth(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	for _, row := range []DayDetailRow{
		sampleRow("2025-01-06", true),
		sampleRow("2025-01-07", true),
		sampleRow("2025-01-08", false),
		sampleRow("2025-02-01", true),
	} {
		if err := repo.UpsertDayDetail(ctx, row); err != nil {
			t.Fatalf("upsert %s: %v", row.Date, err)
		}
	}
	other := sampleRow("2025-01-09", true)
	other.MemberID = "member-2"
	if err := repo.UpsertDayDetail(ctx, other); err != nil {
		t.Fatalf("upsert other member: %v", err)
	}

	dates, err := repo.ListCompletedDates(ctx, DayDetailFilter{MemberID: "member-1", Year: 2025, Month: time.January})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(dates) != 2 || dates[0] != "2025-01-06" || dates[1] != "2025-01-07" {
		t.Fatalf("unexpected dates: %v", dates)
	}
}

func TestRowDetailRoundTrip(t *testing.T) {
	detail := model.DayDetail{
		Date: "2025-01-26",
		Tasks: []model.DailyTask{
			{Number: 1, Description: "a", Completed: true},
			{Number: 2, Description: "b"},
			{Number: 3, Description: "c", Completed: true},
		},
	}
	row := RowFromDetail("member-1", detail, time.Now())
	back := row.ToDetail()
	if back.Date != detail.Date {
		t.Fatalf("date mismatch: %s", back.Date)
	}
	for i := range detail.Tasks {
		if back.Tasks[i] != detail.Tasks[i] {
			t.Fatalf("task %d mismatch: %+v vs %+v", i, back.Tasks[i], detail.Tasks[i])
		}
	}
}

func TestActivityLogSyncLifecycle(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	logged := time.Date(2025, 1, 26, 14, 30, 0, 0, time.UTC)

	id, err := repo.AppendActivity(ctx, ActivityEntry{MemberID: "member-1", Minutes: 45, LoggedAt: logged})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if _, err := repo.AppendActivity(ctx, ActivityEntry{MemberID: "member-1", Minutes: 10, LoggedAt: logged.Add(time.Hour), Synced: true}); err != nil {
		t.Fatalf("append synced: %v", err)
	}

	unsynced, err := repo.ListUnsyncedActivity(ctx, "member-1")
	if err != nil {
		t.Fatalf("list unsynced: %v", err)
	}
	if len(unsynced) != 1 || unsynced[0].ID != id || unsynced[0].Minutes != 45 {
		t.Fatalf("unexpected unsynced entries: %#v", unsynced)
	}
	if !unsynced[0].LoggedAt.Equal(logged) {
		t.Fatalf("logged_at mismatch: %v", unsynced[0].LoggedAt)
	}

	if err := repo.MarkActivitySynced(ctx, id); err != nil {
		t.Fatalf("mark synced: %v", err)
	}
	unsynced, err = repo.ListUnsyncedActivity(ctx, "member-1")
	if err != nil {
		t.Fatalf("list after sync: %v", err)
	}
	if len(unsynced) != 0 {
		t.Fatalf("expected no unsynced entries, got %d", len(unsynced))
	}

	if err := repo.MarkActivitySynced(ctx, 9999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown id, got %v", err)
	}
}
