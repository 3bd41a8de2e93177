package storage

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"
)

func TestMigrateRoundTripCompatibility(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "migrate-roundtrip.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := MigrateUp(db); err != nil {
		t.Fatalf("first migrate up failed: %v", err)
	}

	if err := MigrateDown(db); err != nil {
		t.Fatalf("migrate down failed: %v", err)
	}

	if err := MigrateUp(db); err != nil {
		t.Fatalf("second migrate up failed: %v", err)
	}

	repo, err := NewSQLiteRepository(db)
	if err != nil {
		t.Fatalf("new repo: %v", err)
	}

	row := DayDetailRow{
		MemberID:  "member-rt",
		Date:      "2025-01-26",
		Task1:     "roundtrip",
		FetchedAt: time.Date(2025, 1, 26, 12, 0, 0, 0, time.UTC),
	}
	if err := repo.UpsertDayDetail(t.Context(), row); err != nil {
		t.Fatalf("insert after roundtrip failed: %v", err)
	}

	got, err := repo.GetDayDetail(t.Context(), "member-rt", "2025-01-26")
	if err != nil {
		t.Fatalf("get after roundtrip failed: %v", err)
	}
	if got.Task1 != "roundtrip" {
		t.Fatalf("unexpected task after roundtrip: %q", got.Task1)
	}
}
