package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const sqliteTimeLayout = time.RFC3339Nano

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) (*SQLiteRepository, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	return &SQLiteRepository{db: db}, nil
}

func OpenSQLite(path string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	repo, err := NewSQLiteRepository(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return repo, nil
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepository) UpsertDayDetail(ctx context.Context, row DayDetailRow) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO day_details (member_id, date, task1, task2, task3, task1_done, task2_done, task3_done, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (member_id, date) DO UPDATE SET
			task1 = excluded.task1,
			task2 = excluded.task2,
			task3 = excluded.task3,
			task1_done = excluded.task1_done,
			task2_done = excluded.task2_done,
			task3_done = excluded.task3_done,
			fetched_at = excluded.fetched_at`,
		row.MemberID, row.Date, row.Task1, row.Task2, row.Task3,
		boolInt(row.Task1Done), boolInt(row.Task2Done), boolInt(row.Task3Done),
		mustTime(row.FetchedAt),
	)
	return err
}

func (r *SQLiteRepository) GetDayDetail(ctx context.Context, memberID, date string) (DayDetailRow, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT member_id, date, task1, task2, task3, task1_done, task2_done, task3_done, fetched_at
		FROM day_details WHERE member_id = ? AND date = ?`, memberID, date)
	out, err := scanDayDetail(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return DayDetailRow{}, ErrNotFound
		}
		return DayDetailRow{}, err
	}
	return out, nil
}

func (r *SQLiteRepository) ListCompletedDates(ctx context.Context, filter DayDetailFilter) ([]string, error) {
	prefix := fmt.Sprintf("%04d-%02d-", filter.Year, int(filter.Month))
	rows, err := r.db.QueryContext(ctx, `
		SELECT date FROM day_details
		WHERE member_id = ? AND date LIKE ? AND task1_done = 1 AND task2_done = 1 AND task3_done = 1
		ORDER BY date`, filter.MemberID, prefix+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var date string
		if err := rows.Scan(&date); err != nil {
			return nil, err
		}
		out = append(out, date)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) AppendActivity(ctx context.Context, entry ActivityEntry) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO activity_log (member_id, minutes, logged_at, synced)
		VALUES (?, ?, ?, ?)`,
		entry.MemberID, entry.Minutes, mustTime(entry.LoggedAt), boolInt(entry.Synced),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *SQLiteRepository) ListUnsyncedActivity(ctx context.Context, memberID string) ([]ActivityEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, member_id, minutes, logged_at, synced
		FROM activity_log WHERE member_id = ? AND synced = 0
		ORDER BY logged_at`, memberID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ActivityEntry, 0)
	for rows.Next() {
		entry, scanErr := scanActivityEntry(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, entry)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) MarkActivitySynced(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `UPDATE activity_log SET synced = 1 WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return checkRowsAffected(res)
}

func mustTime(v time.Time) string {
	return v.UTC().Format(sqliteTimeLayout)
}

func boolInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

func checkRowsAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanDayDetail(s scanner) (DayDetailRow, error) {
	var out DayDetailRow
	var done1, done2, done3 int
	var fetched string
	if err := s.Scan(&out.MemberID, &out.Date, &out.Task1, &out.Task2, &out.Task3, &done1, &done2, &done3, &fetched); err != nil {
		return DayDetailRow{}, err
	}
	fetchedAt, err := time.Parse(sqliteTimeLayout, fetched)
	if err != nil {
		return DayDetailRow{}, err
	}
	out.Task1Done = done1 != 0
	out.Task2Done = done2 != 0
	out.Task3Done = done3 != 0
	out.FetchedAt = fetchedAt
	return out, nil
}

func scanActivityEntry(s scanner) (ActivityEntry, error) {
	var out ActivityEntry
	var logged string
	var synced int
	if err := s.Scan(&out.ID, &out.MemberID, &out.Minutes, &logged, &synced); err != nil {
		return ActivityEntry{}, err
	}
	loggedAt, err := time.Parse(sqliteTimeLayout, logged)
	if err != nil {
		return ActivityEntry{}, err
	}
	out.LoggedAt = loggedAt
	out.Synced = synced != 0
	return out, nil
}
