package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("storage: not found")

// CacheRepository is the local sqlite cache behind the dashboard: day-detail
// rows mirror remote daily-task records, activity entries hold locally
// tracked minutes until the backend confirms them.
type CacheRepository interface {
	UpsertDayDetail(ctx context.Context, row DayDetailRow) error
	GetDayDetail(ctx context.Context, memberID, date string) (DayDetailRow, error)
	ListCompletedDates(ctx context.Context, filter DayDetailFilter) ([]string, error)

	AppendActivity(ctx context.Context, entry ActivityEntry) (int64, error)
	ListUnsyncedActivity(ctx context.Context, memberID string) ([]ActivityEntry, error)
	MarkActivitySynced(ctx context.Context, id int64) error
}
