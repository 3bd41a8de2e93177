package api

import (
	"context"
	"errors"
	"time"

	"github.com/lucasvw/gameplan/internal/model"
	"github.com/lucasvw/gameplan/internal/reconcile"
	"github.com/lucasvw/gameplan/internal/storage"
)

// CachedClient wraps the remote client with the sqlite cache: successful
// day-detail fetches are written through, transport failures fall back to the
// last cached copy, and activity logged while offline queues locally until a
// later call reaches the backend.
type CachedClient struct {
	remote *Client
	cache  storage.CacheRepository
	now    func() time.Time
}

func NewCachedClient(remote *Client, cache storage.CacheRepository) *CachedClient {
	return &CachedClient{remote: remote, cache: cache, now: time.Now}
}

func (c *CachedClient) SetMember(memberID string) { c.remote.SetMember(memberID) }
func (c *CachedClient) MemberID() string          { return c.remote.MemberID() }

func (c *CachedClient) GetActivity(ctx context.Context) (model.ActivitySummary, error) {
	summary, err := c.remote.GetActivity(ctx)
	if err == nil {
		c.flushPendingActivity(ctx)
	}
	return summary, err
}

// LogActivity queues the entry locally when the backend is unreachable; the
// queue drains on the next successful activity call. Validation errors and
// missing-member are still reported immediately.
func (c *CachedClient) LogActivity(ctx context.Context, minutes int) error {
	err := c.remote.LogActivity(ctx, minutes)
	if err == nil || errors.Is(err, ErrNoMember) || minutes <= 0 {
		return err
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return err
	}
	_, appendErr := c.cache.AppendActivity(ctx, storage.ActivityEntry{
		MemberID: c.remote.MemberID(),
		Minutes:  minutes,
		LoggedAt: c.now(),
	})
	if appendErr != nil {
		return err
	}
	return nil
}

func (c *CachedClient) GetDailyTasks(ctx context.Context, date string) (model.DayDetail, error) {
	detail, err := c.remote.GetDailyTasks(ctx, date)
	if err == nil {
		_ = c.cache.UpsertDayDetail(ctx, storage.RowFromDetail(c.remote.MemberID(), detail, c.now()))
		return detail, nil
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrNoMember) {
		return model.DayDetail{}, err
	}
	row, cacheErr := c.cache.GetDayDetail(ctx, c.remote.MemberID(), date)
	if cacheErr != nil {
		return model.DayDetail{}, err
	}
	return row.ToDetail(), nil
}

func (c *CachedClient) SaveTaskCompletion(ctx context.Context, taskNumber int, completed bool, date string) error {
	if err := c.remote.SaveTaskCompletion(ctx, taskNumber, completed, date); err != nil {
		return err
	}
	if row, err := c.cache.GetDayDetail(ctx, c.remote.MemberID(), date); err == nil {
		detail := row.ToDetail().SetCompleted(taskNumber, completed)
		_ = c.cache.UpsertDayDetail(ctx, storage.RowFromDetail(c.remote.MemberID(), detail, c.now()))
	}
	return nil
}

func (c *CachedClient) GetSessions(ctx context.Context) ([]reconcile.Session, error) {
	return c.remote.GetSessions(ctx)
}

func (c *CachedClient) flushPendingActivity(ctx context.Context) {
	pending, err := c.cache.ListUnsyncedActivity(ctx, c.remote.MemberID())
	if err != nil {
		return
	}
	for _, entry := range pending {
		if err := c.remote.LogActivity(ctx, entry.Minutes); err != nil {
			return
		}
		_ = c.cache.MarkActivitySynced(ctx, entry.ID)
	}
}
