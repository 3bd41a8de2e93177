package api

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/lucasvw/gameplan/internal/storage"
)

func setupCache(t *testing.T) storage.CacheRepository {
	t.Helper()
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := storage.MigrateUp(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	repo, err := storage.NewSQLiteRepository(db)
	if err != nil {
		t.Fatalf("new repo: %v", err)
	}
	return repo
}

func TestCachedClientServesDayDetailWhenRemoteIsDown(t *testing.T) {
	var failing atomic.Bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if failing.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		task1, task2, task3 := "Make 50 cold calls", "Follow up with 20 leads", "Schedule 5 meetings"
		_ = json.NewEncoder(w).Encode(dailyTasksResponse{
			Date:           r.URL.Query().Get("date"),
			Task1:          &task1,
			Task2:          &task2,
			Task3:          &task3,
			Task1Completed: true,
		})
	}))
	defer server.Close()

	client := NewCachedClient(NewClient(server.URL, "member-1"), setupCache(t))
	ctx := context.Background()

	detail, err := client.GetDailyTasks(ctx, "2025-01-26")
	if err != nil {
		t.Fatalf("initial fetch: %v", err)
	}
	if task, _ := detail.Task(1); !task.Completed {
		t.Fatalf("unexpected detail: %+v", detail)
	}

	failing.Store(true)
	detail, err = client.GetDailyTasks(ctx, "2025-01-26")
	if err != nil {
		t.Fatalf("expected cached fallback, got %v", err)
	}
	if task, _ := detail.Task(1); !task.Completed {
		t.Fatalf("cached detail wrong: %+v", detail)
	}

	// A date never fetched has no cached copy to fall back to.
	if _, err := client.GetDailyTasks(ctx, "2025-01-27"); err == nil {
		t.Fatal("expected error for uncached date while remote is down")
	}
}

func TestCachedClientQueuesActivityOffline(t *testing.T) {
	var failing atomic.Bool
	var remoteLogged atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if failing.Load() {
			// Connection-level failure is simulated by hijacking and closing.
			hj, ok := w.(http.Hijacker)
			if !ok {
				t.Fatal("server does not support hijacking")
			}
			conn, _, _ := hj.Hijack()
			conn.Close()
			return
		}
		if r.Method == http.MethodPost {
			remoteLogged.Add(1)
			w.WriteHeader(http.StatusOK)
			return
		}
		minutes := 60
		_ = json.NewEncoder(w).Encode(activityResponse{
			TimeToday: &minutes, TimeWeek: &minutes, TimeMonth: &minutes, TimeYear: &minutes,
		})
	}))
	defer server.Close()

	cache := setupCache(t)
	client := NewCachedClient(NewClient(server.URL, "member-1"), cache)
	ctx := context.Background()

	failing.Store(true)
	if err := client.LogActivity(ctx, 45); err != nil {
		t.Fatalf("offline log should queue, got %v", err)
	}
	pending, err := cache.ListUnsyncedActivity(ctx, "member-1")
	if err != nil || len(pending) != 1 || pending[0].Minutes != 45 {
		t.Fatalf("entry not queued: %v %v", pending, err)
	}

	failing.Store(false)
	if _, err := client.GetActivity(ctx); err != nil {
		t.Fatalf("activity fetch: %v", err)
	}
	if remoteLogged.Load() != 1 {
		t.Fatalf("queued entry not flushed: %d", remoteLogged.Load())
	}
	pending, err = cache.ListUnsyncedActivity(ctx, "member-1")
	if err != nil || len(pending) != 0 {
		t.Fatalf("queue not drained: %v %v", pending, err)
	}
}

func TestCachedClientDoesNotQueueRejectedActivity(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	cache := setupCache(t)
	client := NewCachedClient(NewClient(server.URL, "member-1"), cache)

	if err := client.LogActivity(context.Background(), 45); err == nil {
		t.Fatal("expected status error")
	}
	pending, err := cache.ListUnsyncedActivity(context.Background(), "member-1")
	if err != nil || len(pending) != 0 {
		t.Fatalf("rejected request must not queue: %v %v", pending, err)
	}
}
