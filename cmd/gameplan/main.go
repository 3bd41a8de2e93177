package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	_ "github.com/mattn/go-sqlite3"

	"github.com/lucasvw/gameplan/internal/api"
	"github.com/lucasvw/gameplan/internal/scheduler"
	"github.com/lucasvw/gameplan/internal/storage"
	"github.com/lucasvw/gameplan/internal/store"
	"github.com/lucasvw/gameplan/internal/update"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg := update.RuntimeConfigFromEnv(update.DefaultRuntimeConfig())
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		logger.Error("create data dir", "path", cfg.DataDir, "err", err)
		os.Exit(1)
	}

	kv := store.Open(filepath.Join(cfg.DataDir, "kv"))

	// A member id set on a previous run survives in the kv store; the env var
	// wins when both are present.
	memberID := cfg.MemberID
	if memberID == "" {
		if saved, err := kv.MemberID(); err == nil {
			memberID = saved
		}
	} else {
		_ = kv.SaveMemberID(memberID)
	}
	remote := api.NewClient(cfg.APIBaseURL, memberID)

	dbPath := cfg.CacheDBPath
	if dbPath == "" {
		dbPath = filepath.Join(cfg.DataDir, "cache.db")
	}
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		logger.Error("open cache db", "path", dbPath, "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := storage.MigrateUp(db); err != nil {
		logger.Error("migrate cache db", "err", err)
		os.Exit(1)
	}
	repo, err := storage.NewSQLiteRepository(db)
	if err != nil {
		logger.Error("open cache repository", "err", err)
		os.Exit(1)
	}
	client := api.NewCachedClient(remote, repo)

	engine := scheduler.NewEngine(cfg.SchedulerBuffer)
	engine.Start()
	defer engine.Stop()
	mustSchedule(logger, engine.ScheduleEvery("rotation", scheduler.KindRotationCheck, time.Duration(cfg.RotationTickSeconds)*time.Second))
	mustSchedule(logger, engine.ScheduleEvery("task-poll", scheduler.KindTaskPoll, time.Duration(cfg.TaskPollSeconds)*time.Second))
	mustSchedule(logger, engine.ScheduleEvery("sessions", scheduler.KindSessionRefresh, time.Duration(cfg.SessionPollMinutes)*time.Minute))

	model := update.NewModelWithScheduler(client, kv, engine)
	now := time.Now()
	if dates, err := repo.ListCompletedDates(context.Background(), storage.DayDetailFilter{
		MemberID: memberID,
		Year:     now.Year(),
		Month:    now.Month(),
	}); err == nil {
		model = model.WithCompletedDates(dates)
	}
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		logger.Error("gameplan failed", "err", err)
		os.Exit(1)
	}
}

func mustSchedule(logger *slog.Logger, err error) {
	if err != nil {
		logger.Error("schedule refresh", "err", err)
		os.Exit(1)
	}
}
