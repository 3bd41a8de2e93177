package update

import (
	"os"
	"strconv"
	"strings"
)

type RuntimeConfig struct {
	APIBaseURL          string
	MemberID            string
	DataDir             string
	CacheDBPath         string
	TaskPollSeconds     int
	SessionPollMinutes  int
	RotationTickSeconds int
	SchedulerBuffer     int
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		APIBaseURL:          "http://localhost:3000",
		DataDir:             defaultDataDir(),
		TaskPollSeconds:     30,
		SessionPollMinutes:  5,
		RotationTickSeconds: 60,
		SchedulerBuffer:     64,
	}
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v := strings.TrimSpace(os.Getenv("GAMEPLAN_API_URL")); v != "" {
		cfg.APIBaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv("GAMEPLAN_MEMBER_ID")); v != "" {
		cfg.MemberID = v
	}
	if v := strings.TrimSpace(os.Getenv("GAMEPLAN_DATA_DIR")); v != "" {
		cfg.DataDir = v
	}
	if v := strings.TrimSpace(os.Getenv("GAMEPLAN_CACHE_DB")); v != "" {
		cfg.CacheDBPath = v
	}
	if v, ok := getEnvInt("GAMEPLAN_TASK_POLL_SECONDS"); ok && v > 0 {
		cfg.TaskPollSeconds = v
	}
	if v, ok := getEnvInt("GAMEPLAN_SESSION_POLL_MINUTES"); ok && v > 0 {
		cfg.SessionPollMinutes = v
	}
	if v, ok := getEnvInt("GAMEPLAN_ROTATION_TICK_SECONDS"); ok && v > 0 {
		cfg.RotationTickSeconds = v
	}
	if v, ok := getEnvInt("GAMEPLAN_SCHEDULER_BUFFER"); ok && v > 0 {
		cfg.SchedulerBuffer = v
	}
	return cfg
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".gameplan"
	}
	return home + string(os.PathSeparator) + ".gameplan"
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}
