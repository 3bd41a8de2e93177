package update

import "testing"

func TestRuntimeConfigFromEnvOverrides(t *testing.T) {
	t.Setenv("GAMEPLAN_API_URL", "https://coach.example.com")
	t.Setenv("GAMEPLAN_MEMBER_ID", "member-7")
	t.Setenv("GAMEPLAN_TASK_POLL_SECONDS", "10")
	t.Setenv("GAMEPLAN_SESSION_POLL_MINUTES", "2")
	t.Setenv("GAMEPLAN_SCHEDULER_BUFFER", "128")

	cfg := RuntimeConfigFromEnv(DefaultRuntimeConfig())
	if cfg.APIBaseURL != "https://coach.example.com" {
		t.Fatalf("api url = %q", cfg.APIBaseURL)
	}
	if cfg.MemberID != "member-7" {
		t.Fatalf("member = %q", cfg.MemberID)
	}
	if cfg.TaskPollSeconds != 10 || cfg.SessionPollMinutes != 2 || cfg.SchedulerBuffer != 128 {
		t.Fatalf("intervals not applied: %+v", cfg)
	}
}

func TestRuntimeConfigIgnoresInvalidValues(t *testing.T) {
	t.Setenv("GAMEPLAN_TASK_POLL_SECONDS", "not-a-number")
	t.Setenv("GAMEPLAN_ROTATION_TICK_SECONDS", "-5")

	base := DefaultRuntimeConfig()
	cfg := RuntimeConfigFromEnv(base)
	if cfg.TaskPollSeconds != base.TaskPollSeconds {
		t.Fatalf("invalid int applied: %d", cfg.TaskPollSeconds)
	}
	if cfg.RotationTickSeconds != base.RotationTickSeconds {
		t.Fatalf("negative interval applied: %d", cfg.RotationTickSeconds)
	}
}
