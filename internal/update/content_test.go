package update

import (
	"testing"
	"time"

	"github.com/lucasvw/gameplan/internal/store"
)

func TestRotationDueBoundaries(t *testing.T) {
	day := time.Date(2025, time.January, 26, 0, 0, 0, 0, time.UTC)
	yesterday := day.AddDate(0, 0, -1).Add(8 * time.Hour)

	cases := []struct {
		name        string
		now         time.Time
		lastRotated time.Time
		want        bool
	}{
		{"before 00:01", day.Add(30 * time.Second), yesterday, false},
		{"exactly 00:01", day.Add(time.Minute), yesterday, true},
		{"mid-day not yet rotated", day.Add(9 * time.Hour), yesterday, true},
		{"already rotated today", day.Add(9 * time.Hour), day.Add(time.Minute), false},
		{"never rotated", day.Add(time.Minute), time.Time{}, true},
	}
	for _, tc := range cases {
		if got := RotationDue(tc.now, tc.lastRotated); got != tc.want {
			t.Fatalf("%s: RotationDue = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestRotateContentIfDueRotatesOncePerDay(t *testing.T) {
	now := time.Date(2025, time.January, 26, 9, 0, 0, 0, time.UTC)
	kv := store.NewMemory()
	m := NewModelWithClock(&fakeAPI{}, kv, func() time.Time { return now })
	m.Content.LastRotated = now.AddDate(0, 0, -1)

	if !m.rotateContentIfDue() {
		t.Fatal("first check should rotate")
	}
	if m.Content.Quote.Text == "" || m.Content.Insight.Text == "" {
		t.Fatal("rotation left empty content")
	}
	if !m.Content.LastRotated.Equal(now) {
		t.Fatalf("LastRotated not stamped: %v", m.Content.LastRotated)
	}
	saved, err := kv.Quote()
	if err != nil || saved.Text != m.Content.Quote.Text {
		t.Fatalf("quote not persisted: %v %v", saved, err)
	}

	if m.rotateContentIfDue() {
		t.Fatal("second check on the same day must not rotate")
	}
}

func TestRotationIsDeterministicPerDay(t *testing.T) {
	now := time.Date(2025, time.March, 3, 10, 0, 0, 0, time.UTC)
	a := quoteForDay(now)
	b := quoteForDay(now.Add(5 * time.Hour))
	if a.Text != b.Text {
		t.Fatalf("same day yielded different quotes: %q vs %q", a.Text, b.Text)
	}
}

func TestCoachPromptCycles(t *testing.T) {
	m := NewModelWithClock(&fakeAPI{}, store.NewMemory(), func() time.Time { return testNow })
	seen := make(map[string]bool)
	for i := 0; i < len(coachPrompts); i++ {
		seen[m.coachPrompt()] = true
		m.advanceCoachPrompt()
	}
	if len(seen) != len(coachPrompts) {
		t.Fatalf("prompt cycle covered %d of %d prompts", len(seen), len(coachPrompts))
	}
	if m.coachPrompt() != coachPrompts[0] {
		t.Fatalf("cycle did not wrap: %q", m.coachPrompt())
	}
}
