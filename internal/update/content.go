package update

import (
	"time"

	"github.com/lucasvw/gameplan/internal/store"
)

// Daily content pools. Rotation is deterministic on the day of year so every
// restart on the same day shows the same card.
var quotePool = []store.CachedContent{
	{Text: "Success is the sum of small efforts, repeated day in and day out.", Author: "Robert Collier"},
	{Text: "The secret of getting ahead is getting started.", Author: "Mark Twain"},
	{Text: "Discipline is the bridge between goals and accomplishment.", Author: "Jim Rohn"},
	{Text: "You miss 100% of the shots you don't take.", Author: "Wayne Gretzky"},
	{Text: "Motivation gets you going, habit gets you there.", Author: "Zig Ziglar"},
	{Text: "Don't watch the clock; do what it does. Keep going.", Author: "Sam Levenson"},
	{Text: "Well done is better than well said.", Author: "Benjamin Franklin"},
}

var insightPool = []string{
	"Members who complete all three daily quests for a week close twice as many deals the next.",
	"Short, consistent prospecting blocks beat marathon sessions. Protect the first hour of your day.",
	"Follow-ups sent within 24 hours get three times the response rate.",
	"Tracking your time daily makes you 40% more likely to hit your weekly activity target.",
	"A missed day breaks momentum, not the plan. Restart the streak today.",
	"Reviewing yesterday's wins for two minutes primes you for today's calls.",
}

var coachPrompts = []string{
	"cold call reluctance",
	"inconsistent follow-up",
	"time management",
	"staying motivated mid-quarter",
	"qualifying leads faster",
	"booking more meetings",
}

// RotationDue reports whether the once-per-day content rotation should fire:
// at or after 00:01 local time, and only if the last rotation happened before
// that threshold.
func RotationDue(now, lastRotated time.Time) bool {
	threshold := time.Date(now.Year(), now.Month(), now.Day(), 0, 1, 0, 0, now.Location())
	if now.Before(threshold) {
		return false
	}
	return lastRotated.Before(threshold)
}

func quoteForDay(now time.Time) store.CachedContent {
	q := quotePool[now.YearDay()%len(quotePool)]
	q.FetchedAt = now
	return q
}

func insightForDay(now time.Time) store.CachedContent {
	return store.CachedContent{
		Text:      insightPool[now.YearDay()%len(insightPool)],
		FetchedAt: now,
	}
}

// rotateContentIfDue swaps in the day's quote and insight and persists them
// with the rotation timestamp. Called from the minute tick; a no-op when the
// day has already rotated.
func (m *Model) rotateContentIfDue() bool {
	now := m.now()
	if !RotationDue(now, m.Content.LastRotated) {
		return false
	}
	m.Content.Quote = quoteForDay(now)
	m.Content.Insight = insightForDay(now)
	m.Content.LastRotated = now
	if m.kv != nil {
		_ = m.kv.SaveQuote(m.Content.Quote)
		_ = m.kv.SaveInsight(m.Content.Insight)
	}
	return true
}

// refreshContent forces a new card regardless of the daily gate (manual
// refresh): advances past the deterministic pick for today.
func (m *Model) refreshContent() {
	now := m.now()
	next := (now.YearDay() + m.Content.PromptIndex + 1) % len(quotePool)
	q := quotePool[next]
	q.FetchedAt = now
	m.Content.Quote = q
	m.Content.Insight = store.CachedContent{
		Text:      insightPool[(now.YearDay()+m.Content.PromptIndex+1)%len(insightPool)],
		FetchedAt: now,
	}
	if m.kv != nil {
		_ = m.kv.SaveQuote(m.Content.Quote)
		_ = m.kv.SaveInsight(m.Content.Insight)
	}
}

func (m *Model) advanceCoachPrompt() {
	m.Content.PromptIndex = (m.Content.PromptIndex + 1) % len(coachPrompts)
}

func (m Model) coachPrompt() string {
	return coachPrompts[m.Content.PromptIndex%len(coachPrompts)]
}
