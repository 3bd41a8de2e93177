package model

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidQuest = errors.New("model: invalid quest")

// QuestsPerDay is the fixed size of every generated daily quest list.
const QuestsPerDay = 3

type Quest struct {
	ID          string
	Title       string
	Description string
}

func (q Quest) Validate() error {
	if strings.TrimSpace(q.ID) == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidQuest)
	}
	if strings.TrimSpace(q.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidQuest)
	}
	return nil
}

type questTemplate struct {
	Title       string
	Description string
}

// questPool is the canonical rotation of daily quests. Order matters: client
// quest IDs are derived from positions here, so entries must stay stable.
var questPool = []questTemplate{
	{Title: "Make 50 cold calls", Description: "Reach out to 50 new prospects today"},
	{Title: "Follow up with 20 leads", Description: "Reconnect with 20 warm leads"},
	{Title: "Schedule 5 meetings", Description: "Book 5 discovery meetings"},
	{Title: "Review yesterday's objections", Description: "Write down the top 3 objections you heard and a better answer for each"},
	{Title: "Roleplay one tough scenario", Description: "Run a 10-minute roleplay on your weakest script section"},
	{Title: "Update your pipeline", Description: "Move every stale deal to its true stage"},
	{Title: "Send 10 personalized emails", Description: "No templates, reference something specific per prospect"},
	{Title: "Listen to one recorded call", Description: "Pick one call from this week and note two improvements"},
	{Title: "Block tomorrow's prime hours", Description: "Reserve your two best hours for outbound work"},
}

// QuestsForDay maps a day-of-month to its fixed quest triple. Deterministic
// and side-effect free: the same day always yields the same IDs and titles,
// so quest lists are generated lazily and never stored.
func QuestsForDay(day int) []Quest {
	if day < 1 {
		return nil
	}
	out := make([]Quest, 0, QuestsPerDay)
	start := ((day - 1) * QuestsPerDay) % len(questPool)
	for i := 0; i < QuestsPerDay; i++ {
		tpl := questPool[(start+i)%len(questPool)]
		out = append(out, Quest{
			ID:          QuestID(day, i+1),
			Title:       tpl.Title,
			Description: tpl.Description,
		})
	}
	return out
}

// QuestID builds the stable identity for the nth quest of a day.
func QuestID(day, n int) string {
	return fmt.Sprintf("quest-%d-%d", day, n)
}
