package model

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidEventType = errors.New("model: invalid event type")

type EventType string

const (
	EventTypeQuest   EventType = "quest"
	EventTypeMeeting EventType = "meeting"
	EventTypeSession EventType = "session"
)

func (t EventType) IsValid() bool {
	switch t {
	case EventTypeQuest, EventTypeMeeting, EventTypeSession:
		return true
	default:
		return false
	}
}

// Event is a single calendar entry for a day: a coaching session, a meeting,
// or a quest surfaced as an event.
type Event struct {
	Title       string
	Description string
	Time        string
	Type        EventType
}

func (e Event) Validate() error {
	if strings.TrimSpace(e.Title) == "" {
		return errors.New("model: event title is required")
	}
	if !e.Type.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidEventType, e.Type)
	}
	return nil
}

// SameOccurrence reports whether two events describe the same calendar slot.
// The reconciler uses this to keep merges idempotent across re-fetches.
func (e Event) SameOccurrence(other Event) bool {
	return e.Title == other.Title && e.Time == other.Time
}
