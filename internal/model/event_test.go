package model

import (
	"errors"
	"testing"
)

func TestEventTypeIsValid(t *testing.T) {
	for _, typ := range []EventType{EventTypeQuest, EventTypeMeeting, EventTypeSession} {
		if !typ.IsValid() {
			t.Fatalf("expected %s to be valid", typ)
		}
	}
	if EventType("party").IsValid() {
		t.Fatal("unexpected valid type")
	}
}

func TestEventValidate(t *testing.T) {
	ev := Event{Title: "Mindset Coach Session", Time: "10:00 AM", Type: EventTypeSession}
	if err := ev.Validate(); err != nil {
		t.Fatalf("expected valid event, got %v", err)
	}

	ev.Title = " "
	if err := ev.Validate(); err == nil {
		t.Fatal("expected error for empty title")
	}

	ev.Title = "x"
	ev.Type = EventType("party")
	if err := ev.Validate(); !errors.Is(err, ErrInvalidEventType) {
		t.Fatalf("expected ErrInvalidEventType, got %v", err)
	}
}

func TestEventSameOccurrence(t *testing.T) {
	a := Event{Title: "Session", Time: "10:00 AM", Type: EventTypeSession}
	b := Event{Title: "Session", Time: "10:00 AM", Type: EventTypeMeeting, Description: "different"}
	if !a.SameOccurrence(b) {
		t.Fatal("same title and time should match")
	}
	b.Time = "2:00 PM"
	if a.SameOccurrence(b) {
		t.Fatal("different time should not match")
	}
}
