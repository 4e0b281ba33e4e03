package testutil

import (
	"testing"
	"time"

	"github.com/thenoetrevino/flowmaster/internal/events"
)

// WaitForEvent waits for an event on a channel with timeout.
// Returns the event if received, or fails the test on timeout.
func WaitForEvent(t *testing.T, ch <-chan events.Event, timeout time.Duration) events.Event {
	t.Helper()

	select {
	case event, ok := <-ch:
		if !ok {
			t.Fatal("Event channel closed unexpectedly")
		}
		return event
	case <-time.After(timeout):
		t.Fatalf("Timeout waiting for event after %v", timeout)
		return events.Event{}
	}
}

// WaitForNoEvent verifies that NO event is received within the timeout.
func WaitForNoEvent(t *testing.T, ch <-chan events.Event, timeout time.Duration) {
	t.Helper()

	select {
	case event, ok := <-ch:
		if ok {
			t.Fatalf("Unexpected event received: %+v", event)
		}
	case <-time.After(timeout):
	}
}

// DrainEvents drains all pending events from a channel (non-blocking).
// Returns the slice of events that were pending.
func DrainEvents(ch <-chan events.Event) []events.Event {
	var pending []events.Event
	for {
		select {
		case event, ok := <-ch:
			if !ok {
				return pending
			}
			pending = append(pending, event)
		default:
			return pending
		}
	}
}
