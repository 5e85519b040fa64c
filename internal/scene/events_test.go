package scene

import (
	"testing"
	"time"

	"github.com/litescript/skywatch/internal/model"
)

func TestUpcomingEvents_ReturnsSortedAscending(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	events := UpcomingEvents(from, 400)

	if len(events) == 0 {
		t.Fatal("expected at least one event within a 400-day window")
	}
	for i := 1; i < len(events); i++ {
		if events[i].Instant.Before(events[i-1].Instant) {
			t.Fatalf("events not sorted ascending at index %d: %v before %v", i, events[i].Instant, events[i-1].Instant)
		}
	}
}

func TestUpcomingEvents_FindsAMoonPhaseWithinTwoWeeks(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	events := UpcomingEvents(from, 14)

	found := false
	for _, e := range events {
		if e.Kind == model.EventMoonPhase {
			found = true
			if e.Instant.Before(from) {
				t.Errorf("event instant %v precedes from %v", e.Instant, from)
			}
		}
	}
	if !found {
		t.Error("expected at least one moon-phase quarter within 14 days")
	}
}

func TestUpcomingEvents_FindsASolsticeOrEquinoxWithinAYear(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	events := UpcomingEvents(from, 370)

	count := 0
	for _, e := range events {
		if e.Kind == model.EventSolstice || e.Kind == model.EventEquinox {
			count++
		}
	}
	if count < 4 {
		t.Errorf("expected at least 4 solstice/equinox events in a 370-day window, got %d", count)
	}
}

func TestUpcomingEvents_EmptyWindowFindsNothing(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	events := UpcomingEvents(from, 0)
	if len(events) != 0 {
		t.Errorf("expected no events in a zero-day window, got %d", len(events))
	}
}
