package scene

import (
	"testing"
	"time"

	"github.com/litescript/skywatch/internal/model"
)

func TestInWindow_HandlesYearWraparound(t *testing.T) {
	quadrantids := model.MonthDay{Month: 12, Day: 28}
	quadrantidsEnd := model.MonthDay{Month: 1, Day: 12}

	cases := []struct {
		month, day int
		want       bool
	}{
		{12, 30, true},
		{1, 5, true},
		{1, 12, true},
		{1, 13, false},
		{6, 15, false},
	}
	for _, c := range cases {
		got := inWindow(c.month, c.day, quadrantids, quadrantidsEnd)
		if got != c.want {
			t.Errorf("inWindow(%d, %d) = %v, want %v", c.month, c.day, got, c.want)
		}
	}
}

func TestActiveShowers_PerseidsPeakIsActive(t *testing.T) {
	instant := time.Date(2024, 8, 12, 0, 0, 0, 0, time.UTC)
	active := ActiveShowers(instant)

	found := false
	for _, sh := range active {
		if sh.ID == "perseids" {
			found = true
		}
	}
	if !found {
		t.Error("expected Perseids active on its peak date")
	}
}

func TestActiveShowers_EmptyOutsideAnyWindow(t *testing.T) {
	instant := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	active := ActiveShowers(instant)
	if len(active) != 0 {
		t.Errorf("expected no active showers mid-June, got %v", active)
	}
}

func TestProjectRadiant_ReportsActiveAndInactive(t *testing.T) {
	perseids := MeteorShowers[3]
	if perseids.ID != "perseids" {
		t.Fatalf("test assumes index 3 is Perseids, got %s", perseids.ID)
	}

	onPeak := ProjectRadiant(perseids, time.Date(2024, 8, 12, 2, 0, 0, 0, time.UTC), 3.0, 40.0)
	if !onPeak.IsActive {
		t.Error("expected radiant active on Perseids peak date")
	}

	offPeak := ProjectRadiant(perseids, time.Date(2024, 2, 1, 2, 0, 0, 0, time.UTC), 3.0, 40.0)
	if offPeak.IsActive {
		t.Error("expected radiant inactive in February")
	}
}
