package satellite

import (
	"testing"
	"time"

	"github.com/litescript/skywatch/internal/model"
)

// ISS TLE, a well-known fixture (epoch irrelevant to structural parsing).
const issLine1 = "1 25544U 98067A   24001.50000000  .00016717  00000-0  10270-3 0  9004"
const issLine2 = "2 25544  51.6416 247.4627 0006703 130.5360 325.0288 15.49309239386182"

func TestParse_ValidTLE(t *testing.T) {
	tle := model.TLE{Name: "ISS", Line1: issLine1, Line2: issLine2}
	tr, err := Parse(tle)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if tr.state != StateParsed {
		t.Errorf("state = %v, want StateParsed", tr.state)
	}
}

func TestParse_RejectsShortLine(t *testing.T) {
	tle := model.TLE{Name: "bad", Line1: "1 25544U", Line2: issLine2}
	if _, err := Parse(tle); err == nil {
		t.Fatal("expected error for short line")
	}
}

func TestParse_RejectsWrongLineNumber(t *testing.T) {
	tle := model.TLE{Name: "bad", Line1: issLine2, Line2: issLine2}
	if _, err := Parse(tle); err == nil {
		t.Fatal("expected error for mismatched line-number marker")
	}
}

func TestNewTracker_PropagatesToVisibleState(t *testing.T) {
	tr, err := NewTracker(model.TLE{Name: "ISS", Line1: issLine1, Line2: issLine2})
	if err != nil {
		t.Fatalf("NewTracker: %v", err)
	}

	observer := model.GeoLocation{LatitudeDeg: 40.7, LongitudeDeg: -74.0}
	view := tr.Propagate(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC), observer)

	if view.Dead {
		t.Fatal("expected a live propagation for a valid contemporary TLE")
	}
	if !view.Pos.Finite() {
		t.Errorf("position not finite: %+v", view.Pos)
	}
	if got := view.Pos.Norm(); got < satelliteSceneRadius-1e-6 || got > satelliteSceneRadius+1e-6 {
		t.Errorf("|position| = %v, want %v", got, satelliteSceneRadius)
	}
	if view.RangeKm <= 0 {
		t.Errorf("RangeKm = %v, want > 0", view.RangeKm)
	}
}

func TestPropagate_DeadTrackerShortCircuits(t *testing.T) {
	tr, err := NewTracker(model.TLE{Name: "ISS", Line1: issLine1, Line2: issLine2})
	if err != nil {
		t.Fatalf("NewTracker: %v", err)
	}
	tr.state = StateDead // simulate a prior decay detection

	view := tr.Propagate(time.Now().UTC(), model.GeoLocation{})
	if !view.Dead || view.IsVisible {
		t.Errorf("dead tracker view = %+v, want Dead=true IsVisible=false", view)
	}
}
