package ephemeris

import (
	"testing"
	"time"

	"github.com/litescript/skywatch/internal/astro"
	"github.com/litescript/skywatch/internal/model"
)

func TestPositionOf_AlwaysVisible(t *testing.T) {
	p := NewProvider()
	observer := model.GeoLocation{LatitudeDeg: 40, LongitudeDeg: -74}
	instant := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for _, b := range Bodies {
		body, err := PositionOf(p, b, instant, observer)
		if err != nil {
			t.Fatalf("PositionOf(%v): %v", b, err)
		}
		if !body.IsVisible {
			t.Errorf("%v: IsVisible = false, want true (Solar System bodies are always visible)", b)
		}
		if !body.Pos.Finite() {
			t.Errorf("%v: position not finite: %+v", b, body.Pos)
		}
	}
}

func TestPositionOf_SceneSphereRadius(t *testing.T) {
	p := NewProvider()
	observer := model.GeoLocation{LatitudeDeg: 0, LongitudeDeg: 0}
	instant := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	body, err := PositionOf(p, Jupiter, instant, observer)
	if err != nil {
		t.Fatalf("PositionOf: %v", err)
	}
	if got := body.Pos.Norm(); got < astro.SceneRadius-1e-6 || got > astro.SceneRadius+1e-6 {
		t.Errorf("|position| = %v, want %v", got, astro.SceneRadius)
	}
}

func TestPositionOf_SunOnlyBodyWithoutPhase(t *testing.T) {
	p := NewProvider()
	observer := model.GeoLocation{}
	instant := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)

	body, err := PositionOf(p, Sun, instant, observer)
	if err != nil {
		t.Fatalf("PositionOf: %v", err)
	}
	if body.Phase != nil {
		t.Errorf("Sun should not report a phase, got %v", *body.Phase)
	}
	if body.Magnitude == nil || *body.Magnitude > -20 {
		t.Errorf("Sun magnitude = %v, want near -26.7", body.Magnitude)
	}
}
