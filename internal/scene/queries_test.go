package scene

import (
	"math"
	"testing"

	"github.com/litescript/skywatch/internal/astro"
	"github.com/litescript/skywatch/internal/model"
)

func TestBestInitialView_FallsBackWhenNothingVisible(t *testing.T) {
	view := BestInitialView(nil, nil)
	if view != bestInitialViewFallback {
		t.Errorf("view = %+v, want fallback %+v", view, bestInitialViewFallback)
	}
}

func TestBestInitialView_WeightsTowardBrightestVisible(t *testing.T) {
	stars := []model.ProcessedStar{
		{StarRecord: model.StarRecord{Name: "Bright", ApparentMag: -1.0}, AltAzV: astro.Horizontal{AltDeg: 50, AzDeg: 90}, IsVisible: true},
		{StarRecord: model.StarRecord{Name: "Dim", ApparentMag: 2.9}, AltAzV: astro.Horizontal{AltDeg: 50, AzDeg: 270}, IsVisible: true},
	}
	view := BestInitialView(stars, nil)

	// The magnitude -1.0 star is roughly 2.512^4 times brighter than the
	// weight-3 cutoff and sits opposite the dim one in azimuth, so the
	// cyclic centroid should land close to 90 degrees, not the midpoint 180.
	if math.Abs(view.AzimuthDeg-90) > math.Abs(view.AzimuthDeg-180) {
		t.Errorf("azimuth %.1f did not weight toward the brighter star at 90", view.AzimuthDeg)
	}
}

func TestBestInitialView_IgnoresSunAndInvisibleBodies(t *testing.T) {
	bodies := []model.CelestialBody{
		{Name: "Sun", AltAzV: astro.Horizontal{AltDeg: 60, AzDeg: 0}, IsVisible: true},
		{Name: "Jupiter", AltAzV: astro.Horizontal{AltDeg: 40, AzDeg: 120}, IsVisible: true},
		{Name: "Mars", AltAzV: astro.Horizontal{AltDeg: 40, AzDeg: 999}, IsVisible: false},
	}
	view := BestInitialView(nil, bodies)
	if view == bestInitialViewFallback {
		t.Fatal("expected Jupiter alone to produce a non-fallback view")
	}
	if math.Abs(view.AzimuthDeg-120) > 1e-6 {
		t.Errorf("azimuth = %.4f, want ~120 (Jupiter only)", view.AzimuthDeg)
	}
}

func TestBestInitialView_ClampsAltitudeRange(t *testing.T) {
	bodies := []model.CelestialBody{
		{Name: "Jupiter", AltAzV: astro.Horizontal{AltDeg: 89, AzDeg: 0}, IsVisible: true},
	}
	view := BestInitialView(nil, bodies)
	if view.AltitudeDeg > 70 {
		t.Errorf("AltitudeDeg = %.1f, want clamped to <= 70", view.AltitudeDeg)
	}
}

func TestVisibleCounts_TalliesByKind(t *testing.T) {
	sc := model.Scene{
		Stars: []model.ProcessedStar{
			{IsVisible: true}, {IsVisible: false},
		},
		Bodies: []model.CelestialBody{
			{IsVisible: true}, {IsVisible: true},
		},
	}
	counts := VisibleCounts(sc)
	if counts["star"] != 1 {
		t.Errorf("star count = %d, want 1", counts["star"])
	}
	if counts["body"] != 2 {
		t.Errorf("body count = %d, want 2", counts["body"])
	}
}
