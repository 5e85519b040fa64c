package astro

import (
	"math"
	"testing"
)

func approxEqual(a, b, tol float64) bool { return math.Abs(a-b) <= tol }

// S2: Polaris from mid-latitude — altitude ≈ latitude, azimuth near 0/360.
func TestEquatorialToHorizontal_Polaris(t *testing.T) {
	polaris := Equatorial{RAHours: 2.530667, DecDeg: 89.264}
	lat := 45.0
	lst := polaris.RAHours // hour angle = 0 (upper culmination)

	h := EquatorialToHorizontal(polaris, lat, lst)
	if !approxEqual(h.AltDeg, lat, 1.0) {
		t.Errorf("Polaris altitude = %v, want ~%v", h.AltDeg, lat)
	}
	if h.AzDeg > 5 && h.AzDeg < 355 {
		t.Errorf("Polaris azimuth = %v, want near 0/360", h.AzDeg)
	}
}

func TestEquatorialToHorizontal_Zenith(t *testing.T) {
	lat := 35.0
	lst := 6.0
	zenith := Equatorial{RAHours: lst, DecDeg: lat}
	h := EquatorialToHorizontal(zenith, lat, lst)
	if !approxEqual(h.AltDeg, 90, 1e-6) {
		t.Errorf("zenith altitude = %v, want 90", h.AltDeg)
	}
}

func TestEquatorialToHorizontal_AzimuthRange(t *testing.T) {
	for ra := 0.0; ra < 24; ra += 2 {
		for dec := -80.0; dec <= 80; dec += 20 {
			h := EquatorialToHorizontal(Equatorial{RAHours: ra, DecDeg: dec}, 35, 12)
			if h.AzDeg < 0 || h.AzDeg >= 360 {
				t.Errorf("azimuth out of range for ra=%v dec=%v: %v", ra, dec, h.AzDeg)
			}
			if h.AltDeg < -90 || h.AltDeg > 90 {
				t.Errorf("altitude out of range for ra=%v dec=%v: %v", ra, dec, h.AltDeg)
			}
		}
	}
}

// Invariant 10: observer at the poles must never divide by cos(lat) = 0.
func TestEquatorialToHorizontal_PoleObserver(t *testing.T) {
	for _, lat := range []float64{90, -90} {
		for ra := 0.0; ra < 24; ra += 3 {
			h := EquatorialToHorizontal(Equatorial{RAHours: ra, DecDeg: 10}, lat, 5)
			if math.IsNaN(h.AltDeg) || math.IsNaN(h.AzDeg) || math.IsInf(h.AltDeg, 0) || math.IsInf(h.AzDeg, 0) {
				t.Fatalf("non-finite result at pole lat=%v ra=%v: %+v", lat, ra, h)
			}
		}
	}
}

// Invariant 7: horizontal<->cartesian round-trips for alt in [-89,89].
func TestCartesianRoundTrip(t *testing.T) {
	for alt := -89.0; alt <= 89; alt += 7.3 {
		for az := 0.0; az < 360; az += 37 {
			h := Horizontal{AltDeg: alt, AzDeg: az}
			v := HorizontalToCartesian(h, SceneRadius)
			if !v.Finite() {
				t.Fatalf("non-finite cartesian for alt=%v az=%v", alt, az)
			}
			back := CartesianToHorizontal(v, SceneRadius)
			if !approxEqual(back.AltDeg, alt, 1e-6) {
				t.Errorf("round-trip alt: got %v want %v", back.AltDeg, alt)
			}
			wantAz := NormalizeDeg(az)
			diff := math.Abs(back.AzDeg - wantAz)
			if diff > 180 {
				diff = 360 - diff
			}
			if diff > 1e-6 {
				t.Errorf("round-trip az: got %v want %v", back.AzDeg, wantAz)
			}
		}
	}
}

func TestHorizontalToCartesian_Norm(t *testing.T) {
	h := Horizontal{AltDeg: 30, AzDeg: 200}
	v := HorizontalToCartesian(h, SceneRadius)
	if !approxEqual(v.Norm(), SceneRadius, 1e-6) {
		t.Errorf("|position| = %v, want %v", v.Norm(), SceneRadius)
	}
}

// Invariant 8: converting to horizontal and back with the same LST recovers
// the original declination (the only coordinate this test inverts).
func TestEquatorialRoundTrip(t *testing.T) {
	lat, lst := 40.0, 14.0
	for ra := 0.0; ra < 24; ra += 5 {
		for dec := -70.0; dec <= 70; dec += 20 {
			eq := Equatorial{RAHours: ra, DecDeg: dec}
			h := EquatorialToHorizontal(eq, lat, lst)
			if h.AltDeg <= -90+1e-6 || h.AltDeg >= 90-1e-6 {
				continue // skip exact pole-pointing degeneracies
			}
			// Recover dec/ra from alt/az + lat/lst via the inverse spherical
			// trig identities used by EquatorialToHorizontal.
			altR, azR := degToRad(h.AltDeg), degToRad(h.AzDeg)
			latR := degToRad(lat)
			sinDec := math.Sin(altR)*math.Sin(latR) + math.Cos(altR)*math.Cos(latR)*math.Cos(azR)
			decR := math.Asin(clamp(sinDec, -1, 1))
			if !approxEqual(radToDeg(decR), dec, 1e-3) {
				t.Errorf("recovered dec = %v, want %v (ra=%v)", radToDeg(decR), dec, ra)
			}
		}
	}
}

func TestAngularSeparation_Zero(t *testing.T) {
	p := Equatorial{RAHours: 5, DecDeg: 20}
	if s := AngularSeparation(p, p); s > 1e-9 {
		t.Errorf("separation from self = %v, want 0", s)
	}
}

func TestAngularSeparation_Antipodal(t *testing.T) {
	a := Equatorial{RAHours: 0, DecDeg: 0}
	b := Equatorial{RAHours: 12, DecDeg: 0}
	if s := AngularSeparation(a, b); !approxEqual(s, 180, 1e-6) {
		t.Errorf("antipodal separation = %v, want 180", s)
	}
}
