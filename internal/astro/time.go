// Package astro provides the time and coordinate primitives shared by every
// other component of the engine: Julian Date and sidereal time, angle
// normalization, and the equatorial/horizontal/Cartesian transforms that
// every catalog entry and ephemeris result is eventually projected through.
package astro

import (
	"math"
	"time"
)

// JulianDate returns the Julian Date for t, using the standard Gregorian
// calendar algorithm. January and February are folded into months 13/14 of
// the preceding year before the Gregorian reform correction is applied.
func JulianDate(t time.Time) float64 {
	t = t.UTC()

	y := float64(t.Year())
	m := float64(t.Month())
	d := float64(t.Day())

	dayFrac := (float64(t.Hour()) + float64(t.Minute())/60 + float64(t.Second())/3600 +
		float64(t.Nanosecond())/3600e9) / 24.0

	if m <= 2 {
		y--
		m += 12
	}

	a := math.Floor(y / 100)
	b := 2 - a + math.Floor(a/4)

	return math.Floor(365.25*(y+4716)) +
		math.Floor(30.6001*(m+1)) +
		d + dayFrac + b - 1524.5
}

// J2000 is the Julian Date of the J2000.0 epoch (2000-01-01T12:00:00 UTC).
const J2000 = 2451545.0

// julianCenturies returns Julian centuries of T since J2000 for jd.
func julianCenturies(jd float64) float64 {
	return (jd - J2000) / 36525.0
}

// GMSTHours returns Greenwich Mean Sidereal Time in hours, normalized to
// [0, 24). Uses the IAU 1982 polynomial in Julian centuries since J2000;
// the 360.98564736629 deg/day coefficient is 360 deg/day times the rate of
// 1.00273790935 sidereal seconds per UT second, folded into one constant.
func GMSTHours(jd float64) float64 {
	t := julianCenturies(jd)

	gmstDeg := 280.46061837 +
		360.98564736629*(jd-J2000) +
		0.000387933*t*t -
		t*t*t/38710000.0

	gmstHours := math.Mod(gmstDeg/15.0, 24.0)
	if gmstHours < 0 {
		gmstHours += 24.0
	}
	return gmstHours
}

// LSTHours returns Local Sidereal Time in hours given GMST and an observer
// longitude in degrees (east positive), normalized to [0, 24).
func LSTHours(gmstHours, longitudeDeg float64) float64 {
	lst := math.Mod(gmstHours+longitudeDeg/15.0, 24.0)
	if lst < 0 {
		lst += 24.0
	}
	return lst
}

// NormalizeDeg normalizes an angle in degrees to [0, 360).
func NormalizeDeg(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg = 0 // a tiny negative input rounds up to exactly 360 above
	}
	return deg
}

// NormalizeHourAngleDeg normalizes a degree-valued hour angle to (-180, 180],
// tie-breaking +180 over -180 so the horizon crossing is deterministic.
func NormalizeHourAngleDeg(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg <= -180 {
		deg += 360
	} else if deg > 180 {
		deg -= 360
	}
	return deg
}

func degToRad(deg float64) float64 { return deg * math.Pi / 180 }
func radToDeg(rad float64) float64 { return rad * 180 / math.Pi }
