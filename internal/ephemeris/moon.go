package ephemeris

import (
	"math"

	"github.com/litescript/skywatch/internal/astro"
	"github.com/litescript/skywatch/internal/kepler"
)

// moonPosition evaluates the Moon's apparent position, phase and magnitude
// at Julian Date jd using the classic truncated low-precision lunar theory
// (leading terms only — accurate to roughly a degree, which is what a
// planetarium display needs; this stops well short of ELP2000-grade lunar
// theory).
func moonPosition(jd float64) Position {
	t := (jd - astro.J2000) / 36525.0

	lp := astro.NormalizeDeg(218.3164591 + 481267.88134236*t)   // mean longitude
	d := astro.NormalizeDeg(297.8502042 + 445267.1115168*t)     // mean elongation from Sun
	mMoon := astro.NormalizeDeg(134.9634114 + 477198.8676313*t) // Moon's mean anomaly
	f := astro.NormalizeDeg(93.2720993 + 483202.0175273*t)      // argument of latitude

	lonDeg := astro.NormalizeDeg(lp + 6.289*math.Sin(deg(mMoon)))
	latDeg := 5.128 * math.Sin(deg(f))
	distKm := 385001.0 - 20905.0*math.Cos(deg(mMoon))

	lonRad := deg(lonDeg)
	latRad := deg(latDeg)

	eclipticKm := astro.Vec3{
		X: distKm * math.Cos(latRad) * math.Cos(lonRad),
		Y: distKm * math.Cos(latRad) * math.Sin(lonRad),
		Z: distKm * math.Sin(latRad),
	}
	eclipticAU := eclipticKm.Scale(1 / astro.AU)

	phaseDeg := astro.NormalizeDeg(d)
	illumAngle := math.Abs(180 - phaseDeg)
	mag := -12.73 + 0.026*illumAngle + 4e-9*illumAngle*illumAngle*illumAngle*illumAngle

	pos := equatorialFromGeocentricEcliptic(eclipticAU, &mag, &phaseDeg)
	return pos
}

func deg(d float64) float64 { return d * math.Pi / 180 }

// MoonPhaseDeg returns the Moon's phase angle in [0,360) at Julian Date
// jd, for event root-finding without paying for a full Position
// evaluation's equatorial rotation.
func MoonPhaseDeg(jd float64) float64 {
	t := (jd - astro.J2000) / 36525.0
	d := astro.NormalizeDeg(297.8502042 + 445267.1115168*t)
	return d
}

// SunEclipticLongitudeDeg returns the Sun's apparent geocentric ecliptic
// longitude in degrees at Julian Date jd, for solstice/equinox root-finding:
// the four annual crossings of 0/90/180/270.
func SunEclipticLongitudeDeg(jd float64) float64 {
	earthHelio, _ := kepler.Position(earthElements, jd)
	sunGeoEcliptic := earthHelio.Scale(-1)
	return astro.EclipticLongitudeDeg(sunGeoEcliptic)
}
