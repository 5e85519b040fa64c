package ephemeris

import (
	"math"
	"time"

	"github.com/litescript/skywatch/internal/astro"
	"github.com/litescript/skywatch/internal/kepler"
)

// analyticProvider is the default Provider: mean-element Kepler propagation
// for the Sun and planets (reusing internal/kepler, the same solver minor
// bodies use) plus a low-precision lunar theory for the Moon.
type analyticProvider struct{}

func (analyticProvider) Position(body Body, instant time.Time) (Position, error) {
	jd := astro.JulianDate(instant)

	if body == Moon {
		return moonPosition(jd), nil
	}

	earthHelio, _ := kepler.Position(earthElements, jd)

	if body == Sun {
		// The Sun's geocentric direction is simply opposite Earth's
		// heliocentric position.
		sunMag := -26.74
		return equatorialFromGeocentricEcliptic(earthHelio.Scale(-1), &sunMag, nil), nil
	}

	el, ok := meanElements[body]
	if !ok {
		return Position{}, errUnsupportedBody(body)
	}

	planetHelio, _ := kepler.Position(el, jd)
	geoEcliptic := planetHelio.Sub(earthHelio)

	sunDist := planetHelio.Norm()
	earthDistFromPlanet := geoEcliptic.Norm()
	mag := absoluteMagnitude[body] + 5*math.Log10(sunDist*earthDistFromPlanet)

	return equatorialFromGeocentricEcliptic(geoEcliptic, &mag, nil), nil
}

// equatorialFromGeocentricEcliptic rotates a geocentric ecliptic vector to
// equatorial and reads off apparent RA/Dec directly from the Cartesian
// components (atan2/asin, singularity-free as elsewhere in astro).
func equatorialFromGeocentricEcliptic(geoEcliptic astro.Vec3, mag, phase *float64) Position {
	eq := astro.EclipticToEquatorial(geoEcliptic)
	r := eq.Norm()

	raDeg := astro.NormalizeDeg(180 / math.Pi * math.Atan2(eq.Y, eq.X))
	decDeg := 0.0
	if r > 0 {
		decDeg = 180 / math.Pi * math.Asin(clampUnit(eq.Z/r))
	}

	return Position{
		RAHours:        raDeg / 15.0,
		DecDeg:         decDeg,
		Magnitude:      mag,
		PhaseDeg:       phase,
		HeliocentricAU: geoEcliptic,
	}
}

func clampUnit(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}

// EarthHeliocentric evaluates Earth's own heliocentric ecliptic position
// at Julian Date jd. Exported so callers outside this package (the minor-
// body propagator) can subtract it from a planet's heliocentric vector to
// recover a true geocentric one; the Kepler propagator itself stays
// body-agnostic and leaves that subtraction to the caller.
func EarthHeliocentric(jd float64) astro.Vec3 {
	v, _ := kepler.Position(earthElements, jd)
	return v
}

type errUnsupportedBody Body

func (e errUnsupportedBody) Error() string { return "ephemeris: unsupported body " + Body(e).String() }
