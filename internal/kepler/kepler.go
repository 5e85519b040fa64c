// Package kepler propagates minor-planet orbital elements to heliocentric
// ecliptic Cartesian positions: solving Kepler's equation for the eccentric
// anomaly, then rotating through the orbital plane into the ecliptic frame
// and onto the scene sphere.
package kepler

import (
	"errors"
	"math"

	"github.com/litescript/skywatch/internal/astro"
	"github.com/litescript/skywatch/internal/model"
)

// ErrNonConvergence is returned when the eccentric-anomaly solve hits the
// iteration cap without reaching the target tolerance. The caller still
// gets the last iterate back alongside the error.
var ErrNonConvergence = errors.New("kepler: eccentric anomaly did not converge")

const (
	maxIterations    = 10
	convergenceTol   = 1e-8 // radians
	fixedPointCutoff = 0.2  // eccentricity below which the fixed-point iteration converges
)

// SolveEccentricAnomaly solves M = E - e*sin(E) for E, given mean anomaly M
// and eccentricity e, both in radians. Uses a fixed-point iteration for
// e < 0.2 and Newton's method otherwise, capped at 10 iterations.
func SolveEccentricAnomaly(meanAnomalyRad, eccentricity float64) (float64, error) {
	e := eccentricity
	m := meanAnomalyRad
	E := m

	for i := 0; i < maxIterations; i++ {
		var next float64
		if e < fixedPointCutoff {
			next = m + e*math.Sin(E)
		} else {
			next = E - (E-e*math.Sin(E)-m)/(1-e*math.Cos(E))
		}
		delta := next - E
		E = next
		if math.Abs(delta) < convergenceTol {
			return E, nil
		}
	}
	return E, ErrNonConvergence
}

// Position computes the heliocentric ecliptic position, in the same
// distance unit as SemiMajorAU, for elements el at Julian Date jd. The
// second return reports whether the eccentric-anomaly solve converged; on
// non-convergence the last iterate is still used.
func Position(el model.OrbitalElements, jd float64) (astro.Vec3, bool) {
	dt := jd - el.EpochJD
	meanAnomalyDeg := math.Mod(el.MeanAnomaly0Deg+el.MeanMotionDegPerDay*dt, 360)
	if meanAnomalyDeg < 0 {
		meanAnomalyDeg += 360
	}

	E, err := SolveEccentricAnomaly(meanAnomalyDeg*math.Pi/180, el.Eccentricity)
	converged := err == nil

	a := el.SemiMajorAU
	e := el.Eccentricity

	xp := a * (math.Cos(E) - e)
	yp := a * math.Sqrt(1-e*e) * math.Sin(E)

	nu := math.Atan2(yp, xp)
	r := math.Sqrt(xp*xp + yp*yp)
	u := el.ArgPeriDeg*math.Pi/180 + nu

	omega := el.RAANDeg * math.Pi / 180
	inc := el.InclinationDeg * math.Pi / 180

	X := r * (math.Cos(omega)*math.Cos(u) - math.Sin(omega)*math.Sin(u)*math.Cos(inc))
	Y := r * (math.Sin(omega)*math.Cos(u) + math.Cos(omega)*math.Sin(u)*math.Cos(inc))
	Z := r * math.Sin(u) * math.Sin(inc)

	return astro.Vec3{X: X, Y: Y, Z: Z}, converged
}

// ToSceneCartesian maps a heliocentric ecliptic position (in AU) onto the
// scene sphere with the documented axis swap (scene.x=X, scene.y=Z,
// scene.z=-Y) and a scalar AU-to-scene-unit scale.
func ToSceneCartesian(heliocentricAU astro.Vec3, auToSceneUnits float64) astro.Vec3 {
	return astro.Vec3{
		X: heliocentricAU.X * auToSceneUnits,
		Y: heliocentricAU.Z * auToSceneUnits,
		Z: -heliocentricAU.Y * auToSceneUnits,
	}
}
