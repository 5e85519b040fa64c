package astro

import "math"

// Equatorial is a position in the equatorial frame: RA in hours [0,24),
// Dec in degrees [-90,+90]. Epoch is apparent equator/equinox of date
// (mean-of-date is acceptable); catalog entries are J2000 and consumed
// as-is.
type Equatorial struct {
	RAHours float64
	DecDeg  float64
}

// Horizontal is an observer-relative position: altitude in degrees
// [-90,+90], azimuth in degrees [0,360) measured from true north,
// clockwise.
type Horizontal struct {
	AltDeg float64
	AzDeg  float64
}

// Observer is an immutable geographic position for a single scene.
type Observer struct {
	LatDeg float64
	LonDeg float64
}

// EquatorialToHorizontal converts an equatorial position to horizontal
// coordinates for an observer at latDeg given the local sidereal time in
// hours. The hour angle is normalized to (-180,180] before use, and the
// altitude/azimuth are computed with asin/atan2 so the transform is
// singularity-free at the poles — cos(lat) never appears in a denominator.
func EquatorialToHorizontal(eq Equatorial, latDeg, lstHours float64) Horizontal {
	lat := degToRad(latDeg)
	dec := degToRad(eq.DecDeg)

	ha := NormalizeHourAngleDeg((lstHours - eq.RAHours) * 15.0)
	haRad := degToRad(ha)

	sinAlt := math.Sin(dec)*math.Sin(lat) + math.Cos(dec)*math.Cos(lat)*math.Cos(haRad)
	alt := math.Asin(clamp(sinAlt, -1, 1))

	az := math.Atan2(
		-math.Cos(dec)*math.Sin(haRad),
		math.Sin(dec)*math.Cos(lat)-math.Cos(dec)*math.Sin(lat)*math.Cos(haRad),
	)

	return Horizontal{
		AltDeg: radToDeg(alt),
		AzDeg:  NormalizeDeg(radToDeg(az)),
	}
}

// HorizontalToCartesian projects a horizontal position onto a sphere of
// radius r centered on the observer. y is up (zenith), x is east, z is
// toward the observer (south when azimuth = 180°).
func HorizontalToCartesian(h Horizontal, r float64) Vec3 {
	alt := degToRad(h.AltDeg)
	az := degToRad(h.AzDeg)

	return Vec3{
		X: r * math.Cos(alt) * math.Sin(az),
		Y: r * math.Sin(alt),
		Z: -r * math.Cos(alt) * math.Cos(az),
	}
}

// CartesianToHorizontal is the inverse of HorizontalToCartesian, recovering
// altitude/azimuth from a position on a sphere of radius r. Used for
// round-trip testing and by consumers that only carry Cartesian positions.
func CartesianToHorizontal(v Vec3, r float64) Horizontal {
	if r == 0 {
		return Horizontal{}
	}
	alt := math.Asin(clamp(v.Y/r, -1, 1))
	az := math.Atan2(v.X, -v.Z)
	return Horizontal{
		AltDeg: radToDeg(alt),
		AzDeg:  NormalizeDeg(radToDeg(az)),
	}
}

// AngularSeparation returns the angular separation in degrees between two
// equatorial positions via the haversine formula, which stays
// well-conditioned for small separations.
func AngularSeparation(a, b Equatorial) float64 {
	ra1 := degToRad(a.RAHours * 15)
	dec1 := degToRad(a.DecDeg)
	ra2 := degToRad(b.RAHours * 15)
	dec2 := degToRad(b.DecDeg)

	dRA := ra2 - ra1
	dDec := dec2 - dec1

	s := math.Sin(dDec/2)*math.Sin(dDec/2) +
		math.Cos(dec1)*math.Cos(dec2)*math.Sin(dRA/2)*math.Sin(dRA/2)
	s = clamp(s, 0, 1)

	return radToDeg(2 * math.Asin(math.Sqrt(s)))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
