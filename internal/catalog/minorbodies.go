package catalog

import (
	"github.com/litescript/skywatch/internal/astro"
	"github.com/litescript/skywatch/internal/model"
)

// MinorBodyElements returns the canonical J2000 orbital elements for the
// four largest main-belt asteroids. There is no external feed for these,
// so this is a bundled table rather than a fetched resource.
func MinorBodyElements() []model.OrbitalElements {
	return []model.OrbitalElements{
		{
			Name: "1 Ceres", SemiMajorAU: 2.7675, Eccentricity: 0.0760,
			InclinationDeg: 10.593, RAANDeg: 80.305, ArgPeriDeg: 73.597,
			MeanAnomaly0Deg: 95.989, EpochJD: astro.J2000,
			MeanMotionDegPerDay: 360.0 / (4.60 * 365.25),
		},
		{
			Name: "2 Pallas", SemiMajorAU: 2.7721, Eccentricity: 0.2302,
			InclinationDeg: 34.93, RAANDeg: 172.9, ArgPeriDeg: 310.2,
			MeanAnomaly0Deg: 34.5, EpochJD: astro.J2000,
			MeanMotionDegPerDay: 360.0 / (4.62 * 365.25),
		},
		{
			Name: "3 Juno", SemiMajorAU: 2.6682, Eccentricity: 0.2562,
			InclinationDeg: 12.98, RAANDeg: 169.85, ArgPeriDeg: 248.14,
			MeanAnomaly0Deg: 347.7, EpochJD: astro.J2000,
			MeanMotionDegPerDay: 360.0 / (4.36 * 365.25),
		},
		{
			Name: "4 Vesta", SemiMajorAU: 2.3615, Eccentricity: 0.0887,
			InclinationDeg: 7.14, RAANDeg: 103.8, ArgPeriDeg: 151.66,
			MeanAnomaly0Deg: 169.4, EpochJD: astro.J2000,
			MeanMotionDegPerDay: 360.0 / (3.63 * 365.25),
		},
	}
}
