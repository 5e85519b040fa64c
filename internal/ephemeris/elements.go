package ephemeris

import (
	"github.com/litescript/skywatch/internal/astro"
	"github.com/litescript/skywatch/internal/model"
)

// meanElements holds each planet's approximate J2000.0 heliocentric
// elements (low precision — mean-anomaly-rate propagation, no perturbation
// terms). These are the standard textbook osculating elements used for
// planetarium-grade display, not a full VSOP87 series.
var meanElements = map[Body]model.OrbitalElements{
	Mercury: {
		Name: "Mercury", SemiMajorAU: 0.38709927, Eccentricity: 0.20563593,
		InclinationDeg: 7.00497902, RAANDeg: 48.33076593, ArgPeriDeg: 29.12703035,
		MeanAnomaly0Deg: 174.79252722, MeanMotionDegPerDay: 4.09233445, EpochJD: astro.J2000,
	},
	Venus: {
		Name: "Venus", SemiMajorAU: 0.72333566, Eccentricity: 0.00677672,
		InclinationDeg: 3.39467605, RAANDeg: 76.67984255, ArgPeriDeg: 54.92262463,
		MeanAnomaly0Deg: 50.37663232, MeanMotionDegPerDay: 1.60213034, EpochJD: astro.J2000,
	},
	Mars: {
		Name: "Mars", SemiMajorAU: 1.52371034, Eccentricity: 0.09339410,
		InclinationDeg: 1.84969142, RAANDeg: 49.55953891, ArgPeriDeg: 286.50232423,
		MeanAnomaly0Deg: 19.35648406, MeanMotionDegPerDay: 0.52402068, EpochJD: astro.J2000,
	},
	Jupiter: {
		Name: "Jupiter", SemiMajorAU: 5.20288700, Eccentricity: 0.04838624,
		InclinationDeg: 1.30439695, RAANDeg: 100.47390909, ArgPeriDeg: 274.25457462,
		MeanAnomaly0Deg: 20.02039996, MeanMotionDegPerDay: 0.08308529, EpochJD: astro.J2000,
	},
	Saturn: {
		Name: "Saturn", SemiMajorAU: 9.53667594, Eccentricity: 0.05386179,
		InclinationDeg: 2.48599187, RAANDeg: 113.66242448, ArgPeriDeg: 338.93645383,
		MeanAnomaly0Deg: 317.02070566, MeanMotionDegPerDay: 0.03344414, EpochJD: astro.J2000,
	},
	Uranus: {
		Name: "Uranus", SemiMajorAU: 19.18916464, Eccentricity: 0.04725744,
		InclinationDeg: 0.77263783, RAANDeg: 74.01692503, ArgPeriDeg: 96.93735127,
		MeanAnomaly0Deg: 142.28380115, MeanMotionDegPerDay: 0.01172834, EpochJD: astro.J2000,
	},
	Neptune: {
		Name: "Neptune", SemiMajorAU: 30.06992276, Eccentricity: 0.00859048,
		InclinationDeg: 1.77004347, RAANDeg: 131.78422574, ArgPeriDeg: 265.64684263,
		MeanAnomaly0Deg: 256.22834706, MeanMotionDegPerDay: 0.00598103, EpochJD: astro.J2000,
	},
	Pluto: {
		Name: "Pluto", SemiMajorAU: 39.48211675, Eccentricity: 0.24882730,
		InclinationDeg: 17.14001206, RAANDeg: 110.30393684, ArgPeriDeg: 113.76329432,
		MeanAnomaly0Deg: 14.53, MeanMotionDegPerDay: 0.00396578, EpochJD: astro.J2000,
	},
}

// earthElements positions Earth itself (needed to turn a planet's
// heliocentric vector into a geocentric one).
var earthElements = model.OrbitalElements{
	Name: "Earth", SemiMajorAU: 1.00000261, Eccentricity: 0.01671123,
	InclinationDeg: 0, RAANDeg: 0, ArgPeriDeg: 102.93768193,
	MeanAnomaly0Deg: 100.46457166, MeanMotionDegPerDay: 0.98560912, EpochJD: astro.J2000,
}

// absoluteMagnitude is a simplified phase-independent brightness constant
// used with heliocentric/geocentric distance to approximate apparent
// magnitude. This is display-grade, not photometric.
var absoluteMagnitude = map[Body]float64{
	Mercury: -0.60, Venus: -4.47, Mars: -1.52, Jupiter: -9.40,
	Saturn: -8.88, Uranus: -7.19, Neptune: -6.87, Pluto: -1.00,
}
