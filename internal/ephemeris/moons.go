package ephemeris

import (
	"math"
	"time"

	"github.com/litescript/skywatch/internal/astro"
	"github.com/litescript/skywatch/internal/model"
)

// arcsecondsPerRadian converts a small-angle offset in AU-at-distance-AU
// into arcseconds: the standard 206,265 arcsec/radian factor.
const arcsecondsPerRadian = 206265.0

// defaultMoonFOVThresholdDeg is the camera field-of-view below which moons
// become visible: a level-of-detail default, not a hard filter.
const defaultMoonFOVThresholdDeg = 40.0

// galileanMoon is a Galilean satellite's osculating Jupiter-centric
// circular orbit, used to produce a relative offset from its parent
// (radius in AU, converted to arcseconds at Jupiter's approximate
// geocentric distance).
type galileanMoon struct {
	Name          string
	OrbitRadiusAU float64
	PeriodDays    float64
	PhaseAtJ2000  float64 // orbital phase in degrees at J2000
	Magnitude     float64
}

var galileanMoons = []galileanMoon{
	{Name: "Io", OrbitRadiusAU: 421800.0 / astro.AU, PeriodDays: 1.769, PhaseAtJ2000: 0, Magnitude: 5.0},
	{Name: "Europa", OrbitRadiusAU: 671100.0 / astro.AU, PeriodDays: 3.551, PhaseAtJ2000: 90, Magnitude: 5.3},
	{Name: "Ganymede", OrbitRadiusAU: 1070400.0 / astro.AU, PeriodDays: 7.155, PhaseAtJ2000: 180, Magnitude: 4.6},
	{Name: "Callisto", OrbitRadiusAU: 1882700.0 / astro.AU, PeriodDays: 16.689, PhaseAtJ2000: 270, Magnitude: 5.7},
}

// jupiterApproxDistanceAU is used only to turn a Galilean moon's orbital
// radius into an arcsecond offset; a full geocentric distance computation
// isn't warranted for what is already a schematic display.
const jupiterApproxDistanceAU = 5.2

// schematicMoon is a moon of a planet other than Jupiter: a static,
// nominal table of (separation, magnitude, orbital phase angle), not a
// true ephemeris — that distinction is surfaced to callers via
// MoonView.Schematic.
type schematicMoon struct {
	Name             string
	Parent           Body
	SeparationArcsec float64
	PositionAngleDeg float64
	Magnitude        float64
}

var schematicMoons = []schematicMoon{
	{Name: "Phobos", Parent: Mars, SeparationArcsec: 20, PositionAngleDeg: 45, Magnitude: 11.8},
	{Name: "Deimos", Parent: Mars, SeparationArcsec: 56, PositionAngleDeg: 225, Magnitude: 12.9},
	{Name: "Titan", Parent: Saturn, SeparationArcsec: 200, PositionAngleDeg: 0, Magnitude: 8.4},
	{Name: "Rhea", Parent: Saturn, SeparationArcsec: 90, PositionAngleDeg: 90, Magnitude: 9.7},
	{Name: "Titania", Parent: Uranus, SeparationArcsec: 26, PositionAngleDeg: 135, Magnitude: 13.9},
	{Name: "Oberon", Parent: Uranus, SeparationArcsec: 29, PositionAngleDeg: 315, Magnitude: 14.1},
	{Name: "Triton", Parent: Neptune, SeparationArcsec: 32, PositionAngleDeg: 180, Magnitude: 13.5},
	{Name: "Charon", Parent: Pluto, SeparationArcsec: 4, PositionAngleDeg: 270, Magnitude: 15.9},
}

// NaturalSatellites computes the moon views for this instant. bodyIndex
// maps a parent Body to its slot in Scene.Bodies (MoonView.ParentIndex);
// bodyAltAz gives that parent's already-computed horizontal position.
// cameraFOVDeg gates visibility: moons are marked visible only when the
// camera's field of view is narrower than defaultMoonFOVThresholdDeg.
func NaturalSatellites(instant time.Time, bodyIndex map[Body]int, bodyAltAz map[Body]astro.Horizontal, cameraFOVDeg float64) []model.MoonView {
	visible := cameraFOVDeg < defaultMoonFOVThresholdDeg

	var out []model.MoonView
	if jIdx, ok := bodyIndex[Jupiter]; ok {
		out = append(out, galileanViews(instant, jIdx, bodyAltAz[Jupiter], visible)...)
	}
	for _, m := range schematicMoons {
		parentIdx, ok := bodyIndex[m.Parent]
		if !ok {
			continue
		}
		out = append(out, schematicView(m, parentIdx, bodyAltAz[m.Parent], visible))
	}
	return out
}

func galileanViews(instant time.Time, parentIdx int, parentAltAz astro.Horizontal, visible bool) []model.MoonView {
	jd := astro.JulianDate(instant)
	daysSinceJ2000 := jd - astro.J2000

	views := make([]model.MoonView, 0, len(galileanMoons))
	for _, m := range galileanMoons {
		phaseDeg := astro.NormalizeDeg(m.PhaseAtJ2000 + 360.0*daysSinceJ2000/m.PeriodDays)

		offsetArcsec := (m.OrbitRadiusAU / jupiterApproxDistanceAU) * arcsecondsPerRadian
		offsetDeg := offsetArcsec / 3600.0

		views = append(views, projectMoon(m.Name, parentIdx, parentAltAz, offsetDeg, phaseDeg, m.Magnitude, false, visible))
	}
	return views
}

func schematicView(m schematicMoon, parentIdx int, parentAltAz astro.Horizontal, visible bool) model.MoonView {
	offsetDeg := m.SeparationArcsec / 3600.0
	return projectMoon(m.Name, parentIdx, parentAltAz, offsetDeg, m.PositionAngleDeg, m.Magnitude, true, visible)
}

// projectMoon offsets a moon from its parent's alt/az by offsetDeg along
// position angle angleDeg (0 shifts toward increasing azimuth, 90 toward
// increasing altitude), then re-projects onto the 0.998·R moon sphere.
func projectMoon(name string, parentIdx int, parentAltAz astro.Horizontal, offsetDeg, angleDeg, magnitude float64, schematic, visible bool) model.MoonView {
	altaz := astro.Horizontal{
		AltDeg: parentAltAz.AltDeg + offsetDeg*math.Sin(deg(angleDeg)),
		AzDeg:  astro.NormalizeDeg(parentAltAz.AzDeg + offsetDeg*math.Cos(deg(angleDeg))),
	}
	cart := astro.HorizontalToCartesian(altaz, astro.SceneRadius*0.998)

	return model.MoonView{
		Name:        name,
		ParentIndex: parentIdx,
		AltAzV:      altaz,
		Pos:         cart,
		IsVisible:   visible,
		Magnitude:   magnitude,
		Schematic:   schematic,
	}
}
