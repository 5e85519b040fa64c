package kepler

import (
	"math"
	"testing"

	"github.com/litescript/skywatch/internal/astro"
	"github.com/litescript/skywatch/internal/model"
)

func TestSolveEccentricAnomaly_Circular(t *testing.T) {
	E, err := SolveEccentricAnomaly(1.0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(E-1.0) > 1e-9 {
		t.Errorf("E = %v, want 1.0 for e=0", E)
	}
}

func TestSolveEccentricAnomaly_LowEccentricity(t *testing.T) {
	M := 1.0
	e := 0.1
	E, err := SolveEccentricAnomaly(M, e)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	residual := E - e*math.Sin(E) - M
	if math.Abs(residual) > 1e-6 {
		t.Errorf("residual = %v, want ~0", residual)
	}
}

func TestSolveEccentricAnomaly_HighEccentricity(t *testing.T) {
	M := 2.5
	e := 0.8
	E, err := SolveEccentricAnomaly(M, e)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	residual := E - e*math.Sin(E) - M
	if math.Abs(residual) > 1e-6 {
		t.Errorf("residual = %v, want ~0", residual)
	}
}

// S5: Ceres at J2000+10yr must land within its aphelion/perihelion bounds.
func TestPosition_Ceres(t *testing.T) {
	ceres := model.OrbitalElements{
		Name:                "1 Ceres",
		SemiMajorAU:         2.77,
		Eccentricity:        0.076,
		InclinationDeg:      10.59,
		RAANDeg:             80.3,
		ArgPeriDeg:          73.6,
		MeanAnomaly0Deg:     95.99,
		EpochJD:             astro.J2000,
		MeanMotionDegPerDay: 360.0 / (4.6 * 365.25), // ~4.6 year period
	}

	jd := astro.J2000 + 10*365.25
	pos, _ := Position(ceres, jd)
	dist := pos.Norm()

	if dist < 2.55 || dist > 2.98 {
		t.Errorf("Ceres heliocentric distance = %v AU, want [2.55, 2.98]", dist)
	}
}

func TestToSceneCartesian_AxisSwap(t *testing.T) {
	v := astro.Vec3{X: 1, Y: 2, Z: 3}
	scene := ToSceneCartesian(v, 10)
	if scene.X != 10 || scene.Y != 30 || scene.Z != -20 {
		t.Errorf("ToSceneCartesian = %+v, want {10,30,-20}", scene)
	}
}
