package scene

import (
	"math"

	"github.com/litescript/skywatch/internal/model"
)

// bestInitialViewFallback is returned when no sufficiently bright star is
// visible to weight a centroid: south, mid-sky.
var bestInitialViewFallback = HorizontalView{AzimuthDeg: 180, AltitudeDeg: 45}

// HorizontalView is the (azimuth, altitude) pair BestInitialView returns;
// a plain struct rather than astro.Horizontal since this isn't itself a
// position, just a suggested camera heading.
type HorizontalView struct {
	AzimuthDeg, AltitudeDeg float64
}

// planetWeight is the fixed brightness weight assigned to every visible
// non-Sun Solar System body, regardless of its actual magnitude.
const planetWeight = 5.0

// BestInitialView suggests a camera heading framing the brightest currently
// visible objects. Azimuth is cyclic, so the centroid is computed by
// decomposing each contribution into (sin, cos) components, weighting
// those, and recovering the angle via atan2, avoiding the discontinuity a
// naive raw average would hit at the 0°/360° seam.
func BestInitialView(stars []model.ProcessedStar, bodies []model.CelestialBody) HorizontalView {
	var sumSin, sumCos, sumAlt, totalWeight float64
	any := false

	for _, s := range stars {
		if !s.IsVisible || s.ApparentMag >= 3 {
			continue
		}
		w := math.Pow(2.512, 3-s.ApparentMag)
		accumulate(&sumSin, &sumCos, &sumAlt, &totalWeight, s.AltAzV.AzDeg, s.AltAzV.AltDeg, w)
		any = true
	}

	for _, b := range bodies {
		if b.Name == "Sun" || !b.IsVisible {
			continue
		}
		accumulate(&sumSin, &sumCos, &sumAlt, &totalWeight, b.AltAzV.AzDeg, b.AltAzV.AltDeg, planetWeight)
		any = true
	}

	if !any || totalWeight == 0 {
		return bestInitialViewFallback
	}

	az := math.Atan2(sumSin/totalWeight, sumCos/totalWeight) * 180 / math.Pi
	if az < 0 {
		az += 360
	}
	alt := clampRange(sumAlt/totalWeight, 20, 70)

	return HorizontalView{AzimuthDeg: az, AltitudeDeg: alt}
}

func accumulate(sumSin, sumCos, sumAlt, totalWeight *float64, azDeg, altDeg, weight float64) {
	rad := azDeg * math.Pi / 180
	*sumSin += weight * math.Sin(rad)
	*sumCos += weight * math.Cos(rad)
	*sumAlt += weight * altDeg
	*totalWeight += weight
}

func clampRange(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// VisibleCounts tallies visible objects by ObjectKind, for the metrics
// gauge and for any caller that wants a quick scene summary without
// walking AllObjects itself.
func VisibleCounts(sc model.Scene) map[string]int {
	counts := map[string]int{}
	for _, obj := range sc.AllObjects() {
		if obj.Visible() {
			counts[obj.Kind.String()]++
		}
	}
	return counts
}
