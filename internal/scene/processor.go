// Package scene is the per-instant pipeline that turns immutable catalogs
// plus (observer, instant, options) into a Scene, the meteor and event
// calendar on top of it, the scene-level queries, and the facade that ties
// all of it together.
package scene

import (
	"strings"

	"github.com/litescript/skywatch/internal/astro"
	"github.com/litescript/skywatch/internal/catalog"
	"github.com/litescript/skywatch/internal/model"
)

// spectralColor maps the standard O/B/A/F/G/K/M/L/T/C/S spectral sequence
// to a display color. Unknown classes fall back to white.
var spectralColor = map[byte]string{
	'O': "#9bb0ff", 'B': "#aabfff", 'A': "#cad7ff", 'F': "#f8f7ff",
	'G': "#fff4ea", 'K': "#ffd2a1", 'M': "#ffcc6f", 'L': "#ff8080",
	'T': "#a35656", 'C': "#ffb347", 'S': "#ff9955",
}

func spectralToColor(spectralClass string) string {
	if spectralClass == "" {
		return "#ffffff"
	}
	if c, ok := spectralColor[spectralClass[0]]; ok {
		return c
	}
	return "#ffffff"
}

func lerp(a, b, t float64) float64 { return a + (b-a)*t }

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// starMagLimit and deepSkyMagLimit compute the light-pollution-adjusted
// magnitude limit beyond which an object is dropped as not visible.
func starMagLimit(lightPollution float64) float64   { return 6.5 - lightPollution*3.5 }
func deepSkyMagLimit(lightPollution float64) float64 { return 7.0 - lightPollution*4.0 }

// ProcessStars runs the per-star pipeline: horizontal/Cartesian
// projection, display-attribute derivation, light-pollution filtering, and
// the mandatory finite-position check. Input order is preserved, which the
// caller relies on when building the name index (brightness precedence on
// name collisions is the catalog's sort order, carried through unchanged).
func ProcessStars(stars []model.StarRecord, lstHours, observerLatDeg, lightPollution float64) ([]model.ProcessedStar, map[string]int) {
	drops := map[string]int{}
	limit := starMagLimit(lightPollution)

	out := make([]model.ProcessedStar, 0, len(stars))
	for _, s := range stars {
		if s.ApparentMag > limit {
			drops["light_pollution"]++
			continue
		}

		altaz := astro.EquatorialToHorizontal(astro.Equatorial{RAHours: s.RAHours, DecDeg: s.DecDeg}, observerLatDeg, lstHours)
		pos := astro.HorizontalToCartesian(altaz, astro.SceneRadius)
		if !pos.Finite() {
			drops["non_finite_position"]++
			continue
		}

		t := clamp01((s.ApparentMag - (-1.5)) / 6.5)
		out = append(out, model.ProcessedStar{
			StarRecord: s,
			AltAzV:     altaz,
			Pos:        pos,
			IsVisible:  altaz.AltDeg > 0,
			Color:      spectralToColor(s.SpectralClass),
			Size:       lerp(0.8, 0.15, t),
			Opacity:    lerp(1.0, 0.4, t),
		})
	}
	return out, drops
}

// ProcessDeepSky mirrors ProcessStars for the static deep-sky catalog:
// light-pollution filtering against the deep-sky limit, then the same
// mandatory finite-position check. Deep-sky entries have no spectral
// class or brightness-driven size/opacity curve, just a fixed set of
// display fields.
func ProcessDeepSky(entries []catalog.DeepSkyEntry, lstHours, observerLatDeg, lightPollution float64) ([]model.DeepSkyObject, map[string]int) {
	drops := map[string]int{}
	limit := deepSkyMagLimit(lightPollution)

	out := make([]model.DeepSkyObject, 0, len(entries))
	for _, e := range entries {
		if e.Magnitude > limit {
			drops["light_pollution"]++
			continue
		}

		altaz := astro.EquatorialToHorizontal(astro.Equatorial{RAHours: e.RAHours, DecDeg: e.DecDeg}, observerLatDeg, lstHours)
		pos := astro.HorizontalToCartesian(altaz, astro.SceneRadius)
		if !pos.Finite() {
			drops["non_finite_position"]++
			continue
		}

		out = append(out, model.DeepSkyObject{
			ID:            e.ID,
			Name:          e.Name,
			Type:          e.Type,
			AltAzV:        altaz,
			Pos:           pos,
			IsVisible:     altaz.AltDeg > 0,
			Magnitude:     e.Magnitude,
			SizeArcmin:    e.SizeArcmin,
			Constellation: e.Constellation,
			Description:   e.Description,
		})
	}
	return out, drops
}

// StarIndex is a case-insensitive name → ProcessedStar lookup used to
// resolve constellation line endpoints. Built from the
// already-sorted ProcessStars output, so on a name collision the
// brightest entry wins (first write survives; it was inserted first).
type StarIndex map[string]model.ProcessedStar

func BuildStarIndex(stars []model.ProcessedStar) StarIndex {
	idx := make(StarIndex, len(stars))
	for _, s := range stars {
		key := strings.ToLower(s.Name)
		if _, exists := idx[key]; !exists {
			idx[key] = s
		}
	}
	return idx
}

// AssembleConstellations builds each constellation's segment list from the
// star index, silently dropping any segment whose endpoint doesn't
// resolve, and the whole constellation if no segment survives.
func AssembleConstellations(defs []catalog.ConstellationDef, idx StarIndex) []model.ConstellationDisplay {
	out := make([]model.ConstellationDisplay, 0, len(defs))
	for _, def := range defs {
		var segments []model.Segment
		for _, line := range def.Lines {
			a, okA := idx[strings.ToLower(line[0])]
			b, okB := idx[strings.ToLower(line[1])]
			if !okA || !okB {
				continue
			}
			segments = append(segments, model.Segment{A: a.Pos, B: b.Pos})
		}
		if len(segments) == 0 {
			continue
		}

		label, ok := idx[strings.ToLower(def.LabelStar)]
		labelPos := label.Pos
		visible := ok && label.IsVisible
		if !ok {
			labelPos = segments[0].A
		}

		out = append(out, model.ConstellationDisplay{
			Name:         def.Name,
			Abbreviation: def.Abbreviation,
			Segments:     segments,
			LabelPos:     labelPos,
			IsVisible:    visible,
		})
	}
	return out
}
