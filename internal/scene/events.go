package scene

import (
	"sort"
	"time"

	"github.com/litescript/skywatch/internal/astro"
	"github.com/litescript/skywatch/internal/ephemeris"
	"github.com/litescript/skywatch/internal/model"
)

// phaseEventNames labels the four quarter-phase angles this package
// root-finds.
var phaseEventNames = map[float64]string{
	0:   "New Moon",
	90:  "First Quarter",
	180: "Full Moon",
	270: "Last Quarter",
}

// solsticeEquinoxNames labels the four ecliptic-longitude crossings. The
// names use the calendar month, so they read the same in either
// hemisphere.
var solsticeEquinoxNames = map[float64]struct {
	name string
	kind model.EventKind
}{
	0:   {"March Equinox", model.EventEquinox},
	90:  {"June Solstice", model.EventSolstice},
	180: {"September Equinox", model.EventEquinox},
	270: {"December Solstice", model.EventSolstice},
}

// UpcomingEvents returns quarter moon phases, named shower peaks, and the
// four annual solstice/equinox crossings, all within [from, from+daysAhead],
// sorted ascending by instant then kind then name.
func UpcomingEvents(from time.Time, daysAhead int) []model.Event {
	var events []model.Event

	for angle, name := range phaseEventNames {
		if instant, ok := findNextCrossing(from, daysAhead, 1.0, func(jd float64) float64 {
			return ephemeris.MoonPhaseDeg(jd)
		}, angle); ok {
			events = append(events, model.Event{Kind: model.EventMoonPhase, Instant: instant, Name: name})
		}
	}

	for angle, info := range solsticeEquinoxNames {
		if instant, ok := findNextCrossing(from, daysAhead, 1.0, func(jd float64) float64 {
			return ephemeris.SunEclipticLongitudeDeg(jd)
		}, angle); ok {
			events = append(events, model.Event{Kind: info.kind, Instant: instant, Name: info.name})
		}
	}

	for _, sh := range MeteorShowers {
		for _, year := range []int{from.Year(), from.Year() + 1} {
			peak := time.Date(year, time.Month(sh.Peak.Month), sh.Peak.Day, 0, 0, 0, 0, time.UTC)
			if !peak.Before(from) && peak.Before(from.AddDate(0, 0, daysAhead)) {
				events = append(events, model.Event{Kind: model.EventMeteorPeak, Instant: peak, Name: sh.Name + " peak"})
			}
		}
	}

	sort.Slice(events, func(i, j int) bool {
		if !events[i].Instant.Equal(events[j].Instant) {
			return events[i].Instant.Before(events[j].Instant)
		}
		if events[i].Kind != events[j].Kind {
			return events[i].Kind < events[j].Kind
		}
		return events[i].Name < events[j].Name
	})
	return events
}

// findNextCrossing locates the next time within [from, from+daysAhead]
// that angleFunc(jd) crosses target, by coarse sampling followed by
// bisection on the signed angular difference. angleFunc is assumed to
// increase roughly monotonically over the step size (true for both lunar
// phase and solar ecliptic longitude at a 1-day cadence).
func findNextCrossing(from time.Time, daysAhead int, stepDays float64, angleFunc func(jd float64) float64, target float64) (time.Time, bool) {
	start := astro.JulianDate(from)
	end := start + float64(daysAhead)

	signedDiff := func(jd float64) float64 {
		return astro.NormalizeHourAngleDeg(angleFunc(jd) - target)
	}

	prevJD := start
	prevDiff := signedDiff(prevJD)

	for jd := start + stepDays; jd <= end; jd += stepDays {
		diff := signedDiff(jd)
		if prevDiff <= 0 && diff > 0 {
			root := bisectCrossing(signedDiff, prevJD, jd)
			return jdToTime(root), true
		}
		prevJD, prevDiff = jd, diff
	}
	return time.Time{}, false
}

func bisectCrossing(signedDiff func(jd float64) float64, lo, hi float64) float64 {
	for i := 0; i < 40 && hi-lo > 1e-6; i++ {
		mid := (lo + hi) / 2
		if signedDiff(mid) <= 0 {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}

func jdToTime(jd float64) time.Time {
	unixSeconds := (jd - 2440587.5) * 86400.0
	sec := int64(unixSeconds)
	nsec := int64((unixSeconds - float64(sec)) * 1e9)
	return time.Unix(sec, nsec).UTC()
}
