// Package satellite propagates NORAD two-line element sets with SGP4 and
// projects the result onto an observer's topocentric sky. The perturbation
// model itself is delegated to github.com/joshuaferrara/go-satellite, a
// well-known public algorithm this package makes no attempt to reproduce,
// and this package owns only the state machine around it: Parsed →
// Initialized → Propagated(t), collapsing to a terminal Dead on the first
// non-finite position.
package satellite

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	gosat "github.com/joshuaferrara/go-satellite"

	"github.com/litescript/skywatch/internal/astro"
	"github.com/litescript/skywatch/internal/model"
)

const degToRad = math.Pi / 180

// ErrInvalidTLE is returned when a line set fails the basic structural
// checks (length, line-number marker) before it ever reaches SGP4.
var ErrInvalidTLE = errors.New("satellite: invalid TLE")

// ErrDecayed names the failure of a propagation that produced a non-finite
// position — SGP4's signal for a decayed or otherwise unusable element set.
// Propagate does not return it; it reports that case as SatelliteView.Dead.
var ErrDecayed = errors.New("satellite: propagation failed, possible decay or invalid elements")

// State is a Tracker's position in the Parsed → Initialized →
// Propagated(t) → Dead state machine.
type State int

const (
	StateParsed State = iota
	StateInitialized
	StatePropagated
	StateDead
)

// Tracker is one satellite's SGP4 propagation state. Not safe for
// concurrent use — the engine creates one Tracker per satellite in
// LoadCatalogs and every BuildScene call propagates that same Tracker.
type Tracker struct {
	name  string
	tle   model.TLE
	state State
	sat   gosat.Satellite
}

// Parse validates a TLE's structure without initializing SGP4. Real
// checksum/field validation is SGP4's job once TLEToSat runs; this layer
// only rejects lines too malformed to be worth handing to it.
func Parse(tle model.TLE) (*Tracker, error) {
	if err := validateLine(tle.Line1, '1'); err != nil {
		return nil, err
	}
	if err := validateLine(tle.Line2, '2'); err != nil {
		return nil, err
	}
	return &Tracker{name: tle.Name, tle: tle, state: StateParsed}, nil
}

func validateLine(line string, wantLineNumber byte) error {
	line = strings.TrimRight(line, "\r\n")
	if len(line) < 69 {
		return fmt.Errorf("%w: line too short (%d chars)", ErrInvalidTLE, len(line))
	}
	if line[0] != wantLineNumber {
		return fmt.Errorf("%w: expected line %c, got %q", ErrInvalidTLE, wantLineNumber, line[0])
	}
	return nil
}

// Initialize builds the SGP4 satellite record from the parsed lines.
func (t *Tracker) Initialize() error {
	if t.state != StateParsed {
		return fmt.Errorf("satellite: Initialize called in state %d, want Parsed", t.state)
	}
	t.sat = gosat.TLEToSat(t.tle.Line1, t.tle.Line2, gosat.GravityWGS72)
	t.state = StateInitialized
	return nil
}

// NewTracker parses and initializes a TLE in one step, the common path for
// callers that don't need to inspect the intermediate Parsed state.
func NewTracker(tle model.TLE) (*Tracker, error) {
	t, err := Parse(tle)
	if err != nil {
		return nil, err
	}
	if err := t.Initialize(); err != nil {
		return nil, err
	}
	return t, nil
}

// Propagate advances the tracker to instant and projects the result onto
// the observer's topocentric sky. Once a Tracker has gone Dead, every
// subsequent call short-circuits to the same IsVisible=false sentinel view
// without touching SGP4 again.
func (t *Tracker) Propagate(instant time.Time, observer model.GeoLocation) model.SatelliteView {
	if t.state == StateDead {
		return deadView(t.name)
	}
	if t.state != StateInitialized && t.state != StatePropagated {
		return deadView(t.name)
	}

	year, month, day := instant.UTC().Date()
	hour, min, sec := instant.UTC().Clock()

	posECI, _ := gosat.Propagate(t.sat, year, int(month), day, hour, min, sec)
	if !finite3(posECI.X, posECI.Y, posECI.Z) {
		t.state = StateDead
		return deadView(t.name)
	}

	jd := gosat.JDay(year, int(month), day, hour, min, sec)

	obsCoords := gosat.LatLong{
		Latitude:  observer.LatitudeDeg * degToRad,
		Longitude: observer.LongitudeDeg * degToRad,
	}
	look := gosat.ECIToLookAngles(posECI, obsCoords, 0, jd)

	t.state = StatePropagated

	altaz := astro.Horizontal{
		AltDeg: look.El / degToRad,
		AzDeg:  astro.NormalizeDeg(look.Az / degToRad),
	}
	cart := astro.HorizontalToCartesian(altaz, satelliteSceneRadius)

	return model.SatelliteView{
		Name:      t.name,
		AltAzV:    altaz,
		Pos:       cart,
		IsVisible: true,
		RangeKm:   look.Rg,
		Dead:      false,
	}
}

// satelliteSceneRadius keeps satellites inside the star sphere so they
// render in front of the fixed stars rather than among them.
const satelliteSceneRadius = 90.0

// deadSentinelPos is the canonical position reported for a dropped or dead
// satellite: a point on the satellite sphere rather than the origin, so
// every satellite view keeps |Pos| == satelliteSceneRadius.
var deadSentinelPos = astro.Vec3{X: 0, Y: -satelliteSceneRadius, Z: 0}

func deadView(name string) model.SatelliteView {
	return model.SatelliteView{
		Name:      name,
		AltAzV:    astro.Horizontal{},
		Pos:       deadSentinelPos,
		IsVisible: false,
		RangeKm:   0,
		Dead:      true,
	}
}

func finite3(x, y, z float64) bool {
	return astro.Vec3{X: x, Y: y, Z: z}.Finite()
}
