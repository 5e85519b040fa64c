// Package ephemeris is the gateway between raw orbital/lunar theory and the
// scene processor: Provider is the black-box contract for Sun/Moon/planet
// positions, and this package's default implementation is a low-precision
// analytic stand-in for a full VSOP87/ELP series. Moons of planets other
// than Jupiter are schematic, not ephemeris-backed — see moons.go.
package ephemeris

import (
	"time"

	"github.com/litescript/skywatch/internal/astro"
	"github.com/litescript/skywatch/internal/model"
)

// Body identifies a Solar System body this package knows how to position.
type Body int

const (
	Sun Body = iota
	Moon
	Mercury
	Venus
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
	Pluto
)

func (b Body) String() string {
	switch b {
	case Sun:
		return "Sun"
	case Moon:
		return "Moon"
	case Mercury:
		return "Mercury"
	case Venus:
		return "Venus"
	case Mars:
		return "Mars"
	case Jupiter:
		return "Jupiter"
	case Saturn:
		return "Saturn"
	case Uranus:
		return "Uranus"
	case Neptune:
		return "Neptune"
	case Pluto:
		return "Pluto"
	default:
		return "unknown"
	}
}

// Bodies lists every body this package positions, in display order.
var Bodies = []Body{Sun, Moon, Mercury, Venus, Mars, Jupiter, Saturn, Uranus, Neptune, Pluto}

// Position is what a Provider reports for one body at one instant: apparent
// equatorial coordinates, plus optional magnitude and (Moon-only) phase.
type Position struct {
	RAHours        float64
	DecDeg         float64
	Magnitude      *float64
	PhaseDeg       *float64   // non-nil only for the Moon
	HeliocentricAU astro.Vec3 // geocentric ecliptic vector (AU) the RA/Dec were derived from
}

// Provider evaluates apparent positions for Solar System bodies. The
// default implementation (this package's analyticProvider) is a low-
// precision stand-in for a real VSOP87/ELP library; a caller wanting
// higher fidelity can supply their own.
type Provider interface {
	Position(body Body, instant time.Time) (Position, error)
}

// NewProvider returns the default analytic Provider.
func NewProvider() Provider {
	return analyticProvider{}
}

// PositionOf derives a model.CelestialBody from a Provider's apparent
// equatorial position for one body at one instant, for one observer.
// Solar System bodies are always reported IsVisible=true regardless of
// altitude, so a selected planet can always be navigated to.
func PositionOf(p Provider, body Body, instant time.Time, observer model.GeoLocation) (model.CelestialBody, error) {
	pos, err := p.Position(body, instant)
	if err != nil {
		return model.CelestialBody{Name: body.String(), IsVisible: true}, err
	}

	jd := astro.JulianDate(instant)
	lst := astro.LSTHours(astro.GMSTHours(jd), observer.LongitudeDeg)
	altaz := astro.EquatorialToHorizontal(astro.Equatorial{RAHours: pos.RAHours, DecDeg: pos.DecDeg}, observer.LatitudeDeg, lst)
	cart := astro.HorizontalToCartesian(altaz, astro.SceneRadius)

	return model.CelestialBody{
		Name:      body.String(),
		AltAzV:    altaz,
		Pos:       cart,
		IsVisible: true,
		Magnitude: pos.Magnitude,
		Phase:     pos.PhaseDeg,
	}, nil
}
