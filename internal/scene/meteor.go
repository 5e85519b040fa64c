package scene

import (
	"time"

	"github.com/litescript/skywatch/internal/astro"
	"github.com/litescript/skywatch/internal/model"
)

// MeteorShowers is the static catalog of recurring showers this package
// projects radiants for. Radiant coordinates and peak dates are well-known
// annual figures; this is not meant to track IMO's refined per-year
// predictions.
var MeteorShowers = []model.MeteorShower{
	{ID: "quadrantids", Name: "Quadrantids", Peak: model.MonthDay{Month: 1, Day: 3},
		ActiveStart: model.MonthDay{Month: 12, Day: 28}, ActiveEnd: model.MonthDay{Month: 1, Day: 12},
		ZHR: 120, RadiantRA: 15.28, RadiantDec: 49.5, ParentBody: "2003 EH1", SpeedKmS: 41},
	{ID: "lyrids", Name: "Lyrids", Peak: model.MonthDay{Month: 4, Day: 22},
		ActiveStart: model.MonthDay{Month: 4, Day: 16}, ActiveEnd: model.MonthDay{Month: 4, Day: 25},
		ZHR: 18, RadiantRA: 18.13, RadiantDec: 33.3, ParentBody: "C/1861 G1 Thatcher", SpeedKmS: 49},
	{ID: "eta-aquariids", Name: "Eta Aquariids", Peak: model.MonthDay{Month: 5, Day: 6},
		ActiveStart: model.MonthDay{Month: 4, Day: 19}, ActiveEnd: model.MonthDay{Month: 5, Day: 28},
		ZHR: 50, RadiantRA: 22.47, RadiantDec: -1.0, ParentBody: "1P/Halley", SpeedKmS: 66},
	{ID: "perseids", Name: "Perseids", Peak: model.MonthDay{Month: 8, Day: 12},
		ActiveStart: model.MonthDay{Month: 7, Day: 17}, ActiveEnd: model.MonthDay{Month: 8, Day: 24},
		ZHR: 100, RadiantRA: 3.13, RadiantDec: 58.0, ParentBody: "109P/Swift-Tuttle", SpeedKmS: 59},
	{ID: "orionids", Name: "Orionids", Peak: model.MonthDay{Month: 10, Day: 21},
		ActiveStart: model.MonthDay{Month: 10, Day: 2}, ActiveEnd: model.MonthDay{Month: 11, Day: 7},
		ZHR: 20, RadiantRA: 6.33, RadiantDec: 15.5, ParentBody: "1P/Halley", SpeedKmS: 66},
	{ID: "leonids", Name: "Leonids", Peak: model.MonthDay{Month: 11, Day: 17},
		ActiveStart: model.MonthDay{Month: 11, Day: 6}, ActiveEnd: model.MonthDay{Month: 11, Day: 30},
		ZHR: 15, RadiantRA: 10.27, RadiantDec: 21.6, ParentBody: "55P/Tempel-Tuttle", SpeedKmS: 71},
	{ID: "geminids", Name: "Geminids", Peak: model.MonthDay{Month: 12, Day: 14},
		ActiveStart: model.MonthDay{Month: 12, Day: 4}, ActiveEnd: model.MonthDay{Month: 12, Day: 17},
		ZHR: 150, RadiantRA: 7.53, RadiantDec: 32.3, ParentBody: "3200 Phaethon", SpeedKmS: 35},
	{ID: "ursids", Name: "Ursids", Peak: model.MonthDay{Month: 12, Day: 22},
		ActiveStart: model.MonthDay{Month: 12, Day: 17}, ActiveEnd: model.MonthDay{Month: 12, Day: 26},
		ZHR: 10, RadiantRA: 14.60, RadiantDec: 75.8, ParentBody: "8P/Tuttle", SpeedKmS: 33},
}

// inWindow reports whether (month, day) falls in the closed [start, end]
// window, handling the year-boundary wraparound explicitly when start
// sorts after end.
func inWindow(month, day int, start, end model.MonthDay) bool {
	md := month*100 + day
	s := start.Month*100 + start.Day
	e := end.Month*100 + end.Day
	if s <= e {
		return md >= s && md <= e
	}
	return md >= s || md <= e
}

// ActiveShowers returns every catalog shower whose active window contains
// instant's (month, day).
func ActiveShowers(instant time.Time) []model.MeteorShower {
	instant = instant.UTC()
	month, day := int(instant.Month()), instant.Day()

	var out []model.MeteorShower
	for _, sh := range MeteorShowers {
		if inWindow(month, day, sh.ActiveStart, sh.ActiveEnd) {
			out = append(out, sh)
		}
	}
	return out
}

// ProjectRadiant converts a shower's radiant to horizontal/Cartesian and
// reports whether it's currently active.
func ProjectRadiant(shower model.MeteorShower, instant time.Time, lstHours, observerLatDeg float64) model.RadiantView {
	month, day := instant.UTC().Month(), instant.UTC().Day()
	active := inWindow(int(month), day, shower.ActiveStart, shower.ActiveEnd)

	altaz := astro.EquatorialToHorizontal(astro.Equatorial{RAHours: shower.RadiantRA, DecDeg: shower.RadiantDec}, observerLatDeg, lstHours)
	pos := astro.HorizontalToCartesian(altaz, astro.SceneRadius)

	return model.RadiantView{
		Shower:    shower,
		AltAzV:    altaz,
		Pos:       pos,
		IsVisible: active && altaz.AltDeg > 0,
		IsActive:  active,
	}
}
