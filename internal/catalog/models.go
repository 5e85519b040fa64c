// Package catalog ingests the star and deep-sky catalogs the scene
// package processes each frame: parsing the delimited HYG export and the
// SIMBAD-flavored deep-sky JSON, persisting a derived binary cache, and
// falling back to a small bundled sample when neither the cache nor the
// network is available.
package catalog

import "github.com/litescript/skywatch/internal/model"

// Version stamps a loaded catalog so the binary cache round-trip has an
// explicit key instead of a bare string scattered through call sites.
type Version string

// DeepSkyEntry mirrors model.DeepSkyObject for catalog entries before the
// scene processor has attached per-instant display attributes.
type DeepSkyEntry struct {
	ID            string
	Name          string
	Type          model.DeepSkyType
	RAHours       float64
	DecDeg        float64
	Magnitude     float64
	SizeArcmin    float64
	Constellation string
	Description   string
}

// Catalogs is the immutable set of loaded tables an Engine holds after
// LoadCatalogs returns.
type Catalogs struct {
	Version        Version
	Stars          []model.StarRecord
	DeepSky        []DeepSkyEntry
	Constellations []ConstellationDef
}

// ConstellationDef is a constellation's line-drawing definition: pairs of
// star names that the scene processor resolves against the processed-star
// index.
type ConstellationDef struct {
	Name         string
	Abbreviation string
	LabelStar    string // star whose position anchors the constellation label
	Lines        [][2]string
}
