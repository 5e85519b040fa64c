package catalog

import "github.com/litescript/skywatch/internal/model"

// FallbackVersion tags the bundled sample so a consumer can tell it apart
// from a network-sourced catalog in diagnostics.
const FallbackVersion Version = "bundled-fallback-v1"

// Fallback returns the small bundled catalog used when neither the cache
// nor the network is available. It is not the HYG catalog — just enough
// bright stars, deep-sky showpieces, and constellation outlines to keep
// a rendered scene meaningful with zero external dependencies.
func Fallback() Catalogs {
	return Catalogs{
		Version:        FallbackVersion,
		Stars:          fallbackStars(),
		DeepSky:        fallbackDeepSky(),
		Constellations: BundledConstellations(),
	}
}

// BundledConstellations returns the engine's fixed line-drawing definitions.
// There is no external fetch format for constellation figures, so these
// ship with the binary and are used regardless of whether the star/deep-sky
// catalogs came from cache, network, or fallback.
func BundledConstellations() []ConstellationDef {
	return fallbackConstellations()
}

func fallbackStars() []model.StarRecord {
	return []model.StarRecord{
		{ID: 32349, Name: "Sirius", RAHours: 6.7525, DecDeg: -16.7161, ApparentMag: -1.46, SpectralClass: "A1"},
		{ID: 30438, Name: "Canopus", RAHours: 6.3992, DecDeg: -52.6956, ApparentMag: -0.74, SpectralClass: "F0"},
		{ID: 69673, Name: "Arcturus", RAHours: 14.2610, DecDeg: 19.1825, ApparentMag: -0.05, SpectralClass: "K1"},
		{ID: 91262, Name: "Vega", RAHours: 18.6156, DecDeg: 38.7837, ApparentMag: 0.03, SpectralClass: "A0"},
		{ID: 24608, Name: "Capella", RAHours: 5.2782, DecDeg: 45.9980, ApparentMag: 0.08, SpectralClass: "G3"},
		{ID: 24436, Name: "Rigel", RAHours: 5.2423, DecDeg: -8.2016, ApparentMag: 0.13, SpectralClass: "B8"},
		{ID: 37279, Name: "Procyon", RAHours: 7.6550, DecDeg: 5.2250, ApparentMag: 0.37, SpectralClass: "F5"},
		{ID: 27989, Name: "Betelgeuse", RAHours: 5.9195, DecDeg: 7.4071, ApparentMag: 0.50, SpectralClass: "M1"},
		{ID: 60718, Name: "Hadar", RAHours: 14.0637, DecDeg: -60.3730, ApparentMag: 0.61, SpectralClass: "B1"},
		{ID: 113368, Name: "Fomalhaut", RAHours: 22.9608, DecDeg: -29.6222, ApparentMag: 1.16, SpectralClass: "A3"},
		{ID: 97649, Name: "Altair", RAHours: 19.8464, DecDeg: 8.8683, ApparentMag: 0.77, SpectralClass: "A7"},
		{ID: 11767, Name: "Polaris", RAHours: 2.5307, DecDeg: 89.2641, ApparentMag: 1.98, SpectralClass: "F7"},
		{ID: 21421, Name: "Aldebaran", RAHours: 4.5987, DecDeg: 16.5093, ApparentMag: 0.85, SpectralClass: "K5"},
		{ID: 25336, Name: "Bellatrix", RAHours: 5.4189, DecDeg: 6.3497, ApparentMag: 1.64, SpectralClass: "B2"},
		{ID: 26311, Name: "Alnilam", RAHours: 5.6036, DecDeg: -1.2019, ApparentMag: 1.69, SpectralClass: "B0"},
		{ID: 25930, Name: "Alnitak", RAHours: 5.6793, DecDeg: -1.9426, ApparentMag: 1.77, SpectralClass: "O9"},
		{ID: 25428, Name: "Mintaka", RAHours: 5.5335, DecDeg: -0.2991, ApparentMag: 2.23, SpectralClass: "O9"},
		{ID: 54061, Name: "Dubhe", RAHours: 11.0621, DecDeg: 61.7511, ApparentMag: 1.79, SpectralClass: "K0"},
		{ID: 65378, Name: "Merak", RAHours: 11.0307, DecDeg: 56.3824, ApparentMag: 2.37, SpectralClass: "A1"},
		{ID: 67301, Name: "Alioth", RAHours: 12.9005, DecDeg: 55.9598, ApparentMag: 1.77, SpectralClass: "A0"},
	}
}

func fallbackDeepSky() []DeepSkyEntry {
	return []DeepSkyEntry{
		{ID: "m31", Name: "Andromeda Galaxy", Type: model.DeepSkyGalaxy, RAHours: 0.7123, DecDeg: 41.2692, Magnitude: 3.44, SizeArcmin: 178, Constellation: "Andromeda", Description: "Nearest large spiral galaxy"},
		{ID: "m42", Name: "Orion Nebula", Type: model.DeepSkyNebula, RAHours: 5.5883, DecDeg: -5.3911, Magnitude: 4.0, SizeArcmin: 85, Constellation: "Orion", Description: "Nearest star-forming region"},
		{ID: "m45", Name: "Pleiades", Type: model.DeepSkyCluster, RAHours: 3.7917, DecDeg: 24.1167, Magnitude: 1.6, SizeArcmin: 110, Constellation: "Taurus", Description: "Open cluster, the Seven Sisters"},
		{ID: "m57", Name: "Ring Nebula", Type: model.DeepSkyPlanetary, RAHours: 18.8931, DecDeg: 33.0289, Magnitude: 8.8, SizeArcmin: 1.4, Constellation: "Lyra", Description: "Planetary nebula"},
		{ID: "m13", Name: "Hercules Cluster", Type: model.DeepSkyCluster, RAHours: 16.6947, DecDeg: 36.4597, Magnitude: 5.8, SizeArcmin: 20, Constellation: "Hercules", Description: "Globular cluster"},
	}
}

func fallbackConstellations() []ConstellationDef {
	return []ConstellationDef{
		{
			Name: "Orion", Abbreviation: "Ori", LabelStar: "Betelgeuse",
			Lines: [][2]string{
				{"Betelgeuse", "Bellatrix"},
				{"Bellatrix", "Mintaka"},
				{"Mintaka", "Alnilam"},
				{"Alnilam", "Alnitak"},
				{"Alnitak", "Betelgeuse"},
				{"Mintaka", "Rigel"},
			},
		},
		{
			Name: "Ursa Major", Abbreviation: "UMa", LabelStar: "Dubhe",
			Lines: [][2]string{
				{"Dubhe", "Merak"},
				{"Merak", "Alioth"},
				{"Alioth", "Dubhe"},
			},
		},
	}
}
