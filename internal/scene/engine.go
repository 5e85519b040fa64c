package scene

import (
	"bytes"
	"context"
	"time"

	"github.com/litescript/skywatch/internal/astro"
	"github.com/litescript/skywatch/internal/catalog"
	"github.com/litescript/skywatch/internal/ephemeris"
	"github.com/litescript/skywatch/internal/kepler"
	"github.com/litescript/skywatch/internal/logging"
	"github.com/litescript/skywatch/internal/metrics"
	"github.com/litescript/skywatch/internal/model"
	"github.com/litescript/skywatch/internal/satellite"
)

// minorBodyAUToSceneUnits scales a minor planet's heliocentric AU position
// onto the scene sphere. The exact scale is an implementation choice;
// asteroid heliocentric distances run 2-5 AU, so this keeps them well
// inside the star sphere's radius.
const minorBodyAUToSceneUnits = 15.0

// Options configures one BuildScene call.
type Options struct {
	LightPollution     float64 // 0 (none) .. 1 (severe)
	IncludeMinorBodies bool
	IncludeSatellites  bool
	CameraFOVDeg       float64
}

// Config controls Engine construction.
type Config struct {
	CachePath string
	Fetcher   *catalog.Fetcher
	Logger    logging.Logger
	Metrics   *metrics.EngineCollector
}

// Engine owns the loaded catalogs and TLE/minor-body tables and exposes
// two operations: the async LoadCatalogs and the pure BuildScene. An
// Engine is safe to reuse across many BuildScene calls but not for
// concurrent LoadCatalogs reloads.
type Engine struct {
	cachePath string
	fetcher   *catalog.Fetcher
	logger    logging.Logger
	metrics   *metrics.EngineCollector

	catalogs catalog.Catalogs
	provider ephemeris.Provider

	minorBodies []model.OrbitalElements
	trackers    []*satellite.Tracker
}

// NewEngine constructs an Engine with no catalogs loaded yet — callers must
// call LoadCatalogs before the first BuildScene.
func NewEngine(cfg Config) *Engine {
	fetcher := cfg.Fetcher
	if fetcher == nil {
		fetcher = catalog.NewFetcher()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Noop()
	}
	return &Engine{
		cachePath: cfg.CachePath,
		fetcher:   fetcher,
		logger:    logger,
		metrics:   cfg.Metrics,
		provider:  ephemeris.NewProvider(),
	}
}

// LoadCatalogs is the engine's one suspension point: try the on-disk
// cache, fall back to a network fetch on a miss, and fall back again to the
// bundled sample if the fetch itself fails. Minor-body elements and the
// satellite TLE set are bundled and always available, so they're loaded
// unconditionally alongside the star/deep-sky catalogs.
func (e *Engine) LoadCatalogs(ctx context.Context) error {
	version := catalog.Version("hyg-v35+simbad-deepsky-v1")

	if cat, ok, err := catalog.LoadCache(e.cachePath, version); err == nil && ok {
		cat.Constellations = catalog.BundledConstellations()
		e.catalogs = cat
		e.logger.Info(ctx, "catalog cache hit", logging.String("version", string(cat.Version)))
	} else {
		cat, fetchErr := e.fetchCatalogs(ctx, version)
		if fetchErr != nil {
			e.countCatalogError(ctx, "fetch", fetchErr)
			cat = catalog.Fallback()
			e.logger.Warn(ctx, "catalog fetch failed, using bundled fallback", logging.Err(fetchErr))
		} else if err := catalog.SaveCache(e.cachePath, cat); err != nil {
			e.logger.Warn(ctx, "catalog cache save failed", logging.Err(err))
		}
		e.catalogs = cat
	}

	e.minorBodies = catalog.MinorBodyElements()

	e.trackers = e.trackers[:0]
	for _, tle := range catalog.BundledSatellites() {
		tr, err := satellite.NewTracker(tle)
		if err != nil {
			e.countCatalogError(ctx, "satellite_tle", err)
			e.logger.Warn(ctx, "discarding invalid bundled TLE", logging.String("name", tle.Name), logging.Err(err))
			continue
		}
		e.trackers = append(e.trackers, tr)
	}

	return nil
}

func (e *Engine) fetchCatalogs(ctx context.Context, version catalog.Version) (catalog.Catalogs, error) {
	starsRaw, err := e.fetcher.FetchStars(ctx)
	if err != nil {
		e.countCatalogError(ctx, "stars", err)
		return catalog.Catalogs{}, err
	}
	stars, rejected, err := catalog.ParseStars(bytes.NewReader(starsRaw))
	if err != nil {
		e.countCatalogError(ctx, "stars", err)
		return catalog.Catalogs{}, err
	}
	if rejected > 0 {
		e.logger.Debug(ctx, "star rows rejected", logging.Int("count", rejected))
	}

	deepSkyRaw, err := e.fetcher.FetchDeepSky(ctx)
	if err != nil {
		e.countCatalogError(ctx, "deep_sky", err)
		return catalog.Catalogs{}, err
	}
	deepSky, rejected, err := catalog.ParseDeepSky(bytes.NewReader(deepSkyRaw))
	if err != nil {
		e.countCatalogError(ctx, "deep_sky", err)
		return catalog.Catalogs{}, err
	}
	if rejected > 0 {
		e.logger.Debug(ctx, "deep-sky rows rejected", logging.Int("count", rejected))
	}

	return catalog.Catalogs{
		Version:        version,
		Stars:          stars,
		DeepSky:        deepSky,
		Constellations: catalog.BundledConstellations(),
	}, nil
}

func (e *Engine) countCatalogError(ctx context.Context, source string, err error) {
	if e.metrics != nil {
		e.metrics.CatalogLoadErrors.WithLabelValues(source).Inc()
	}
	e.logger.Error(ctx, "catalog load error", logging.String("source", source), logging.Err(err))
}

// BuildScene is the engine's pure, synchronous composition of every other
// package: it computes LST once, then runs every per-kind processor
// against the engine's loaded catalogs and bundled tables, producing an
// immutable Scene owned entirely by the caller.
func (e *Engine) BuildScene(observer model.GeoLocation, instant time.Time, opts Options) model.Scene {
	wallStart := time.Now()
	jd := astro.JulianDate(instant)
	lst := astro.LSTHours(astro.GMSTHours(jd), observer.LongitudeDeg)

	stars, starDrops := ProcessStars(e.catalogs.Stars, lst, observer.LatitudeDeg, opts.LightPollution)
	deepSky, deepSkyDrops := ProcessDeepSky(e.catalogs.DeepSky, lst, observer.LatitudeDeg, opts.LightPollution)
	starIndex := BuildStarIndex(stars)
	constellations := AssembleConstellations(e.catalogs.Constellations, starIndex)

	bodies := make([]model.CelestialBody, 0, len(ephemeris.Bodies))
	bodyIndex := make(map[ephemeris.Body]int, len(ephemeris.Bodies))
	bodyAltAz := make(map[ephemeris.Body]astro.Horizontal, len(ephemeris.Bodies))
	for _, b := range ephemeris.Bodies {
		cb, err := ephemeris.PositionOf(e.provider, b, instant, observer)
		if err != nil {
			e.logger.Warn(context.Background(), "ephemeris position failed", logging.String("body", b.String()), logging.Err(err))
		}
		bodyIndex[b] = len(bodies)
		bodyAltAz[b] = cb.AltAzV
		bodies = append(bodies, cb)
	}

	moons := ephemeris.NaturalSatellites(instant, bodyIndex, bodyAltAz, opts.CameraFOVDeg)

	var minorBodies []model.MinorBodyView
	if opts.IncludeMinorBodies {
		minorBodies = e.buildMinorBodies(jd)
	}

	var satellites []model.SatelliteView
	if opts.IncludeSatellites {
		satellites = e.buildSatellites(instant, observer)
	}

	var meteors []model.RadiantView
	for _, sh := range ActiveShowers(instant) {
		meteors = append(meteors, ProjectRadiant(sh, instant, lst, observer.LatitudeDeg))
	}

	drops := mergeDrops(starDrops, deepSkyDrops)
	health := model.SceneHealth{
		StarsIn:       len(e.catalogs.Stars),
		StarsOut:      len(stars),
		DropsByReason: drops,
	}

	scene := model.Scene{
		Instant:        instant,
		Observer:       observer,
		Stars:          stars,
		Bodies:         bodies,
		Moons:          moons,
		Constellations: constellations,
		DeepSky:        deepSky,
		MeteorShowers:  meteors,
		MinorBodies:    minorBodies,
		Satellites:     satellites,
		Health:         health,
	}

	if e.metrics != nil {
		e.metrics.BuildSceneDuration.Observe(time.Since(wallStart).Seconds())
		e.metrics.ObserveVisible(VisibleCounts(scene))
	}

	return scene
}

func (e *Engine) buildMinorBodies(jd float64) []model.MinorBodyView {
	earthHelio := ephemeris.EarthHeliocentric(jd)

	out := make([]model.MinorBodyView, 0, len(e.minorBodies))
	for _, el := range e.minorBodies {
		helio, converged := kepler.Position(el, jd)
		if !converged && e.metrics != nil {
			e.metrics.KeplerNonConvergence.Inc()
		}

		geocentric := helio.Sub(earthHelio)
		pos := kepler.ToSceneCartesian(geocentric, minorBodyAUToSceneUnits)
		altaz := astro.CartesianToHorizontal(pos, pos.Norm())

		out = append(out, model.MinorBodyView{
			Name:           el.Name,
			HeliocentricAU: helio,
			AltAzV:         altaz,
			Pos:            pos,
			IsVisible:      converged,
			Converged:      converged,
		})
	}
	return out
}

func (e *Engine) buildSatellites(instant time.Time, observer model.GeoLocation) []model.SatelliteView {
	out := make([]model.SatelliteView, 0, len(e.trackers))
	for _, tr := range e.trackers {
		view := tr.Propagate(instant, observer)
		if view.Dead && e.metrics != nil {
			e.metrics.SGP4Failures.Inc()
		}
		out = append(out, view)
	}
	return out
}

func mergeDrops(maps ...map[string]int) map[string]int {
	out := map[string]int{}
	for _, m := range maps {
		for k, v := range m {
			out[k] += v
		}
	}
	return out
}
