// Package metrics instruments the engine with Prometheus collectors:
// scene-build latency, catalog load failures, and propagator failure
// counts. None of this is on the hot path of the scene math itself — it is
// pure observability.
package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// EngineCollector bundles the Prometheus metrics for a single Engine.
type EngineCollector struct {
	gatherer prometheus.Gatherer

	BuildSceneDuration   prometheus.Histogram
	CatalogLoadErrors    *prometheus.CounterVec
	SGP4Failures         prometheus.Counter
	KeplerNonConvergence prometheus.Counter
	VisibleObjects       *prometheus.GaugeVec
}

// NewEngineCollector registers the engine's metrics against reg, defaulting
// to the global registry when reg is nil. Registering the same collector
// twice (e.g. two Engines sharing a registry) returns the already-registered
// collector instead of erroring.
func NewEngineCollector(reg prometheus.Registerer) (*EngineCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	duration, err := registerHistogram(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "skywatch_scene_build_duration_seconds",
		Help:    "Wall-clock time spent building a scene.",
		Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5},
	}), "skywatch_scene_build_duration_seconds")
	if err != nil {
		return nil, err
	}

	catalogErrors, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "skywatch_catalog_load_errors_total",
		Help: "Catalog load failures, labeled by source (stars, deep_sky, fetch, satellite_tle).",
	}, []string{"source"}), "skywatch_catalog_load_errors_total")
	if err != nil {
		return nil, err
	}

	sgp4Failures, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "skywatch_sgp4_failures_total",
		Help: "SGP4 propagation failures (non-finite position), usually a decayed TLE.",
	}), "skywatch_sgp4_failures_total")
	if err != nil {
		return nil, err
	}

	keplerFailures, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "skywatch_kepler_nonconvergence_total",
		Help: "Kepler's-equation solves that hit the iteration cap without converging.",
	}), "skywatch_kepler_nonconvergence_total")
	if err != nil {
		return nil, err
	}

	visible, err := registerGaugeVec(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "skywatch_visible_objects",
		Help: "Visible object count in the most recent scene, labeled by kind.",
	}, []string{"kind"}), "skywatch_visible_objects")
	if err != nil {
		return nil, err
	}

	return &EngineCollector{
		gatherer:             gatherer,
		BuildSceneDuration:   duration,
		CatalogLoadErrors:    catalogErrors,
		SGP4Failures:         sgp4Failures,
		KeplerNonConvergence: keplerFailures,
		VisibleObjects:       visible,
	}, nil
}

// Handler exposes a ready-to-use /metrics handler for cmd/skywatch to mount.
func (c *EngineCollector) Handler() http.Handler {
	gatherer := c.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// ObserveVisible records the per-kind visible-object gauges for one scene.
func (c *EngineCollector) ObserveVisible(counts map[string]int) {
	if c == nil || c.VisibleObjects == nil {
		return
	}
	for kind, n := range counts {
		c.VisibleObjects.WithLabelValues(kind).Set(float64(n))
	}
}

func registerHistogram(reg prometheus.Registerer, h prometheus.Histogram, name string) (prometheus.Histogram, error) {
	if err := reg.Register(h); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Histogram); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return h, nil
}

func registerCounter(reg prometheus.Registerer, c prometheus.Counter, name string) (prometheus.Counter, error) {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return c, nil
}

func registerCounterVec(reg prometheus.Registerer, v *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(v); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return v, nil
}

func registerGaugeVec(reg prometheus.Registerer, v *prometheus.GaugeVec, name string) (*prometheus.GaugeVec, error) {
	if err := reg.Register(v); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.GaugeVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return v, nil
}
