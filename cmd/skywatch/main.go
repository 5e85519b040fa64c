// Command skywatch is a terminal sky-dome viewer for the planetarium
// engine: point it at an observer and an instant and it renders the
// current scene, either as a live Bubble Tea dome or as one of several
// headless text reports.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/litescript/skywatch/internal/catalog"
	"github.com/litescript/skywatch/internal/logging"
	"github.com/litescript/skywatch/internal/metrics"
	"github.com/litescript/skywatch/internal/model"
	"github.com/litescript/skywatch/internal/scene"
	"github.com/litescript/skywatch/internal/version"
)

func main() {
	showVersion := flag.Bool("version", false, "Print version and exit")
	lat := flag.Float64("lat", 40.7128, "Observer latitude in degrees")
	lon := flag.Float64("lon", -74.0060, "Observer longitude in degrees")
	atTime := flag.String("time", "", "Instant to render, RFC3339 (default: now)")
	lightPollution := flag.Float64("light-pollution", 0.3, "Light pollution, 0 (none) to 1 (severe)")
	includeMinorBodies := flag.Bool("minor-bodies", true, "Include main-belt asteroids")
	includeSatellites := flag.Bool("satellites", true, "Include tracked satellites")
	cameraFOV := flag.Float64("fov", 60, "Camera field of view in degrees")
	cachePath := flag.String("cache-path", defaultCachePath(), "Catalog cache file path")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	logFormat := flag.String("log-format", "text", "Log format (text, json)")
	metricsAddr := flag.String("metrics-addr", "", "Address to serve /metrics on (empty disables)")
	summaryMode := flag.Bool("summary", false, "Print a text summary instead of the live dome")
	eventsMode := flag.Bool("events", false, "Print the upcoming-events calendar instead of the live dome")
	daysAhead := flag.Int("days-ahead", 30, "Days ahead for --events")
	refresh := flag.Duration("refresh", 5*time.Second, "Dome refresh interval")
	flag.Parse()

	if *showVersion {
		fmt.Println("skywatch", version.Version)
		return
	}

	logger := logging.New(logging.Config{Level: *logLevel, Format: *logFormat})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	collector, err := metrics.NewEngineCollector(nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "metrics init failed: %v\n", err)
		os.Exit(1)
	}
	if *metricsAddr != "" {
		go serveMetrics(*metricsAddr, collector, logger)
	}

	engine := scene.NewEngine(scene.Config{
		CachePath: *cachePath,
		Fetcher:   catalog.NewFetcher(),
		Logger:    logger,
		Metrics:   collector,
	})

	logger.Info(ctx, "loading catalogs")
	if err := engine.LoadCatalogs(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "catalog load failed: %v\n", err)
		os.Exit(1)
	}

	observer := model.GeoLocation{LatitudeDeg: *lat, LongitudeDeg: *lon}
	instant := time.Now().UTC()
	if *atTime != "" {
		parsed, err := time.Parse(time.RFC3339, *atTime)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid -time: %v\n", err)
			os.Exit(1)
		}
		instant = parsed.UTC()
	}

	opts := scene.Options{
		LightPollution:     clamp01(*lightPollution),
		IncludeMinorBodies: *includeMinorBodies,
		IncludeSatellites:  *includeSatellites,
		CameraFOVDeg:       *cameraFOV,
	}

	if *eventsMode {
		printEvents(os.Stdout, instant, *daysAhead)
		return
	}

	if *summaryMode {
		sc := engine.BuildScene(observer, instant, opts)
		printSummary(os.Stdout, sc)
		return
	}

	m := newDomeModel(engine, observer, opts, *refresh)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error running dome view: %v\n", err)
		os.Exit(1)
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func defaultCachePath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "skywatch-catalog.cache"
	}
	return dir + "/skywatch/catalog.cache"
}

func serveMetrics(addr string, collector *metrics.EngineCollector, logger logging.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", collector.Handler())
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Error(context.Background(), "metrics server exited", logging.Err(err))
	}
}

func printSummary(w *os.File, sc model.Scene) {
	fmt.Fprintf(w, "skywatch scene @ %s\n", sc.Instant.Format(time.RFC3339))
	fmt.Fprintf(w, "observer: %.4f, %.4f\n\n", sc.Observer.LatitudeDeg, sc.Observer.LongitudeDeg)

	counts := scene.VisibleCounts(sc)
	for _, kind := range []string{"star", "body", "moon", "deep_sky", "meteor", "minor_body", "satellite", "constellation"} {
		fmt.Fprintf(w, "  %-14s %d visible\n", kind, counts[kind])
	}

	fmt.Fprintf(w, "\nstars in catalog: %d, survived processing: %d\n", sc.Health.StarsIn, sc.Health.StarsOut)
	for reason, n := range sc.Health.DropsByReason {
		fmt.Fprintf(w, "  dropped (%s): %d\n", reason, n)
	}

	view := scene.BestInitialView(sc.Stars, sc.Bodies)
	fmt.Fprintf(w, "\nsuggested initial view: az %.1f, alt %.1f\n", view.AzimuthDeg, view.AltitudeDeg)
}

func printEvents(w *os.File, from time.Time, daysAhead int) {
	events := scene.UpcomingEvents(from, daysAhead)
	fmt.Fprintf(w, "upcoming events from %s (%d days):\n\n", from.Format(time.RFC3339), daysAhead)
	for _, e := range events {
		fmt.Fprintf(w, "  %-20s %-14s %s\n", e.Instant.Format(time.RFC3339), e.Kind.String(), e.Name)
	}
}
