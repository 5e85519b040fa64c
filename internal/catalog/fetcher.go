package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const (
	// DefaultStarCatalogURL is the well-known HYG export mirror.
	DefaultStarCatalogURL = "https://raw.githubusercontent.com/astronexus/HYG-Database/main/hyg/v3/hyg_v35.csv"

	// DefaultDeepSkyURL points at a SIMBAD-flavored deep-sky export.
	DefaultDeepSkyURL = "https://simbad.cds.unistra.fr/simbad/sim-deepsky-export"

	// DefaultTimeout for any single fetch.
	DefaultTimeout = 30 * time.Second

	// DefaultFetchesPerMinute bounds how often a long-running Engine is
	// allowed to re-fetch a source.
	DefaultFetchesPerMinute = 6
)

// Fetcher retrieves catalog sources over HTTP, rate-limited per source so a
// long-running process can't hammer the upstream on repeated reloads.
type Fetcher struct {
	client       *http.Client
	starsURL     string
	deepSkyURL   string
	timeout      time.Duration
	starsLimit   *rate.Limiter
	deepSkyLimit *rate.Limiter
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// WithStarsURL overrides the star catalog source URL.
func WithStarsURL(url string) FetcherOption {
	return func(f *Fetcher) { f.starsURL = url }
}

// WithDeepSkyURL overrides the deep-sky source URL.
func WithDeepSkyURL(url string) FetcherOption {
	return func(f *Fetcher) { f.deepSkyURL = url }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) FetcherOption {
	return func(f *Fetcher) { f.timeout = d }
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) FetcherOption {
	return func(f *Fetcher) { f.client = client }
}

// WithRateLimit overrides the per-source fetch rate (fetches per minute).
func WithRateLimit(perMinute float64) FetcherOption {
	return func(f *Fetcher) {
		f.starsLimit = rate.NewLimiter(rate.Limit(perMinute/60.0), 1)
		f.deepSkyLimit = rate.NewLimiter(rate.Limit(perMinute/60.0), 1)
	}
}

// NewFetcher builds a Fetcher with sensible defaults.
func NewFetcher(opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		starsURL:   DefaultStarCatalogURL,
		deepSkyURL: DefaultDeepSkyURL,
		timeout:    DefaultTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.client == nil {
		f.client = &http.Client{Timeout: f.timeout}
	}
	if f.starsLimit == nil {
		f.starsLimit = rate.NewLimiter(rate.Limit(DefaultFetchesPerMinute)/60.0, 1)
	}
	if f.deepSkyLimit == nil {
		f.deepSkyLimit = rate.NewLimiter(rate.Limit(DefaultFetchesPerMinute)/60.0, 1)
	}
	return f
}

// FetchStars retrieves the raw star catalog bytes, blocking on the rate
// limiter and honoring ctx cancellation.
func (f *Fetcher) FetchStars(ctx context.Context) ([]byte, error) {
	if err := f.starsLimit.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}
	return f.fetchRaw(ctx, f.starsURL)
}

// FetchDeepSky retrieves the raw deep-sky JSON bytes.
func (f *Fetcher) FetchDeepSky(ctx context.Context) ([]byte, error) {
	if err := f.deepSkyLimit.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}
	return f.fetchRaw(ctx, f.deepSkyURL)
}

func (f *Fetcher) fetchRaw(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", "skywatch/1.0 (planetarium engine)")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status fetching %s: %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	return body, nil
}
