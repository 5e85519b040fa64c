package catalog

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"

	"github.com/litescript/skywatch/internal/model"
)

// cacheEnvelope is the on-disk shape of the binary cache: the catalog
// version it was built from, plus the parsed star and deep-sky records, so
// a round-trip recovers exactly those. Constellation figures are not
// stored; LoadCache returns Catalogs with Constellations unset.
type cacheEnvelope struct {
	Version Version
	Stars   []model.StarRecord
	DeepSky []DeepSkyEntry
}

// LoadCache reads and decodes the binary cache at path for the given
// version. The cache is advisory: a missing file or version mismatch is not
// an error, just a cache miss, signaled by ok=false.
func LoadCache(path string, want Version) (Catalogs, bool, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Catalogs{}, false, nil
		}
		return Catalogs{}, false, fmt.Errorf("open cache: %w", err)
	}
	defer f.Close()

	var env cacheEnvelope
	if err := gob.NewDecoder(f).Decode(&env); err != nil {
		return Catalogs{}, false, nil // corrupt cache: treat as a miss, not a failure
	}

	if env.Version != want {
		return Catalogs{}, false, nil
	}

	return Catalogs{Version: env.Version, Stars: env.Stars, DeepSky: env.DeepSky}, true, nil
}

// SaveCache writes the binary cache, creating parent directories as needed.
// Failing to save never fails the caller's load — cache absence must not
// break correctness.
func SaveCache(path string, cat Catalogs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}

	var buf bytes.Buffer
	env := cacheEnvelope{Version: cat.Version, Stars: cat.Stars, DeepSky: cat.DeepSky}
	if err := gob.NewEncoder(&buf).Encode(env); err != nil {
		return fmt.Errorf("encode cache: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write cache: %w", err)
	}
	return os.Rename(tmp, path)
}
