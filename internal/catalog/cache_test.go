package catalog

import (
	"path/filepath"
	"testing"

	"github.com/litescript/skywatch/internal/model"
)

func TestCacheRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stars.cache")

	cat := Catalogs{
		Version: "v-test",
		Stars: []model.StarRecord{
			{ID: 1, Name: "Sirius", RAHours: 6.75, DecDeg: -16.7, ApparentMag: -1.46, SpectralClass: "A1"},
		},
		DeepSky: []DeepSkyEntry{
			{ID: "m31", Name: "Andromeda Galaxy", Type: model.DeepSkyGalaxy},
		},
	}

	if err := SaveCache(path, cat); err != nil {
		t.Fatalf("SaveCache: %v", err)
	}

	got, ok, err := LoadCache(path, "v-test")
	if err != nil {
		t.Fatalf("LoadCache: %v", err)
	}
	if !ok {
		t.Fatal("expected cache hit")
	}
	if len(got.Stars) != 1 || got.Stars[0].Name != "Sirius" {
		t.Errorf("round-tripped stars = %+v", got.Stars)
	}
	if len(got.DeepSky) != 1 || got.DeepSky[0].Name != "Andromeda Galaxy" {
		t.Errorf("round-tripped deep sky = %+v", got.DeepSky)
	}
}

func TestLoadCache_MissingFile(t *testing.T) {
	_, ok, err := LoadCache(filepath.Join(t.TempDir(), "missing.cache"), "v1")
	if err != nil {
		t.Fatalf("missing cache should not error: %v", err)
	}
	if ok {
		t.Fatal("expected cache miss for missing file")
	}
}

func TestLoadCache_VersionMismatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stars.cache")
	if err := SaveCache(path, Catalogs{Version: "v1"}); err != nil {
		t.Fatalf("SaveCache: %v", err)
	}

	_, ok, err := LoadCache(path, "v2")
	if err != nil {
		t.Fatalf("version mismatch should not error: %v", err)
	}
	if ok {
		t.Fatal("expected cache miss for version mismatch")
	}
}
