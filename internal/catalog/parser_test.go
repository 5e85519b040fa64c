package catalog

import (
	"strings"
	"testing"
)

const sampleHYG = `id,proper,ra,dec,mag,spect,bf
1,Sirius,6.7525,-16.7161,-1.46,A1V,
2,,5.2423,-8.2016,0.13,B8Ia,19 Ori
3,,12.0,45.0,8.9,,
4,Bad,not-a-number,10,1.0,G2,
`

func TestParseStars(t *testing.T) {
	stars, rejected, err := ParseStars(strings.NewReader(sampleHYG))
	if err != nil {
		t.Fatalf("ParseStars: %v", err)
	}
	if rejected != 2 {
		t.Errorf("rejected = %d, want 2 (mag>6 and bad ra)", rejected)
	}
	if len(stars) != 2 {
		t.Fatalf("got %d stars, want 2", len(stars))
	}
	// Sorted ascending by magnitude: Sirius (-1.46) before the Bayer-Flamsteed one.
	if stars[0].Name != "Sirius" {
		t.Errorf("stars[0].Name = %q, want Sirius", stars[0].Name)
	}
	if stars[1].Name != "19 Ori" {
		t.Errorf("stars[1].Name = %q, want Bayer-Flamsteed fallback", stars[1].Name)
	}
	if stars[1].SpectralClass != "B8" {
		t.Errorf("SpectralClass = %q, want B8", stars[1].SpectralClass)
	}
}

func TestParseStars_MissingColumn(t *testing.T) {
	_, _, err := ParseStars(strings.NewReader("id,proper,ra,dec,mag\n1,x,1,1,1\n"))
	if err == nil {
		t.Fatal("expected error for missing required column")
	}
}

func TestParseStars_AllRejected(t *testing.T) {
	_, _, err := ParseStars(strings.NewReader("id,proper,ra,dec,mag,spect,bf\n1,x,1,1,9.9,G,\n"))
	if err != ErrAllRowsRejected {
		t.Errorf("err = %v, want ErrAllRowsRejected", err)
	}
}

func TestDisplayName(t *testing.T) {
	if got := displayName("Vega", "", 1); got != "Vega" {
		t.Errorf("displayName proper = %q", got)
	}
	if got := displayName("", "19 Ori", 1); got != "19 Ori" {
		t.Errorf("displayName bf = %q", got)
	}
	if got := displayName("", "", 42); got != "HIP 42" {
		t.Errorf("displayName fallback = %q", got)
	}
}

func TestNormalizeSpectralClass(t *testing.T) {
	cases := map[string]string{"": "G", "O": "O", "G2V": "G2", "M": "M"}
	for in, want := range cases {
		if got := normalizeSpectralClass(in); got != want {
			t.Errorf("normalizeSpectralClass(%q) = %q, want %q", in, got, want)
		}
	}
}

const sampleDeepSky = `[
	{"main_id": "M31", "ra_deg": 10.68, "dec_deg": 41.27, "otype": "G"},
	{"main_id": "M42", "ra_deg": 83.82, "dec_deg": -5.39, "otype": "HII"},
	{"main_id": "Unknown", "ra_deg": 0, "dec_deg": 0, "otype": "XYZZY"}
]`

func TestParseDeepSky(t *testing.T) {
	entries, rejected, err := ParseDeepSky(strings.NewReader(sampleDeepSky))
	if err != nil {
		t.Fatalf("ParseDeepSky: %v", err)
	}
	if rejected != 1 {
		t.Errorf("rejected = %d, want 1", rejected)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].RAHours != 10.68/15.0 {
		t.Errorf("RAHours = %v, want %v", entries[0].RAHours, 10.68/15.0)
	}
}
