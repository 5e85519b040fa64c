package catalog

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/litescript/skywatch/internal/model"
)

// ErrMissingColumn is returned when the HYG header is missing a required
// column.
var ErrMissingColumn = errors.New("catalog: missing required column")

// ErrAllRowsRejected is returned when every data row failed to parse or was
// filtered out, which callers treat as a catastrophic parse error and fall
// back to the bundled sample.
var ErrAllRowsRejected = errors.New("catalog: no rows survived parsing")

const nakedEyeLimit = 6.0

// requiredColumns are located by name in the header row; extra columns are
// ignored.
var requiredColumns = []string{"id", "proper", "ra", "dec", "mag", "spect", "bf"}

// ParseStars parses a comma-delimited HYG-format star table. encoding/csv
// handles the quoted-field/embedded-comma toggling the source format
// requires; rows with unparseable numeric fields are skipped rather than
// failing the whole load.
func ParseStars(r io.Reader) ([]model.StarRecord, int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("read header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := col[name]; !ok {
			return nil, 0, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}

	var stars []model.StarRecord
	rejected := 0

	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			rejected++
			continue
		}

		star, ok := parseRow(row, col)
		if !ok {
			rejected++
			continue
		}
		stars = append(stars, star)
	}

	if len(stars) == 0 {
		return nil, rejected, ErrAllRowsRejected
	}

	sort.Slice(stars, func(i, j int) bool { return stars[i].ApparentMag < stars[j].ApparentMag })

	return stars, rejected, nil
}

func parseRow(row []string, col map[string]int) (model.StarRecord, bool) {
	field := func(name string) string {
		i := col[name]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	mag, err := strconv.ParseFloat(field("mag"), 64)
	if err != nil {
		return model.StarRecord{}, false
	}
	if mag > nakedEyeLimit {
		return model.StarRecord{}, false
	}

	ra, err := strconv.ParseFloat(field("ra"), 64)
	if err != nil {
		return model.StarRecord{}, false
	}
	dec, err := strconv.ParseFloat(field("dec"), 64)
	if err != nil {
		return model.StarRecord{}, false
	}

	id, err := strconv.Atoi(field("id"))
	if err != nil {
		return model.StarRecord{}, false
	}

	name := displayName(field("proper"), field("bf"), id)
	spect := normalizeSpectralClass(field("spect"))

	return model.StarRecord{
		ID:            id,
		Name:          name,
		RAHours:       ra,
		DecDeg:        dec,
		ApparentMag:   mag,
		SpectralClass: spect,
	}, true
}

// displayName resolves by precedence: proper name, then Bayer-Flamsteed
// code, then a synthesized "HIP <id>".
func displayName(proper, bf string, id int) string {
	if proper != "" {
		return proper
	}
	if bf != "" {
		return bf
	}
	return fmt.Sprintf("HIP %d", id)
}

// normalizeSpectralClass keeps the first two characters, defaulting to "G"
// when the catalog left the field empty.
func normalizeSpectralClass(spect string) string {
	spect = strings.TrimSpace(spect)
	if spect == "" {
		return "G"
	}
	if len(spect) == 1 {
		return spect
	}
	return spect[:2]
}

// simbadOtypeToKind maps the SIMBAD object-type tokens the deep-sky feed
// uses onto our coarser DeepSkyType taxonomy.
var simbadOtypeToKind = map[string]model.DeepSkyType{
	"G":    model.DeepSkyGalaxy,
	"GiG":  model.DeepSkyGalaxy,
	"GiP":  model.DeepSkyGalaxy,
	"AGN":  model.DeepSkyGalaxy,
	"Sy1":  model.DeepSkyGalaxy,
	"Sy2":  model.DeepSkyGalaxy,
	"QSO":  model.DeepSkyGalaxy,
	"PN":   model.DeepSkyPlanetary,
	"HII":  model.DeepSkyNebula,
	"RNe":  model.DeepSkyNebula,
	"SNR":  model.DeepSkySupernova,
	"Cl*":  model.DeepSkyCluster,
	"GlC":  model.DeepSkyCluster,
	"OpC":  model.DeepSkyCluster,
	"As*":  model.DeepSkyCluster,
}

type deepSkyRow struct {
	MainID string  `json:"main_id"`
	RADeg  float64 `json:"ra_deg"`
	DecDeg float64 `json:"dec_deg"`
	Otype  string  `json:"otype"`
}

// ParseDeepSky parses the SIMBAD-flavored deep-sky JSON array. ra arrives in
// degrees and is normalized to hours per the source format; rows with an
// unrecognized otype are skipped.
func ParseDeepSky(r io.Reader) ([]DeepSkyEntry, int, error) {
	var rows []deepSkyRow
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		return nil, 0, fmt.Errorf("decode deep-sky JSON: %w", err)
	}

	var entries []DeepSkyEntry
	rejected := 0

	for i, row := range rows {
		kind, ok := simbadOtypeToKind[row.Otype]
		if !ok {
			rejected++
			continue
		}
		entries = append(entries, DeepSkyEntry{
			ID:      fmt.Sprintf("dso-%d", i),
			Name:    row.MainID,
			Type:    kind,
			RAHours: row.RADeg / 15.0,
			DecDeg:  row.DecDeg,
		})
	}

	if len(entries) == 0 {
		return nil, rejected, ErrAllRowsRejected
	}

	return entries, rejected, nil
}
