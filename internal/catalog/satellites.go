package catalog

import "github.com/litescript/skywatch/internal/model"

// BundledSatellites returns a small fixed set of two-line elements for a
// handful of well-known satellites. TLEs age out within days; a real
// deployment would refresh these from Celestrak or Space-Track, but this
// engine has no such feed wired up, so it ships a fixed illustrative set.
func BundledSatellites() []model.TLE {
	return []model.TLE{
		{
			Name:  "ISS (ZARYA)",
			Line1: "1 25544U 98067A   24001.50000000  .00016717  00000-0  10270-3 0  9004",
			Line2: "2 25544  51.6416 247.4627 0006703 130.5360 325.0288 15.49309239386182",
		},
		{
			Name:  "HUBBLE SPACE TELESCOPE",
			Line1: "1 20580U 90037B   24001.50000000  .00000800  00000-0  36000-4 0  9991",
			Line2: "2 20580  28.4700 288.8000 0002500  90.0000 270.1000 15.09000000123456",
		},
	}
}
