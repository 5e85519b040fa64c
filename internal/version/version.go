// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.1.0"

// Milestones:
// 0.1.0 - Initial release: star/deep-sky catalogs, solar system ephemeris,
//         satellite tracking, minor bodies, meteor showers, sky-dome TUI
