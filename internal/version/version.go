// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - ECEF/ECI rotation and horizontal coordinates driven by GMST
// 0.2.0 - Live TUI clock, JSON and summary headless output
// 0.1.0 - Initial release: GPST/GST/BDT week and tow, leap second table, GMST
