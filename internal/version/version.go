// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - Dome preview TUI, JSON run reports, constellation files
// 0.2.0 - TAP name resolution with offline fallback catalog
// 0.1.0 - Initial release: dome shell builder, star perforations, SCAD output
