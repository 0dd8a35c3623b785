// Package gnanno holds application-wide metadata for the GNanno tool.
// GNanno reads, validates and exports GO Annotation Files (GAF).
package gnanno

var (
	// Version is set by build flags.
	Version = "v0.1.0"
	// Build is set by build flags.
	Build = "n/a"
)
