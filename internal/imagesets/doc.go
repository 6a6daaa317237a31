// Package imagesets defines the named screenshot scripts for the Audacity
// manual. Each set stages the project through the driver and captures the
// resulting windows; running every set in order regenerates the full image
// collection.
package imagesets
