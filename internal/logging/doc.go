// Package logging assembles structured slog loggers and formatting helpers used
// across docimages.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so driver code automatically
// tags log lines with the run identifier and the image set being captured.
// Multi-line values such as pipe responses are rendered as indented blocks on
// the console so the command transcript stays readable. The package also
// provides a no-op logger for tests and wiring code that cannot fail.
package logging
