// Package config loads, normalizes, and validates docimages configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the DOCIMAGES_OUTPUT_DIR
// environment fallback. The Config type centralizes the screenshot output
// directory, the sample audio files, pipe overrides, project window geometry,
// and logging knobs so the CLI and the script driver read them in one pass.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
