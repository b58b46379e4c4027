// Package config loads, normalizes, and validates splice configuration
// data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config type centralizes every knob
// the CLI needs: merge defaults, audio split tuning, and log routing.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical format names, and clear validation errors.
package config
