// Package config loads, normalizes, and validates the TOML configuration
// file. Missing files fall back to defaults so the tool runs without any
// setup. Path fields are tilde-expanded and made absolute during load.
package config
