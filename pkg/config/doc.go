// Package config handles configuration management for edna.
// Values are layered from embedded TOML defaults, the user's config.toml,
// EDNA_* environment variables and command-line overrides, in that order.
package config
