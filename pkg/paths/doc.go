// Package paths provides centralized path handling for edna.
// It resolves the XDG base directories edna uses for templates, user
// configuration and logs, honouring EDNA_* environment overrides.
package paths
