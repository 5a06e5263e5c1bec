// Package registry maintains the templates registry: the single JSON document
// at <templates directory>/<config filename> that maps template names to
// directories. The document is append-only; entries are never removed,
// reordered or deduplicated.
package registry
