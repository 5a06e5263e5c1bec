// Package types defines the data model shared by edna's engines: template
// configs, the registry document, template selectors and command results.
package types
