// Package newtemplate registers new templates.
//
// A template is created from a copy of an existing directory, or as an empty
// directory, then given a config file and appended to the registry. The
// config is written before the registry entry; a failure in between leaves
// an unregistered template directory behind.
package newtemplate
