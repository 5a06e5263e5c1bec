// Package filesystem implements the file operations behind template
// instantiation: recursive copying with exclusions, directory creation and
// atomic file replacement.
package filesystem
