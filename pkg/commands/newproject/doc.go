// Package newproject instantiates projects from registered templates.
//
// A template is selected by name, by path or by its index in the template
// listing. Its files are copied into the destination minus the template's
// excluded paths, and its init scripts then run in the new project directory
// through a scripts.Runner.
package newproject
