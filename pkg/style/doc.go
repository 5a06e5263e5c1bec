// Package style renders edna's terminal output: status lines, the spinner
// shown while scripts run and the template table. Styling is dropped when
// the output is not a color capable terminal.
package style
