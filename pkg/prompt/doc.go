// Package prompt asks the user for values that were not given as flags.
//
// Commands talk to a Driver so tests can script the answers; the default
// driver uses survey and refuses to prompt when stdin is not a terminal.
package prompt
