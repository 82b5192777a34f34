// Package terminal answers the questions fyi asks about its output streams:
// how wide is the terminal, is this a terminal at all, and should escape
// sequences be written to it.
//
// Color is disabled by NO_COLOR or CLICOLOR=0 and forced by a non-zero
// CLICOLOR_FORCE; otherwise it follows terminal detection.
package terminal
