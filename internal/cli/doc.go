// Package cli is the interactive terminal client of the record keeper.
//
// A session is a single blocking loop over one input reader:
//
//	login -> main menu -> {dashboard, clients, projects, reports} -> main menu -> exit
//
// The login gate retries until a seeded account matches. Every main-menu
// choice other than exit is followed by an Enter prompt. Reaching the end of
// the input ends the session without an error.
//
// All output goes to the io.Writer given to NewApp; money and percentages are
// formatted for the configured locale.
package cli
