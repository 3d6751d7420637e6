// Package cli is responsible for parsing command-line arguments, validating
// user input, and handling process-level concerns like exit codes. It
// translates flags for each program into app.Config plus the program's own
// configuration.
package cli
