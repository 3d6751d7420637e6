// Package app holds the process-level plumbing shared by the command-line
// programs: logger construction, the optional health check server and the
// Run lifecycle that wraps a single Program. It knows nothing about flags;
// the cli package turns arguments into a Config.
package app
