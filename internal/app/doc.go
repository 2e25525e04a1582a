// Package app contains the orchestrator of the installer. It holds the run
// configuration, builds the logger and lookup tables, and sequences the
// add-on operations across both games, decoupled from the CLI entrypoint.
package app
