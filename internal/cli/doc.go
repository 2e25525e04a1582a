// Package cli is the command-line front end. It turns os.Args into a
// validated app.Config and reports usage errors with an exit code.
package cli
