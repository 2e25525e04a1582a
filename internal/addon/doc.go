// Package addon implements the three file operations of the installer:
// Backup, Install and Uninstall.
//
// Every operation walks the staging tree of one game, extension by
// extension in Filetype Table order, resolves each file's destination and
// acts on it immediately. A fatal error stops the operation at that file;
// files handled before it stay modified. Each operation returns the
// results it produced up to that point alongside the error.
//
// Paths:
//
//	staged:    <input_dir>/<game>/<addon>/**/<file>
//	installed: <creatures_dir>/<game full name>/<dest>/<file>
//	backup:    <backup_dir>/<game full name>/<addon>/<dest>/<file>
package addon
