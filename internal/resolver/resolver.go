// Package resolver decides which game subdirectory an add-on file belongs in.
package resolver

import (
	"path/filepath"
	"strings"

	"github.com/specialistvlad/creatures-addons/internal/game"
	"github.com/specialistvlad/creatures-addons/internal/tables"
)

// Resolver is the Destination Resolver. It only reads its tables and is
// safe to share.
type Resolver struct {
	tables *tables.Tables
}

// New creates a Resolver over the given tables.
func New(t *tables.Tables) *Resolver {
	return &Resolver{tables: t}
}

// Tables exposes the lookup tables the resolver was built with.
func (r *Resolver) Tables() *tables.Tables {
	return r.tables
}

// Resolve returns the destination subdirectory, relative to the game's
// installation folder and using forward slashes, for the file at path.
// Only the file name and its last extension are significant. ok is false
// when the extension is not in the Filetype Table.
func (r *Resolver) Resolve(g game.Game, path string) (dest string, ok bool) {
	name := filepath.Base(path)
	ext := Ext(name)

	ft, ok := r.tables.Filetype(ext)
	if !ok {
		return "", false
	}
	if !ft.GameDependent() {
		return ft.Dir, true
	}

	// Script files: an exact file name wins over the game default.
	if dir, ok := r.tables.Exception(name); ok {
		return dir, true
	}
	dir, ok := ft.ByGame[g]
	return dir, ok
}

// Ext returns the text after the last dot of name. It is case-sensitive,
// matching how files are enumerated, and empty for names without a dot.
func Ext(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return ""
	}
	return name[i+1:]
}
