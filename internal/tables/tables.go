package tables

import (
	"errors"
	"fmt"
	"strings"

	"github.com/specialistvlad/creatures-addons/internal/game"
)

// Filetype maps one file extension to its destination. Exactly one of Dir
// and ByGame is set.
type Filetype struct {
	// Ext is the extension without the leading dot, e.g. "c16".
	Ext string
	// Dir is the destination shared by both games.
	Dir string
	// ByGame holds a per-game default destination for script files.
	ByGame map[game.Game]string
}

// GameDependent reports whether the destination of this filetype depends on
// the game, which is what makes it the script extension.
func (f Filetype) GameDependent() bool {
	return len(f.ByGame) > 0
}

// Tables is the immutable pair of Filetype Table and Exception Table.
type Tables struct {
	filetypes  []Filetype
	byExt      map[string]int
	exceptions map[string]string
}

// New validates the given rows and builds an immutable Tables value. The
// order of filetypes is the order files are enumerated in.
func New(filetypes []Filetype, exceptions map[string]string) (*Tables, error) {
	if len(filetypes) == 0 {
		return nil, errors.New("at least one filetype is required")
	}

	t := &Tables{
		filetypes:  make([]Filetype, 0, len(filetypes)),
		byExt:      make(map[string]int, len(filetypes)),
		exceptions: make(map[string]string, len(exceptions)),
	}

	for _, ft := range filetypes {
		if err := validateFiletype(ft); err != nil {
			return nil, err
		}
		if _, dup := t.byExt[ft.Ext]; dup {
			return nil, fmt.Errorf("filetype %q is declared more than once", ft.Ext)
		}

		row := Filetype{Ext: ft.Ext, Dir: ft.Dir}
		if ft.GameDependent() {
			row.ByGame = make(map[game.Game]string, len(ft.ByGame))
			for g, dir := range ft.ByGame {
				row.ByGame[g] = dir
			}
		}
		t.byExt[ft.Ext] = len(t.filetypes)
		t.filetypes = append(t.filetypes, row)
	}

	for name, dir := range exceptions {
		if strings.TrimSpace(name) == "" {
			return nil, errors.New("exception file name cannot be empty")
		}
		if strings.TrimSpace(dir) == "" {
			return nil, fmt.Errorf("exception %q has an empty destination", name)
		}
		t.exceptions[name] = dir
	}

	return t, nil
}

func validateFiletype(ft Filetype) error {
	if ft.Ext == "" {
		return errors.New("filetype extension cannot be empty")
	}
	if strings.ContainsAny(ft.Ext, `./\`) {
		return fmt.Errorf("filetype %q: extension must not contain dots or path separators", ft.Ext)
	}

	hasDir := strings.TrimSpace(ft.Dir) != ""
	switch {
	case hasDir && ft.GameDependent():
		return fmt.Errorf("filetype %q: dir and by_game are mutually exclusive", ft.Ext)
	case !hasDir && !ft.GameDependent():
		return fmt.Errorf("filetype %q: one of dir or by_game is required", ft.Ext)
	case hasDir:
		return nil
	}

	for g, dir := range ft.ByGame {
		if !g.Valid() {
			return fmt.Errorf("filetype %q: unknown game %q in by_game", ft.Ext, g)
		}
		if strings.TrimSpace(dir) == "" {
			return fmt.Errorf("filetype %q: empty destination for game %s", ft.Ext, g)
		}
	}
	for _, g := range game.All {
		if _, ok := ft.ByGame[g]; !ok {
			return fmt.Errorf("filetype %q: by_game is missing game %s", ft.Ext, g)
		}
	}
	return nil
}

// Extensions returns the known extensions in declaration order.
func (t *Tables) Extensions() []string {
	exts := make([]string, len(t.filetypes))
	for i, ft := range t.filetypes {
		exts[i] = ft.Ext
	}
	return exts
}

// Filetype looks up the row for ext (without the dot). The returned value
// shares no state with the table.
func (t *Tables) Filetype(ext string) (Filetype, bool) {
	i, ok := t.byExt[ext]
	if !ok {
		return Filetype{}, false
	}
	ft := t.filetypes[i]
	if ft.GameDependent() {
		byGame := make(map[game.Game]string, len(ft.ByGame))
		for g, dir := range ft.ByGame {
			byGame[g] = dir
		}
		ft.ByGame = byGame
	}
	return ft, true
}

// Exception returns the fixed destination for an exact file name.
func (t *Tables) Exception(name string) (string, bool) {
	dir, ok := t.exceptions[name]
	return dir, ok
}

// ExceptionCount is the number of rows in the Exception Table.
func (t *Tables) ExceptionCount() int {
	return len(t.exceptions)
}
