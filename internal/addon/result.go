package addon

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/specialistvlad/creatures-addons/internal/game"
)

// Outcome is what happened to one file in one operation step.
type Outcome int

const (
	// NothingToBackUp: the game has no installed file to save.
	NothingToBackUp Outcome = iota + 1
	// AlreadyInstalled: the installed file is byte-identical to the staged one.
	AlreadyInstalled
	// BackedUp: the installed file was copied into the backup tree.
	BackedUp
	// Installed: the staged file was copied into the game.
	Installed
	// Deleted: the installed file was removed.
	Deleted
	// NotInstalled: there was no installed file to remove.
	NotInstalled
	// Restored: a backup was copied back into the game.
	Restored
	// NoBackup: no backup existed to restore.
	NoBackup
)

var outcomeNames = map[Outcome]string{
	NothingToBackUp:  "nothing_to_back_up",
	AlreadyInstalled: "already_installed",
	BackedUp:         "backed_up",
	Installed:        "installed",
	Deleted:          "deleted",
	NotInstalled:     "not_installed",
	Restored:         "restored",
	NoBackup:         "no_backup",
}

func (o Outcome) String() string {
	if s, ok := outcomeNames[o]; ok {
		return s
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

// Result records one outcome for one candidate. Path is the file that was
// read, written or removed.
type Result struct {
	Candidate
	Outcome Outcome
	Path    string
}

// Summary counts results by outcome.
type Summary map[Outcome]int

// Add counts the given results.
func (s Summary) Add(results ...Result) {
	for _, r := range results {
		s[r.Outcome]++
	}
}

// String lists the non-zero counts in outcome order, e.g.
// "backed_up=1 installed=3".
func (s Summary) String() string {
	var parts []string
	for o := NothingToBackUp; o <= NoBackup; o++ {
		if n := s[o]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s=%d", o, n))
		}
	}
	if len(parts) == 0 {
		return "no files"
	}
	return strings.Join(parts, " ")
}

// ErrIsDirectory is wrapped by an OpError when a directory sits where an
// installed file is expected.
var ErrIsDirectory = errors.New("is a directory")

// OpError is a fatal failure of an operation on one path. It unwraps to the
// underlying file system error.
type OpError struct {
	Op   string
	Game game.Game
	Path string
	Err  error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("%s (%s) %s: %v", e.Op, e.Game, e.Path, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

// IsPermission reports whether err was caused by missing permissions.
func IsPermission(err error) bool {
	return errors.Is(err, fs.ErrPermission)
}
