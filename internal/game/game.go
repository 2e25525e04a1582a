// Package game defines the two Creatures Exodus games an add-on can target.
package game

import "fmt"

// Game is the short identifier of a game. It is also the name of the
// per-game directory inside the staging tree.
type Game string

const (
	C3 Game = "C3"
	DS Game = "DS"
)

// All lists the games in the order every operation processes them.
var All = []Game{C3, DS}

var fullNames = map[Game]string{
	C3: "Creatures 3",
	DS: "Docking Station",
}

// FullName returns the installation folder name of the game, e.g.
// "Docking Station" for DS.
func (g Game) FullName() string {
	return fullNames[g]
}

// Valid reports whether g is one of the known games.
func (g Game) Valid() bool {
	_, ok := fullNames[g]
	return ok
}

func (g Game) String() string {
	return string(g)
}

// Parse converts a token such as "C3" into a Game.
func Parse(s string) (Game, error) {
	g := Game(s)
	if !g.Valid() {
		return "", fmt.Errorf("unknown game %q: must be one of %v", s, All)
	}
	return g, nil
}
