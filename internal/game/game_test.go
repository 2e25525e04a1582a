package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFullName(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Creatures 3", C3.FullName())
	require.Equal(t, "Docking Station", DS.FullName())
	require.Empty(t, Game("C2").FullName())
}

func TestAll_FixedOrder(t *testing.T) {
	t.Parallel()

	require.Equal(t, []Game{C3, DS}, All, "games must always be processed C3 first, then DS")
}

func TestParse(t *testing.T) {
	t.Parallel()

	g, err := Parse("DS")
	require.NoError(t, err)
	require.Equal(t, DS, g)

	_, err = Parse("ds")
	require.Error(t, err, "game tokens are case-sensitive")
	require.Contains(t, err.Error(), "unknown game")
}
