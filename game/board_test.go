package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewPosition(t *testing.T) {
	p := NewPosition()

	require.Equal(t, PlayerX, p.Player(), "X should move first")
	require.False(t, p.IsTerminal(), "Empty board should not be terminal")
	require.Len(t, p.LegalMoves(), Cells, "Every cell should be playable")
}

func TestParsePosition(t *testing.T) {
	t.Run("derives the player to move from mark counts", func(t *testing.T) {
		p, err := ParsePosition("X........")
		require.NoError(t, err)
		require.Equal(t, PlayerO, p.Player(), "O moves after X's first mark")

		p, err = ParsePosition("XO.......")
		require.NoError(t, err)
		require.Equal(t, PlayerX, p.Player(), "X moves with equal mark counts")
	})

	t.Run("rejects malformed boards", func(t *testing.T) {
		_, err := ParsePosition("X")
		require.Error(t, err, "Should reject wrong length")

		_, err = ParsePosition("Z........")
		require.Error(t, err, "Should reject unknown marks")

		_, err = ParsePosition("XXX......")
		require.Error(t, err, "Should reject impossible mark counts")
	})
}

func TestPlay(t *testing.T) {
	t.Run("places the mark and flips the turn", func(t *testing.T) {
		p := NewPosition()
		next := p.Play(CellMove(4)).(Position)

		require.Equal(t, PlayerO, next.Player(), "Turn should pass to O")
		require.Len(t, next.LegalMoves(), Cells-1, "Played cell should be occupied")
		require.Equal(t, PlayerX, p.Player(), "Original position should be unchanged")
		require.Len(t, p.LegalMoves(), Cells, "Original position should be unchanged")
	})

	t.Run("panics on an occupied cell", func(t *testing.T) {
		p := NewPosition().Play(CellMove(0))
		require.Panics(t, func() {
			p.Play(CellMove(0))
		}, "Replaying an occupied cell is an integration bug")
	})

	t.Run("panics on an out-of-range cell", func(t *testing.T) {
		require.Panics(t, func() {
			NewPosition().Play(CellMove(Cells))
		})
	})
}

func TestWinnerDetection(t *testing.T) {
	cases := []struct {
		name   string
		board  string
		winner string
	}{
		{"top row", "XXXOO....", PlayerX},
		{"left column", "XO.XO.X..", PlayerX},
		{"main diagonal", "XO..XO..X", PlayerX},
		{"anti diagonal", "XXO.O.OX.", PlayerO},
		{"ongoing game", "XO.......", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := ParsePosition(tc.board)
			require.NoError(t, err)
			require.Equal(t, tc.winner, p.Winner())
			require.Equal(t, tc.winner != "", p.IsTerminal())
		})
	}
}

func TestDraw(t *testing.T) {
	p, err := ParsePosition("XXOOOXXOX")
	require.NoError(t, err)

	require.True(t, p.IsTerminal(), "Full board should be terminal")
	require.Empty(t, p.Winner(), "Drawn game has no winner")
	require.Empty(t, p.LegalMoves(), "Terminal position has no legal moves")

	outcome, err := p.Outcome()
	require.NoError(t, err)
	require.Empty(t, outcome.Winner, "Outcome should report a draw")
}

func TestOutcomeBeforeGameEnd(t *testing.T) {
	_, err := NewPosition().Outcome()
	require.ErrorIs(t, err, ErrNotTerminal)
}

func TestHash(t *testing.T) {
	a, err := ParsePosition("XO.......")
	require.NoError(t, err)
	b, err := ParsePosition("XO.......")
	require.NoError(t, err)
	c, err := ParsePosition("OX.......")
	require.NoError(t, err)

	require.Equal(t, a.Hash(), b.Hash(), "Equal positions should hash equally")
	require.NotEqual(t, a.Hash(), c.Hash(), "Different boards should hash differently")
}

func TestOpponent(t *testing.T) {
	require.Equal(t, PlayerO, Opponent(PlayerX))
	require.Equal(t, PlayerX, Opponent(PlayerO))
}
