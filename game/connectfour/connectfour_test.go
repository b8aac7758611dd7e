package connectfour

import (
	"testing"

	"github.com/stretchr/testify/require"

	"minimax/searcher"
)

func TestLogic(t *testing.T) {
	logic := Logic{}

	t.Run("pieces stack from the bottom", func(t *testing.T) {
		b := New()

		logic.ApplyMove(&b, Move(3))
		logic.ApplyMove(&b, Move(3))

		require.Equal(t, Red, b.Cell(0, 3))
		require.Equal(t, Yellow, b.Cell(1, 3))
		require.Equal(t, Red, b.Turn())
	})

	t.Run("enumerates open columns center-out", func(t *testing.T) {
		buf := make([]Move, MaxMoves)
		b := New()

		count := logic.GenerateMoves(b, buf)

		require.Equal(t, Columns, count)
		require.Equal(t, Move(3), buf[0], "Center column comes first")

		for i := 0; i < Rows; i++ {
			logic.ApplyMove(&b, Move(3))
		}
		count = logic.GenerateMoves(b, buf)
		require.Equal(t, Columns-1, count, "Full columns are skipped")
		require.NotContains(t, buf[:count], Move(3))
	})

	t.Run("detects a vertical win", func(t *testing.T) {
		b := New()
		for i := 0; i < 3; i++ {
			logic.ApplyMove(&b, Move(2)) // red
			logic.ApplyMove(&b, Move(5)) // yellow
		}
		logic.ApplyMove(&b, Move(2))

		require.True(t, logic.IsTerminal(b))
		require.Greater(t, logic.Evaluate(b), Win-1)
	})

	t.Run("detects a diagonal win", func(t *testing.T) {
		b := New()
		b.cells[0][0] = Red
		b.cells[1][1] = Red
		b.cells[2][2] = Red
		b.cells[3][3] = Red
		b.filled = 4
		b.turn = Yellow

		require.True(t, logic.IsTerminal(b))
	})

	t.Run("a full board without four in a row is terminal", func(t *testing.T) {
		b := New()
		b.filled = Rows * Columns

		require.True(t, logic.IsTerminal(b))
	})
}

func TestParseMove(t *testing.T) {
	logic := Logic{}
	b := New()

	move, err := ParseMove(b, "4")
	require.NoError(t, err)
	require.Equal(t, Move(3), move)

	_, err = ParseMove(b, "8")
	require.Error(t, err)

	for i := 0; i < Rows; i++ {
		logic.ApplyMove(&b, Move(0))
		logic.ApplyMove(&b, Move(1))
	}
	_, err = ParseMove(b, "1")
	require.Error(t, err, "Full columns are rejected")
}

func TestSearch(t *testing.T) {
	newEngine := func() *searcher.Engine[Board, Move] {
		return searcher.New[Board, Move](Logic{},
			searcher.WithDepth(5), searcher.WithMoveCapacity(MaxMoves))
	}

	t.Run("completes four in a row", func(t *testing.T) {
		// Red has columns 0-2 on the bottom row; column 3 wins at once.
		b := New()
		b.cells[0][0], b.cells[0][1], b.cells[0][2] = Red, Red, Red
		b.cells[0][5], b.cells[0][6], b.cells[1][5] = Yellow, Yellow, Yellow
		b.filled = 6
		b.turn = Red
		engine := newEngine()

		move := engine.FindBestMove(b)

		require.Equal(t, Move(3), move)
		require.Greater(t, engine.BestScore(), Win-1)
	})

	t.Run("blocks an immediate opposing win", func(t *testing.T) {
		// Yellow has columns 0-2 on the bottom row; Red must drop into 3.
		b := New()
		b.cells[0][0], b.cells[0][1], b.cells[0][2] = Yellow, Yellow, Yellow
		b.cells[0][4], b.cells[1][4], b.cells[0][6] = Red, Red, Red
		b.filled = 6
		b.turn = Red
		engine := newEngine()

		move := engine.FindBestMove(b)

		require.Equal(t, Move(3), move)
	})
}
