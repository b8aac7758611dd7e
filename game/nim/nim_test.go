package nim

import (
	"testing"

	"github.com/stretchr/testify/require"

	"minimax/searcher"
)

func TestLogic(t *testing.T) {
	logic := Logic{}

	t.Run("enumerates every take from every heap", func(t *testing.T) {
		buf := make([]Move, MaxMoves)

		count := logic.GenerateMoves(New(), buf)

		require.Equal(t, 3+5+7, count)
		require.Equal(t, Move{Heap: 0, Take: 1}, buf[0])
		require.Equal(t, Move{Heap: 2, Take: 7}, buf[count-1])
	})

	t.Run("taking objects shrinks the heap and flips the turn", func(t *testing.T) {
		b := New()

		logic.ApplyMove(&b, Move{Heap: 1, Take: 3})

		require.Equal(t, int8(2), b.Heap(1))
		require.Equal(t, int8(2), b.Turn())
		require.False(t, logic.IsMaximizingPlayer(b))
	})

	t.Run("the player facing empty heaps has lost", func(t *testing.T) {
		b := NewWithHeaps([Heaps]int8{1, 0, 0})
		require.False(t, logic.IsTerminal(b))

		logic.ApplyMove(&b, Move{Heap: 0, Take: 1})

		require.True(t, logic.IsTerminal(b))
		require.Equal(t, Win, logic.Evaluate(b),
			"Player 2 to move with nothing left means player 1 won")
	})
}

func TestParseMove(t *testing.T) {
	b := New()

	move, err := ParseMove(b, "2 4")
	require.NoError(t, err)
	require.Equal(t, Move{Heap: 1, Take: 4}, move)

	_, err = ParseMove(b, "4 1")
	require.Error(t, err)

	_, err = ParseMove(b, "1 5")
	require.Error(t, err, "Cannot take more than the heap holds")

	_, err = ParseMove(b, "nope")
	require.Error(t, err)
}

func TestSearch(t *testing.T) {
	newEngine := func(depth int) *searcher.Engine[Board, Move] {
		return searcher.New[Board, Move](Logic{},
			searcher.WithDepth(depth), searcher.WithMoveCapacity(MaxMoves))
	}

	t.Run("finds the unique nim-sum-zeroing move", func(t *testing.T) {
		// 1-2-2 has nim-sum 1; only emptying heap 1 hands the opponent a
		// lost position.
		b := NewWithHeaps([Heaps]int8{1, 2, 2})
		engine := newEngine(5)

		move := engine.FindBestMove(b)

		require.Equal(t, Move{Heap: 0, Take: 1}, move)
		require.Equal(t, Win, engine.BestScore())
	})

	t.Run("recognizes a lost position", func(t *testing.T) {
		// 1-2-3 has nim-sum 0: with perfect play the side to move loses.
		b := NewWithHeaps([Heaps]int8{1, 2, 3})
		engine := newEngine(6)

		engine.FindBestMove(b)

		require.Equal(t, -Win, engine.BestScore())
	})
}
