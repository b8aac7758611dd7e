// Package hexapawn is the 3x3 hexapawn game model: three pawns a side,
// pushes and diagonal captures only. A side wins by reaching the far rank,
// capturing every opposing pawn, or leaving the opponent without a move.
// White is the maximizing side and moves first.
//
// The stalemate rule makes this the model that leans hardest on the
// contract's "IsTerminal must cover every no-move position" clause.
package hexapawn

import (
	"fmt"
	"strings"

	"minimax/game"
)

type Cell int8

const (
	Empty Cell = iota
	White
	Black
)

// MaxMoves is the worst-case branching factor: three pawns with a push and
// two captures each.
const MaxMoves = 9

// Win is the terminal score.
const Win game.Score = 100

// Move is a source and destination square. Row 0 is the black home rank,
// row 2 the white home rank.
type Move struct {
	FromRow, FromCol int8
	ToRow, ToCol     int8
}

// Board is a value-type snapshot.
type Board struct {
	cells [3][3]Cell
	turn  Cell
}

// New returns the starting position with white to move.
func New() Board {
	return Board{
		cells: [3][3]Cell{
			{Black, Black, Black},
			{Empty, Empty, Empty},
			{White, White, White},
		},
		turn: White,
	}
}

func (b Board) Turn() Cell { return b.turn }

func (b Board) Cell(row, col int) Cell { return b.cells[row][col] }

func (b Board) String() string {
	marks := map[Cell]string{Empty: ".", White: "W", Black: "B"}
	var sb strings.Builder
	for row := 0; row < 3; row++ {
		fmt.Fprintf(&sb, "%d ", 3-row)
		for col := 0; col < 3; col++ {
			sb.WriteString(marks[b.cells[row][col]])
			if col < 2 {
				sb.WriteString(" ")
			}
		}
		sb.WriteString("\n")
	}
	sb.WriteString("  a b c\n")
	return sb.String()
}

// promoted reports whether side has a pawn on its far rank.
func (b Board) promoted(side Cell) bool {
	row := 0
	if side == Black {
		row = 2
	}
	for col := 0; col < 3; col++ {
		if b.cells[row][col] == side {
			return true
		}
	}
	return false
}

// movesFor writes the legal moves for side into buf and returns the count.
func (b Board) movesFor(side Cell, buf []Move) int {
	dir := int8(-1)
	enemy := Black
	if side == Black {
		dir = 1
		enemy = White
	}

	count := 0
	for row := int8(0); row < 3; row++ {
		for col := int8(0); col < 3; col++ {
			if b.cells[row][col] != side {
				continue
			}
			to := row + dir
			if to < 0 || to > 2 {
				continue
			}
			if b.cells[to][col] == Empty {
				buf[count] = Move{FromRow: row, FromCol: col, ToRow: to, ToCol: col}
				count++
			}
			for _, dc := range [2]int8{-1, 1} {
				tc := col + dc
				if tc >= 0 && tc < 3 && b.cells[to][tc] == enemy {
					buf[count] = Move{FromRow: row, FromCol: col, ToRow: to, ToCol: tc}
					count++
				}
			}
		}
	}
	return count
}

func square(input string) (int8, int8, error) {
	if len(input) != 2 || input[0] < 'a' || input[0] > 'c' || input[1] < '1' || input[1] > '3' {
		return 0, 0, fmt.Errorf("bad square %q", input)
	}
	col := int8(input[0] - 'a')
	row := int8('3' - input[1])
	return row, col, nil
}

// ParseMove reads algebraic source and destination squares, e.g. "a1b2",
// and rejects illegal moves for the side to move.
func ParseMove(b Board, input string) (Move, error) {
	s := strings.TrimSpace(input)
	if len(s) != 4 {
		return Move{}, fmt.Errorf("want a move like \"a1b2\", got %q", input)
	}
	fromRow, fromCol, err := square(s[:2])
	if err != nil {
		return Move{}, err
	}
	toRow, toCol, err := square(s[2:])
	if err != nil {
		return Move{}, err
	}
	move := Move{FromRow: fromRow, FromCol: fromCol, ToRow: toRow, ToCol: toCol}

	var buf [MaxMoves]Move
	count := b.movesFor(b.turn, buf[:])
	for _, legal := range buf[:count] {
		if legal == move {
			return move, nil
		}
	}
	return Move{}, fmt.Errorf("%s is not a legal move", s)
}

// Logic implements game.Logic[Board, Move].
type Logic struct{}

// Evaluate scores from white's perspective: decided games are worth the Win
// constant, open ones material plus advancement.
func (Logic) Evaluate(b Board) game.Score {
	if b.promoted(White) {
		return Win
	}
	if b.promoted(Black) {
		return -Win
	}

	var buf [MaxMoves]Move
	if b.movesFor(b.turn, buf[:]) == 0 {
		// Covers both stalemate and a side with no pawns left.
		if b.turn == White {
			return -Win
		}
		return Win
	}

	score := game.Score(0)
	for row := int8(0); row < 3; row++ {
		for col := int8(0); col < 3; col++ {
			switch b.cells[row][col] {
			case White:
				score += 10 + game.Score(2-row)
			case Black:
				score -= 10 + game.Score(row)
			}
		}
	}
	return score
}

func (Logic) GenerateMoves(b Board, buf []Move) int {
	return b.movesFor(b.turn, buf)
}

func (Logic) ApplyMove(b *Board, move Move) {
	b.cells[move.ToRow][move.ToCol] = b.cells[move.FromRow][move.FromCol]
	b.cells[move.FromRow][move.FromCol] = Empty
	if b.turn == White {
		b.turn = Black
	} else {
		b.turn = White
	}
}

func (Logic) IsTerminal(b Board) bool {
	if b.promoted(White) || b.promoted(Black) {
		return true
	}
	var buf [MaxMoves]Move
	return b.movesFor(b.turn, buf[:]) == 0
}

func (Logic) IsMaximizingPlayer(b Board) bool {
	return b.turn == White
}
