// Package tictactoe is the 3x3 tic-tac-toe game model. X is the maximizing
// side and always moves first.
package tictactoe

import (
	"fmt"
	"strconv"
	"strings"

	"minimax/game"
)

type Cell int8

const (
	Empty Cell = iota
	X
	O
)

// MaxMoves is the worst-case branching factor: one move per empty cell.
const MaxMoves = 9

// Win is the terminal score base. A won position scores Win plus the number
// of empty cells left, so quicker wins outrank slower ones.
const Win game.Score = 100

// Move is a cell index, 0..8, row-major from the top left.
type Move int8

// Board is a value-type snapshot: copy by assignment.
type Board struct {
	cells [9]Cell
	turn  Cell
}

// New returns an empty board with X to move.
func New() Board {
	return Board{turn: X}
}

func (b Board) Turn() Cell { return b.turn }

func (b Board) Cell(i int) Cell { return b.cells[i] }

var lines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8}, // rows
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8}, // columns
	{0, 4, 8}, {2, 4, 6}, // diagonals
}

func (b Board) winner() Cell {
	for _, line := range lines {
		c := b.cells[line[0]]
		if c != Empty && c == b.cells[line[1]] && c == b.cells[line[2]] {
			return c
		}
	}
	return Empty
}

func (b Board) empties() game.Score {
	n := game.Score(0)
	for _, c := range b.cells {
		if c == Empty {
			n++
		}
	}
	return n
}

func (b Board) String() string {
	marks := map[Cell]string{Empty: ".", X: "X", O: "O"}
	var sb strings.Builder
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			sb.WriteString(marks[b.cells[row*3+col]])
			if col < 2 {
				sb.WriteString(" ")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// ParseMove reads a 1-based cell number ("1" top left to "9" bottom right)
// and rejects occupied cells.
func ParseMove(b Board, input string) (Move, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || n < 1 || n > 9 {
		return 0, fmt.Errorf("want a cell number 1-9, got %q", input)
	}
	move := Move(n - 1)
	if b.cells[move] != Empty {
		return 0, fmt.Errorf("cell %d is taken", n)
	}
	return move, nil
}

// Logic implements game.Logic[Board, Move].
type Logic struct{}

// Evaluate scores from X's perspective: won positions dominate, otherwise
// each line still open to only one side counts for it.
func (Logic) Evaluate(b Board) game.Score {
	switch b.winner() {
	case X:
		return Win + b.empties()
	case O:
		return -(Win + b.empties())
	}

	score := game.Score(0)
	for _, line := range lines {
		xs, os := 0, 0
		for _, i := range line {
			switch b.cells[i] {
			case X:
				xs++
			case O:
				os++
			}
		}
		if os == 0 && xs > 0 {
			score += game.Score(xs)
		}
		if xs == 0 && os > 0 {
			score -= game.Score(os)
		}
	}
	return score
}

func (Logic) GenerateMoves(b Board, buf []Move) int {
	count := 0
	for i, c := range b.cells {
		if c == Empty {
			buf[count] = Move(i)
			count++
		}
	}
	return count
}

func (Logic) ApplyMove(b *Board, move Move) {
	b.cells[move] = b.turn
	if b.turn == X {
		b.turn = O
	} else {
		b.turn = X
	}
}

func (Logic) IsTerminal(b Board) bool {
	return b.winner() != Empty || b.empties() == 0
}

func (Logic) IsMaximizingPlayer(b Board) bool {
	return b.turn == X
}
