// Package connectfour is the 7x6 connect-four game model. Red is the
// maximizing side and always moves first.
package connectfour

import (
	"fmt"
	"strconv"
	"strings"

	"minimax/game"
)

type Cell int8

const (
	Empty Cell = iota
	Red
	Yellow
)

const (
	Columns = 7
	Rows    = 6

	// MaxMoves is the worst-case branching factor: one move per column.
	MaxMoves = Columns
)

// Win is the terminal score base, scaled up by remaining empty cells so the
// searcher prefers the quicker of two forced wins.
const Win game.Score = 10000

// Move is a column index, 0..6 from the left.
type Move int8

// columnOrder enumerates center-out. Central columns are stronger, so this
// both breaks ties toward the center and tightens pruning.
var columnOrder = [Columns]Move{3, 2, 4, 1, 5, 0, 6}

// Board is a value-type snapshot. Row 0 is the bottom row.
type Board struct {
	cells  [Rows][Columns]Cell
	turn   Cell
	filled int8
}

// New returns an empty board with Red to move.
func New() Board {
	return Board{turn: Red}
}

func (b Board) Turn() Cell { return b.turn }

func (b Board) Cell(row, col int) Cell { return b.cells[row][col] }

func (b Board) columnFull(col Move) bool {
	return b.cells[Rows-1][col] != Empty
}

func (b Board) empties() game.Score {
	return game.Score(Rows*Columns - int(b.filled))
}

// winner scans every length-4 window. Plenty of redundant work next to an
// incremental last-move check, but the board is tiny and the model stays
// obviously correct.
func (b Board) winner() Cell {
	dirs := [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			c := b.cells[row][col]
			if c == Empty {
				continue
			}
			for _, d := range dirs {
				endRow, endCol := row+3*d[0], col+3*d[1]
				if endRow >= Rows || endCol < 0 || endCol >= Columns {
					continue
				}
				if b.cells[row+d[0]][col+d[1]] == c &&
					b.cells[row+2*d[0]][col+2*d[1]] == c &&
					b.cells[endRow][endCol] == c {
					return c
				}
			}
		}
	}
	return Empty
}

func (b Board) String() string {
	marks := map[Cell]string{Empty: ".", Red: "R", Yellow: "Y"}
	var sb strings.Builder
	for row := Rows - 1; row >= 0; row-- {
		for col := 0; col < Columns; col++ {
			sb.WriteString(marks[b.cells[row][col]])
			if col < Columns-1 {
				sb.WriteString(" ")
			}
		}
		sb.WriteString("\n")
	}
	sb.WriteString("1 2 3 4 5 6 7\n")
	return sb.String()
}

// ParseMove reads a 1-based column number and rejects full columns.
func ParseMove(b Board, input string) (Move, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || n < 1 || n > Columns {
		return 0, fmt.Errorf("want a column number 1-%d, got %q", Columns, input)
	}
	move := Move(n - 1)
	if b.columnFull(move) {
		return 0, fmt.Errorf("column %d is full", n)
	}
	return move, nil
}

// Logic implements game.Logic[Board, Move].
type Logic struct{}

// windowWeight scores a length-4 window holding n same-colored pieces and
// no opposing ones.
var windowWeight = [4]game.Score{0, 1, 10, 50}

// Evaluate scores from Red's perspective: terminal wins dominate, otherwise
// every window open to only one side contributes by how far along it is,
// plus a small center-column bonus.
func (Logic) Evaluate(b Board) game.Score {
	switch b.winner() {
	case Red:
		return Win + b.empties()
	case Yellow:
		return -(Win + b.empties())
	}

	score := game.Score(0)
	dirs := [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			for _, d := range dirs {
				endRow, endCol := row+3*d[0], col+3*d[1]
				if endRow >= Rows || endCol < 0 || endCol >= Columns {
					continue
				}
				reds, yellows := 0, 0
				for i := 0; i < 4; i++ {
					switch b.cells[row+i*d[0]][col+i*d[1]] {
					case Red:
						reds++
					case Yellow:
						yellows++
					}
				}
				if yellows == 0 {
					score += windowWeight[reds]
				} else if reds == 0 {
					score -= windowWeight[yellows]
				}
			}
		}
	}

	for row := 0; row < Rows; row++ {
		switch b.cells[row][Columns/2] {
		case Red:
			score += 3
		case Yellow:
			score -= 3
		}
	}
	return score
}

func (Logic) GenerateMoves(b Board, buf []Move) int {
	count := 0
	for _, col := range columnOrder {
		if !b.columnFull(col) {
			buf[count] = col
			count++
		}
	}
	return count
}

func (Logic) ApplyMove(b *Board, move Move) {
	for row := 0; row < Rows; row++ {
		if b.cells[row][move] == Empty {
			b.cells[row][move] = b.turn
			break
		}
	}
	b.filled++
	if b.turn == Red {
		b.turn = Yellow
	} else {
		b.turn = Red
	}
}

func (Logic) IsTerminal(b Board) bool {
	return b.winner() != Empty || b.filled == Rows*Columns
}

func (Logic) IsMaximizingPlayer(b Board) bool {
	return b.turn == Red
}
