// Package nim is a three-heap nim game model under normal play: taking the
// last object wins, so a player facing three empty heaps has lost. The
// first player is the maximizing side.
package nim

import (
	"fmt"
	"strings"

	"minimax/game"
)

const Heaps = 3

// MaxMoves is the worst-case branching factor for the default start:
// one move per object in every heap.
const MaxMoves = 3 + 5 + 7

// Win is the terminal score.
const Win game.Score = 100

// Move takes Take objects from heap Heap.
type Move struct {
	Heap int8
	Take int8
}

// Board is a value-type snapshot.
type Board struct {
	heaps [Heaps]int8
	turn  int8 // 1 or 2; player 1 maximizes
}

// New returns the default 3-5-7 start with player 1 to move.
func New() Board {
	return NewWithHeaps([Heaps]int8{3, 5, 7})
}

func NewWithHeaps(heaps [Heaps]int8) Board {
	return Board{heaps: heaps, turn: 1}
}

func (b Board) Turn() int8 { return b.turn }

func (b Board) Heap(i int) int8 { return b.heaps[i] }

func (b Board) remaining() int8 {
	return b.heaps[0] + b.heaps[1] + b.heaps[2]
}

func (b Board) String() string {
	var sb strings.Builder
	for i, h := range b.heaps {
		fmt.Fprintf(&sb, "heap %d: %s\n", i+1, strings.Repeat("| ", int(h)))
	}
	return sb.String()
}

// ParseMove reads "<heap> <count>" with a 1-based heap number.
func ParseMove(b Board, input string) (Move, error) {
	var heap, take int8
	_, err := fmt.Sscanf(strings.TrimSpace(input), "%d %d", &heap, &take)
	if err != nil {
		return Move{}, fmt.Errorf("want \"<heap> <count>\", got %q", input)
	}
	if heap < 1 || heap > Heaps {
		return Move{}, fmt.Errorf("no heap %d", heap)
	}
	if take < 1 || take > b.heaps[heap-1] {
		return Move{}, fmt.Errorf("heap %d does not have %d objects", heap, take)
	}
	return Move{Heap: heap - 1, Take: take}, nil
}

// Logic implements game.Logic[Board, Move].
type Logic struct{}

// Evaluate scores from player 1's perspective. At the terminal position the
// player to move took nothing and has lost. The non-terminal heuristic is
// the nim-sum: a zero xor means the mover is losing.
func (Logic) Evaluate(b Board) game.Score {
	mover := game.Score(1)
	if b.turn != 1 {
		mover = -1
	}

	if b.remaining() == 0 {
		return -mover * Win
	}
	if b.heaps[0]^b.heaps[1]^b.heaps[2] == 0 {
		return -mover * (Win / 2)
	}
	return mover * (Win / 2)
}

func (Logic) GenerateMoves(b Board, buf []Move) int {
	count := 0
	for heap := int8(0); heap < Heaps; heap++ {
		for take := int8(1); take <= b.heaps[heap]; take++ {
			buf[count] = Move{Heap: heap, Take: take}
			count++
		}
	}
	return count
}

func (Logic) ApplyMove(b *Board, move Move) {
	b.heaps[move.Heap] -= move.Take
	b.turn = 3 - b.turn
}

func (Logic) IsTerminal(b Board) bool {
	return b.remaining() == 0
}

func (Logic) IsMaximizingPlayer(b Board) bool {
	return b.turn == 1
}
