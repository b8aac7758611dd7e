package searcher

import (
	"strconv"
	"strings"

	"minimax/game"
)

// treeState identifies a position in a synthetic game tree by the path of
// move indices taken from the root, e.g. ".0.2".
type treeState struct {
	path       string
	maximizing bool
}

// treeLogic plays a hand-built tree: every position offers `branching` moves
// unless its path is listed in childless or terminal, and values come from
// the values map (zero when absent). With terminal left empty it recurses
// forever, which is exactly what the depth-bound tests need.
type treeLogic struct {
	branching int
	values    map[string]game.Score
	terminal  map[string]bool
	childless map[string]bool
}

func (l treeLogic) Evaluate(s treeState) game.Score {
	return l.values[s.path]
}

func (l treeLogic) GenerateMoves(s treeState, buf []int) int {
	if l.childless[s.path] {
		return 0
	}
	n := l.branching
	if n > len(buf) {
		n = len(buf)
	}
	for i := 0; i < n; i++ {
		buf[i] = i
	}
	return n
}

func (l treeLogic) ApplyMove(s *treeState, move int) {
	s.path += "." + strconv.Itoa(move)
	s.maximizing = !s.maximizing
}

func (l treeLogic) IsTerminal(s treeState) bool {
	return l.terminal[s.path]
}

func (l treeLogic) IsMaximizingPlayer(s treeState) bool {
	return s.maximizing
}

// plyRecorder wraps a treeLogic and records the deepest ply it is ever
// called at.
type plyRecorder struct {
	treeLogic
	maxPly *int
}

func (r plyRecorder) record(s treeState) {
	if ply := strings.Count(s.path, "."); ply > *r.maxPly {
		*r.maxPly = ply
	}
}

func (r plyRecorder) Evaluate(s treeState) game.Score {
	r.record(s)
	return r.treeLogic.Evaluate(s)
}

func (r plyRecorder) GenerateMoves(s treeState, buf []int) int {
	r.record(s)
	return r.treeLogic.GenerateMoves(s, buf)
}

// fullMinimax is an unpruned reference search over the same logic. It counts
// every visited position including the root, so the comparable engine figure
// is nodes-1.
func fullMinimax(l treeLogic, s treeState, depth int, maximizing bool, nodes *int) game.Score {
	*nodes++
	if depth == 0 || l.IsTerminal(s) {
		return l.Evaluate(s)
	}
	buf := make([]int, l.branching)
	count := l.GenerateMoves(s, buf)
	best := -game.Infinity
	if !maximizing {
		best = game.Infinity
	}
	for _, move := range buf[:count] {
		child := s
		l.ApplyMove(&child, move)
		value := fullMinimax(l, child, depth-1, !maximizing, nodes)
		if maximizing && value > best || !maximizing && value < best {
			best = value
		}
	}
	return best
}
