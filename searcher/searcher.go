// Package searcher implements a fixed-depth minimax search with alpha-beta
// pruning over any game satisfying the game.Logic contract.
//
// The search allocates nothing: one move buffer per ply is reserved when the
// engine is built and reused across searches, and states are copied by value
// on the stack at every explored move. An Engine is not safe for concurrent
// searches; give each worker its own instance.
package searcher

import (
	"minimax/game"
)

// Engine computes best moves for a single game.Logic implementation.
// MaxDepth and move capacity are fixed at construction and apply uniformly
// to every search on the instance.
type Engine[S any, M any] struct {
	logic    game.Logic[S, M]
	maxDepth int

	// One buffer per ply, indexed by distance from the root. Sibling
	// branches at the same ply reuse the buffer sequentially; recursion
	// only ever touches deeper buffers, so no frame sees another frame's
	// moves.
	buffers [][]M

	bestScore game.Score
	nodes     int
	cutoffs   int
}

// New builds an engine around logic. Defaults are DefaultMaxDepth and
// DefaultMoveCapacity; override with WithDepth and WithMoveCapacity.
func New[S any, M any](logic game.Logic[S, M], options ...Option) *Engine[S, M] {
	s := settings{
		maxDepth:     DefaultMaxDepth,
		moveCapacity: DefaultMoveCapacity,
	}
	for _, option := range options {
		option(&s)
	}

	e := &Engine[S, M]{
		logic:    logic,
		maxDepth: s.maxDepth,
		buffers:  make([][]M, s.maxDepth),
	}
	for i := range e.buffers {
		e.buffers[i] = make([]M, s.moveCapacity)
	}
	return e
}

// FindBestMove returns the best move for the player to move in state,
// searching the game tree to the engine's configured depth. With no legal
// moves it returns the zero move without searching; callers are expected to
// check terminality first. The input state is never mutated.
//
// Ties are broken by enumeration order: the first move to reach the best
// value keeps it, later moves with an equal value never replace it.
func (e *Engine[S, M]) FindBestMove(state S) M {
	var bestMove M
	e.bestScore = 0
	e.nodes = 0
	e.cutoffs = 0

	buf := e.buffers[0]
	count := e.logic.GenerateMoves(state, buf)
	if count == 0 {
		return bestMove
	}

	maximizing := e.logic.IsMaximizingPlayer(state)
	if maximizing {
		e.bestScore = -game.Infinity
	} else {
		e.bestScore = game.Infinity
	}

	for _, move := range buf[:count] {
		child := state
		e.logic.ApplyMove(&child, move)

		score := e.minimax(child, e.maxDepth-1, -game.Infinity, game.Infinity, !maximizing)

		if maximizing {
			if score > e.bestScore {
				e.bestScore = score
				bestMove = move
			}
		} else {
			if score < e.bestScore {
				e.bestScore = score
				bestMove = move
			}
		}
	}

	return bestMove
}

// BestScore returns the subtree value of the move chosen by the most recent
// FindBestMove call. It is zero before any search has run.
func (e *Engine[S, M]) BestScore() game.Score {
	return e.bestScore
}

// NodesSearched returns the number of positions visited by the most recent
// FindBestMove call only, not a running total.
func (e *Engine[S, M]) NodesSearched() int {
	return e.nodes
}

// Cutoffs returns how many times the most recent search abandoned a
// position's remaining moves on an alpha-beta cutoff.
func (e *Engine[S, M]) Cutoffs() int {
	return e.cutoffs
}

// MaxDepth returns the configured search depth in plies.
func (e *Engine[S, M]) MaxDepth() int {
	return e.maxDepth
}

func (e *Engine[S, M]) minimax(state S, depth int, alpha, beta game.Score, maximizing bool) game.Score {
	e.nodes++

	if depth == 0 || e.logic.IsTerminal(state) {
		return e.logic.Evaluate(state)
	}

	buf := e.buffers[e.maxDepth-depth]
	count := e.logic.GenerateMoves(state, buf)

	// With zero children the loop below never runs and the sentinel comes
	// back unchanged. Games avoid this by making IsTerminal cover every
	// no-move position.
	if maximizing {
		best := -game.Infinity
		for i, move := range buf[:count] {
			child := state
			e.logic.ApplyMove(&child, move)
			value := e.minimax(child, depth-1, alpha, beta, false)
			if value > best {
				best = value
			}
			if value > alpha {
				alpha = value
			}
			if beta <= alpha {
				if i < count-1 {
					e.cutoffs++
				}
				break
			}
		}
		return best
	}

	best := game.Infinity
	for i, move := range buf[:count] {
		child := state
		e.logic.ApplyMove(&child, move)
		value := e.minimax(child, depth-1, alpha, beta, true)
		if value < best {
			best = value
		}
		if value < beta {
			beta = value
		}
		if beta <= alpha {
			if i < count-1 {
				e.cutoffs++
			}
			break
		}
	}
	return best
}
