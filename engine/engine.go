// Package engine runs complete games between two players over any game
// model.
package engine

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"minimax/game"
	"minimax/player"
)

// DefaultMaxTurns caps runaway games between players that never reach a
// terminal position.
const DefaultMaxTurns = 500

// Result describes a finished match. Winner is empty on a draw; if the turn
// cap ended the game it is whoever the final evaluation favors.
type Result[S any] struct {
	Winner string
	Final  S
	Turns  int
}

// Match drives one game between a maximizing and a minimizing player.
type Match[S any, M any] struct {
	logic      game.Logic[S, M]
	maximizing player.Player[S, M]
	minimizing player.Player[S, M]

	// MaxTurns bounds the game length, DefaultMaxTurns unless changed.
	MaxTurns int
	// Observer, when set, sees the state before every move and once more
	// at the end.
	Observer func(S)
}

func NewMatch[S any, M any](logic game.Logic[S, M], maximizing, minimizing player.Player[S, M]) *Match[S, M] {
	return &Match[S, M]{
		logic:      logic,
		maximizing: maximizing,
		minimizing: minimizing,
		MaxTurns:   DefaultMaxTurns,
	}
}

// Run plays out the game from state and returns the result. A player error
// (closed input, no legal moves) aborts the match.
func (m *Match[S, M]) Run(state S) (Result[S], error) {
	turns := 0
	for !m.logic.IsTerminal(state) && turns < m.MaxTurns {
		if m.Observer != nil {
			m.Observer(state)
		}

		current := m.maximizing
		if !m.logic.IsMaximizingPlayer(state) {
			current = m.minimizing
		}

		move, err := current.FindMove(state)
		if err != nil {
			return Result[S]{}, fmt.Errorf("turn %d, %s to move: %w", turns+1, current.Name(), err)
		}
		m.logic.ApplyMove(&state, move)
		turns++
		log.Debug().Int("turn", turns).Str("player", current.Name()).Msg("move played")
	}
	if m.Observer != nil {
		m.Observer(state)
	}

	result := Result[S]{Final: state, Turns: turns}
	switch score := m.logic.Evaluate(state); {
	case score > 0:
		result.Winner = m.maximizing.Name()
	case score < 0:
		result.Winner = m.minimizing.Name()
	}
	log.Info().Str("winner", result.Winner).Int("turns", turns).Msg("game over")
	return result, nil
}
