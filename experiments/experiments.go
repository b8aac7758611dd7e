// Package experiments measures how the searcher behaves as depth grows, by
// self-playing tic-tac-toe and recording the per-move search counters.
package experiments

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"minimax/experiments/metrics"
	"minimax/game/tictactoe"
	"minimax/player"
	"minimax/searcher"
)

// RunDepthSweep plays one deterministic self-play game per depth and writes
// games.csv and moves.csv under a timestamped directory below root.
func RunDepthSweep(depths []int, root string) error {
	writer, err := metrics.NewWriter(root)
	if err != nil {
		return err
	}

	var gameRecords []metrics.GameRecord
	var moveRecords []metrics.MoveRecord

	for id, depth := range depths {
		log.Info().Int("depth", depth).Msg("starting self-play game")
		game, moves, err := playGame(id, depth)
		if err != nil {
			return fmt.Errorf("depth %d: %w", depth, err)
		}
		gameRecords = append(gameRecords, game)
		moveRecords = append(moveRecords, moves...)
		log.Info().
			Int("depth", depth).
			Str("winner", game.Winner).
			Int("nodes", game.TotalNodes).
			Msg("game finished")
	}

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return err
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return err
	}
	log.Info().Str("dir", writer.BaseDir()).Msg("records written")
	return nil
}

func playGame(id, depth int) (metrics.GameRecord, []metrics.MoveRecord, error) {
	logic := tictactoe.Logic{}
	engine := searcher.New[tictactoe.Board, tictactoe.Move](logic,
		searcher.WithDepth(depth), searcher.WithMoveCapacity(tictactoe.MaxMoves))
	p := player.NewSearcher("self", engine)

	marks := [2]string{"x", "o"}
	state := tictactoe.New()
	start := time.Now()
	var moves []metrics.MoveRecord
	totalNodes := 0

	for step := 1; !logic.IsTerminal(state); step++ {
		move, err := p.FindMove(state)
		if err != nil {
			return metrics.GameRecord{}, nil, err
		}
		logic.ApplyMove(&state, move)

		metric := p.LastMetric()
		totalNodes += metric.Nodes
		moves = append(moves, metrics.MoveRecord{
			Game:         id,
			Step:         step,
			Player:       marks[(step-1)%2],
			SearchMetric: metric,
		})
	}

	winner := "draw"
	switch score := logic.Evaluate(state); {
	case score > 0:
		winner = "x"
	case score < 0:
		winner = "o"
	}

	game := metrics.GameRecord{
		ID:         id,
		Depth:      depth,
		Winner:     winner,
		Moves:      len(moves),
		TotalNodes: totalNodes,
		Duration:   time.Since(start),
	}
	return game, moves, nil
}
