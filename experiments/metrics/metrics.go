// Package metrics holds the per-search and per-game measurement records the
// experiment harness collects, plus a CSV writer for them.
package metrics

import (
	"time"

	"minimax/game"
)

// SearchMetric is a snapshot of one FindBestMove call's counters.
type SearchMetric struct {
	Depth     int
	Nodes     int
	Cutoffs   int
	BestScore game.Score
	Duration  time.Duration
}

// MoveRecord ties a search to its place in a game.
type MoveRecord struct {
	Game   int
	Step   int
	Player string
	SearchMetric
}

// GameRecord summarizes one self-play game.
type GameRecord struct {
	ID         int
	Depth      int
	Winner     string
	Moves      int
	TotalNodes int
	Duration   time.Duration
}
