// Package player provides the move-choosing strategies a match can be
// played with: the minimax searcher, a uniform random baseline, and a
// line-based human input adapter.
package player

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"minimax/experiments/metrics"
	"minimax/game"
	"minimax/searcher"
)

// Player chooses a move for the side to play in state.
type Player[S any, M any] interface {
	Name() string
	FindMove(state S) (M, error)
}

// Searcher plays the engine's best move and keeps the counters of its most
// recent search.
type Searcher[S any, M any] struct {
	name   string
	engine *searcher.Engine[S, M]
	last   metrics.SearchMetric
}

func NewSearcher[S any, M any](name string, engine *searcher.Engine[S, M]) *Searcher[S, M] {
	return &Searcher[S, M]{name: name, engine: engine}
}

func (p *Searcher[S, M]) Name() string {
	return p.name
}

func (p *Searcher[S, M]) FindMove(state S) (M, error) {
	start := time.Now()
	move := p.engine.FindBestMove(state)
	p.last = metrics.SearchMetric{
		Depth:     p.engine.MaxDepth(),
		Nodes:     p.engine.NodesSearched(),
		Cutoffs:   p.engine.Cutoffs(),
		BestScore: p.engine.BestScore(),
		Duration:  time.Since(start),
	}
	log.Debug().
		Str("player", p.name).
		Int("nodes", p.last.Nodes).
		Int("cutoffs", p.last.Cutoffs).
		Int("score", int(p.last.BestScore)).
		Dur("took", p.last.Duration).
		Msg("search complete")
	return move, nil
}

// LastMetric returns the counters of the most recent FindMove call.
func (p *Searcher[S, M]) LastMetric() metrics.SearchMetric {
	return p.last
}

// Random plays a uniformly random legal move. Useful as a baseline opponent
// and for exercising game models in soak tests.
type Random[S any, M any] struct {
	name  string
	logic game.Logic[S, M]
	buf   []M
	rng   *rand.Rand
}

func NewRandom[S any, M any](name string, logic game.Logic[S, M], capacity int, seed uint64) *Random[S, M] {
	return &Random[S, M]{
		name:  name,
		logic: logic,
		buf:   make([]M, capacity),
		rng:   rand.New(rand.NewSource(seed)),
	}
}

func (p *Random[S, M]) Name() string {
	return p.name
}

func (p *Random[S, M]) FindMove(state S) (M, error) {
	count := p.logic.GenerateMoves(state, p.buf)
	if count == 0 {
		var zero M
		return zero, fmt.Errorf("%s has no legal moves", p.name)
	}
	return p.buf[p.rng.Intn(count)], nil
}

// Human turns lines from readLine into moves via the game's parser,
// reporting parse failures and asking again. A readLine error (closed
// input, interrupt) aborts the move.
type Human[S any, M any] struct {
	name     string
	readLine func() (string, error)
	parse    func(S, string) (M, error)
}

func NewHuman[S any, M any](name string, readLine func() (string, error), parse func(S, string) (M, error)) *Human[S, M] {
	return &Human[S, M]{name: name, readLine: readLine, parse: parse}
}

func (p *Human[S, M]) Name() string {
	return p.name
}

func (p *Human[S, M]) FindMove(state S) (M, error) {
	for {
		line, err := p.readLine()
		if err != nil {
			var zero M
			return zero, fmt.Errorf("input closed: %w", err)
		}
		move, err := p.parse(state, line)
		if err != nil {
			fmt.Println(err)
			continue
		}
		return move, nil
	}
}
