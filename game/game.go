package game

// Score is a bounded position value. The searcher initializes alpha and beta
// with the Infinity sentinels, so evaluation functions must return values
// strictly inside (-Infinity, Infinity) to keep the sentinels meaning
// "unbounded".
type Score int

const Infinity Score = 32000

// Logic is the capability contract a game implements to be searchable.
// S is the game state and M the move type. Both must be plain value types:
// the searcher copies states by assignment at every explored move, and
// stores moves in fixed-capacity buffers.
//
// Scores follow the absolute convention: Evaluate always judges a position
// from the maximizing side's perspective, whoever is to move. A game that
// scores "from the mover's point of view" will be searched incorrectly.
type Logic[S any, M any] interface {
	// Evaluate returns a heuristic or terminal value for state, positive
	// when the position favors the maximizing side.
	Evaluate(state S) Score

	// GenerateMoves writes the legal moves for the player to move in state
	// into buf, at most len(buf) of them, and returns the number written.
	// Enumeration order is observable: the searcher breaks ties between
	// equal-valued moves in favor of the earlier one.
	GenerateMoves(state S, buf []M) int

	// ApplyMove mutates state in place to reflect one legal move, including
	// switching whose turn it is. It must depend on nothing but its
	// arguments.
	ApplyMove(state *S, move M)

	// IsTerminal reports whether the game is over in state (win, loss, draw
	// or stalemate). It must be true whenever GenerateMoves would return
	// zero: the searcher treats a non-terminal position with no moves as a
	// lost cause for the side to move, which is rarely what the game means.
	IsTerminal(state S) bool

	// IsMaximizingPlayer reports whether the player to move in state is the
	// side the searcher maximizes for.
	IsMaximizingPlayer(state S) bool
}
