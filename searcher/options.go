package searcher

// Defaults sized for small board games; a wider game should raise the move
// capacity to its true worst-case branching factor, since the engine never
// checks for overflow.
const (
	DefaultMaxDepth     = 5
	DefaultMoveCapacity = 64
)

type settings struct {
	maxDepth     int
	moveCapacity int
}

type Option func(*settings)

// WithDepth fixes the search depth in plies.
func WithDepth(depth int) Option {
	return func(s *settings) {
		if depth > 0 {
			s.maxDepth = depth
		}
	}
}

// WithMoveCapacity fixes the per-position move buffer size. GenerateMoves
// must never report more moves than this.
func WithMoveCapacity(capacity int) Option {
	return func(s *settings) {
		if capacity > 0 {
			s.moveCapacity = capacity
		}
	}
}
