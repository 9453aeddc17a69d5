package game

// StateHash identifies a game state for tree reuse lookups.
type StateHash uint64

// State is the game model contract the searcher consumes. Implementations
// must be immutable values: Play returns a new state and leaves the receiver
// untouched.
type State interface {
	// Player returns the player to move.
	Player() string
	// LegalMoves returns the moves available to the player to move, empty
	// once the game is over.
	LegalMoves() []Move
	// Play applies a legal move and returns the resulting state. It panics
	// with ErrIllegalMove when the move is not legal; that is an integration
	// bug in the caller, not a recoverable condition.
	Play(move Move) State
	// IsTerminal reports whether the game is over.
	IsTerminal() bool
	// Winner returns the winning player, or "" while the game is ongoing or
	// when it ended in a draw.
	Winner() string
	Hash() StateHash
}

// Outcome is the result of a finished game. An empty Winner means a draw.
type Outcome struct {
	Winner string
}
