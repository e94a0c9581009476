package search

// State is the capability contract a searchable type must satisfy.
// Implementations must be immutable values: every method is
// side-effect-free and deterministic.
type State[S any, M any] interface {
	// Successors enumerates the states reachable in one move. The result
	// must be finite and deterministic; an empty result marks a terminal
	// state.
	Successors() []S

	// IsGoal reports whether the state satisfies the search objective.
	IsGoal() bool

	// LastMove returns the move that produced this state from its parent.
	// It is meaningless on the initial state and must not be read there.
	LastMove() M

	// Key returns a stable identity used for deduplication. Two states
	// are equal exactly when their keys are equal.
	Key() string
}

// Heuristic estimates the remaining cost from a state to a goal. It must
// return a non-negative value. For optimality guarantees it should never
// overestimate the true remaining cost; the engine does not enforce
// this, and violating it degrades result quality rather than failing.
type Heuristic[S any] func(S) int
