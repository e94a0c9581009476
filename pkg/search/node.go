package search

// Node pairs a state with its accumulated path cost and heuristic
// estimate. The state it references is owned by the session's History
// store, which must outlive every node handed out by the engine.
type Node[S State[S, M], M any] struct {
	state     S
	pathCost  int
	heuristic int

	// Memoization cell for the successor list: computed once on first
	// access, read many times afterwards.
	succs     []S
	haveSuccs bool

	initialMove M
	attributed  bool
}

func newNode[S State[S, M], M any](state S, pathCost, heuristic int) *Node[S, M] {
	return &Node[S, M]{state: state, pathCost: pathCost, heuristic: heuristic}
}

// State returns the canonical state this node wraps.
func (n *Node[S, M]) State() S { return n.state }

// PathCost is the number of moves taken from the initial state.
func (n *Node[S, M]) PathCost() int { return n.pathCost }

// Heuristic is the estimated remaining cost, fixed at node creation.
func (n *Node[S, M]) Heuristic() int { return n.heuristic }

// FCost is the sort key: path cost plus heuristic estimate.
func (n *Node[S, M]) FCost() int { return n.pathCost + n.heuristic }

// Successors returns the node's successor states. The underlying state
// is asked to enumerate them at most once; later calls return the same
// cached sequence.
func (n *Node[S, M]) Successors() []S {
	if !n.haveSuccs {
		n.succs = n.state.Successors()
		n.haveSuccs = true
	}
	return n.succs
}

// InitialMove identifies the immediate child of the search root this
// node descends from. ok is false on the root itself.
func (n *Node[S, M]) InitialMove() (move M, ok bool) {
	return n.initialMove, n.attributed
}
