package search

import (
	"fmt"
	"log/slog"

	"github.com/ESultanik/klondike/internal/logging"
)

// Engine drives a best-first search session over one initial state. It
// exclusively owns its Frontier and History for the session's duration
// and is not safe for concurrent use.
type Engine[S State[S, M], M any] struct {
	frontier  *Frontier[S, M]
	history   *History[S, M]
	heuristic Heuristic[S]

	depthLimit int
	limited    bool
	nodeBudget int

	expanded     int
	expandedOnce bool

	logger   *slog.Logger
	metrics  Metrics
	progress func(*Node[S, M])
}

// New creates an engine seeded with the initial state. The heuristic is
// evaluated once per distinct state, at node creation.
func New[S State[S, M], M any](initial S, heuristic Heuristic[S], opts ...Option[S, M]) *Engine[S, M] {
	e := &Engine[S, M]{
		frontier:  NewFrontier[S, M](),
		history:   NewHistory[S, M](),
		heuristic: heuristic,
		logger:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	root, _ := e.history.Insert(initial)
	e.frontier.Push(newNode[S, M](root, 0, e.heuristic(root)))
	return e
}

// Expanded returns the number of expansions performed so far.
func (e *Engine[S, M]) Expanded() int { return e.expanded }

// Visited returns the number of distinct states generated so far.
func (e *Engine[S, M]) Visited() int { return e.history.Len() }

// FrontierLen returns the number of nodes awaiting expansion.
func (e *Engine[S, M]) FrontierLen() int { return e.frontier.Len() }

// Step pops the lowest-cost frontier node and expands it. Novel
// successors are inserted into History and pushed back onto the
// Frontier with an incremented path cost and a fresh heuristic
// evaluation; successors equal to an already-visited state are dropped.
// It returns ErrExhausted when the frontier is empty.
func (e *Engine[S, M]) Step() (*Node[S, M], error) {
	node, err := e.frontier.Pop()
	if err != nil {
		return nil, err
	}

	// The first expansion of a session always proceeds, even under a
	// depth limit that would otherwise forbid it. Later expansions are
	// gated on the popped node's path cost.
	expand := !e.expandedOnce || !e.limited || node.pathCost < e.depthLimit
	e.expandedOnce = true
	e.expanded++

	if expand {
		for _, succ := range node.Successors() {
			canonical, novel := e.history.Insert(succ)
			if !novel {
				if e.metrics != nil {
					e.metrics.DuplicateSuppressed()
				}
				continue
			}
			child := newNode[S, M](canonical, node.pathCost+1, e.heuristic(canonical))
			switch {
			case node.attributed:
				child.initialMove, child.attributed = node.initialMove, true
			case node.pathCost == 0:
				child.initialMove, child.attributed = canonical.LastMove(), true
			}
			e.frontier.Push(child)
		}
	}

	if e.metrics != nil {
		e.metrics.NodeExpanded()
		e.metrics.FrontierSize(e.frontier.Len())
		e.metrics.HistorySize(e.history.Len())
	}
	if e.progress != nil {
		e.progress(node)
	}
	return node, nil
}

// Solve steps the search until a popped state satisfies the goal test or
// the frontier empties. Without a depth limit the first terminal node
// encountered is the result. With a limit, terminals and nodes at or
// beyond the limit become fallback candidates compared by FCost
// (first seen wins on ties), returned when the search exhausts or the
// node budget runs out, so a bounded search degrades to "best effort
// seen" rather than failing outright.
func (e *Engine[S, M]) Solve() (*Node[S, M], error) {
	e.logger.Debug("solve started",
		"depth_limit", e.depthLimit, "limited", e.limited, "node_budget", e.nodeBudget)

	var (
		fallback   *Node[S, M] // best terminal or at-limit node
		lastResort *Node[S, M] // best non-root node of any depth
	)
	start := e.expanded
	for {
		if e.nodeBudget > 0 && e.expanded-start >= e.nodeBudget {
			break
		}
		node, err := e.Step()
		if err != nil {
			break
		}
		if node.State().IsGoal() {
			e.logger.Debug("goal reached", "path_cost", node.PathCost(), "expanded", e.expanded-start)
			return node, nil
		}
		terminal := len(node.Successors()) == 0
		if node.pathCost > 0 && (lastResort == nil || node.FCost() < lastResort.FCost()) {
			lastResort = node
		}
		if !e.limited {
			if terminal || e.frontier.Empty() {
				return node, nil
			}
			continue
		}
		if node.pathCost > 0 && (terminal || node.pathCost >= e.depthLimit) {
			if fallback == nil || node.FCost() < fallback.FCost() {
				fallback = node
			}
		}
		if e.frontier.Empty() {
			break
		}
	}

	if fallback != nil {
		e.logger.Debug("solve fell back to best bounded node",
			"path_cost", fallback.PathCost(), "f_cost", fallback.FCost())
		return fallback, nil
	}
	if lastResort == nil {
		// Budget ran out before any non-root pop; the cheapest pending
		// node is still a better answer than giving up.
		if peeked, err := e.frontier.Peek(); err == nil && peeked.pathCost > 0 {
			lastResort = peeked
		}
	}
	if lastResort != nil {
		return lastResort, nil
	}
	return nil, ErrExhausted
}

// BestMove implements one-ply move selection by full subtree
// exploration. It requires the frontier to hold exactly the root node.
// Each legal successor of the root is evaluated by an isolated
// sub-search seeded with just that successor, with History reset to the
// root between branches so one branch's visited-state bookkeeping never
// pollutes another's. The move whose sub-search reaches the terminal
// with the lowest FCost is returned alongside that terminal node.
func (e *Engine[S, M]) BestMove() (M, *Node[S, M], error) {
	var zero M
	if n := e.frontier.Len(); n != 1 {
		return zero, nil, &ContractError{
			Op:     "BestMove",
			Reason: fmt.Sprintf("frontier holds %d nodes, want exactly the root", n),
		}
	}
	root, err := e.frontier.Pop()
	if err != nil {
		return zero, nil, err
	}
	succs := root.Successors()
	if len(succs) == 0 {
		return zero, nil, ErrNoLegalMoves
	}

	var (
		bestMove M
		best     *Node[S, M]
	)
	for _, succ := range succs {
		e.frontier.Clear()
		e.history.Reset(root.State())
		canonical, novel := e.history.Insert(succ)
		if !novel {
			// A move that reproduces the root state cannot make progress.
			continue
		}
		branch := newNode[S, M](canonical, root.pathCost+1, e.heuristic(canonical))
		branch.initialMove, branch.attributed = canonical.LastMove(), true
		e.frontier.Push(branch)
		// Re-arm the first-expansion exemption so every branch makes
		// progress even under a tiny depth limit.
		e.expandedOnce = false

		result, err := e.Solve()
		if err != nil {
			continue
		}
		e.logger.Debug("branch explored",
			"move", fmt.Sprintf("%v", branch.initialMove), "f_cost", result.FCost())
		if best == nil || result.FCost() < best.FCost() {
			best = result
			bestMove = branch.initialMove
		}
	}

	e.frontier.Clear()
	e.history.Reset(root.State())
	if best == nil {
		return zero, nil, ErrExhausted
	}
	return bestMove, best, nil
}
