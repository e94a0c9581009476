package klondike

import "github.com/ESultanik/klondike/pkg/search"

// Result summarizes a finished search over a deal.
type Result struct {
	// Won reports whether the final state has every card on the
	// foundations.
	Won bool

	// Final is the best state the search reached.
	Final GameState

	// PathCost is the number of moves from the initial state to Final.
	PathCost int

	// FCost is Final's path cost plus its heuristic estimate.
	FCost int

	// Expanded counts engine expansions; Visited counts distinct states
	// generated.
	Expanded int
	Visited  int
}

func resultFrom(node *search.Node[GameState, Move], engine *search.Engine[GameState, Move]) Result {
	return Result{
		Won:      node.State().IsGoal(),
		Final:    node.State(),
		PathCost: node.PathCost(),
		FCost:    node.FCost(),
		Expanded: engine.Expanded(),
		Visited:  engine.Visited(),
	}
}

// Solve searches the deal for a win, or for the best reachable position
// under the configured depth limit and node budget.
func Solve(initial GameState, opts ...search.Option[GameState, Move]) (Result, error) {
	engine := search.New[GameState, Move](initial, DefaultHeuristic, opts...)
	node, err := engine.Solve()
	if err != nil {
		return Result{}, err
	}
	return resultFrom(node, engine), nil
}

// BestMove picks the single next move to commit from the initial state,
// evaluating each candidate by solving the remainder of the deal from
// that point. The returned Result describes the best terminal the
// chosen branch reached.
func BestMove(initial GameState, opts ...search.Option[GameState, Move]) (Move, Result, error) {
	engine := search.New[GameState, Move](initial, DefaultHeuristic, opts...)
	move, node, err := engine.BestMove()
	if err != nil {
		return Move{}, Result{}, err
	}
	return move, resultFrom(node, engine), nil
}
