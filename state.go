package klondike

// NumTableaus and NumFoundations fix the layout of a Klondike deal.
const (
	NumTableaus    = 7
	NumFoundations = 4
)

// GameState is one full configuration of a Klondike deal: the stock,
// the waste, seven tableaus and four foundations. States are immutable
// values; Successors builds fresh states that share no writable
// storage with the receiver. GameState satisfies the search engine's
// State contract.
type GameState struct {
	stock       Pile
	waste       Pile
	tableaus    [NumTableaus]Pile
	foundations [NumFoundations]Pile
	lastMove    Move
}

// NewGameState assembles a state from explicit piles. Dealing and
// shuffling are the caller's concern.
func NewGameState(stock, waste Pile, tableaus [NumTableaus]Pile, foundations [NumFoundations]Pile) GameState {
	return GameState{
		stock:       stock,
		waste:       waste,
		tableaus:    tableaus,
		foundations: foundations,
	}
}

// Stock returns the face-down draw pile.
func (g GameState) Stock() Pile { return g.stock }

// Waste returns the face-up discard pile next to the stock.
func (g GameState) Waste() Pile { return g.waste }

// Tableau returns the i-th tableau column.
func (g GameState) Tableau(i int) Pile { return g.tableaus[i] }

// Foundation returns the i-th foundation pile.
func (g GameState) Foundation(i int) Pile { return g.foundations[i] }

// LastMove returns the move that produced this state from its parent.
// It is meaningless on a freshly constructed state.
func (g GameState) LastMove() Move { return g.lastMove }

// IsGoal reports whether every card has reached the foundations.
func (g GameState) IsGoal() bool {
	if !g.stock.Empty() || !g.waste.Empty() {
		return false
	}
	for i := range g.tableaus {
		if !g.tableaus[i].Empty() {
			return false
		}
	}
	return true
}

// Key returns a compact byte encoding of the full layout. Two states
// with equal keys are the same position.
func (g GameState) Key() string {
	buf := make([]byte, 0, 128)
	buf = g.stock.appendKey(buf)
	buf = g.waste.appendKey(buf)
	for i := range g.tableaus {
		buf = g.tableaus[i].appendKey(buf)
	}
	for i := range g.foundations {
		buf = g.foundations[i].appendKey(buf)
	}
	return string(buf)
}

// canPlaceOnFoundation reports whether card may go on the foundation
// pile: an ace on an empty pile, otherwise the next rank of the same
// suit.
func canPlaceOnFoundation(card Card, foundation Pile) bool {
	if !card.Known() {
		return false
	}
	if foundation.Empty() {
		return card.Value() == Ace
	}
	top := foundation.Top()
	return top.Suit() == card.Suit() && card.Value() == top.Value()+1
}

// canPlaceOnTableau reports whether card may go on the tableau pile: a
// king on an empty column, otherwise one rank lower than the exposed
// top with the opposite color.
func canPlaceOnTableau(card Card, tableau Pile) bool {
	if !card.Known() {
		return false
	}
	if tableau.Empty() {
		return card.Value() == King
	}
	top := tableau.Top()
	if !top.Known() {
		return false
	}
	return card.Red() != top.Red() && card.Value()+1 == top.Value()
}

// foundationTargets returns the indexes a card may be played onto.
// Aces are restricted to the lowest-index empty foundation so that
// symmetric placements do not multiply into distinct states.
func (g GameState) foundationTargets(card Card) []int {
	var targets []int
	firstEmpty := -1
	for i := range g.foundations {
		if g.foundations[i].Empty() {
			if firstEmpty < 0 {
				firstEmpty = i
			}
			continue
		}
		if canPlaceOnFoundation(card, g.foundations[i]) {
			targets = append(targets, i)
		}
	}
	if card.Known() && card.Value() == Ace && firstEmpty >= 0 {
		targets = append(targets, firstEmpty)
	}
	return targets
}

// Successors enumerates every state reachable in one legal move, in a
// fixed order: plays to the foundations, waste to tableau, tableau runs
// between columns, a draw, then a recycle. Moves that would touch a
// face-down card are never generated.
func (g GameState) Successors() []GameState {
	var succs []GameState

	// Waste to foundation.
	if w := g.waste.Top(); w.Known() {
		for _, fi := range g.foundationTargets(w) {
			next := g
			next.waste = g.waste.RemoveTop()
			next.foundations[fi] = g.foundations[fi].AddTop(w)
			next.lastMove = Move{Kind: MoveWasteToFoundation, To: fi}
			succs = append(succs, next)
		}
	}

	// Tableau tops to foundation.
	for ti := range g.tableaus {
		top := g.tableaus[ti].Top()
		if !top.Known() {
			continue
		}
		for _, fi := range g.foundationTargets(top) {
			next := g
			next.tableaus[ti] = g.tableaus[ti].RemoveTop()
			next.foundations[fi] = g.foundations[fi].AddTop(top)
			next.lastMove = Move{Kind: MoveTableauToFoundation, From: ti, To: fi}
			succs = append(succs, next)
		}
	}

	// Waste to tableau.
	if w := g.waste.Top(); w.Known() {
		for ti := range g.tableaus {
			if !canPlaceOnTableau(w, g.tableaus[ti]) {
				continue
			}
			next := g
			next.waste = g.waste.RemoveTop()
			next.tableaus[ti] = g.tableaus[ti].AddTop(w)
			next.lastMove = Move{Kind: MoveWasteToTableau, To: ti}
			succs = append(succs, next)
		}
	}

	succs = append(succs, g.tableauRunMoves()...)

	// Draw from the stock.
	if top := g.stock.Top(); top.Known() {
		next := g
		next.stock = g.stock.RemoveTop()
		next.waste = g.waste.AddTop(top)
		next.lastMove = Move{Kind: MoveDraw}
		succs = append(succs, next)
	}

	// Recycle the waste back into an empty stock.
	if g.stock.Empty() && !g.waste.Empty() {
		next := g
		next.stock = g.waste.reversed()
		next.waste = Pile{}
		next.lastMove = Move{Kind: MoveRecycle}
		succs = append(succs, next)
	}

	return succs
}

// tableauRunMoves enumerates moves of face-up runs between tableaus. A
// run of k cards is movable when it is itself a valid alternating
// descending sequence and its bottom card may be placed on the target.
func (g GameState) tableauRunMoves() []GameState {
	var succs []GameState
	for from := range g.tableaus {
		src := g.tableaus[from]
		faceUp := src.Size() - src.Hidden()
		for count := 1; count <= faceUp; count++ {
			bottom := src.At(src.Size() - count)
			if !bottom.Known() {
				break
			}
			if count > 1 {
				above := src.At(src.Size() - count + 1)
				if bottom.Red() == above.Red() || above.Value()+1 != bottom.Value() {
					break
				}
			}
			for to := range g.tableaus {
				if to == from || !canPlaceOnTableau(bottom, g.tableaus[to]) {
					continue
				}
				// Relocating a whole column that starts at its bottom to
				// another empty column changes nothing worth exploring.
				if g.tableaus[to].Empty() && count == src.Size() && src.Hidden() == 0 {
					continue
				}
				next := g
				next.tableaus[from] = src.RemoveTopN(count)
				next.tableaus[to] = g.tableaus[to].AddRun(src.TopN(count))
				next.lastMove = Move{Kind: MoveTableauToTableau, From: from, To: to, Count: count}
				succs = append(succs, next)
			}
		}
	}
	return succs
}
