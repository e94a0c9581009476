package klondike

// DefaultHeuristic estimates the remaining move count as the number of
// cards still off the foundations, plus one for every face-down tableau
// card that must be exposed along the way. It reaches zero exactly on
// won positions. The estimate is optimistic on full-information deals
// but makes no admissibility claim once recycles come into play.
func DefaultHeuristic(g GameState) int {
	remaining := g.stock.Size() + g.waste.Size()
	hidden := 0
	for i := 0; i < NumTableaus; i++ {
		remaining += g.Tableau(i).Size()
		hidden += g.Tableau(i).Hidden()
	}
	return remaining + hidden
}
