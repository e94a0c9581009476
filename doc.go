/*
Package klondike models single-player Klondike solitaire deals and
solves them with the generic best-first search engine in pkg/search.

The domain types mirror a physical layout: packed single-byte Cards,
immutable Piles with a face-down prefix, and a GameState holding the
stock, the waste, seven tableaus and four foundations. GameState
satisfies the engine's State contract, so the package-level Solve and
BestMove helpers are thin wrappers that pair a deal with the default
heuristic.

Face-down cards are opaque: the state machine never generates a move
that depends on an unrevealed card. Fully known deals behave as a
perfect-information solver.

Dealing, shuffling and rendering are deliberately not provided; states
are assembled explicitly via NewPile and NewGameState.
*/
package klondike
