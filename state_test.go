package klondike

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pileOf(cards ...Card) Pile { return NewPile(cards, 0) }

func foundationTo(suit Suit, upTo Value) Pile {
	var cards []Card
	for v := Ace; v <= upTo; v++ {
		cards = append(cards, NewCard(v, suit))
	}
	return pileOf(cards...)
}

func successorMoves(g GameState) []Move {
	succs := g.Successors()
	out := make([]Move, len(succs))
	for i, s := range succs {
		out[i] = s.LastMove()
	}
	return out
}

func TestAceGoesToFirstEmptyFoundationOnly(t *testing.T) {
	g := NewGameState(Pile{}, pileOf(NewCard(Ace, Spades)), [NumTableaus]Pile{}, [NumFoundations]Pile{})

	moves := successorMoves(g)
	count := 0
	for _, m := range moves {
		if m.Kind == MoveWasteToFoundation {
			count++
			assert.Equal(t, 0, m.To)
		}
	}
	assert.Equal(t, 1, count, "symmetric empty foundations must not multiply states")
}

func TestWasteToFoundationRequiresNextRankSameSuit(t *testing.T) {
	var foundations [NumFoundations]Pile
	foundations[2] = foundationTo(Hearts, Four)

	g := NewGameState(Pile{}, pileOf(NewCard(Five, Hearts)), [NumTableaus]Pile{}, foundations)
	assert.Contains(t, successorMoves(g), Move{Kind: MoveWasteToFoundation, To: 2})

	wrongSuit := NewGameState(Pile{}, pileOf(NewCard(Five, Diamonds)), [NumTableaus]Pile{}, foundations)
	for _, m := range successorMoves(wrongSuit) {
		assert.NotEqual(t, MoveWasteToFoundation, m.Kind)
	}
}

func TestTableauTopToFoundation(t *testing.T) {
	var tableaus [NumTableaus]Pile
	tableaus[3] = pileOf(NewCard(Five, Spades))
	var foundations [NumFoundations]Pile
	foundations[1] = foundationTo(Spades, Four)

	g := NewGameState(Pile{}, Pile{}, tableaus, foundations)
	succs := g.Successors()
	require.NotEmpty(t, succs)

	found := false
	for _, s := range succs {
		if s.LastMove() == (Move{Kind: MoveTableauToFoundation, From: 3, To: 1}) {
			found = true
			assert.True(t, s.Tableau(3).Empty())
			assert.Equal(t, NewCard(Five, Spades), s.Foundation(1).Top())
		}
	}
	assert.True(t, found)
}

func TestWasteToTableauAlternatesColorsDescending(t *testing.T) {
	var tableaus [NumTableaus]Pile
	tableaus[0] = pileOf(NewCard(Jack, Spades))

	legal := NewGameState(Pile{}, pileOf(NewCard(Ten, Hearts)), tableaus, [NumFoundations]Pile{})
	assert.Contains(t, successorMoves(legal), Move{Kind: MoveWasteToTableau, To: 0})

	sameColor := NewGameState(Pile{}, pileOf(NewCard(Ten, Clubs)), tableaus, [NumFoundations]Pile{})
	for _, m := range successorMoves(sameColor) {
		assert.NotEqual(t, MoveWasteToTableau, m.Kind)
	}
}

func TestOnlyKingsMoveToEmptyTableaus(t *testing.T) {
	king := NewGameState(Pile{}, pileOf(NewCard(King, Diamonds)), [NumTableaus]Pile{}, [NumFoundations]Pile{})
	kingMoves := 0
	for _, m := range successorMoves(king) {
		if m.Kind == MoveWasteToTableau {
			kingMoves++
		}
	}
	assert.Equal(t, NumTableaus, kingMoves, "a king may start any empty column")

	queen := NewGameState(Pile{}, pileOf(NewCard(Queen, Diamonds)), [NumTableaus]Pile{}, [NumFoundations]Pile{})
	for _, m := range successorMoves(queen) {
		assert.NotEqual(t, MoveWasteToTableau, m.Kind)
	}
}

func TestTableauRunMove(t *testing.T) {
	var tableaus [NumTableaus]Pile
	tableaus[0] = pileOf(NewCard(Nine, Spades), NewCard(Eight, Hearts))
	tableaus[1] = pileOf(NewCard(Ten, Diamonds))

	g := NewGameState(Pile{}, Pile{}, tableaus, [NumFoundations]Pile{})
	succs := g.Successors()

	want := Move{Kind: MoveTableauToTableau, From: 0, To: 1, Count: 2}
	found := false
	for _, s := range succs {
		if s.LastMove() == want {
			found = true
			assert.True(t, s.Tableau(0).Empty())
			assert.Equal(t, NewCard(Eight, Hearts), s.Tableau(1).Top())
			assert.Equal(t, NewCard(Nine, Spades), s.Tableau(1).At(1))
		}
	}
	assert.True(t, found, "the whole face-up run should move onto the ten")
}

func TestRunsNeverIncludeFaceDownCards(t *testing.T) {
	var tableaus [NumTableaus]Pile
	tableaus[0] = NewPile([]Card{NewCard(Two, Clubs), NewCard(Nine, Spades)}, 1)
	tableaus[1] = pileOf(NewCard(Ten, Diamonds))

	g := NewGameState(Pile{}, Pile{}, tableaus, [NumFoundations]Pile{})
	var runMoves []Move
	for _, m := range successorMoves(g) {
		if m.Kind == MoveTableauToTableau {
			runMoves = append(runMoves, m)
		}
	}
	require.Len(t, runMoves, 1)
	assert.Equal(t, Move{Kind: MoveTableauToTableau, From: 0, To: 1, Count: 1}, runMoves[0])
}

func TestShufflingWholeColumnsBetweenEmptySlotsIsSkipped(t *testing.T) {
	var tableaus [NumTableaus]Pile
	tableaus[0] = pileOf(NewCard(King, Spades), NewCard(Queen, Hearts))

	g := NewGameState(Pile{}, Pile{}, tableaus, [NumFoundations]Pile{})
	for _, m := range successorMoves(g) {
		assert.NotEqual(t, MoveTableauToTableau, m.Kind,
			"relocating a bottomed king column to another empty column changes nothing")
	}
}

func TestDrawMovesStockTopToWaste(t *testing.T) {
	g := NewGameState(pileOf(NewCard(Five, Clubs)), Pile{}, [NumTableaus]Pile{}, [NumFoundations]Pile{})
	succs := g.Successors()
	require.Len(t, succs, 1)

	next := succs[0]
	assert.Equal(t, Move{Kind: MoveDraw}, next.LastMove())
	assert.True(t, next.Stock().Empty())
	assert.Equal(t, NewCard(Five, Clubs), next.Waste().Top())
}

func TestDrawBlockedOnFaceDownStock(t *testing.T) {
	stock := NewPile([]Card{NewCard(Five, Clubs)}, 1)
	g := NewGameState(stock, Pile{}, [NumTableaus]Pile{}, [NumFoundations]Pile{})
	assert.Empty(t, g.Successors(), "an unrevealed stock top cannot be drawn")
}

func TestRecycleReversesWasteIntoStock(t *testing.T) {
	waste := pileOf(NewCard(Two, Spades), NewCard(Three, Spades))
	g := NewGameState(Pile{}, waste, [NumTableaus]Pile{}, [NumFoundations]Pile{})

	var recycled *GameState
	for _, s := range g.Successors() {
		if s.LastMove().Kind == MoveRecycle {
			s := s
			recycled = &s
		}
	}
	require.NotNil(t, recycled)
	assert.True(t, recycled.Waste().Empty())
	// The card drawn first comes off the recycled stock first again.
	assert.Equal(t, NewCard(Two, Spades), recycled.Stock().Top())
}

func TestIsGoal(t *testing.T) {
	var foundations [NumFoundations]Pile
	foundations[0] = foundationTo(Spades, King)
	won := NewGameState(Pile{}, Pile{}, [NumTableaus]Pile{}, foundations)
	assert.True(t, won.IsGoal())

	inPlay := NewGameState(Pile{}, pileOf(NewCard(Two, Hearts)), [NumTableaus]Pile{}, foundations)
	assert.False(t, inPlay.IsGoal())
}

func TestKeyIdentifiesPositions(t *testing.T) {
	a := NewGameState(Pile{}, pileOf(NewCard(Ace, Spades)), [NumTableaus]Pile{}, [NumFoundations]Pile{})
	b := NewGameState(Pile{}, pileOf(NewCard(Ace, Spades)), [NumTableaus]Pile{}, [NumFoundations]Pile{})
	c := NewGameState(Pile{}, pileOf(NewCard(Ace, Hearts)), [NumTableaus]Pile{}, [NumFoundations]Pile{})

	assert.Equal(t, a.Key(), b.Key())
	assert.NotEqual(t, a.Key(), c.Key())
}

func TestSuccessorsAreDeterministic(t *testing.T) {
	var tableaus [NumTableaus]Pile
	tableaus[0] = pileOf(NewCard(Nine, Spades), NewCard(Eight, Hearts))
	tableaus[1] = pileOf(NewCard(Ten, Diamonds))
	g := NewGameState(pileOf(NewCard(Ace, Clubs)), Pile{}, tableaus, [NumFoundations]Pile{})

	first := successorMoves(g)
	second := successorMoves(g)
	assert.Equal(t, first, second)
}
