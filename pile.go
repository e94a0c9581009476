package klondike

// Pile is an ordered stack of cards with a face-down prefix. Piles are
// immutable values: AddTop and the other mutators return fresh piles
// and never alias the receiver's storage with a writable slice.
type Pile struct {
	cards  []Card
	hidden int
}

// NewPile builds a pile from bottom to top. The first hidden cards read
// as face-down regardless of the values supplied for them.
func NewPile(cards []Card, hidden int) Pile {
	if hidden < 0 {
		hidden = 0
	}
	if hidden > len(cards) {
		hidden = len(cards)
	}
	copied := make([]Card, len(cards))
	copy(copied, cards)
	return Pile{cards: copied, hidden: hidden}
}

// Size returns the number of cards in the pile.
func (p Pile) Size() int { return len(p.cards) }

// Empty reports whether the pile holds no cards.
func (p Pile) Empty() bool { return len(p.cards) == 0 }

// Hidden returns the number of face-down cards at the bottom.
func (p Pile) Hidden() int { return p.hidden }

// At returns the card at index i, counted from the bottom. Cards below
// the face-down line read as unknown; indexes past the top read as
// empty.
func (p Pile) At(i int) Card {
	switch {
	case i >= len(p.cards):
		return CardEmpty
	case i < p.hidden:
		return CardUnknown
	default:
		return p.cards[i]
	}
}

// Top returns the topmost card, or CardEmpty on an empty pile.
func (p Pile) Top() Card {
	if p.Empty() {
		return CardEmpty
	}
	return p.At(len(p.cards) - 1)
}

// Cards returns a copy of the pile from bottom to top, with face-down
// cards masked as unknown.
func (p Pile) Cards() []Card {
	out := make([]Card, len(p.cards))
	for i := range p.cards {
		out[i] = p.At(i)
	}
	return out
}

// AddTop returns a copy of the pile with card placed on top.
func (p Pile) AddTop(card Card) Pile {
	cards := make([]Card, len(p.cards)+1)
	copy(cards, p.cards)
	cards[len(p.cards)] = card
	return Pile{cards: cards, hidden: p.hidden}
}

// RemoveTop returns a copy of the pile without its topmost card.
// Removing from an empty pile returns an empty pile.
func (p Pile) RemoveTop() Pile {
	return p.RemoveTopN(1)
}

// RemoveTopN returns a copy of the pile without its top n cards.
func (p Pile) RemoveTopN(n int) Pile {
	if n <= 0 {
		return p
	}
	if n >= len(p.cards) {
		return Pile{}
	}
	size := len(p.cards) - n
	cards := make([]Card, size)
	copy(cards, p.cards[:size])
	hidden := p.hidden
	if hidden > size {
		hidden = size
	}
	return Pile{cards: cards, hidden: hidden}
}

// TopN returns the top n cards from bottom to top.
func (p Pile) TopN(n int) []Card {
	if n <= 0 {
		return nil
	}
	if n > len(p.cards) {
		n = len(p.cards)
	}
	out := make([]Card, n)
	for i := 0; i < n; i++ {
		out[i] = p.At(len(p.cards) - n + i)
	}
	return out
}

// AddRun returns a copy of the pile with cards appended on top, bottom
// first.
func (p Pile) AddRun(cards []Card) Pile {
	combined := make([]Card, len(p.cards)+len(cards))
	copy(combined, p.cards)
	copy(combined[len(p.cards):], cards)
	return Pile{cards: combined, hidden: p.hidden}
}

// reversed returns a copy of the pile with card order flipped and no
// face-down prefix. Used when recycling the waste back into the stock.
func (p Pile) reversed() Pile {
	cards := make([]Card, len(p.cards))
	for i, c := range p.cards {
		cards[len(p.cards)-1-i] = c
	}
	return Pile{cards: cards}
}

// appendKey writes a compact byte encoding of the pile for state
// identity: length, face-down count, then raw card bytes with the
// hidden prefix masked.
func (p Pile) appendKey(buf []byte) []byte {
	buf = append(buf, byte(len(p.cards)), byte(p.hidden))
	for i := range p.cards {
		buf = append(buf, byte(p.At(i)))
	}
	return buf
}
