package klondike

import "strconv"

// Suit identifies one of the four French suits.
type Suit uint8

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// String returns the single-letter suit code.
func (s Suit) String() string {
	switch s {
	case Spades:
		return "S"
	case Hearts:
		return "H"
	case Diamonds:
		return "D"
	case Clubs:
		return "C"
	}
	return "?"
}

// Red reports whether the suit is hearts or diamonds.
func (s Suit) Red() bool { return s == Hearts || s == Diamonds }

// Value is a card rank. Unknown marks a face-down card whose identity
// has not been revealed; Empty marks the absence of a card, as read
// past the top of a pile.
type Value uint8

const (
	Unknown Value = 0
	Ace     Value = 1
	Two     Value = 2
	Three   Value = 3
	Four    Value = 4
	Five    Value = 5
	Six     Value = 6
	Seven   Value = 7
	Eight   Value = 8
	Nine    Value = 9
	Ten     Value = 10
	Jack    Value = 11
	Queen   Value = 12
	King    Value = 13
	Empty   Value = 14
)

// Card packs a value and a suit into a single byte: the value in the
// upper six bits, the suit in the lower two.
type Card uint8

// Sentinel cards for the two non-playing values.
var (
	CardUnknown = Card(0)
	CardEmpty   = NewCard(Empty, Spades)
)

// NewCard builds a card from a value and a suit.
func NewCard(value Value, suit Suit) Card {
	return Card(uint8(value)<<2 | uint8(suit))
}

// Suit returns the card's suit. It is meaningless on unknown or empty
// cards.
func (c Card) Suit() Suit { return Suit(c & 0b11) }

// Value returns the card's rank.
func (c Card) Value() Value { return Value(c >> 2) }

// Known reports whether the card is a revealed playing card.
func (c Card) Known() bool {
	v := c.Value()
	return v != Unknown && v != Empty
}

// Red reports whether the card is a red suit. Only meaningful on known
// cards.
func (c Card) Red() bool { return c.Suit().Red() }

// String renders the card as a compact code: "AS", "10H", "[]" for a
// face-down card, "--" for no card.
func (c Card) String() string {
	switch c.Value() {
	case Unknown:
		return "[]"
	case Empty:
		return "--"
	case Ace:
		return "A" + c.Suit().String()
	case Jack:
		return "J" + c.Suit().String()
	case Queen:
		return "Q" + c.Suit().String()
	case King:
		return "K" + c.Suit().String()
	default:
		return strconv.Itoa(int(c.Value())) + c.Suit().String()
	}
}
