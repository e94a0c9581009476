package klondike

import "fmt"

// MoveKind classifies a legal action.
type MoveKind uint8

const (
	MoveNone MoveKind = iota
	MoveDraw
	MoveRecycle
	MoveWasteToFoundation
	MoveWasteToTableau
	MoveTableauToFoundation
	MoveTableauToTableau
)

// String returns a short identifier for the kind.
func (k MoveKind) String() string {
	switch k {
	case MoveNone:
		return "none"
	case MoveDraw:
		return "draw"
	case MoveRecycle:
		return "recycle"
	case MoveWasteToFoundation:
		return "waste-to-foundation"
	case MoveWasteToTableau:
		return "waste-to-tableau"
	case MoveTableauToFoundation:
		return "tableau-to-foundation"
	case MoveTableauToTableau:
		return "tableau-to-tableau"
	}
	return "invalid"
}

// Move identifies a single action on a game state. From and To index
// tableaus or foundations depending on the kind; Count is the run
// length of a tableau-to-tableau move.
type Move struct {
	Kind  MoveKind
	From  int
	To    int
	Count int
}

func (m Move) String() string {
	switch m.Kind {
	case MoveDraw, MoveRecycle, MoveNone:
		return m.Kind.String()
	case MoveWasteToFoundation:
		return fmt.Sprintf("waste to foundation %d", m.To)
	case MoveWasteToTableau:
		return fmt.Sprintf("waste to tableau %d", m.To)
	case MoveTableauToFoundation:
		return fmt.Sprintf("tableau %d to foundation %d", m.From, m.To)
	case MoveTableauToTableau:
		return fmt.Sprintf("%d cards from tableau %d to tableau %d", m.Count, m.From, m.To)
	}
	return "invalid"
}
