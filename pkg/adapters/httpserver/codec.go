package httpserver

import (
	"fmt"
	"strconv"
	"strings"

	klondike "github.com/ESultanik/klondike"
)

// pileDTO is the wire form of a pile, bottom card first. Face-down
// cards are sent as "[]".
type pileDTO struct {
	Cards  []string `json:"cards"`
	Hidden int      `json:"hidden,omitempty"`
}

// stateDTO is the wire form of a full deal.
type stateDTO struct {
	Stock       pileDTO   `json:"stock"`
	Waste       pileDTO   `json:"waste"`
	Tableaus    []pileDTO `json:"tableaus"`
	Foundations []pileDTO `json:"foundations"`
}

type moveDTO struct {
	Kind    string `json:"kind"`
	From    int    `json:"from,omitempty"`
	To      int    `json:"to,omitempty"`
	Count   int    `json:"count,omitempty"`
	Display string `json:"display"`
}

func encodeMove(m klondike.Move) moveDTO {
	return moveDTO{
		Kind:    m.Kind.String(),
		From:    m.From,
		To:      m.To,
		Count:   m.Count,
		Display: m.String(),
	}
}

func encodeCard(c klondike.Card) string { return c.String() }

func parseCard(code string) (klondike.Card, error) {
	if code == "[]" {
		return klondike.CardUnknown, nil
	}
	if len(code) < 2 {
		return 0, fmt.Errorf("invalid card %q", code)
	}
	suit, err := parseSuit(code[len(code)-1:])
	if err != nil {
		return 0, fmt.Errorf("invalid card %q: %w", code, err)
	}
	value, err := parseValue(code[:len(code)-1])
	if err != nil {
		return 0, fmt.Errorf("invalid card %q: %w", code, err)
	}
	return klondike.NewCard(value, suit), nil
}

func parseSuit(code string) (klondike.Suit, error) {
	switch strings.ToUpper(code) {
	case "S":
		return klondike.Spades, nil
	case "H":
		return klondike.Hearts, nil
	case "D":
		return klondike.Diamonds, nil
	case "C":
		return klondike.Clubs, nil
	}
	return 0, fmt.Errorf("unknown suit %q", code)
}

func parseValue(code string) (klondike.Value, error) {
	switch strings.ToUpper(code) {
	case "A":
		return klondike.Ace, nil
	case "J":
		return klondike.Jack, nil
	case "Q":
		return klondike.Queen, nil
	case "K":
		return klondike.King, nil
	}
	n, err := strconv.Atoi(code)
	if err != nil || n < 2 || n > 10 {
		return 0, fmt.Errorf("unknown value %q", code)
	}
	return klondike.Value(n), nil
}

func encodePile(p klondike.Pile) pileDTO {
	cards := p.Cards()
	codes := make([]string, len(cards))
	for i, c := range cards {
		codes[i] = encodeCard(c)
	}
	return pileDTO{Cards: codes, Hidden: p.Hidden()}
}

func decodePile(dto pileDTO) (klondike.Pile, error) {
	cards := make([]klondike.Card, len(dto.Cards))
	for i, code := range dto.Cards {
		card, err := parseCard(code)
		if err != nil {
			return klondike.Pile{}, err
		}
		cards[i] = card
	}
	return klondike.NewPile(cards, dto.Hidden), nil
}

func encodeState(state klondike.GameState) stateDTO {
	dto := stateDTO{
		Stock:       encodePile(state.Stock()),
		Waste:       encodePile(state.Waste()),
		Tableaus:    make([]pileDTO, klondike.NumTableaus),
		Foundations: make([]pileDTO, klondike.NumFoundations),
	}
	for i := 0; i < klondike.NumTableaus; i++ {
		dto.Tableaus[i] = encodePile(state.Tableau(i))
	}
	for i := 0; i < klondike.NumFoundations; i++ {
		dto.Foundations[i] = encodePile(state.Foundation(i))
	}
	return dto
}

func decodeState(dto stateDTO) (klondike.GameState, error) {
	if len(dto.Tableaus) != klondike.NumTableaus {
		return klondike.GameState{}, fmt.Errorf("expected %d tableaus, got %d", klondike.NumTableaus, len(dto.Tableaus))
	}
	if len(dto.Foundations) != klondike.NumFoundations {
		return klondike.GameState{}, fmt.Errorf("expected %d foundations, got %d", klondike.NumFoundations, len(dto.Foundations))
	}
	stock, err := decodePile(dto.Stock)
	if err != nil {
		return klondike.GameState{}, fmt.Errorf("stock: %w", err)
	}
	waste, err := decodePile(dto.Waste)
	if err != nil {
		return klondike.GameState{}, fmt.Errorf("waste: %w", err)
	}
	var tableaus [klondike.NumTableaus]klondike.Pile
	for i, p := range dto.Tableaus {
		tableaus[i], err = decodePile(p)
		if err != nil {
			return klondike.GameState{}, fmt.Errorf("tableau %d: %w", i, err)
		}
	}
	var foundations [klondike.NumFoundations]klondike.Pile
	for i, p := range dto.Foundations {
		foundations[i], err = decodePile(p)
		if err != nil {
			return klondike.GameState{}, fmt.Errorf("foundation %d: %w", i, err)
		}
	}
	return klondike.NewGameState(stock, waste, tableaus, foundations), nil
}
