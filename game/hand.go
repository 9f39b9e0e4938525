package game

import (
	"github.com/feel-easy/unogame/card"
	"github.com/feel-easy/unogame/consts"
)

// Hand is an indexable card holding. Order is stable under draws; plays
// remove by index.
type Hand struct {
	cards []*card.Card
}

func NewHand() *Hand {
	return &Hand{cards: make([]*card.Card, 0, consts.StartingHandSize)}
}

func (h *Hand) AddCard(drawn *card.Card) {
	h.cards = append(h.cards, drawn)
}

func (h *Hand) AddCards(drawn []*card.Card) {
	h.cards = append(h.cards, drawn...)
}

// RemoveAt removes and returns the card at index.
func (h *Hand) RemoveAt(index int) (*card.Card, error) {
	if index < 0 || index >= len(h.cards) {
		return nil, consts.ErrorsInvalidIndex
	}
	removed := h.cards[index]
	h.cards = append(h.cards[:index], h.cards[index+1:]...)
	return removed, nil
}

func (h *Hand) Card(index int) (*card.Card, error) {
	if index < 0 || index >= len(h.cards) {
		return nil, consts.ErrorsInvalidIndex
	}
	return h.cards[index], nil
}

// ValidIndices lists the indices of cards playable on top, in hand order.
func (h *Hand) ValidIndices(top *card.Card) []int {
	var indices []int
	for index, candidate := range h.cards {
		if candidate.CanPlayOn(top) {
			indices = append(indices, index)
		}
	}
	return indices
}

func (h *Hand) Cards() []*card.Card {
	cards := make([]*card.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

func (h *Hand) Empty() bool {
	return len(h.cards) == 0
}

func (h *Hand) Size() int {
	return len(h.cards)
}
