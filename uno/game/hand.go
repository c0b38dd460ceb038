package game

import (
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"golang.org/x/exp/slices"
)

// Hand keeps cards in the order they were drawn. Plays reference cards by
// their index in that order.
type Hand struct {
	cards []card.Card
}

func NewHand() *Hand {
	return &Hand{cards: make([]card.Card, 0, consts.DefaultCardsPerHand)}
}

func (h *Hand) AddCards(cards []card.Card) {
	h.cards = append(h.cards, cards...)
}

func (h *Hand) Cards() []card.Card {
	return slices.Clone(h.cards)
}

func (h *Hand) Card(index int) (card.Card, error) {
	if index < 0 || index >= len(h.cards) {
		return card.Card{}, consts.ErrorsIndexOutOfBounds
	}
	return h.cards[index], nil
}

func (h *Hand) Empty() bool {
	return len(h.cards) == 0
}

// PlayableIndexes lists, in hand order, the indexes of cards accepted by
// playable.
func (h *Hand) PlayableIndexes(playable func(card.Card) bool) []int {
	var indexes []int
	for index, candidateCard := range h.cards {
		if playable(candidateCard) {
			indexes = append(indexes, index)
		}
	}
	return indexes
}

func (h *Hand) RemoveCard(index int) (card.Card, error) {
	removed, err := h.Card(index)
	if err != nil {
		return card.Card{}, err
	}
	h.cards = slices.Delete(h.cards, index, index+1)
	return removed, nil
}

func (h *Hand) Size() int {
	return len(h.cards)
}
