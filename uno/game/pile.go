package game

import (
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"golang.org/x/exp/slices"
)

// Pile is the discard pile. Its last card is the active card.
type Pile struct {
	cards []card.Card
}

func NewPile() *Pile {
	return &Pile{cards: make([]card.Card, 0, 54)}
}

func (p *Pile) Add(card card.Card) {
	p.cards = append(p.cards, card)
}

func (p *Pile) Cards() []card.Card {
	return slices.Clone(p.cards)
}

func (p *Pile) Size() int {
	return len(p.cards)
}

func (p *Pile) Top() (card.Card, error) {
	pileSize := len(p.cards)
	if pileSize == 0 {
		return card.Card{}, consts.ErrorsDiscardPileEmpty
	}
	return p.cards[pileSize-1], nil
}

func (p *Pile) RecolorTop(newColor color.Color) error {
	pileSize := len(p.cards)
	if pileSize == 0 {
		return consts.ErrorsDiscardPileEmpty
	}
	p.cards[pileSize-1] = p.cards[pileSize-1].Colored(newColor)
	return nil
}

// takeUnderTop removes every card but the active one and returns them with
// wild cards reset to the neutral colour.
func (p *Pile) takeUnderTop() ([]card.Card, error) {
	top, err := p.Top()
	if err != nil {
		return nil, err
	}
	under := p.cards[:len(p.cards)-1]
	taken := make([]card.Card, 0, len(under))
	for _, c := range under {
		if c.IsWild() {
			c = c.Colored(color.Wild)
		}
		taken = append(taken, c)
	}
	p.cards = append(p.cards[:0], top)
	return taken, nil
}
