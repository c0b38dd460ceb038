package game

import (
	"math/rand"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"golang.org/x/exp/slices"
)

// Shuffler permutes cards in place.
type Shuffler func(cards []card.Card)

func shuffleCards(cards []card.Card) {
	rand.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
}

// RandomShuffler shuffles with its own source, for reproducible games.
func RandomShuffler(r *rand.Rand) Shuffler {
	return func(cards []card.Card) {
		r.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
	}
}

// Deck owns the draw pile and the discard pile. The draw pile is consumed
// from the front.
type Deck struct {
	cards   []card.Card
	pile    *Pile
	shuffle Shuffler
}

// NewDeck builds a shuffled standard deck with one card flipped onto the
// discard pile. A nil shuffler uses the process-wide random source.
func NewDeck(shuffle Shuffler) *Deck {
	deck, _ := NewDeckFromCards(card.Standard(), shuffle)
	return deck
}

func NewDeckFromCards(cards []card.Card, shuffle Shuffler) (*Deck, error) {
	if len(cards) == 0 {
		return nil, consts.ErrorsEmptyCardSet
	}
	if shuffle == nil {
		shuffle = shuffleCards
	}
	deck := &Deck{
		cards:   slices.Clone(cards),
		pile:    NewPile(),
		shuffle: shuffle,
	}
	deck.shuffle(deck.cards)
	deck.discardFromDrawPile()
	return deck, nil
}

func (d *Deck) Draw() (card.Card, error) {
	if len(d.cards) == 0 {
		return card.Card{}, consts.ErrorsDrawPileEmpty
	}
	drawn := d.cards[0]
	d.cards = d.cards[1:]
	return drawn, nil
}

func (d *Deck) Discard(c card.Card) {
	d.pile.Add(c)
}

// Top returns the active card.
func (d *Deck) Top() (card.Card, error) {
	return d.pile.Top()
}

// Refill moves every discarded card but the active one back into the draw
// pile and shuffles it. It fails only when no active card exists.
func (d *Deck) Refill() error {
	taken, err := d.pile.takeUnderTop()
	if err != nil {
		return err
	}
	d.cards = append(d.cards, taken...)
	d.shuffle(d.cards)
	return nil
}

func (d *Deck) RecolorTop(newColor color.Color) error {
	return d.pile.RecolorTop(newColor)
}

func (d *Deck) DrawPileSize() int {
	return len(d.cards)
}

func (d *Deck) DiscardPileSize() int {
	return d.pile.Size()
}

func (d *Deck) DrawPile() []card.Card {
	return slices.Clone(d.cards)
}

func (d *Deck) DiscardPile() []card.Card {
	return d.pile.Cards()
}

func (d *Deck) discardFromDrawPile() {
	if c, err := d.Draw(); err == nil {
		d.Discard(c)
	}
}
