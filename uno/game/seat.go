package game

import "github.com/ratel-online/uno/uno/card"

// Seat is a turn-taking position. It owns a hand; who decides for it is
// looked up separately by ID.
type Seat struct {
	id   int
	hand *Hand
}

func newSeat(id int) *Seat {
	return &Seat{
		id:   id,
		hand: NewHand(),
	}
}

func (s *Seat) ID() int {
	return s.id
}

func (s *Seat) AddCards(cards []card.Card) {
	s.hand.AddCards(cards)
}

func (s *Seat) Hand() []card.Card {
	return s.hand.Cards()
}

func (s *Seat) HandSize() int {
	return s.hand.Size()
}

func (s *Seat) NoCards() bool {
	return s.hand.Empty()
}
