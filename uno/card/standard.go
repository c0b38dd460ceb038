package card

import (
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card/color"
)

// Standard returns the 108 cards of a regular deck in a fixed order.
func Standard() []Card {
	cards := make([]Card, 0, consts.StandardDeckSize)

	cards = append(cards, createBlackCards()...)
	cards = append(cards, createColorCards(color.Red)...)
	cards = append(cards, createColorCards(color.Yellow)...)
	cards = append(cards, createColorCards(color.Green)...)
	cards = append(cards, createColorCards(color.Blue)...)

	return cards
}

func createColorCards(cardColor color.Color) []Card {
	zeroCard := NewNumberCard(cardColor, 0)
	skipCard := NewSkipCard(cardColor)
	reverseCard := NewReverseCard(cardColor)
	drawTwoCard := NewDrawTwoCard(cardColor)

	cards := []Card{
		zeroCard,
		skipCard, skipCard,
		reverseCard, reverseCard,
		drawTwoCard, drawTwoCard,
	}

	for number := 1; number <= 9; number++ {
		numberCard := NewNumberCard(cardColor, number)
		cards = append(cards, numberCard, numberCard)
	}

	return cards
}

func createBlackCards() []Card {
	wildCard := NewWildCard()
	wildDrawFourCard := NewWildDrawFourCard()

	return []Card{
		wildCard, wildCard, wildCard, wildCard,
		wildDrawFourCard, wildDrawFourCard, wildDrawFourCard, wildDrawFourCard,
	}
}
