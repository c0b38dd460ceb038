package game

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

// Playable reports whether candidateCard may be played on lastPlayedCard:
// colours match, values match, or either card shows the wild colour.
func Playable(candidateCard card.Card, lastPlayedCard card.Card) bool {
	return candidateCard.Color() == lastPlayedCard.Color() ||
		candidateCard.Value() == lastPlayedCard.Value() ||
		candidateCard.Color() == color.Wild ||
		lastPlayedCard.Color() == color.Wild
}
