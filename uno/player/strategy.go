package player

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

// mostFrequentColor picks the colour most non-wild cards in hand share.
// Ties go to the earlier colour of color.Choosable, an all-wild hand to Red.
func mostFrequentColor(hand []card.Card) color.Color {
	counts := make(map[color.Color]int)
	for _, c := range hand {
		if !c.IsWild() {
			counts[c.Color()]++
		}
	}

	mostFrequent, mostFrequentAmount := color.Choosable[0], 0
	for _, c := range color.Choosable {
		if counts[c] > mostFrequentAmount {
			mostFrequent, mostFrequentAmount = c, counts[c]
		}
	}
	return mostFrequent
}
