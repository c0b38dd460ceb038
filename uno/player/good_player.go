package player

import (
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
)

type goodPlayer struct {
	basicPlayer
}

func NewGoodPlayer(name string) game.Actor {
	return goodPlayer{basicPlayer: basicPlayer{name: name}}
}

func (p goodPlayer) ChooseWildColor(state game.State) (color.Color, error) {
	return mostFrequentColor(state.CurrentPlayerHand), nil
}

// ChooseTurnAction plays the legal card that leaves the most cards playable
// on top of it.
func (p goodPlayer) ChooseTurnAction(state game.State) (game.Action, error) {
	if len(state.PlayableIndexes) == 0 {
		return game.DrawAction(), nil
	}

	mostDiscardableCardIndex := state.PlayableIndexes[0]
	maxSpareCards := -1
	for _, cardIndex := range state.PlayableIndexes {
		playableCard := state.CurrentPlayerHand[cardIndex]
		spareCards := 0
		for handIndex, handCard := range state.CurrentPlayerHand {
			if handIndex != cardIndex && game.Playable(handCard, playableCard) {
				spareCards++
			}
		}
		if spareCards > maxSpareCards {
			maxSpareCards = spareCards
			mostDiscardableCardIndex = cardIndex
		}
	}

	return game.PlayAction(mostDiscardableCardIndex), nil
}
