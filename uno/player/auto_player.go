package player

import (
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
)

// autoPlayer offers hand cards in order, one per prompt, and draws once it
// has run through the whole hand.
type autoPlayer struct {
	basicPlayer
	nextCardToPlay int
}

func NewAutoPlayer(name string) game.Actor {
	return &autoPlayer{basicPlayer: basicPlayer{name: name}}
}

func (p *autoPlayer) ChooseTurnAction(state game.State) (game.Action, error) {
	if p.nextCardToPlay >= len(state.CurrentPlayerHand) {
		return game.DrawAction(), nil
	}
	index := p.nextCardToPlay
	p.nextCardToPlay++
	return game.PlayAction(index), nil
}

func (p *autoPlayer) ChooseWildColor(state game.State) (color.Color, error) {
	return mostFrequentColor(state.CurrentPlayerHand), nil
}

func (p *autoPlayer) AfterTurn(game.State) {
	p.nextCardToPlay = 0
}
