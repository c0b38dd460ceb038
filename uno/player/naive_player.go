package player

import (
	"github.com/ratel-online/core/util/rand"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
)

type naivePlayer struct {
	basicPlayer
}

func NewNaivePlayer(name string) game.Actor {
	return naivePlayer{basicPlayer: basicPlayer{name: name}}
}

func (p naivePlayer) ChooseWildColor(game.State) (color.Color, error) {
	return color.Choosable[rand.Intn(len(color.Choosable))], nil
}

func (p naivePlayer) ChooseTurnAction(state game.State) (game.Action, error) {
	if len(state.PlayableIndexes) == 0 {
		return game.DrawAction(), nil
	}
	return game.PlayAction(state.PlayableIndexes[0]), nil
}
