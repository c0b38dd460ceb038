package player

import "github.com/ratel-online/uno/uno/game"

type basicPlayer struct {
	name string
}

func (p basicPlayer) BeforeTurn(game.State) {
}

func (p basicPlayer) AfterTurn(game.State) {
}
