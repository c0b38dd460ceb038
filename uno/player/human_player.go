package player

import (
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/msg"
	"github.com/ratel-online/uno/uno/ui"
	"golang.org/x/exp/slices"
)

type humanPlayer struct {
	basicPlayer
	console *ui.Console
}

func NewHumanPlayer(name string, console *ui.Console) game.Actor {
	return humanPlayer{basicPlayer: basicPlayer{name: name}, console: console}
}

func (p humanPlayer) BeforeTurn(state game.State) {
	p.console.Println(msg.Message.HumanPlayerTurnStarted(p.name))
	p.console.Println(state)
}

func (p humanPlayer) ChooseTurnAction(state game.State) (game.Action, error) {
	action, err := p.console.PromptTurnAction(state.CurrentPlayerHand)
	if err != nil {
		return game.Action{}, err
	}
	if action.Kind == game.Play && state.HasLastPlayedCard && !slices.Contains(state.PlayableIndexes, action.Index) {
		p.console.Println(msg.Message.HumanPlayerCannotPlay(state.CurrentPlayerHand[action.Index], state.LastPlayedCard))
	}
	return action, nil
}

func (p humanPlayer) ChooseWildColor(game.State) (color.Color, error) {
	return p.console.PromptColor()
}
