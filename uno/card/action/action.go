// Package action describes the effects a played card has on the game.
package action

import (
	"fmt"
	"strings"
)

// Action is one effect of a played card. Only this package defines them,
// so a switch over the types below is exhaustive.
type Action interface {
	fmt.Stringer
	effect()
}

// DrawCards makes the seat after the player draw Amount cards.
type DrawCards struct {
	Amount int
}

// ReverseTurns flips the turn order.
type ReverseTurns struct{}

// SkipTurn passes over the seat after the player.
type SkipTurn struct{}

// PickColor asks the player for the colour of the active card.
type PickColor struct{}

func (DrawCards) effect()    {}
func (ReverseTurns) effect() {}
func (SkipTurn) effect()     {}
func (PickColor) effect()    {}

func (a DrawCards) String() string {
	return fmt.Sprintf("next player draws %d", a.Amount)
}

func (ReverseTurns) String() string {
	return "turn order reversed"
}

func (SkipTurn) String() string {
	return "next player skipped"
}

func (PickColor) String() string {
	return "color to pick"
}

// Describe joins the effects in the order they apply.
func Describe(actions []Action) string {
	if len(actions) == 0 {
		return "no effect"
	}
	descriptions := make([]string, 0, len(actions))
	for _, a := range actions {
		descriptions = append(descriptions, a.String())
	}
	return strings.Join(descriptions, ", ")
}
