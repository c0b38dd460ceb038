package game

import "github.com/ratel-online/uno/uno/card/color"

type ActionKind int

const (
	Draw ActionKind = iota
	Play
)

// Action is the raw decision of an actor: draw a card, or play the card at
// Index in its hand.
type Action struct {
	Kind  ActionKind
	Index int
}

func DrawAction() Action {
	return Action{Kind: Draw}
}

func PlayAction(index int) Action {
	return Action{Kind: Play, Index: index}
}

// Actor makes the decisions for one seat. Errors returned by the choose
// methods abort the game; an illegal choice is simply asked for again.
type Actor interface {
	ChooseTurnAction(state State) (Action, error)
	// ChooseWildColor must return one of color.Choosable.
	ChooseWildColor(state State) (color.Color, error)
	BeforeTurn(state State)
	AfterTurn(state State)
}

// Actors resolves the actor deciding for a seat.
type Actors interface {
	Actor(seat int) (Actor, bool)
}

// ActorList maps seat i to the i-th actor.
type ActorList []Actor

func (l ActorList) Actor(seat int) (Actor, bool) {
	if seat < 0 || seat >= len(l) {
		return nil, false
	}
	return l[seat], true
}
