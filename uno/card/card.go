package card

import (
	"fmt"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card/action"
	"github.com/ratel-online/uno/uno/card/color"
)

// Card is a plain value. Wild cards carry color.Wild until a colour is
// chosen for them on top of the discard pile.
type Card struct {
	color color.Color
	value Value
}

func New(c color.Color, value Value) Card {
	return Card{color: c, value: value}
}

func NewNumberCard(c color.Color, number int) Card {
	return New(c, NumberValue(number))
}

func NewSkipCard(c color.Color) Card {
	return New(c, Value{Kind: Skip})
}

func NewReverseCard(c color.Color) Card {
	return New(c, Value{Kind: Reverse})
}

func NewDrawTwoCard(c color.Color) Card {
	return New(c, Value{Kind: DrawTwo})
}

func NewWildCard() Card {
	return New(color.Wild, Value{Kind: Wild})
}

func NewWildDrawCard(amount int) Card {
	return New(color.Wild, WildDrawValue(amount))
}

func NewWildDrawFourCard() Card {
	return NewWildDrawCard(consts.WildDrawAmount)
}

func (c Card) Color() color.Color {
	return c.color
}

func (c Card) Value() Value {
	return c.value
}

func (c Card) IsWild() bool {
	return c.value.Kind == Wild || c.value.Kind == WildDraw
}

// Colored returns a copy of the card showing the given colour.
func (c Card) Colored(newColor color.Color) Card {
	c.color = newColor
	return c
}

func (c Card) Actions() []action.Action {
	switch c.value.Kind {
	case Skip:
		return []action.Action{action.SkipTurn{}}
	case Reverse:
		return []action.Action{action.ReverseTurns{}}
	case DrawTwo:
		return []action.Action{action.DrawCards{Amount: consts.DrawTwoAmount}}
	case Wild:
		return []action.Action{action.PickColor{}}
	case WildDraw:
		return []action.Action{
			action.DrawCards{Amount: c.value.N},
			action.PickColor{},
		}
	default:
		return []action.Action{}
	}
}

func (c Card) Equal(other Card) bool {
	return c.color == other.color && c.value == other.value
}

func (c Card) String() string {
	if c.color == color.Wild {
		return c.value.String()
	}
	return c.color.Paint(c.value.String()) + fmt.Sprintf("(%s)", c.color.Name())
}
