package card

import "fmt"

type Kind int

const (
	Number Kind = iota
	Skip
	Reverse
	DrawTwo
	Wild
	WildDraw
)

// Value is what a card shows besides its colour. N is the face number of
// Number cards and the draw amount of WildDraw cards, zero otherwise.
type Value struct {
	Kind Kind
	N    int
}

func NumberValue(n int) Value {
	return Value{Kind: Number, N: n}
}

func WildDrawValue(amount int) Value {
	return Value{Kind: WildDraw, N: amount}
}

func (v Value) String() string {
	switch v.Kind {
	case Number:
		return fmt.Sprintf("[%d]", v.N)
	case Skip:
		return "(/)"
	case Reverse:
		return "<=>"
	case DrawTwo:
		return "+2!"
	case Wild:
		return "(*)"
	case WildDraw:
		return fmt.Sprintf("+%d!", v.N)
	default:
		return "?"
	}
}
