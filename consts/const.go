package consts

import "errors"

const (
	MinPlayers = 1
	MaxPlayers = 10

	MinCardsPerHand = 1
	MaxCardsPerHand = 10

	DefaultPlayers      = 2
	DefaultCardsPerHand = 7

	// HumanSeat is the seat driven from the terminal unless autoplay is on.
	HumanSeat = 0

	StandardDeckSize = 108
	DrawTwoAmount    = 2
	WildDrawAmount   = 4

	DrawInput = "d"
)

// Error is a game error. Exit marks errors that abort a running game; the
// others send the turn on or ask the same seat again.
type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

var (
	ErrorsDrawPileEmpty       = NewErr(1, false, "Draw pile is empty. ")
	ErrorsDiscardPileEmpty    = NewErr(2, true, "Discard pile is empty. ")
	ErrorsInvalidPlay         = NewErr(3, false, "Invalid play. ")
	ErrorsIndexOutOfBounds    = NewErr(4, false, "Index out of bounds. ")
	ErrorsUnknown             = NewErr(5, true, "Unknown. ")
	ErrorsEmptyCardSet        = NewErr(6, true, "Card set is empty. ")
	ErrorsInvalidColor        = NewErr(7, false, "Invalid color. ")
	ErrorsPlayersInvalid      = NewErr(8, true, "The number of players must be between 1 and 10. ")
	ErrorsCardsPerHandInvalid = NewErr(9, true, "The number of cards must be between 1 and 10. ")
	ErrorsInputInvalid        = NewErr(10, false, "Input invalid. ")
	ErrorsActorMissing        = NewErr(11, true, "No actor for seat. ")
)

// Recoverable reports whether err carries an Error that leaves the game
// running.
func Recoverable(err error) bool {
	var e Error
	return errors.As(err, &e) && !e.Exit
}
