package event

// Bus groups the emitters of one game. Listeners registered on one game's
// bus never hear about another game.
type Bus struct {
	FirstCardPlayed   FirstCardPlayedEmitter
	CardPlayed        CardPlayedEmitter
	CardsDrawn        CardsDrawnEmitter
	ColorPicked       ColorPickedEmitter
	TurnSkipped       TurnSkippedEmitter
	TurnOrderReversed TurnOrderReversedEmitter
	DrawPileRefilled  DrawPileRefilledEmitter
	WinnerFound       WinnerFoundEmitter
}

func NewBus() *Bus {
	return &Bus{}
}

// Listener hears every event of a game.
type Listener interface {
	FirstCardPlayedListener
	CardPlayedListener
	CardsDrawnListener
	ColorPickedListener
	TurnSkippedListener
	TurnOrderReversedListener
	DrawPileRefilledListener
	WinnerFoundListener
}

func (b *Bus) AddListener(listener Listener) {
	b.FirstCardPlayed.AddListener(listener)
	b.CardPlayed.AddListener(listener)
	b.CardsDrawn.AddListener(listener)
	b.ColorPicked.AddListener(listener)
	b.TurnSkipped.AddListener(listener)
	b.TurnOrderReversed.AddListener(listener)
	b.DrawPileRefilled.AddListener(listener)
	b.WinnerFound.AddListener(listener)
}
