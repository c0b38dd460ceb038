package event

type DummyListener struct {
	receivedPayloads []interface{}
}

func NewDummyListener() *DummyListener {
	return &DummyListener{receivedPayloads: make([]interface{}, 0)}
}

func (l *DummyListener) ReceivedPayloads() []interface{} {
	return l.receivedPayloads
}

func (l *DummyListener) OnFirstCardPlayed(payload FirstCardPlayedPayload) {
	l.receivedPayloads = append(l.receivedPayloads, payload)
}

func (l *DummyListener) OnCardPlayed(payload CardPlayedPayload) {
	l.receivedPayloads = append(l.receivedPayloads, payload)
}

func (l *DummyListener) OnCardsDrawn(payload CardsDrawnPayload) {
	l.receivedPayloads = append(l.receivedPayloads, payload)
}

func (l *DummyListener) OnColorPicked(payload ColorPickedPayload) {
	l.receivedPayloads = append(l.receivedPayloads, payload)
}

func (l *DummyListener) OnTurnSkipped(payload TurnSkippedPayload) {
	l.receivedPayloads = append(l.receivedPayloads, payload)
}

func (l *DummyListener) OnTurnOrderReversed(payload TurnOrderReversedPayload) {
	l.receivedPayloads = append(l.receivedPayloads, payload)
}

func (l *DummyListener) OnDrawPileRefilled(payload DrawPileRefilledPayload) {
	l.receivedPayloads = append(l.receivedPayloads, payload)
}

func (l *DummyListener) OnWinnerFound(payload WinnerFoundPayload) {
	l.receivedPayloads = append(l.receivedPayloads, payload)
}

// Payloads returns the received payloads of type T in emission order.
func Payloads[T any](l *DummyListener) []T {
	var payloads []T
	for _, payload := range l.receivedPayloads {
		if typed, ok := payload.(T); ok {
			payloads = append(payloads, typed)
		}
	}
	return payloads
}
