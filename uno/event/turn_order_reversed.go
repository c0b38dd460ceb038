package event

type TurnOrderReversedPayload struct {
	Clockwise bool
}

type TurnOrderReversedListener interface {
	OnTurnOrderReversed(TurnOrderReversedPayload)
}

type TurnOrderReversedEmitter struct {
	listeners []TurnOrderReversedListener
}

func (e *TurnOrderReversedEmitter) AddListener(listener TurnOrderReversedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *TurnOrderReversedEmitter) Emit(payload TurnOrderReversedPayload) {
	for _, listener := range e.listeners {
		listener.OnTurnOrderReversed(payload)
	}
}
