package event

type TurnSkippedPayload struct {
	Seat int
}

type TurnSkippedListener interface {
	OnTurnSkipped(TurnSkippedPayload)
}

type TurnSkippedEmitter struct {
	listeners []TurnSkippedListener
}

func (e *TurnSkippedEmitter) AddListener(listener TurnSkippedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *TurnSkippedEmitter) Emit(payload TurnSkippedPayload) {
	for _, listener := range e.listeners {
		listener.OnTurnSkipped(payload)
	}
}
