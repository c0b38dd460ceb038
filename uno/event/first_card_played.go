package event

import "github.com/ratel-online/uno/uno/card"

type FirstCardPlayedPayload struct {
	Card card.Card
}

type FirstCardPlayedListener interface {
	OnFirstCardPlayed(FirstCardPlayedPayload)
}

type FirstCardPlayedEmitter struct {
	listeners []FirstCardPlayedListener
}

func (e *FirstCardPlayedEmitter) AddListener(listener FirstCardPlayedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *FirstCardPlayedEmitter) Emit(payload FirstCardPlayedPayload) {
	for _, listener := range e.listeners {
		listener.OnFirstCardPlayed(payload)
	}
}
