package event

type DrawPileRefilledPayload struct {
	DrawPileSize int
}

type DrawPileRefilledListener interface {
	OnDrawPileRefilled(DrawPileRefilledPayload)
}

type DrawPileRefilledEmitter struct {
	listeners []DrawPileRefilledListener
}

func (e *DrawPileRefilledEmitter) AddListener(listener DrawPileRefilledListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *DrawPileRefilledEmitter) Emit(payload DrawPileRefilledPayload) {
	for _, listener := range e.listeners {
		listener.OnDrawPileRefilled(payload)
	}
}
