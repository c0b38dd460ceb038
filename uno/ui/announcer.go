package ui

import (
	"fmt"

	"github.com/ratel-online/uno/uno/event"
	"github.com/ratel-online/uno/uno/msg"
)

// Announcer prints the events of a game on a console. Cards drawn by the
// watching seat are shown, everyone else only reveals how many.
type Announcer struct {
	console     *Console
	names       []string
	watcherSeat int
}

func NewAnnouncer(console *Console, names []string, watcherSeat int) *Announcer {
	return &Announcer{
		console:     console,
		names:       names,
		watcherSeat: watcherSeat,
	}
}

func (a *Announcer) name(seat int) string {
	if seat >= 0 && seat < len(a.names) {
		return a.names[seat]
	}
	return fmt.Sprintf("Player %d", seat)
}

func (a *Announcer) OnFirstCardPlayed(payload event.FirstCardPlayedPayload) {
	a.console.Println(msg.Message.FirstCardPlayed(payload.Card))
}

func (a *Announcer) OnCardPlayed(payload event.CardPlayedPayload) {
	a.console.Println(msg.Message.PlayerPlayedCard(a.name(payload.Seat), payload.Card))
}

func (a *Announcer) OnCardsDrawn(payload event.CardsDrawnPayload) {
	if payload.Seat == a.watcherSeat && len(payload.Cards) > 0 {
		a.console.Println(msg.Message.HumanPlayerDrewCards(payload.Cards))
		return
	}
	a.console.Println(msg.Message.PlayerDrewCards(a.name(payload.Seat), len(payload.Cards)))
}

func (a *Announcer) OnColorPicked(payload event.ColorPickedPayload) {
	a.console.Println(msg.Message.PlayerPickedColor(a.name(payload.Seat), payload.Color))
}

func (a *Announcer) OnTurnSkipped(payload event.TurnSkippedPayload) {
	a.console.Println(msg.Message.PlayerTurnSkipped(a.name(payload.Seat)))
}

func (a *Announcer) OnTurnOrderReversed(payload event.TurnOrderReversedPayload) {
	a.console.Println(msg.Message.TurnOrderReversed(payload.Clockwise))
}

func (a *Announcer) OnDrawPileRefilled(payload event.DrawPileRefilledPayload) {
	a.console.Println(msg.Message.DrawPileRefilled(payload.DrawPileSize))
}

func (a *Announcer) OnWinnerFound(payload event.WinnerFoundPayload) {
	a.console.Println(msg.Message.WinnerFound(a.name(payload.Seat)))
}
