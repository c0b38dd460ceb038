package game

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/action"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/event"
	"golang.org/x/exp/slices"
)

type GameActionKind int

const (
	None GameActionKind = iota
	PlayerDraw
	PlayerPlaysCard
	ChooseColor
)

// GameAction is either a validated actor decision or the follow-up an
// executed decision demands.
type GameAction struct {
	Kind  GameActionKind
	Index int
}

type Game struct {
	id           string
	seats        []*Seat
	deck         *Deck
	cycler       *Cycler
	cardsPerHand int
	pendingSkips int
	events       *event.Bus
}

// ValidateSettings is the pre-flight check for a new game.
func ValidateSettings(numOfPlayers, cardsPerHand int) error {
	if numOfPlayers < consts.MinPlayers || numOfPlayers > consts.MaxPlayers {
		return consts.ErrorsPlayersInvalid
	}
	if cardsPerHand < consts.MinCardsPerHand || cardsPerHand > consts.MaxCardsPerHand {
		return consts.ErrorsCardsPerHandInvalid
	}
	return nil
}

// New sets up seats 0..numOfPlayers-1 around deck. A nil deck is replaced by
// a shuffled standard one. Hands are dealt by DealInitialHands.
func New(numOfPlayers, cardsPerHand int, deck *Deck) (*Game, error) {
	if err := ValidateSettings(numOfPlayers, cardsPerHand); err != nil {
		return nil, err
	}
	if deck == nil {
		deck = NewDeck(nil)
	}
	seats := make([]*Seat, 0, numOfPlayers)
	for id := 0; id < numOfPlayers; id++ {
		seats = append(seats, newSeat(id))
	}
	return &Game{
		id:           uuid.NewString(),
		seats:        seats,
		deck:         deck,
		cycler:       NewCycler(numOfPlayers),
		cardsPerHand: cardsPerHand,
		events:       event.NewBus(),
	}, nil
}

func (g *Game) ID() string {
	return g.id
}

func (g *Game) Events() *event.Bus {
	return g.events
}

func (g *Game) Deck() *Deck {
	return g.deck
}

func (g *Game) Seat(id int) *Seat {
	return g.seats[id]
}

func (g *Game) NumSeats() int {
	return len(g.seats)
}

func (g *Game) Current() int {
	return g.cycler.Current()
}

func (g *Game) Clockwise() bool {
	return g.cycler.Clockwise()
}

// DealInitialHands deals the configured number of cards to every seat in
// seat order. Running out of cards here is fatal.
func (g *Game) DealInitialHands() error {
	for _, seat := range g.seats {
		if _, err := g.drawMultiple(seat.id, g.cardsPerHand); err != nil {
			return fmt.Errorf("deal %d cards to player %d: %w", g.cardsPerHand, seat.id, err)
		}
	}
	log.Infof("game %s: dealt %d cards to %d players\n", g.id, g.cardsPerHand, len(g.seats))
	return nil
}

func (g *Game) AnnounceFirstCard() {
	if top, err := g.deck.Top(); err == nil {
		g.events.FirstCardPlayed.Emit(event.FirstCardPlayedPayload{Card: top})
	}
}

func (g *Game) ValidateAction(seatID int, raw Action) (GameAction, error) {
	seat, err := g.seat(seatID)
	if err != nil {
		return GameAction{}, err
	}
	switch raw.Kind {
	case Draw:
		return GameAction{Kind: PlayerDraw}, nil
	case Play:
		candidate, err := seat.hand.Card(raw.Index)
		if err != nil || !g.isValidPlay(candidate) {
			return GameAction{}, consts.ErrorsInvalidPlay
		}
		return GameAction{Kind: PlayerPlaysCard, Index: raw.Index}, nil
	default:
		return GameAction{}, consts.ErrorsInvalidPlay
	}
}

func (g *Game) ExecuteAction(seatID int, validated GameAction) (GameAction, error) {
	seat, err := g.seat(seatID)
	if err != nil {
		return GameAction{}, err
	}
	switch validated.Kind {
	case PlayerDraw:
		drawn, err := g.drawWithRefill(seatID)
		if err != nil {
			return GameAction{}, err
		}
		g.events.CardsDrawn.Emit(event.CardsDrawnPayload{Seat: seatID, Amount: 1, Cards: []card.Card{drawn}})
		return GameAction{Kind: PlayerDraw}, nil
	case PlayerPlaysCard:
		played, err := seat.hand.RemoveCard(validated.Index)
		if err != nil {
			return GameAction{}, fmt.Errorf("%w: player %d plays card %d: %v", consts.ErrorsUnknown, seatID, validated.Index, err)
		}
		// The played card is active before its effect runs, so a refill
		// during a forced draw keeps it on the discard pile.
		g.deck.Discard(played)
		g.events.CardPlayed.Emit(event.CardPlayedPayload{Seat: seatID, Card: played})
		return g.applySpecialEffect(seatID, played), nil
	default:
		return GameAction{}, fmt.Errorf("%w: cannot execute action kind %d", consts.ErrorsUnknown, validated.Kind)
	}
}

// ChangeActiveColor assigns the colour chosen for a wild card to the
// active card.
func (g *Game) ChangeActiveColor(seatID int, chosen color.Color) error {
	if !slices.Contains(color.Choosable, chosen) {
		return consts.ErrorsInvalidColor
	}
	if err := g.deck.RecolorTop(chosen); err != nil {
		return err
	}
	g.events.ColorPicked.Emit(event.ColorPickedPayload{Seat: seatID, Color: chosen})
	return nil
}

// AdvanceTurn moves the cursor to the next seat, passing over any seat a
// Skip card was played against.
func (g *Game) AdvanceTurn() int {
	steps := 1 + g.pendingSkips
	g.pendingSkips = 0
	for i := 0; i < steps; i++ {
		g.cycler.Next()
	}
	return g.cycler.Current()
}

func (g *Game) HasWon(seatID int) bool {
	seat, err := g.seat(seatID)
	return err == nil && seat.NoCards()
}

func (g *Game) AnnounceWinner(seatID int) {
	log.Infof("game %s: player %d wins\n", g.id, seatID)
	g.events.WinnerFound.Emit(event.WinnerFoundPayload{Seat: seatID})
}

func (g *Game) State(seatID int) State {
	seat := g.seats[seatID]
	top, err := g.deck.Top()
	counts := make([]int, 0, len(g.seats))
	for _, s := range g.seats {
		counts = append(counts, s.HandSize())
	}
	return State{
		Seat:              seatID,
		CurrentSeat:       g.cycler.Current(),
		Clockwise:         g.cycler.Clockwise(),
		LastPlayedCard:    top,
		HasLastPlayedCard: err == nil,
		CurrentPlayerHand: seat.Hand(),
		PlayableIndexes:   seat.hand.PlayableIndexes(g.isValidPlay),
		SeatHandCounts:    counts,
		DrawPileSize:      g.deck.DrawPileSize(),
	}
}

func (g *Game) seat(seatID int) (*Seat, error) {
	if seatID < 0 || seatID >= len(g.seats) {
		return nil, fmt.Errorf("%w: no player %d", consts.ErrorsUnknown, seatID)
	}
	return g.seats[seatID], nil
}

// isValidPlay accepts any card while there is no active card.
func (g *Game) isValidPlay(candidate card.Card) bool {
	top, err := g.deck.Top()
	if err != nil {
		return true
	}
	return Playable(candidate, top)
}

// drawWithRefill refills the draw pile once when it is empty.
func (g *Game) drawWithRefill(seatID int) (card.Card, error) {
	drawn, err := g.deck.Draw()
	if errors.Is(err, consts.ErrorsDrawPileEmpty) {
		if refillErr := g.deck.Refill(); refillErr != nil {
			log.Errorf("game %s: refill draw pile: %v\n", g.id, refillErr)
			return card.Card{}, fmt.Errorf("%w: refill: %v", consts.ErrorsDrawPileEmpty, refillErr)
		}
		if g.deck.DrawPileSize() > 0 {
			log.Infof("game %s: draw pile refilled with %d cards\n", g.id, g.deck.DrawPileSize())
			g.events.DrawPileRefilled.Emit(event.DrawPileRefilledPayload{DrawPileSize: g.deck.DrawPileSize()})
		}
		drawn, err = g.deck.Draw()
	}
	if err != nil {
		return card.Card{}, err
	}
	g.seats[seatID].AddCards([]card.Card{drawn})
	return drawn, nil
}

// drawMultiple keeps the cards drawn before the supply ran out.
func (g *Game) drawMultiple(seatID int, amount int) ([]card.Card, error) {
	drawn := make([]card.Card, 0, amount)
	for i := 0; i < amount; i++ {
		c, err := g.drawWithRefill(seatID)
		if err != nil {
			return drawn, err
		}
		drawn = append(drawn, c)
	}
	return drawn, nil
}

func (g *Game) applySpecialEffect(seatID int, played card.Card) GameAction {
	actions := played.Actions()
	log.Infof("game %s: player %d played %s: %s\n", g.id, seatID, played, action.Describe(actions))

	followUp := GameAction{Kind: None}
	for _, cardAction := range actions {
		switch cardAction := cardAction.(type) {
		case action.DrawCards:
			target := g.cycler.After(seatID)
			drawn, err := g.drawMultiple(target, cardAction.Amount)
			if err != nil {
				log.Infof("game %s: player %d drew %d of %d cards: %v\n", g.id, target, len(drawn), cardAction.Amount, err)
			}
			g.events.CardsDrawn.Emit(event.CardsDrawnPayload{Seat: target, Amount: cardAction.Amount, Cards: drawn})
		case action.ReverseTurns:
			g.cycler.Reverse()
			g.events.TurnOrderReversed.Emit(event.TurnOrderReversedPayload{Clockwise: g.cycler.Clockwise()})
		case action.SkipTurn:
			g.pendingSkips++
			g.events.TurnSkipped.Emit(event.TurnSkippedPayload{Seat: g.cycler.After(seatID)})
		case action.PickColor:
			followUp = GameAction{Kind: ChooseColor}
		}
	}
	return followUp
}
