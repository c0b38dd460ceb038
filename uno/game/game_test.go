package game_test

import (
	"testing"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/event"
	"github.com/ratel-online/uno/uno/game"
	"github.com/stretchr/testify/require"
)

// newScriptedGame lays out an unshuffled deck so that active is flipped
// first, each hand is dealt in seat order and drawPile is what remains.
func newScriptedGame(t *testing.T, active card.Card, hands [][]card.Card, drawPile ...card.Card) *game.Game {
	t.Helper()
	cards := []card.Card{active}
	for _, hand := range hands {
		cards = append(cards, hand...)
	}
	cards = append(cards, drawPile...)
	deck, err := game.NewDeckFromCards(cards, noShuffle)
	require.NoError(t, err)
	g, err := game.New(len(hands), len(hands[0]), deck)
	require.NoError(t, err)
	require.NoError(t, g.DealInitialHands())
	return g
}

func play(t *testing.T, g *game.Game, seat int, index int) game.GameAction {
	t.Helper()
	validated, err := g.ValidateAction(seat, game.PlayAction(index))
	require.NoError(t, err)
	result, err := g.ExecuteAction(seat, validated)
	require.NoError(t, err)
	return result
}

func yellowNumbers(from, to int) []card.Card {
	var cards []card.Card
	for number := from; number <= to; number++ {
		cards = append(cards, card.NewNumberCard(color.Yellow, number))
	}
	return cards
}

func totalCards(g *game.Game) int {
	total := g.Deck().DrawPileSize() + g.Deck().DiscardPileSize()
	for seat := 0; seat < g.NumSeats(); seat++ {
		total += g.Seat(seat).HandSize()
	}
	return total
}

func TestNew(t *testing.T) {
	scenarios := []struct {
		description  string
		players      int
		cardsPerHand int
		expected     error
	}{
		{description: "no_players", players: 0, cardsPerHand: 7, expected: consts.ErrorsPlayersInvalid},
		{description: "too_many_players", players: 11, cardsPerHand: 7, expected: consts.ErrorsPlayersInvalid},
		{description: "no_cards", players: 2, cardsPerHand: 0, expected: consts.ErrorsCardsPerHandInvalid},
		{description: "too_many_cards", players: 2, cardsPerHand: 11, expected: consts.ErrorsCardsPerHandInvalid},
		{description: "upper_bounds", players: 10, cardsPerHand: 10},
		{description: "lower_bounds", players: 1, cardsPerHand: 1},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			g, err := game.New(scenario.players, scenario.cardsPerHand, nil)
			if scenario.expected != nil {
				require.ErrorIs(t, err, scenario.expected)
				return
			}
			require.NoError(t, err)
			require.Equal(t, scenario.players, g.NumSeats())
			require.Equal(t, 0, g.Current())
			require.NotEmpty(t, g.ID())
		})
	}
}

func TestDealInitialHands(t *testing.T) {
	t.Run("deals_in_seat_order", func(t *testing.T) {
		g, err := game.New(3, 7, nil)
		require.NoError(t, err)
		require.NoError(t, g.DealInitialHands())
		for seat := 0; seat < 3; seat++ {
			require.Equal(t, 7, g.Seat(seat).HandSize())
		}
		require.Equal(t, 108-1-21, g.Deck().DrawPileSize())
		require.Equal(t, 108, totalCards(g))
	})

	t.Run("fails_when_the_deck_is_too_small", func(t *testing.T) {
		deck, err := game.NewDeckFromCards(yellowNumbers(0, 9), noShuffle)
		require.NoError(t, err)
		g, err := game.New(2, 7, deck)
		require.NoError(t, err)
		require.ErrorIs(t, g.DealInitialHands(), consts.ErrorsDrawPileEmpty)
	})
}

func TestValidateAction(t *testing.T) {
	g := newScriptedGame(t,
		card.NewNumberCard(color.Red, 7),
		[][]card.Card{
			append([]card.Card{card.NewNumberCard(color.Red, 5), card.NewNumberCard(color.Blue, 3)}, yellowNumbers(1, 5)...),
			yellowNumbers(0, 6),
		},
	)

	t.Run("color_match", func(t *testing.T) {
		validated, err := g.ValidateAction(0, game.PlayAction(0))
		require.NoError(t, err)
		require.Equal(t, game.GameAction{Kind: game.PlayerPlaysCard, Index: 0}, validated)
	})

	t.Run("no_match", func(t *testing.T) {
		_, err := g.ValidateAction(0, game.PlayAction(1))
		require.ErrorIs(t, err, consts.ErrorsInvalidPlay)
	})

	t.Run("index_out_of_range", func(t *testing.T) {
		_, err := g.ValidateAction(0, game.PlayAction(7))
		require.ErrorIs(t, err, consts.ErrorsInvalidPlay)
		_, err = g.ValidateAction(0, game.PlayAction(-1))
		require.ErrorIs(t, err, consts.ErrorsInvalidPlay)
	})

	t.Run("draw_is_always_valid", func(t *testing.T) {
		validated, err := g.ValidateAction(1, game.DrawAction())
		require.NoError(t, err)
		require.Equal(t, game.GameAction{Kind: game.PlayerDraw}, validated)
	})

	t.Run("invalid_plays_change_nothing", func(t *testing.T) {
		before := g.State(0)
		drawPile, discardPile := g.Deck().DrawPile(), g.Deck().DiscardPile()
		for i := 0; i < 3; i++ {
			_, err := g.ValidateAction(0, game.PlayAction(1))
			require.ErrorIs(t, err, consts.ErrorsInvalidPlay)
		}
		require.Equal(t, before, g.State(0))
		require.Equal(t, drawPile, g.Deck().DrawPile())
		require.Equal(t, discardPile, g.Deck().DiscardPile())
	})
}

func TestExecuteDraw(t *testing.T) {
	t.Run("draws_from_the_front", func(t *testing.T) {
		g := newScriptedGame(t,
			card.NewNumberCard(color.Red, 7),
			[][]card.Card{{card.NewNumberCard(color.Red, 1)}, {card.NewNumberCard(color.Red, 2)}},
			card.NewNumberCard(color.Green, 1), card.NewNumberCard(color.Green, 2),
		)
		result, err := g.ExecuteAction(0, game.GameAction{Kind: game.PlayerDraw})
		require.NoError(t, err)
		require.Equal(t, game.PlayerDraw, result.Kind)
		require.Equal(t, []card.Card{
			card.NewNumberCard(color.Red, 1),
			card.NewNumberCard(color.Green, 1),
		}, g.Seat(0).Hand())
		require.Equal(t, 1, g.Deck().DrawPileSize())
	})

	t.Run("refills_from_the_discard_pile", func(t *testing.T) {
		g := newScriptedGame(t,
			card.NewNumberCard(color.Red, 0),
			[][]card.Card{{card.NewNumberCard(color.Red, 1)}, {card.NewNumberCard(color.Red, 2)}},
			card.NewNumberCard(color.Red, 3),
		)
		for number := 1; number <= 4; number++ {
			g.Deck().Discard(card.NewNumberCard(color.Green, number))
		}
		listener := event.NewDummyListener()
		g.Events().AddListener(listener)

		_, err := g.ExecuteAction(0, game.GameAction{Kind: game.PlayerDraw})
		require.NoError(t, err)
		require.Equal(t, 0, g.Deck().DrawPileSize())

		_, err = g.ExecuteAction(0, game.GameAction{Kind: game.PlayerDraw})
		require.NoError(t, err)
		require.Equal(t, 3, g.Seat(0).HandSize())
		require.Equal(t, 3, g.Deck().DrawPileSize())
		require.Equal(t, 1, g.Deck().DiscardPileSize())
		top, err := g.Deck().Top()
		require.NoError(t, err)
		require.Equal(t, card.NewNumberCard(color.Green, 4), top)
		require.Len(t, event.Payloads[event.DrawPileRefilledPayload](listener), 1)
	})

	t.Run("fails_when_both_piles_are_exhausted", func(t *testing.T) {
		g := newScriptedGame(t,
			card.NewNumberCard(color.Red, 0),
			[][]card.Card{{card.NewNumberCard(color.Red, 1)}, {card.NewNumberCard(color.Red, 2)}},
		)
		_, err := g.ExecuteAction(0, game.GameAction{Kind: game.PlayerDraw})
		require.ErrorIs(t, err, consts.ErrorsDrawPileEmpty)
		require.Equal(t, 1, g.Seat(0).HandSize())
		require.Equal(t, 3, totalCards(g))
	})
}

func TestExecutePlay(t *testing.T) {
	t.Run("discards_the_played_card", func(t *testing.T) {
		g := newScriptedGame(t,
			card.NewNumberCard(color.Red, 7),
			[][]card.Card{
				{card.NewNumberCard(color.Blue, 7), card.NewNumberCard(color.Red, 1)},
				{card.NewNumberCard(color.Red, 2), card.NewNumberCard(color.Red, 3)},
			},
		)
		result := play(t, g, 0, 0)
		require.Equal(t, game.None, result.Kind)
		top, err := g.Deck().Top()
		require.NoError(t, err)
		require.Equal(t, card.NewNumberCard(color.Blue, 7), top)
		require.Equal(t, []card.Card{card.NewNumberCard(color.Red, 1)}, g.Seat(0).Hand())
	})

	t.Run("unvalidated_index_is_an_unknown_error", func(t *testing.T) {
		g := newScriptedGame(t,
			card.NewNumberCard(color.Red, 7),
			[][]card.Card{{card.NewNumberCard(color.Red, 1)}, {card.NewNumberCard(color.Red, 2)}},
		)
		_, err := g.ExecuteAction(0, game.GameAction{Kind: game.PlayerPlaysCard, Index: 4})
		require.ErrorIs(t, err, consts.ErrorsUnknown)
	})
}

func TestSkip(t *testing.T) {
	g := newScriptedGame(t,
		card.NewNumberCard(color.Red, 7),
		[][]card.Card{
			{card.NewSkipCard(color.Red), card.NewNumberCard(color.Red, 1)},
			{card.NewNumberCard(color.Red, 2), card.NewNumberCard(color.Red, 3)},
			{card.NewNumberCard(color.Red, 4), card.NewNumberCard(color.Red, 5)},
		},
	)
	listener := event.NewDummyListener()
	g.Events().AddListener(listener)

	require.Equal(t, game.None, play(t, g, 0, 0).Kind)
	require.Equal(t, 0, g.Current())
	require.Equal(t, 2, g.AdvanceTurn())
	require.Equal(t, 0, g.AdvanceTurn())
	require.Equal(t, []event.TurnSkippedPayload{{Seat: 1}}, event.Payloads[event.TurnSkippedPayload](listener))
}

func TestReverse(t *testing.T) {
	g := newScriptedGame(t,
		card.NewNumberCard(color.Red, 7),
		[][]card.Card{
			{card.NewReverseCard(color.Red), card.NewNumberCard(color.Red, 1)},
			{card.NewNumberCard(color.Red, 2), card.NewNumberCard(color.Red, 3)},
			{card.NewNumberCard(color.Red, 4), card.NewNumberCard(color.Red, 5)},
		},
	)

	play(t, g, 0, 0)
	require.False(t, g.Clockwise())
	require.Equal(t, 2, g.AdvanceTurn())
	require.Equal(t, 1, g.AdvanceTurn())
	require.Equal(t, 0, g.AdvanceTurn())
}

func TestSkipAndReverseOrder(t *testing.T) {
	hands := func(first, second card.Card) [][]card.Card {
		return [][]card.Card{
			{first, card.NewNumberCard(color.Red, 1)},
			{card.NewNumberCard(color.Red, 2), card.NewNumberCard(color.Red, 3)},
			{second, card.NewNumberCard(color.Red, 5)},
		}
	}

	t.Run("reverse_then_skip", func(t *testing.T) {
		g := newScriptedGame(t, card.NewNumberCard(color.Red, 7),
			hands(card.NewReverseCard(color.Red), card.NewSkipCard(color.Red)))
		play(t, g, 0, 0)
		require.Equal(t, 2, g.AdvanceTurn())
		play(t, g, 2, 0)
		require.Equal(t, 0, g.AdvanceTurn())
	})

	t.Run("skip_then_reverse", func(t *testing.T) {
		g := newScriptedGame(t, card.NewNumberCard(color.Red, 7),
			hands(card.NewSkipCard(color.Red), card.NewReverseCard(color.Red)))
		play(t, g, 0, 0)
		require.Equal(t, 2, g.AdvanceTurn())
		play(t, g, 2, 0)
		require.Equal(t, 1, g.AdvanceTurn())
	})
}

func TestDrawTwo(t *testing.T) {
	t.Run("next_seat_draws_two_and_keeps_its_turn", func(t *testing.T) {
		g := newScriptedGame(t,
			card.NewNumberCard(color.Red, 7),
			[][]card.Card{
				{card.NewDrawTwoCard(color.Red), card.NewNumberCard(color.Red, 1)},
				{card.NewNumberCard(color.Red, 2), card.NewNumberCard(color.Red, 3)},
				{card.NewNumberCard(color.Red, 4), card.NewNumberCard(color.Red, 5)},
			},
			yellowNumbers(0, 5)...,
		)
		require.Equal(t, game.None, play(t, g, 0, 0).Kind)
		require.Equal(t, 4, g.Seat(1).HandSize())
		require.Equal(t, 2, g.Seat(2).HandSize())
		require.Equal(t, 1, g.AdvanceTurn())
	})

	t.Run("counter_clockwise_targets_the_previous_seat", func(t *testing.T) {
		g := newScriptedGame(t,
			card.NewNumberCard(color.Red, 7),
			[][]card.Card{
				{card.NewReverseCard(color.Red), card.NewDrawTwoCard(color.Red)},
				{card.NewNumberCard(color.Red, 2), card.NewNumberCard(color.Red, 3)},
				{card.NewNumberCard(color.Red, 4), card.NewNumberCard(color.Red, 5)},
			},
			yellowNumbers(0, 5)...,
		)
		play(t, g, 0, 0)
		play(t, g, 0, 0)
		require.Equal(t, 4, g.Seat(2).HandSize())
		require.Equal(t, 2, g.Seat(1).HandSize())
	})
}

func TestWildDraw(t *testing.T) {
	t.Run("next_seat_draws_then_color_is_chosen", func(t *testing.T) {
		g := newScriptedGame(t,
			card.NewNumberCard(color.Red, 7),
			[][]card.Card{
				{card.NewWildDrawFourCard(), card.NewNumberCard(color.Red, 1)},
				{card.NewNumberCard(color.Red, 2), card.NewNumberCard(color.Red, 3)},
			},
			yellowNumbers(0, 9)...,
		)
		result := play(t, g, 0, 0)
		require.Equal(t, game.ChooseColor, result.Kind)
		require.Equal(t, 6, g.Seat(1).HandSize())

		require.ErrorIs(t, g.ChangeActiveColor(0, color.Wild), consts.ErrorsInvalidColor)
		require.NoError(t, g.ChangeActiveColor(0, color.Green))
		top, err := g.Deck().Top()
		require.NoError(t, err)
		require.Equal(t, card.NewWildDrawFourCard().Colored(color.Green), top)
	})

	t.Run("draws_what_is_left_when_cards_run_out", func(t *testing.T) {
		g := newScriptedGame(t,
			card.NewNumberCard(color.Red, 7),
			[][]card.Card{
				{card.NewWildDrawFourCard(), card.NewNumberCard(color.Red, 1)},
				{card.NewNumberCard(color.Red, 2), card.NewNumberCard(color.Red, 3)},
			},
			card.NewNumberCard(color.Yellow, 0),
		)
		listener := event.NewDummyListener()
		g.Events().AddListener(listener)

		result := play(t, g, 0, 0)
		require.Equal(t, game.ChooseColor, result.Kind)
		require.Equal(t, 4, g.Seat(1).HandSize())
		require.Equal(t, 6, totalCards(g))
		drawn := event.Payloads[event.CardsDrawnPayload](listener)
		require.Len(t, drawn, 1)
		require.Equal(t, 4, drawn[0].Amount)
		require.Equal(t, []card.Card{
			card.NewNumberCard(color.Yellow, 0),
			card.NewNumberCard(color.Red, 7),
		}, drawn[0].Cards)
		require.Len(t, event.Payloads[event.DrawPileRefilledPayload](listener), 1)

		top, err := g.Deck().Top()
		require.NoError(t, err)
		require.Equal(t, card.NewWildDrawFourCard(), top)
	})
}

// countingListener records the number of cards in play each time an event
// is heard.
type countingListener struct {
	*event.DummyListener
	game   *game.Game
	totals []int
}

func (l *countingListener) record() {
	l.totals = append(l.totals, totalCards(l.game))
}

func (l *countingListener) OnCardPlayed(event.CardPlayedPayload) {
	l.record()
}

func (l *countingListener) OnCardsDrawn(event.CardsDrawnPayload) {
	l.record()
}

func (l *countingListener) OnTurnSkipped(event.TurnSkippedPayload) {
	l.record()
}

func (l *countingListener) OnTurnOrderReversed(event.TurnOrderReversedPayload) {
	l.record()
}

func (l *countingListener) OnDrawPileRefilled(event.DrawPileRefilledPayload) {
	l.record()
}

func TestCardsAreConservedWhileEffectsRun(t *testing.T) {
	g := newScriptedGame(t,
		card.NewNumberCard(color.Red, 7),
		[][]card.Card{
			{card.NewDrawTwoCard(color.Red), card.NewReverseCard(color.Red)},
			{card.NewSkipCard(color.Red), card.NewNumberCard(color.Red, 3)},
			{card.NewNumberCard(color.Red, 4), card.NewNumberCard(color.Red, 5)},
		},
		card.NewNumberCard(color.Yellow, 0),
	)
	listener := &countingListener{DummyListener: event.NewDummyListener(), game: g}
	g.Events().AddListener(listener)

	play(t, g, 0, 0)
	play(t, g, 0, 0)
	play(t, g, 1, 0)

	require.NotEmpty(t, listener.totals)
	for _, total := range listener.totals {
		require.Equal(t, 10, total)
	}
}

func TestWild(t *testing.T) {
	g := newScriptedGame(t,
		card.NewNumberCard(color.Red, 7),
		[][]card.Card{
			{card.NewWildCard(), card.NewNumberCard(color.Blue, 1)},
			{card.NewNumberCard(color.Red, 2), card.NewNumberCard(color.Blue, 3)},
		},
	)
	require.Equal(t, game.ChooseColor, play(t, g, 0, 0).Kind)
	require.NoError(t, g.ChangeActiveColor(0, color.Blue))

	_, err := g.ValidateAction(1, game.PlayAction(0))
	require.ErrorIs(t, err, consts.ErrorsInvalidPlay)
	_, err = g.ValidateAction(1, game.PlayAction(1))
	require.NoError(t, err)
}

func TestHasWon(t *testing.T) {
	g := newScriptedGame(t,
		card.NewNumberCard(color.Red, 7),
		[][]card.Card{{card.NewNumberCard(color.Red, 1)}, {card.NewNumberCard(color.Red, 2)}},
	)
	require.False(t, g.HasWon(0))
	play(t, g, 0, 0)
	require.True(t, g.HasWon(0))
	require.False(t, g.HasWon(1))
	require.False(t, g.HasWon(7))
}

func TestState(t *testing.T) {
	g := newScriptedGame(t,
		card.NewNumberCard(color.Red, 7),
		[][]card.Card{
			{card.NewNumberCard(color.Blue, 1), card.NewNumberCard(color.Red, 1), card.NewWildCard()},
			yellowNumbers(0, 2),
		},
		card.NewNumberCard(color.Green, 1),
	)
	state := g.State(0)
	require.Equal(t, 0, state.Seat)
	require.True(t, state.HasLastPlayedCard)
	require.Equal(t, card.NewNumberCard(color.Red, 7), state.LastPlayedCard)
	require.Equal(t, []int{1, 2}, state.PlayableIndexes)
	require.Equal(t, []int{3, 3}, state.SeatHandCounts)
	require.Equal(t, 1, state.DrawPileSize)
	require.True(t, state.Clockwise)
	require.Contains(t, state.String(), "Cards in the draw pile: 1")
}
