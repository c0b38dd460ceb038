package game_test

import (
	"testing"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
	"github.com/stretchr/testify/require"
)

func TestAddCards(t *testing.T) {
	hand := game.NewHand()
	hand.AddCards([]card.Card{
		card.NewNumberCard(color.Blue, 7),
		card.NewWildCard(),
	})
	hand.AddCards([]card.Card{card.NewSkipCard(color.Red)})
	require.Equal(t, []card.Card{
		card.NewNumberCard(color.Blue, 7),
		card.NewWildCard(),
		card.NewSkipCard(color.Red),
	}, hand.Cards())
}

func TestEmpty(t *testing.T) {
	hand := game.NewHand()
	require.True(t, hand.Empty())
	hand.AddCards([]card.Card{
		card.NewNumberCard(color.Blue, 7),
		card.NewWildCard(),
	})
	require.False(t, hand.Empty())
}

func TestPlayableIndexes(t *testing.T) {
	hand := game.NewHand()
	hand.AddCards([]card.Card{
		card.NewNumberCard(color.Blue, 5),
		card.NewNumberCard(color.Green, 8),
		card.NewNumberCard(color.Green, 7),
		card.NewWildCard(),
		card.NewReverseCard(color.Yellow),
		card.NewDrawTwoCard(color.Blue),
	})
	lastPlayedCard := card.NewNumberCard(color.Blue, 7)
	playable := hand.PlayableIndexes(func(c card.Card) bool {
		return game.Playable(c, lastPlayedCard)
	})
	require.Equal(t, []int{0, 2, 3, 5}, playable)
}

func TestRemoveCard(t *testing.T) {
	t.Run("removes_the_card_at_the_index_keeping_order", func(t *testing.T) {
		hand := game.NewHand()
		hand.AddCards([]card.Card{
			card.NewWildCard(),
			card.NewReverseCard(color.Yellow),
			card.NewDrawTwoCard(color.Blue),
		})

		removed, err := hand.RemoveCard(1)
		require.NoError(t, err)
		require.Equal(t, card.NewReverseCard(color.Yellow), removed)
		require.Equal(t, []card.Card{
			card.NewWildCard(),
			card.NewDrawTwoCard(color.Blue),
		}, hand.Cards())
	})

	t.Run("fails_when_index_is_out_of_bounds", func(t *testing.T) {
		hand := game.NewHand()
		hand.AddCards([]card.Card{card.NewWildCard()})

		_, err := hand.RemoveCard(1)
		require.ErrorIs(t, err, consts.ErrorsIndexOutOfBounds)
		_, err = hand.RemoveCard(-1)
		require.ErrorIs(t, err, consts.ErrorsIndexOutOfBounds)
		require.Equal(t, 1, hand.Size())
	})

	t.Run("removes_a_single_copy", func(t *testing.T) {
		hand := game.NewHand()
		hand.AddCards([]card.Card{
			card.NewWildCard(),
			card.NewNumberCard(color.Red, 6),
			card.NewNumberCard(color.Red, 6),
		})
		_, err := hand.RemoveCard(2)
		require.NoError(t, err)
		require.Equal(t, []card.Card{
			card.NewWildCard(),
			card.NewNumberCard(color.Red, 6),
		}, hand.Cards())
	})
}

func TestSize(t *testing.T) {
	hand := game.NewHand()
	require.Equal(t, 0, hand.Size())
	hand.AddCards([]card.Card{
		card.NewNumberCard(color.Green, 7),
		card.NewWildCard(),
		card.NewReverseCard(color.Yellow),
	})
	require.Equal(t, 3, hand.Size())
}
