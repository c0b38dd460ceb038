package msg

import (
	"fmt"
	"strings"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

var Message = MessageWriter{}

type MessageWriter struct{}

func (m MessageWriter) Welcome() string {
	return fmt.Sprintf(
		"WELCOME TO %s%s%s",
		color.Red.Paint("U"),
		color.Yellow.Paint("N"),
		color.Blue.Paint("O"),
	)
}

func (m MessageWriter) FirstCardPlayed(c card.Card) string {
	return fmt.Sprintf("First card is %s", c)
}

func (m MessageWriter) HumanPlayerTurnStarted(playerName string) string {
	return fmt.Sprintf("It's your turn, %s!", playerName)
}

func (m MessageWriter) HumanPlayerDrewCards(cards []card.Card) string {
	return fmt.Sprintf("You drew %s!", Cards(cards))
}

func (m MessageWriter) HumanPlayerCannotPlay(c card.Card, lastPlayedCard card.Card) string {
	return fmt.Sprintf("%s does not match %s!", c, lastPlayedCard)
}

func (m MessageWriter) PlayerDrewCards(playerName string, amount int) string {
	if amount == 1 {
		return fmt.Sprintf("%s drew a card!", playerName)
	}
	return fmt.Sprintf("%s drew %d cards!", playerName, amount)
}

func (m MessageWriter) PlayerPickedColor(playerName string, c color.Color) string {
	return fmt.Sprintf("%s picked color %s!", playerName, c)
}

func (m MessageWriter) PlayerPlayedCard(playerName string, c card.Card) string {
	return fmt.Sprintf("%s played %s!", playerName, c)
}

func (m MessageWriter) PlayerTurnSkipped(playerName string) string {
	return fmt.Sprintf("%s's turn skipped!", playerName)
}

func (m MessageWriter) TurnOrderReversed(clockwise bool) string {
	if clockwise {
		return "Turn order has been reversed, play goes clockwise!"
	}
	return "Turn order has been reversed, play goes counter-clockwise!"
}

func (m MessageWriter) DrawPileRefilled(size int) string {
	return fmt.Sprintf("The discard pile was shuffled into the draw pile (%d cards)", size)
}

func (m MessageWriter) WinnerFound(playerName string) string {
	return fmt.Sprintf("%s wins!", playerName)
}

func (m MessageWriter) InvalidInput(input string) string {
	return fmt.Sprintf("Invalid input '%s'", input)
}

func (m MessageWriter) UnknownColor(name string) string {
	return fmt.Sprintf("Unknown color '%s'", name)
}

func (m MessageWriter) ColorPrompt() string {
	names := make([]string, 0, len(color.Choosable))
	for _, c := range color.Choosable {
		names = append(names, fmt.Sprintf("%s (%s)", c, c.Short()))
	}
	return fmt.Sprintf("Select a color: %s", strings.Join(names, ", "))
}

// TurnActionPrompt lists the hand as "00: card" lines followed by the draw option.
func (m MessageWriter) TurnActionPrompt(hand []card.Card, drawInput string) string {
	lines := []string{"Select a card to play:"}
	for i, c := range hand {
		lines = append(lines, fmt.Sprintf("%02d: %s", i, c))
	}
	lines = append(lines, fmt.Sprintf("%s: draw a card", drawInput))
	return strings.Join(lines, "\n")
}
