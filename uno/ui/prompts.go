package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/msg"
)

// PromptString asks until a non-empty line is entered. It fails only when
// input cannot be read anymore.
func (c *Console) PromptString(message string) (string, error) {
	for {
		c.Println(message)
		input, err := c.readLine()
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		if input == "" {
			c.Println("Invalid text input")
			continue
		}
		return input, nil
	}
}

// PromptTurnAction lists hand and asks for a card index or the draw input.
func (c *Console) PromptTurnAction(hand []card.Card) (game.Action, error) {
	message := msg.Message.TurnActionPrompt(hand, consts.DrawInput)
	for {
		input, err := c.PromptString(message)
		if err != nil {
			return game.Action{}, err
		}
		action, err := ParseTurnAction(input, len(hand))
		if err != nil {
			c.Println(msg.Message.InvalidInput(input))
			continue
		}
		return action, nil
	}
}

func (c *Console) PromptColor() (color.Color, error) {
	message := msg.Message.ColorPrompt()
	for {
		input, err := c.PromptString(message)
		if err != nil {
			return color.Wild, err
		}
		chosen, err := color.ByName(input)
		if err != nil {
			c.Println(msg.Message.UnknownColor(input))
			continue
		}
		return chosen, nil
	}
}

// ParseTurnAction reads "d" as a draw and a number below handSize as a play.
func ParseTurnAction(input string, handSize int) (game.Action, error) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == consts.DrawInput {
		return game.DrawAction(), nil
	}
	index, err := strconv.Atoi(input)
	if err != nil || index < 0 || index >= handSize {
		return game.Action{}, consts.ErrorsInputInvalid
	}
	return game.PlayAction(index), nil
}
