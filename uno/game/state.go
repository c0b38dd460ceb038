package game

import (
	"fmt"
	"strings"

	"github.com/ratel-online/uno/uno/card"
)

// State is what a seat may see when it has to decide.
type State struct {
	Seat              int
	CurrentSeat       int
	Clockwise         bool
	LastPlayedCard    card.Card
	HasLastPlayedCard bool
	CurrentPlayerHand []card.Card
	PlayableIndexes   []int
	SeatHandCounts    []int
	DrawPileSize      int
}

func (s State) String() string {
	var lines []string
	if s.HasLastPlayedCard {
		lines = append(lines, fmt.Sprintf("Last played card: %s", s.LastPlayedCard))
	} else {
		lines = append(lines, "Last played card: none")
	}
	lines = append(lines, fmt.Sprintf("Cards in the draw pile: %d", s.DrawPileSize))

	var seatStatuses []string
	for seat, count := range s.SeatHandCounts {
		seatStatuses = append(seatStatuses, fmt.Sprintf("player %d (%d card(s))", seat, count))
	}
	direction := "clockwise"
	if !s.Clockwise {
		direction = "counter-clockwise"
	}
	lines = append(lines, fmt.Sprintf("Turn order (%s): %s", direction, strings.Join(seatStatuses, ", ")))

	return strings.Join(lines, "\n")
}
