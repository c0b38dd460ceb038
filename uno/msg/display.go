package msg

import (
	"strings"

	"github.com/ratel-online/uno/uno/card"
)

// Cards renders cards space separated.
func Cards(cards []card.Card) string {
	labels := make([]string, 0, len(cards))
	for _, c := range cards {
		labels = append(labels, c.String())
	}
	return strings.Join(labels, " ")
}
