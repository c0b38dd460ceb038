package player

import (
	"fmt"

	"github.com/ratel-online/core/util/rand"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/ui"
)

const (
	StrategyAuto  = "auto"
	StrategyGood  = "good"
	StrategyNaive = "naive"
)

var botNames = []string{
	"Annie", "Braum", "Caitlyn", "Draven",
	"Ezreal", "Fiora", "Graves", "Heimerdinger",
	"Ivern", "Jinx", "Kled", "Lulu",
	"Malphite", "Nunu", "Orianna", "Poppy",
	"Qiyana", "Rakan", "Shaco", "Twisted Fate",
	"Udyr", "Veigar", "Wukong", "Xayah",
	"Yuumi", "Zoe",
}

var botFactories = map[string]func(name string) game.Actor{
	StrategyAuto:  NewAutoPlayer,
	StrategyGood:  NewGoodPlayer,
	StrategyNaive: NewNaivePlayer,
}

func NewBot(strategy string, name string) (game.Actor, error) {
	factory, ok := botFactories[strategy]
	if !ok {
		return nil, fmt.Errorf("unknown bot strategy '%s'", strategy)
	}
	return factory(name), nil
}

// CreatePlayers seats a human at consts.HumanSeat when console is not nil
// and fills every other seat with a bot of the given strategy. It returns
// the registry and the name of every seat.
func CreatePlayers(numberOfPlayers int, humanPlayerName string, console *ui.Console, strategy string) (*Registry, []string, error) {
	if numberOfPlayers < consts.MinPlayers || numberOfPlayers > consts.MaxPlayers {
		return nil, nil, consts.ErrorsPlayersInvalid
	}
	if _, ok := botFactories[strategy]; !ok {
		return nil, nil, fmt.Errorf("unknown bot strategy '%s'", strategy)
	}

	registry := NewRegistry()
	names := make([]string, 0, numberOfPlayers)
	bots := generateBotNames(numberOfPlayers)
	for seat := 0; seat < numberOfPlayers; seat++ {
		if console != nil && seat == consts.HumanSeat {
			registry.Register(seat, NewHumanPlayer(humanPlayerName, console))
			names = append(names, humanPlayerName)
			continue
		}
		bot, _ := NewBot(strategy, bots[seat])
		registry.Register(seat, bot)
		names = append(names, bots[seat])
	}
	return registry, names, nil
}

func generateBotNames(amount int) []string {
	names := append([]string(nil), botNames...)
	for i := len(names) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		names[i], names[j] = names[j], names[i]
	}
	return names[:amount]
}
