package uno

import (
	"math/rand"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/msg"
	"github.com/ratel-online/uno/uno/player"
	"github.com/ratel-online/uno/uno/ui"
)

type Options struct {
	HumanName   string
	BotStrategy string
	// Autoplay puts a bot in the human seat. The console still shows the game.
	Autoplay bool
	// Seed makes the shuffle reproducible. 0 shuffles randomly.
	Seed    int64
	Console *ui.Console
}

// Engine is a game ready to be run together with the actors of its seats.
type Engine struct {
	flow    *game.Flow
	names   []string
	console *ui.Console
}

func (e *Engine) Flow() *game.Flow {
	return e.flow
}

func (e *Engine) Names() []string {
	return e.names
}

// NewGame validates the settings, seats the players and deals nothing yet.
func NewGame(numOfPlayers, cardsPerHand int, options Options) (*Engine, error) {
	if err := game.ValidateSettings(numOfPlayers, cardsPerHand); err != nil {
		return nil, err
	}
	if options.HumanName == "" {
		options.HumanName = "You"
	}
	if options.BotStrategy == "" {
		options.BotStrategy = player.StrategyAuto
	}

	var shuffle game.Shuffler
	if options.Seed != 0 {
		shuffle = game.RandomShuffler(rand.New(rand.NewSource(options.Seed)))
	}
	g, err := game.New(numOfPlayers, cardsPerHand, game.NewDeck(shuffle))
	if err != nil {
		return nil, err
	}

	humanConsole := options.Console
	if options.Autoplay {
		humanConsole = nil
	}
	registry, names, err := player.CreatePlayers(numOfPlayers, options.HumanName, humanConsole, options.BotStrategy)
	if err != nil {
		return nil, err
	}

	if options.Console != nil {
		watcherSeat := consts.HumanSeat
		if options.Autoplay {
			watcherSeat = -1
		}
		g.Events().AddListener(ui.NewAnnouncer(options.Console, names, watcherSeat))
	}

	log.Infof("game %s: created for %d players, %d cards each\n", g.ID(), numOfPlayers, cardsPerHand)
	return &Engine{
		flow:    game.NewFlow(g, registry),
		names:   names,
		console: options.Console,
	}, nil
}

// RunToCompletion plays the game until a winner is announced.
func RunToCompletion(engine *Engine) error {
	if engine.console != nil {
		engine.console.Println(msg.Message.Welcome())
	}
	if err := engine.flow.Run(); err != nil {
		log.Errorf("game %s: %v\n", engine.flow.Game().ID(), err)
		return err
	}
	return nil
}
