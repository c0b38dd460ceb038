package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/uno/config"
	"github.com/ratel-online/uno/uno"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/ui"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()

	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		log.Error(err)
		os.Exit(2)
	}
	if cfg.UI.NoColor {
		color.DisableOutputColors()
	}

	engine, err := uno.NewGame(cfg.Game.Players, cfg.Game.CardsPerHand, uno.Options{
		HumanName:   cfg.Game.HumanName,
		BotStrategy: cfg.Game.BotStrategy,
		Autoplay:    cfg.Game.Autoplay,
		Seed:        cfg.Game.Seed,
		Console:     ui.Stdio(cfg.UI.MessageDelay()),
	})
	if err != nil {
		log.Error(err)
		os.Exit(2)
	}
	if err := uno.RunToCompletion(engine); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the optional config file, then applies the flags that
// were set explicitly on top of it.
func loadConfig(args []string) (*config.Config, error) {
	defaults := config.Default()
	fs := flag.NewFlagSet("uno", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to a YAML config file")
	players := fs.Int("p", defaults.Game.Players, "number of players (1-10)")
	cards := fs.Int("c", defaults.Game.CardsPerHand, "number of cards per hand (1-10)")
	name := fs.String("name", defaults.Game.HumanName, "name of the human player")
	bot := fs.String("bot", defaults.Game.BotStrategy, "bot strategy: auto, good or naive")
	seed := fs.Int64("seed", defaults.Game.Seed, "shuffle seed, 0 for a random game")
	autoplay := fs.Bool("autoplay", defaults.Game.Autoplay, "let a bot play the human seat")
	delay := fs.Int("delay", defaults.UI.MessageDelayMs, "pause after each message in milliseconds")
	noColor := fs.Bool("no-color", defaults.UI.NoColor, "disable colored output")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := defaults
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "p":
			cfg.Game.Players = *players
		case "c":
			cfg.Game.CardsPerHand = *cards
		case "name":
			cfg.Game.HumanName = *name
		case "bot":
			cfg.Game.BotStrategy = *bot
		case "seed":
			cfg.Game.Seed = *seed
		case "autoplay":
			cfg.Game.Autoplay = *autoplay
		case "delay":
			cfg.UI.MessageDelayMs = *delay
		case "no-color":
			cfg.UI.NoColor = *noColor
		}
	})
	return cfg, cfg.Validate()
}
