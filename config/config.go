package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/game"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Game GameConfig `yaml:"game"`
	UI   UIConfig   `yaml:"ui"`
}

type GameConfig struct {
	Players      int    `yaml:"players"`
	CardsPerHand int    `yaml:"cards_per_hand"`
	HumanName    string `yaml:"human_name"`
	BotStrategy  string `yaml:"bot_strategy"`
	Autoplay     bool   `yaml:"autoplay"`
	Seed         int64  `yaml:"seed"` // 0 shuffles randomly
}

type UIConfig struct {
	MessageDelayMs int  `yaml:"message_delay_ms"`
	NoColor        bool `yaml:"no_color"`
}

func (c *UIConfig) MessageDelay() time.Duration {
	return time.Duration(c.MessageDelayMs) * time.Millisecond
}

// Load reads a YAML file. Keys missing from the file keep their default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Default() *Config {
	return &Config{
		Game: GameConfig{
			Players:      consts.DefaultPlayers,
			CardsPerHand: consts.DefaultCardsPerHand,
			HumanName:    "You",
			BotStrategy:  "auto",
		},
		UI: UIConfig{
			MessageDelayMs: 1000,
		},
	}
}

func (c *Config) Validate() error {
	if err := game.ValidateSettings(c.Game.Players, c.Game.CardsPerHand); err != nil {
		return err
	}
	if c.UI.MessageDelayMs < 0 {
		return fmt.Errorf("message_delay_ms must not be negative, got %d", c.UI.MessageDelayMs)
	}
	return nil
}
