package config

import (
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"holdem-engine/internal/util"
)

// Config provides configuration for the hold'em front ends
type Config struct {
	loaded        bool
	SmallBlind    int      `yaml:"smallBlind" envconfig:"small_blind"`
	BigBlind      int      `yaml:"bigBlind" envconfig:"big_blind"`
	StartingStack int      `yaml:"startingStack" envconfig:"starting_stack"`
	Players       []string `yaml:"players"`
	Equity        struct {
		Trials  int `yaml:"trials"`
		Workers int `yaml:"workers"`
	}
	Log struct {
		Level string `yaml:"level"`
	}
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing config file is not an error; the defaults are the original
// four-player table with 10/20 blinds and a 1,000 chip starting stack.
func Load() error {
	config = defaults()

	configFile := util.Getenv("HOLDEM_CONFIG_FILE", "holdem.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("holdem", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}

func defaults() Config {
	c := Config{
		SmallBlind:    10,
		BigBlind:      20,
		StartingStack: 1000,
		Players:       []string{"Player 1", "Player 2", "Player 3", "Player 4"},
	}
	c.Equity.Trials = 1000
	c.Equity.Workers = 1

	return c
}
