// Package config provides configuration for Four Seat Poker. Values come
// from defaults, then an optional YAML file, then FSP_* environment
// variables.
package config

import (
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"fourseatpoker/internal/util"
	"fourseatpoker/pkg/holdem"
	"fourseatpoker/pkg/holdem/cpu"
)

// Config provides configuration for Four Seat Poker
type Config struct {
	loaded bool

	NumSeats     int `yaml:"numSeats" envconfig:"num_seats"`
	InitialChips int `yaml:"initialChips" envconfig:"initial_chips"`
	SmallBlind   int `yaml:"smallBlind" envconfig:"small_blind"`
	BigBlind     int `yaml:"bigBlind" envconfig:"big_blind"`

	LogLevel string `yaml:"logLevel" envconfig:"log_level"`

	Timing struct {
		CPUThinkDelayMS  int `yaml:"cpuThinkDelayMs" envconfig:"cpu_think_delay_ms"`
		CPUThinkJitterMS int `yaml:"cpuThinkJitterMs" envconfig:"cpu_think_jitter_ms"`
		AdvanceDelayMS   int `yaml:"advanceDelayMs" envconfig:"advance_delay_ms"`
		DealDelayMS      int `yaml:"dealDelayMs" envconfig:"deal_delay_ms"`
	} `yaml:"timing"`
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

// Load will load the configuration. A missing config file is not an
// error; the defaults still apply.
func Load() error {
	defaults := holdem.DefaultOptions()

	config = Config{
		NumSeats:     defaults.NumSeats,
		InitialChips: defaults.InitialChips,
		SmallBlind:   defaults.SmallBlind,
		BigBlind:     defaults.BigBlind,
		LogLevel:     "info",
	}
	config.Timing.CPUThinkDelayMS = int(defaults.CPUThinkDelay / time.Millisecond)
	config.Timing.CPUThinkJitterMS = int(defaults.CPUThinkJitter / time.Millisecond)
	config.Timing.AdvanceDelayMS = int(defaults.AdvanceDelay / time.Millisecond)
	config.Timing.DealDelayMS = int(defaults.DealDelay / time.Millisecond)

	configFile := util.Getenv("FSP_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("fsp", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}

// GameOptions translates the configuration into game options
func (c Config) GameOptions() holdem.Options {
	opts := holdem.DefaultOptions()
	opts.NumSeats = c.NumSeats
	opts.InitialChips = c.InitialChips
	opts.SmallBlind = c.SmallBlind
	opts.BigBlind = c.BigBlind
	opts.CPUThinkDelay = time.Duration(c.Timing.CPUThinkDelayMS) * time.Millisecond
	opts.CPUThinkJitter = time.Duration(c.Timing.CPUThinkJitterMS) * time.Millisecond
	opts.AdvanceDelay = time.Duration(c.Timing.AdvanceDelayMS) * time.Millisecond
	opts.DealDelay = time.Duration(c.Timing.DealDelayMS) * time.Millisecond

	return opts
}

// CPUProfile returns the opponent profile for the configuration
func (c Config) CPUProfile() cpu.Profile {
	return cpu.DefaultProfile()
}
