// Package config loads the console host's settings from YAML, with sensible
// defaults for every game the host knows about.
package config

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"minimax/searcher"
)

// Search is a searcher configuration: depth in plies and the move buffer
// capacity, which must cover the game's worst-case branching factor.
type Search struct {
	Depth        int `yaml:"depth"`
	MoveCapacity int `yaml:"move_capacity"`
}

type Config struct {
	LogLevel string            `yaml:"log_level"`
	Search   Search            `yaml:"search"`
	Games    map[string]Search `yaml:"games"`
}

// Default returns the built-in settings: full-depth searches for the small
// games, a bounded one for connect four.
func Default() Config {
	return Config{
		LogLevel: "info",
		Search: Search{
			Depth:        searcher.DefaultMaxDepth,
			MoveCapacity: searcher.DefaultMoveCapacity,
		},
		Games: map[string]Search{
			"tictactoe":   {Depth: 9, MoveCapacity: 9},
			"connectfour": {Depth: 7, MoveCapacity: 7},
			"nim":         {Depth: 15, MoveCapacity: 15},
			"hexapawn":    {Depth: 12, MoveCapacity: 9},
		},
	}
}

// Load reads path over the defaults. Unset fields in a per-game override
// fall back to the global search settings via ForGame.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("bad log_level %q: %w", c.LogLevel, err)
	}
	if c.Search.Depth <= 0 || c.Search.MoveCapacity <= 0 {
		return fmt.Errorf("search depth and move_capacity must be positive")
	}
	for name, s := range c.Games {
		if s.Depth < 0 || s.MoveCapacity < 0 {
			return fmt.Errorf("game %q: negative depth or move_capacity", name)
		}
	}
	return nil
}

// ForGame returns the effective search settings for a game, filling unset
// override fields from the global section.
func (c Config) ForGame(name string) Search {
	s := c.Search
	if override, ok := c.Games[name]; ok {
		if override.Depth > 0 {
			s.Depth = override.Depth
		}
		if override.MoveCapacity > 0 {
			s.MoveCapacity = override.MoveCapacity
		}
	}
	return s
}
