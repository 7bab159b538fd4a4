// Package config loads game configuration from defaults, an optional YAML
// rules file and environment variables, in that order.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"cascadia/internal/game"
)

// Config holds everything needed to set up a game.
type Config struct {
	Variant        string   `yaml:"variant" env:"CASCADIA_VARIANT"`
	Topology       string   `yaml:"topology" env:"CASCADIA_TOPOLOGY"`
	GridSize       int      `yaml:"grid_size" env:"CASCADIA_GRID_SIZE"`
	DeckSize       int      `yaml:"deck_size" env:"CASCADIA_DECK_SIZE"`
	MaxRounds      int      `yaml:"max_rounds" env:"CASCADIA_MAX_ROUNDS"`
	RedrawOnTriple bool     `yaml:"redraw_on_triple" env:"CASCADIA_REDRAW_ON_TRIPLE"`
	Players        []string `yaml:"players" env:"CASCADIA_PLAYERS" envSeparator:","`
	Bots           []string `yaml:"bots" env:"CASCADIA_BOTS" envSeparator:","` // Personality per player
	Seed           int64    `yaml:"seed" env:"CASCADIA_SEED"`
	LogLevel       string   `yaml:"log_level" env:"CASCADIA_LOG_LEVEL"`
	FamilyCurve    []int    `yaml:"family_curve" env:"CASCADIA_FAMILY_CURVE" envSeparator:","`
}

// Default returns the configuration of a standard two-player game.
func Default() Config {
	return Config{
		Variant:   game.VariantStandard.String(),
		Topology:  game.TopologySquare.String(),
		GridSize:  game.DefaultGridSize,
		DeckSize:  game.DefaultDeckSize,
		MaxRounds: game.DefaultMaxRounds,
		Players:   []string{"Player 1", "Player 2"},
		Bots:      []string{"greedy", "random"},
		LogLevel:  "info",
	}
}

// Load builds a configuration. Values in the YAML file at path (if path is
// not empty) replace the defaults; environment variables replace both.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

// Settings converts the configuration into game settings.
func (c *Config) Settings() (game.Settings, error) {
	variant, err := game.ParseVariant(c.Variant)
	if err != nil {
		return game.Settings{}, withSuggestion(err, c.Variant, variantNames())
	}
	topology, err := game.ParseTopology(c.Topology)
	if err != nil {
		return game.Settings{}, withSuggestion(fmt.Errorf("%w: %q", err, c.Topology), c.Topology, topologyNames())
	}

	s := game.Settings{
		Variant:        variant,
		Topology:       topology,
		GridSize:       c.GridSize,
		DeckSize:       c.DeckSize,
		MaxRounds:      c.MaxRounds,
		RedrawOnTriple: c.RedrawOnTriple,
	}
	if len(c.FamilyCurve) > 0 {
		s.FamilyCurve = append(game.Curve{0}, c.FamilyCurve...)
	}
	return s, nil
}

// Personalities returns the bot personality of each configured player.
// Players without an entry default to greedy.
func (c *Config) Personalities() ([]game.AIPersonality, error) {
	out := make([]game.AIPersonality, len(c.Players))
	for i := range c.Players {
		if i >= len(c.Bots) {
			out[i] = game.AIGreedy
			continue
		}
		name := strings.ToLower(strings.TrimSpace(c.Bots[i]))
		p := game.ParseAIPersonality(name)
		if p == game.AIPersonalityNone {
			return nil, withSuggestion(fmt.Errorf("unknown bot personality %q", name), name, []string{"random", "greedy"})
		}
		out[i] = p
	}
	return out, nil
}

// SlogLevel returns the configured log level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func variantNames() []string {
	var names []string
	for _, v := range game.AllVariants() {
		names = append(names, v.String())
	}
	return names
}

func topologyNames() []string {
	return []string{game.TopologySquare.String(), game.TopologyHex.String()}
}
