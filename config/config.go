// Package config loads the tile-duel settings file.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/tile-duel/constant"
)

// Config is the top-level structure of tile-duel.yaml
type Config struct {
	// Game controls board generation and turn order.
	Game GameConfig `yaml:"game"`
	// Players holds display names.
	Players PlayersConfig `yaml:"players"`
	// Audio configures sound feedback.
	Audio AudioConfig `yaml:"audio"`
	// Theme holds the tile palette as "#rrggbb" or tcell color names.
	Theme ThemeConfig `yaml:"theme"`
	// Log configures the debug log file.
	Log LogConfig `yaml:"log"`
}

// GameConfig controls board generation and who opens
type GameConfig struct {
	// FillProbability is the chance each cell starts occupied, within [0, 1].
	FillProbability float64 `yaml:"fill_probability"`
	// Seed makes boards reproducible; 0 seeds from the clock.
	Seed int64 `yaml:"seed"`
	// FirstPlayer is the 1-based seat that moves first.
	FirstPlayer int `yaml:"first_player"`
}

// PlayersConfig holds player display names
type PlayersConfig struct {
	One string `yaml:"one"`
	Two string `yaml:"two"`
}

// AudioConfig configures sound feedback
type AudioConfig struct {
	Enabled bool `yaml:"enabled"`
	// Volume is the master volume within [0, 1].
	Volume float64 `yaml:"volume"`
}

// ThemeConfig is the renderer palette
type ThemeConfig struct {
	Tile       string `yaml:"tile"`
	Hover      string `yaml:"hover"`
	Selected   string `yaml:"selected"`
	Invalid    string `yaml:"invalid"`
	Background string `yaml:"background"`
}

// LogConfig configures the debug log
type LogConfig struct {
	// Path is the log file written when debug logging is on.
	Path string `yaml:"path"`
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		Game: GameConfig{
			FillProbability: constant.DefaultFillProbability,
			FirstPlayer:     1,
		},
		Players: PlayersConfig{
			One: constant.DefaultPlayerOneName,
			Two: constant.DefaultPlayerTwoName,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.8,
		},
		Theme: ThemeConfig{
			Tile:       "#c0c0c0",
			Hover:      "#ffffff",
			Selected:   "#ffffff",
			Invalid:    "#ff0000",
			Background: "#3a3a3a",
		},
		Log: LogConfig{
			Path:  constant.LogDir + "/" + constant.LogFileName,
			Level: "info",
		},
	}
}

// Load reads path over the defaults. A missing file yields the defaults;
// unreadable, malformed or invalid files are errors.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks ranges and color values
func Validate(cfg *Config) error {
	if p := cfg.Game.FillProbability; math.IsNaN(p) || p < 0 || p > 1 {
		return fmt.Errorf("game.fill_probability %v is outside [0, 1]", p)
	}
	if cfg.Game.FirstPlayer != 1 && cfg.Game.FirstPlayer != 2 {
		return fmt.Errorf("game.first_player %d must be 1 or 2", cfg.Game.FirstPlayer)
	}
	if v := cfg.Audio.Volume; math.IsNaN(v) || v < 0 || v > 1 {
		return fmt.Errorf("audio.volume %v is outside [0, 1]", v)
	}

	colors := []struct {
		key, value string
	}{
		{"theme.tile", cfg.Theme.Tile},
		{"theme.hover", cfg.Theme.Hover},
		{"theme.selected", cfg.Theme.Selected},
		{"theme.invalid", cfg.Theme.Invalid},
		{"theme.background", cfg.Theme.Background},
	}
	for _, c := range colors {
		if _, err := ParseColor(c.value); err != nil {
			return fmt.Errorf("%s: %w", c.key, err)
		}
	}

	switch strings.ToLower(cfg.Log.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log.level: %s (allowed: debug, info, warn, error)", cfg.Log.Level)
	}
	return nil
}

// ParseColor accepts "#rrggbb" or a tcell color name
func ParseColor(s string) (tcell.Color, error) {
	c := tcell.GetColor(strings.TrimSpace(s))
	if c == tcell.ColorDefault {
		return c, fmt.Errorf("unrecognized color %q", s)
	}
	return c, nil
}

// PlayerName returns the display name for a 0-based player index
func (c *Config) PlayerName(index int) string {
	if index == 1 {
		return c.Players.Two
	}
	return c.Players.One
}
