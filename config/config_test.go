package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tile-duel.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Game.FillProbability != 0.8 {
		t.Errorf("Expected default fill 0.8, got %v", cfg.Game.FillProbability)
	}
	if cfg.PlayerName(0) != "Player 1" || cfg.PlayerName(1) != "Player 2" {
		t.Errorf("Unexpected default names %q / %q", cfg.PlayerName(0), cfg.PlayerName(1))
	}
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
game:
  fill_probability: 0.65
  seed: 17
  first_player: 2
players:
  one: Ada
audio:
  enabled: false
theme:
  invalid: "#aa0000"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Game.FillProbability != 0.65 || cfg.Game.Seed != 17 || cfg.Game.FirstPlayer != 2 {
		t.Errorf("Unexpected game section %+v", cfg.Game)
	}
	if cfg.Players.One != "Ada" || cfg.Players.Two != "Player 2" {
		t.Errorf("Unexpected players %+v", cfg.Players)
	}
	if cfg.Audio.Enabled {
		t.Error("Expected audio disabled")
	}
	if cfg.Audio.Volume != 0.8 {
		t.Errorf("Expected untouched default volume, got %v", cfg.Audio.Volume)
	}
	if cfg.Theme.Invalid != "#aa0000" || cfg.Theme.Tile != "#c0c0c0" {
		t.Errorf("Unexpected theme %+v", cfg.Theme)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantError string
	}{
		{"malformed yaml", "game: [", "failed to parse"},
		{"probability", "game:\n  fill_probability: 1.2\n", "fill_probability"},
		{"first player", "game:\n  first_player: 3\n", "first_player"},
		{"volume", "audio:\n  volume: -1\n", "audio.volume"},
		{"color", "theme:\n  tile: \"#zzzzzz\"\n", "theme.tile"},
		{"log level", "log:\n  level: loud\n", "log.level"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.body))
			if err == nil {
				t.Fatal("Expected error")
			}
			if !strings.Contains(err.Error(), tc.wantError) {
				t.Errorf("Expected error containing %q, got %v", tc.wantError, err)
			}
		})
	}
}

func TestValidate_Defaults(t *testing.T) {
	if err := Validate(Default()); err != nil {
		t.Errorf("Expected defaults to validate, got %v", err)
	}
}

func TestValidate_RejectsNaN(t *testing.T) {
	path := writeConfig(t, "game:\n  fill_probability: .nan\n")
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "fill_probability") {
		t.Errorf("Expected fill_probability error for NaN, got %v", err)
	}

	cfg := Default()
	cfg.Audio.Volume = math.NaN()
	if err := Validate(cfg); err == nil {
		t.Error("Expected NaN volume to fail validation")
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#ff0000")
	if err != nil {
		t.Fatalf("ParseColor: %v", err)
	}
	if c != tcell.NewRGBColor(255, 0, 0) {
		t.Errorf("Expected pure red, got %v", c)
	}

	if _, err := ParseColor("silver"); err != nil {
		t.Errorf("Expected named color to parse, got %v", err)
	}
	if _, err := ParseColor(""); err == nil {
		t.Error("Expected empty color to fail")
	}
}
