package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/tile-duel/config"
	"github.com/lixenwraith/tile-duel/engine"
)

// options holds command-line flags shared by all subcommands
type options struct {
	configPath string
	fill       float64
	seed       int64
	debug      bool
	color      string
	mute       bool
}

// newRootCmd builds the command tree. The root command plays the game.
func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "tile-duel",
		Short: "Two-player rectangle elimination on a terminal grid",
		Long: `tile-duel is a two-player game on a square grid of tiles.
Players take turns dragging out a rectangle of at least 2x2 tiles that contains
no gaps; those tiles are removed. Whoever makes the last possible move wins.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, opts)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "tile-duel.yaml", "Path to the YAML settings file")
	pf.Float64Var(&opts.fill, "fill", 0, "Probability each cell starts occupied, overrides config")
	pf.Int64Var(&opts.seed, "seed", 0, "Board seed for reproducible games, 0 seeds from the clock")
	pf.BoolVar(&opts.debug, "debug", false, "Write a debug log")
	pf.StringVar(&opts.color, "color", "auto", "Color mode: auto, truecolor, 256")
	pf.BoolVar(&opts.mute, "mute", false, "Disable sound")

	play := &cobra.Command{
		Use:   "play",
		Short: "Play in the terminal (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, opts)
		},
	}

	root.AddCommand(play, newBoardCmd(opts))
	return root
}

// loadConfig reads the settings file and applies flag overrides
func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("fill") {
		cfg.Game.FillProbability = opts.fill
	}
	if flags.Changed("seed") {
		cfg.Game.Seed = opts.seed
	}
	if opts.mute {
		cfg.Audio.Enabled = false
	}

	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}

// firstPlayer converts the validated 1-based seat number
func firstPlayer(cfg *config.Config) engine.Player {
	p, ok := engine.PlayerFromNumber(cfg.Game.FirstPlayer)
	if !ok {
		return engine.PlayerOne
	}
	return p
}
