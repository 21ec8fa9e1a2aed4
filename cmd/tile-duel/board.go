package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/tile-duel/config"
	"github.com/lixenwraith/tile-duel/constant"
	"github.com/lixenwraith/tile-duel/grid"
	"github.com/lixenwraith/tile-duel/rule"
)

func newBoardCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Print a generated board and whether it has a move",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}

			logFile, logger := setupLogging(opts.debug, cfg.Log.Path, cfg.Log.Level)
			if logFile != nil {
				defer logFile.Close()
			}

			g, err := grid.Generate(cfg.Game.FillProbability, constant.GridSize, grid.NewRand(cfg.Game.Seed))
			if err != nil {
				return err
			}

			detector := rule.NewGameOverDetector(logger)
			printBoard(cmd.OutOrStdout(), cfg, g, detector.IsTerminal(g))
			return nil
		},
	}

	return cmd
}

// printBoard writes the board, tile count, status and the first eliminable 2x2 block
func printBoard(w io.Writer, cfg *config.Config, g *grid.Grid, terminal bool) {
	n := g.Size()
	fmt.Fprint(w, g.String())
	fmt.Fprintf(w, "Occupied: %d/%d (fill %.2f)\n", g.Count(), n*n, cfg.Game.FillProbability)

	if terminal {
		fmt.Fprintln(w, "Status: no moves available")
		return
	}
	fmt.Fprintf(w, "Status: playable, %s moves first\n", cfg.PlayerName(firstPlayer(cfg).Index()))
	if c, ok := rule.FindBlock(g); ok {
		fmt.Fprintf(w, "Hint: 2x2 block at %s\n", c)
	}
}
