package rule

import (
	"github.com/rs/zerolog"

	"github.com/lixenwraith/tile-duel/grid"
)

// GameOverDetector decides whether any legal move remains on a board
type GameOverDetector struct {
	logger zerolog.Logger
}

// NewGameOverDetector creates a detector logging under the GameOverDetector component
func NewGameOverDetector(logger zerolog.Logger) *GameOverDetector {
	return &GameOverDetector{
		logger: logger.With().Str("component", "GameOverDetector").Logger(),
	}
}

// IsTerminal is true when the board has no fully occupied 2x2 block.
// Every eliminable rectangle contains such a block, so its absence means no move exists.
func (d *GameOverDetector) IsTerminal(g *grid.Grid) bool {
	block, found := FindBlock(g)
	if found {
		d.logger.Debug().Stringer("block", block).Int("occupied", g.Count()).Msg("Move available")
		return false
	}
	d.logger.Debug().Int("occupied", g.Count()).Msg("No 2x2 block left, board is terminal")
	return true
}

// FindBlock returns the top-left cell of the first fully occupied 2x2 block in row-major order
func FindBlock(g *grid.Grid) (grid.Cell, bool) {
	n := g.Size()
	for j := 0; j < n-1; j++ {
		for i := 0; i < n-1; i++ {
			if g.IsOccupied(grid.Cell{X: i, Y: j}) &&
				g.IsOccupied(grid.Cell{X: i + 1, Y: j}) &&
				g.IsOccupied(grid.Cell{X: i, Y: j + 1}) &&
				g.IsOccupied(grid.Cell{X: i + 1, Y: j + 1}) {
				return grid.Cell{X: i, Y: j}, true
			}
		}
	}
	return grid.Cell{}, false
}

// HasMove reports whether at least one rectangle can still be eliminated
func HasMove(g *grid.Grid) bool {
	_, found := FindBlock(g)
	return found
}
