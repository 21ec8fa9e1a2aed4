package engine

import "github.com/lixenwraith/tile-duel/grid"

// NewTestGameState creates a GameState already playing on the board described by rows
// ('#' occupied, '.' empty). Test helper shared by packages driving the core.
func NewTestGameState(rows ...string) *GameState {
	gs := NewGameState()
	gs.StartGameWithGrid(grid.MustParse(rows...))
	return gs
}
