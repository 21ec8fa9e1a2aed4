package rule

import "github.com/lixenwraith/tile-duel/grid"

// AttemptEliminate removes every cell of r from g when the selection is valid and
// at least 2x2. Returns whether the board changed.
func AttemptEliminate(g *grid.Grid, r Rect, v Validity) bool {
	if v != ValidityValid {
		return false
	}
	// 1xk and kx1 strips stay on the board even when fully occupied
	if r.Degenerate() {
		return false
	}
	g.Remove(r.Cells()...)
	return true
}
