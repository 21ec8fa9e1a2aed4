package render

import (
	"github.com/lixenwraith/tile-duel/constant"
	"github.com/lixenwraith/tile-duel/grid"
)

// Layout maps between screen coordinates and grid cells.
// The arena is centered in the screen area above the status bar.
type Layout struct {
	size    int
	originX int
	originY int
	screenW int
	screenH int
}

// NewLayout computes the arena placement for an n x n board on a screenW x screenH terminal
func NewLayout(screenW, screenH, n int) Layout {
	arenaW := n * constant.CellWidth
	arenaH := n * constant.CellHeight
	usableH := screenH - constant.StatusBarHeight

	ox := (screenW - arenaW) / 2
	oy := (usableH - arenaH) / 2
	if ox < 0 {
		ox = 0
	}
	if oy < 0 {
		oy = 0
	}

	return Layout{
		size:    n,
		originX: ox,
		originY: oy,
		screenW: screenW,
		screenH: screenH,
	}
}

// Size returns the board dimension the layout was built for
func (l Layout) Size() int {
	return l.size
}

// ArenaBounds returns the top-left screen position and extent of the arena
func (l Layout) ArenaBounds() (x, y, w, h int) {
	return l.originX, l.originY, l.size * constant.CellWidth, l.size * constant.CellHeight
}

// CellAt returns the grid cell under screen position (sx, sy); ok is false outside the arena
func (l Layout) CellAt(sx, sy int) (grid.Cell, bool) {
	x, y, w, h := l.ArenaBounds()
	if sx < x || sy < y || sx >= x+w || sy >= y+h {
		return grid.Cell{}, false
	}
	return grid.Cell{
		X: (sx - x) / constant.CellWidth,
		Y: (sy - y) / constant.CellHeight,
	}, true
}

// Clamp returns the nearest grid cell to (sx, sy), used for drags that leave the arena
func (l Layout) Clamp(sx, sy int) grid.Cell {
	x, y, _, _ := l.ArenaBounds()
	return grid.Cell{
		X: clampIndex(floorDiv(sx-x, constant.CellWidth), l.size),
		Y: clampIndex(floorDiv(sy-y, constant.CellHeight), l.size),
	}
}

// Origin returns the screen position of the top-left terminal cell of c
func (l Layout) Origin(c grid.Cell) (sx, sy int) {
	return l.originX + c.X*constant.CellWidth, l.originY + c.Y*constant.CellHeight
}

// Fits reports whether the whole arena plus status bar is visible
func (l Layout) Fits() bool {
	_, _, w, h := l.ArenaBounds()
	return w <= l.screenW && h+constant.StatusBarHeight <= l.screenH
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
