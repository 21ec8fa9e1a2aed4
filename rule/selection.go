// Package rule implements the stateless board rules: selection rectangles,
// validity, elimination and terminal-state detection.
package rule

import (
	"fmt"

	"github.com/lixenwraith/tile-duel/constant"
	"github.com/lixenwraith/tile-duel/grid"
)

// Rect is a normalized, inclusive selection rectangle with LX <= RX and LY <= RY
type Rect struct {
	LX, LY int
	RX, RY int
}

// ComputeRect normalizes two corners into a rectangle. Each axis is ordered
// independently, so the drag direction never matters.
func ComputeRect(anchor, live grid.Cell) Rect {
	r := Rect{LX: anchor.X, LY: anchor.Y, RX: live.X, RY: live.Y}
	if r.LX > r.RX {
		r.LX, r.RX = r.RX, r.LX
	}
	if r.LY > r.RY {
		r.LY, r.RY = r.RY, r.LY
	}
	return r
}

func (r Rect) Width() int  { return r.RX - r.LX + 1 }
func (r Rect) Height() int { return r.RY - r.LY + 1 }
func (r Rect) Area() int   { return r.Width() * r.Height() }

// Contains reports whether c lies inside the rectangle
func (r Rect) Contains(c grid.Cell) bool {
	return r.LX <= c.X && c.X <= r.RX && r.LY <= c.Y && c.Y <= r.RY
}

// Degenerate is true for single-row or single-column rectangles, which are never eliminable
func (r Rect) Degenerate() bool {
	return r.Width() < constant.MinEliminationSpan || r.Height() < constant.MinEliminationSpan
}

// Cells lists every cell in the rectangle in row-major order
func (r Rect) Cells() []grid.Cell {
	cells := make([]grid.Cell, 0, r.Area())
	for y := r.LY; y <= r.RY; y++ {
		for x := r.LX; x <= r.RX; x++ {
			cells = append(cells, grid.Cell{X: x, Y: y})
		}
	}
	return cells
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", r.LX, r.LY, r.RX, r.RY)
}

// Validity is the tri-state result of checking a selection
type Validity uint8

const (
	// ValidityUnknown means no selection is in progress; render it as no highlight
	ValidityUnknown Validity = iota
	ValidityValid
	ValidityInvalid
)

func (v Validity) String() string {
	switch v {
	case ValidityValid:
		return "valid"
	case ValidityInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// IsValid reports whether every cell of r is occupied.
// Counts occupied cells inside r against its area; the set never holds duplicates,
// so equal counts mean full occupancy. A rectangle reaching off the board panics.
func IsValid(g *grid.Grid, r Rect) bool {
	if !g.InBounds(grid.Cell{X: r.LX, Y: r.LY}) || !g.InBounds(grid.Cell{X: r.RX, Y: r.RY}) {
		panic(fmt.Sprintf("rule: selection %s outside %dx%d board", r, g.Size(), g.Size()))
	}
	inside := 0
	g.Each(func(c grid.Cell) {
		if r.Contains(c) {
			inside++
		}
	})
	return inside == r.Area()
}

// Evaluate maps a possibly absent selection to its validity
func Evaluate(g *grid.Grid, r *Rect) Validity {
	if r == nil {
		return ValidityUnknown
	}
	if IsValid(g, *r) {
		return ValidityValid
	}
	return ValidityInvalid
}
