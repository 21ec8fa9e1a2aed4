// Package grid holds the square occupancy board and its random generator.
package grid

import (
	"fmt"
	"strings"

	"github.com/zyedidia/generic/mapset"
)

// Cell is a board coordinate, X is the column and Y the row
type Cell struct {
	X, Y int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Grid is an N x N board storing the set of occupied cells.
// Cells are only ever removed after the generator fills it.
type Grid struct {
	size     int
	occupied mapset.Set[Cell]
}

// New creates an empty grid of dimension n
func New(n int) *Grid {
	if n < 1 {
		panic(fmt.Sprintf("grid: invalid dimension %d", n))
	}
	return &Grid{
		size:     n,
		occupied: mapset.New[Cell](),
	}
}

// Size returns the dimension N
func (g *Grid) Size() int {
	return g.size
}

// InBounds reports whether c lies within [0, N)²
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.size && c.Y >= 0 && c.Y < g.size
}

func (g *Grid) mustInBounds(op string, c Cell) {
	if !g.InBounds(c) {
		panic(fmt.Sprintf("grid: %s: cell %s outside %dx%d board", op, c, g.size, g.size))
	}
}

// IsOccupied reports whether c is still on the board
func (g *Grid) IsOccupied(c Cell) bool {
	g.mustInBounds("IsOccupied", c)
	return g.occupied.Has(c)
}

// Put marks c occupied. Only the generator and fixtures build boards this way.
func (g *Grid) Put(c Cell) {
	g.mustInBounds("Put", c)
	g.occupied.Put(c)
}

// Remove clears every given cell; absent cells are ignored
func (g *Grid) Remove(cells ...Cell) {
	for _, c := range cells {
		g.mustInBounds("Remove", c)
		g.occupied.Remove(c)
	}
}

// Count returns the number of occupied cells
func (g *Grid) Count() int {
	return g.occupied.Size()
}

// Each calls fn for every occupied cell in unspecified order
func (g *Grid) Each(fn func(c Cell)) {
	g.occupied.Each(fn)
}

// OccupiedCells returns a row-major copy of the occupied set
func (g *Grid) OccupiedCells() []Cell {
	cells := make([]Cell, 0, g.occupied.Size())
	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			c := Cell{X: x, Y: y}
			if g.occupied.Has(c) {
				cells = append(cells, c)
			}
		}
	}
	return cells
}

// Clone returns an independent copy
func (g *Grid) Clone() *Grid {
	clone := New(g.size)
	g.occupied.Each(func(c Cell) {
		clone.occupied.Put(c)
	})
	return clone
}

// String renders the board with '#' for occupied and '.' for empty, row 0 first
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.size * (g.size + 1))
	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			if g.occupied.Has(Cell{X: x, Y: y}) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Parse builds a grid from rows of '#' (occupied) and '.' (empty).
// All rows must have the same length as the number of rows.
func Parse(rows ...string) (*Grid, error) {
	n := len(rows)
	if n == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidSize)
	}
	g := New(n)
	for y, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidSize, y, len(row), n)
		}
		for x, ch := range row {
			switch ch {
			case '#':
				g.occupied.Put(Cell{X: x, Y: y})
			case '.':
			default:
				return nil, fmt.Errorf("grid: row %d: unexpected %q", y, ch)
			}
		}
	}
	return g, nil
}

// MustParse is Parse for fixtures, it panics on malformed input
func MustParse(rows ...string) *Grid {
	g, err := Parse(rows...)
	if err != nil {
		panic(err)
	}
	return g
}
