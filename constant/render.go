package constant

import "github.com/gdamore/tcell/v2"

// Arena geometry in terminal cells
const (
	// CellWidth is the number of terminal columns per grid cell
	CellWidth = 4

	// CellHeight is the number of terminal rows per grid cell
	CellHeight = 2

	// TileWidth and TileHeight are the drawn tile footprint inside a cell, the rest is gap
	TileWidth  = 3
	TileHeight = 1

	// StatusBarHeight is reserved at the bottom of the screen
	StatusBarHeight = 1

	// ArenaPadding is the blank border kept around the arena
	ArenaPadding = 1
)

// Glyphs
const (
	TileRune  = '█'
	HoverRune = '▓'
)

// Default palette, overridable from config
var (
	RgbTile       = tcell.NewRGBColor(192, 192, 192) // Silver
	RgbHover      = tcell.NewRGBColor(255, 255, 255) // White
	RgbSelected   = tcell.NewRGBColor(255, 255, 255) // White
	RgbInvalid    = tcell.NewRGBColor(255, 0, 0)     // Red
	RgbBackground = tcell.NewRGBColor(58, 58, 58)    // Dark gray
	RgbStatusText = tcell.NewRGBColor(220, 220, 220)
	RgbWinText    = tcell.NewRGBColor(255, 215, 0) // Gold
)

// SelectionGapRune marks empty cells covered by the current selection
const SelectionGapRune = '·'
