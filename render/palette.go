package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tile-duel/constant"
)

// Palette holds the colors the renderer paints with
type Palette struct {
	Tile       tcell.Color
	Hover      tcell.Color
	Selected   tcell.Color
	Invalid    tcell.Color
	Background tcell.Color
	Text       tcell.Color
	WinText    tcell.Color
}

// DefaultPalette returns the built-in colors
func DefaultPalette() Palette {
	return Palette{
		Tile:       constant.RgbTile,
		Hover:      constant.RgbHover,
		Selected:   constant.RgbSelected,
		Invalid:    constant.RgbInvalid,
		Background: constant.RgbBackground,
		Text:       constant.RgbStatusText,
		WinText:    constant.RgbWinText,
	}
}

func (p Palette) style(fg tcell.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(fg).Background(p.Background)
}
