// Package render draws the board, selection and status bar onto a tcell screen.
package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/zyedidia/generic/mapset"

	"github.com/lixenwraith/tile-duel/constant"
	"github.com/lixenwraith/tile-duel/engine"
	"github.com/lixenwraith/tile-duel/grid"
	"github.com/lixenwraith/tile-duel/rule"
)

// Renderer paints engine snapshots. Draw must be called from the goroutine that owns the screen.
type Renderer struct {
	screen  tcell.Screen
	palette Palette
	names   [constant.PlayerCount]string
}

// NewRenderer creates a renderer; empty names fall back to "Player N"
func NewRenderer(screen tcell.Screen, palette Palette, names [constant.PlayerCount]string) *Renderer {
	return &Renderer{
		screen:  screen,
		palette: palette,
		names:   names,
	}
}

// PlayerName returns the display name for p
func (r *Renderer) PlayerName(p engine.Player) string {
	if name := r.names[p.Index()]; name != "" {
		return name
	}
	return p.String()
}

// Draw renders one frame and returns the layout used, for mapping mouse input back to cells
func (r *Renderer) Draw(snap engine.Snapshot) Layout {
	w, h := r.screen.Size()
	layout := NewLayout(w, h, snap.Size)
	textStyle := r.palette.style(r.palette.Text)

	r.screen.Fill(' ', textStyle)

	switch {
	case snap.Size == 0:
		drawCentered(r.screen, h/2, w, "No game running, press n to start", textStyle)
	case !layout.Fits():
		drawCentered(r.screen, h/2, w, "Terminal too small", r.palette.style(r.palette.Invalid))
	default:
		r.drawBoard(layout, snap)
		r.drawBanner(layout, snap)
		r.drawStatus(w, h, snap)
	}

	r.screen.Show()
	return layout
}

func (r *Renderer) drawBoard(layout Layout, snap engine.Snapshot) {
	occupied := mapset.New[grid.Cell]()
	for _, c := range snap.Cells {
		occupied.Put(c)
	}

	// Validity is unknown only before the first recompute; nothing is highlighted then
	highlight := snap.Selecting && snap.Validity != rule.ValidityUnknown
	selColor := r.palette.Selected
	if snap.Validity == rule.ValidityInvalid {
		selColor = r.palette.Invalid
	}

	occupied.Each(func(c grid.Cell) {
		fg, glyph := r.palette.Tile, constant.TileRune
		switch {
		case highlight && snap.Selection.Contains(c):
			fg = selColor
		case !snap.Selecting && snap.HasHover && snap.Hover == c && snap.Phase != engine.PhaseGameOver:
			fg, glyph = r.palette.Hover, constant.HoverRune
		}
		r.drawTile(layout, c, glyph, r.palette.style(fg))
	})

	if !highlight {
		return
	}
	gapStyle := r.palette.style(selColor)
	for _, c := range snap.Selection.Cells() {
		if occupied.Has(c) {
			continue
		}
		sx, sy := layout.Origin(c)
		r.screen.SetContent(sx+constant.TileWidth/2, sy+constant.TileHeight/2, constant.SelectionGapRune, nil, gapStyle)
	}
}

func (r *Renderer) drawTile(layout Layout, c grid.Cell, glyph rune, style tcell.Style) {
	sx, sy := layout.Origin(c)
	for dy := 0; dy < constant.TileHeight; dy++ {
		for dx := 0; dx < constant.TileWidth; dx++ {
			r.screen.SetContent(sx+dx, sy+dy, glyph, nil, style)
		}
	}
}

// drawBanner shows the result above the arena once the game is over
func (r *Renderer) drawBanner(layout Layout, snap engine.Snapshot) {
	if snap.Phase != engine.PhaseGameOver {
		return
	}

	var text string
	if snap.HasWinner {
		text = fmt.Sprintf("%s wins!", r.PlayerName(snap.Winner))
	} else {
		text = "No moves available"
	}

	w, _ := r.screen.Size()
	_, y, _, _ := layout.ArenaBounds()
	row := y - 1
	if row < 0 {
		row = 0
	}
	drawCentered(r.screen, row, w, text, r.palette.style(r.palette.WinText).Bold(true))
}

func (r *Renderer) drawStatus(w, h int, snap engine.Snapshot) {
	row := h - constant.StatusBarHeight
	style := r.palette.style(r.palette.Text)

	var left string
	if snap.Phase == engine.PhaseGameOver {
		left = "Game over  n: new game  q: quit"
	} else {
		left = fmt.Sprintf("%s to move", r.PlayerName(snap.Current))
	}
	x := drawText(r.screen, 1, row, w, left, style)

	right := fmt.Sprintf("moves: %d  game %s", snap.Moves, shortID(snap))
	if rx := w - 1 - len(right); rx > x+1 {
		drawText(r.screen, rx, row, w, right, style)
	}
}

func shortID(snap engine.Snapshot) string {
	id := snap.GameID.String()
	return id[:8]
}
