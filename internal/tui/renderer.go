package tui

import (
	"gridmage/internal/engine"
	"gridmage/internal/entity"
	"gridmage/internal/grid"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// hudRows is reserved at the bottom of the screen for the HUD.
const hudRows = 6

// Renderer draws the battlefield onto a tcell screen. The board is
// fixed-size, so instead of a scrolling camera it is centered in the
// space left above the HUD, two terminal columns per tile.
type Renderer struct {
	screen  tcell.Screen
	theme   Theme
	originX int
	originY int
}

func NewRenderer(screen tcell.Screen, theme Theme) *Renderer {
	return &Renderer{screen: screen, theme: theme}
}

// layout recomputes the board origin from the current screen size.
func (r *Renderer) layout() {
	w, h := r.screen.Size()
	r.originX = (w - grid.Size*2) / 2
	r.originY = (h - hudRows - grid.Size) / 2
	if r.originX < 0 {
		r.originX = 0
	}
	if r.originY < 0 {
		r.originY = 0
	}
}

func (r *Renderer) worldToScreen(p grid.Position) (int, int) {
	return r.originX + p.X*2, r.originY + p.Y
}

// DrawFrame renders tiles, overlays and units. Tiles in highlight get
// a tinted background; cursor, when non-nil, marks the targeted tile.
func (r *Renderer) DrawFrame(s *engine.State, highlight map[grid.Position]bool, cursor *grid.Position) {
	r.screen.Clear()
	r.layout()

	for y := 0; y < grid.Size; y++ {
		for x := 0; x < grid.Size; x++ {
			p := grid.Position{X: x, Y: y}
			glyph := r.theme.tileGlyph(s.Grid.At(p))
			if it, ok := s.Items[p]; ok {
				glyph = r.theme.itemGlyph(it.Type)
			}
			if fx, ok := s.TerrainEffects[p]; ok && fx.Type == entity.Burning {
				glyph = r.theme.Burning
			}
			style := tcell.StyleDefault.Background(tcell.ColorBlack)
			if highlight[p] {
				style = style.Background(tcell.ColorDarkRed)
			}
			if cursor != nil && *cursor == p {
				style = style.Background(tcell.ColorDarkBlue)
			}
			sx, sy := r.worldToScreen(p)
			r.putGlyph(sx, sy, glyph, style)
		}
	}

	for _, m := range s.Minions {
		r.drawUnit(m.Position, r.theme.minionGlyph(m), highlight, cursor)
	}
	for _, en := range s.Enemies {
		r.drawUnit(en.Position, r.theme.enemyGlyph(en.Type), highlight, cursor)
	}
	r.drawUnit(s.Player.Position, r.theme.Player, highlight, cursor)
}

func (r *Renderer) drawUnit(p grid.Position, glyph string, highlight map[grid.Position]bool, cursor *grid.Position) {
	style := tcell.StyleDefault.Background(tcell.ColorBlack)
	if highlight[p] {
		style = style.Background(tcell.ColorDarkRed)
	}
	if cursor != nil && *cursor == p {
		style = style.Background(tcell.ColorDarkBlue)
	}
	sx, sy := r.worldToScreen(p)
	r.putGlyph(sx, sy, glyph, style)
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen
// position (x, y), padding to two columns so the board stays aligned.
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, mainc, combc, style)
	// Fill the second column: clears double-width artifacts and keeps
	// narrow glyphs on the two-column cell raster.
	r.screen.SetContent(x+1, y, ' ', nil, style)
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += runewidth.RuneWidth(ch)
	}
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}
