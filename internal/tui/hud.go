package tui

import (
	"fmt"

	"gridmage/assets"
	"gridmage/internal/engine"
	"gridmage/internal/entity"

	"github.com/gdamore/tcell/v2"
)

// DrawHUD renders the status bars and message log at the bottom of the
// screen. hint replaces the default key help, used by targeting mode.
func (r *Renderer) DrawHUD(s *engine.State, hint string) {
	_, screenH := r.screen.Size()
	hudY := screenH - hudRows

	r.drawHLine(hudY, tcell.ColorGray)

	dash := "ready"
	if s.Player.DashCooldown > 0 {
		dash = fmt.Sprintf("%d", s.Player.DashCooldown)
	}
	statusLine := fmt.Sprintf("[Wave %d/%d]  HP: %d/%d  MP: %d/%d  Lv:%d  XP:%d/%d  Dash:%s",
		s.Wave, len(assets.Waves),
		s.Player.Health, s.Player.MaxHealth,
		s.Player.Mana, s.Player.MaxMana,
		s.Player.Level, s.Player.XP, s.Player.XPToNext, dash)
	r.drawText(0, hudY+1, statusLine, tcell.StyleDefault.Foreground(tcell.ColorWhite))

	if hint == "" {
		health, mana := 0, 0
		for _, it := range s.Player.Inventory {
			if it.Type == entity.HealthPotion {
				health++
			} else {
				mana++
			}
		}
		hint = fmt.Sprintf("Spell: %s %s (%d mp)  %s x%d  %s x%d   [c]ast [f]ocus [e]lem [s]hape [1][2] drink [q]uit",
			s.Player.SelectedElement, s.Player.SelectedShape,
			assets.ShapeManaCost[s.Player.SelectedShape],
			r.theme.HealthPotion, health, r.theme.ManaPotion, mana)
	}
	r.drawText(0, hudY+2, hint, tcell.StyleDefault.Foreground(tcell.ColorAqua))

	// Message log (last 3 entries).
	start := len(s.Log) - 3
	if start < 0 {
		start = 0
	}
	for i, msg := range s.Log[start:] {
		r.drawText(0, hudY+3+i, msg, tcell.StyleDefault.Foreground(tcell.ColorLightYellow))
	}

	r.screen.Show()
}
