package tui

import (
	"fmt"
	"sort"

	"gridmage/assets"
	"gridmage/internal/engine"
	"gridmage/internal/entity"
	"gridmage/internal/grid"
	"gridmage/internal/spell"

	"github.com/gdamore/tcell/v2"
)

var elementOrder = []spell.Element{spell.Fire, spell.Water, spell.Earth, spell.Air}
var shapeOrder = []spell.Shape{spell.Ball, spell.Cone, spell.Wall, spell.Self, spell.Summon, spell.RaiseDead}

// Game is the top-level orchestrator: it owns the screen, the engine
// and the latest state snapshot.
type Game struct {
	screen   tcell.Screen
	renderer *Renderer
	engine   *engine.Engine
	state    engine.State
}

// New creates a Game with the screen initialized.
func New(cfg engine.Config, theme Theme) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}

	eng := engine.New(cfg)
	return &Game{
		screen:   screen,
		renderer: NewRenderer(screen, theme),
		engine:   eng,
		state:    eng.State(),
	}, nil
}

// Run is the main loop. Supports consecutive runs via Try Again.
func (g *Game) Run() {
	defer g.screen.Fini()

	for {
		for g.state.Status == engine.Playing {
			g.renderer.DrawFrame(&g.state, nil, nil)
			g.renderer.DrawHUD(&g.state, "")

			ev := g.screen.PollEvent()
			switch ev := ev.(type) {
			case *tcell.EventResize:
				g.screen.Sync()
				continue
			case *tcell.EventKey:
				action := keyToAction(ev)
				if action == ActionQuit || action == ActionCancel {
					return
				}
				g.processAction(action)
			}
		}

		if !g.showEndScreen() {
			return
		}
		g.state = g.engine.Restart()
	}
}

// processAction feeds one player action into the engine.
func (g *Game) processAction(action Action) {
	switch action {
	case ActionFocus:
		g.state = g.engine.Focus()
	case ActionDrinkHealth:
		g.drinkPotion(entity.HealthPotion)
	case ActionDrinkMana:
		g.drinkPotion(entity.ManaPotion)
	case ActionCycleElement:
		g.cycleElement()
	case ActionCycleShape:
		g.cycleShape()
	case ActionTarget:
		g.runTargeting()
	case ActionRestart:
		g.state = g.engine.Restart()
	default:
		if dir, ok := moveDirection(action); ok {
			g.state = g.engine.Move(dir)
		} else if dir, ok := dashDirection(action); ok {
			g.state = g.engine.Dash(dir)
		}
	}
}

// runTargeting is the modal aiming loop: the cursor starts on the
// player, the affected tiles of the selected spell are highlighted
// live, Enter casts and Escape backs out.
func (g *Game) runTargeting() {
	cur := g.state.Player.Position
	for {
		tiles := g.engine.AffectedTiles(cur)
		highlight := make(map[grid.Position]bool, len(tiles))
		for _, p := range tiles {
			highlight[p] = true
		}
		g.renderer.DrawFrame(&g.state, highlight, &cur)
		g.renderer.DrawHUD(&g.state, "Aim with arrows or hjkl. Enter casts, Esc cancels.")

		ev := g.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			g.screen.Sync()
		case *tcell.EventKey:
			switch action := keyToAction(ev); action {
			case ActionConfirm:
				g.state = g.engine.CastSpellAt(cur.X, cur.Y)
				return
			case ActionCancel, ActionTarget, ActionQuit:
				return
			default:
				if dir, ok := moveDirection(action); ok {
					if next := cur.Step(dir); g.state.Grid.InBounds(next) {
						cur = next
					}
				}
			}
		}
	}
}

func (g *Game) drinkPotion(typ entity.ItemType) {
	for _, it := range g.state.Player.Inventory {
		if it.Type == typ {
			g.state = g.engine.UseItem(it.ID)
			return
		}
	}
}

func (g *Game) cycleElement() {
	cur := 0
	for i, el := range elementOrder {
		if el == g.state.Player.SelectedElement {
			cur = i
			break
		}
	}
	for i := 1; i <= len(elementOrder); i++ {
		next := elementOrder[(cur+i)%len(elementOrder)]
		if g.state.Player.UnlockedElements[next] {
			g.state = g.engine.SelectElement(next)
			return
		}
	}
}

func (g *Game) cycleShape() {
	cur := 0
	for i, sh := range shapeOrder {
		if sh == g.state.Player.SelectedShape {
			cur = i
			break
		}
	}
	for i := 1; i <= len(shapeOrder); i++ {
		next := shapeOrder[(cur+i)%len(shapeOrder)]
		if g.state.Player.UnlockedShapes[next] {
			g.state = g.engine.SelectShape(next)
			return
		}
	}
}

// showEndScreen renders the run summary and returns true if the player
// wants to try again, false to quit.
func (g *Game) showEndScreen() bool {
	won := g.state.Status == engine.Victory
	st := g.state.Stats

	// Kill breakdown sorted by count descending.
	type killEntry struct {
		name  string
		count int
	}
	var kills []killEntry
	for typ, cnt := range st.Kills {
		kills = append(kills, killEntry{typ.String(), cnt})
	}
	sort.Slice(kills, func(i, j int) bool {
		if kills[i].count != kills[j].count {
			return kills[i].count > kills[j].count
		}
		return kills[i].name < kills[j].name
	})
	totalKills := 0
	for _, k := range kills {
		totalKills += k.count
	}

	white := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	gold := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	gray := tcell.StyleDefault.Foreground(tcell.ColorGray)
	dim := tcell.StyleDefault.Foreground(tcell.ColorLightYellow)
	green := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	red := tcell.StyleDefault.Foreground(tcell.ColorRed)

	for {
		g.screen.Clear()
		sw, _ := g.screen.Size()

		sep := func(y int) {
			for x := 0; x < sw; x++ {
				g.screen.SetContent(x, y, '─', nil, gray)
			}
		}
		label := func(y int, l, v string) {
			g.renderer.drawText(2, y, l, dim)
			g.renderer.drawText(22, y, v, white)
		}

		y := 1
		sep(y)
		y += 2

		if won {
			g.renderer.drawText(2, y, "THE FIELD LIES QUIET", gold)
			badge := "[VICTORY]"
			g.renderer.drawText(sw-len(badge)-1, y, badge, green)
		} else {
			g.renderer.drawText(2, y, "THE HORDE OVERRUNS YOU", gold)
			badge := "[DEFEAT]"
			g.renderer.drawText(sw-len(badge)-1, y, badge, red)
		}
		y += 2

		label(y, "Wave Reached:", fmt.Sprintf("%d of %d", g.state.Wave, len(assets.Waves)))
		y++
		label(y, "Level:", fmt.Sprintf("%d", g.state.Player.Level))
		y++
		label(y, "Turns Survived:", fmt.Sprintf("%d", st.Turns))
		y += 2

		label(y, "Enemies Slain:", fmt.Sprintf("%d", totalKills))
		y++
		if len(kills) > 0 {
			breakdown := ""
			for _, k := range kills {
				breakdown += fmt.Sprintf("%s×%d  ", k.name, k.count)
			}
			g.renderer.drawText(4, y, breakdown, dim)
			y++
		}
		y++

		label(y, "Damage Dealt:", fmt.Sprintf("%d", st.DamageDealt))
		y++
		label(y, "Damage Taken:", fmt.Sprintf("%d", st.DamageTaken))
		y += 2

		sep(y)
		y += 2

		g.renderer.drawText(2, y, "[R] Try Again", green)
		g.renderer.drawText(18, y, "[Q] Quit", red)

		g.screen.Show()

		ev := g.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			g.screen.Sync()
			continue
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyRune:
				switch ev.Rune() {
				case 'r', 'R':
					return true
				case 'q', 'Q':
					return false
				}
			case tcell.KeyEscape:
				return false
			}
		}
	}
}
