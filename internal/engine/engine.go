// Package engine is the turn engine: the player-facing actions, the
// fixed-order resolution pipeline they trigger, and the authoritative
// state snapshot the pipeline commits. One engine runs one game; it is
// not safe for concurrent use.
package engine

import (
	"math/rand"
	"time"

	"gridmage/assets"
	"gridmage/internal/entity"
	"gridmage/internal/grid"
	"gridmage/internal/spell"
)

// Config selects the run's random stream. Seed 0 seeds from the clock.
type Config struct {
	Seed int64
}

// Engine owns the authoritative state and the run's random source.
// Every action either returns the state unchanged or commits exactly
// one new snapshot.
type Engine struct {
	state  State
	rng    *rand.Rand
	nextID entity.ID
}

// New starts a run at wave 1.
func New(cfg Config) *Engine {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	e := &Engine{rng: rand.New(rand.NewSource(seed))}
	e.state = e.newRun()
	return e
}

// State returns a deep copy of the current snapshot.
func (e *Engine) State() State {
	return e.state.Clone()
}

// Move walks one tile. Facing always updates and a turn always
// resolves; the step itself is blocked by the grid edge, obstacles and
// corpses. Walking onto an item tile picks the item up.
func (e *Engine) Move(dir grid.Direction) State {
	if e.state.Status != Playing {
		return e.State()
	}
	s := e.state.Clone()
	s.Player.Facing = dir
	dest := s.Player.Position.Step(dir)
	if s.Grid.InBounds(dest) && enterable(s.Grid.At(dest)) {
		s.Player.Position = dest
		if item, ok := s.Items[dest]; ok {
			delete(s.Items, dest)
			s.Grid.Set(dest, grid.TileEmpty)
			s.Player.Inventory = append(s.Player.Inventory, item)
			s.appendLog("You pick up a %s.", item.Type)
		}
	}
	e.resolveTurn(&s, false)
	e.state = s
	return e.State()
}

// Dash moves up to three tiles in one turn. Without the mana or with
// the cooldown running it is a complete no-op: no turn, no state
// change. The dash stops early at the first blocked tile and never
// picks up items.
func (e *Engine) Dash(dir grid.Direction) State {
	if e.state.Status != Playing {
		return e.State()
	}
	if e.state.Player.Mana < assets.DashManaCost || e.state.Player.DashCooldown > 0 {
		return e.State()
	}
	s := e.state.Clone()
	s.Player.Facing = dir
	for i := 0; i < assets.DashDistance; i++ {
		next := s.Player.Position.Step(dir)
		if !s.Grid.InBounds(next) || !enterable(s.Grid.At(next)) {
			break
		}
		s.Player.Position = next
	}
	s.Player.Mana -= assets.DashManaCost
	s.Player.DashCooldown = assets.DashCooldown
	s.appendLog("You dash %s.", dir)
	e.resolveTurn(&s, false)
	e.state = s
	return e.State()
}

// UseItem drinks a potion from the inventory. An unknown ID is a
// no-op without a turn.
func (e *Engine) UseItem(id entity.ID) State {
	if e.state.Status != Playing {
		return e.State()
	}
	s := e.state.Clone()
	item, ok := s.Player.TakeItem(id)
	if !ok {
		return e.State()
	}
	switch item.Type {
	case entity.HealthPotion:
		s.Player.Heal(assets.PotionHealAmount)
		s.appendLog("The health potion knits your wounds.")
	case entity.ManaPotion:
		s.Player.RestoreMana(assets.PotionManaAmount)
		s.appendLog("The mana potion crackles through you.")
	}
	e.resolveTurn(&s, false)
	e.state = s
	return e.State()
}

// Focus passes the turn and channels mana: cleanup regenerates the
// larger focus amount.
func (e *Engine) Focus() State {
	if e.state.Status != Playing {
		return e.State()
	}
	s := e.state.Clone()
	s.appendLog("You steady your breathing.")
	e.resolveTurn(&s, true)
	e.state = s
	return e.State()
}

// Wait is Focus under another name.
func (e *Engine) Wait() State {
	return e.Focus()
}

// SelectElement switches the active element. Locked elements are
// ignored. Never costs a turn.
func (e *Engine) SelectElement(el spell.Element) State {
	if e.state.Status != Playing || !e.state.Player.UnlockedElements[el] {
		return e.State()
	}
	s := e.state.Clone()
	s.Player.SelectedElement = el
	e.state = s
	return e.State()
}

// SelectShape switches the active shape. Locked shapes are ignored.
// Never costs a turn.
func (e *Engine) SelectShape(sh spell.Shape) State {
	if e.state.Status != Playing || !e.state.Player.UnlockedShapes[sh] {
		return e.State()
	}
	s := e.state.Clone()
	s.Player.SelectedShape = sh
	e.state = s
	return e.State()
}

// Restart discards the run and starts over at wave 1. It works from
// any status. The random stream continues where it left off.
func (e *Engine) Restart() State {
	e.state = e.newRun()
	return e.State()
}

// AffectedTiles previews the tiles the current loadout would touch
// when cast at target. Read-only; works in any status.
func (e *Engine) AffectedTiles(target grid.Position) []grid.Position {
	p := &e.state.Player
	return spell.AffectedTiles(p.SelectedShape, target, p.Position, p.Facing)
}

// enterable reports whether the player may step onto a tile type.
func enterable(t grid.TileType) bool {
	return t != grid.TileObstacle && t != grid.TileCorpse
}

func (e *Engine) mintID() entity.ID {
	e.nextID++
	return e.nextID
}

// newRun builds the wave-1 state. The ID sequence restarts with the
// run.
func (e *Engine) newRun() State {
	e.nextID = 0
	s := State{
		Player: entity.Player{
			Position:         assets.PlayerStart,
			Health:           assets.PlayerMaxHealth,
			MaxHealth:        assets.PlayerMaxHealth,
			Mana:             assets.PlayerMaxMana,
			MaxMana:          assets.PlayerMaxMana,
			Level:            1,
			XPToNext:         assets.XPBase,
			UnlockedElements: make(map[spell.Element]bool),
			UnlockedShapes:   make(map[spell.Shape]bool),
			Facing:           assets.PlayerStartFacing,
		},
		Wave:   1,
		Status: Playing,
		Stats:  Stats{Kills: make(map[entity.EnemyType]int)},
	}
	for _, el := range assets.StartingElements {
		s.Player.UnlockedElements[el] = true
	}
	for _, sh := range assets.StartingShapes {
		s.Player.UnlockedShapes[sh] = true
	}
	s.Player.SelectedElement = assets.StartingElements[0]
	s.Player.SelectedShape = assets.StartingShapes[0]
	e.spawnWave(&s, assets.Waves[1])
	s.appendLog("Wave 1. The horde closes in.")
	return s
}
