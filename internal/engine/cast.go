package engine

import (
	"gridmage/assets"
	"gridmage/internal/combat"
	"gridmage/internal/entity"
	"gridmage/internal/grid"
	"gridmage/internal/spell"
)

// CastSpellAt casts the selected element and shape at the target tile.
// Out-of-bounds targets, missing mana, a blocked summon tile or a
// corpseless raise are all no-ops without a turn. Everything else
// deducts the shape's mana and resolves a full turn, whether or not
// anything was hit.
func (e *Engine) CastSpellAt(x, y int) State {
	if e.state.Status != Playing {
		return e.State()
	}
	target := grid.Position{X: x, Y: y}
	if !e.state.Grid.InBounds(target) {
		return e.State()
	}
	shape := e.state.Player.SelectedShape
	cost := assets.ShapeManaCost[shape]
	if e.state.Player.Mana < cost {
		return e.State()
	}

	s := e.state.Clone()
	switch shape {
	case spell.Summon:
		if !e.summon(&s, target) {
			return e.State()
		}
	case spell.RaiseDead:
		if !e.raiseDead(&s, target) {
			return e.State()
		}
	case spell.Self:
		e.selfChannel(&s)
	default:
		e.castElemental(&s, shape, target)
	}
	s.Player.Mana -= cost
	e.resolveTurn(&s, false)
	e.state = s
	return e.State()
}

// summon places a fresh minion on a free empty tile.
func (e *Engine) summon(s *State, target grid.Position) bool {
	if s.Grid.At(target) != grid.TileEmpty || occupiedBy(s, target) {
		return false
	}
	s.Minions = append(s.Minions, entity.Minion{
		ID:       e.mintID(),
		Position: target,
		Health:   assets.SummonedMinionHealth,
	})
	s.appendLog("A minion claws its way out of the ground.")
	return true
}

// raiseDead consumes a corpse and returns it to the field as a minion
// carrying its old type. The corpse tile must be clear of combatants.
func (e *Engine) raiseDead(s *State, target grid.Position) bool {
	corpse, ok := s.Corpses[target]
	if !ok || occupiedBy(s, target) {
		return false
	}
	delete(s.Corpses, target)
	s.Grid.Set(target, grid.TileEmpty)
	s.Minions = append(s.Minions, entity.Minion{
		ID:         e.mintID(),
		Position:   target,
		SourceType: corpse.SourceType,
		Health:     assets.RaisedMinionHealth,
	})
	s.appendLog("The dead %s rises to fight for you.", corpse.SourceType)
	return true
}

// selfChannel turns the selected element inward as healing.
func (e *Engine) selfChannel(s *State) {
	heal := combat.SelfHealAmount(s.Player.SelectedElement, s.Player.SpellPower)
	s.Player.Heal(heal)
	s.appendLog("You channel %s through your veins.", s.Player.SelectedElement)
}

// castElemental resolves an AOE cast: damage and status on every enemy
// in the affected tiles, air pushback afterward, and fire igniting any
// forest it touched.
func (e *Engine) castElemental(s *State, shape spell.Shape, target grid.Position) {
	el := s.Player.SelectedElement
	tiles := spell.AffectedTiles(shape, target, s.Player.Position, s.Player.Facing)
	affected := make(map[grid.Position]bool, len(tiles))
	for _, p := range tiles {
		affected[p] = true
	}
	casterTile := s.Grid.At(s.Player.Position)

	var struck []int
	for i := range s.Enemies {
		en := &s.Enemies[i]
		if !affected[en.Position] {
			continue
		}
		dmg := combat.SpellDamage(el, s.Player.SpellPower, casterTile, s.Grid.At(en.Position), en)
		en.Health -= dmg
		s.Stats.DamageDealt += dmg
		s.appendLog("Your %s %s hits the %s for %d.", el, shape, en.Type, dmg)
		if st, ok := combat.StatusFor(el); ok {
			en.ApplyStatus(st)
		}
		struck = append(struck, i)
	}

	if el == spell.Air {
		occupied := make(map[grid.Position]bool, len(s.Enemies))
		for i := range s.Enemies {
			occupied[s.Enemies[i].Position] = true
		}
		for _, i := range struck {
			en := &s.Enemies[i]
			if en.Health <= 0 {
				continue
			}
			if dest, ok := combat.PushDestination(s.Player.Position, en.Position, &s.Grid, occupied); ok {
				delete(occupied, en.Position)
				occupied[dest] = true
				en.Position = dest
			}
		}
	}

	if el == spell.Fire {
		for _, p := range tiles {
			if s.Grid.At(p) == grid.TileForest {
				s.TerrainEffects[p] = entity.TerrainEffect{
					Type:      entity.Burning,
					TurnsLeft: assets.BurningTileDuration,
				}
				s.appendLog("The forest catches fire.")
			}
		}
	}
}
