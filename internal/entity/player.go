package entity

import (
	"gridmage/internal/grid"
	"gridmage/internal/spell"
)

// Player is the single player-controlled combatant. It persists across
// waves; only Position resets on wave transition.
type Player struct {
	Position         grid.Position
	Health           int
	MaxHealth        int
	Mana             int
	MaxMana          int
	Inventory        []Item
	DashCooldown     int
	Level            int
	XP               int
	XPToNext         int
	SpellPower       int
	UnlockedElements map[spell.Element]bool
	UnlockedShapes   map[spell.Shape]bool
	Facing           grid.Direction
	SelectedElement  spell.Element
	SelectedShape    spell.Shape
}

// Clone returns a deep copy, detaching the inventory and unlock sets.
func (p Player) Clone() Player {
	c := p
	c.Inventory = append([]Item(nil), p.Inventory...)
	c.UnlockedElements = make(map[spell.Element]bool, len(p.UnlockedElements))
	for e, ok := range p.UnlockedElements {
		c.UnlockedElements[e] = ok
	}
	c.UnlockedShapes = make(map[spell.Shape]bool, len(p.UnlockedShapes))
	for s, ok := range p.UnlockedShapes {
		c.UnlockedShapes[s] = ok
	}
	return c
}

// Heal raises health, clamped to the maximum.
func (p *Player) Heal(n int) {
	p.Health += n
	if p.Health > p.MaxHealth {
		p.Health = p.MaxHealth
	}
}

// RestoreMana raises mana, clamped to the maximum.
func (p *Player) RestoreMana(n int) {
	p.Mana += n
	if p.Mana > p.MaxMana {
		p.Mana = p.MaxMana
	}
}

// TakeItem removes the item with the given ID from the inventory,
// preserving order, and returns it. ok is false when absent.
func (p *Player) TakeItem(id ID) (item Item, ok bool) {
	for i, it := range p.Inventory {
		if it.ID == id {
			p.Inventory = append(p.Inventory[:i], p.Inventory[i+1:]...)
			return it, true
		}
	}
	return Item{}, false
}
