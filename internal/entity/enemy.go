package entity

import (
	"gridmage/internal/grid"
	"gridmage/internal/spell"
)

// Enemy is one hostile combatant. Weakness and Resistance are
// ElementNone when absent and are never both set on the same enemy.
type Enemy struct {
	ID          ID
	Position    grid.Position
	Type        EnemyType
	Health      int
	AttackRange int
	Weakness    spell.Element
	Resistance  spell.Element
	Statuses    []StatusEffect
	XPValue     int
}

// Clone returns a deep copy, detaching the status list.
func (e Enemy) Clone() Enemy {
	c := e
	c.Statuses = append([]StatusEffect(nil), e.Statuses...)
	return c
}

// HasStatus reports whether a status of type t is active.
func (e *Enemy) HasStatus(t StatusType) bool {
	for _, s := range e.Statuses {
		if s.Type == t {
			return true
		}
	}
	return false
}

// ApplyStatus refreshes a status: any existing effect of the same type
// is removed before the new one is appended, so durations reset rather
// than stack.
func (e *Enemy) ApplyStatus(s StatusEffect) {
	kept := e.Statuses[:0]
	for _, old := range e.Statuses {
		if old.Type != s.Type {
			kept = append(kept, old)
		}
	}
	e.Statuses = append(kept, s)
}
