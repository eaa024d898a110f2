package entity

import "gridmage/internal/grid"

// Minion is a player-allied unit created by summon or raiseDead.
// SourceType is the raised enemy's type, or EnemyNone for a summoned
// generic minion. Minions carry no statuses and leave no corpse.
type Minion struct {
	ID         ID
	Position   grid.Position
	SourceType EnemyType
	Health     int
}

// Raised reports whether the minion came from a corpse.
func (m *Minion) Raised() bool {
	return m.SourceType != EnemyNone
}
