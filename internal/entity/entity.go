// Package entity holds the combatant and overlay value types: the
// player, enemies, minions, items, corpses and timed effects. These
// are plain values; snapshots copy them, and the engine mutates only
// its private working copies. Identity fields (ID, Type, SourceType)
// are set at creation and never reassigned afterward.
package entity

// ID identifies an enemy, minion, item or corpse within one run.
// The engine mints IDs sequentially; corpses inherit the ID of the
// enemy they came from.
type ID int

// EnemyType names the enemy archetypes. EnemyNone is the absent value
// used for a minion that was summoned rather than raised.
type EnemyType uint8

const (
	EnemyNone EnemyType = iota
	Goblin
	Archer
	Ogre
)

func (t EnemyType) String() string {
	switch t {
	case Goblin:
		return "goblin"
	case Archer:
		return "archer"
	case Ogre:
		return "ogre"
	}
	return "none"
}

func (t EnemyType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}
