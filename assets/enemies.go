package assets

import "gridmage/internal/entity"

// EnemySpec is the archetype stat block shared by every spawn of a
// type. Weakness and resistance vary per spawn and live on the wave
// roster entries instead.
type EnemySpec struct {
	MaxHealth   int
	AttackRange int
	Damage      int
	XPValue     int
}

// EnemySpecs indexes the archetypes.
var EnemySpecs = map[entity.EnemyType]EnemySpec{
	entity.Goblin: {
		MaxHealth:   50,
		AttackRange: 1,
		Damage:      10,
		XPValue:     25,
	},
	entity.Archer: {
		MaxHealth:   35,
		AttackRange: 4,
		Damage:      12,
		XPValue:     35,
	},
	entity.Ogre: {
		MaxHealth:   120,
		AttackRange: 1,
		Damage:      25,
		XPValue:     75,
	},
}
