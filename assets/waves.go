package assets

import (
	"gridmage/internal/entity"
	"gridmage/internal/grid"
	"gridmage/internal/spell"
)

// Spawn is one roster entry: an archetype, where it appears, and its
// optional elemental weakness or resistance (never both).
type Spawn struct {
	Type       entity.EnemyType
	At         grid.Position
	Weakness   spell.Element
	Resistance spell.Element
}

// Waves maps wave number to its roster. Clearing the last defined wave
// wins the run. Spawn tiles are kept clear in the terrain layout.
var Waves = map[int][]Spawn{
	1: {
		{Type: entity.Goblin, At: grid.Position{X: 8, Y: 4}},
		{Type: entity.Goblin, At: grid.Position{X: 8, Y: 7}},
	},
	2: {
		{Type: entity.Goblin, At: grid.Position{X: 9, Y: 2}, Weakness: spell.Fire},
		{Type: entity.Goblin, At: grid.Position{X: 9, Y: 9}},
		{Type: entity.Archer, At: grid.Position{X: 10, Y: 5}, Weakness: spell.Earth},
	},
	3: {
		{Type: entity.Goblin, At: grid.Position{X: 8, Y: 3}},
		{Type: entity.Goblin, At: grid.Position{X: 8, Y: 8}, Resistance: spell.Fire},
		{Type: entity.Archer, At: grid.Position{X: 10, Y: 2}, Weakness: spell.Air},
		{Type: entity.Archer, At: grid.Position{X: 10, Y: 9}},
	},
	4: {
		{Type: entity.Ogre, At: grid.Position{X: 9, Y: 5}, Weakness: spell.Water},
		{Type: entity.Goblin, At: grid.Position{X: 7, Y: 2}},
		{Type: entity.Goblin, At: grid.Position{X: 7, Y: 9}, Weakness: spell.Fire},
	},
	5: {
		{Type: entity.Ogre, At: grid.Position{X: 10, Y: 3}, Resistance: spell.Fire},
		{Type: entity.Ogre, At: grid.Position{X: 10, Y: 8}, Weakness: spell.Water},
		{Type: entity.Archer, At: grid.Position{X: 9, Y: 5}, Weakness: spell.Earth},
		{Type: entity.Goblin, At: grid.Position{X: 6, Y: 5}},
	},
}
