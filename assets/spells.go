package assets

import "gridmage/internal/spell"

// ElementDamage is the base damage per element before modifiers.
var ElementDamage = map[spell.Element]int{
	spell.Fire:  30,
	spell.Water: 25,
	spell.Earth: 20,
	spell.Air:   15,
}

// ShapeManaCost is the mana price per cast by shape.
var ShapeManaCost = map[spell.Shape]int{
	spell.Ball:      10,
	spell.Cone:      15,
	spell.Wall:      25,
	spell.Self:      15,
	spell.Summon:    30,
	spell.RaiseDead: 25,
}

// StartingElements and StartingShapes are unlocked from level 1.
var (
	StartingElements = []spell.Element{spell.Fire}
	StartingShapes   = []spell.Shape{spell.Ball}
)

// ElementUnlocks and ShapeUnlocks map a level to the loadout option it
// grants. Levels past the ladder grant nothing extra.
var (
	ElementUnlocks = map[int]spell.Element{
		2: spell.Water,
		4: spell.Earth,
		6: spell.Air,
	}
	ShapeUnlocks = map[int]spell.Shape{
		3: spell.Cone,
		5: spell.Wall,
		7: spell.Self,
		8: spell.Summon,
		9: spell.RaiseDead,
	}
)
