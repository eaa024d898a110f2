package tui

import (
	"gridmage/internal/entity"
	"gridmage/internal/grid"
)

// Theme holds the glyphs used to draw the battlefield. Emoji render
// with their own colors and occupy two terminal columns, so ASCII
// glyphs are padded rather than tinted to keep the board aligned.
type Theme struct {
	Empty    string
	Obstacle string
	Water    string
	Forest   string
	Corpse   string
	Burning  string

	Player   string
	Goblin   string
	Archer   string
	Ogre     string
	Summoned string
	Raised   string

	HealthPotion string
	ManaPotion   string
}

var EmojiTheme = Theme{
	Empty:    "🟫",
	Obstacle: "🪨",
	Water:    "🟦",
	Forest:   "🌲",
	Corpse:   "💀",
	Burning:  "🔥",

	Player:   "🧙",
	Goblin:   "👺",
	Archer:   "🏹",
	Ogre:     "👹",
	Summoned: "🌀",
	Raised:   "🧟",

	HealthPotion: "🧪",
	ManaPotion:   "🔮",
}

// ASCIITheme is for terminals that render emoji poorly.
var ASCIITheme = Theme{
	Empty:    ".",
	Obstacle: "#",
	Water:    "~",
	Forest:   "&",
	Corpse:   "%",
	Burning:  "*",

	Player:   "@",
	Goblin:   "g",
	Archer:   "a",
	Ogre:     "O",
	Summoned: "m",
	Raised:   "z",

	HealthPotion: "!",
	ManaPotion:   "?",
}

func (t Theme) tileGlyph(tile grid.TileType) string {
	switch tile {
	case grid.TileObstacle:
		return t.Obstacle
	case grid.TileWater:
		return t.Water
	case grid.TileForest:
		return t.Forest
	case grid.TileCorpse:
		return t.Corpse
	default:
		return t.Empty
	}
}

func (t Theme) enemyGlyph(typ entity.EnemyType) string {
	switch typ {
	case entity.Archer:
		return t.Archer
	case entity.Ogre:
		return t.Ogre
	default:
		return t.Goblin
	}
}

func (t Theme) minionGlyph(m entity.Minion) string {
	if m.Raised() {
		return t.Raised
	}
	return t.Summoned
}

func (t Theme) itemGlyph(typ entity.ItemType) string {
	if typ == entity.ManaPotion {
		return t.ManaPotion
	}
	return t.HealthPotion
}
