package assets

import (
	"gridmage/internal/entity"
	"gridmage/internal/grid"
)

// terrainLayout is the static battlefield, one rune per tile:
// '.' empty, '#' obstacle, '~' water, '&' forest. Spawn tiles, the
// player start and the default item tiles stay '.' by construction.
var terrainLayout = [grid.Size]string{
	"............",
	".~~....#....",
	".~~.........",
	".......#....",
	"...##.......",
	"...#........",
	"......&&....",
	"..&...&&....",
	"..&......#..",
	"............",
	".....~~.....",
	"....~~~.....",
}

// Terrain builds a fresh grid from the static layout.
func Terrain() grid.Grid {
	var g grid.Grid
	for y, row := range terrainLayout {
		for x, r := range row {
			var t grid.TileType
			switch r {
			case '#':
				t = grid.TileObstacle
			case '~':
				t = grid.TileWater
			case '&':
				t = grid.TileForest
			default:
				t = grid.TileEmpty
			}
			g.Set(grid.Position{X: x, Y: y}, t)
		}
	}
	return g
}

// ItemPlacement is a default ground item position.
type ItemPlacement struct {
	At   grid.Position
	Type entity.ItemType
}

// DefaultItems are placed at run start and restored at each wave
// transition.
var DefaultItems = []ItemPlacement{
	{At: grid.Position{X: 3, Y: 9}, Type: entity.HealthPotion},
	{At: grid.Position{X: 5, Y: 2}, Type: entity.ManaPotion},
}
