package spell

import "gridmage/internal/grid"

// AffectedTiles maps a cast to the set of tiles it touches, clipped to
// grid bounds. Self returns nothing (it never targets tiles) and the
// minion shapes return just the selection tile; damage never applies
// to those. The result order is deterministic: template order for Ball
// and Cone, row-major for Wall.
func AffectedTiles(shape Shape, target, caster grid.Position, facing grid.Direction) []grid.Position {
	switch shape {
	case Self:
		return nil
	case Ball, Summon, RaiseDead:
		if !grid.InBounds(target) {
			return nil
		}
		return []grid.Position{target}
	case Wall:
		tiles := make([]grid.Position, 0, 9)
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				p := grid.Position{X: target.X + dx, Y: target.Y + dy}
				if grid.InBounds(p) {
					tiles = append(tiles, p)
				}
			}
		}
		return tiles
	case Cone:
		dir := facing
		if target != caster {
			dir = grid.DirectionToward(caster, target)
		}
		return coneTiles(caster, dir)
	}
	return nil
}

// coneTiles expands the arrow template: one tile directly ahead of the
// caster, then three tiles two steps ahead spanning the perpendicular.
func coneTiles(caster grid.Position, dir grid.Direction) []grid.Position {
	dx, dy := dir.Delta()
	px, py := perpendicular(dir)

	tiles := make([]grid.Position, 0, 4)
	ahead := grid.Position{X: caster.X + dx, Y: caster.Y + dy}
	if grid.InBounds(ahead) {
		tiles = append(tiles, ahead)
	}
	for off := -1; off <= 1; off++ {
		p := grid.Position{
			X: caster.X + 2*dx + off*px,
			Y: caster.Y + 2*dy + off*py,
		}
		if grid.InBounds(p) {
			tiles = append(tiles, p)
		}
	}
	return tiles
}

func perpendicular(dir grid.Direction) (px, py int) {
	if dir == grid.Up || dir == grid.Down {
		return 1, 0
	}
	return 0, 1
}
