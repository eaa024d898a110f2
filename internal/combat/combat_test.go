package combat

import (
	"testing"

	"gridmage/internal/entity"
	"gridmage/internal/grid"
	"gridmage/internal/spell"
)

func TestSpellDamageBase(t *testing.T) {
	e := entity.Enemy{ID: 1, Type: entity.Goblin, Health: 50}
	got := SpellDamage(spell.Fire, 0, grid.TileEmpty, grid.TileEmpty, &e)
	if got != 30 {
		t.Errorf("base fire damage = %d, want 30", got)
	}
}

func TestSpellDamageWeaknessIncludesSpellPower(t *testing.T) {
	e := entity.Enemy{ID: 1, Type: entity.Goblin, Health: 50, Weakness: spell.Fire}
	// round((30 + 4) * 1.5) = 51
	got := SpellDamage(spell.Fire, 4, grid.TileEmpty, grid.TileEmpty, &e)
	if got != 51 {
		t.Errorf("weakness fire damage with spell power = %d, want 51", got)
	}
}

func TestSpellDamageResistance(t *testing.T) {
	e := entity.Enemy{ID: 1, Type: entity.Ogre, Health: 120, Resistance: spell.Fire}
	got := SpellDamage(spell.Fire, 0, grid.TileEmpty, grid.TileEmpty, &e)
	if got != 15 {
		t.Errorf("resisted fire damage = %d, want 15", got)
	}
}

func TestSpellDamageWaterAffinity(t *testing.T) {
	e := entity.Enemy{ID: 1, Type: entity.Goblin, Health: 50}
	// round(25 * 1.25) = 31
	got := SpellDamage(spell.Water, 0, grid.TileWater, grid.TileEmpty, &e)
	if got != 31 {
		t.Errorf("water-on-water damage = %d, want 31", got)
	}
	got = SpellDamage(spell.Water, 0, grid.TileEmpty, grid.TileEmpty, &e)
	if got != 25 {
		t.Errorf("water damage off water = %d, want 25", got)
	}
}

func TestSpellDamageFireAgainstWetTarget(t *testing.T) {
	e := entity.Enemy{ID: 1, Type: entity.Goblin, Health: 50}
	// round(30 * 0.75) = 23 (22.5 rounds up)
	got := SpellDamage(spell.Fire, 0, grid.TileEmpty, grid.TileWater, &e)
	if got != 23 {
		t.Errorf("fire on wet target = %d, want 23", got)
	}
}

func TestSpellDamageStackedModifiers(t *testing.T) {
	e := entity.Enemy{ID: 1, Type: entity.Goblin, Health: 50, Weakness: spell.Water}
	// round((25 + 2) * 1.25 * 1.5) = round(50.625) = 51
	got := SpellDamage(spell.Water, 2, grid.TileWater, grid.TileEmpty, &e)
	if got != 51 {
		t.Errorf("stacked water damage = %d, want 51", got)
	}
}

func TestStatusForElements(t *testing.T) {
	s, ok := StatusFor(spell.Fire)
	if !ok || s.Type != entity.Burn || s.TurnsLeft != 3 {
		t.Errorf("fire status = %+v ok=%v, want 3-turn burn", s, ok)
	}
	s, ok = StatusFor(spell.Water)
	if !ok || s.Type != entity.Frozen || s.TurnsLeft != 2 {
		t.Errorf("water status = %+v ok=%v, want 2-turn frozen", s, ok)
	}
	if _, ok := StatusFor(spell.Earth); ok {
		t.Error("earth should inflict no status")
	}
	if _, ok := StatusFor(spell.Air); ok {
		t.Error("air should inflict no status")
	}
}

func TestPushDestinationAwayFromCaster(t *testing.T) {
	var g grid.Grid
	occupied := map[grid.Position]bool{}
	caster := grid.Position{X: 2, Y: 5}
	dest, ok := PushDestination(caster, grid.Position{X: 5, Y: 5}, &g, occupied)
	if !ok || dest != (grid.Position{X: 6, Y: 5}) {
		t.Errorf("push = %v ok=%v, want (6,5)", dest, ok)
	}
	// Tie between axes pushes vertically.
	dest, ok = PushDestination(caster, grid.Position{X: 4, Y: 7}, &g, occupied)
	if !ok || dest != (grid.Position{X: 4, Y: 8}) {
		t.Errorf("tied push = %v ok=%v, want (4,8)", dest, ok)
	}
}

func TestPushDestinationBlocked(t *testing.T) {
	var g grid.Grid
	caster := grid.Position{X: 2, Y: 5}

	if _, ok := PushDestination(caster, grid.Position{X: grid.Size - 1, Y: 5}, &g, nil); ok {
		t.Error("push off the edge should fail")
	}

	g.Set(grid.Position{X: 6, Y: 5}, grid.TileObstacle)
	if _, ok := PushDestination(caster, grid.Position{X: 5, Y: 5}, &g, nil); ok {
		t.Error("push into non-empty tile should fail")
	}

	g.Set(grid.Position{X: 6, Y: 5}, grid.TileEmpty)
	occupied := map[grid.Position]bool{{X: 6, Y: 5}: true}
	if _, ok := PushDestination(caster, grid.Position{X: 5, Y: 5}, &g, occupied); ok {
		t.Error("push into occupied tile should fail")
	}
}

func TestEnemyAttackDamageArcherForestHalving(t *testing.T) {
	archer := entity.Enemy{ID: 1, Type: entity.Archer, Position: grid.Position{X: 5, Y: 5}}
	got := EnemyAttackDamage(&archer, grid.TileForest, nil)
	if got != 6 {
		t.Errorf("archer vs forest target = %d, want 6", got)
	}
	got = EnemyAttackDamage(&archer, grid.TileEmpty, nil)
	if got != 12 {
		t.Errorf("archer vs open target = %d, want 12", got)
	}
}

func TestEnemyAttackDamageSwarmBonus(t *testing.T) {
	attacker := entity.Enemy{ID: 1, Type: entity.Goblin, Position: grid.Position{X: 5, Y: 5}}
	enemies := []entity.Enemy{
		attacker,
		{ID: 2, Type: entity.Goblin, Position: grid.Position{X: 6, Y: 5}},  // distance 1
		{ID: 3, Type: entity.Goblin, Position: grid.Position{X: 5, Y: 8}},  // distance 3
		{ID: 4, Type: entity.Goblin, Position: grid.Position{X: 9, Y: 5}},  // distance 4, out
		{ID: 5, Type: entity.Archer, Position: grid.Position{X: 5, Y: 6}},  // not a goblin
	}
	got := EnemyAttackDamage(&attacker, grid.TileEmpty, enemies)
	if got != 14 {
		t.Errorf("swarm goblin damage = %d, want 14", got)
	}
}

func TestEnemyAttackDamageOgre(t *testing.T) {
	ogre := entity.Enemy{ID: 1, Type: entity.Ogre, Position: grid.Position{X: 5, Y: 5}}
	if got := EnemyAttackDamage(&ogre, grid.TileEmpty, nil); got != 25 {
		t.Errorf("ogre damage = %d, want 25", got)
	}
}
