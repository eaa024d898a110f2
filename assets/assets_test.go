package assets

import (
	"testing"

	"gridmage/internal/grid"
	"gridmage/internal/spell"
)

func TestSpawnTilesAreClear(t *testing.T) {
	g := Terrain()
	if g.At(PlayerStart) != grid.TileEmpty {
		t.Errorf("player start %v is %v, want empty", PlayerStart, g.At(PlayerStart))
	}
	for wave, roster := range Waves {
		for _, s := range roster {
			if g.At(s.At) != grid.TileEmpty {
				t.Errorf("wave %d spawn at %v is %v, want empty", wave, s.At, g.At(s.At))
			}
		}
	}
	for _, it := range DefaultItems {
		if g.At(it.At) != grid.TileEmpty {
			t.Errorf("item tile %v is %v, want empty", it.At, g.At(it.At))
		}
	}
}

func TestRostersAreWellFormed(t *testing.T) {
	for wave := 1; wave <= len(Waves); wave++ {
		roster, ok := Waves[wave]
		if !ok {
			t.Fatalf("wave numbers not contiguous: missing wave %d", wave)
		}
		seen := make(map[grid.Position]bool)
		for _, s := range roster {
			if _, ok := EnemySpecs[s.Type]; !ok {
				t.Errorf("wave %d spawns unknown type %v", wave, s.Type)
			}
			if s.Weakness != spell.ElementNone && s.Resistance != spell.ElementNone {
				t.Errorf("wave %d spawn at %v has both weakness and resistance", wave, s.At)
			}
			if seen[s.At] {
				t.Errorf("wave %d has two spawns at %v", wave, s.At)
			}
			seen[s.At] = true
		}
	}
}

func TestTerrainLayoutDimensions(t *testing.T) {
	for y, row := range terrainLayout {
		if len(row) != grid.Size {
			t.Errorf("layout row %d has %d tiles, want %d", y, len(row), grid.Size)
		}
	}
}

func TestUnlockLadderCoversEverything(t *testing.T) {
	elements := map[spell.Element]bool{spell.Fire: true}
	for _, e := range ElementUnlocks {
		elements[e] = true
	}
	for _, e := range []spell.Element{spell.Fire, spell.Water, spell.Earth, spell.Air} {
		if !elements[e] {
			t.Errorf("element %v unreachable through the unlock ladder", e)
		}
		if _, ok := ElementDamage[e]; !ok {
			t.Errorf("element %v has no damage entry", e)
		}
	}
	shapes := map[spell.Shape]bool{spell.Ball: true}
	for _, s := range ShapeUnlocks {
		shapes[s] = true
	}
	all := []spell.Shape{spell.Ball, spell.Cone, spell.Wall, spell.Self, spell.Summon, spell.RaiseDead}
	for _, s := range all {
		if !shapes[s] {
			t.Errorf("shape %v unreachable through the unlock ladder", s)
		}
		if _, ok := ShapeManaCost[s]; !ok {
			t.Errorf("shape %v has no mana cost entry", s)
		}
	}
}
