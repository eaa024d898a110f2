package entity

import (
	"testing"

	"gridmage/internal/grid"
	"gridmage/internal/spell"
)

func TestEnemyCloneDetachesStatuses(t *testing.T) {
	e := Enemy{
		ID:       1,
		Type:     Goblin,
		Health:   50,
		Statuses: []StatusEffect{{Type: Burn, TurnsLeft: 3}},
	}
	c := e.Clone()
	c.Statuses[0].TurnsLeft = 1
	c.ApplyStatus(StatusEffect{Type: Frozen, TurnsLeft: 2})
	if e.Statuses[0].TurnsLeft != 3 {
		t.Errorf("original burn duration = %d, want 3", e.Statuses[0].TurnsLeft)
	}
	if len(e.Statuses) != 1 {
		t.Errorf("original status count = %d, want 1", len(e.Statuses))
	}
}

func TestApplyStatusRefreshesNotStacks(t *testing.T) {
	e := Enemy{ID: 1, Type: Goblin, Health: 50}
	e.ApplyStatus(StatusEffect{Type: Burn, TurnsLeft: 1})
	e.ApplyStatus(StatusEffect{Type: Burn, TurnsLeft: 3})
	if len(e.Statuses) != 1 {
		t.Fatalf("status count = %d, want 1", len(e.Statuses))
	}
	if e.Statuses[0].TurnsLeft != 3 {
		t.Errorf("burn duration = %d, want 3", e.Statuses[0].TurnsLeft)
	}
	e.ApplyStatus(StatusEffect{Type: Frozen, TurnsLeft: 2})
	if len(e.Statuses) != 2 {
		t.Errorf("status count after frozen = %d, want 2", len(e.Statuses))
	}
	if !e.HasStatus(Burn) || !e.HasStatus(Frozen) {
		t.Error("expected both burn and frozen active")
	}
}

func TestPlayerCloneDetachesInventoryAndUnlocks(t *testing.T) {
	p := Player{
		Health:           100,
		MaxHealth:        100,
		Inventory:        []Item{{ID: 7, Type: HealthPotion}},
		UnlockedElements: map[spell.Element]bool{spell.Fire: true},
		UnlockedShapes:   map[spell.Shape]bool{spell.Ball: true},
	}
	c := p.Clone()
	c.Inventory[0].Type = ManaPotion
	c.UnlockedElements[spell.Water] = true
	if p.Inventory[0].Type != HealthPotion {
		t.Error("clone mutation leaked into original inventory")
	}
	if p.UnlockedElements[spell.Water] {
		t.Error("clone mutation leaked into original unlock set")
	}
}

func TestTakeItemPreservesOrder(t *testing.T) {
	p := Player{
		Inventory: []Item{
			{ID: 1, Type: HealthPotion},
			{ID: 2, Type: ManaPotion},
			{ID: 3, Type: HealthPotion},
		},
	}
	item, ok := p.TakeItem(2)
	if !ok {
		t.Fatal("TakeItem(2) not found")
	}
	if item.Type != ManaPotion {
		t.Errorf("taken item type = %v, want mana potion", item.Type)
	}
	if len(p.Inventory) != 2 || p.Inventory[0].ID != 1 || p.Inventory[1].ID != 3 {
		t.Errorf("inventory after take = %v, want ids 1,3", p.Inventory)
	}
	if _, ok := p.TakeItem(99); ok {
		t.Error("TakeItem(99) should report missing")
	}
}

func TestHealAndManaClamp(t *testing.T) {
	p := Player{Health: 90, MaxHealth: 100, Mana: 95, MaxMana: 100}
	p.Heal(30)
	p.RestoreMana(30)
	if p.Health != 100 {
		t.Errorf("health = %d, want 100", p.Health)
	}
	if p.Mana != 100 {
		t.Errorf("mana = %d, want 100", p.Mana)
	}
}

func TestMinionRaised(t *testing.T) {
	summoned := Minion{ID: 1, Position: grid.Position{X: 2, Y: 2}, Health: 30}
	raised := Minion{ID: 2, Position: grid.Position{X: 3, Y: 3}, SourceType: Goblin, Health: 40}
	if summoned.Raised() {
		t.Error("summoned minion should not report raised")
	}
	if !raised.Raised() {
		t.Error("raised minion should report raised")
	}
}
