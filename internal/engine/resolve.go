package engine

import (
	"sort"

	"gridmage/assets"
	"gridmage/internal/ai"
	"gridmage/internal/combat"
	"gridmage/internal/entity"
	"gridmage/internal/grid"
)

// resolveTurn runs the fixed-order pipeline on the working copy after
// a turn-consuming action: terrain, statuses, minions, enemies, loot
// and XP, cleanup, wave-check. Deaths are collected per phase and
// swept at phase boundaries, never mid-iteration; enemies the action
// itself killed are swept first and join the turn's defeated pool.
func (e *Engine) resolveTurn(s *State, focused bool) {
	defeated := sweepDeadEnemies(s)
	defeated = append(defeated, e.terrainPhase(s)...)
	defeated = append(defeated, e.statusPhase(s)...)
	defeated = append(defeated, e.minionPhase(s)...)
	defeated = append(defeated, e.enemyPhase(s)...)
	e.lootAndXP(s, dedupeByID(defeated))
	e.cleanup(s, focused)
	e.waveCheck(s)
}

// terrainPhase burns whoever stands on burning tiles and ages the
// effects out. Tiles resolve in row-major order. Minions take no
// terrain damage.
func (e *Engine) terrainPhase(s *State) []entity.Enemy {
	if len(s.TerrainEffects) == 0 {
		return nil
	}
	positions := make([]grid.Position, 0, len(s.TerrainEffects))
	for p := range s.TerrainEffects {
		positions = append(positions, p)
	}
	sort.Slice(positions, func(i, j int) bool {
		if positions[i].Y != positions[j].Y {
			return positions[i].Y < positions[j].Y
		}
		return positions[i].X < positions[j].X
	})
	for _, pos := range positions {
		fx := s.TerrainEffects[pos]
		if fx.Type == entity.Burning {
			if s.Player.Position == pos {
				s.Player.Health -= assets.BurningTileDamage
				s.Stats.DamageTaken += assets.BurningTileDamage
				s.appendLog("The burning ground sears you for %d.", assets.BurningTileDamage)
			}
			for i := range s.Enemies {
				if s.Enemies[i].Position == pos {
					s.Enemies[i].Health -= assets.BurningTileDamage
				}
			}
		}
		fx.TurnsLeft--
		if fx.TurnsLeft <= 0 {
			delete(s.TerrainEffects, pos)
		} else {
			s.TerrainEffects[pos] = fx
		}
	}
	return sweepDeadEnemies(s)
}

// statusPhase ticks every enemy status once: burn damage lands, all
// durations decrement, expired effects drop.
func (e *Engine) statusPhase(s *State) []entity.Enemy {
	for i := range s.Enemies {
		en := &s.Enemies[i]
		if len(en.Statuses) == 0 {
			continue
		}
		kept := en.Statuses[:0]
		for _, st := range en.Statuses {
			if st.Type == entity.Burn {
				en.Health -= assets.BurnDamage
			}
			st.TurnsLeft--
			if st.TurnsLeft > 0 {
				kept = append(kept, st)
			}
		}
		en.Statuses = kept
	}
	return sweepDeadEnemies(s)
}

// minionPhase moves or attacks with each minion in roster order.
// Skipped outright when no enemies remain at phase start; the roster
// does not shrink mid-phase, so overkill on an already-downed enemy is
// possible and deliberate.
func (e *Engine) minionPhase(s *State) []entity.Enemy {
	if len(s.Enemies) == 0 || len(s.Minions) == 0 {
		return nil
	}
	occupied := occupancySet(s)
	for i := range s.Minions {
		m := &s.Minions[i]
		ti := ai.NearestEnemy(m.Position, s.Enemies)
		target := &s.Enemies[ti]
		if m.Position.Manhattan(target.Position) == 1 {
			target.Health -= assets.MinionAttackDamage
			s.Stats.DamageDealt += assets.MinionAttackDamage
			s.appendLog("Your minion tears at the %s.", target.Type)
			continue
		}
		if dest, ok := ai.StepToward(m.Position, target.Position, &s.Grid, occupied); ok {
			delete(occupied, m.Position)
			occupied[dest] = true
			m.Position = dest
		}
	}
	return sweepDeadEnemies(s)
}

// enemyPhase gives each enemy its turn in roster order. Frozen enemies
// do nothing but keep blocking their tile. Minion deaths are swept at
// phase end, silently.
func (e *Engine) enemyPhase(s *State) []entity.Enemy {
	occupied := occupancySet(s)
	for i := range s.Enemies {
		en := &s.Enemies[i]
		if en.HasStatus(entity.Frozen) {
			continue
		}
		target := ai.SelectTarget(en.Position, s.Player.Position, s.Minions)
		dist := en.Position.Manhattan(target.Pos)
		if dist > en.AttackRange {
			if dest, ok := ai.StepToward(en.Position, target.Pos, &s.Grid, occupied); ok {
				delete(occupied, en.Position)
				occupied[dest] = true
				en.Position = dest
			}
			continue
		}
		if en.Type == entity.Ogre && dist == 1 {
			e.stomp(s, en)
			continue
		}
		dmg := combat.EnemyAttackDamage(en, s.Grid.At(target.Pos), s.Enemies)
		if target.Minion == ai.PlayerTarget {
			s.Player.Health -= dmg
			s.Stats.DamageTaken += dmg
			s.appendLog("The %s hits you for %d.", en.Type, dmg)
		} else {
			s.Minions[target.Minion].Health -= dmg
		}
	}
	s.Minions = liveMinions(s.Minions)
	return sweepDeadEnemies(s)
}

// stomp is the ogre's 3x3 slam. It hits the player and minions, never
// other enemies.
func (e *Engine) stomp(s *State, en *entity.Enemy) {
	s.appendLog("The ogre stomps the ground around it!")
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			p := grid.Position{X: en.Position.X + dx, Y: en.Position.Y + dy}
			if s.Player.Position == p {
				s.Player.Health -= assets.StompDamage
				s.Stats.DamageTaken += assets.StompDamage
				s.appendLog("The shockwave hits you for %d.", assets.StompDamage)
			}
			for j := range s.Minions {
				if s.Minions[j].Position == p {
					s.Minions[j].Health -= assets.StompDamage
				}
			}
		}
	}
}

// lootAndXP converts the turn's defeated enemies to corpses, rolls
// loot next to each, and grants the summed XP once.
func (e *Engine) lootAndXP(s *State, defeated []entity.Enemy) {
	if len(defeated) == 0 {
		return
	}
	totalXP := 0
	for _, en := range defeated {
		s.Grid.Set(en.Position, grid.TileCorpse)
		delete(s.Items, en.Position)
		s.Corpses[en.Position] = entity.Corpse{ID: en.ID, SourceType: en.Type}
		s.Stats.Kills[en.Type]++
		s.appendLog("The %s falls.", en.Type)
		e.rollLoot(s, en.Position)
		totalXP += en.XPValue
	}
	e.grantXP(s, totalXP)
}

// rollLoot drops a random potion on a shuffled empty orthogonal
// neighbor, one time in four.
func (e *Engine) rollLoot(s *State, at grid.Position) {
	if e.rng.Float64() >= assets.LootDropChance {
		return
	}
	candidates := make([]grid.Position, 0, 4)
	for _, p := range at.Neighbors() {
		if s.Grid.InBounds(p) && s.Grid.At(p) == grid.TileEmpty {
			candidates = append(candidates, p)
		}
	}
	if len(candidates) == 0 {
		return
	}
	e.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	drop := candidates[0]
	typ := entity.HealthPotion
	if e.rng.Intn(2) == 1 {
		typ = entity.ManaPotion
	}
	s.Items[drop] = entity.Item{ID: e.mintID(), Type: typ}
	s.Grid.Set(drop, grid.TileItem)
	s.appendLog("A %s tumbles from the corpse.", typ)
}

// cleanup closes the turn: death check, mana regen, dash cooldown.
func (e *Engine) cleanup(s *State, focused bool) {
	if s.Player.Health <= 0 {
		s.Status = GameOver
		s.appendLog("You fall. The horde overruns the field.")
	}
	regen := assets.ManaRegen
	if focused {
		regen = assets.FocusManaRegen
	}
	s.Player.RestoreMana(regen)
	if s.Player.DashCooldown > 0 {
		s.Player.DashCooldown--
	}
	s.Stats.Turns++
}

// sweepDeadEnemies removes enemies at or below zero health from the
// roster and returns them in roster order.
func sweepDeadEnemies(s *State) []entity.Enemy {
	var dead []entity.Enemy
	live := s.Enemies[:0]
	for _, en := range s.Enemies {
		if en.Health <= 0 {
			dead = append(dead, en)
		} else {
			live = append(live, en)
		}
	}
	s.Enemies = live
	return dead
}

// liveMinions drops minions at or below zero health. No corpse, no
// log entry.
func liveMinions(minions []entity.Minion) []entity.Minion {
	live := minions[:0]
	for _, m := range minions {
		if m.Health > 0 {
			live = append(live, m)
		}
	}
	return live
}

// dedupeByID keeps the first occurrence of each enemy, preserving
// death order.
func dedupeByID(enemies []entity.Enemy) []entity.Enemy {
	if len(enemies) < 2 {
		return enemies
	}
	seen := make(map[entity.ID]bool, len(enemies))
	out := enemies[:0]
	for _, en := range enemies {
		if seen[en.ID] {
			continue
		}
		seen[en.ID] = true
		out = append(out, en)
	}
	return out
}
