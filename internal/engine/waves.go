package engine

import (
	"gridmage/assets"
	"gridmage/internal/entity"
	"gridmage/internal/grid"
)

// waveCheck advances to the next wave once the roster is empty, or
// ends the run in victory when no further roster is defined. Runs at
// the very end of the pipeline; a turn that killed the player never
// advances the wave.
func (e *Engine) waveCheck(s *State) {
	if s.Status != Playing || len(s.Enemies) != 0 {
		return
	}
	next := s.Wave + 1
	roster, ok := assets.Waves[next]
	if !ok {
		s.Status = Victory
		s.appendLog("The field lies quiet. Victory!")
		return
	}
	s.Wave = next
	e.spawnWave(s, roster)
	s.appendLog("Wave %d. The horde regroups.", next)
}

// spawnWave rebuilds the battlefield for a roster: fresh terrain,
// default items, no corpses, terrain effects or minions, the player
// back at the start tile with stats untouched.
func (e *Engine) spawnWave(s *State, roster []assets.Spawn) {
	s.Grid = assets.Terrain()
	s.Items = make(map[grid.Position]entity.Item, len(assets.DefaultItems))
	s.Corpses = make(map[grid.Position]entity.Corpse)
	s.TerrainEffects = make(map[grid.Position]entity.TerrainEffect)
	s.Minions = nil
	s.Enemies = make([]entity.Enemy, 0, len(roster))
	for _, sp := range roster {
		spec := assets.EnemySpecs[sp.Type]
		s.Enemies = append(s.Enemies, entity.Enemy{
			ID:          e.mintID(),
			Position:    sp.At,
			Type:        sp.Type,
			Health:      spec.MaxHealth,
			AttackRange: spec.AttackRange,
			Weakness:    sp.Weakness,
			Resistance:  sp.Resistance,
			XPValue:     spec.XPValue,
		})
	}
	for _, it := range assets.DefaultItems {
		s.Items[it.At] = entity.Item{ID: e.mintID(), Type: it.Type}
		s.Grid.Set(it.At, grid.TileItem)
	}
	s.Player.Position = assets.PlayerStart
}
