// internal/entity/ecs.go
package entity

import (
	"sort"

	"go-station-defense/internal/component"
	"go-station-defense/internal/types"
)

type ECS struct {
	GameTime      float64
	NextID        types.EntityID
	Positions     map[types.EntityID]*component.Position
	Velocities    map[types.EntityID]*component.Velocity
	Paths         map[types.EntityID]*component.Path
	Healths       map[types.EntityID]*component.Health
	Renderables   map[types.EntityID]*component.Renderable
	Enemies       map[types.EntityID]*component.Enemy
	Bosses        map[types.EntityID]*component.Boss
	Towers        map[types.EntityID]*component.Tower
	Combats       map[types.EntityID]*component.Combat
	Turrets       map[types.EntityID]*component.Turret
	Projectiles   map[types.EntityID]*component.Projectile
	Beams         map[types.EntityID]*component.Beam
	SlowEffects   map[types.EntityID]*component.SlowEffect
	DamageFlashes map[types.EntityID]*component.DamageFlash
	Wave          *component.Wave
}

func NewECS() *ECS {
	return &ECS{
		NextID:        1,
		Positions:     make(map[types.EntityID]*component.Position),
		Velocities:    make(map[types.EntityID]*component.Velocity),
		Paths:         make(map[types.EntityID]*component.Path),
		Healths:       make(map[types.EntityID]*component.Health),
		Renderables:   make(map[types.EntityID]*component.Renderable),
		Enemies:       make(map[types.EntityID]*component.Enemy),
		Bosses:        make(map[types.EntityID]*component.Boss),
		Towers:        make(map[types.EntityID]*component.Tower),
		Combats:       make(map[types.EntityID]*component.Combat),
		Turrets:       make(map[types.EntityID]*component.Turret),
		Projectiles:   make(map[types.EntityID]*component.Projectile),
		Beams:         make(map[types.EntityID]*component.Beam),
		SlowEffects:   make(map[types.EntityID]*component.SlowEffect),
		DamageFlashes: make(map[types.EntityID]*component.DamageFlash),
		Wave:          &component.Wave{},
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity удаляет все компоненты сущности.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Paths, id)
	delete(ecs.Healths, id)
	delete(ecs.Renderables, id)
	delete(ecs.Enemies, id)
	delete(ecs.Bosses, id)
	delete(ecs.Towers, id)
	delete(ecs.Combats, id)
	delete(ecs.Turrets, id)
	delete(ecs.Projectiles, id)
	delete(ecs.Beams, id)
	delete(ecs.SlowEffects, id)
	delete(ecs.DamageFlashes, id)
}

// Map iteration order is random; systems iterate in spawn order through these helpers.

func (ecs *ECS) EnemyIDs() []types.EntityID {
	return sortedKeys(ecs.Enemies)
}

func (ecs *ECS) TowerIDs() []types.EntityID {
	return sortedKeys(ecs.Towers)
}

func (ecs *ECS) ProjectileIDs() []types.EntityID {
	return sortedKeys(ecs.Projectiles)
}

func (ecs *ECS) BeamIDs() []types.EntityID {
	return sortedKeys(ecs.Beams)
}

func (ecs *ECS) BossIDs() []types.EntityID {
	return sortedKeys(ecs.Bosses)
}

// IsEnemyAlive reports whether id is an enemy that still takes part in the simulation.
func (ecs *ECS) IsEnemyAlive(id types.EntityID) bool {
	enemy, ok := ecs.Enemies[id]
	return ok && enemy.Alive
}

// AliveEnemies counts enemies that are still alive.
func (ecs *ECS) AliveEnemies() int {
	n := 0
	for _, e := range ecs.Enemies {
		if e.Alive {
			n++
		}
	}
	return n
}

func sortedKeys[V any](m map[types.EntityID]V) []types.EntityID {
	ids := make([]types.EntityID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
