// internal/system/projectile.go
package system

import (
	"go-station-defense/internal/component"
	"go-station-defense/internal/entity"
	"go-station-defense/internal/types"
	"go-station-defense/pkg/geom"
)

// ProjectileSystem управляет движением снарядов, нанесением урона и временем жизни лучей.
type ProjectileSystem struct {
	ecs *entity.ECS
}

func NewProjectileSystem(ecs *entity.ECS) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	s.updateBullets(deltaTime)
	s.updateBeams(deltaTime)
}

func (s *ProjectileSystem) updateBullets(deltaTime float64) {
	for _, id := range s.ecs.ProjectileIDs() {
		proj := s.ecs.Projectiles[id]
		if !proj.Alive {
			continue
		}
		pos, ok := s.ecs.Positions[id]
		if !ok {
			proj.Alive = false
			continue
		}

		// Цель погибла или пропала: снаряд исчезает без урона и награды
		if !s.ecs.IsEnemyAlive(proj.TargetID) {
			proj.Alive = false
			continue
		}
		targetPos, ok := s.ecs.Positions[proj.TargetID]
		if !ok {
			proj.Alive = false
			continue
		}

		target := targetPos.Vec()
		next, _ := geom.MoveTowards(pos.Vec(), target, proj.Speed*deltaTime)
		pos.Set(next)

		targetRadius := s.ecs.Enemies[proj.TargetID].Radius
		if geom.Dist(next, target) <= proj.Radius+targetRadius {
			s.hitTarget(proj.TargetID, proj.Damage, proj.Slow)
			proj.Alive = false
		}
	}
}

func (s *ProjectileSystem) hitTarget(targetID types.EntityID, damage float64, slow *component.SlowPayload) {
	ApplyDamage(s.ecs, targetID, damage)
	if slow != nil && s.ecs.IsEnemyAlive(targetID) {
		ApplySlow(s.ecs, targetID, slow.Factor, slow.Duration)
	}
}

func (s *ProjectileSystem) updateBeams(deltaTime float64) {
	for _, id := range s.ecs.BeamIDs() {
		beam := s.ecs.Beams[id]
		if !beam.Alive {
			continue
		}
		beam.Timer += deltaTime
		if beam.Timer >= beam.Duration {
			beam.Alive = false
		}
	}
}
