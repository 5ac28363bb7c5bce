// internal/system/movement.go
package system

import (
	"go-station-defense/internal/entity"
	"go-station-defense/pkg/geom"
	"go-station-defense/pkg/pathmap"
)

// MovementSystem ведёт врагов по ломаной пути.
type MovementSystem struct {
	ecs  *entity.ECS
	path *pathmap.PathMap
}

func NewMovementSystem(ecs *entity.ECS, path *pathmap.PathMap) *MovementSystem {
	return &MovementSystem{ecs: ecs, path: path}
}

func (s *MovementSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.EnemyIDs() {
		enemy := s.ecs.Enemies[id]
		if !enemy.Alive {
			continue
		}
		pos, hasPos := s.ecs.Positions[id]
		vel, hasVel := s.ecs.Velocities[id]
		path, hasPath := s.ecs.Paths[id]
		if !hasPos || !hasVel || !hasPath {
			continue
		}

		vel.Speed = vel.BaseSpeed * SpeedFactor(s.ecs, id)

		// Дошёл до конца пути?
		if path.CurrentIndex >= s.path.LastIndex() {
			enemy.Alive = false
			enemy.ReachedBase = true
			path.Progress = float64(s.path.LastIndex())
			continue
		}

		target := s.path.Waypoints[path.CurrentIndex+1]
		next, reached := geom.MoveTowards(pos.Vec(), target, vel.Speed*deltaTime)
		pos.Set(next)
		if reached {
			path.CurrentIndex++
		}
		path.Progress = s.path.Progress(path.CurrentIndex, pos.Vec())
	}
}
