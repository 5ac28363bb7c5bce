package system

import "go-station-defense/internal/entity"

// CleanupSystem удаляет выбывшие сущности в конце кадра.
// Враг удаляется только после того, как RewardSystem его учла.
type CleanupSystem struct {
	ecs *entity.ECS
}

func NewCleanupSystem(ecs *entity.ECS) *CleanupSystem {
	return &CleanupSystem{ecs: ecs}
}

func (s *CleanupSystem) Update(deltaTime float64) {
	for id, enemy := range s.ecs.Enemies {
		if !enemy.Alive && enemy.Counted {
			s.ecs.RemoveEntity(id)
		}
	}
	for id, proj := range s.ecs.Projectiles {
		if !proj.Alive {
			s.ecs.RemoveEntity(id)
		}
	}
	for id, beam := range s.ecs.Beams {
		if !beam.Alive {
			s.ecs.RemoveEntity(id)
		}
	}
}
