// internal/system/status_effect.go
package system

import (
	"go-station-defense/internal/entity"
	"go-station-defense/internal/types"
)

// StatusEffectSystem управляет жизненным циклом эффектов, таких как замедление.
type StatusEffectSystem struct {
	ecs *entity.ECS
}

func NewStatusEffectSystem(ecs *entity.ECS) *StatusEffectSystem {
	return &StatusEffectSystem{ecs: ecs}
}

// Update ticks slow timers; an expired slow is removed, which restores factor 1.0.
func (s *StatusEffectSystem) Update(deltaTime float64) {
	for id, effect := range s.ecs.SlowEffects {
		if !s.ecs.IsEnemyAlive(id) {
			continue
		}
		effect.Timer -= deltaTime
		if effect.Timer <= 0 {
			delete(s.ecs.SlowEffects, id)
		}
	}
}

// SpeedFactor returns the current speed multiplier of an entity.
func SpeedFactor(ecs *entity.ECS, id types.EntityID) float64 {
	if effect, ok := ecs.SlowEffects[id]; ok {
		return effect.SlowFactor
	}
	return 1.0
}
