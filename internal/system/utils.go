// internal/system/utils.go
package system

import (
	"go-station-defense/internal/component"
	"go-station-defense/internal/entity"
	"go-station-defense/internal/types"
)

const damageFlashDuration = 0.12

// ApplyDamage наносит урон живому врагу и возвращает true, если удар его убил.
// Отрицательный урон игнорируется: здоровье никогда не растёт.
func ApplyDamage(ecs *entity.ECS, id types.EntityID, damage float64) bool {
	enemy, ok := ecs.Enemies[id]
	if !ok || !enemy.Alive {
		return false
	}
	health, ok := ecs.Healths[id]
	if !ok || damage <= 0 {
		return false
	}

	health.Value -= damage
	ecs.DamageFlashes[id] = &component.DamageFlash{
		Timer:    damageFlashDuration,
		Duration: damageFlashDuration,
	}
	if health.Value <= 0 {
		enemy.Alive = false
		return true
	}
	return false
}

// ApplySlow добавляет или усиливает замедление живого врага.
func ApplySlow(ecs *entity.ECS, id types.EntityID, factor, duration float64) {
	if !ecs.IsEnemyAlive(id) {
		return
	}
	effect, ok := ecs.SlowEffects[id]
	if !ok {
		effect = &component.SlowEffect{SlowFactor: 1.0}
		ecs.SlowEffects[id] = effect
	}
	effect.Apply(factor, duration)
}
