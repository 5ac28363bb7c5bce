package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnemyWalksPathAndReachesBase(t *testing.T) {
	w := newWorld(t)
	id := w.spawn(0, 50, 100)
	movement := NewMovementSystem(w.ecs, w.path)

	movement.Update(1.0)
	assert.InDelta(t, 100.0, w.ecs.Positions[id].X, 1e-9)
	assert.InDelta(t, 0.2, w.ecs.Paths[id].Progress, 1e-9)

	// 10 секунд хватает на 1000 пикселей
	for i := 0; i < 11; i++ {
		movement.Update(1.0)
	}
	enemy := w.ecs.Enemies[id]
	assert.False(t, enemy.Alive)
	assert.True(t, enemy.ReachedBase)
	assert.Equal(t, 2.0, w.ecs.Paths[id].Progress)
}

func TestProgressIsMonotonic(t *testing.T) {
	w := newWorld(t)
	id := w.spawn(0, 50, 85)
	movement := NewMovementSystem(w.ecs, w.path)

	last := -1.0
	for i := 0; i < 800 && w.ecs.Enemies[id].Alive; i++ {
		movement.Update(dt)
		p := w.ecs.Paths[id].Progress
		assert.GreaterOrEqual(t, p, last)
		last = p
	}
}

func TestSlowReducesSpeedAndExpires(t *testing.T) {
	w := newWorld(t)
	id := w.spawn(0, 50, 100)
	movement := NewMovementSystem(w.ecs, w.path)
	effects := NewStatusEffectSystem(w.ecs)

	ApplySlow(w.ecs, id, 0.5, 1.0)
	effects.Update(0.5)
	movement.Update(0.5)
	assert.InDelta(t, 50.0, w.ecs.Velocities[id].Speed, 1e-9)
	assert.InDelta(t, 25.0, w.ecs.Positions[id].X, 1e-9)

	effects.Update(0.6)
	movement.Update(0.5)
	assert.InDelta(t, 100.0, w.ecs.Velocities[id].Speed, 1e-9)
	_, slowed := w.ecs.SlowEffects[id]
	assert.False(t, slowed)
}

func TestSlowCompositionThroughSystem(t *testing.T) {
	w := newWorld(t)
	id := w.spawn(0, 50, 100)

	ApplySlow(w.ecs, id, 0.8, 1.5)
	ApplySlow(w.ecs, id, 0.5, 0.7)
	effect := w.ecs.SlowEffects[id]
	assert.Equal(t, 0.5, effect.SlowFactor)
	assert.Equal(t, 1.5, effect.Timer)
}

func TestDeadEnemiesDoNotMove(t *testing.T) {
	w := newWorld(t)
	id := w.spawn(100, 50, 100)
	w.ecs.Enemies[id].Alive = false

	NewMovementSystem(w.ecs, w.path).Update(1.0)
	assert.Equal(t, 100.0, w.ecs.Positions[id].X)
}
