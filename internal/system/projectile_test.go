package system

import (
	"testing"

	"go-station-defense/internal/component"
	"go-station-defense/internal/event"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fireOne(t *testing.T, w *world) *component.Projectile {
	t.Helper()
	NewCombatSystem(w.ecs, w.disp).Update(dt)
	require.Len(t, w.ecs.Projectiles, 1)
	for _, p := range w.ecs.Projectiles {
		return p
	}
	return nil
}

func TestBulletHitsOnceAndExpires(t *testing.T) {
	w := newWorld(t)
	cannon := testDefs().Towers["cannon"]
	w.tower(200, 60, cannon)
	eid := w.spawn(200, 100, 0)
	proj := fireOne(t, w)

	projectiles := NewProjectileSystem(w.ecs)
	for i := 0; i < 60 && proj.Alive; i++ {
		projectiles.Update(dt)
	}
	assert.False(t, proj.Alive)
	assert.Equal(t, 100-cannon.Damage, w.ecs.Healths[eid].Value)

	projectiles.Update(dt)
	assert.Equal(t, 100-cannon.Damage, w.ecs.Healths[eid].Value)
}

func TestBulletWithDeadTargetExpiresWithoutReward(t *testing.T) {
	w := newWorld(t)
	w.tower(200, 60, testDefs().Towers["cannon"])
	eid := w.spawn(200, 100, 0)
	proj := fireOne(t, w)

	// цель погибла от чего-то другого до попадания
	require.True(t, ApplyDamage(w.ecs, eid, 1000))
	rewards := NewRewardSystem(w.ecs, w.disp)
	rewards.Update(dt)

	NewProjectileSystem(w.ecs).Update(dt)
	assert.False(t, proj.Alive)
	rewards.Update(dt)
	assert.Equal(t, 1, w.rec.count(event.EnemyKilled))

	NewCleanupSystem(w.ecs).Update(dt)
	assert.Empty(t, w.ecs.Projectiles)
	assert.Empty(t, w.ecs.Enemies)
}

func TestSlowBulletAppliesSlowOnlyToSurvivor(t *testing.T) {
	slow := testDefs().Towers["slow"]

	t.Run("survivor is slowed", func(t *testing.T) {
		w := newWorld(t)
		w.tower(200, 60, slow)
		eid := w.spawn(200, 100, 0)
		proj := fireOne(t, w)
		for i := 0; i < 60 && proj.Alive; i++ {
			NewProjectileSystem(w.ecs).Update(dt)
		}
		require.Contains(t, w.ecs.SlowEffects, eid)
		assert.Equal(t, slow.Slow.Factor, w.ecs.SlowEffects[eid].SlowFactor)
	})

	t.Run("killed target is not slowed", func(t *testing.T) {
		w := newWorld(t)
		w.tower(200, 60, slow)
		eid := w.spawn(200, slow.Damage, 0)
		proj := fireOne(t, w)
		for i := 0; i < 60 && proj.Alive; i++ {
			NewProjectileSystem(w.ecs).Update(dt)
		}
		assert.False(t, w.ecs.Enemies[eid].Alive)
		assert.NotContains(t, w.ecs.SlowEffects, eid)
	})
}

func TestBulletFollowsMovingTarget(t *testing.T) {
	w := newWorld(t)
	cannon := testDefs().Towers["cannon"]
	w.tower(100, 100, cannon)
	eid := w.spawn(100, 500, 85)
	proj := fireOne(t, w)

	movement := NewMovementSystem(w.ecs, w.path)
	projectiles := NewProjectileSystem(w.ecs)
	for i := 0; i < 120 && proj.Alive; i++ {
		movement.Update(dt)
		projectiles.Update(dt)
	}
	assert.False(t, proj.Alive)
	assert.Equal(t, 500-cannon.Damage, w.ecs.Healths[eid].Value)
}
