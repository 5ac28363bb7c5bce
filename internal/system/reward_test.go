package system

import (
	"testing"

	"go-station-defense/internal/event"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRewardCountedOnce(t *testing.T) {
	w := newWorld(t)
	var total int
	w.disp.Subscribe(event.EnemyKilled, event.ListenerFunc(func(e event.Event) {
		total += e.Data.(event.EnemyKilledData).Reward
	}))

	id := w.spawn(100, 10, 85)
	require.True(t, ApplyDamage(w.ecs, id, 50))

	rewards := NewRewardSystem(w.ecs, w.disp)
	for i := 0; i < 5; i++ {
		rewards.Update(dt)
	}
	assert.Equal(t, 10, total)
	assert.True(t, w.ecs.Enemies[id].Counted)
}

func TestLeakCountedAsBaseDamageNotReward(t *testing.T) {
	w := newWorld(t)
	id := w.spawn(990, 10, 200)
	movement := NewMovementSystem(w.ecs, w.path)
	rewards := NewRewardSystem(w.ecs, w.disp)

	for i := 0; i < 10; i++ {
		movement.Update(dt)
		rewards.Update(dt)
	}
	assert.True(t, w.ecs.Enemies[id].ReachedBase)
	assert.Equal(t, 1, w.rec.count(event.EnemyReachedBase))
	assert.Zero(t, w.rec.count(event.EnemyKilled))
}

func TestCleanupKeepsUncountedEnemies(t *testing.T) {
	w := newWorld(t)
	id := w.spawn(100, 10, 85)
	ApplyDamage(w.ecs, id, 50)

	cleanup := NewCleanupSystem(w.ecs)
	cleanup.Update(dt)
	require.Contains(t, w.ecs.Enemies, id)

	NewRewardSystem(w.ecs, w.disp).Update(dt)
	cleanup.Update(dt)
	assert.NotContains(t, w.ecs.Enemies, id)
	assert.NotContains(t, w.ecs.Healths, id)
}
