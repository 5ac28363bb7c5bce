package system

import (
	"math"
	"testing"

	"go-station-defense/internal/defs"
	"go-station-defense/internal/event"
	"go-station-defense/pkg/geom"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindTargetPicksFurthestAlong(t *testing.T) {
	w := newWorld(t)
	near := w.spawn(100, 50, 85)
	far := w.spawn(300, 50, 85)
	w.spawn(900, 50, 85) // вне радиуса

	id, ok := FindTarget(w.ecs, geom.V(200, 50), 160)
	require.True(t, ok)
	assert.Equal(t, far, id)

	w.ecs.Enemies[far].Alive = false
	id, ok = FindTarget(w.ecs, geom.V(200, 50), 160)
	require.True(t, ok)
	assert.Equal(t, near, id)
}

func TestFindTargetTieGoesToFirstSpawned(t *testing.T) {
	w := newWorld(t)
	first := w.spawn(200, 50, 85)
	w.spawn(200, 50, 85)

	id, ok := FindTarget(w.ecs, geom.V(200, 30), 100)
	require.True(t, ok)
	assert.Equal(t, first, id)
}

func TestFindTargetNone(t *testing.T) {
	w := newWorld(t)
	_, ok := FindTarget(w.ecs, geom.V(0, 0), 100)
	assert.False(t, ok)
}

func TestCooldownResetsOnlyOnShot(t *testing.T) {
	w := newWorld(t)
	cannon := testDefs().Towers["cannon"]
	tid := w.tower(200, 60, cannon)
	combat := NewCombatSystem(w.ecs, w.disp)

	// нет цели: таймер остаётся на нуле, выстрела нет
	combat.Update(dt)
	assert.Equal(t, 0.0, w.ecs.Combats[tid].CooldownTimer)
	assert.Empty(t, w.ecs.Projectiles)

	w.spawn(200, 100, 85)
	combat.Update(dt)
	assert.Equal(t, cannon.Cooldown, w.ecs.Combats[tid].CooldownTimer)
	assert.Len(t, w.ecs.Projectiles, 1)
	assert.Equal(t, 1, w.rec.count(event.ShotFired))

	// на перезарядке новых выстрелов нет
	combat.Update(dt)
	assert.Len(t, w.ecs.Projectiles, 1)
	assert.InDelta(t, cannon.Cooldown-dt, w.ecs.Combats[tid].CooldownTimer, 1e-9)
}

func TestBeamDamagesInstantly(t *testing.T) {
	w := newWorld(t)
	laser := testDefs().Towers["laser"]
	w.tower(200, 60, laser)
	eid := w.spawn(200, 100, 85)

	NewCombatSystem(w.ecs, w.disp).Update(dt)
	assert.Equal(t, 100-laser.Damage, w.ecs.Healths[eid].Value)
	assert.Len(t, w.ecs.Beams, 1)
	assert.Empty(t, w.ecs.Projectiles)

	projectiles := NewProjectileSystem(w.ecs)
	for i := 0; i < 10; i++ {
		projectiles.Update(dt)
	}
	for _, beam := range w.ecs.Beams {
		assert.False(t, beam.Alive)
	}
	// луч не наносит урон повторно
	assert.Equal(t, 100-laser.Damage, w.ecs.Healths[eid].Value)
}

func TestApplyDamageNeverHeals(t *testing.T) {
	w := newWorld(t)
	id := w.spawn(0, 10, 85)

	assert.False(t, ApplyDamage(w.ecs, id, -5))
	assert.Equal(t, 10.0, w.ecs.Healths[id].Value)

	assert.True(t, ApplyDamage(w.ecs, id, 12))
	assert.False(t, w.ecs.Enemies[id].Alive)

	// мёртвый остаётся мёртвым, повторный урон ничего не меняет
	assert.False(t, ApplyDamage(w.ecs, id, 3))
	assert.Equal(t, -2.0, w.ecs.Healths[id].Value)
	assert.False(t, w.ecs.Enemies[id].Alive)
}

func testDefs() *defs.Library { return defs.Default() }

func TestUpgradeSequence(t *testing.T) {
	w := newWorld(t)
	lib := testDefs()

	cannon := lib.Towers["cannon"]
	id := w.tower(0, 0, cannon)
	require.True(t, ApplyUpgrade(w.ecs, id, cannon))
	require.True(t, ApplyUpgrade(w.ecs, id, cannon))

	c := w.ecs.Combats[id]
	assert.Equal(t, 3, w.ecs.Towers[id].Level)
	assert.InDelta(t, 22*1.25*1.25, c.Damage, 1e-9)
	assert.InDelta(t, 190.0, c.Range, 1e-9)
	assert.InDelta(t, 0.75*0.92*0.92, c.Cooldown, 1e-9)

	slow := lib.Towers["slow"]
	sid := w.tower(100, 0, slow)
	require.True(t, ApplyUpgrade(w.ecs, sid, slow))
	sc := w.ecs.Combats[sid]
	assert.InDelta(t, 5*1.15, sc.Damage, 1e-9)
	assert.InDelta(t, 162.0, sc.Range, 1e-9)
	assert.InDelta(t, 0.65*0.93, sc.Slow.Factor, 1e-9)
	assert.InDelta(t, 1.55, sc.Slow.Duration, 1e-9)
	// определение башни не меняется
	assert.Equal(t, 0.65, slow.Slow.Factor)
}

func TestTurretTurnsTowardTarget(t *testing.T) {
	w := newWorld(t)
	laser := testDefs().Towers["laser"]
	tid := w.tower(200, 60, laser)
	enemy := w.spawn(200, 1e6, 0)
	combat := NewCombatSystem(w.ecs, w.disp)

	combat.Update(dt)
	turret := w.ecs.Turrets[tid]
	require.NotNil(t, turret)
	assert.InDelta(t, -math.Pi/2, turret.TargetAngle, 1e-9)
	assert.Less(t, turret.Angle, 0.0)
	assert.Greater(t, turret.Angle, -math.Pi/2)

	for i := 0; i < 120; i++ {
		combat.Update(dt)
	}
	assert.InDelta(t, -math.Pi/2, turret.Angle, 1e-3)

	// цель пропала: турель держит последний угол
	w.ecs.Enemies[enemy].Alive = false
	combat.Update(dt)
	assert.InDelta(t, -math.Pi/2, turret.Angle, 1e-3)
}
