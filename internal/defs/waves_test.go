package defs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpawnCount(t *testing.T) {
	rules := Default().Waves
	for n := 1; n <= 12; n++ {
		if n%3 == 0 {
			assert.True(t, rules.IsBossWave(n), "wave %d", n)
			assert.Equal(t, 1, rules.SpawnCount(n), "wave %d", n)
		} else {
			assert.False(t, rules.IsBossWave(n), "wave %d", n)
			assert.Equal(t, 6+2*n, rules.SpawnCount(n), "wave %d", n)
		}
	}
}

func TestEnemyStatsScaleLinearly(t *testing.T) {
	rules := Default().Waves

	s := rules.EnemyStats(1, 12)
	assert.Equal(t, 26.0, s.Health)
	assert.Equal(t, 87.0, s.Speed)
	assert.Equal(t, 8, s.Reward)
	assert.False(t, s.Boss)

	s = rules.EnemyStats(5, 12)
	assert.Equal(t, 50.0, s.Health)
	assert.Equal(t, 95.0, s.Speed)
	assert.Equal(t, 10, s.Reward)
}

func TestBossStats(t *testing.T) {
	rules := Default().Waves
	b := rules.BossStats(3, 22)
	assert.True(t, b.Boss)
	assert.Equal(t, 38.0*12, b.Health)
	assert.InDelta(t, 91.0*0.6, b.Speed, 1e-9)
	assert.Equal(t, 9*6, b.Reward)
	assert.Equal(t, 22.0, b.Radius)
}

func TestInterval(t *testing.T) {
	rules := Default().Waves
	assert.InDelta(t, 0.64, rules.Interval(1), 1e-9)
	assert.InDelta(t, 0.35, rules.Interval(30), 1e-9)
	assert.InDelta(t, 0.35, rules.Interval(100), 1e-9)
}
