package defs

import (
	"fmt"
	"math"
)

// WaveRules описывает линейное масштабирование волн от их номера.
type WaveRules struct {
	BaseHP           float64  `yaml:"baseHP"`
	HPPerWave        float64  `yaml:"hpPerWave"`
	BaseSpeed        float64  `yaml:"baseSpeed"`
	SpeedPerWave     float64  `yaml:"speedPerWave"`
	BaseReward       int      `yaml:"baseReward"`
	RewardDivisor    int      `yaml:"rewardDivisor"`
	BaseCount        int      `yaml:"baseCount"`
	CountPerWave     int      `yaml:"countPerWave"`
	FirstSpawnDelay  float64  `yaml:"firstSpawnDelay"`
	SpawnInterval    float64  `yaml:"spawnInterval"`
	IntervalPerWave  float64  `yaml:"intervalPerWave"`
	MinSpawnInterval float64  `yaml:"minSpawnInterval"`
	BossEvery        int      `yaml:"bossEvery"`
	Boss             BossRule `yaml:"boss"`
}

// BossRule scales a boss from the regular enemy stats of the same wave.
type BossRule struct {
	HPMul           float64 `yaml:"hpMul"`
	SpeedMul        float64 `yaml:"speedMul"`
	RewardMul       int     `yaml:"rewardMul"`
	AbilityCooldown float64 `yaml:"abilityCooldown"`
}

// IsBossWave reports whether wave n spawns a single boss instead of a sequence.
func (r *WaveRules) IsBossWave(n int) bool {
	return r.BossEvery > 0 && n > 0 && n%r.BossEvery == 0
}

// SpawnCount is the number of entities wave n releases.
func (r *WaveRules) SpawnCount(n int) int {
	if r.IsBossWave(n) {
		return 1
	}
	return r.BaseCount + r.CountPerWave*n
}

// Interval is the delay between two spawns of wave n.
func (r *WaveRules) Interval(n int) float64 {
	return math.Max(r.MinSpawnInterval, r.SpawnInterval-r.IntervalPerWave*float64(n))
}

// EnemyStats returns regular enemy stats for wave n.
func (r *WaveRules) EnemyStats(n int, radius float64) EnemyStats {
	reward := r.BaseReward
	if r.RewardDivisor > 0 {
		reward += n / r.RewardDivisor
	}
	return EnemyStats{
		Health: r.BaseHP + r.HPPerWave*float64(n),
		Speed:  r.BaseSpeed + r.SpeedPerWave*float64(n),
		Reward: reward,
		Radius: radius,
	}
}

// BossStats returns the boss stats for wave n.
func (r *WaveRules) BossStats(n int, radius float64) EnemyStats {
	base := r.EnemyStats(n, radius)
	return EnemyStats{
		Health: base.Health * r.Boss.HPMul,
		Speed:  base.Speed * r.Boss.SpeedMul,
		Reward: base.Reward * r.Boss.RewardMul,
		Radius: radius,
		Boss:   true,
	}
}

func (r *WaveRules) validate() error {
	if r.BaseHP <= 0 || r.BaseSpeed <= 0 {
		return fmt.Errorf("waves: base HP and speed must be positive")
	}
	if r.BaseCount < 0 || r.CountPerWave < 0 {
		return fmt.Errorf("waves: spawn counts must not be negative")
	}
	if r.MinSpawnInterval <= 0 {
		return fmt.Errorf("waves: minSpawnInterval must be positive")
	}
	if r.BossEvery > 0 && (r.Boss.HPMul <= 0 || r.Boss.SpeedMul <= 0) {
		return fmt.Errorf("waves: boss multipliers must be positive")
	}
	return nil
}
