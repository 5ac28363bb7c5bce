// internal/system/wave.go
package system

import (
	"log"

	"go-station-defense/internal/component"
	"go-station-defense/internal/config"
	"go-station-defense/internal/defs"
	"go-station-defense/internal/entity"
	"go-station-defense/internal/event"
	"go-station-defense/internal/types"
	"go-station-defense/pkg/pathmap"
)

// WaveSystem — спавнер волн на таймере. Каждая BossEvery-я волна состоит из одного босса.
type WaveSystem struct {
	ecs             *entity.ECS
	path            *pathmap.PathMap
	rules           *defs.WaveRules
	eventDispatcher *event.Dispatcher
}

func NewWaveSystem(ecs *entity.ECS, path *pathmap.PathMap, rules *defs.WaveRules, eventDispatcher *event.Dispatcher) *WaveSystem {
	return &WaveSystem{
		ecs:             ecs,
		path:            path,
		rules:           rules,
		eventDispatcher: eventDispatcher,
	}
}

// IsWaveFinished reports whether nothing is left to spawn and no enemy is alive.
func (s *WaveSystem) IsWaveFinished() bool {
	return s.ecs.Wave.ToSpawn <= 0 && s.ecs.AliveEnemies() == 0
}

// StartNextWave advances to the next wave if the current one is finished.
func (s *WaveSystem) StartNextWave() bool {
	if !s.IsWaveFinished() {
		return false
	}
	wave := s.ecs.Wave
	wave.Number++
	n := wave.Number

	wave.ToSpawn = s.rules.SpawnCount(n)
	wave.SpawnTimer = s.rules.FirstSpawnDelay
	wave.SpawnInterval = s.rules.Interval(n)
	wave.Active = true
	wave.BossPending = s.rules.IsBossWave(n)
	wave.BossSpawned = false

	log.Printf("Wave %d started: %d to spawn (boss=%v)", n, wave.ToSpawn, wave.BossPending)
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: n})
	return true
}

func (s *WaveSystem) Update(deltaTime float64) {
	wave := s.ecs.Wave
	if !wave.Active {
		return
	}

	if wave.ToSpawn > 0 {
		wave.SpawnTimer -= deltaTime
		if wave.SpawnTimer <= 0 {
			s.spawnNext(wave)
			wave.ToSpawn--
			wave.SpawnInterval = s.rules.Interval(wave.Number)
			wave.SpawnTimer = wave.SpawnInterval
		}
		return
	}

	if s.ecs.AliveEnemies() == 0 {
		wave.Active = false
		log.Printf("Wave %d cleared", wave.Number)
		s.eventDispatcher.Dispatch(event.Event{Type: event.WaveEnded, Data: wave.Number})
	}
}

func (s *WaveSystem) spawnNext(wave *component.Wave) {
	var id types.EntityID
	if wave.BossPending {
		stats := s.rules.BossStats(wave.Number, config.BossRadius)
		id = SpawnEnemy(s.ecs, s.path, stats, wave.Number, s.rules.Boss.AbilityCooldown)
		wave.BossPending = false
		wave.BossSpawned = true
	} else {
		stats := s.rules.EnemyStats(wave.Number, config.EnemyRadius)
		id = SpawnEnemy(s.ecs, s.path, stats, wave.Number, 0)
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: id})
}

// SpawnEnemy creates an enemy at the start of the path.
func SpawnEnemy(ecs *entity.ECS, path *pathmap.PathMap, stats defs.EnemyStats, waveNumber int, abilityCooldown float64) types.EntityID {
	id := ecs.NewEntity()
	start := path.Start()

	ecs.Positions[id] = &component.Position{X: start.X, Y: start.Y}
	ecs.Velocities[id] = &component.Velocity{BaseSpeed: stats.Speed, Speed: stats.Speed}
	ecs.Paths[id] = &component.Path{CurrentIndex: 0, Progress: 0}
	ecs.Healths[id] = &component.Health{Value: stats.Health, Max: stats.Health}
	ecs.Enemies[id] = &component.Enemy{
		Reward: stats.Reward,
		Radius: stats.Radius,
		Wave:   waveNumber,
		Alive:  true,
	}

	render := &component.Renderable{
		Color:    config.EnemyColor,
		Radius:   float32(stats.Radius),
		SpriteID: enemySprite(waveNumber),
	}
	if stats.Boss {
		ecs.Bosses[id] = &component.Boss{AbilityTimer: abilityCooldown}
		render.Color = config.BossColor
		render.SpriteID = "enemies/boss"
		render.HasStroke = true
	}
	ecs.Renderables[id] = render
	return id
}

// два вида пришельцев чередуются по волнам
func enemySprite(waveNumber int) string {
	if waveNumber%2 == 0 {
		return "enemies/alien2"
	}
	return "enemies/alien"
}
