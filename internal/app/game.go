// internal/app/game.go
package app

import (
	"log"

	"go-station-defense/internal/config"
	"go-station-defense/internal/defs"
	"go-station-defense/internal/entity"
	"go-station-defense/internal/event"
	"go-station-defense/internal/highscore"
	"go-station-defense/internal/system"
	"go-station-defense/internal/types"
	"go-station-defense/internal/utils"
	"go-station-defense/pkg/pathmap"
)

// Game holds the session state: entities, counters, build mode and selection.
type Game struct {
	ECS             *entity.ECS
	Path            *pathmap.PathMap
	Defs            *defs.Library
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService
	Store           highscore.Store

	StatusEffectSystem *system.StatusEffectSystem
	WaveSystem         *system.WaveSystem
	MovementSystem     *system.MovementSystem
	BossSystem         *system.BossSystem
	CombatSystem       *system.CombatSystem
	ProjectileSystem   *system.ProjectileSystem
	RewardSystem       *system.RewardSystem
	VisualEffectSystem *system.VisualEffectSystem
	CleanupSystem      *system.CleanupSystem

	BaseHealth int
	Credits    int
	Score      int
	Highscore  int

	BuildMode     string         // ID башни из defs, "" = не строим
	SelectedTower types.EntityID // 0 = ничего не выбрано

	placement    *placementSpace
	speedIndex   int
	isPaused     bool
	isOver       bool
	newHighscore bool
	gameTime     float64
}

// NewGame creates a session. The high score is read from store once here.
func NewGame(lib *defs.Library, store highscore.Store, rng *utils.PRNGService) *Game {
	if lib == nil {
		panic("definitions cannot be nil")
	}
	g := &Game{
		Path:            pathmap.NewDefault(),
		Defs:            lib,
		EventDispatcher: event.NewDispatcher(),
		Rng:             rng,
		Store:           store,
		Highscore:       highscore.LoadOrZero(store),
	}

	listener := &GameEventListener{game: g}
	g.EventDispatcher.SubscribeAll(listener,
		event.EnemyKilled, event.EnemyReachedBase, event.TowerDestroyed)

	g.Reset()
	return g
}

// Reset starts a fresh run; the high score and subscriptions survive.
func (g *Game) Reset() {
	ecs := entity.NewECS()
	g.ECS = ecs
	g.StatusEffectSystem = system.NewStatusEffectSystem(ecs)
	g.WaveSystem = system.NewWaveSystem(ecs, g.Path, &g.Defs.Waves, g.EventDispatcher)
	g.MovementSystem = system.NewMovementSystem(ecs, g.Path)
	g.BossSystem = system.NewBossSystem(ecs, g.Rng, g.EventDispatcher)
	g.CombatSystem = system.NewCombatSystem(ecs, g.EventDispatcher)
	g.ProjectileSystem = system.NewProjectileSystem(ecs)
	g.RewardSystem = system.NewRewardSystem(ecs, g.EventDispatcher)
	g.VisualEffectSystem = system.NewVisualEffectSystem(ecs)
	g.CleanupSystem = system.NewCleanupSystem(ecs)

	g.placement = newPlacementSpace()
	g.BaseHealth = config.StartBaseHealth
	g.Credits = config.StartCredits
	g.Score = 0
	g.BuildMode = ""
	g.SelectedTower = 0
	g.speedIndex = 0
	g.isPaused = false
	g.isOver = false
	g.newHighscore = false
	g.gameTime = 0
	log.Printf("New run: base %d HP, %d credits, highscore %d", g.BaseHealth, g.Credits, g.Highscore)
}

// Update advances the simulation by one frame. Game speed runs extra fixed steps.
func (g *Game) Update(deltaTime float64) {
	if g.isOver || g.isPaused {
		return
	}
	steps := int(g.SpeedMultiplier())
	if steps < 1 {
		steps = 1
	}
	for i := 0; i < steps && !g.isOver; i++ {
		g.step(deltaTime)
	}
}

func (g *Game) step(dt float64) {
	g.gameTime += dt
	g.ECS.GameTime = g.gameTime

	g.StatusEffectSystem.Update(dt)
	g.WaveSystem.Update(dt)
	g.MovementSystem.Update(dt)
	g.BossSystem.Update(dt)
	g.CombatSystem.Update(dt)
	g.ProjectileSystem.Update(dt)
	g.RewardSystem.Update(dt)
	g.VisualEffectSystem.Update(dt)
	g.CleanupSystem.Update(dt)

	if g.BaseHealth <= 0 {
		g.gameOver()
	}
}

func (g *Game) gameOver() {
	g.BaseHealth = 0
	g.isOver = true
	if highscore.SaveIfHigher(g.Store, g.Highscore, g.Score) {
		g.Highscore = g.Score
		g.newHighscore = true
	}
	log.Printf("Game over at wave %d: score %d, highscore %d", g.WaveNumber(), g.Score, g.Highscore)
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.GameOver,
		Data: event.GameOverData{Score: g.Score, Highscore: g.Highscore, NewHighscore: g.newHighscore},
	})
}

// StartNextWave starts the next wave when the current one is finished.
func (g *Game) StartNextWave() bool {
	if g.isOver {
		return false
	}
	return g.WaveSystem.StartNextWave()
}

func (g *Game) IsWaveFinished() bool { return g.WaveSystem.IsWaveFinished() }
func (g *Game) WaveNumber() int      { return g.ECS.Wave.Number }
func (g *Game) IsOver() bool         { return g.isOver }
func (g *Game) NewHighscore() bool   { return g.newHighscore }
func (g *Game) IsPaused() bool       { return g.isPaused }
func (g *Game) GameTime() float64    { return g.gameTime }

// SetPaused freezes or resumes the simulation.
func (g *Game) SetPaused(paused bool) {
	g.isPaused = paused
}

// SpeedMultiplier returns the current game speed.
func (g *Game) SpeedMultiplier() float64 {
	return config.GameSpeeds[g.speedIndex]
}

// CycleSpeed switches x1 -> x2 -> x4 -> x1.
func (g *Game) CycleSpeed() float64 {
	g.speedIndex = (g.speedIndex + 1) % len(config.GameSpeeds)
	return g.SpeedMultiplier()
}

// GameEventListener обрабатывает события, влияющие на счётчики сессии.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	g := l.game
	switch e.Type {
	case event.EnemyKilled:
		if data, ok := e.Data.(event.EnemyKilledData); ok {
			g.Credits += data.Reward
			g.Score++
		}
	case event.EnemyReachedBase:
		g.BaseHealth -= config.DamagePerLeak
		if g.BaseHealth < 0 {
			g.BaseHealth = 0
		}
	case event.TowerDestroyed:
		if id, ok := e.Data.(types.EntityID); ok {
			g.placement.remove(id)
			if g.SelectedTower == id {
				g.SelectedTower = 0
			}
		}
	}
}
