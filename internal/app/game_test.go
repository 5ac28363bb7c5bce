package app

import (
	"path/filepath"
	"testing"

	"go-station-defense/internal/config"
	"go-station-defense/internal/defs"
	"go-station-defense/internal/event"
	"go-station-defense/internal/highscore"
	"go-station-defense/internal/system"
	"go-station-defense/internal/types"
	"go-station-defense/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dt = config.FixedDelta

func newTestGame(t *testing.T) (*Game, *highscore.FileStore) {
	t.Helper()
	store := highscore.NewFileStore(filepath.Join(t.TempDir(), "highscore.json"))
	return NewGame(defs.Default(), store, utils.NewPRNGService(1)), store
}

// spawnAtBase puts a regular enemy on the last segment, one step from the base.
func spawnAtBase(g *Game) types.EntityID {
	stats := g.Defs.Waves.EnemyStats(1, config.EnemyRadius)
	id := system.SpawnEnemy(g.ECS, g.Path, stats, 1, 0)
	end := g.Path.End()
	g.ECS.Positions[id].Set(end)
	g.ECS.Paths[id].CurrentIndex = g.Path.LastIndex()
	return id
}

func TestNewGameStartingState(t *testing.T) {
	g, _ := newTestGame(t)
	assert.Equal(t, config.StartBaseHealth, g.BaseHealth)
	assert.Equal(t, config.StartCredits, g.Credits)
	assert.Zero(t, g.Score)
	assert.Zero(t, g.Highscore)
	assert.Zero(t, g.WaveNumber())
	assert.True(t, g.IsWaveFinished())
	assert.Equal(t, 1.0, g.SpeedMultiplier())
}

func TestHighscoreLoadedAtStart(t *testing.T) {
	store := highscore.NewFileStore(filepath.Join(t.TempDir(), "highscore.json"))
	require.NoError(t, store.Save(33))

	g := NewGame(defs.Default(), store, utils.NewPRNGService(1))
	assert.Equal(t, 33, g.Highscore)
}

func TestKillGivesCreditsAndScoreOnce(t *testing.T) {
	g, _ := newTestGame(t)
	stats := g.Defs.Waves.EnemyStats(1, config.EnemyRadius)
	id := system.SpawnEnemy(g.ECS, g.Path, stats, 1, 0)
	require.True(t, system.ApplyDamage(g.ECS, id, 1000))

	for i := 0; i < 10; i++ {
		g.Update(dt)
	}
	assert.Equal(t, config.StartCredits+stats.Reward, g.Credits)
	assert.Equal(t, 1, g.Score)
	assert.NotContains(t, g.ECS.Enemies, id)
}

func TestLeakDamagesBase(t *testing.T) {
	g, _ := newTestGame(t)
	spawnAtBase(g)
	g.Update(dt)
	g.Update(dt)
	assert.Equal(t, config.StartBaseHealth-config.DamagePerLeak, g.BaseHealth)
	assert.Zero(t, g.Score)
	assert.Equal(t, config.StartCredits, g.Credits)
}

func TestGameOverSavesOnlyHigherScore(t *testing.T) {
	t.Run("new record", func(t *testing.T) {
		g, store := newTestGame(t)
		var over *event.GameOverData
		g.EventDispatcher.Subscribe(event.GameOver, event.ListenerFunc(func(e event.Event) {
			data := e.Data.(event.GameOverData)
			over = &data
		}))

		g.Score = 5
		g.BaseHealth = 1
		spawnAtBase(g)
		g.Update(dt)
		g.Update(dt)

		require.True(t, g.IsOver())
		assert.Zero(t, g.BaseHealth)
		assert.True(t, g.NewHighscore())
		assert.Equal(t, 5, g.Highscore)
		assert.Equal(t, 5, highscore.LoadOrZero(store))
		require.NotNil(t, over)
		assert.Equal(t, 5, over.Score)
		assert.True(t, over.NewHighscore)
	})

	t.Run("no record", func(t *testing.T) {
		store := highscore.NewFileStore(filepath.Join(t.TempDir(), "highscore.json"))
		require.NoError(t, store.Save(10))
		g := NewGame(defs.Default(), store, utils.NewPRNGService(1))

		g.Score = 4
		g.BaseHealth = 1
		spawnAtBase(g)
		g.Update(dt)
		g.Update(dt)

		require.True(t, g.IsOver())
		assert.False(t, g.NewHighscore())
		assert.Equal(t, 10, g.Highscore)
		assert.Equal(t, 10, highscore.LoadOrZero(store))
	})
}

func TestGameOverFreezesSimulation(t *testing.T) {
	g, _ := newTestGame(t)
	g.BaseHealth = 1
	spawnAtBase(g)
	g.Update(dt)
	g.Update(dt)
	require.True(t, g.IsOver())

	before := g.GameTime()
	g.Update(dt)
	assert.Equal(t, before, g.GameTime())
	assert.False(t, g.StartNextWave())
}

func TestPauseAndSpeed(t *testing.T) {
	g, _ := newTestGame(t)

	g.SetPaused(true)
	g.Update(dt)
	assert.Zero(t, g.GameTime())
	g.SetPaused(false)

	assert.Equal(t, 2.0, g.CycleSpeed())
	g.Update(dt)
	assert.InDelta(t, 2*dt, g.GameTime(), 1e-12)
	assert.Equal(t, 4.0, g.CycleSpeed())
	assert.Equal(t, 1.0, g.CycleSpeed())
}

func TestResetKeepsHighscore(t *testing.T) {
	g, _ := newTestGame(t)
	g.Highscore = 12
	g.Credits = 3
	require.True(t, g.StartNextWave())
	g.CycleSpeed()

	g.Reset()
	assert.Equal(t, 12, g.Highscore)
	assert.Equal(t, config.StartCredits, g.Credits)
	assert.Zero(t, g.WaveNumber())
	assert.Equal(t, 1.0, g.SpeedMultiplier())
	assert.Empty(t, g.ECS.Enemies)
}

func TestWavesCannotOverlap(t *testing.T) {
	g, _ := newTestGame(t)
	require.True(t, g.StartNextWave())
	assert.False(t, g.StartNextWave())
	assert.Equal(t, 1, g.WaveNumber())
}
