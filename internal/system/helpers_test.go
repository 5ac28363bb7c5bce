package system

import (
	"testing"

	"go-station-defense/internal/defs"
	"go-station-defense/internal/entity"
	"go-station-defense/internal/event"
	"go-station-defense/internal/types"
	"go-station-defense/pkg/geom"
	"go-station-defense/pkg/pathmap"
)

const dt = 1.0 / 60

type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) { r.events = append(r.events, e) }

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

type world struct {
	ecs  *entity.ECS
	path *pathmap.PathMap
	disp *event.Dispatcher
	rec  *recorder
}

// прямая дорога длиной 1000 пикселей вдоль оси X
func newWorld(t *testing.T) *world {
	t.Helper()
	disp := event.NewDispatcher()
	rec := &recorder{}
	disp.SubscribeAll(rec,
		event.EnemySpawned, event.EnemyKilled, event.EnemyReachedBase, event.ShotFired,
		event.TowerDestroyed, event.WaveStarted, event.WaveEnded)
	return &world{
		ecs:  entity.NewECS(),
		path: pathmap.New([]geom.Vec2{geom.V(0, 0), geom.V(500, 0), geom.V(1000, 0)}, 40),
		disp: disp,
		rec:  rec,
	}
}

func (w *world) spawn(x float64, hp, speed float64) types.EntityID {
	id := SpawnEnemy(w.ecs, w.path, defs.EnemyStats{Health: hp, Speed: speed, Reward: 10, Radius: 12}, 1, 0)
	w.ecs.Positions[id].X = x
	idx := 0
	if x >= 500 {
		idx = 1
	}
	w.ecs.Paths[id].CurrentIndex = idx
	w.ecs.Paths[id].Progress = w.path.Progress(idx, geom.V(x, 0))
	return id
}

func (w *world) tower(x, y float64, def *defs.TowerDefinition) types.EntityID {
	return SpawnTower(w.ecs, def, geom.V(x, y))
}
