package system

import (
	"go-station-defense/internal/entity"
	"go-station-defense/internal/event"
)

// RewardSystem учитывает каждого выбывшего врага ровно один раз:
// убитый приносит награду, дошедший до базы наносит ей урон.
type RewardSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewRewardSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *RewardSystem {
	return &RewardSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

func (s *RewardSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.EnemyIDs() {
		enemy := s.ecs.Enemies[id]
		if enemy.Alive || enemy.Counted {
			continue
		}
		enemy.Counted = true

		if enemy.ReachedBase {
			s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyReachedBase, Data: id})
			continue
		}
		if health, ok := s.ecs.Healths[id]; ok && health.Value <= 0 {
			_, isBoss := s.ecs.Bosses[id]
			s.eventDispatcher.Dispatch(event.Event{
				Type: event.EnemyKilled,
				Data: event.EnemyKilledData{ID: id, Reward: enemy.Reward, Boss: isBoss},
			})
		}
	}
}
