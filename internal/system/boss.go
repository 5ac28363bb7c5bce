package system

import (
	"log"

	"go-station-defense/internal/entity"
	"go-station-defense/internal/event"
	"go-station-defense/internal/utils"
)

// BossSystem ведёт таймер способности босса: один раз за жизнь он уничтожает случайную башню.
type BossSystem struct {
	ecs             *entity.ECS
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
}

func NewBossSystem(ecs *entity.ECS, rng *utils.PRNGService, eventDispatcher *event.Dispatcher) *BossSystem {
	return &BossSystem{ecs: ecs, rng: rng, eventDispatcher: eventDispatcher}
}

func (s *BossSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.BossIDs() {
		boss := s.ecs.Bosses[id]
		if boss.AbilityUsed || !s.ecs.IsEnemyAlive(id) {
			continue
		}
		if boss.AbilityTimer > 0 {
			boss.AbilityTimer -= deltaTime
		}
		if boss.AbilityTimer > 0 {
			continue
		}

		// Нет башен — способность остаётся взведённой
		towers := s.ecs.TowerIDs()
		if len(towers) == 0 {
			continue
		}
		victim := towers[s.rng.Intn(len(towers))]
		boss.AbilityUsed = true

		log.Printf("Boss %d destroyed tower %d", id, victim)
		// Подписчики (placement, selection) должны увидеть башню до удаления
		s.eventDispatcher.Dispatch(event.Event{Type: event.TowerDestroyed, Data: victim})
		s.ecs.RemoveEntity(victim)
	}
}
