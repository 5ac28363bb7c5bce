package system

import (
	"math"

	"go-station-defense/internal/component"
	"go-station-defense/internal/config"
	"go-station-defense/internal/defs"
	"go-station-defense/internal/entity"
	"go-station-defense/internal/event"
	"go-station-defense/internal/types"
	"go-station-defense/pkg/geom"
	"go-station-defense/pkg/utils"
)

// CombatSystem управляет атакой башен
type CombatSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
	}
}

func (s *CombatSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.TowerIDs() {
		combat, ok := s.ecs.Combats[id]
		if !ok {
			continue
		}
		towerPos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}

		// цель пересчитывается каждый кадр, захвата нет
		targetID, found := FindTarget(s.ecs, towerPos.Vec(), combat.Range)
		s.aim(id, towerPos, targetID, found, deltaTime)

		if combat.CooldownTimer > 0 {
			combat.CooldownTimer -= deltaTime
			if combat.CooldownTimer < 0 {
				combat.CooldownTimer = 0
			}
		}
		// без цели перезарядка остаётся на нуле
		if combat.CooldownTimer > 0 || !found {
			continue
		}

		s.shoot(id, targetID, towerPos, combat)
		combat.CooldownTimer = combat.Cooldown
	}
}

// aim плавно поворачивает турель к цели. Без цели турель остаётся как есть.
func (s *CombatSystem) aim(towerID types.EntityID, towerPos *component.Position, targetID types.EntityID, found bool, deltaTime float64) {
	turret, ok := s.ecs.Turrets[towerID]
	if !ok {
		return
	}
	if found {
		if targetPos, ok := s.ecs.Positions[targetID]; ok {
			turret.TargetAngle = math.Atan2(targetPos.Y-towerPos.Y, targetPos.X-towerPos.X)
		}
	}
	turret.Angle = utils.LerpAngle(turret.Angle, turret.TargetAngle, turret.TurnSpeed*deltaTime)
}

func (s *CombatSystem) shoot(towerID, targetID types.EntityID, towerPos *component.Position, combat *component.Combat) {
	switch combat.Projectile {
	case defs.ProjectileBeam:
		s.fireBeam(towerID, targetID, towerPos, combat)
	default:
		s.createProjectile(towerID, targetID, towerPos, combat)
	}

	defID := ""
	if tower, ok := s.ecs.Towers[towerID]; ok {
		defID = tower.DefID
	}
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.ShotFired,
		Data: event.ShotFiredData{TowerID: towerID, TargetID: targetID, DefID: defID},
	})
}

// FindTarget returns the alive enemy within rng that is furthest along the path.
// Ties go to the enemy spawned first.
func FindTarget(ecs *entity.ECS, from geom.Vec2, rng float64) (types.EntityID, bool) {
	var best types.EntityID
	bestProgress := -1e9
	found := false
	rangeSq := rng * rng

	for _, id := range ecs.EnemyIDs() {
		if !ecs.IsEnemyAlive(id) {
			continue
		}
		pos, ok := ecs.Positions[id]
		if !ok || geom.DistSq(from, pos.Vec()) > rangeSq {
			continue
		}
		progress := 0.0
		if path, ok := ecs.Paths[id]; ok {
			progress = path.Progress
		}
		if progress > bestProgress {
			bestProgress = progress
			best = id
			found = true
		}
	}
	return best, found
}

// fireBeam наносит урон сразу и оставляет короткоживущий луч для отрисовки.
func (s *CombatSystem) fireBeam(towerID, targetID types.EntityID, towerPos *component.Position, combat *component.Combat) {
	targetPos := s.ecs.Positions[targetID]
	ApplyDamage(s.ecs, targetID, combat.Damage)
	if combat.Slow != nil && s.ecs.IsEnemyAlive(targetID) {
		ApplySlow(s.ecs, targetID, combat.Slow.Factor, combat.Slow.Duration)
	}

	beamID := s.ecs.NewEntity()
	s.ecs.Beams[beamID] = &component.Beam{
		SourceID: towerID,
		TargetID: targetID,
		FromX:    towerPos.X,
		FromY:    towerPos.Y,
		ToX:      targetPos.X,
		ToY:      targetPos.Y,
		Duration: config.BeamDuration,
		Alive:    true,
	}
	s.ecs.Renderables[beamID] = &component.Renderable{Color: config.BeamColor, Radius: 2}
}

func (s *CombatSystem) createProjectile(towerID, targetID types.EntityID, towerPos *component.Position, combat *component.Combat) {
	projID := s.ecs.NewEntity()

	proj := &component.Projectile{
		SourceID: towerID,
		TargetID: targetID,
		Speed:    combat.ProjectileSpeed,
		Damage:   combat.Damage,
		Radius:   config.BulletRadius,
		Alive:    true,
	}
	projColor := config.BulletColor
	// Снаряд башни замедления несёт эффект
	if combat.Slow != nil {
		slow := *combat.Slow
		proj.Slow = &slow
		projColor = config.SlowBulletColor
	}

	s.ecs.Positions[projID] = &component.Position{X: towerPos.X, Y: towerPos.Y}
	s.ecs.Projectiles[projID] = proj
	s.ecs.Renderables[projID] = &component.Renderable{
		Color:  projColor,
		Radius: float32(config.BulletRadius),
	}
}
