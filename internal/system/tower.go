package system

import (
	"go-station-defense/internal/component"
	"go-station-defense/internal/config"
	"go-station-defense/internal/defs"
	"go-station-defense/internal/entity"
	"go-station-defense/internal/types"
	"go-station-defense/pkg/geom"
)

const turretTurnSpeed = 12.0

// SpawnTower creates a level 1 tower of def at pos.
func SpawnTower(ecs *entity.ECS, def *defs.TowerDefinition, pos geom.Vec2) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: pos.X, Y: pos.Y}
	ecs.Towers[id] = &component.Tower{DefID: def.ID, Level: 1, Radius: config.TowerRadius}

	combat := &component.Combat{
		Range:           def.Range,
		Cooldown:        def.Cooldown,
		Damage:          def.Damage,
		ProjectileSpeed: def.ProjectileSpeed,
		Projectile:      def.Projectile,
	}
	if def.Slow != nil {
		combat.Slow = &component.SlowPayload{Factor: def.Slow.Factor, Duration: def.Slow.Duration}
	}
	ecs.Combats[id] = combat
	ecs.Turrets[id] = &component.Turret{TurnSpeed: turretTurnSpeed}

	c, ok := config.TowerColors[def.ID]
	if !ok {
		c = config.TowerBodyColor
	}
	ecs.Renderables[id] = &component.Renderable{
		Color:     c,
		Radius:    float32(config.TowerRadius),
		SpriteID:  "towers/" + def.ID,
		HasStroke: true,
	}
	return id
}

// ApplyUpgrade raises the tower one level using def's per-level modifiers.
// The caller is responsible for the level cap and the cost.
func ApplyUpgrade(ecs *entity.ECS, id types.EntityID, def *defs.TowerDefinition) bool {
	tower, ok := ecs.Towers[id]
	if !ok {
		return false
	}
	combat, ok := ecs.Combats[id]
	if !ok {
		return false
	}

	up := def.Upgrade
	tower.Level++
	combat.Damage *= up.DamageMul
	combat.Range += up.RangeAdd
	combat.Cooldown *= up.CooldownMul
	if combat.Slow != nil {
		if up.SlowFactorMul > 0 {
			combat.Slow.Factor *= up.SlowFactorMul
		}
		combat.Slow.Duration += up.SlowDurationAdd
	}
	return true
}
