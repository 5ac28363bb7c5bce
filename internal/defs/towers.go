// internal/defs/towers.go
package defs

import "fmt"

// ProjectileKind defines how a tower delivers damage.
type ProjectileKind string

const (
	ProjectileBullet ProjectileKind = "bullet" // летящий снаряд
	ProjectileBeam   ProjectileKind = "beam"   // мгновенный луч
)

// TowerDefinition holds all the static data for a specific type of tower.
type TowerDefinition struct {
	ID              string         `yaml:"id"`
	Name            string         `yaml:"name"`
	Key             int            `yaml:"key"` // цифровая клавиша режима строительства
	Cost            int            `yaml:"cost"`
	UpgradeCosts    []int          `yaml:"upgradeCosts"` // lvl1->2, lvl2->3
	Range           float64        `yaml:"range"`
	Cooldown        float64        `yaml:"cooldown"`
	Damage          float64        `yaml:"damage"`
	ProjectileSpeed float64        `yaml:"projectileSpeed"`
	Projectile      ProjectileKind `yaml:"projectile"`
	Slow            *SlowDef       `yaml:"slow,omitempty"`
	Upgrade         UpgradeDef     `yaml:"upgrade"`
}

// SlowDef describes the slow payload carried by a tower's shots.
type SlowDef struct {
	Factor   float64 `yaml:"factor"`
	Duration float64 `yaml:"duration"`
}

// UpgradeDef — изменения характеристик за один уровень.
type UpgradeDef struct {
	DamageMul       float64 `yaml:"damageMul"`
	RangeAdd        float64 `yaml:"rangeAdd"`
	CooldownMul     float64 `yaml:"cooldownMul"`
	SlowFactorMul   float64 `yaml:"slowFactorMul"`
	SlowDurationAdd float64 `yaml:"slowDurationAdd"`
}

// UpgradeCost returns the price to go from level to level+1.
// ok is false when the tower is already at the level cap.
func (d *TowerDefinition) UpgradeCost(level, maxLevel int) (cost int, ok bool) {
	if level >= maxLevel || level < 1 || level-1 >= len(d.UpgradeCosts) {
		return 0, false
	}
	return d.UpgradeCosts[level-1], true
}

func (d *TowerDefinition) validate(maxLevel int) error {
	if d.ID == "" {
		return fmt.Errorf("tower definition without id")
	}
	if d.Cost <= 0 {
		return fmt.Errorf("tower %s: cost must be positive", d.ID)
	}
	if len(d.UpgradeCosts) != maxLevel-1 {
		return fmt.Errorf("tower %s: want %d upgrade costs, got %d", d.ID, maxLevel-1, len(d.UpgradeCosts))
	}
	if d.Range <= 0 || d.Cooldown <= 0 || d.Damage < 0 {
		return fmt.Errorf("tower %s: range and cooldown must be positive", d.ID)
	}
	switch d.Projectile {
	case ProjectileBeam:
	case ProjectileBullet:
		if d.ProjectileSpeed <= 0 {
			return fmt.Errorf("tower %s: bullet towers need a projectile speed", d.ID)
		}
	default:
		return fmt.Errorf("tower %s: unknown projectile %q", d.ID, d.Projectile)
	}
	if d.Slow != nil && (d.Slow.Factor <= 0 || d.Slow.Factor > 1 || d.Slow.Duration <= 0) {
		return fmt.Errorf("tower %s: slow factor must be in (0,1] with a positive duration", d.ID)
	}
	return nil
}
