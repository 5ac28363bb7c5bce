package component

import "go-station-defense/internal/defs"

// Combat — компонент для башен, управляющий атакой
type Combat struct {
	Range           float64
	Cooldown        float64 // текущая перезарядка, уменьшается с уровнем
	CooldownTimer   float64 // оставшееся время до следующего выстрела
	Damage          float64
	ProjectileSpeed float64
	Projectile      defs.ProjectileKind
	Slow            *SlowPayload
}

// SlowPayload — замедление, которое несёт выстрел.
type SlowPayload struct {
	Factor   float64
	Duration float64
}
