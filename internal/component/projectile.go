// internal/component/projectile.go
package component

import "go-station-defense/internal/types"

// Projectile представляет летящий снаряд. Цель не принадлежит снаряду:
// её жизнь проверяется каждый кадр.
type Projectile struct {
	SourceID types.EntityID
	TargetID types.EntityID
	Speed    float64
	Damage   float64
	Radius   float64
	Slow     *SlowPayload
	Alive    bool
}

// Beam — мгновенный луч. Урон уже нанесён при создании, луч живёт только для отрисовки.
type Beam struct {
	SourceID     types.EntityID
	TargetID     types.EntityID
	FromX, FromY float64
	ToX, ToY     float64
	Timer        float64 // сколько уже прожил
	Duration     float64
	Alive        bool
}
