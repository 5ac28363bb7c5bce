// internal/defs/enemies.go
package defs

// EnemyStats — характеристики одного врага, рассчитанные для конкретной волны.
type EnemyStats struct {
	Health float64
	Speed  float64
	Reward int
	Radius float64
	Boss   bool
}
