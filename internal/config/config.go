// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1100
	ScreenHeight = 650
	TPS          = 60
	FixedDelta   = 1.0 / TPS // шаг симуляции в секундах

	PathWidth       = 44.0
	PathBlockFactor = 0.55 // башню нельзя ставить ближе 0.55*ширины к дороге

	BaseX      = ScreenWidth - 110
	BaseY      = ScreenHeight/2 - 70
	BaseWidth  = 90
	BaseHeight = 140

	StartBaseHealth = 25
	StartCredits    = 120
	DamagePerLeak   = 1

	TowerRadius       = 18.0
	TowerSpacing      = 36.0 // минимальное расстояние между центрами башен
	TowerClickPadding = 6.0
	TowerMaxLevel     = 3
	EnemyRadius       = 12.0
	BossRadius        = 22.0
	BulletRadius      = 4.0
	BeamDuration      = 0.08

	StarCount = 180
	StarSeed  = 12345

	HUDFontSize   = 20
	SmallFontSize = 16
	BigFontSize   = 56
)

// Waypoints — ломаная пути от точки спавна до базы.
var Waypoints = [][2]float64{
	{40, 320},
	{220, 320},
	{220, 140},
	{420, 140},
	{420, 500},
	{650, 500},
	{650, 260},
	{820, 260},
	{820, 420},
	{1030, 420},
}

// GameSpeeds are the multipliers cycled by the speed control.
var GameSpeeds = []float64{1, 2, 4}

var (
	BackgroundColor   = color.RGBA{8, 8, 14, 255}
	MenuColor         = color.RGBA{10, 10, 16, 255}
	PathFillColor     = color.RGBA{35, 35, 55, 255}
	PathLineColor     = color.RGBA{80, 80, 120, 255}
	WaypointColor     = color.RGBA{120, 120, 170, 255}
	BaseFillColor     = color.RGBA{30, 70, 120, 255}
	BaseStrokeColor   = color.RGBA{120, 200, 255, 255}
	EnemyColor        = color.RGBA{220, 70, 70, 255}
	SlowedEnemyColor  = color.RGBA{120, 170, 255, 255}
	BossColor         = color.RGBA{200, 60, 200, 255}
	BulletColor       = color.RGBA{255, 230, 120, 255}
	SlowBulletColor   = color.RGBA{140, 200, 255, 255}
	BeamColor         = color.RGBA{255, 80, 80, 220}
	TowerBodyColor    = color.RGBA{60, 60, 90, 255}
	SelectionColor    = color.RGBA{255, 255, 255, 255}
	RangeColor        = color.RGBA{80, 80, 120, 255}
	HPBarBackColor    = color.RGBA{30, 30, 40, 255}
	HPBarFillColor    = color.RGBA{80, 220, 120, 255}
	HPBarStrokeColor  = color.RGBA{150, 150, 200, 255}
	TextLightColor    = color.RGBA{235, 235, 255, 255}
	TextDimColor      = color.RGBA{170, 170, 210, 255}
	TextInfoColor     = color.RGBA{210, 210, 255, 255}
	OverlayColor      = color.RGBA{0, 0, 0, 170}
	ButtonColor       = color.RGBA{40, 40, 60, 255}
	ButtonHoverColor  = color.RGBA{70, 70, 100, 255}
	ButtonStrokeColor = color.RGBA{160, 160, 220, 255}
	TowerColors       = map[string]color.RGBA{
		"laser":  {255, 90, 90, 255},
		"cannon": {230, 190, 90, 255},
		"slow":   {90, 170, 255, 255},
	}
)
