// component/movement.go
package component

import "go-station-defense/pkg/geom"

// Position — компонент позиции (центр сущности в пикселях)
type Position struct {
	X, Y float64
}

func (p *Position) Vec() geom.Vec2 {
	return geom.V(p.X, p.Y)
}

func (p *Position) Set(v geom.Vec2) {
	p.X, p.Y = v.X, v.Y
}

// Velocity — базовая и текущая (с учётом замедления) скорость
type Velocity struct {
	BaseSpeed float64
	Speed     float64
}

// Path — продвижение по ломаной: индекс последней пройденной точки и прогресс.
type Path struct {
	CurrentIndex int
	Progress     float64 // CurrentIndex + доля текущего отрезка
}
