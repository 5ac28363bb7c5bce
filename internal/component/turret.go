package component

// Turret — поворотная «голова» башни, наводится на текущую цель.
type Turret struct {
	Angle       float64 // текущий угол в радианах
	TargetAngle float64
	TurnSpeed   float64 // доля оставшегося угла за секунду
}
