// pkg/utils/math.go
package utils

import "math"

// NormalizeAngle приводит угол к диапазону (-Pi, Pi].
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a <= -math.Pi {
		a += 2 * math.Pi
	} else if a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}

// LerpAngle поворачивает from к to на долю t по кратчайшей дуге.
func LerpAngle(from, to, t float64) float64 {
	if t >= 1 {
		return NormalizeAngle(to)
	}
	if t <= 0 {
		return NormalizeAngle(from)
	}
	return NormalizeAngle(from + NormalizeAngle(to-from)*t)
}
