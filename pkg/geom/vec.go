// pkg/geom/vec.go
package geom

import "math"

// Vec2 — точка или вектор на плоскости экрана (пиксели).
type Vec2 struct {
	X, Y float64
}

// V is a shorthand constructor.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns the unit vector of v, or the zero vector when v has no length.
func (v Vec2) Normalize() Vec2 {
	d := v.Len()
	if d == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / d, Y: v.Y / d}
}

// Dist returns the distance between a and b.
func Dist(a, b Vec2) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// DistSq returns the squared distance between a and b.
func DistSq(a, b Vec2) float64 {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx*dx + dy*dy
}

// Clamp ограничивает v отрезком [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// ClosestPointOnSegment projects p onto segment ab.
func ClosestPointOnSegment(p, a, b Vec2) Vec2 {
	ab := b.Sub(a)
	abLen2 := ab.X*ab.X + ab.Y*ab.Y
	if abLen2 == 0 {
		return a
	}
	ap := p.Sub(a)
	t := Clamp((ap.X*ab.X+ap.Y*ab.Y)/abLen2, 0, 1)
	return a.Add(ab.Scale(t))
}

// PointToSegmentDistance returns the distance from p to segment ab.
// A degenerate segment (a == b) is treated as the point a.
func PointToSegmentDistance(p, a, b Vec2) float64 {
	return Dist(p, ClosestPointOnSegment(p, a, b))
}

// MoveTowards steps from toward to by at most step and reports whether to was reached.
func MoveTowards(from, to Vec2, step float64) (Vec2, bool) {
	d := Dist(from, to)
	if d <= step {
		return to, true
	}
	return from.Add(to.Sub(from).Normalize().Scale(step)), false
}
