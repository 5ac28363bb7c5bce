// pkg/pathmap/path.go
package pathmap

import (
	"go-station-defense/internal/config"
	"go-station-defense/pkg/geom"
)

// PathMap — фиксированная ломаная, по которой идут враги, и ширина дороги.
type PathMap struct {
	Waypoints []geom.Vec2
	Width     float64
	segLens   []float64
}

// New builds a path from the given waypoints. At least one waypoint is required.
func New(waypoints []geom.Vec2, width float64) *PathMap {
	if len(waypoints) == 0 {
		panic("pathmap: at least one waypoint is required")
	}
	wps := make([]geom.Vec2, len(waypoints))
	copy(wps, waypoints)

	segLens := make([]float64, 0, len(wps))
	for i := 0; i+1 < len(wps); i++ {
		segLens = append(segLens, geom.Dist(wps[i], wps[i+1]))
	}
	return &PathMap{Waypoints: wps, Width: width, segLens: segLens}
}

// NewDefault returns the station map used by the game.
func NewDefault() *PathMap {
	wps := make([]geom.Vec2, len(config.Waypoints))
	for i, p := range config.Waypoints {
		wps[i] = geom.V(p[0], p[1])
	}
	return New(wps, config.PathWidth)
}

// Start is the spawn point.
func (m *PathMap) Start() geom.Vec2 {
	return m.Waypoints[0]
}

// End is the point where enemies reach the base.
func (m *PathMap) End() geom.Vec2 {
	return m.Waypoints[len(m.Waypoints)-1]
}

// LastIndex is the index of the final waypoint.
func (m *PathMap) LastIndex() int {
	return len(m.Waypoints) - 1
}

// SegmentLength returns the length of the segment starting at waypoint i.
func (m *PathMap) SegmentLength(i int) float64 {
	if i < 0 || i >= len(m.segLens) {
		return 0
	}
	return m.segLens[i]
}

// TotalLength is the length of the whole polyline.
func (m *PathMap) TotalLength() float64 {
	var total float64
	for _, l := range m.segLens {
		total += l
	}
	return total
}

// DistanceToPath returns the shortest distance from p to any segment.
func (m *PathMap) DistanceToPath(p geom.Vec2) float64 {
	if len(m.Waypoints) == 1 {
		return geom.Dist(p, m.Waypoints[0])
	}
	best := -1.0
	for i := 0; i+1 < len(m.Waypoints); i++ {
		d := geom.PointToSegmentDistance(p, m.Waypoints[i], m.Waypoints[i+1])
		if best < 0 || d < best {
			best = d
		}
	}
	return best
}

// IsOnPath reports whether p is too close to the road to build on.
func (m *PathMap) IsOnPath(p geom.Vec2) bool {
	return m.DistanceToPath(p) <= m.Width*config.PathBlockFactor
}

// Progress converts a waypoint index and a position on the following segment
// into a monotonic "how far along" value: idx + fraction of segment idx travelled.
func (m *PathMap) Progress(idx int, pos geom.Vec2) float64 {
	if idx >= m.LastIndex() {
		return float64(m.LastIndex())
	}
	segLen := m.SegmentLength(idx)
	if segLen == 0 {
		return float64(idx)
	}
	remaining := geom.Dist(pos, m.Waypoints[idx+1])
	return float64(idx) + (1.0 - geom.Clamp(remaining/segLen, 0, 1))
}
