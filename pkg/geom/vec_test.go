package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, Vec2{}, Vec2{}.Normalize())

	n := V(3, 4).Normalize()
	assert.InDelta(t, 0.6, n.X, 1e-9)
	assert.InDelta(t, 0.8, n.Y, 1e-9)
	assert.InDelta(t, 1.0, n.Len(), 1e-9)
}

func TestPointToSegmentDistance(t *testing.T) {
	a, b := V(0, 0), V(10, 0)

	tests := []struct {
		name string
		p    Vec2
		want float64
	}{
		{"above middle", V(5, 3), 3},
		{"on segment", V(7, 0), 0},
		{"before start", V(-3, 4), 5},
		{"after end", V(13, 4), 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, PointToSegmentDistance(tt.p, a, b), 1e-9)
		})
	}
}

func TestPointToSegmentDistanceDegenerate(t *testing.T) {
	assert.InDelta(t, 5.0, PointToSegmentDistance(V(3, 4), V(0, 0), V(0, 0)), 1e-9)
}

func TestMoveTowards(t *testing.T) {
	p, reached := MoveTowards(V(0, 0), V(10, 0), 4)
	assert.False(t, reached)
	assert.InDelta(t, 4.0, p.X, 1e-9)

	p, reached = MoveTowards(V(8, 0), V(10, 0), 4)
	assert.True(t, reached)
	assert.Equal(t, V(10, 0), p)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-1, 0, 1))
	assert.Equal(t, 1.0, Clamp(2, 0, 1))
	assert.Equal(t, 0.5, Clamp(0.5, 0, 1))
	assert.False(t, math.IsNaN(Clamp(0, 0, 0)))
}
