// internal/ui/speed_button.go
package ui

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// SpeedButton — кнопка переключения скорости x1/x2/x4.
type SpeedButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	StateColors   []color.RGBA
	Labels        []string
	CurrentState  int
}

func NewSpeedButton(x, y, size float32, speeds []float64, stateColors []color.RGBA) *SpeedButton {
	labels := make([]string, len(speeds))
	for i, s := range speeds {
		labels[i] = fmt.Sprintf("x%g", s)
	}
	return &SpeedButton{
		X:           x,
		Y:           y,
		Size:        size,
		StateColors: stateColors,
		Labels:      labels,
	}
}

func (b *SpeedButton) Draw(screen *ebiten.Image, face font.Face) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	size := b.Size * float32(scale)

	c := b.StateColors[b.CurrentState%len(b.StateColors)]
	height := size * 1.2
	width := size
	offset := width * 0.8

	// два треугольника «перемотки»
	for _, dx := range []float32{0, offset} {
		pts := [][2]float32{
			{b.X - width + dx, b.Y - height/2},
			{b.X + dx, b.Y},
			{b.X - width + dx, b.Y + height/2},
		}
		fillPolygon(screen, pts, c)
		vector.StrokeLine(screen, pts[0][0], pts[0][1], pts[1][0], pts[1][1], 1, color.White, true)
		vector.StrokeLine(screen, pts[1][0], pts[1][1], pts[2][0], pts[2][1], 1, color.White, true)
		vector.StrokeLine(screen, pts[2][0], pts[2][1], pts[0][0], pts[0][1], 1, color.White, true)
	}

	if b.CurrentState < len(b.Labels) {
		drawTextCentered(screen, b.Labels[b.CurrentState], face, int(b.X), int(b.Y+height/2+4), color.White)
	}
}

func (b *SpeedButton) IsClicked(x, y int) bool {
	// форма сложная, проверяем круг
	dx := float32(x) - b.X
	dy := float32(y) - b.Y
	r := b.Size * 1.5
	return dx*dx+dy*dy <= r*r
}

// SetState выставляет состояние без анимации (после рестарта).
func (b *SpeedButton) SetState(i int) {
	b.CurrentState = i
}

func (b *SpeedButton) ToggleState() {
	b.CurrentState = (b.CurrentState + 1) % len(b.StateColors)
	b.LastClickTime = time.Now()
}
