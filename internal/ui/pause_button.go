// internal/ui/pause_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PauseButton рисует «паузу» или «play» в зависимости от состояния.
type PauseButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	IsPaused      bool
	PauseColor    color.RGBA
	PlayColor     color.RGBA
}

func NewPauseButton(x, y, size float32, pauseColor, playColor color.RGBA) *PauseButton {
	return &PauseButton{
		X:          x,
		Y:          y,
		Size:       size,
		PauseColor: pauseColor,
		PlayColor:  playColor,
	}
}

func (b *PauseButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	s := b.Size * float32(scale)

	if b.IsPaused {
		// Треугольник (play)
		fillPolygon(screen, [][2]float32{
			{b.X - s, b.Y - s*1.2},
			{b.X + s, b.Y},
			{b.X - s, b.Y + s*1.2},
		}, b.PlayColor)
		return
	}
	// Два прямоугольника (pause)
	barW := s * 0.6
	vector.DrawFilledRect(screen, b.X-s, b.Y-s*1.2, barW, s*2.4, b.PauseColor, true)
	vector.DrawFilledRect(screen, b.X+s-barW, b.Y-s*1.2, barW, s*2.4, b.PauseColor, true)
	vector.StrokeRect(screen, b.X-s, b.Y-s*1.2, barW, s*2.4, 1, color.White, true)
	vector.StrokeRect(screen, b.X+s-barW, b.Y-s*1.2, barW, s*2.4, 1, color.White, true)
}

func (b *PauseButton) IsClicked(x, y int) bool {
	dx := float32(x) - b.X
	dy := float32(y) - b.Y
	r := b.Size * 1.5
	return dx*dx+dy*dy <= r*r
}

func (b *PauseButton) SetPaused(paused bool) {
	if b.IsPaused != paused {
		b.LastClickTime = time.Now()
	}
	b.IsPaused = paused
}
