// internal/ui/button.go
package ui

import (
	"image"

	"go-station-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect  image.Rectangle
	Text  string
	Face  font.Face
	hover bool
}

// NewButton создает новую кнопку.
func NewButton(x, y, w, h int, label string, face font.Face) *Button {
	return &Button{
		Rect: image.Rect(x, y, x+w, y+h),
		Text: label,
		Face: face,
	}
}

// Contains проверяет, попадает ли точка в кнопку.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Update обновляет подсветку и сообщает, был ли клик по кнопке в этом кадре.
func (b *Button) Update() bool {
	x, y := ebiten.CursorPosition()
	b.hover = b.Contains(x, y)
	return b.hover && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(screen *ebiten.Image) {
	bg := config.ButtonColor
	if b.hover {
		bg = config.ButtonHoverColor
	}
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, true)
	vector.StrokeRect(screen, x, y, w, h, 2, config.ButtonStrokeColor, true)

	bounds := text.BoundString(b.Face, b.Text)
	textX := b.Rect.Min.X + (b.Rect.Dx()-bounds.Dx())/2
	textY := b.Rect.Min.Y + (b.Rect.Dy()-bounds.Dy())/2 - bounds.Min.Y
	text.Draw(screen, b.Text, b.Face, textX, textY, config.TextLightColor)
}
