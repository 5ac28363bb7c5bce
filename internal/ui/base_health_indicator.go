// internal/ui/base_health_indicator.go
package ui

import (
	"strconv"

	"go-station-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	HealthCols          = 5
	HealthCircleRadius  = 5.0
	HealthCircleSpacing = 3.0
)

// BaseHealthIndicator отображает здоровье базы сеткой кружков.
type BaseHealthIndicator struct {
	X, Y float32
}

func NewBaseHealthIndicator(x, y float32) *BaseHealthIndicator {
	return &BaseHealthIndicator{X: x, Y: y}
}

// Draw рисует сетку: заполненные кружки — оставшееся здоровье.
func (i *BaseHealthIndicator) Draw(screen *ebiten.Image, health, maxHealth int, face font.Face) {
	half := maxHealth / 2
	step := float32(HealthCircleRadius*2 + HealthCircleSpacing)

	for j := 0; j < maxHealth; j++ {
		row := j / HealthCols
		col := j % HealthCols
		x := i.X + float32(col)*step + HealthCircleRadius
		y := i.Y + float32(row)*step + HealthCircleRadius

		c := config.HPBarBackColor
		if j < health {
			// меньше половины — красный
			c = config.HPBarFillColor
			if health <= half {
				c = config.EnemyColor
			}
		}
		vector.DrawFilledCircle(screen, x, y, HealthCircleRadius, c, true)
		vector.StrokeCircle(screen, x, y, HealthCircleRadius, 1, config.HPBarStrokeColor, true)
	}

	label := strconv.Itoa(health) + "/" + strconv.Itoa(maxHealth)
	width := int(step * HealthCols)
	drawTextCentered(screen, label, face, int(i.X)+width/2, int(i.Y)-18, config.TextLightColor)
}
