package ui

import (
	"strings"

	"go-station-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y             int
	OutlineThickness int
	BossEvery        int
}

// NewWaveIndicator создает новый индикатор волны.
func NewWaveIndicator(x, y, bossEvery int) *WaveIndicator {
	return &WaveIndicator{X: x, Y: y, OutlineThickness: 1, BossEvery: bossEvery}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw отрисовывает индикатор на экране.
func (i *WaveIndicator) Draw(screen *ebiten.Image, waveNumber int, face font.Face) {
	if waveNumber <= 0 {
		return
	}
	label := toRoman(waveNumber)

	textColor := config.TextInfoColor
	if i.BossEvery > 0 && waveNumber%i.BossEvery == 0 {
		textColor = config.BossColor // волна с боссом
	}

	// обводка
	for y := -i.OutlineThickness; y <= i.OutlineThickness; y++ {
		for x := -i.OutlineThickness; x <= i.OutlineThickness; x++ {
			if x == 0 && y == 0 {
				continue
			}
			drawTextCentered(screen, label, face, i.X+x, i.Y+y, config.BackgroundColor)
		}
	}
	drawTextCentered(screen, label, face, i.X, i.Y, textColor)
}
