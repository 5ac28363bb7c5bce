package ui

import (
	"fmt"

	"go-station-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

func drawOverlay(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)
}

// DrawGameOver рисует экран окончания игры поверх поля.
func DrawGameOver(screen *ebiten.Image, fonts *Fonts, score, highscore int, newRecord bool) {
	drawOverlay(screen)
	cx := config.ScreenWidth / 2
	drawTextCentered(screen, "GAME OVER", fonts.Big, cx, 200, config.SelectionColor)
	drawTextCentered(screen, fmt.Sprintf("Score: %d", score), fonts.HUD, cx, 300, config.TextLightColor)
	drawTextCentered(screen, fmt.Sprintf("Highscore: %d", highscore), fonts.HUD, cx, 335, config.TextLightColor)
	if newRecord {
		drawTextCentered(screen, "New highscore!", fonts.HUD, cx, 370, config.TowerColors["cannon"])
	}
	drawTextCentered(screen, "Press R to restart, ESC to quit", fonts.HUD, cx, 415, config.TextDimColor)
}

// DrawPaused рисует надпись паузы.
func DrawPaused(screen *ebiten.Image, fonts *Fonts) {
	drawOverlay(screen)
	drawTextCentered(screen, "PAUSED", fonts.Big, config.ScreenWidth/2, config.ScreenHeight/2-40, config.SelectionColor)
	drawTextCentered(screen, "P / F9 to resume", fonts.Small, config.ScreenWidth/2, config.ScreenHeight/2+30, config.TextDimColor)
}
