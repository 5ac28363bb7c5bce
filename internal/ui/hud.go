// internal/ui/hud.go
package ui

import (
	"fmt"
	"strings"
	"time"

	"go-station-defense/internal/app"
	"go-station-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	hudX          = 14
	hudY          = 12
	hudLineHeight = 26
	messageTTL    = 2 * time.Second
)

// HUD рисует счётчики сессии, подсказки и информацию о выбранной башне.
type HUD struct {
	fonts      *Fonts
	wave       *WaveIndicator
	baseHealth *BaseHealthIndicator
	tips       string
	message    string
	messageAt  time.Time
}

func NewHUD(fonts *Fonts, game *app.Game) *HUD {
	var parts []string
	for _, id := range game.Defs.TowerOrder {
		def := game.Defs.Towers[id]
		parts = append(parts, fmt.Sprintf("%d %s (%d)", def.Key, def.Name, def.Cost))
	}
	parts = append(parts, "U upgrade", "RMB deselect", "Space next wave", "Tab speed", "P pause")

	return &HUD{
		fonts:      fonts,
		wave:       NewWaveIndicator(config.ScreenWidth/2, hudY, game.Defs.Waves.BossEvery),
		baseHealth: NewBaseHealthIndicator(config.BaseX+12, config.BaseY-72),
		tips:       strings.Join(parts, " | "),
	}
}

// ShowMessage выводит короткое сообщение внизу экрана.
func (h *HUD) ShowMessage(msg string) {
	h.message = msg
	h.messageAt = time.Now()
}

func (h *HUD) Draw(screen *ebiten.Image, game *app.Game) {
	lines := []string{
		fmt.Sprintf("Wave: %d", game.WaveNumber()),
		fmt.Sprintf("Base HP: %d", game.BaseHealth),
		fmt.Sprintf("Credits: %d", game.Credits),
		fmt.Sprintf("Score: %d   (Highscore: %d)", game.Score, game.Highscore),
	}
	for i, line := range lines {
		drawTextAt(screen, line, h.fonts.HUD, hudX, hudY+i*hudLineHeight, config.TextLightColor)
	}

	if info, ok := game.SelectedTowerInfo(); ok {
		s := fmt.Sprintf("Selected: %s | lvl %d | dmg %.1f | rng %.0f | cd %.2f",
			info.Name, info.Level, info.Damage, info.Range, info.Cooldown)
		if info.CanUpgrade {
			s += fmt.Sprintf(" | upgrade %d", info.UpgradeCost)
		} else {
			s += " | max level"
		}
		drawTextAt(screen, s, h.fonts.Small, hudX, hudY+4*hudLineHeight+6, config.TextInfoColor)
	}

	h.wave.Draw(screen, game.WaveNumber(), h.fonts.Big)
	h.baseHealth.Draw(screen, game.BaseHealth, config.StartBaseHealth, h.fonts.Small)

	mode := "none"
	if def, ok := game.BuildModeDef(); ok {
		mode = def.Name
	}
	status := "Build mode: " + mode
	if game.IsWaveFinished() {
		status += fmt.Sprintf("   |   Space: start wave %d", game.WaveNumber()+1)
	}
	drawTextAt(screen, h.tips, h.fonts.Small, hudX, config.ScreenHeight-44, config.TextDimColor)
	drawTextAt(screen, status, h.fonts.Small, hudX, config.ScreenHeight-22, config.TextDimColor)

	if h.message != "" && time.Since(h.messageAt) < messageTTL {
		drawTextCentered(screen, h.message, h.fonts.HUD, config.ScreenWidth/2, config.ScreenHeight-80, config.EnemyColor)
	}
}
