// internal/state/menu_state.go
package state

import (
	"fmt"

	"go-station-defense/internal/config"
	"go-station-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// MenuState — стартовый экран с рекордом и кнопками.
type MenuState struct {
	sm    *StateMachine
	game  *GameState
	start *ui.Button
	quit  *ui.Button
}

func NewMenuState(sm *StateMachine, game *GameState) *MenuState {
	fonts := game.res.Fonts
	const w, h = 220, 48
	x := config.ScreenWidth/2 - w/2
	return &MenuState{
		sm:    sm,
		game:  game,
		start: ui.NewButton(x, 330, w, h, "Start", fonts.HUD),
		quit:  ui.NewButton(x, 395, w, h, "Quit", fonts.HUD),
	}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	startClicked := m.start.Update()
	quitClicked := m.quit.Update()

	switch {
	case startClicked || inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		m.sm.SetState(m.game)
	case quitClicked || inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		m.sm.RequestQuit()
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.MenuColor)
	fonts := m.game.res.Fonts

	title := "STATION DEFENSE"
	b := text.BoundString(fonts.Big, title)
	text.Draw(screen, title, fonts.Big, config.ScreenWidth/2-b.Dx()/2, 200, config.TextLightColor)

	hs := fmt.Sprintf("Highscore: %d", m.game.game.Highscore)
	b = text.BoundString(fonts.HUD, hs)
	text.Draw(screen, hs, fonts.HUD, config.ScreenWidth/2-b.Dx()/2, 270, config.TextDimColor)

	m.start.Draw(screen)
	m.quit.Draw(screen)
}

func (m *MenuState) Exit() {}
