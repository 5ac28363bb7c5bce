// internal/state/game_state.go
package state

import (
	"errors"
	"image/color"
	"log"

	"go-station-defense/internal/app"
	"go-station-defense/internal/config"
	"go-station-defense/internal/ui"
	"go-station-defense/pkg/geom"
	"go-station-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var buildKeys = map[ebiten.Key]int{
	ebiten.Key1: 1,
	ebiten.Key2: 2,
	ebiten.Key3: 3,
}

// GameState — состояние игры
type GameState struct {
	sm          *StateMachine
	game        *app.Game
	res         *Resources
	field       *render.FieldRenderer
	entities    *render.EntityRenderer
	hud         *ui.HUD
	speedButton *ui.SpeedButton
	pauseButton *ui.PauseButton
}

func NewGameState(sm *StateMachine, game *app.Game, res *Resources) *GameState {
	seed := res.Seed
	if seed == 0 {
		seed = config.StarSeed
	}
	speedColors := []color.RGBA{config.TextInfoColor, config.TowerColors["cannon"], config.TowerColors["laser"]}
	return &GameState{
		sm:          sm,
		game:        game,
		res:         res,
		field:       render.NewFieldRenderer(game.Path, seed),
		entities:    render.NewEntityRenderer(res.Sprites),
		hud:         ui.NewHUD(res.Fonts, game),
		speedButton: ui.NewSpeedButton(config.ScreenWidth-40, 30, 12, config.GameSpeeds, speedColors),
		pauseButton: ui.NewPauseButton(config.ScreenWidth-95, 30, 10, config.TextInfoColor, config.HPBarFillColor),
	}
}

func (g *GameState) Enter() {
	g.pauseButton.SetPaused(false)
}

func (g *GameState) Update(deltaTime float64) {
	if g.game.IsOver() {
		g.sm.SetState(NewGameOverState(g.sm, g))
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}

	for key, n := range buildKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.game.SetBuildModeByKey(n)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.game.StartNextWave()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyU) {
		g.report(g.game.UpgradeSelected())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.cycleSpeed()
	}

	// Обработка левой кнопки
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		// Проверяем клик по UI элементам в первую очередь
		switch {
		case g.speedButton.IsClicked(x, y):
			g.cycleSpeed()
		case g.pauseButton.IsClicked(x, y):
			g.sm.SetState(NewPauseState(g.sm, g))
			return
		default:
			g.report(g.game.LeftClick(geom.V(float64(x), float64(y))))
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.game.RightClick()
	}

	g.game.Update(deltaTime)
}

func (g *GameState) cycleSpeed() {
	g.game.CycleSpeed()
	g.speedButton.ToggleState()
}

// report показывает игроку, почему действие не удалось.
func (g *GameState) report(err error) {
	if err == nil {
		return
	}
	if errors.Is(err, app.ErrNoSelection) {
		return
	}
	g.hud.ShowMessage(err.Error())
	log.Printf("Action rejected: %v", err)
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.field.Draw(screen, g.res.Sprites.Sprite("base"))
	g.entities.Draw(screen, g.game.ECS, g.game.SelectedTower)
	g.drawPlacementPreview(screen)
	g.hud.Draw(screen, g.game)
	g.speedButton.Draw(screen, g.res.Fonts.Small)
	g.pauseButton.Draw(screen)
}

// drawPlacementPreview рисует контур будущей башни под курсором.
func (g *GameState) drawPlacementPreview(screen *ebiten.Image) {
	def, ok := g.game.BuildModeDef()
	if !ok || g.game.IsOver() {
		return
	}
	x, y := ebiten.CursorPosition()
	pos := geom.V(float64(x), float64(y))
	if _, onTower := g.game.TowerAt(pos); onTower {
		return
	}

	c := config.HPBarFillColor
	if g.game.CanPlaceTower(pos) != nil || g.game.Credits < def.Cost {
		c = config.EnemyColor
	}
	vector.StrokeCircle(screen, float32(x), float32(y), float32(config.TowerRadius), 2, c, true)
	vector.StrokeCircle(screen, float32(x), float32(y), float32(def.Range), 1, render.WithAlpha(c, 90), true)
}

func (g *GameState) Exit() {}
