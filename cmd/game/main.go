// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"path/filepath"

	"go-station-defense/internal/app"
	"go-station-defense/internal/assets"
	"go-station-defense/internal/audio"
	"go-station-defense/internal/config"
	"go-station-defense/internal/defs"
	"go-station-defense/internal/highscore"
	"go-station-defense/internal/state"
	"go-station-defense/internal/ui"
	"go-station-defense/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine *state.StateMachine
}

func (a *AppGame) Update() error {
	if a.stateMachine.ShouldQuit() {
		return ebiten.Termination
	}
	// шаг фиксированный, ускорение делает дополнительные шаги внутри Game
	a.stateMachine.Update(config.FixedDelta)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func openStore(s *config.Settings) highscore.Store {
	if s.Storage == config.StorageGdata {
		store, err := highscore.OpenGdataStore(s.AppName)
		if err == nil {
			return store
		}
		log.Printf("gdata storage unavailable, falling back to %s: %v", s.HighscorePath, err)
	}
	return highscore.NewFileStore(s.HighscorePath)
}

func main() {
	configPath := flag.String("config", "settings.yaml", "path to the YAML settings file")
	flag.Parse()

	settings, err := config.LoadSettings(*configPath)
	if err != nil {
		log.Printf("Failed to load settings, using defaults: %v", err)
	}

	// сид 0 в настройках = текущее время
	rng := utils.NewPRNGService(settings.Seed)
	seed := rng.Seed()
	log.Printf("Seed: %d", seed)

	lib := defs.LoadOrDefault(settings.DefsPath)
	game := app.NewGame(lib, openStore(settings), rng)

	fonts, err := ui.LoadFonts(filepath.Join(settings.AssetDir, "font.ttf"))
	if err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}
	sprites := assets.NewSpriteManager(settings.AssetDir)
	sprites.LoadAll()
	sounds := audio.NewSoundManager(settings.AssetDir, settings.SoundEnabled)
	sounds.Subscribe(game.EventDispatcher)

	res := &state.Resources{Fonts: fonts, Sprites: sprites, Seed: seed}

	sm := state.NewStateMachine()
	gameState := state.NewGameState(sm, game, res)
	if settings.StartInMenu {
		sm.SetState(state.NewMenuState(sm, gameState))
	} else {
		sm.SetState(gameState)
	}

	ebiten.SetTPS(config.TPS)
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Station Defense")
	if err := ebiten.RunGame(&AppGame{stateMachine: sm}); err != nil {
		log.Fatal(err)
	}
}
