package state

import (
	"log"

	"go-station-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameOverState показывает итог и ждёт R (рестарт) или Esc (выход).
type GameOverState struct {
	sm   *StateMachine
	game *GameState
}

func NewGameOverState(sm *StateMachine, game *GameState) *GameOverState {
	return &GameOverState{sm: sm, game: game}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update(deltaTime float64) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		log.Println("Restarting")
		s.game.game.Reset()
		s.game.speedButton.SetState(0)
		s.sm.SetState(s.game)
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		s.sm.RequestQuit()
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.game.Draw(screen)
	g := s.game.game
	ui.DrawGameOver(screen, s.game.res.Fonts, g.Score, g.Highscore, g.NewHighscore())
}

func (s *GameOverState) Exit() {}
