// internal/state/pause_state.go
package state

import (
	"go-station-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var _ State = (*PauseState)(nil)

// PauseState замораживает игру и рисует её под затемнением.
type PauseState struct {
	sm       *StateMachine
	previous *GameState
}

func NewPauseState(sm *StateMachine, prev *GameState) *PauseState {
	return &PauseState{sm: sm, previous: prev}
}

func (s *PauseState) Enter() {
	s.previous.game.SetPaused(true)
	s.previous.pauseButton.SetPaused(true)
}

func (s *PauseState) Update(deltaTime float64) {
	unpause := inpututil.IsKeyJustPressed(ebiten.KeyP) ||
		inpututil.IsKeyJustPressed(ebiten.KeyF9) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if s.previous.pauseButton.IsClicked(x, y) {
			unpause = true
		}
	}
	if unpause {
		s.sm.SetState(s.previous)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previous.Draw(screen)
	ui.DrawPaused(screen, s.previous.res.Fonts)
	s.previous.pauseButton.Draw(screen)
}

func (s *PauseState) Exit() {
	s.previous.game.SetPaused(false)
}
