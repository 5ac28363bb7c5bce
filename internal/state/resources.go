package state

import (
	"go-station-defense/internal/assets"
	"go-station-defense/internal/ui"
)

// Resources — общие для всех состояний шрифты и спрайты.
type Resources struct {
	Fonts   *ui.Fonts
	Sprites *assets.SpriteManager
	Seed    int64 // сид звёздного неба
}
