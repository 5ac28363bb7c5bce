// internal/assets/sprite_manager.go
package assets

import (
	"errors"
	"fmt"
	"image/color"
	_ "image/png" // декодер для ebitenutil.NewImageFromFile
	"io/fs"
	"log"
	"path/filepath"

	"go-station-defense/internal/config"
	"go-station-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const spriteSize = 64

// SpriteIDs — все спрайты, которые ищутся в каталоге ассетов как <id>.png.
var SpriteIDs = []string{
	"towers/laser",
	"towers/cannon",
	"towers/slow",
	"enemies/alien",
	"enemies/alien2",
	"enemies/boss",
	"base",
}

// SpriteManager загружает и кэширует спрайты. Если файла нет, спрайт генерируется.
type SpriteManager struct {
	dir    string
	images map[string]*ebiten.Image
}

func NewSpriteManager(dir string) *SpriteManager {
	return &SpriteManager{
		dir:    dir,
		images: make(map[string]*ebiten.Image),
	}
}

// LoadAll загружает все известные спрайты.
func (m *SpriteManager) LoadAll() {
	loaded := 0
	for _, id := range SpriteIDs {
		img, err := m.loadFile(id)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				log.Printf("[Assets] %s: %v, using generated sprite", id, err)
			}
			img = generateSprite(id)
		} else {
			loaded++
		}
		m.images[id] = img
	}
	log.Printf("[Assets] %d of %d sprites loaded from %q", loaded, len(SpriteIDs), m.dir)
}

func (m *SpriteManager) loadFile(id string) (*ebiten.Image, error) {
	if m.dir == "" {
		return nil, fs.ErrNotExist
	}
	path := filepath.Join(m.dir, filepath.FromSlash(id)+".png")
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load sprite %s: %w", path, err)
	}
	return img, nil
}

// Sprite returns the sprite for id or nil.
func (m *SpriteManager) Sprite(id string) *ebiten.Image {
	return m.images[id]
}

// generateSprite рисует простую замену спрайта.
func generateSprite(id string) *ebiten.Image {
	img := ebiten.NewImage(spriteSize, spriteSize)
	const c = spriteSize / 2

	switch id {
	case "towers/laser", "towers/cannon", "towers/slow":
		col := config.TowerColors[filepath.Base(id)]
		vector.DrawFilledCircle(img, c, c, c-2, config.TowerBodyColor, true)
		vector.DrawFilledCircle(img, c, c, c-8, col, true)
		vector.DrawFilledRect(img, c-4, 2, 8, c-4, render.DarkenColor(col), true)
		vector.StrokeCircle(img, c, c, c-2, 2, config.ButtonStrokeColor, true)
	case "enemies/boss":
		vector.DrawFilledCircle(img, c, c, c-2, config.BossColor, true)
		vector.StrokeCircle(img, c, c, c-2, 3, color.RGBA{255, 200, 255, 255}, true)
		drawEyes(img, c, 10, 6)
	case "base":
		vector.DrawFilledRect(img, 4, 4, spriteSize-8, spriteSize-8, config.BaseFillColor, true)
		vector.StrokeRect(img, 4, 4, spriteSize-8, spriteSize-8, 3, config.BaseStrokeColor, true)
		vector.DrawFilledCircle(img, c, c, 10, config.BaseStrokeColor, true)
	default:
		body := config.EnemyColor
		if id == "enemies/alien2" {
			body = color.RGBA{230, 130, 60, 255}
		}
		vector.DrawFilledCircle(img, c, c, c-4, body, true)
		drawEyes(img, c, 9, 5)
	}
	return img
}

func drawEyes(img *ebiten.Image, c, dx, r float32) {
	vector.DrawFilledCircle(img, c-dx, c-4, r, color.White, true)
	vector.DrawFilledCircle(img, c+dx, c-4, r, color.White, true)
	vector.DrawFilledCircle(img, c-dx, c-4, r/2, color.Black, true)
	vector.DrawFilledCircle(img, c+dx, c-4, r/2, color.Black, true)
}
