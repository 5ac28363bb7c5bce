package render

import (
	"go-station-defense/internal/config"
	"go-station-defense/internal/utils"
	"go-station-defense/pkg/pathmap"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type star struct {
	x, y  float32
	r     float32
	shade uint8
}

// FieldRenderer рисует статичный фон: звёзды, дорогу и базу.
type FieldRenderer struct {
	path     *pathmap.PathMap
	stars    []star
	mapImage *ebiten.Image // предрендеренный фон
}

func NewFieldRenderer(path *pathmap.PathMap, seed int64) *FieldRenderer {
	rng := utils.NewPRNGService(seed)
	stars := make([]star, config.StarCount)
	for i := range stars {
		stars[i] = star{
			x:     float32(rng.Range(0, config.ScreenWidth)),
			y:     float32(rng.Range(0, config.ScreenHeight)),
			r:     float32(rng.Range(0.5, 1.8)),
			shade: uint8(120 + rng.Intn(100)),
		}
	}

	r := &FieldRenderer{
		path:     path,
		stars:    stars,
		mapImage: ebiten.NewImage(config.ScreenWidth, config.ScreenHeight),
	}
	r.RenderMapImage()
	return r
}

// RenderMapImage перерисовывает фон в mapImage.
func (r *FieldRenderer) RenderMapImage() {
	img := r.mapImage
	img.Fill(config.BackgroundColor)

	for _, s := range r.stars {
		c := config.TextLightColor
		c.R, c.G, c.B = s.shade, s.shade, s.shade+20
		vector.DrawFilledCircle(img, s.x, s.y, s.r, c, true)
	}

	wps := r.path.Waypoints
	half := float32(r.path.Width / 2)
	// дорога: широкие линии плюс круги на стыках
	for i := 0; i+1 < len(wps); i++ {
		a, b := wps[i], wps[i+1]
		vector.StrokeLine(img, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), float32(r.path.Width), config.PathFillColor, true)
	}
	for _, p := range wps {
		vector.DrawFilledCircle(img, float32(p.X), float32(p.Y), half, config.PathFillColor, true)
	}
	for i := 0; i+1 < len(wps); i++ {
		a, b := wps[i], wps[i+1]
		vector.StrokeLine(img, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 2, config.PathLineColor, true)
	}
	for _, p := range wps {
		vector.DrawFilledCircle(img, float32(p.X), float32(p.Y), 4, config.WaypointColor, true)
	}
	// вход на базу
	end := r.path.End()
	vector.StrokeCircle(img, float32(end.X), float32(end.Y), half*0.6, 2, config.BaseStrokeColor, true)
}

// Draw рисует фон и базу. baseSprite может быть nil.
func (r *FieldRenderer) Draw(screen *ebiten.Image, baseSprite *ebiten.Image) {
	screen.DrawImage(r.mapImage, nil)

	x, y := float32(config.BaseX), float32(config.BaseY)
	w, h := float32(config.BaseWidth), float32(config.BaseHeight)
	if baseSprite != nil {
		drawSpriteInRect(screen, baseSprite, x, y, w, h)
		return
	}
	vector.DrawFilledRect(screen, x, y, w, h, config.BaseFillColor, true)
	vector.StrokeRect(screen, x, y, w, h, 2, config.BaseStrokeColor, true)
}

func drawSpriteInRect(screen, sprite *ebiten.Image, x, y, w, h float32) {
	b := sprite.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w)/float64(b.Dx()), float64(h)/float64(b.Dy()))
	op.GeoM.Translate(float64(x), float64(y))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(sprite, op)
}
