// pkg/render/entity_renderer.go
package render

import (
	"math"

	"go-station-defense/internal/config"
	"go-station-defense/internal/entity"
	"go-station-defense/internal/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	hpBarWidth  = 34
	hpBarHeight = 5
	levelPip    = 3
)

// SpriteSource отдаёт спрайт по ID или nil, если его нет.
type SpriteSource interface {
	Sprite(id string) *ebiten.Image
}

// EntityRenderer рисует башни, врагов, снаряды и лучи.
type EntityRenderer struct {
	sprites SpriteSource
}

func NewEntityRenderer(sprites SpriteSource) *EntityRenderer {
	return &EntityRenderer{sprites: sprites}
}

func (r *EntityRenderer) Draw(screen *ebiten.Image, ecs *entity.ECS, selected types.EntityID) {
	// Сначала радиус выбранной башни, чтобы он был под всем остальным
	if combat, ok := ecs.Combats[selected]; ok {
		if pos, ok := ecs.Positions[selected]; ok {
			vector.StrokeCircle(screen, float32(pos.X), float32(pos.Y), float32(combat.Range), 1, config.RangeColor, true)
		}
	}

	for _, id := range ecs.TowerIDs() {
		r.drawTower(screen, ecs, id, id == selected)
	}
	for _, id := range ecs.EnemyIDs() {
		r.drawEnemy(screen, ecs, id)
	}
	for _, id := range ecs.ProjectileIDs() {
		proj := ecs.Projectiles[id]
		pos, ok := ecs.Positions[id]
		render, hasRender := ecs.Renderables[id]
		if !proj.Alive || !ok || !hasRender {
			continue
		}
		vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), render.Radius, render.Color, true)
	}
	for _, id := range ecs.BeamIDs() {
		beam := ecs.Beams[id]
		if !beam.Alive {
			continue
		}
		c := config.BeamColor
		if render, ok := ecs.Renderables[id]; ok {
			c = render.Color
		}
		// луч гаснет к концу жизни
		fade := 1.0
		if beam.Duration > 0 {
			fade = 1 - beam.Timer/beam.Duration
		}
		c = WithAlpha(c, uint8(float64(c.A)*fade))
		vector.StrokeLine(screen, float32(beam.FromX), float32(beam.FromY), float32(beam.ToX), float32(beam.ToY), 3, c, true)
	}
}

func (r *EntityRenderer) drawTower(screen *ebiten.Image, ecs *entity.ECS, id types.EntityID, selected bool) {
	pos, ok := ecs.Positions[id]
	render, hasRender := ecs.Renderables[id]
	tower := ecs.Towers[id]
	if !ok || !hasRender {
		return
	}
	x, y := float32(pos.X), float32(pos.Y)

	if sprite := r.sprite(render.SpriteID); sprite != nil {
		drawSpriteCentered(screen, sprite, x, y, render.Radius, nil)
	} else {
		if render.HasStroke {
			vector.DrawFilledCircle(screen, x, y, render.Radius+2, config.TowerBodyColor, true)
		}
		vector.DrawFilledCircle(screen, x, y, render.Radius, render.Color, true)
		vector.DrawFilledCircle(screen, x, y, render.Radius/2.5, DarkenColor(render.Color), true)
	}

	if turret, ok := ecs.Turrets[id]; ok {
		length := render.Radius + 5
		ex := x + float32(math.Cos(turret.Angle))*length
		ey := y + float32(math.Sin(turret.Angle))*length
		vector.StrokeLine(screen, x, y, ex, ey, 5, DarkenColor(render.Color), true)
		vector.DrawFilledCircle(screen, x, y, render.Radius/3, render.Color, true)
	}

	// уровень — точки под башней
	for i := 0; i < tower.Level; i++ {
		px := x - float32(tower.Level-1)*levelPip*1.5 + float32(i)*levelPip*3
		vector.DrawFilledCircle(screen, px, y+render.Radius+6, levelPip, config.TextLightColor, true)
	}
	if selected {
		vector.StrokeCircle(screen, x, y, render.Radius+4, 2, config.SelectionColor, true)
	}
}

func (r *EntityRenderer) drawEnemy(screen *ebiten.Image, ecs *entity.ECS, id types.EntityID) {
	enemy := ecs.Enemies[id]
	pos, ok := ecs.Positions[id]
	render, hasRender := ecs.Renderables[id]
	if !enemy.Alive || !ok || !hasRender {
		return
	}
	x, y := float32(pos.X), float32(pos.Y)

	c := render.Color
	_, slowed := ecs.SlowEffects[id]
	if slowed {
		c = MixColor(c, config.SlowedEnemyColor, 0.6)
	}
	if flash, ok := ecs.DamageFlashes[id]; ok && flash.Duration > 0 {
		c = MixColor(c, config.SelectionColor, 0.7*flash.Timer/flash.Duration)
	}

	if sprite := r.sprite(render.SpriteID); sprite != nil {
		var tint *ebiten.ColorScale
		if slowed {
			tint = &ebiten.ColorScale{}
			tint.ScaleWithColor(config.SlowedEnemyColor)
		}
		drawSpriteCentered(screen, sprite, x, y, render.Radius, tint)
	} else {
		if render.HasStroke {
			vector.DrawFilledCircle(screen, x, y, render.Radius+2, DarkenColor(c), true)
		}
		vector.DrawFilledCircle(screen, x, y, render.Radius, c, true)
	}

	health, ok := ecs.Healths[id]
	if !ok {
		return
	}
	barX := x - hpBarWidth/2
	barY := y - render.Radius - 10
	fill := config.HPBarFillColor
	if slowed {
		fill = config.SlowedEnemyColor
	}
	vector.DrawFilledRect(screen, barX, barY, hpBarWidth, hpBarHeight, config.HPBarBackColor, false)
	vector.DrawFilledRect(screen, barX, barY, float32(hpBarWidth*health.Fraction()), hpBarHeight, fill, false)
	vector.StrokeRect(screen, barX, barY, hpBarWidth, hpBarHeight, 1, config.HPBarStrokeColor, false)
}

func (r *EntityRenderer) sprite(id string) *ebiten.Image {
	if r.sprites == nil || id == "" {
		return nil
	}
	return r.sprites.Sprite(id)
}

func drawSpriteCentered(screen, sprite *ebiten.Image, x, y, radius float32, tint *ebiten.ColorScale) {
	size := radius * 2
	b := sprite.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(size)/float64(b.Dx()), float64(size)/float64(b.Dy()))
	op.GeoM.Translate(float64(x-radius), float64(y-radius))
	op.Filter = ebiten.FilterLinear
	if tint != nil {
		op.ColorScale = *tint
	}
	screen.DrawImage(sprite, op)
}
