package app

import (
	"go-station-defense/internal/config"
	"go-station-defense/internal/types"
	"go-station-defense/pkg/geom"

	"github.com/solarlune/resolv"
)

var (
	tagTower = resolv.NewTag("tower")
	tagBase  = resolv.NewTag("base")
)

// placementSpace хранит занятые места: прямоугольник базы и круги башен.
type placementSpace struct {
	space   *resolv.Space
	towers  map[types.EntityID]resolv.IShape
	owners  map[resolv.IShape]types.EntityID
	centers map[types.EntityID]geom.Vec2
}

func newPlacementSpace() *placementSpace {
	space := resolv.NewSpace(config.ScreenWidth, config.ScreenHeight, 32, 32)
	base := resolv.NewRectangleFromTopLeft(config.BaseX, config.BaseY, config.BaseWidth, config.BaseHeight)
	base.Tags().Set(tagBase)
	space.Add(base)

	return &placementSpace{
		space:   space,
		towers:  make(map[types.EntityID]resolv.IShape),
		owners:  make(map[resolv.IShape]types.EntityID),
		centers: make(map[types.EntityID]geom.Vec2),
	}
}

func (p *placementSpace) add(id types.EntityID, pos geom.Vec2) {
	sh := resolv.NewCircle(pos.X, pos.Y, config.TowerSpacing/2)
	sh.Tags().Set(tagTower)
	p.space.Add(sh)
	p.towers[id] = sh
	p.owners[sh] = id
	p.centers[id] = pos
}

func (p *placementSpace) remove(id types.EntityID) {
	sh, ok := p.towers[id]
	if !ok {
		return
	}
	p.space.Remove(sh)
	delete(p.owners, sh)
	delete(p.towers, id)
	delete(p.centers, id)
}

// overlapsBase reports whether a tower footprint at pos touches the base.
func (p *placementSpace) overlapsBase(pos geom.Vec2) bool {
	probe := resolv.NewCircle(pos.X, pos.Y, config.TowerRadius)
	p.space.Add(probe)
	defer p.space.Remove(probe)

	hit := false
	probe.IntersectionTest(resolv.IntersectionTestSettings{
		TestAgainst: probe.SelectTouchingCells(0).FilterShapes().ByTags(tagBase),
		OnIntersect: func(set resolv.IntersectionSet) bool {
			hit = true
			return false
		},
	})
	// круг целиком внутри прямоугольника не пересекает его рёбра
	return hit || insideBase(pos)
}

func insideBase(pos geom.Vec2) bool {
	return pos.X >= config.BaseX && pos.X <= config.BaseX+config.BaseWidth &&
		pos.Y >= config.BaseY && pos.Y <= config.BaseY+config.BaseHeight
}

// tooClose reports whether another tower center lies closer than TowerSpacing.
func (p *placementSpace) tooClose(pos geom.Vec2) bool {
	probe := resolv.NewCircle(pos.X, pos.Y, config.TowerSpacing/2)
	p.space.Add(probe)
	defer p.space.Remove(probe)

	crowded := false
	probe.IntersectionTest(resolv.IntersectionTestSettings{
		TestAgainst: probe.SelectTouchingCells(1).FilterShapes().ByTags(tagTower),
		OnIntersect: func(set resolv.IntersectionSet) bool {
			id, ok := p.owners[set.OtherShape]
			if !ok {
				return true
			}
			// касание кругов ещё допустимо
			if geom.Dist(p.centers[id], pos) < config.TowerSpacing {
				crowded = true
				return false
			}
			return true
		},
	})
	return crowded
}
