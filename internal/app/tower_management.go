// internal/app/tower_management.go
package app

import (
	"errors"
	"fmt"
	"log"

	"go-station-defense/internal/config"
	"go-station-defense/internal/defs"
	"go-station-defense/internal/event"
	"go-station-defense/internal/system"
	"go-station-defense/internal/types"
	"go-station-defense/pkg/geom"
)

var (
	ErrUnknownTower        = errors.New("unknown tower type")
	ErrOutOfBounds         = errors.New("position is outside the field")
	ErrOnPath              = errors.New("cannot build on the path")
	ErrOverlapsBase        = errors.New("cannot build on the base")
	ErrTooClose            = errors.New("too close to another tower")
	ErrInsufficientCredits = errors.New("not enough credits")
	ErrNoSelection         = errors.New("no tower selected")
	ErrMaxLevel            = errors.New("tower is at max level")
	ErrGameOver            = errors.New("game is over")
)

// TowerInfo — данные выбранной башни для HUD.
type TowerInfo struct {
	ID          types.EntityID
	Name        string
	Level       int
	Damage      float64
	Range       float64
	Cooldown    float64
	UpgradeCost int
	CanUpgrade  bool
}

// SetBuildMode selects the tower type built by left clicks.
func (g *Game) SetBuildMode(defID string) error {
	if _, ok := g.Defs.Towers[defID]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTower, defID)
	}
	g.BuildMode = defID
	return nil
}

// SetBuildModeByKey maps a digit key to a tower type.
func (g *Game) SetBuildModeByKey(key int) bool {
	def, ok := g.Defs.TowerByKey(key)
	if !ok {
		return false
	}
	g.BuildMode = def.ID
	return true
}

// CanPlaceTower checks every placement rule except credits.
func (g *Game) CanPlaceTower(pos geom.Vec2) error {
	if pos.X < 0 || pos.Y < 0 || pos.X > config.ScreenWidth || pos.Y > config.ScreenHeight {
		return ErrOutOfBounds
	}
	if g.Path.IsOnPath(pos) {
		return ErrOnPath
	}
	if g.placement.overlapsBase(pos) {
		return ErrOverlapsBase
	}
	if g.placement.tooClose(pos) {
		return ErrTooClose
	}
	return nil
}

// PlaceTower builds a tower of defID at pos and charges its cost.
func (g *Game) PlaceTower(defID string, pos geom.Vec2) (types.EntityID, error) {
	if g.isOver {
		return 0, ErrGameOver
	}
	def, ok := g.Defs.Towers[defID]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownTower, defID)
	}
	if err := g.CanPlaceTower(pos); err != nil {
		return 0, err
	}
	if g.Credits < def.Cost {
		return 0, ErrInsufficientCredits
	}

	g.Credits -= def.Cost
	id := system.SpawnTower(g.ECS, def, pos)
	g.placement.add(id, pos)

	log.Printf("Placed %s tower %d at (%.0f, %.0f), credits left %d", def.Name, id, pos.X, pos.Y, g.Credits)
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerPlaced, Data: id})
	return id, nil
}

// TowerAt returns the first tower whose click radius contains pos.
func (g *Game) TowerAt(pos geom.Vec2) (types.EntityID, bool) {
	for _, id := range g.ECS.TowerIDs() {
		towerPos, ok := g.ECS.Positions[id]
		if !ok {
			continue
		}
		r := g.ECS.Towers[id].Radius + config.TowerClickPadding
		if geom.DistSq(towerPos.Vec(), pos) <= r*r {
			return id, true
		}
	}
	return 0, false
}

// UpgradeTower raises a tower one level if it is below the cap and affordable.
func (g *Game) UpgradeTower(id types.EntityID) error {
	if g.isOver {
		return ErrGameOver
	}
	tower, ok := g.ECS.Towers[id]
	if !ok {
		return ErrNoSelection
	}
	def, ok := g.Defs.Towers[tower.DefID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTower, tower.DefID)
	}
	cost, ok := def.UpgradeCost(tower.Level, config.TowerMaxLevel)
	if !ok {
		return ErrMaxLevel
	}
	if g.Credits < cost {
		return ErrInsufficientCredits
	}

	g.Credits -= cost
	system.ApplyUpgrade(g.ECS, id, def)
	log.Printf("Upgraded %s tower %d to level %d", def.Name, id, tower.Level)
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerUpgraded, Data: id})
	return nil
}

// UpgradeSelected upgrades the selected tower.
func (g *Game) UpgradeSelected() error {
	if g.SelectedTower == 0 {
		return ErrNoSelection
	}
	return g.UpgradeTower(g.SelectedTower)
}

// LeftClick selects a tower under the cursor, otherwise builds in the current mode.
func (g *Game) LeftClick(pos geom.Vec2) error {
	if id, ok := g.TowerAt(pos); ok {
		g.SelectedTower = id
		return nil
	}
	if g.BuildMode == "" {
		return nil
	}
	_, err := g.PlaceTower(g.BuildMode, pos)
	return err
}

// RightClick clears the selection.
func (g *Game) RightClick() {
	g.SelectedTower = 0
}

// SelectedTowerInfo describes the selected tower for the HUD.
func (g *Game) SelectedTowerInfo() (TowerInfo, bool) {
	id := g.SelectedTower
	tower, ok := g.ECS.Towers[id]
	if !ok {
		return TowerInfo{}, false
	}
	combat, ok := g.ECS.Combats[id]
	if !ok {
		return TowerInfo{}, false
	}
	info := TowerInfo{
		ID:       id,
		Name:     tower.DefID,
		Level:    tower.Level,
		Damage:   combat.Damage,
		Range:    combat.Range,
		Cooldown: combat.Cooldown,
	}
	if def, ok := g.Defs.Towers[tower.DefID]; ok {
		info.Name = def.Name
		info.UpgradeCost, info.CanUpgrade = def.UpgradeCost(tower.Level, config.TowerMaxLevel)
	}
	return info, true
}

// BuildModeDef returns the definition of the current build mode.
func (g *Game) BuildModeDef() (*defs.TowerDefinition, bool) {
	def, ok := g.Defs.Towers[g.BuildMode]
	return def, ok
}
