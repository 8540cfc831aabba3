package system

import (
	"github.com/younwookim/gemhop/internal/domain/collision"
	"github.com/younwookim/gemhop/internal/domain/entity"
	"github.com/younwookim/gemhop/internal/infrastructure/config"
)

// World holds the entity collections built from one level.
// It is rebuilt wholesale whenever a level is (re)loaded.
type World struct {
	Level    *entity.Level
	TileSize float64

	// Width and Height are in world units
	Width  float64
	Height float64

	Gravity          float64
	TerminalVelocity float64

	Platforms []*entity.Entity
	Solids    *collision.Index
	Items     []*entity.Entity
	Enemies   []*entity.Entity
	Goals     []*entity.Entity

	nextID entity.EntityID
}

// LoadWorld converts a Level into a World
func LoadWorld(level *entity.Level, cfg *config.Settings) *World {
	ts := cfg.TileSize
	w := &World{
		Level:            level,
		TileSize:         ts,
		Width:            level.PixelWidth(ts),
		Height:           level.PixelHeight(ts),
		Gravity:          level.Gravity,
		TerminalVelocity: level.TerminalVelocity,
	}

	for _, p := range level.Grass {
		w.Platforms = append(w.Platforms, entity.NewTile(w.newID(), entity.KindPlatform, entity.TileGrass, p.X, p.Y, ts))
	}
	for _, p := range level.Blocks {
		w.Platforms = append(w.Platforms, entity.NewTile(w.newID(), entity.KindPlatform, entity.TileBlock, p.X, p.Y, ts))
	}
	w.Solids = collision.NewIndex(w.Platforms, w.Width, w.Height, ts)

	for i, p := range level.Flags {
		tile := entity.TilePole
		if i == 0 {
			tile = entity.TileFlag
		}
		goal := entity.NewTile(w.newID(), entity.KindGoal, tile, p.X, p.Y, ts)
		goal.Trigger = i == 0
		w.Goals = append(w.Goals, goal)
	}

	for _, p := range level.Gems {
		w.Items = append(w.Items, entity.NewTile(w.newID(), entity.KindGem, entity.TileNone, p.X, p.Y, ts))
	}

	spawns := []struct {
		kind   entity.Kind
		points []entity.Point
	}{
		{entity.KindGroundPatroller, level.SpikeBalls},
		{entity.KindLedgePatroller, level.SpikeMen},
		{entity.KindFlyingPatroller, level.Clouds},
	}
	for _, s := range spawns {
		speed := cfg.Animation.Default
		if s.kind == entity.KindLedgePatroller {
			speed = cfg.Animation.Ledge
		}
		for _, p := range s.points {
			w.Enemies = append(w.Enemies, entity.NewEnemy(w.newID(), s.kind, p.X, p.Y, ts, cfg.Enemy.Speed, speed))
		}
	}

	return w
}

func (w *World) newID() entity.EntityID {
	w.nextID++
	return w.nextID
}

// Start returns the hero spawn tile
func (w *World) Start() entity.Point {
	return w.Level.Start
}

// EntityCount returns the number of entities the world owns
func (w *World) EntityCount() int {
	return len(w.Platforms) + len(w.Items) + len(w.Enemies) + len(w.Goals)
}
