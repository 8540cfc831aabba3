package system

import (
	"github.com/younwookim/gemhop/internal/domain/entity"
	"github.com/younwookim/gemhop/internal/infrastructure/config"
)

func testSettings() *config.Settings {
	s := config.DefaultSettings()
	return &s
}

// createTestLevel is 32x9 tiles with grass along the bottom row
func createTestLevel() *entity.Level {
	l := &entity.Level{
		Name:             "test",
		Width:            32,
		Height:           9,
		Start:            entity.Point{X: 1, Y: 6},
		Gravity:          1,
		TerminalVelocity: 24,
	}
	for x := 0; x < l.Width; x++ {
		l.Grass = append(l.Grass, entity.Point{X: x, Y: 8})
	}
	return l
}

// createEmptyLevel has no geometry at all
func createEmptyLevel() *entity.Level {
	return &entity.Level{Name: "empty", Width: 32, Height: 9, Gravity: 1, TerminalVelocity: 24}
}

func createTestHero(cfg *config.Settings, tx, ty int) *entity.Hero {
	return entity.NewHero(tx, ty, cfg.TileSize, entity.HeroDefaults{
		Hearts: cfg.Hero.Hearts,
		Speed:  cfg.Hero.Speed,
		Jump:   cfg.Hero.JumpPower,
	})
}

func addEnemy(w *World, cfg *config.Settings, kind entity.Kind, tx, ty int) *entity.Entity {
	e := entity.NewEnemy(w.newID(), kind, tx, ty, cfg.TileSize, cfg.Enemy.Speed, cfg.Animation.Default)
	w.Enemies = append(w.Enemies, e)
	return e
}
