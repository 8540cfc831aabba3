package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/gemhop/internal/domain/entity"
)

func TestLoadWorld(t *testing.T) {
	cfg := testSettings()
	level := createTestLevel()
	level.Blocks = []entity.Point{{X: 5, Y: 6}, {X: 6, Y: 6}}
	level.Flags = []entity.Point{{X: 30, Y: 4}, {X: 30, Y: 5}, {X: 30, Y: 6}}
	level.Gems = []entity.Point{{X: 3, Y: 5}}
	level.SpikeBalls = []entity.Point{{X: 10, Y: 7}}
	level.SpikeMen = []entity.Point{{X: 15, Y: 4}}
	level.Clouds = []entity.Point{{X: 20, Y: 3}}

	w := LoadWorld(level, cfg)

	t.Run("dimensions in world units", func(t *testing.T) {
		assert.Equal(t, 2048.0, w.Width)
		assert.Equal(t, 576.0, w.Height)
		assert.Equal(t, 1.0, w.Gravity)
		assert.Equal(t, 24.0, w.TerminalVelocity)
		assert.Equal(t, entity.Point{X: 1, Y: 6}, w.Start())
	})

	t.Run("platforms are grass then blocks", func(t *testing.T) {
		require.Len(t, w.Platforms, 34)
		assert.Equal(t, entity.TileGrass, w.Platforms[0].Tile)
		assert.Equal(t, entity.TileBlock, w.Platforms[33].Tile)
		assert.Equal(t, entity.Rect{X: 384, Y: 384, W: 64, H: 64}, w.Platforms[33].Rect)
	})

	t.Run("only the first flag triggers", func(t *testing.T) {
		require.Len(t, w.Goals, 3)
		assert.True(t, w.Goals[0].Trigger)
		assert.Equal(t, entity.TileFlag, w.Goals[0].Tile)
		for _, pole := range w.Goals[1:] {
			assert.False(t, pole.Trigger)
			assert.Equal(t, entity.TilePole, pole.Tile)
		}
	})

	t.Run("enemy variants", func(t *testing.T) {
		require.Len(t, w.Enemies, 3)

		kinds := []entity.Kind{entity.KindGroundPatroller, entity.KindLedgePatroller, entity.KindFlyingPatroller}
		for i, e := range w.Enemies {
			assert.Equal(t, kinds[i], e.Kind)
			assert.Equal(t, -cfg.Enemy.Speed, e.VX, "enemies start walking left")
		}
		assert.Equal(t, cfg.Animation.Ledge, w.Enemies[1].Anim.Speed)
		assert.Equal(t, cfg.Animation.Default, w.Enemies[0].Anim.Speed)
	})

	t.Run("ids are unique", func(t *testing.T) {
		seen := map[entity.EntityID]bool{}
		for _, group := range [][]*entity.Entity{w.Platforms, w.Items, w.Enemies, w.Goals} {
			for _, e := range group {
				assert.False(t, seen[e.ID], "duplicate id %d", e.ID)
				seen[e.ID] = true
			}
		}
		assert.Len(t, seen, w.EntityCount())
	})
}
