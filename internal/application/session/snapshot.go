package session

import (
	"github.com/younwookim/gemhop/internal/application/state"
	"github.com/younwookim/gemhop/internal/application/system"
	"github.com/younwookim/gemhop/internal/domain/entity"
)

// Sprite is one entity as the renderer sees it
type Sprite struct {
	ID     entity.EntityID
	Kind   entity.Kind
	Tile   entity.TileType
	Rect   entity.Rect
	Facing entity.Facing
	Anim   entity.AnimSet
	Frame  int

	// Blink is set while the hero is invulnerable
	Blink bool
}

// HUD is the hero status line
type HUD struct {
	Hearts int
	Gems   int
	Score  int
}

// Snapshot is everything the renderer needs for one frame
type Snapshot struct {
	Stage     state.GameState
	Level     int
	LevelName string
	Countdown int
	Tick      uint64

	// Sprites are in draw order, the hero last
	Sprites []Sprite
	HUD     HUD

	CameraX     float64
	BackgroundX float64
	DebugGrid   bool

	TileSize    float64
	WorldWidth  float64
	WorldHeight float64
}

// Snapshot captures the session state between ticks
func (s *Session) Snapshot() Snapshot {
	w := s.world
	h := s.hero

	sprites := make([]Sprite, 0, w.EntityCount()+1)
	for _, group := range [][]*entity.Entity{w.Platforms, w.Goals, w.Items, w.Enemies} {
		for _, e := range group {
			sprites = append(sprites, spriteOf(e))
		}
	}
	hs := spriteOf(&h.Entity)
	hs.Blink = h.IsInvulnerable()
	sprites = append(sprites, hs)

	camera := system.CameraOffset(h.CenterX(), w.Width, float64(s.cfg.Display.ScreenWidth))

	return Snapshot{
		Stage:       s.machine.State(),
		Level:       s.current,
		LevelName:   w.Level.Name,
		Countdown:   s.machine.Countdown(),
		Tick:        s.ticks,
		Sprites:     sprites,
		HUD:         HUD{Hearts: h.Hearts, Gems: h.Gems, Score: h.Score},
		CameraX:     camera,
		BackgroundX: system.ParallaxOffset(camera, s.cfg.Background.Parallax, s.cfg.Background.Width),
		DebugGrid:   s.debugGrid,
		TileSize:    w.TileSize,
		WorldWidth:  w.Width,
		WorldHeight: w.Height,
	}
}

func spriteOf(e *entity.Entity) Sprite {
	return Sprite{
		ID:     e.ID,
		Kind:   e.Kind,
		Tile:   e.Tile,
		Rect:   e.Rect,
		Facing: e.Facing,
		Anim:   e.Anim.Set,
		Frame:  e.Anim.Frame,
	}
}
