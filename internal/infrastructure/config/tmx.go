package config

import (
	"fmt"
	"math"

	"github.com/lafriks/go-tiled"

	"github.com/younwookim/gemhop/internal/domain/entity"
)

// startGroup is the object group holding the hero spawn
const startGroup = "start"

var requiredMapProperties = []string{"gravity", "terminal_velocity"}

// loadTMXLevel reads a Tiled map. Each tile layer named after a level category
// contributes its non-empty cells in row-major order, so the topmost-leftmost
// flag tile becomes the goal trigger.
func (l *Loader) loadTMXLevel(name, stem string) (*entity.Level, error) {
	m, err := tiled.LoadFile(name, tiled.WithFileSystem(l.fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", name, err)
	}

	level := &entity.Level{
		Name:   stem,
		Width:  m.Width,
		Height: m.Height,
	}
	for _, prop := range requiredMapProperties {
		if m.Properties == nil || len(m.Properties.Get(prop)) == 0 {
			return nil, fmt.Errorf("level %s: %w: missing map property %q", name, entity.ErrInvalidLevel, prop)
		}
	}
	level.Gravity = m.Properties.GetFloat("gravity")
	level.TerminalVelocity = m.Properties.GetFloat("terminal_velocity")

	for _, layer := range m.Layers {
		points := level.Category(layer.Name)
		if points == nil {
			continue
		}
		for y := 0; y < m.Height; y++ {
			for x := 0; x < m.Width; x++ {
				tile := layer.Tiles[y*m.Width+x]
				if tile.IsNil() {
					continue
				}
				*points = append(*points, entity.Point{X: x, Y: y})
			}
		}
	}

	found := false
	for _, og := range m.ObjectGroups {
		if og.Name != startGroup || len(og.Objects) == 0 {
			continue
		}
		o := og.Objects[0]
		level.Start = entity.Point{
			X: int(math.Floor(o.X / float64(m.TileWidth))),
			Y: int(math.Floor(o.Y / float64(m.TileHeight))),
		}
		found = true
		break
	}
	if !found {
		return nil, fmt.Errorf("level %s: %w: no %q object group", name, entity.ErrInvalidLevel, startGroup)
	}

	if err := level.Validate(); err != nil {
		return nil, fmt.Errorf("level %s: %w", name, err)
	}
	return level, nil
}
