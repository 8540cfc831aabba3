package entity

import (
	"errors"
	"fmt"
)

// ErrInvalidLevel is returned when level data breaks the level schema
var ErrInvalidLevel = errors.New("invalid level")

// Point is a tile coordinate
type Point struct {
	X, Y int
}

// Level is the static description of one playable level.
// All coordinates are tile indices. A Level is never modified after loading.
type Level struct {
	Name   string
	Width  int
	Height int
	Start  Point

	Gravity          float64
	TerminalVelocity float64

	// Flags[0] is the goal trigger, the rest are pole decoration
	Flags      []Point
	Grass      []Point
	Blocks     []Point
	Gems       []Point
	SpikeBalls []Point
	SpikeMen   []Point
	Clouds     []Point
}

// Category returns the coordinate list stored under a level-file category name,
// or nil for an unknown name
func (l *Level) Category(name string) *[]Point {
	switch name {
	case "flags":
		return &l.Flags
	case "grass":
		return &l.Grass
	case "blocks":
		return &l.Blocks
	case "gems":
		return &l.Gems
	case "spikeballs":
		return &l.SpikeBalls
	case "spikemen":
		return &l.SpikeMen
	case "clouds":
		return &l.Clouds
	default:
		return nil
	}
}

// CategoryNames lists the coordinate categories in level-file order
var CategoryNames = []string{"flags", "grass", "blocks", "gems", "spikeballs", "spikemen", "clouds"}

// Contains reports whether p lies inside the level grid
func (l *Level) Contains(p Point) bool {
	return p.X >= 0 && p.X < l.Width && p.Y >= 0 && p.Y < l.Height
}

// PixelWidth returns the level width in world units
func (l *Level) PixelWidth(tileSize float64) float64 {
	return float64(l.Width) * tileSize
}

// PixelHeight returns the level height in world units
func (l *Level) PixelHeight(tileSize float64) float64 {
	return float64(l.Height) * tileSize
}

// Validate checks the level dimensions and that every coordinate is on the grid
func (l *Level) Validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidLevel, l.Width, l.Height)
	}
	if l.TerminalVelocity <= 0 {
		return fmt.Errorf("%w: terminal_velocity must be positive, got %v", ErrInvalidLevel, l.TerminalVelocity)
	}
	if !l.Contains(l.Start) {
		return fmt.Errorf("%w: start (%d,%d) outside %dx%d", ErrInvalidLevel, l.Start.X, l.Start.Y, l.Width, l.Height)
	}

	for _, name := range CategoryNames {
		for i, p := range *l.Category(name) {
			if !l.Contains(p) {
				return fmt.Errorf("%w: %s[%d] (%d,%d) outside %dx%d", ErrInvalidLevel, name, i, p.X, p.Y, l.Width, l.Height)
			}
		}
	}
	return nil
}
