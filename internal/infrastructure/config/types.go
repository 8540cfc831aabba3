package config

import (
	"fmt"

	"github.com/younwookim/gemhop/internal/domain/entity"
)

// LevelConfig is the root config for level JSON files
type LevelConfig struct {
	Name             string  `json:"name,omitempty"`
	Width            *int     `json:"width"`
	Height           *int     `json:"height"`
	Start            []int    `json:"start"`
	Gravity          *float64 `json:"gravity"`
	TerminalVelocity *float64 `json:"terminal_velocity"`

	FlagLocs      [][]int `json:"flag_locs"`
	GrassLocs     [][]int `json:"grass_locs"`
	BlockLocs     [][]int `json:"block_locs"`
	GemLocs       [][]int `json:"gem_locs"`
	SpikeballLocs [][]int `json:"spikeball_locs"`
	SpikemanLocs  [][]int `json:"spikeman_locs"`
	CloudLocs     [][]int `json:"cloud_locs"`
}

// ToLevel converts the file record into a validated level
func (c *LevelConfig) ToLevel(name string) (*entity.Level, error) {
	if c.Name != "" {
		name = c.Name
	}

	if field := c.missingField(); field != "" {
		return nil, fmt.Errorf("%w: missing %s", entity.ErrInvalidLevel, field)
	}

	start, err := toPoint("start", 0, c.Start)
	if err != nil {
		return nil, err
	}

	level := &entity.Level{
		Name:             name,
		Width:            *c.Width,
		Height:           *c.Height,
		Start:            start,
		Gravity:          *c.Gravity,
		TerminalVelocity: *c.TerminalVelocity,
	}

	categories := map[string][][]int{
		"flags":      c.FlagLocs,
		"grass":      c.GrassLocs,
		"blocks":     c.BlockLocs,
		"gems":       c.GemLocs,
		"spikeballs": c.SpikeballLocs,
		"spikemen":   c.SpikemanLocs,
		"clouds":     c.CloudLocs,
	}
	for _, category := range entity.CategoryNames {
		locs := categories[category]
		points := make([]entity.Point, 0, len(locs))
		for i, loc := range locs {
			p, err := toPoint(category, i, loc)
			if err != nil {
				return nil, err
			}
			points = append(points, p)
		}
		*level.Category(category) = points
	}

	if err := level.Validate(); err != nil {
		return nil, err
	}
	return level, nil
}

// missingField returns the first required field absent from the file
func (c *LevelConfig) missingField() string {
	switch {
	case c.Width == nil:
		return "width"
	case c.Height == nil:
		return "height"
	case c.Start == nil:
		return "start"
	case c.Gravity == nil:
		return "gravity"
	case c.TerminalVelocity == nil:
		return "terminal_velocity"
	}
	return ""
}

func toPoint(field string, i int, loc []int) (entity.Point, error) {
	if len(loc) != 2 {
		return entity.Point{}, fmt.Errorf("%w: %s[%d] has %d coordinates, want 2", entity.ErrInvalidLevel, field, i, len(loc))
	}
	return entity.Point{X: loc[0], Y: loc[1]}, nil
}
