package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidSettings is returned when settings.yaml holds unusable values
var ErrInvalidSettings = errors.New("invalid settings")

// Settings is the root config for settings.yaml
type Settings struct {
	Display    DisplaySettings    `yaml:"display"`
	TileSize   float64            `yaml:"tileSize"`
	Hero       HeroSettings       `yaml:"hero"`
	Enemy      EnemySettings      `yaml:"enemy"`
	Gem        GemSettings        `yaml:"gem"`
	Animation  AnimationSettings  `yaml:"animation"`
	Background BackgroundSettings `yaml:"background"`

	// ProbeDistance is how far below a box the jump and ledge probes look
	ProbeDistance        float64 `yaml:"probeDistance"`
	LevelCompleteSeconds float64 `yaml:"levelCompleteSeconds"`

	// Levels are level file paths relative to the config root, in play order
	Levels []string `yaml:"levels"`
}

type DisplaySettings struct {
	ScreenWidth  int     `yaml:"screenWidth"`
	ScreenHeight int     `yaml:"screenHeight"`
	Scale        float64 `yaml:"scale"`
	Framerate    int     `yaml:"framerate"`
}

type HeroSettings struct {
	Speed       float64 `yaml:"speed"`
	JumpPower   float64 `yaml:"jumpPower"`
	Hearts      int     `yaml:"hearts"`
	KnockbackX  float64 `yaml:"knockbackX"`
	KnockbackY  float64 `yaml:"knockbackY"`
	HurtSeconds float64 `yaml:"hurtSeconds"`
}

type EnemySettings struct {
	Speed float64 `yaml:"speed"`
}

type GemSettings struct {
	Gems  int `yaml:"gems"`
	Score int `yaml:"score"`
}

type AnimationSettings struct {
	Default int `yaml:"default"`
	Ledge   int `yaml:"ledge"`
}

type BackgroundSettings struct {
	Parallax float64 `yaml:"parallax"`
	Width    float64 `yaml:"width"`
}

// DefaultSettings returns the settings used for any field settings.yaml omits
func DefaultSettings() Settings {
	return Settings{
		Display: DisplaySettings{
			ScreenWidth:  1024,
			ScreenHeight: 576,
			Scale:        1,
			Framerate:    60,
		},
		TileSize: 64,
		Hero: HeroSettings{
			Speed:       5,
			JumpPower:   15,
			Hearts:      3,
			KnockbackX:  15,
			KnockbackY:  5,
			HurtSeconds: 1,
		},
		Enemy:                EnemySettings{Speed: 2},
		Gem:                  GemSettings{Gems: 1, Score: 10},
		Animation:            AnimationSettings{Default: 10, Ledge: 8},
		Background:           BackgroundSettings{Parallax: 0.5, Width: 1024},
		ProbeDistance:        2,
		LevelCompleteSeconds: 2,
	}
}

// HurtTicks is the invulnerability window in ticks
func (s *Settings) HurtTicks() int {
	return secondsToTicks(s.Hero.HurtSeconds, s.Display.Framerate)
}

// CountdownTicks is how long the level-complete stage holds, in ticks
func (s *Settings) CountdownTicks() int {
	return secondsToTicks(s.LevelCompleteSeconds, s.Display.Framerate)
}

func secondsToTicks(seconds float64, framerate int) int {
	return int(math.Round(seconds * float64(framerate)))
}

// Validate rejects settings the simulation cannot run with
func (s *Settings) Validate() error {
	switch {
	case s.TileSize <= 0:
		return fmt.Errorf("%w: tileSize must be positive, got %v", ErrInvalidSettings, s.TileSize)
	case s.Display.Framerate <= 0:
		return fmt.Errorf("%w: framerate must be positive, got %d", ErrInvalidSettings, s.Display.Framerate)
	case s.Display.ScreenWidth <= 0 || s.Display.ScreenHeight <= 0:
		return fmt.Errorf("%w: screen %dx%d", ErrInvalidSettings, s.Display.ScreenWidth, s.Display.ScreenHeight)
	case s.Hero.Hearts <= 0:
		return fmt.Errorf("%w: hero hearts must be positive, got %d", ErrInvalidSettings, s.Hero.Hearts)
	case s.ProbeDistance <= 0:
		return fmt.Errorf("%w: probeDistance must be positive, got %v", ErrInvalidSettings, s.ProbeDistance)
	case s.HurtTicks() < 0 || s.CountdownTicks() < 0:
		return fmt.Errorf("%w: negative timer", ErrInvalidSettings)
	}
	return nil
}
