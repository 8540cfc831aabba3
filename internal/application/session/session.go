// Package session owns one play session: the world, the hero and the stage flow.
package session

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/younwookim/gemhop/internal/application/state"
	"github.com/younwookim/gemhop/internal/application/system"
	"github.com/younwookim/gemhop/internal/domain/entity"
	"github.com/younwookim/gemhop/internal/infrastructure/config"
)

// ErrNoLevels is returned when a session is created without any level
var ErrNoLevels = errors.New("no levels configured")

// LevelSource supplies levels by play order
type LevelSource interface {
	LevelCount() int
	LoadLevel(i int) (*entity.Level, error)
}

// Session is the single owner of all mutable game state.
// Tick is the only method that advances it; Snapshot only reads.
type Session struct {
	cfg      *config.Settings
	levels   LevelSource
	logger   *log.Logger
	behavior *system.BehaviorSystem

	machine   *state.Machine
	hero      *entity.Hero
	world     *system.World
	current   int
	debugGrid bool
	ticks     uint64
}

// New creates a session in the start stage with the first level loaded
func New(cfg *config.Settings, levels LevelSource, logger *log.Logger) (*Session, error) {
	if levels.LevelCount() == 0 {
		return nil, ErrNoLevels
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Session{
		cfg:      cfg,
		levels:   levels,
		logger:   logger,
		behavior: system.NewBehaviorSystem(cfg),
	}
	if err := s.Restart(); err != nil {
		return nil, err
	}
	return s, nil
}

// Restart resets the hero to default stats and returns to the first level
func (s *Session) Restart() error {
	world, err := s.loadWorld(0)
	if err != nil {
		return err
	}

	s.hero = entity.NewHero(0, 0, s.cfg.TileSize, entity.HeroDefaults{
		Hearts: s.cfg.Hero.Hearts,
		Speed:  s.cfg.Hero.Speed,
		Jump:   s.cfg.Hero.JumpPower,
	})
	s.enter(0, world)

	prev := state.StateStart
	if s.machine != nil {
		prev = s.machine.State()
	}
	s.machine = state.NewMachine(s.cfg.CountdownTicks())
	s.logger.Debug("stage changed", "from", prev, "to", s.machine.State())
	return nil
}

// ReloadLevel rebuilds the current level from its source.
// The hero keeps its stats and respawns at the level start.
func (s *Session) ReloadLevel() error {
	world, err := s.loadWorld(s.current)
	if err != nil {
		return err
	}
	s.enter(s.current, world)
	return nil
}

// Tick advances the session by one fixed step
func (s *Session) Tick(in system.InputState) error {
	s.ticks++

	if in.ToggleGrid {
		s.debugGrid = !s.debugGrid
	}

	switch s.machine.State() {
	case state.StateStart:
		if in.AnyKey && !in.ToggleGrid {
			s.fire(state.TriggerAnyKey)
		}
	case state.StatePlaying:
		if in.JumpPressed {
			s.behavior.Apply(s.hero, system.JumpIntent{}, s.world)
		}
	case state.StateLose, state.StateWin:
		if in.RestartPressed {
			return s.Restart()
		}
	}

	if s.machine.State() == state.StatePlaying {
		s.behavior.Apply(s.hero, system.MovementIntent(in), s.world)
	}

	switch s.machine.State() {
	case state.StatePlaying:
		report := s.behavior.Update(s.hero, s.world)
		if report.Hurt {
			s.logger.Debug("hero hurt", "hearts", s.hero.Hearts)
		}

		if s.hero.IsDefeated() {
			s.fire(state.TriggerDefeated)
		} else if s.behavior.Combat().ReachedGoal(s.hero, s.world) {
			s.fire(state.TriggerGoalReached)
		}
	case state.StateLevelComplete:
		if s.machine.TickCountdown() {
			return s.advance()
		}
	}
	return nil
}

// advance moves to the next level, or to the win stage after the last one
func (s *Session) advance() error {
	next := s.current + 1
	if next >= s.levels.LevelCount() {
		s.fire(state.TriggerAllCleared)
		return nil
	}

	world, err := s.loadWorld(next)
	if err != nil {
		return err
	}
	s.enter(next, world)
	s.fire(state.TriggerNextLevel)
	return nil
}

// loadWorld builds level i without touching the session
func (s *Session) loadWorld(i int) (*system.World, error) {
	level, err := s.levels.LoadLevel(i)
	if err != nil {
		return nil, fmt.Errorf("failed to load level %d: %w", i, err)
	}
	if err := level.Validate(); err != nil {
		return nil, fmt.Errorf("failed to load level %d: %w", i, err)
	}
	return system.LoadWorld(level, s.cfg), nil
}

func (s *Session) enter(i int, world *system.World) {
	s.current = i
	s.world = world
	start := world.Start()
	s.hero.MoveTo(start.X, start.Y)

	s.logger.Info("level loaded",
		"index", i,
		"name", world.Level.Name,
		"platforms", len(world.Platforms),
		"enemies", len(world.Enemies),
		"gems", len(world.Items),
	)
}

// fire applies a trigger; triggers that do not apply are ignored
func (s *Session) fire(t state.Trigger) {
	from := s.machine.State()
	if err := s.machine.Fire(t); err != nil {
		s.logger.Debug("trigger ignored", "trigger", t, "stage", from)
		return
	}
	s.logger.Debug("stage changed", "from", from, "to", s.machine.State())
}

// Stage returns the current stage
func (s *Session) Stage() state.GameState {
	return s.machine.State()
}

// CurrentLevel returns the index of the active level
func (s *Session) CurrentLevel() int {
	return s.current
}

// Hero returns the hero
func (s *Session) Hero() *entity.Hero {
	return s.hero
}

// World returns the active world
func (s *Session) World() *system.World {
	return s.world
}

// Countdown returns the ticks left before the next level
func (s *Session) Countdown() int {
	return s.machine.Countdown()
}

// DebugGrid reports whether the tile grid overlay is on
func (s *Session) DebugGrid() bool {
	return s.debugGrid
}

// Ticks returns the number of ticks run so far
func (s *Session) Ticks() uint64 {
	return s.ticks
}
