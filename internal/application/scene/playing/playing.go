// Package playing provides the main gameplay scene.
package playing

import (
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/gemhop/internal/application/replay"
	"github.com/younwookim/gemhop/internal/application/scene"
	"github.com/younwookim/gemhop/internal/application/session"
	"github.com/younwookim/gemhop/internal/application/system"
	"github.com/younwookim/gemhop/internal/infrastructure/config"
)

// InputSource supplies one input state per tick
type InputSource interface {
	GetInput() system.InputState
}

// ChangeSource reports files changed since the last call
type ChangeSource interface {
	Drain() []string
}

// Options configures a Playing scene
type Options struct {
	Settings *config.Settings
	Session  *session.Session
	Input    InputSource

	// Recorder is optional. When set every tick's input is recorded
	// and written to RecordPath when the scene exits.
	Recorder   *replay.Recorder
	RecordPath string

	// Changes and LevelPath are optional and enable level hot reload.
	// LevelPath returns the file backing level i, or "" when it has none.
	Changes   ChangeSource
	LevelPath func(i int) string

	Logger *log.Logger
}

// Playing is the main gameplay scene
type Playing struct {
	opts    Options
	logger  *log.Logger
	screenW int
	screenH int
	saved   bool
}

// New creates a new Playing scene
func New(opts Options) *Playing {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Playing{
		opts:    opts,
		logger:  logger,
		screenW: opts.Settings.Display.ScreenWidth,
		screenH: opts.Settings.Display.ScreenHeight,
	}
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	p.logger.Debug("scene entered", "scene", "playing", "level", p.opts.Session.CurrentLevel())
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
}

// Update runs one session tick
func (p *Playing) Update() (scene.Scene, error) {
	p.reloadChanged()

	in := p.opts.Input.GetInput()
	if p.opts.Recorder != nil && p.opts.Recorder.IsRecording() {
		p.opts.Recorder.RecordFrame(in)
	}

	if in.Quit {
		return nil, scene.ErrQuit
	}

	if err := p.opts.Session.Tick(in); err != nil {
		return nil, err
	}
	return nil, nil
}

// reloadChanged rebuilds the active level when its file changed on disk
func (p *Playing) reloadChanged() {
	if p.opts.Changes == nil || p.opts.LevelPath == nil {
		return
	}
	changed := p.opts.Changes.Drain()
	if len(changed) == 0 {
		return
	}

	active := p.opts.LevelPath(p.opts.Session.CurrentLevel())
	if active == "" {
		return
	}
	active = filepath.Clean(active)

	for _, path := range changed {
		if filepath.Clean(path) != active {
			continue
		}
		if err := p.opts.Session.ReloadLevel(); err != nil {
			p.logger.Warn("level reload failed, keeping previous version", "path", path, "err", err)
			return
		}
		p.logger.Info("level reloaded", "path", path)
		return
	}
}

func (p *Playing) saveRecording() {
	if p.saved || p.opts.Recorder == nil || p.opts.RecordPath == "" {
		return
	}
	p.saved = true
	p.opts.Recorder.Stop()

	if err := p.opts.Recorder.Save(p.opts.RecordPath); err != nil {
		p.logger.Error("failed to save recording", "path", p.opts.RecordPath, "err", err)
		return
	}
	p.logger.Info("recording saved", "path", p.opts.RecordPath, "frames", p.opts.Recorder.FrameCount())
}

// Draw renders the current session snapshot
func (p *Playing) Draw(screen *ebiten.Image) {
	buildFrame(p.opts.Session.Snapshot(), p.screenW, p.screenH).draw(screen)
}
