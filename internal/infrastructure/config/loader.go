package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/younwookim/gemhop/internal/domain/entity"
)

// ErrUnknownLevelFormat is returned for level files that are neither JSON nor TMX
var ErrUnknownLevelFormat = errors.New("unknown level format")

// SettingsFile is the settings path relative to the config root
const SettingsFile = "settings.yaml"

// Loader loads settings and levels using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS.
// basePath is only used to locate files on disk and may be empty.
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// OnDisk returns the disk path of a config file, or false when the loader
// reads from an embedded filesystem
func (l *Loader) OnDisk(name string) (string, bool) {
	if l.basePath == "" {
		return "", false
	}
	return filepath.Join(l.basePath, filepath.FromSlash(name)), true
}

// LoadSettings loads settings.yaml on top of DefaultSettings
func (l *Loader) LoadSettings() (*Settings, error) {
	data, err := fs.ReadFile(l.fsys, SettingsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", SettingsFile, err)
	}

	cfg := DefaultSettings()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", SettingsFile, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", SettingsFile, err)
	}

	return &cfg, nil
}

// LoadLevel loads a level file, choosing the decoder by extension
func (l *Loader) LoadLevel(name string) (*entity.Level, error) {
	stem := strings.TrimSuffix(path.Base(name), path.Ext(name))

	switch strings.ToLower(path.Ext(name)) {
	case ".json":
		return l.loadJSONLevel(name, stem)
	case ".tmx":
		return l.loadTMXLevel(name, stem)
	default:
		return nil, fmt.Errorf("level %s: %w", name, ErrUnknownLevelFormat)
	}
}

func (l *Loader) loadJSONLevel(name, stem string) (*entity.Level, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read level %s: %w", name, err)
	}

	var cfg LevelConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse level %s: %w", name, err)
	}

	level, err := cfg.ToLevel(stem)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", name, err)
	}
	return level, nil
}

// LevelSet is an ordered list of level files read through one loader
type LevelSet struct {
	loader *Loader
	names  []string
}

// Levels returns the level set for the given file names
func (l *Loader) Levels(names []string) *LevelSet {
	return &LevelSet{loader: l, names: names}
}

// LevelCount returns the number of levels in the set
func (s *LevelSet) LevelCount() int {
	return len(s.names)
}

// Name returns the file name of level i
func (s *LevelSet) Name(i int) string {
	if i < 0 || i >= len(s.names) {
		return ""
	}
	return s.names[i]
}

// LoadLevel reads level i from its file
func (s *LevelSet) LoadLevel(i int) (*entity.Level, error) {
	if i < 0 || i >= len(s.names) {
		return nil, fmt.Errorf("level index %d out of range [0,%d)", i, len(s.names))
	}
	return s.loader.LoadLevel(s.names[i])
}

// Loader returns the loader the set reads through
func (s *LevelSet) Loader() *Loader {
	return s.loader
}
