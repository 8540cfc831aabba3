package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState holds the input for one tick
type InputState struct {
	Quit           bool
	ToggleGrid     bool
	AnyKey         bool
	JumpPressed    bool
	RestartPressed bool
	Left           bool
	Right          bool
}

// KeySource is the keyboard as seen by the input system
type KeySource interface {
	IsKeyPressed(k ebiten.Key) bool
	IsKeyJustPressed(k ebiten.Key) bool
	JustPressedKeys() []ebiten.Key
}

// ebitenKeys reads the live ebiten keyboard state
type ebitenKeys struct{}

func (ebitenKeys) IsKeyPressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (ebitenKeys) IsKeyJustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }
func (ebitenKeys) JustPressedKeys() []ebiten.Key {
	return inpututil.AppendJustPressedKeys(nil)
}

// Key bindings
const (
	KeyLeft    = ebiten.KeyArrowLeft
	KeyRight   = ebiten.KeyArrowRight
	KeyJump    = ebiten.KeySpace
	KeyRestart = ebiten.KeyR
	KeyGrid    = ebiten.KeyG
	KeyQuit    = ebiten.KeyEscape
)

// InputSystem handles keyboard input
type InputSystem struct {
	keys KeySource
}

// NewInputSystem creates an input system reading the ebiten keyboard
func NewInputSystem() *InputSystem {
	return &InputSystem{keys: ebitenKeys{}}
}

// NewInputSystemFrom creates an input system over any key source
func NewInputSystemFrom(keys KeySource) *InputSystem {
	return &InputSystem{keys: keys}
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	return InputState{
		Quit:           s.keys.IsKeyJustPressed(KeyQuit),
		ToggleGrid:     s.keys.IsKeyJustPressed(KeyGrid),
		AnyKey:         s.anyStartKey(),
		JumpPressed:    s.keys.IsKeyJustPressed(KeyJump),
		RestartPressed: s.keys.IsKeyJustPressed(KeyRestart),
		Left:           s.keys.IsKeyPressed(KeyLeft),
		Right:          s.keys.IsKeyPressed(KeyRight),
	}
}

// anyStartKey reports a fresh press of any key except the grid and quit keys
func (s *InputSystem) anyStartKey() bool {
	for _, k := range s.keys.JustPressedKeys() {
		if k != KeyGrid && k != KeyQuit {
			return true
		}
	}
	return false
}
