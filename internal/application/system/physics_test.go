package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/gemhop/internal/domain/entity"
)

func TestPhysicsSystem_GravityClamp(t *testing.T) {
	tests := []struct {
		name     string
		gravity  float64
		terminal float64
	}{
		{"nominal", 1, 24},
		{"strong gravity", 7.5, 20},
		{"terminal below one step", 3, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level := createEmptyLevel()
			level.Gravity = tt.gravity
			level.TerminalVelocity = tt.terminal
			w := LoadWorld(level, testSettings())
			sys := NewPhysicsSystem(testSettings())

			e := &entity.Entity{}
			for i := 0; i < 500; i++ {
				sys.ApplyGravity(e, w)
				assert.LessOrEqual(t, e.VY, tt.terminal)
			}
			assert.Equal(t, tt.terminal, e.VY)
		})
	}
}

func TestPhysicsSystem_ClampToWorld(t *testing.T) {
	w := LoadWorld(createEmptyLevel(), testSettings())
	sys := NewPhysicsSystem(testSettings())

	tests := []struct {
		name    string
		x       float64
		wantX   float64
		clamped bool
	}{
		{"inside", 100, 100, false},
		{"past left edge", -7, 0, true},
		{"past right edge", 2000, 2048 - 64, true},
		{"flush right", 2048 - 64, 2048 - 64, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &entity.Entity{Rect: entity.Rect{X: tt.x, W: 64, H: 64}, VX: -3}
			assert.Equal(t, tt.clamped, sys.ClampToWorld(e, w))
			assert.Equal(t, tt.wantX, e.X)
			assert.Equal(t, -3.0, e.VX, "velocity is not touched")
		})
	}
}

func TestPhysicsSystem_Supported(t *testing.T) {
	w := LoadWorld(createTestLevel(), testSettings())
	sys := NewPhysicsSystem(testSettings())

	assert.True(t, sys.Supported(entity.Rect{X: 64, Y: 448, W: 64, H: 64}, w))
	assert.False(t, sys.Supported(entity.Rect{X: 64, Y: 440, W: 64, H: 64}, w))
}

func TestPhysicsSystem_AtLedge(t *testing.T) {
	level := createEmptyLevel()
	level.Grass = []entity.Point{{X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2}}
	w := LoadWorld(level, testSettings())
	sys := NewPhysicsSystem(testSettings())

	tests := []struct {
		name string
		x    float64
		vx   float64
		want bool
	}{
		{"middle moving right", 64, 2, false},
		{"overhanging right edge moving right", 130, 2, true},
		{"overhanging right edge moving left", 130, -2, false},
		{"flush left edge moving left", 0, -2, false},
		{"overhanging left edge moving left", -2, -2, true},
		{"off the platform", 400, 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &entity.Entity{Rect: entity.Rect{X: tt.x, Y: 64, W: 64, H: 64}, VX: tt.vx}
			assert.Equal(t, tt.want, sys.AtLedge(e, w))
		})
	}
}
