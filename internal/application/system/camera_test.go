package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCameraOffset(t *testing.T) {
	tests := []struct {
		name string
		cx   float64
		want float64
	}{
		{"near left edge", 100, 0},
		{"exactly half a viewport", 512, 0},
		{"near right edge", 1948, 1024},
		{"centered", 1024, 512},
		{"just past half", 600, 88},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CameraOffset(tt.cx, 2048, 1024))
		})
	}
}

func TestCameraOffset_NeverShowsOutsideWorld(t *testing.T) {
	for cx := 0.0; cx <= 2048; cx += 7 {
		off := CameraOffset(cx, 2048, 1024)
		assert.GreaterOrEqual(t, off, 0.0)
		assert.LessOrEqual(t, off+1024, 2048.0)
	}
}

func TestParallaxOffset(t *testing.T) {
	tests := []struct {
		name   string
		offset float64
		want   float64
	}{
		{"no scroll", 0, 0},
		{"half speed", 512, -256},
		{"wraps at image width", 2048, 0},
		{"wraps past image width", 2200, -76},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParallaxOffset(tt.offset, 0.5, 1024)
			assert.Equal(t, tt.want, got)
			assert.Greater(t, got, -1024.0)
			assert.LessOrEqual(t, got, 0.0)
		})
	}

	assert.Zero(t, ParallaxOffset(100, 0.5, 0))
}
