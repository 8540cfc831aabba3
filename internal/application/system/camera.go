package system

import "math"

// CameraOffset returns the horizontal scroll that keeps the hero centered
// without showing anything outside [0, worldW]
func CameraOffset(cx, worldW, viewportW float64) float64 {
	half := viewportW / 2
	switch {
	case cx < half:
		return 0
	case cx > worldW-half:
		return worldW - viewportW
	default:
		return cx - half
	}
}

// ParallaxOffset returns where the first background copy is drawn.
// The result lies in (-imgW, 0]; a second copy is drawn at +imgW.
func ParallaxOffset(offset, factor, imgW float64) float64 {
	if imgW <= 0 {
		return 0
	}
	m := math.Mod(factor*offset, imgW)
	if m < 0 {
		m += imgW
	}
	if m == 0 {
		return 0
	}
	return -m
}
