package system

import (
	"github.com/younwookim/gemhop/internal/domain/collision"
	"github.com/younwookim/gemhop/internal/domain/entity"
	"github.com/younwookim/gemhop/internal/infrastructure/config"
)

// PhysicsSystem applies gravity, world bounds and platform collision
type PhysicsSystem struct {
	probe float64
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(cfg *config.Settings) *PhysicsSystem {
	return &PhysicsSystem{probe: cfg.ProbeDistance}
}

// ApplyGravity accelerates e downward, capped at the terminal velocity
func (s *PhysicsSystem) ApplyGravity(e *entity.Entity, w *World) {
	e.VY += w.Gravity
	if e.VY > w.TerminalVelocity {
		e.VY = w.TerminalVelocity
	}
}

// ClampToWorld pushes e back inside [0, world width].
// It reports whether e was outside; velocity is left alone.
func (s *PhysicsSystem) ClampToWorld(e *entity.Entity, w *World) bool {
	switch {
	case e.Left() < 0:
		e.SetLeft(0)
		return true
	case e.Right() > w.Width:
		e.SetRight(w.Width)
		return true
	}
	return false
}

// MoveAndCollide moves e by its velocity against the world platforms
func (s *PhysicsSystem) MoveAndCollide(e *entity.Entity, w *World) collision.Contact {
	return collision.MoveAndCollide(e, w.Solids)
}

// Supported reports whether a platform lies just below r
func (s *PhysicsSystem) Supported(r entity.Rect, w *World) bool {
	return collision.Supported(r, w.Solids, s.probe)
}

// AtLedge reports whether the leading edge of e has run out of platform.
// With no platform below at all it also reports true.
func (s *PhysicsSystem) AtLedge(e *entity.Entity, w *World) bool {
	for _, p := range w.Solids.Overlapping(e.Offset(0, s.probe)) {
		if e.VX < 0 && p.Left() <= e.Left() {
			return false
		}
		if e.VX > 0 && p.Right() >= e.Right() {
			return false
		}
	}
	return true
}
