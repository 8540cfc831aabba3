package system

import (
	"github.com/younwookim/gemhop/internal/domain/entity"
	"github.com/younwookim/gemhop/internal/infrastructure/config"
)

// Report summarizes what happened to the hero during one update
type Report struct {
	Collected int
	Hurt      bool
}

// BehaviorSystem runs the per-kind update rules for the hero and enemies.
// It keeps no level state; the World is passed in on every call.
type BehaviorSystem struct {
	physics *PhysicsSystem
	combat  *CombatSystem
}

// NewBehaviorSystem creates a new behavior system
func NewBehaviorSystem(cfg *config.Settings) *BehaviorSystem {
	return &BehaviorSystem{
		physics: NewPhysicsSystem(cfg),
		combat:  NewCombatSystem(cfg),
	}
}

// Combat returns the combat rules used by the behavior system
func (s *BehaviorSystem) Combat() *CombatSystem {
	return s.combat
}

// Update advances the hero, then every enemy
func (s *BehaviorSystem) Update(h *entity.Hero, w *World) Report {
	r := s.UpdateHero(h, w)
	s.UpdateEnemies(w)
	return r
}

// Apply carries out a hero intent
func (s *BehaviorSystem) Apply(h *entity.Hero, intent Intent, w *World) {
	switch in := intent.(type) {
	case MoveIntent:
		switch {
		case in.Direction < 0:
			h.MoveLeft()
		case in.Direction > 0:
			h.MoveRight()
		default:
			h.Stop()
		}
	case JumpIntent:
		s.Jump(h, w)
	}
}

// Jump launches the hero if a platform is directly below it
func (s *BehaviorSystem) Jump(h *entity.Hero, w *World) bool {
	if !s.physics.Supported(h.Rect, w) {
		return false
	}
	h.VY = -h.JumpPower
	h.Jumping = true
	return true
}

// UpdateHero advances the hero by one tick
func (s *BehaviorSystem) UpdateHero(h *entity.Hero, w *World) Report {
	var r Report

	s.physics.ApplyGravity(&h.Entity, w)
	s.physics.ClampToWorld(&h.Entity, w)
	r.Collected = s.combat.CollectItems(h, w)
	r.Hurt = s.combat.ResolveEnemyContacts(h, w)

	if c := s.physics.MoveAndCollide(&h.Entity, w); c.Floor {
		h.Jumping = false
	}

	h.Anim.Advance(heroAnim(h))
	return r
}

func heroAnim(h *entity.Hero) entity.AnimSet {
	switch {
	case h.Jumping:
		return entity.AnimJump
	case h.VX == 0:
		return entity.AnimIdle
	default:
		return entity.AnimWalk
	}
}

// UpdateEnemies advances every enemy in collection order.
// Each kind's patrol traits decide which rules apply to it.
func (s *BehaviorSystem) UpdateEnemies(w *World) {
	for _, e := range w.Enemies {
		traits, ok := entity.TraitsOf(e.Kind)
		if !ok {
			continue
		}
		s.updatePatroller(e, traits, w)
	}
}

func (s *BehaviorSystem) updatePatroller(e *entity.Entity, traits entity.PatrolTraits, w *World) {
	if traits.Gravity {
		s.physics.ApplyGravity(e, w)
	}
	s.patrol(e, w)
	if traits.LedgeAware && s.physics.AtLedge(e, w) {
		e.Reverse()
	}
	e.Anim.Advance(traits.Anim)
	e.Facing = entity.FacingFor(e.VX, e.Facing)
}

// patrol moves e and turns it around at walls and world edges
func (s *BehaviorSystem) patrol(e *entity.Entity, w *World) {
	if c := s.physics.MoveAndCollide(e, w); c.Wall {
		e.Reverse()
	}
	if s.physics.ClampToWorld(e, w) {
		e.Reverse()
	}
}

