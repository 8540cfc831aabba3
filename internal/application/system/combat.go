package system

import (
	"github.com/younwookim/gemhop/internal/domain/entity"
	"github.com/younwookim/gemhop/internal/infrastructure/config"
)

// CombatSystem handles hero contact with items, enemies and the goal
type CombatSystem struct {
	reward     entity.GemReward
	knockbackX float64
	knockbackY float64
	hurtTicks  int
}

// NewCombatSystem creates a new combat system
func NewCombatSystem(cfg *config.Settings) *CombatSystem {
	return &CombatSystem{
		reward:     entity.GemReward{Gems: cfg.Gem.Gems, Score: cfg.Gem.Score},
		knockbackX: cfg.Hero.KnockbackX,
		knockbackY: cfg.Hero.KnockbackY,
		hurtTicks:  cfg.HurtTicks(),
	}
}

// CollectItems consumes every item the hero overlaps and returns how many
func (s *CombatSystem) CollectItems(h *entity.Hero, w *World) int {
	kept := w.Items[:0]
	collected := 0
	for _, item := range w.Items {
		if h.Overlaps(item.Rect) {
			h.ApplyGem(s.reward)
			collected++
			continue
		}
		kept = append(kept, item)
	}
	// clear the tail so removed items can be collected by the GC
	for i := len(kept); i < len(w.Items); i++ {
		w.Items[i] = nil
	}
	w.Items = kept
	return collected
}

// ResolveEnemyContacts damages the hero on enemy contact outside the
// invulnerability window and knocks it away from the enemies it touched.
// The hurt timer counts down here, so it reports whether damage was taken.
func (s *CombatSystem) ResolveEnemyContacts(h *entity.Hero, w *World) bool {
	hurt := false

	if h.HurtTimer == 0 {
		var hits []*entity.Entity
		for _, e := range w.Enemies {
			if h.Overlaps(e.Rect) {
				hits = append(hits, e)
			}
		}

		if len(hits) > 0 {
			if h.Hearts > 0 {
				h.Hearts--
			}
			h.HurtTimer = s.hurtTicks
			hurt = true

			for _, e := range hits {
				s.knockback(h, e)
			}
		}
	}

	if h.HurtTimer > 0 {
		h.HurtTimer--
	}
	return hurt
}

// knockback sets the hero velocity away from the enemy position.
// An axis where both sit at the same coordinate keeps its velocity.
func (s *CombatSystem) knockback(h *entity.Hero, e *entity.Entity) {
	switch {
	case h.X < e.X:
		h.VX = -s.knockbackX
	case h.X > e.X:
		h.VX = s.knockbackX
	}

	switch {
	case h.Y < e.Y:
		h.VY = -s.knockbackY
	case h.Y > e.Y:
		h.VY = s.knockbackY
	}
}

// ReachedGoal reports whether the hero overlaps the goal trigger
func (s *CombatSystem) ReachedGoal(h *entity.Hero, w *World) bool {
	for _, g := range w.Goals {
		if g.Trigger && h.Overlaps(g.Rect) {
			return true
		}
	}
	return false
}
