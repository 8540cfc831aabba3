package entity

// PatrolTraits describes how a patroller variant moves
type PatrolTraits struct {
	Gravity    bool // falls under level gravity
	LedgeAware bool // turns around at platform edges
	Anim       AnimSet
}

// patrolTraits is indexed by the enemy kinds
var patrolTraits = map[Kind]PatrolTraits{
	KindGroundPatroller: {Gravity: true, Anim: AnimRoll},
	KindLedgePatroller:  {Gravity: true, LedgeAware: true, Anim: AnimStride},
	KindFlyingPatroller: {Anim: AnimDrift},
}

// TraitsOf returns the patrol traits of an enemy kind
func TraitsOf(k Kind) (PatrolTraits, bool) {
	t, ok := patrolTraits[k]
	return t, ok
}

// NewEnemy creates a patroller on tile tx, ty walking left at speed
func NewEnemy(id EntityID, kind Kind, tx, ty int, tileSize, speed float64, animSpeed int) *Entity {
	traits, _ := TraitsOf(kind)
	e := NewTile(id, kind, TileNone, tx, ty, tileSize)
	e.VX = -speed
	e.Facing = FacingLeft
	e.Anim = NewAnimation(traits.Anim, animSpeed)
	return e
}

// GemReward is applied to the hero on pickup
type GemReward struct {
	Gems  int
	Score int
}

// ApplyGem credits a gem pickup to the hero
func (h *Hero) ApplyGem(r GemReward) {
	h.Gems += r.Gems
	h.Score += r.Score
}
