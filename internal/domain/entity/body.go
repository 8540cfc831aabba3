package entity

// Entity is the flat record shared by every object in a level.
// Static tiles only use the box and Tile; movers also use velocity and animation.
type Entity struct {
	Rect
	ID     EntityID
	Kind   Kind
	Tile   TileType
	VX, VY float64
	Facing Facing
	Anim   Animation

	// Trigger marks the goal marker that completes the level
	Trigger bool
}

// SetLeft moves the box so its left edge is at x
func (e *Entity) SetLeft(x float64) { e.X = x }

// SetRight moves the box so its right edge is at x
func (e *Entity) SetRight(x float64) { e.X = x - e.W }

// SetTop moves the box so its top edge is at y
func (e *Entity) SetTop(y float64) { e.Y = y }

// SetBottom moves the box so its bottom edge is at y
func (e *Entity) SetBottom(y float64) { e.Y = y - e.H }

// Reverse flips the horizontal velocity and the facing with it
func (e *Entity) Reverse() {
	e.VX = -e.VX
	e.Facing = FacingFor(e.VX, e.Facing)
}

// NewTile creates a static entity occupying one tile at tile coordinates tx, ty
func NewTile(id EntityID, kind Kind, tile TileType, tx, ty int, tileSize float64) *Entity {
	return &Entity{
		Rect: Rect{
			X: float64(tx) * tileSize,
			Y: float64(ty) * tileSize,
			W: tileSize,
			H: tileSize,
		},
		ID:   id,
		Kind: kind,
		Tile: tile,
		Anim: NewAnimation(AnimStatic, DefaultAnimSpeed),
	}
}

// HeroDefaults are the stats a hero starts a game with
type HeroDefaults struct {
	Hearts int
	Speed  float64
	Jump   float64
}

// Hero is the player-controlled entity
type Hero struct {
	Entity

	Speed     float64
	JumpPower float64

	Hearts int
	Gems   int
	Score  int

	// HurtTimer counts down the ticks of invulnerability after a hit
	HurtTimer int
	Jumping   bool
}

// NewHero creates a hero with default stats at tile coordinates tx, ty
func NewHero(tx, ty int, tileSize float64, d HeroDefaults) *Hero {
	h := &Hero{
		Entity: Entity{
			Rect:   Rect{W: tileSize, H: tileSize},
			Kind:   KindHero,
			Facing: FacingRight,
			Anim:   NewAnimation(AnimIdle, DefaultAnimSpeed),
		},
		Speed:     d.Speed,
		JumpPower: d.Jump,
		Hearts:    d.Hearts,
	}
	h.MoveTo(tx, ty)
	return h
}

// MoveTo places the hero on tile tx, ty and clears its motion.
// Hearts, gems and score are kept.
func (h *Hero) MoveTo(tx, ty int) {
	h.X = float64(tx) * h.W
	h.Y = float64(ty) * h.H
	h.VX = 0
	h.VY = 0
	h.Jumping = false
	h.HurtTimer = 0
}

// MoveLeft sets the walking velocity to the left
func (h *Hero) MoveLeft() {
	h.VX = -h.Speed
	h.Facing = FacingLeft
}

// MoveRight sets the walking velocity to the right
func (h *Hero) MoveRight() {
	h.VX = h.Speed
	h.Facing = FacingRight
}

// Stop clears the walking velocity
func (h *Hero) Stop() {
	h.VX = 0
}

// IsInvulnerable returns true while enemy contact has no effect
func (h *Hero) IsInvulnerable() bool {
	return h.HurtTimer > 0
}

// IsDefeated returns true once every heart is lost
func (h *Hero) IsDefeated() bool {
	return h.Hearts <= 0
}
