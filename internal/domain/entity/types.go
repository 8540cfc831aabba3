package entity

// EntityID is a unique identifier for an entity within one loaded level
type EntityID uint32

// Kind is the behavior-variant tag of an entity.
// The update step dispatches on it instead of on a type hierarchy.
type Kind int

const (
	KindHero Kind = iota
	KindGroundPatroller
	KindLedgePatroller
	KindFlyingPatroller
	KindPlatform
	KindGem
	KindGoal
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindHero:
		return "Hero"
	case KindGroundPatroller:
		return "GroundPatroller"
	case KindLedgePatroller:
		return "LedgePatroller"
	case KindFlyingPatroller:
		return "FlyingPatroller"
	case KindPlatform:
		return "Platform"
	case KindGem:
		return "Gem"
	case KindGoal:
		return "Goal"
	default:
		return "Unknown"
	}
}

// TileType selects the look of a static tile. It has no effect on physics.
type TileType int

const (
	TileNone TileType = iota
	TileGrass
	TileBlock
	TileFlag
	TilePole
)

// Facing is the horizontal direction an entity looks at
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

// FacingFor returns the facing implied by a horizontal velocity.
// A zero velocity keeps the current facing.
func FacingFor(vx float64, current Facing) Facing {
	switch {
	case vx > 0:
		return FacingRight
	case vx < 0:
		return FacingLeft
	default:
		return current
	}
}

// Rect is an axis-aligned bounding box in world units.
// X, Y is the top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// Left returns the left edge
func (r Rect) Left() float64 { return r.X }

// Right returns the right edge
func (r Rect) Right() float64 { return r.X + r.W }

// Top returns the top edge
func (r Rect) Top() float64 { return r.Y }

// Bottom returns the bottom edge
func (r Rect) Bottom() float64 { return r.Y + r.H }

// CenterX returns the horizontal center
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// Overlaps reports whether two boxes intersect.
// Boxes that only share an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X && r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// Offset returns the box moved by dx, dy
func (r Rect) Offset(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}
