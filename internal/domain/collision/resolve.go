package collision

import "github.com/younwookim/gemhop/internal/domain/entity"

// Contact reports what a move ran into
type Contact struct {
	Wall    bool // blocked while moving horizontally
	Floor   bool // landed while moving down
	Ceiling bool // bumped while moving up
}

// MoveAndCollide applies the entity velocity one axis at a time.
//
// X moves first and every overlapping solid clamps the leading edge to the
// obstruction. Y moves second from the corrected X position, clamps the same
// way and zeroes VY. Nothing guards against tunneling: a step longer than a
// solid is thick can pass through it.
func MoveAndCollide(e *entity.Entity, solids Solids) Contact {
	var c Contact

	e.X += e.VX
	vx := e.VX
	for _, hit := range solids.Overlapping(e.Rect) {
		if vx > 0 {
			e.SetRight(hit.Left())
			c.Wall = true
		} else if vx < 0 {
			e.SetLeft(hit.Right())
			c.Wall = true
		}
	}

	e.Y += e.VY
	vy := e.VY
	for _, hit := range solids.Overlapping(e.Rect) {
		if vy > 0 {
			e.SetBottom(hit.Top())
			c.Floor = true
		} else if vy < 0 {
			e.SetTop(hit.Bottom())
			c.Ceiling = true
		}
		e.VY = 0
	}

	return c
}

// Supported reports whether a solid lies within probe units below the entity
func Supported(r entity.Rect, solids Solids, probe float64) bool {
	return len(solids.Overlapping(r.Offset(0, probe))) > 0
}
