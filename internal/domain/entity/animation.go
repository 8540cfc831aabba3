package entity

// AnimSet names a sequence of frames the renderer knows how to draw
type AnimSet int

const (
	AnimStatic AnimSet = iota
	AnimIdle
	AnimWalk
	AnimJump
	AnimRoll   // ground patroller
	AnimStride // ledge patroller
	AnimDrift  // flying patroller
)

// animFrames is the frame count of each set
var animFrames = map[AnimSet]int{
	AnimStatic: 1,
	AnimIdle:   1,
	AnimWalk:   2,
	AnimJump:   1,
	AnimRoll:   2,
	AnimStride: 2,
	AnimDrift:  1,
}

// Frames returns the number of frames in the set
func (a AnimSet) Frames() int {
	if n, ok := animFrames[a]; ok {
		return n
	}
	return 1
}

// String returns the string representation of the set
func (a AnimSet) String() string {
	switch a {
	case AnimStatic:
		return "static"
	case AnimIdle:
		return "idle"
	case AnimWalk:
		return "walk"
	case AnimJump:
		return "jump"
	case AnimRoll:
		return "roll"
	case AnimStride:
		return "stride"
	case AnimDrift:
		return "drift"
	default:
		return "unknown"
	}
}

// DefaultAnimSpeed is the number of ticks each frame is shown
const DefaultAnimSpeed = 10

// Animation tracks which frame of which set an entity shows
type Animation struct {
	Set   AnimSet
	Frame int
	Ticks int
	Speed int // ticks per frame
}

// NewAnimation creates an animation on the first frame of set
func NewAnimation(set AnimSet, speed int) Animation {
	if speed <= 0 {
		speed = DefaultAnimSpeed
	}
	return Animation{Set: set, Speed: speed}
}

// Advance switches to set and counts one tick.
// The frame moves forward every Speed ticks and wraps at the end of the set.
func (a *Animation) Advance(set AnimSet) {
	if a.Speed <= 0 {
		a.Speed = DefaultAnimSpeed
	}
	a.Set = set
	if a.Frame >= set.Frames() {
		a.Frame = 0
	}

	a.Ticks++
	if a.Ticks%a.Speed == 0 {
		a.Frame++
		if a.Frame >= set.Frames() {
			a.Frame = 0
		}
	}
}
