package system

// Intent represents an action the hero wants to perform this tick
type Intent interface {
	isIntent()
}

// MoveIntent sets the walking direction
type MoveIntent struct {
	Direction int // -1 for left, 1 for right, 0 to stop
}

func (MoveIntent) isIntent() {}

// JumpIntent asks for a jump; it only succeeds on solid ground
type JumpIntent struct{}

func (JumpIntent) isIntent() {}

// MovementIntent derives the walking direction from held keys.
// Left wins when both are held.
func MovementIntent(in InputState) MoveIntent {
	switch {
	case in.Left:
		return MoveIntent{Direction: -1}
	case in.Right:
		return MoveIntent{Direction: 1}
	default:
		return MoveIntent{}
	}
}
