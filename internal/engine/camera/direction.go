package camera

// Direction is a movement intent produced by the input layer.
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
	Jump
)

// Directions lists every movement intent in dispatch order.
var Directions = []Direction{Forward, Backward, Left, Right, Jump}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case Left:
		return "left"
	case Right:
		return "right"
	case Jump:
		return "jump"
	default:
		return "unknown"
	}
}

// PhysicsState is the vertical physics state of a fly camera.
type PhysicsState int

const (
	Grounded PhysicsState = iota
	Airborne
)

// String returns the state name.
func (s PhysicsState) String() string {
	if s == Airborne {
		return "airborne"
	}
	return "grounded"
}
