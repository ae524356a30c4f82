package vector

// Orientation pairs a position with a normalized facing direction. Position
// may carry a height component (Z); Direction is normalized at construction
// and stays a pure heading — callers that need a scaled heading (e.g. a
// camera's direction-times-focal-length) scale a copy explicitly.
type Orientation struct {
	Position  Vector3
	Direction Vector3
}

func NewOrientation(position, direction Vector3) Orientation {
	return Orientation{
		Position:  position,
		Direction: direction.Normalize(),
	}
}
