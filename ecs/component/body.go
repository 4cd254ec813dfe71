package component

// GroundState is the vertical state of a Body.
type GroundState int

const (
	Airborne GroundState = iota
	Grounded
)

func (s GroundState) String() string {
	switch s {
	case Grounded:
		return "grounded"
	default:
		return "airborne"
	}
}

// Body is a kinematic body that falls under gravity and rests on a floor
// line. Velocity is vertical, in pixels per second, positive downwards.
type Body struct {
	Velocity    float64
	Gravity     float64
	JumpImpulse float64
	Floor       float64
	State       GroundState
}

var BodyComponent = NewComponent[Body]()
