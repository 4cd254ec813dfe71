package component

// FinishLine tracks the last obstacle's x. It scrolls with the obstacles and
// the run is won once it reaches zero.
type FinishLine struct {
	X         float64
	VelocityX float64
}

var FinishLineComponent = NewComponent[FinishLine]()
