package component

// Scroll moves an entity horizontally at a constant velocity (px/s).
type Scroll struct {
	VelocityX float64
}

var ScrollComponent = NewComponent[Scroll]()
