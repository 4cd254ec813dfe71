package component

// Hazard marks an entity as deadly on overlap. The hitbox is the sprite cell
// shrunk by Inset on every side.
type Hazard struct {
	Inset float64
}

var HazardComponent = NewComponent[Hazard]()
