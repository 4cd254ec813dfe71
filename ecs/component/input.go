package component

// Input is the jump button as sampled this tick. JumpHeld follows the
// button; JumpPressed is set only on the tick it went down.
type Input struct {
	JumpHeld    bool
	JumpPressed bool
}

var InputComponent = NewComponent[Input]()
