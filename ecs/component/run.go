package component

// Outcome is the state of a run.
type Outcome int

const (
	Playing Outcome = iota
	Lost
	Won
)

func (o Outcome) String() string {
	switch o {
	case Lost:
		return "lost"
	case Won:
		return "won"
	default:
		return "playing"
	}
}

// Terminal reports whether the run has ended.
func (o Outcome) Terminal() bool {
	return o != Playing
}

// Run is the singleton run state. Collided is sticky.
type Run struct {
	Outcome   Outcome
	Collided  bool
	Elapsed   float64
	Distance  float64
	Passed    int
	Obstacles int
}

var RunComponent = NewComponent[Run]()
