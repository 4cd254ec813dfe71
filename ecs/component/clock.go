package component

// FrameClock carries the simulated duration of the current tick. Delta is a
// fixed 1/TPS rather than wall time, so when ebiten caps catch-up ticks the
// simulation slows down instead of jumping ahead.
type FrameClock struct {
	Delta float64
	Ticks int
}

var FrameClockComponent = NewComponent[FrameClock]()
