package system

import (
	"github.com/milk9111/dasher/ecs"
	"github.com/milk9111/dasher/ecs/component"
)

// frameDelta returns the duration of the current tick in seconds.
func frameDelta(w *ecs.World) float64 {
	e, ok := ecs.First(w, component.FrameClockComponent.Kind())
	if !ok {
		return 0
	}
	clock, ok := ecs.Get(w, e, component.FrameClockComponent.Kind())
	if !ok || clock.Delta < 0 {
		return 0
	}
	return clock.Delta
}

// currentRun returns the singleton run state, if the world has one.
func currentRun(w *ecs.World) (*component.Run, bool) {
	e, ok := ecs.First(w, component.RunComponent.Kind())
	if !ok {
		return nil, false
	}
	return ecs.Get(w, e, component.RunComponent.Kind())
}

// simulating reports whether the run is still live. A world without a run
// entity always simulates.
func simulating(w *ecs.World) bool {
	run, ok := currentRun(w)
	return !ok || !run.Outcome.Terminal()
}
