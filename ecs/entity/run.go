package entity

import (
	"fmt"

	"github.com/milk9111/dasher/ecs"
	"github.com/milk9111/dasher/ecs/component"
)

// NewRun creates the singleton run entity: outcome state, the finish line at
// the last obstacle and the frame clock.
func NewRun(w *ecs.World, positions []float64, velocity float64) (ecs.Entity, error) {
	finish := lastOr(positions, 0)

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.RunComponent.Kind(), &component.Run{Obstacles: len(positions)}); err != nil {
		return 0, fmt.Errorf("run: %w", err)
	}
	if err := ecs.Add(w, e, component.FinishLineComponent.Kind(), &component.FinishLine{X: finish, VelocityX: velocity}); err != nil {
		return 0, fmt.Errorf("run: add finish line: %w", err)
	}
	if err := ecs.Add(w, e, component.FrameClockComponent.Kind(), &component.FrameClock{}); err != nil {
		return 0, fmt.Errorf("run: add clock: %w", err)
	}
	return e, nil
}
