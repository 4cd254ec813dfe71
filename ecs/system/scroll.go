package system

import (
	"github.com/milk9111/dasher/ecs"
	"github.com/milk9111/dasher/ecs/component"
)

// ScrollSystem moves obstacles and the finish line towards the player.
type ScrollSystem struct{}

func NewScrollSystem() *ScrollSystem {
	return &ScrollSystem{}
}

func (s *ScrollSystem) Update(w *ecs.World) {
	if w == nil || !simulating(w) {
		return
	}
	dt := frameDelta(w)

	ecs.ForEach2(w, component.ScrollComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, sc *component.Scroll, t *component.Transform) {
		t.X += sc.VelocityX * dt
	})

	ecs.ForEach(w, component.FinishLineComponent.Kind(), func(e ecs.Entity, fl *component.FinishLine) {
		step := fl.VelocityX * dt
		fl.X += step
		if run, ok := ecs.Get(w, e, component.RunComponent.Kind()); ok {
			run.Distance -= step
		}
	})
}
