package system

import (
	"github.com/milk9111/dasher/ecs"
	"github.com/milk9111/dasher/ecs/component"
)

// OutcomeSystem turns the collision flag and finish line into the run
// outcome. Loss wins over reaching the finish line in the same tick.
type OutcomeSystem struct{}

func NewOutcomeSystem() *OutcomeSystem {
	return &OutcomeSystem{}
}

// Evaluate derives the outcome for one tick.
func Evaluate(collided bool, finishX float64) component.Outcome {
	if collided {
		return component.Lost
	}
	if finishX <= 0 {
		return component.Won
	}
	return component.Playing
}

func (o *OutcomeSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	e, ok := ecs.First(w, component.RunComponent.Kind())
	if !ok {
		return
	}
	run, _ := ecs.Get(w, e, component.RunComponent.Kind())
	if run.Outcome.Terminal() {
		return
	}
	fl, ok := ecs.Get(w, e, component.FinishLineComponent.Kind())
	if !ok {
		return
	}

	run.Elapsed += frameDelta(w)
	run.Passed = passedObstacles(w)

	run.Outcome = Evaluate(run.Collided, fl.X)
	switch run.Outcome {
	case component.Lost:
		w.Events().Push(ecs.Event{Type: ecs.EventLose, Entity: e})
	case component.Won:
		w.Events().Push(ecs.Event{Type: ecs.EventWin, Entity: e})
	}
}

// passedObstacles counts obstacles whose right edge is behind the player.
func passedObstacles(w *ecs.World) int {
	_, player, ok := playerBounds(w)
	if !ok {
		return 0
	}
	n := 0
	ecs.ForEach3(w, component.ObstacleTagComponent.Kind(), component.TransformComponent.Kind(), component.SpriteAnimationComponent.Kind(), func(_ ecs.Entity, _ *component.ObstacleTag, t *component.Transform, anim *component.SpriteAnimation) {
		if EntityBounds(t, anim).Right() < player.X {
			n++
		}
	})
	return n
}
