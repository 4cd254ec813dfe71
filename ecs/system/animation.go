package system

import (
	"github.com/milk9111/dasher/ecs"
	"github.com/milk9111/dasher/ecs/component"
)

type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

// AdvanceFrame accumulates dt and steps one cell once Interval has elapsed.
// Advancing is driven by simulated time, not by how often frames are drawn.
func AdvanceFrame(anim *component.SpriteAnimation, dt float64) {
	if anim == nil {
		return
	}
	anim.Elapsed += dt
	if anim.Elapsed < anim.Interval {
		return
	}
	anim.Elapsed = 0
	anim.Frame++
	if anim.Frame > anim.TotalFrames {
		anim.Frame = 0
	}
	anim.FrameRect.X = float64(anim.Frame) * anim.FrameRect.Width
}

func (a *AnimationSystem) Update(w *ecs.World) {
	if w == nil || !simulating(w) {
		return
	}
	dt := frameDelta(w)

	ecs.ForEach(w, component.SpriteAnimationComponent.Kind(), func(e ecs.Entity, anim *component.SpriteAnimation) {
		if anim.GroundedOnly && !grounded(w, e, anim) {
			return
		}
		AdvanceFrame(anim, dt)
	})
}

func grounded(w *ecs.World, e ecs.Entity, anim *component.SpriteAnimation) bool {
	body, ok := ecs.Get(w, e, component.BodyComponent.Kind())
	if !ok {
		return true
	}
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return true
	}
	return OnGround(t, anim, body.Floor)
}
