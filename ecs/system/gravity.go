package system

import (
	"github.com/milk9111/dasher/ecs"
	"github.com/milk9111/dasher/ecs/component"
)

// GravitySystem runs the grounded/airborne state machine for every Body.
type GravitySystem struct{}

func NewGravitySystem() *GravitySystem {
	return &GravitySystem{}
}

// OnGround reports whether the entity's bottom edge has reached the floor.
func OnGround(t *component.Transform, anim *component.SpriteAnimation, floor float64) bool {
	return t.Y+anim.FrameRect.Height >= floor
}

func (g *GravitySystem) Update(w *ecs.World) {
	if w == nil || !simulating(w) {
		return
	}
	dt := frameDelta(w)

	ecs.ForEach3(w, component.BodyComponent.Kind(), component.TransformComponent.Kind(), component.SpriteAnimationComponent.Kind(), func(e ecs.Entity, body *component.Body, t *component.Transform, anim *component.SpriteAnimation) {
		grounded := OnGround(t, anim, body.Floor)
		if grounded {
			body.State = component.Grounded
			body.Velocity = 0
			// Landing overshoots by up to one tick of fall; rest on the floor.
			t.Y = body.Floor - anim.FrameRect.Height
		} else {
			body.State = component.Airborne
			body.Velocity += body.Gravity * dt
		}

		if in, ok := ecs.Get(w, e, component.InputComponent.Kind()); ok && in.JumpPressed && grounded {
			body.Velocity -= body.JumpImpulse
			w.Events().Push(ecs.Event{Type: ecs.EventJump, Entity: e})
		}

		t.Y += body.Velocity * dt
	})
}
