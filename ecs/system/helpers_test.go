package system

import (
	"testing"

	"github.com/milk9111/dasher/common"
	"github.com/milk9111/dasher/ecs"
	"github.com/milk9111/dasher/ecs/component"
	"github.com/stretchr/testify/require"
)

const (
	testFloor = 550.0
	testDT    = 0.016
)

func newTestWorld(t *testing.T, dt float64) (*ecs.World, ecs.Entity) {
	t.Helper()
	w := ecs.NewWorld()
	run := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, run, component.FrameClockComponent.Kind(), &component.FrameClock{Delta: dt}))
	require.NoError(t, ecs.Add(w, run, component.RunComponent.Kind(), &component.Run{}))
	require.NoError(t, ecs.Add(w, run, component.FinishLineComponent.Kind(), &component.FinishLine{X: 1000, VelocityX: -300}))
	return w, run
}

func addPlayer(t *testing.T, w *ecs.World, x, y float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}))
	require.NoError(t, ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}))
	require.NoError(t, ecs.Add(w, e, component.SpriteAnimationComponent.Kind(), &component.SpriteAnimation{
		FrameRect:    common.Rect{Width: 128, Height: 128},
		TotalFrames:  5,
		Interval:     1.0 / 12.0,
		GroundedOnly: true,
	}))
	require.NoError(t, ecs.Add(w, e, component.BodyComponent.Kind(), &component.Body{Gravity: 1000, JumpImpulse: 600, Floor: testFloor}))
	require.NoError(t, ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}))
	return e
}

func addObstacle(t *testing.T, w *ecs.World, x, y, inset float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, e, component.ObstacleTagComponent.Kind(), &component.ObstacleTag{}))
	require.NoError(t, ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}))
	require.NoError(t, ecs.Add(w, e, component.SpriteAnimationComponent.Kind(), &component.SpriteAnimation{
		FrameRect:   common.Rect{Width: 100, Height: 100},
		TotalFrames: 7,
		Interval:    1.0 / 16.0,
	}))
	require.NoError(t, ecs.Add(w, e, component.HazardComponent.Kind(), &component.Hazard{Inset: inset}))
	require.NoError(t, ecs.Add(w, e, component.ScrollComponent.Kind(), &component.Scroll{VelocityX: -300}))
	return e
}

func mustGet[T any](t *testing.T, w *ecs.World, e ecs.Entity, kind component.ComponentKind[T]) *T {
	t.Helper()
	v, ok := ecs.Get(w, e, kind)
	require.True(t, ok)
	return v
}
