package system

import (
	"testing"

	"github.com/milk9111/dasher/common"
	"github.com/milk9111/dasher/ecs"
	"github.com/milk9111/dasher/ecs/component"
	"github.com/stretchr/testify/assert"
)

func TestHazardBoundsDegenerateInset(t *testing.T) {
	tr := &component.Transform{X: 100, Y: 450}
	anim := &component.SpriteAnimation{FrameRect: common.Rect{Width: 100, Height: 100}}

	got := HazardBounds(tr, anim, &component.Hazard{Inset: 50})

	assert.Equal(t, common.Rect{X: 150, Y: 500, Width: 0, Height: 0}, got)
	assert.False(t, got.Intersects(common.Rect{X: 0, Y: 0, Width: 1000, Height: 1000}))
}

func TestHazardSystemLatchesCollision(t *testing.T) {
	w, runEntity := newTestWorld(t, testDT)
	addPlayer(t, w, 300, testFloor-128)
	obstacle := addObstacle(t, w, 350, testFloor-100, 20)
	run := mustGet(t, w, runEntity, component.RunComponent.Kind())
	sys := NewHazardSystem()

	sys.Update(w)
	assert.True(t, run.Collided)
	events := w.Events().Drain()
	if assert.Len(t, events, 1) {
		assert.Equal(t, ecs.EventCollision, events[0].Type)
	}

	// Move the obstacle away; the flag stays set and no new event fires.
	mustGet(t, w, obstacle, component.TransformComponent.Kind()).X = 5000
	sys.Update(w)
	assert.True(t, run.Collided)
	assert.Zero(t, w.Events().Len())
}

func TestHazardSystemMisses(t *testing.T) {
	cases := []struct {
		name  string
		x     float64
		inset float64
	}{
		{"far_right", 900, 20},
		{"inset_clears_corner", 300 + 128 - 25, 30},
		{"degenerate_hitbox_inside_player", 320, 50},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, runEntity := newTestWorld(t, testDT)
			addPlayer(t, w, 300, testFloor-128)
			addObstacle(t, w, c.x, testFloor-100, c.inset)

			NewHazardSystem().Update(w)

			assert.False(t, mustGet(t, w, runEntity, component.RunComponent.Kind()).Collided)
		})
	}
}
