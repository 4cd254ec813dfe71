package system

import (
	"testing"

	"github.com/milk9111/dasher/common"
	"github.com/milk9111/dasher/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvanceFrameWrapsAndKeepsRectInSync(t *testing.T) {
	anim := &component.SpriteAnimation{
		FrameRect:   common.Rect{Width: 100, Height: 100},
		TotalFrames: 7,
		Interval:    1.0 / 16.0,
	}

	seen := make([]int, 0, 20)
	for i := 0; i < 20; i++ {
		AdvanceFrame(anim, 1.0/16.0)
		require.GreaterOrEqual(t, anim.Frame, 0)
		require.LessOrEqual(t, anim.Frame, anim.TotalFrames)
		require.Equal(t, float64(anim.Frame)*anim.FrameRect.Width, anim.FrameRect.X)
		seen = append(seen, anim.Frame)
	}

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 0, 1, 2}, seen[:10])
}

func TestAdvanceFrameIsTimeBased(t *testing.T) {
	cases := []struct {
		name   string
		dt     float64
		ticks  int
		frames int
	}{
		// one advance per interval regardless of how the time is sliced
		{"fine_ticks", 1.0 / 120.0, 12, 1},
		{"coarse_ticks", 1.0 / 12.0, 2, 2},
		{"below_interval", 1.0 / 30.0, 2, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			anim := &component.SpriteAnimation{
				FrameRect:   common.Rect{Width: 128, Height: 128},
				TotalFrames: 5,
				Interval:    1.0 / 12.0,
			}
			for i := 0; i < c.ticks; i++ {
				AdvanceFrame(anim, c.dt)
			}
			assert.Equal(t, c.frames, anim.Frame)
		})
	}
}

func TestAnimationSystemHoldsAirbornePlayer(t *testing.T) {
	w, _ := newTestWorld(t, 1.0/12.0)
	player := addPlayer(t, w, 0, 100)
	obstacle := addObstacle(t, w, 600, testFloor-100, 30)

	NewAnimationSystem().Update(w)

	assert.Equal(t, 0, mustGet(t, w, player, component.SpriteAnimationComponent.Kind()).Frame)
	assert.Equal(t, 1, mustGet(t, w, obstacle, component.SpriteAnimationComponent.Kind()).Frame)

	mustGet(t, w, player, component.TransformComponent.Kind()).Y = testFloor - 128
	NewAnimationSystem().Update(w)
	assert.Equal(t, 1, mustGet(t, w, player, component.SpriteAnimationComponent.Kind()).Frame)
}
