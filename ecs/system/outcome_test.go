package system

import (
	"testing"

	"github.com/milk9111/dasher/ecs"
	"github.com/milk9111/dasher/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	cases := []struct {
		name     string
		collided bool
		finishX  float64
		want     component.Outcome
	}{
		{"playing", false, 10, component.Playing},
		{"won_at_zero", false, 0, component.Won},
		{"won_past", false, -3, component.Won},
		{"lost", true, 10, component.Lost},
		{"loss_beats_win", true, -3, component.Lost},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Evaluate(c.collided, c.finishX))
		})
	}
}

func newRunScheduler() *ecs.Scheduler {
	return ecs.NewScheduler(
		NewParallaxSystem(),
		NewGravitySystem(),
		NewScrollSystem(),
		NewHazardSystem(),
		NewOutcomeSystem(),
		NewAnimationSystem(),
	)
}

func TestRunIsWonWhenFinishLineCrossesZero(t *testing.T) {
	w, runEntity := newTestWorld(t, 0.1)
	addPlayer(t, w, 300, testFloor-128)
	fl := mustGet(t, w, runEntity, component.FinishLineComponent.Kind())
	fl.X = 50
	run := mustGet(t, w, runEntity, component.RunComponent.Kind())

	// Watch outcome events before the scheduler flushes them.
	var outcomes []ecs.EventType
	watch := watcher(func(w *ecs.World) {
		for _, evt := range w.Events().Drain() {
			outcomes = append(outcomes, evt.Type)
		}
	})
	s := newRunScheduler()
	s.Add(watch)

	s.Update(w)
	assert.Equal(t, component.Playing, run.Outcome)
	assert.InDelta(t, 20, fl.X, 1e-9)

	s.Update(w)
	require.Equal(t, component.Won, run.Outcome)
	assert.Equal(t, []ecs.EventType{ecs.EventWin}, outcomes)

	frozen := fl.X
	for i := 0; i < 5; i++ {
		s.Update(w)
	}
	assert.Equal(t, component.Won, run.Outcome)
	assert.Equal(t, frozen, fl.X, "no simulation after a terminal outcome")
	assert.Len(t, outcomes, 1)
}

func TestCollisionIsStickyAndBeatsFinish(t *testing.T) {
	w, runEntity := newTestWorld(t, 0.1)
	addPlayer(t, w, 300, testFloor-128)
	addObstacle(t, w, 320, testFloor-100, 10)
	fl := mustGet(t, w, runEntity, component.FinishLineComponent.Kind())
	fl.X = 10
	run := mustGet(t, w, runEntity, component.RunComponent.Kind())

	newRunScheduler().Update(w)

	assert.True(t, run.Collided)
	assert.Equal(t, component.Lost, run.Outcome)
	assert.LessOrEqual(t, fl.X, 0.0)

	newRunScheduler().Update(w)
	assert.Equal(t, component.Lost, run.Outcome)
	assert.True(t, run.Collided)
}

func TestOutcomeTracksProgress(t *testing.T) {
	w, runEntity := newTestWorld(t, 0.5)
	addPlayer(t, w, 300, testFloor-128)
	addObstacle(t, w, 100, testFloor-100, 30)
	addObstacle(t, w, 2000, testFloor-100, 30)
	run := mustGet(t, w, runEntity, component.RunComponent.Kind())

	newRunScheduler().Update(w)

	assert.Equal(t, component.Playing, run.Outcome)
	assert.InDelta(t, 0.5, run.Elapsed, 1e-9)
	assert.InDelta(t, 150, run.Distance, 1e-9)
	assert.Equal(t, 1, run.Passed)
}

type watcher func(w *ecs.World)

func (f watcher) Update(w *ecs.World) { f(w) }
