package system

import (
	"testing"

	"github.com/milk9111/dasher/ecs/component"
	"github.com/stretchr/testify/assert"
)

func TestScrollMovesObstaclesAndFinishLine(t *testing.T) {
	w, runEntity := newTestWorld(t, 0.1)
	a := addObstacle(t, w, 1250, testFloor-100, 50)
	b := addObstacle(t, w, 1750, testFloor-100, 50)

	NewScrollSystem().Update(w)

	assert.InDelta(t, 1220, mustGet(t, w, a, component.TransformComponent.Kind()).X, 1e-9)
	assert.InDelta(t, 1720, mustGet(t, w, b, component.TransformComponent.Kind()).X, 1e-9)
	assert.InDelta(t, 970, mustGet(t, w, runEntity, component.FinishLineComponent.Kind()).X, 1e-9)
	assert.InDelta(t, 30, mustGet(t, w, runEntity, component.RunComponent.Kind()).Distance, 1e-9)
}
