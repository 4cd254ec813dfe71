package system

import (
	"github.com/milk9111/dasher/ecs"
	"github.com/milk9111/dasher/ecs/component"
)

// ParallaxSystem scrolls background layers. Layers keep moving after the run
// ends so the outcome screen is not frozen.
type ParallaxSystem struct{}

func NewParallaxSystem() *ParallaxSystem {
	return &ParallaxSystem{}
}

// ScrollLayer moves one layer and wraps it after one full tile.
func ScrollLayer(layer *component.ParallaxLayer, dt float64) {
	layer.Offset -= layer.Velocity * dt
	if layer.TileWidth > 0 && layer.Offset <= -layer.TileWidth {
		layer.Offset = 0
	}
}

func (p *ParallaxSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := frameDelta(w)
	ecs.ForEach(w, component.ParallaxLayerComponent.Kind(), func(_ ecs.Entity, layer *component.ParallaxLayer) {
		ScrollLayer(layer, dt)
	})
}
