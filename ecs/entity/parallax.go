package entity

import (
	"fmt"

	"github.com/milk9111/dasher/ecs"
	"github.com/milk9111/dasher/ecs/component"
	"github.com/milk9111/dasher/prefabs"
)

func NewParallaxLayer(w *ecs.World, spec prefabs.ParallaxSpec, sheet Sheet) (ecs.Entity, error) {
	scale := spec.Scale
	if scale == 0 {
		scale = 1
	}
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.ParallaxLayerComponent.Kind(), &component.ParallaxLayer{
		Name:      spec.Name,
		Image:     sheet.Image,
		Velocity:  spec.Velocity,
		Scale:     scale,
		TileWidth: sheet.CellWidth * scale,
	}); err != nil {
		return 0, fmt.Errorf("parallax %s: %w", spec.Name, err)
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.RenderLayer.Index}); err != nil {
		return 0, fmt.Errorf("parallax %s: add render layer: %w", spec.Name, err)
	}
	return e, nil
}
