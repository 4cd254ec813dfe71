package entity

import (
	"fmt"

	"github.com/milk9111/dasher/ecs"
	"github.com/milk9111/dasher/ecs/component"
	"github.com/milk9111/dasher/prefabs"
)

// NewNebulae creates one obstacle per x position, all resting on the floor.
// The returned slice keeps the order of positions.
func NewNebulae(w *ecs.World, spec prefabs.NebulaSpec, sheet Sheet, positions []float64, floor float64) ([]ecs.Entity, error) {
	out := make([]ecs.Entity, 0, len(positions))
	for i, x := range positions {
		e := ecs.CreateEntity(w)
		if err := addAnimatedSprite(w, e, sheet, spec.Animation, x, floor-sheet.CellHeight); err != nil {
			return nil, fmt.Errorf("nebula %d: %w", i, err)
		}
		if err := ecs.Add(w, e, component.ObstacleTagComponent.Kind(), &component.ObstacleTag{}); err != nil {
			return nil, fmt.Errorf("nebula %d: add tag: %w", i, err)
		}
		if err := ecs.Add(w, e, component.HazardComponent.Kind(), &component.Hazard{Inset: spec.HitboxInset}); err != nil {
			return nil, fmt.Errorf("nebula %d: add hazard: %w", i, err)
		}
		if err := ecs.Add(w, e, component.ScrollComponent.Kind(), &component.Scroll{VelocityX: spec.Velocity}); err != nil {
			return nil, fmt.Errorf("nebula %d: add scroll: %w", i, err)
		}
		if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.RenderLayer.Index}); err != nil {
			return nil, fmt.Errorf("nebula %d: add render layer: %w", i, err)
		}
		out = append(out, e)
	}
	return out, nil
}
