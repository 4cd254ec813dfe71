package entity

import (
	"fmt"

	"github.com/milk9111/dasher/common"
	"github.com/milk9111/dasher/ecs"
	"github.com/milk9111/dasher/ecs/component"
	"github.com/milk9111/dasher/prefabs"
)

// NewPlayer creates the runner, standing on the floor and centred
// horizontally.
func NewPlayer(w *ecs.World, spec prefabs.PlayerSpec, sheet Sheet, window prefabs.WindowSpec, gravity float64) (ecs.Entity, error) {
	floor := float64(window.Height)
	e := ecs.CreateEntity(w)

	if err := addAnimatedSprite(w, e, sheet, spec.Animation, float64(window.Width)/2-sheet.CellWidth/2, floor-sheet.CellHeight); err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}
	if err := ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add tag: %w", err)
	}
	if err := ecs.Add(w, e, component.BodyComponent.Kind(), &component.Body{
		Gravity:     gravity,
		JumpImpulse: spec.JumpImpulse,
		Floor:       floor,
		State:       component.Grounded,
	}); err != nil {
		return 0, fmt.Errorf("player: add body: %w", err)
	}
	if err := ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.RenderLayer.Index}); err != nil {
		return 0, fmt.Errorf("player: add render layer: %w", err)
	}
	return e, nil
}

func addAnimatedSprite(w *ecs.World, e ecs.Entity, sheet Sheet, anim prefabs.AnimationSpec, x, y float64) error {
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}); err != nil {
		return fmt.Errorf("add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Image: sheet.Image}); err != nil {
		return fmt.Errorf("add sprite: %w", err)
	}
	if err := ecs.Add(w, e, component.SpriteAnimationComponent.Kind(), &component.SpriteAnimation{
		FrameRect:    common.Rect{Width: sheet.CellWidth, Height: sheet.CellHeight},
		TotalFrames:  anim.TotalFrames,
		Interval:     anim.FrameInterval,
		GroundedOnly: anim.GroundedOnly,
	}); err != nil {
		return fmt.Errorf("add animation: %w", err)
	}
	return nil
}
