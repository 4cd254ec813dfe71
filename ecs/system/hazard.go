package system

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/dasher/common"
	"github.com/milk9111/dasher/ecs"
	"github.com/milk9111/dasher/ecs/component"
)

// HazardSystem tests every hazard hitbox against the player and latches the
// run's collision flag.
type HazardSystem struct{}

func NewHazardSystem() *HazardSystem { return &HazardSystem{} }

// EntityBounds is the full sprite cell of an entity in world space.
func EntityBounds(t *component.Transform, anim *component.SpriteAnimation) common.Rect {
	return common.Rect{X: t.X, Y: t.Y, Width: anim.FrameRect.Width, Height: anim.FrameRect.Height}
}

// HazardBounds is the sprite cell shrunk by the hazard inset, so a hit
// needs to touch the visible sprite rather than the sheet cell.
func HazardBounds(t *component.Transform, anim *component.SpriteAnimation, h *component.Hazard) common.Rect {
	return EntityBounds(t, anim).Inset(h.Inset)
}

func playerBounds(w *ecs.World) (ecs.Entity, common.Rect, bool) {
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return 0, common.Rect{}, false
	}
	t, tok := ecs.Get(w, player, component.TransformComponent.Kind())
	anim, aok := ecs.Get(w, player, component.SpriteAnimationComponent.Kind())
	if !tok || !aok {
		return 0, common.Rect{}, false
	}
	return player, EntityBounds(t, anim), true
}

func (s *HazardSystem) Update(w *ecs.World) {
	if w == nil || !simulating(w) {
		return
	}
	run, ok := currentRun(w)
	if !ok {
		return
	}
	player, box, ok := playerBounds(w)
	if !ok {
		return
	}

	hit := false
	ecs.ForEach3(w, component.HazardComponent.Kind(), component.TransformComponent.Kind(), component.SpriteAnimationComponent.Kind(), func(e ecs.Entity, h *component.Hazard, t *component.Transform, anim *component.SpriteAnimation) {
		if e == player || hit {
			return
		}
		if HazardBounds(t, anim, h).Intersects(box) {
			hit = true
		}
	})

	if hit && !run.Collided {
		run.Collided = true
		w.Events().Push(ecs.Event{Type: ecs.EventCollision, Entity: player})
	}
}

// DrawHazardDebug outlines hazard hitboxes in red and the player in green.
func DrawHazardDebug(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	ecs.ForEach3(w, component.HazardComponent.Kind(), component.TransformComponent.Kind(), component.SpriteAnimationComponent.Kind(), func(_ ecs.Entity, h *component.Hazard, t *component.Transform, anim *component.SpriteAnimation) {
		b := HazardBounds(t, anim, h)
		if b.Empty() {
			vector.FillRect(screen, float32(b.X)-2, float32(b.Y)-2, 4, 4, color.RGBA{R: 255, A: 200}, false)
			return
		}
		vector.FillRect(screen, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), color.RGBA{R: 255, A: 48}, false)
		vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), 1.0, color.RGBA{R: 255, A: 200}, false)
	})
	if _, b, ok := playerBounds(w); ok {
		vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), 1.0, color.RGBA{G: 255, A: 200}, false)
	}
}
