package system

import (
	"fmt"
	"image"
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/dasher/ecs"
	"github.com/milk9111/dasher/ecs/component"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

const (
	bannerScale = 6
	hudScale    = 2
)

type RenderSystem struct {
	face  text.Face
	debug bool
}

func NewRenderSystem(debug bool) *RenderSystem {
	return &RenderSystem{
		face:  text.NewGoXFace(basicfont.Face7x13),
		debug: debug,
	}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	screen.Fill(color.White)

	r.drawParallax(w, screen)

	run, hasRun := currentRun(w)
	if hasRun && run.Outcome.Terminal() {
		r.drawBanner(screen, run)
	} else {
		r.drawSprites(w, screen)
	}

	if hasRun {
		r.drawHUD(w, screen, run)
	}

	if r.debug {
		DrawHazardDebug(w, screen)
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f  TPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

func (r *RenderSystem) drawParallax(w *ecs.World, screen *ebiten.Image) {
	layers := make([]ecs.Entity, 0, 3)
	ecs.ForEach(w, component.ParallaxLayerComponent.Kind(), func(e ecs.Entity, _ *component.ParallaxLayer) {
		layers = append(layers, e)
	})
	sortByLayer(w, layers)

	for _, e := range layers {
		layer, _ := ecs.Get(w, e, component.ParallaxLayerComponent.Kind())
		if layer.Image == nil {
			continue
		}
		scale := layer.Scale
		if scale == 0 {
			scale = 1
		}
		for _, x := range []float64{layer.Offset, layer.Offset + layer.TileWidth} {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(scale, scale)
			op.GeoM.Translate(x, 0)
			screen.DrawImage(layer.Image, op)
		}
	}
}

func (r *RenderSystem) drawSprites(w *ecs.World, screen *ebiten.Image) {
	var entities []ecs.Entity
	ecs.ForEach2(w, component.TransformComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, _ *component.Transform, _ *component.Sprite) {
		entities = append(entities, e)
	})
	sortByLayer(w, entities)

	bounds := screen.Bounds()
	for _, e := range entities {
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		s, _ := ecs.Get(w, e, component.SpriteComponent.Kind())
		if s.Image == nil {
			continue
		}

		img := s.Image
		if anim, ok := ecs.Get(w, e, component.SpriteAnimationComponent.Kind()); ok {
			// Skip cells entirely off screen; most obstacles start far right.
			if t.X > float64(bounds.Dx()) || t.X+anim.FrameRect.Width < 0 {
				continue
			}
			fr := anim.FrameRect
			rect := image.Rect(int(fr.X), int(fr.Y), int(fr.X+fr.Width), int(fr.Y+fr.Height))
			if sub, ok := s.Image.SubImage(rect).(*ebiten.Image); ok {
				img = sub
			}
		}

		op := &ebiten.DrawImageOptions{}
		sx, sy := t.ScaleX, t.ScaleY
		if sx == 0 {
			sx = 1
		}
		if sy == 0 {
			sy = 1
		}
		op.GeoM.Scale(sx, sy)
		op.GeoM.Translate(t.X, t.Y)
		screen.DrawImage(img, op)
	}
}

func (r *RenderSystem) drawBanner(screen *ebiten.Image, run *component.Run) {
	title := "YOU WIN"
	if run.Outcome == component.Lost {
		title = "YOU LOSE"
	}
	bounds := screen.Bounds()
	r.drawCentered(screen, title, bannerScale, float64(bounds.Dy())/2-100, colornames.White)
	r.drawCentered(screen, "R restart   C copy result   Esc menu", hudScale, float64(bounds.Dy())/2+20, colornames.White)
}

func (r *RenderSystem) drawHUD(w *ecs.World, screen *ebiten.Image, run *component.Run) {
	remaining := 0.0
	if e, ok := ecs.First(w, component.FinishLineComponent.Kind()); ok {
		if fl, ok := ecs.Get(w, e, component.FinishLineComponent.Kind()); ok && fl.X > 0 {
			remaining = fl.X
		}
	}
	hud := fmt.Sprintf("%.1fs  %d/%d  %.0fpx to go", run.Elapsed, run.Passed, run.Obstacles, remaining)
	op := &text.DrawOptions{}
	op.GeoM.Scale(hudScale, hudScale)
	op.GeoM.Translate(10, float64(screen.Bounds().Dy())-40)
	op.ColorScale.ScaleWithColor(colornames.White)
	text.Draw(screen, hud, r.face, op)
}

func (r *RenderSystem) drawCentered(screen *ebiten.Image, s string, scale, y float64, clr color.Color) {
	width, _ := text.Measure(s, r.face, 0)
	x := (float64(screen.Bounds().Dx()) - width*scale) / 2
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, r.face, op)
}

func sortByLayer(w *ecs.World, entities []ecs.Entity) {
	sort.SliceStable(entities, func(i, j int) bool {
		li := 0
		if layer, ok := ecs.Get(w, entities[i], component.RenderLayerComponent.Kind()); ok {
			li = layer.Index
		}
		lj := 0
		if layer, ok := ecs.Get(w, entities[j], component.RenderLayerComponent.Kind()); ok {
			lj = layer.Index
		}
		if li != lj {
			return li < lj
		}
		return uint64(entities[i]) < uint64(entities[j])
	})
}
