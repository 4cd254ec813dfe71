// sheetview previews the player or nebula animation strip exactly as the game
// advances it, using the prefab timing and the same texture lookup.
package main

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/dasher/assets"
	"github.com/milk9111/dasher/common"
	"github.com/milk9111/dasher/ecs/component"
	"github.com/milk9111/dasher/ecs/system"
	"github.com/milk9111/dasher/prefabs"
	"github.com/spf13/cobra"
)

const viewSize = 512

var (
	flagPrefab   string
	flagTextures string
	flagScale    float64
)

type viewer struct {
	name   string
	sheet  *assets.Sheet
	anim   component.SpriteAnimation
	scale  float64
	paused bool
}

func (v *viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		v.paused = !v.paused
	}
	if v.paused {
		if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
			// Force one step.
			system.AdvanceFrame(&v.anim, v.anim.Interval)
		}
		return nil
	}
	system.AdvanceFrame(&v.anim, 1/float64(ebiten.TPS()))
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x00, 0x00, 0x00, 0xff})

	fr := v.anim.FrameRect
	sub := v.sheet.Image.SubImage(image.Rect(int(fr.X), int(fr.Y), int(fr.X+fr.Width), int(fr.Y+fr.Height))).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(v.scale, v.scale)
	op.GeoM.Translate((viewSize-fr.Width*v.scale)/2, (viewSize-fr.Height*v.scale)/2)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(sub, op)

	state := "playing"
	if v.paused {
		state = "paused (Right steps)"
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s  frame %d/%d  every %.3fs  %s",
		v.name, v.anim.Frame, v.anim.TotalFrames, v.anim.Interval, state))
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return viewSize, viewSize
}

func pick(specs prefabs.Specs, name string) (prefabs.SpriteSpec, prefabs.AnimationSpec, error) {
	switch name {
	case "player":
		return specs.Player.Sprite, specs.Player.Animation, nil
	case "nebula":
		return specs.Nebula.Sprite, specs.Nebula.Animation, nil
	default:
		return prefabs.SpriteSpec{}, prefabs.AnimationSpec{}, fmt.Errorf("unknown prefab %q (want player or nebula)", name)
	}
}

func run(_ *cobra.Command, _ []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "sheetview"})

	specs, err := prefabs.LoadAll()
	if err != nil {
		return err
	}
	sprite, anim, err := pick(specs, flagPrefab)
	if err != nil {
		return err
	}

	textures := assets.NewTextures(flagTextures, logger)
	defer textures.Close()
	sheet, err := textures.Sheet(sprite)
	if err != nil {
		return err
	}

	v := &viewer{
		name:  flagPrefab,
		sheet: sheet,
		scale: flagScale,
		anim: component.SpriteAnimation{
			FrameRect:   common.Rect{Width: sheet.CellWidth, Height: sheet.CellHeight},
			TotalFrames: anim.TotalFrames,
			Interval:    anim.FrameInterval,
		},
	}

	ebiten.SetWindowSize(viewSize, viewSize)
	ebiten.SetWindowTitle("Sheet preview - " + flagPrefab)
	return ebiten.RunGame(v)
}

func main() {
	cmd := &cobra.Command{
		Use:          "sheetview",
		Short:        "Preview a prefab animation strip",
		SilenceUsage: true,
		RunE:         run,
	}
	cmd.Flags().StringVar(&flagPrefab, "prefab", "player", "Prefab to preview: player or nebula")
	cmd.Flags().StringVar(&flagTextures, "textures", "textures", "Directory with sprite sheets")
	cmd.Flags().Float64Var(&flagScale, "scale", 2, "Draw scale")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
