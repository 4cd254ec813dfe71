package entity

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/dasher/assets"
	"github.com/milk9111/dasher/ecs"
	"github.com/milk9111/dasher/prefabs"
)

// Sheet is the subset of a loaded texture the builders need.
type Sheet = assets.Sheet

type SheetSource interface {
	Sheet(spec prefabs.SpriteSpec) (*assets.Sheet, error)
}

type SoundSource interface {
	Player(spec prefabs.AudioSpec) (*audio.Player, error)
}

// BuildWorld creates a fresh run: parallax layers, nebulae, the player, the
// run entity and the sound effect table.
func BuildWorld(specs prefabs.Specs, textures SheetSource, sounds SoundSource, logger *log.Logger) (*ecs.World, error) {
	if logger == nil {
		logger = log.Default()
	}
	w := ecs.NewWorld()
	window := specs.World.Window

	for _, layer := range specs.World.Parallax {
		sheet, err := textures.Sheet(layer.Sprite)
		if err != nil {
			return nil, fmt.Errorf("build world: parallax %s: %w", layer.Name, err)
		}
		if _, err := NewParallaxLayer(w, layer, *sheet); err != nil {
			return nil, fmt.Errorf("build world: %w", err)
		}
	}

	positions, err := NebulaPositions(specs.Nebula, float64(window.Width))
	if err != nil {
		logger.Warn("layout script failed, using default spacing", "err", err)
		positions = DefaultPositions(specs.Nebula.Count, float64(window.Width), specs.Nebula.Spacing)
	}

	nebulaSheet, err := textures.Sheet(specs.Nebula.Sprite)
	if err != nil {
		return nil, fmt.Errorf("build world: nebula sheet: %w", err)
	}
	if _, err := NewNebulae(w, specs.Nebula, *nebulaSheet, positions, float64(window.Height)); err != nil {
		return nil, fmt.Errorf("build world: %w", err)
	}

	playerSheet, err := textures.Sheet(specs.Player.Sprite)
	if err != nil {
		return nil, fmt.Errorf("build world: player sheet: %w", err)
	}
	if _, err := NewPlayer(w, specs.Player, *playerSheet, window, specs.World.Gravity); err != nil {
		return nil, fmt.Errorf("build world: %w", err)
	}

	if _, err := NewRun(w, positions, specs.Nebula.Velocity); err != nil {
		return nil, fmt.Errorf("build world: %w", err)
	}
	if _, err := NewSoundEffects(w, specs.World.Audio, sounds); err != nil {
		return nil, fmt.Errorf("build world: %w", err)
	}

	logger.Debug("world built", "obstacles", len(positions), "finish", lastOr(positions, 0))
	return w, nil
}

func lastOr(xs []float64, def float64) float64 {
	if len(xs) == 0 {
		return def
	}
	return xs[len(xs)-1]
}
