package entity

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/dasher/ecs"
	"github.com/milk9111/dasher/ecs/component"
	"github.com/milk9111/dasher/prefabs"
)

// NewSoundEffects binds each audio spec to its event name. Clips the source
// cannot supply are left out and stay silent.
func NewSoundEffects(w *ecs.World, specs []prefabs.AudioSpec, src SoundSource) (ecs.Entity, error) {
	sfx := &component.SoundEffects{
		Players: make(map[string]*audio.Player, len(specs)),
		Volume:  make(map[string]float64, len(specs)),
	}
	if src != nil {
		for _, spec := range specs {
			p, err := src.Player(spec)
			if err != nil {
				return 0, fmt.Errorf("sound %s: %w", spec.Event, err)
			}
			if p == nil {
				continue
			}
			sfx.Players[spec.Event] = p
			sfx.Volume[spec.Event] = spec.Volume
		}
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.SoundEffectsComponent.Kind(), sfx); err != nil {
		return 0, fmt.Errorf("sound effects: %w", err)
	}
	return e, nil
}
