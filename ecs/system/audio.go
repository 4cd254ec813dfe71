package system

import (
	"github.com/charmbracelet/log"
	"github.com/milk9111/dasher/ecs"
	"github.com/milk9111/dasher/ecs/component"
)

// AudioSystem plays the sound effect bound to each event raised this tick.
type AudioSystem struct {
	logger *log.Logger
}

func NewAudioSystem(logger *log.Logger) *AudioSystem {
	if logger == nil {
		logger = log.Default()
	}
	return &AudioSystem{logger: logger}
}

func (a *AudioSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	events := w.Events().Drain()
	if len(events) == 0 {
		return
	}

	e, ok := ecs.First(w, component.SoundEffectsComponent.Kind())
	if !ok {
		return
	}
	sfx, ok := ecs.Get(w, e, component.SoundEffectsComponent.Kind())
	if !ok {
		return
	}

	for _, evt := range events {
		a.logger.Debug("event", "type", evt.Type, "entity", evt.Entity)
		player := sfx.Players[string(evt.Type)]
		if player == nil {
			continue
		}
		if v, ok := sfx.Volume[string(evt.Type)]; ok {
			player.SetVolume(v)
		}
		if err := player.Rewind(); err != nil {
			a.logger.Warn("rewind sound", "event", evt.Type, "err", err)
			continue
		}
		player.Play()
	}
}
