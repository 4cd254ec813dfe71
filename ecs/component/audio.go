package component

import "github.com/hajimehoshi/ebiten/v2/audio"

// SoundEffects maps gameplay event names to loaded players. Missing entries
// are silent.
type SoundEffects struct {
	Players map[string]*audio.Player
	Volume  map[string]float64
}

var SoundEffectsComponent = NewComponent[SoundEffects]()
