package component

import "github.com/hajimehoshi/ebiten/v2"

// ParallaxLayer is a background strip drawn twice side by side. Offset runs
// from 0 down to -TileWidth and then wraps back to 0.
type ParallaxLayer struct {
	Name      string
	Image     *ebiten.Image
	Offset    float64
	Velocity  float64
	Scale     float64
	TileWidth float64
}

var ParallaxLayerComponent = NewComponent[ParallaxLayer]()
