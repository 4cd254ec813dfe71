package component

import "github.com/hajimehoshi/ebiten/v2"

// Sprite holds the sheet an entity draws from. The visible cell comes from
// SpriteAnimation.FrameRect when present, otherwise the whole image is drawn.
type Sprite struct {
	Image *ebiten.Image
}

var SpriteComponent = NewComponent[Sprite]()
