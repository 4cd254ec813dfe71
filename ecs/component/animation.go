package component

import "github.com/milk9111/dasher/common"

// SpriteAnimation walks a horizontal strip of equally sized cells.
//
// TotalFrames is the highest frame index, so the strip holds TotalFrames+1
// cells. Frame stays within [0, TotalFrames] and FrameRect.X always equals
// Frame*FrameRect.Width.
type SpriteAnimation struct {
	FrameRect   common.Rect
	Frame       int
	TotalFrames int
	Interval    float64 // seconds between frame advances
	Elapsed     float64 // seconds since the last advance

	// GroundedOnly pauses the strip while the entity's Body is airborne.
	GroundedOnly bool
}

var SpriteAnimationComponent = NewComponent[SpriteAnimation]()
