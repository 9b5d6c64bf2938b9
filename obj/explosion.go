package obj

import (
	"github.com/milk9111/teddyburger/common"
	"github.com/milk9111/teddyburger/component"
	"github.com/milk9111/teddyburger/prefabs"
)

// Explosion is a one-shot animation that expires after its last frame.
type Explosion struct {
	X, Y   float64
	Width  float64
	Height float64
	Sprite string

	clock *component.AnimationClock
}

// NewExplosion creates an explosion centered on (x, y).
func NewExplosion(spec prefabs.ExplosionSpec, x, y float64) *Explosion {
	return &Explosion{
		X:      x,
		Y:      y,
		Width:  spec.FrameWidth,
		Height: spec.FrameHeight,
		Sprite: spec.Sprite,
		clock:  component.NewAnimationClock(spec.Frames, spec.FrameMs, false),
	}
}

func (e *Explosion) Kind() Kind { return KindExplosion }

// IsActive is true until the animation has played out.
func (e *Explosion) IsActive() bool { return !e.Finished() }

func (e *Explosion) Rect() common.Rect {
	return common.RectFromCenter(e.X, e.Y, e.Width, e.Height)
}

// Finished reports whether the animation is over.
func (e *Explosion) Finished() bool {
	return e.clock.Finished()
}

// Frame is the current animation frame index.
func (e *Explosion) Frame() int {
	return e.clock.Frame()
}

// Update advances the animation.
func (e *Explosion) Update(f *Frame) {
	if e == nil || f == nil {
		return
	}
	e.clock.Update(f.ElapsedMs)
}
