package obj

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/teddyburger/common"
	"github.com/milk9111/teddyburger/component"
	"github.com/milk9111/teddyburger/prefabs"
)

// TeddyBear is a roaming enemy. X, Y is the center and rect always matches
// it.
type TeddyBear struct {
	Active bool
	Sprite string

	x, y     float64
	width    float64
	height   float64
	rect     common.Rect
	velocity cp.Vector

	fireElapsedMs float64
	fireDelayMs   float64
}

// NewTeddyBear creates an active bear centered on (x, y). firstDelayMs is
// the wait before its first shot.
func NewTeddyBear(spec prefabs.TeddyBearSpec, x, y float64, velocity cp.Vector, firstDelayMs float64) *TeddyBear {
	t := &TeddyBear{
		Active:      true,
		Sprite:      spec.Sprite,
		width:       spec.Width,
		height:      spec.Height,
		velocity:    velocity,
		fireDelayMs: firstDelayMs,
	}
	t.SetPosition(x, y)
	return t
}

func (t *TeddyBear) Kind() Kind          { return KindTeddyBear }
func (t *TeddyBear) IsActive() bool      { return t.Active }
func (t *TeddyBear) Rect() common.Rect   { return t.rect }
func (t *TeddyBear) Velocity() cp.Vector { return t.velocity }

// Center returns the bear's location.
func (t *TeddyBear) Center() (float64, float64) { return t.x, t.y }

func (t *TeddyBear) SetVelocity(v cp.Vector) { t.velocity = v }

// SetPosition moves the bear's center and recomputes its rect.
func (t *TeddyBear) SetPosition(x, y float64) {
	t.x, t.y = x, y
	t.rect = common.RectFromCenter(x, y, t.width, t.height)
}

// SetRect moves the bear so its rect matches r. The bear's size is fixed;
// only r's center is used.
func (t *TeddyBear) SetRect(r common.Rect) {
	cx, cy := r.Center()
	t.SetPosition(cx, cy)
}

// Update moves the bear, bounces it off the world edges and fires when the
// shot timer runs out.
func (t *TeddyBear) Update(f *Frame) {
	if t == nil || f == nil || !t.Active {
		return
	}

	d := common.Advance(t.velocity, f.ElapsedMs)
	t.SetPosition(t.x+d.X, t.y+d.Y)
	t.bounce(f.Bounds)

	t.fireElapsedMs += f.ElapsedMs
	if t.fireElapsedMs < t.fireDelayMs {
		return
	}
	t.fireElapsedMs = 0
	shot := f.Shots.TeddyProjectile
	delay, speed := math.Inf(1), shot.Speed
	if f.Policy != nil {
		delay, speed = f.Policy.NextShot(f.roll(), t.velocity.Y)
	}
	t.fireDelayMs = delay
	f.spawn(NewProjectile(component.FromEnemy, shot, t.x, t.y+shot.Offset, cp.Vector{X: 0, Y: speed}))
	f.emit(component.SoundTeddyShot)
}

// Reschedule restarts the shot timer with a new delay.
func (t *TeddyBear) Reschedule(delayMs float64) {
	t.fireElapsedMs = 0
	t.fireDelayMs = delayMs
}

func (t *TeddyBear) bounce(bounds common.Rect) {
	if !bounds.Valid() {
		return
	}
	r := t.rect
	switch {
	case r.Top() < bounds.Top():
		t.SetPosition(t.x, bounds.Top()+t.height/2)
		t.velocity.Y = math.Abs(t.velocity.Y)
	case r.Bottom() > bounds.Bottom():
		t.SetPosition(t.x, bounds.Bottom()-t.height/2)
		t.velocity.Y = -math.Abs(t.velocity.Y)
	}
	r = t.rect
	switch {
	case r.Left() < bounds.Left():
		t.SetPosition(bounds.Left()+t.width/2, t.y)
		t.velocity.X = math.Abs(t.velocity.X)
	case r.Right() > bounds.Right():
		t.SetPosition(bounds.Right()-t.width/2, t.y)
		t.velocity.X = -math.Abs(t.velocity.X)
	}
}
