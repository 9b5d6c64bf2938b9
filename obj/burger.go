package obj

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/teddyburger/common"
	"github.com/milk9111/teddyburger/component"
	"github.com/milk9111/teddyburger/prefabs"
)

// Burger is the player. X, Y is the center.
type Burger struct {
	X, Y   float64
	Width  float64
	Height float64
	Sprite string

	moveSpeed float64
	health    *component.Health
	cooldown  *component.Cooldown
}

// NewBurger creates the burger at its configured start position.
func NewBurger(spec prefabs.BurgerSpec) *Burger {
	return &Burger{
		X:         spec.StartX,
		Y:         spec.StartY,
		Width:     spec.Width,
		Height:    spec.Height,
		Sprite:    spec.Sprite,
		moveSpeed: spec.MoveSpeed,
		health:    component.NewHealth(spec.Health),
		cooldown:  component.NewCooldown(spec.FireCooldownMs),
	}
}

func (b *Burger) Kind() Kind { return KindBurger }

// IsActive is always true; a dead burger still occupies space.
func (b *Burger) IsActive() bool { return true }

func (b *Burger) Rect() common.Rect {
	return common.RectFromCenter(b.X, b.Y, b.Width, b.Height)
}

func (b *Burger) Health() *component.Health { return b.health }

// Dead reports whether the terminal death flag has been recorded.
func (b *Burger) Dead() bool {
	return b.health == nil || b.health.Dead
}

// Update moves the burger from input, keeps it inside the world and fires
// french fries while the fire key is held and the cooldown allows. Letting
// go of fire re-arms the cooldown immediately.
func (b *Burger) Update(f *Frame, in Input) {
	if b == nil || f == nil || b.Dead() {
		return
	}

	step := b.moveSpeed * f.ElapsedMs
	b.X += common.Clamp(in.MoveX, -1, 1) * step
	b.Y += common.Clamp(in.MoveY, -1, 1) * step
	b.clampTo(f.Bounds)

	b.cooldown.Tick(f.ElapsedMs)
	if !in.Fire {
		b.cooldown.Reset()
		return
	}
	if !b.cooldown.Ready() {
		return
	}
	b.cooldown.Start()
	fries := f.Shots.FrenchFries
	f.spawn(NewProjectile(component.FromPlayer, fries, b.X, b.Y-fries.Offset, cp.Vector{X: 0, Y: -fries.Speed}))
	f.emit(component.SoundBurgerShot)
}

func (b *Burger) clampTo(bounds common.Rect) {
	if !bounds.Valid() {
		return
	}
	halfW, halfH := b.Width/2, b.Height/2
	b.X = common.Clamp(b.X, bounds.Left()+halfW, bounds.Right()-halfW)
	b.Y = common.Clamp(b.Y, bounds.Top()+halfH, bounds.Bottom()-halfH)
}
