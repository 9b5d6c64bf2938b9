package obj

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/teddyburger/collision"
	"github.com/milk9111/teddyburger/common"
	"github.com/milk9111/teddyburger/component"
	"github.com/milk9111/teddyburger/prefabs"
)

// Projectile is a shot fired by the burger or a bear. The type decides its
// sprite and which side it can damage.
type Projectile struct {
	Type   component.ProjectileType
	Active bool
	Damage int

	x, y     float64
	width    float64
	height   float64
	rect     common.Rect
	velocity cp.Vector
}

// NewProjectile creates an active projectile centered on (x, y).
func NewProjectile(t component.ProjectileType, spec prefabs.ProjectileSpec, x, y float64, velocity cp.Vector) *Projectile {
	p := &Projectile{
		Type:     t,
		Active:   true,
		Damage:   spec.Damage,
		width:    spec.Width,
		height:   spec.Height,
		velocity: velocity,
	}
	p.SetPosition(x, y)
	return p
}

func (p *Projectile) Kind() Kind          { return KindProjectile }
func (p *Projectile) IsActive() bool      { return p.Active }
func (p *Projectile) Rect() common.Rect   { return p.rect }
func (p *Projectile) Velocity() cp.Vector { return p.velocity }

// Sprite is the asset name for this projectile's type.
func (p *Projectile) Sprite() string { return p.Type.SpriteName() }

// Center returns the projectile's location.
func (p *Projectile) Center() (float64, float64) { return p.x, p.y }

// SetPosition moves the projectile's center and recomputes its rect.
func (p *Projectile) SetPosition(x, y float64) {
	p.x, p.y = x, y
	p.rect = common.RectFromCenter(x, y, p.width, p.height)
}

// Update advances the projectile and deactivates it once it has left the
// world entirely.
func (p *Projectile) Update(f *Frame) {
	if p == nil || f == nil || !p.Active {
		return
	}
	d := common.Advance(p.velocity, f.ElapsedMs)
	p.SetPosition(p.x+d.X, p.y+d.Y)
	if f.Bounds.Valid() && collision.OutsideWorld(p.rect, f.Bounds) {
		p.Active = false
	}
}
