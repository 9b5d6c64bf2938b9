// Package collision resolves contacts between moving axis-aligned rectangles
// and answers placement queries. Everything here is pure: inputs are never
// mutated and results depend only on arguments.
package collision

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/teddyburger/common"
)

// Side is the resolution for one participant of a pair.
type Side struct {
	Velocity    cp.Vector
	Rect        common.Rect
	OutOfBounds bool
}

// Outcome carries the resolution for both participants.
type Outcome struct {
	First  Side
	Second Side
}

// Swap returns the outcome with the sides exchanged.
func (o Outcome) Swap() Outcome {
	return Outcome{First: o.Second, Second: o.First}
}

// Axis is the penetration axis used to reflect velocities.
type Axis int

const (
	AxisNone Axis = iota
	AxisX
	AxisY
	AxisBoth
)

// PenetrationAxis picks the axis to reflect on from the overlap region. A
// narrow, tall overlap means the rects met side to side. Equal extents are a
// corner hit and reflect both components.
func PenetrationAxis(a, b common.Rect) Axis {
	overlap := a.Intersection(b)
	if !overlap.Valid() {
		return AxisNone
	}
	switch {
	case overlap.Width < overlap.Height:
		return AxisX
	case overlap.Height < overlap.Width:
		return AxisY
	default:
		return AxisBoth
	}
}

// Reflect negates the components of v selected by axis.
func Reflect(v cp.Vector, axis Axis) cp.Vector {
	switch axis {
	case AxisX:
		v.X = -v.X
	case AxisY:
		v.Y = -v.Y
	case AxisBoth:
		v.X, v.Y = -v.X, -v.Y
	}
	return v
}

// CheckPairCollision resolves an elastic bounce between two rects. It
// returns false when the rects do not strictly overlap. Each side keeps its
// speed; only the component along the penetration axis flips. The reflected
// velocity is then applied for elapsedMs to separate the pair. A side whose
// advanced rect leaves the world entirely is reported OutOfBounds with a zero
// velocity and rect so the caller deactivates it instead of moving it.
func CheckPairCollision(elapsedMs, worldWidth, worldHeight float64,
	velocityA cp.Vector, rectA common.Rect,
	velocityB cp.Vector, rectB common.Rect) (Outcome, bool) {
	if !rectA.Intersects(rectB) {
		return Outcome{}, false
	}

	axis := PenetrationAxis(rectA, rectB)
	world := common.Rect{Width: worldWidth, Height: worldHeight}
	return Outcome{
		First:  resolveSide(elapsedMs, world, velocityA, rectA, axis),
		Second: resolveSide(elapsedMs, world, velocityB, rectB, axis),
	}, true
}

func resolveSide(elapsedMs float64, world common.Rect, v cp.Vector, r common.Rect, axis Axis) Side {
	v = Reflect(v, axis)
	d := common.Advance(v, elapsedMs)
	moved := r.Offset(d.X, d.Y)
	if OutsideWorld(moved, world) {
		return Side{OutOfBounds: true}
	}
	return Side{Velocity: v, Rect: moved}
}

// OutsideWorld reports whether r has no overlap at all with world.
func OutsideWorld(r, world common.Rect) bool {
	return r.Right() <= world.Left() ||
		r.Left() >= world.Right() ||
		r.Bottom() <= world.Top() ||
		r.Top() >= world.Bottom()
}
