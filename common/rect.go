package common

// Rect is an axis-aligned rectangle in world pixels with X,Y at the top-left.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// RectFromCenter builds a rect of the given size centered on (cx, cy).
func RectFromCenter(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, Width: w, Height: h}
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Center returns the rect's center point.
func (r Rect) Center() (float64, float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Valid reports whether the rect has positive area.
func (r Rect) Valid() bool {
	return r.Width > 0 && r.Height > 0
}

// Intersects reports strict overlap; touching edges do not count and
// invalid rects never intersect.
func (r Rect) Intersects(other Rect) bool {
	if !r.Valid() || !other.Valid() {
		return false
	}
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// Intersection returns the overlapping region, or a zero Rect when disjoint.
func (r Rect) Intersection(other Rect) Rect {
	if !r.Intersects(other) {
		return Rect{}
	}
	x0 := max(r.Left(), other.Left())
	y0 := max(r.Top(), other.Top())
	x1 := min(r.Right(), other.Right())
	y1 := min(r.Bottom(), other.Bottom())
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Area returns width*height, or 0 for invalid rects.
func (r Rect) Area() float64 {
	if !r.Valid() {
		return 0
	}
	return r.Width * r.Height
}

// Offset returns r translated by (dx, dy).
func (r Rect) Offset(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}
