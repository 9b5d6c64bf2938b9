package system

import (
	"log"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/teddyburger/collision"
	"github.com/milk9111/teddyburger/common"
	"github.com/milk9111/teddyburger/obj"
)

// SpawnBear places a new bear at a random spot inside the spawn border that
// overlaps nothing. After SpawnMaxAttempts failed samples the least
// overlapping candidate is used.
func (w *World) SpawnBear() *obj.TeddyBear {
	spec := w.spec.TeddyBear
	world := w.spec.World

	speed := spec.MinSpeed + w.rng.Float64()*spec.SpeedRange
	angle := w.rng.Float64() * math.Pi
	velocity := cp.ForAngle(angle).Mult(speed)

	occupied := w.occupiedRects()
	attempts := max(world.SpawnMaxAttempts, 1)
	candidates := make([]common.Rect, 0, 8)
	var chosen common.Rect
	placed := false
	for range attempts {
		cand := w.sampleBearRect()
		if collision.IsCollisionFree(cand, occupied) {
			chosen = cand
			placed = true
			break
		}
		candidates = append(candidates, cand)
	}
	if !placed {
		chosen = candidates[collision.BestPlacement(candidates, occupied)]
		log.Printf("system: no free spawn spot after %d attempts, using least crowded", attempts)
	}

	cx, cy := chosen.Center()
	firstDelay, _ := w.policy.NextShot(w.rng.Float64(), velocity.Y)
	bear := obj.NewTeddyBear(spec, cx, cy, velocity, firstDelay)
	w.Bears = append(w.Bears, bear)
	return bear
}

func (w *World) sampleBearRect() common.Rect {
	border := w.spec.World.SpawnBorder
	x := border + w.rng.Float64()*(w.bounds.Width-2*border)
	y := border + w.rng.Float64()*(w.bounds.Height-2*border)
	return common.RectFromCenter(x, y, w.spec.TeddyBear.Width, w.spec.TeddyBear.Height)
}

// occupiedRects is everything a new bear must not overlap.
func (w *World) occupiedRects() []common.Rect {
	rects := make([]common.Rect, 0, 1+len(w.Bears)+len(w.Projectiles)+len(w.Explosions))
	if w.Burger != nil {
		rects = append(rects, w.Burger.Rect())
	}
	for _, b := range w.Bears {
		if b.Active {
			rects = append(rects, b.Rect())
		}
	}
	for _, p := range w.Projectiles {
		if p.Active {
			rects = append(rects, p.Rect())
		}
	}
	for _, e := range w.Explosions {
		if e.IsActive() {
			rects = append(rects, e.Rect())
		}
	}
	return rects
}
