package collision

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/teddyburger/common"
)

const (
	worldW = 800
	worldH = 600
)

func TestCheckPairCollisionDisjoint(t *testing.T) {
	cases := []struct {
		name string
		a, b common.Rect
	}{
		{"apart_x", common.Rect{X: 0, Y: 0, Width: 10, Height: 10}, common.Rect{X: 50, Y: 0, Width: 10, Height: 10}},
		{"apart_y", common.Rect{X: 0, Y: 0, Width: 10, Height: 10}, common.Rect{X: 0, Y: 50, Width: 10, Height: 10}},
		{"touching_edge", common.Rect{X: 0, Y: 0, Width: 10, Height: 10}, common.Rect{X: 10, Y: 0, Width: 10, Height: 10}},
		{"zero_area", common.Rect{X: 5, Y: 5, Width: 0, Height: 10}, common.Rect{X: 0, Y: 0, Width: 20, Height: 20}},
		{"inverted", common.Rect{X: 5, Y: 5, Width: -4, Height: -4}, common.Rect{X: 0, Y: 0, Width: 20, Height: 20}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			va := cp.Vector{X: 1, Y: 2}
			vb := cp.Vector{X: -3, Y: 4}
			a, b := c.a, c.b
			if _, ok := CheckPairCollision(16, worldW, worldH, va, a, vb, b); ok {
				t.Fatalf("expected no collision for %+v and %+v", c.a, c.b)
			}
			if a != c.a || b != c.b || va != (cp.Vector{X: 1, Y: 2}) || vb != (cp.Vector{X: -3, Y: 4}) {
				t.Fatalf("inputs were modified")
			}
		})
	}
}

func TestCheckPairCollisionHorizontalReflection(t *testing.T) {
	a := common.Rect{X: 100, Y: 100, Width: 50, Height: 50}
	b := common.Rect{X: 146, Y: 100, Width: 50, Height: 50}
	va := cp.Vector{X: 5, Y: 0}
	vb := cp.Vector{X: -5, Y: 0}

	out, ok := CheckPairCollision(1, worldW, worldH, va, a, vb, b)
	if !ok {
		t.Fatalf("expected collision")
	}
	if out.First.Velocity != (cp.Vector{X: -5, Y: 0}) {
		t.Fatalf("first velocity = %+v, want (-5,0)", out.First.Velocity)
	}
	if out.Second.Velocity != (cp.Vector{X: 5, Y: 0}) {
		t.Fatalf("second velocity = %+v, want (5,0)", out.Second.Velocity)
	}
	if out.First.Rect.X != 95 || out.Second.Rect.X != 151 {
		t.Fatalf("rects not advanced along reflected velocity: %+v %+v", out.First.Rect, out.Second.Rect)
	}
	if out.First.OutOfBounds || out.Second.OutOfBounds {
		t.Fatalf("unexpected out of bounds")
	}
}

func TestCheckPairCollisionKeepsOffAxisComponent(t *testing.T) {
	cases := []struct {
		name   string
		a, b   common.Rect
		va, vb cp.Vector
		wantA  cp.Vector
		wantB  cp.Vector
	}{
		{
			name:  "side_hit_keeps_y",
			a:     common.Rect{X: 100, Y: 100, Width: 40, Height: 40},
			b:     common.Rect{X: 136, Y: 110, Width: 40, Height: 40},
			va:    cp.Vector{X: 0.2, Y: 0.1},
			vb:    cp.Vector{X: -0.1, Y: -0.3},
			wantA: cp.Vector{X: -0.2, Y: 0.1},
			wantB: cp.Vector{X: 0.1, Y: -0.3},
		},
		{
			name:  "top_hit_keeps_x",
			a:     common.Rect{X: 100, Y: 100, Width: 40, Height: 40},
			b:     common.Rect{X: 110, Y: 137, Width: 40, Height: 40},
			va:    cp.Vector{X: 0.2, Y: 0.1},
			vb:    cp.Vector{X: -0.1, Y: -0.3},
			wantA: cp.Vector{X: 0.2, Y: -0.1},
			wantB: cp.Vector{X: -0.1, Y: 0.3},
		},
		{
			name:  "corner_hit_flips_both",
			a:     common.Rect{X: 100, Y: 100, Width: 40, Height: 40},
			b:     common.Rect{X: 130, Y: 130, Width: 40, Height: 40},
			va:    cp.Vector{X: 0.2, Y: 0.1},
			vb:    cp.Vector{X: -0.1, Y: -0.3},
			wantA: cp.Vector{X: -0.2, Y: -0.1},
			wantB: cp.Vector{X: 0.1, Y: 0.3},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out, ok := CheckPairCollision(10, worldW, worldH, c.va, c.a, c.vb, c.b)
			if !ok {
				t.Fatalf("expected collision")
			}
			if out.First.Velocity != c.wantA || out.Second.Velocity != c.wantB {
				t.Fatalf("velocities = %+v %+v, want %+v %+v", out.First.Velocity, out.Second.Velocity, c.wantA, c.wantB)
			}
		})
	}
}

func TestCheckPairCollisionSymmetry(t *testing.T) {
	a := common.Rect{X: 300, Y: 200, Width: 60, Height: 40}
	b := common.Rect{X: 340, Y: 215, Width: 60, Height: 40}
	va := cp.Vector{X: 0.25, Y: -0.05}
	vb := cp.Vector{X: -0.15, Y: 0.2}

	ab, ok := CheckPairCollision(16, worldW, worldH, va, a, vb, b)
	if !ok {
		t.Fatalf("expected collision a,b")
	}
	ba, ok := CheckPairCollision(16, worldW, worldH, vb, b, va, a)
	if !ok {
		t.Fatalf("expected collision b,a")
	}
	if ab != ba.Swap() {
		t.Fatalf("swapped arguments should mirror outcome: %+v vs %+v", ab, ba)
	}
}

func TestCheckPairCollisionDeterministic(t *testing.T) {
	a := common.Rect{X: 10, Y: 10, Width: 30, Height: 30}
	b := common.Rect{X: 25, Y: 12, Width: 30, Height: 30}
	va := cp.Vector{X: 0.1, Y: 0.3}
	vb := cp.Vector{X: -0.2, Y: 0.1}

	first, _ := CheckPairCollision(16, worldW, worldH, va, a, vb, b)
	for i := 0; i < 10; i++ {
		again, _ := CheckPairCollision(16, worldW, worldH, va, a, vb, b)
		if again != first {
			t.Fatalf("run %d differs: %+v vs %+v", i, again, first)
		}
	}
}

func TestCheckPairCollisionOutOfBounds(t *testing.T) {
	// b straddles the left edge; reflecting pushes it fully outside.
	a := common.Rect{X: 5, Y: 100, Width: 40, Height: 40}
	b := common.Rect{X: -30, Y: 100, Width: 40, Height: 40}
	va := cp.Vector{X: -0.1, Y: 0}
	vb := cp.Vector{X: 0.5, Y: 0}

	out, ok := CheckPairCollision(100, worldW, worldH, va, a, vb, b)
	if !ok {
		t.Fatalf("expected collision")
	}
	if out.First.OutOfBounds {
		t.Fatalf("first should stay in bounds: %+v", out.First)
	}
	if !out.Second.OutOfBounds {
		t.Fatalf("second should be out of bounds: %+v", out.Second)
	}
	if out.Second.Rect != (common.Rect{}) || out.Second.Velocity != (cp.Vector{}) {
		t.Fatalf("out of bounds side should carry no resolution: %+v", out.Second)
	}
}
