package prefabs

import (
	"math"
	"testing"
)

func TestScriptFirePolicy(t *testing.T) {
	spec, err := LoadGameSpec()
	if err != nil {
		t.Fatalf("LoadGameSpec: %v", err)
	}
	p, err := NewScriptFirePolicy(spec.TeddyBear, spec.Projectiles.TeddyProjectile)
	if err != nil {
		t.Fatalf("NewScriptFirePolicy: %v", err)
	}

	cases := []struct {
		name      string
		roll, vy  float64
		wantDelay float64
		wantSpeed float64
	}{
		{"min_delay_moving_up", 0, -0.2, spec.TeddyBear.MinFireDelayMs, spec.Projectiles.TeddyProjectile.Speed},
		{"half_roll_moving_down", 0.5, 0.1, spec.TeddyBear.MinFireDelayMs + 0.5*spec.TeddyBear.FireDelayRangeMs, spec.Projectiles.TeddyProjectile.Speed + 0.1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			delay, speed := p.NextShot(c.roll, c.vy)
			if math.Abs(delay-c.wantDelay) > 1e-9 {
				t.Fatalf("delay = %v, want %v", delay, c.wantDelay)
			}
			if math.Abs(speed-c.wantSpeed) > 1e-9 {
				t.Fatalf("speed = %v, want %v", speed, c.wantSpeed)
			}
			fd, fs := p.fallback(c.roll, c.vy)
			if math.Abs(fd-delay) > 1e-9 || math.Abs(fs-speed) > 1e-9 {
				t.Fatalf("script and fallback disagree: (%v,%v) vs (%v,%v)", delay, speed, fd, fs)
			}
		})
	}
}

func TestScriptFirePolicyWithoutScript(t *testing.T) {
	bear := TeddyBearSpec{MinFireDelayMs: 100, FireDelayRangeMs: 50}
	p, err := NewScriptFirePolicy(bear, ProjectileSpec{Speed: 0.3})
	if err != nil {
		t.Fatalf("NewScriptFirePolicy: %v", err)
	}
	delay, speed := p.NextShot(1, 0)
	if delay != 150 || speed != 0.3 {
		t.Fatalf("NextShot = (%v,%v), want (150,0.3)", delay, speed)
	}
}

func TestScriptFirePolicyMissingScript(t *testing.T) {
	bear := TeddyBearSpec{FireScript: "does_not_exist.tengo"}
	if _, err := NewScriptFirePolicy(bear, ProjectileSpec{}); err == nil {
		t.Fatalf("expected error for missing script")
	}
}
