package prefabs

import (
	"errors"
	"testing"
)

func TestLoadGameSpec(t *testing.T) {
	spec, err := LoadGameSpec()
	if err != nil {
		t.Fatalf("LoadGameSpec: %v", err)
	}
	if spec.World.Width != 800 || spec.World.Height != 600 {
		t.Fatalf("world = %vx%v, want 800x600", spec.World.Width, spec.World.Height)
	}
	if spec.World.MaxBears <= 0 {
		t.Fatalf("expected a positive bear population, got %d", spec.World.MaxBears)
	}
	if spec.Burger.Health != 100 {
		t.Fatalf("burger health = %d, want 100", spec.Burger.Health)
	}
	if spec.HUD.HealthPrefix != "Health: " {
		t.Fatalf("health prefix = %q", spec.HUD.HealthPrefix)
	}
}

func TestGameSpecValidate(t *testing.T) {
	base, err := LoadGameSpec()
	if err != nil {
		t.Fatalf("LoadGameSpec: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(s *GameSpec)
	}{
		{"zero_world", func(s *GameSpec) { s.World.Width = 0 }},
		{"negative_bears", func(s *GameSpec) { s.World.MaxBears = -1 }},
		{"border_too_wide", func(s *GameSpec) { s.World.SpawnBorder = 300 }},
		{"dead_burger", func(s *GameSpec) { s.Burger.Health = 0 }},
		{"flat_bear", func(s *GameSpec) { s.TeddyBear.Height = 0 }},
		{"no_explosion_frames", func(s *GameSpec) { s.Explosion.Frames = 0 }},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := *base
			c.mutate(&s)
			if err := s.Validate(); !errors.Is(err, ErrInvalidSpec) {
				t.Fatalf("Validate() = %v, want ErrInvalidSpec", err)
			}
		})
	}
}

func TestParseGameSpecRejectsGarbage(t *testing.T) {
	if _, err := ParseGameSpec([]byte("world: [")); err == nil {
		t.Fatalf("expected unmarshal error")
	}
}

func TestCleanScriptPath(t *testing.T) {
	cases := map[string]string{
		"teddy_fire.tengo":                 "scripts/teddy_fire.tengo",
		"scripts/teddy_fire.tengo":         "scripts/teddy_fire.tengo",
		"prefabs/scripts/teddy_fire.tengo": "scripts/teddy_fire.tengo",
	}
	for in, want := range cases {
		if got := cleanScriptPath(in); got != want {
			t.Fatalf("cleanScriptPath(%q) = %q, want %q", in, got, want)
		}
	}
}
