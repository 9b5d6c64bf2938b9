package prefabs

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// GameSpecFile is the prefab holding all gameplay tuning.
const GameSpecFile = "game.yaml"

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type GameSpec struct {
	Name        string          `yaml:"name"`
	PlayerName  string          `yaml:"player_name"`
	World       WorldSpec       `yaml:"world"`
	Burger      BurgerSpec      `yaml:"burger"`
	TeddyBear   TeddyBearSpec   `yaml:"teddy_bear"`
	Projectiles ProjectilesSpec `yaml:"projectiles"`
	Explosion   ExplosionSpec   `yaml:"explosion"`
	HUD         HUDSpec         `yaml:"hud"`
}

type WorldSpec struct {
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	MaxBears         int     `yaml:"max_bears"`
	SpawnBorder      float64 `yaml:"spawn_border"`
	SpawnMaxAttempts int     `yaml:"spawn_max_attempts"`
}

type BurgerSpec struct {
	Sprite         string  `yaml:"sprite"`
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	StartX         float64 `yaml:"start_x"`
	StartY         float64 `yaml:"start_y"`
	Health         int     `yaml:"health"`
	MoveSpeed      float64 `yaml:"move_speed"`
	FireCooldownMs float64 `yaml:"fire_cooldown_ms"`
}

type TeddyBearSpec struct {
	Sprite           string  `yaml:"sprite"`
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	MinSpeed         float64 `yaml:"min_speed"`
	SpeedRange       float64 `yaml:"speed_range"`
	Points           int     `yaml:"points"`
	Damage           int     `yaml:"damage"`
	FireScript       string  `yaml:"fire_script"`
	MinFireDelayMs   float64 `yaml:"min_fire_delay_ms"`
	FireDelayRangeMs float64 `yaml:"fire_delay_range_ms"`
}

type ProjectilesSpec struct {
	FrenchFries     ProjectileSpec `yaml:"french_fries"`
	TeddyProjectile ProjectileSpec `yaml:"teddy_projectile"`
}

type ProjectileSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
	Offset float64 `yaml:"offset"`
	Damage int     `yaml:"damage"`
}

type ExplosionSpec struct {
	Sprite      string  `yaml:"sprite"`
	FrameWidth  float64 `yaml:"frame_width"`
	FrameHeight float64 `yaml:"frame_height"`
	Frames      int     `yaml:"frames"`
	FrameMs     float64 `yaml:"frame_ms"`
}

type HUDSpec struct {
	HealthPrefix   string `yaml:"health_prefix"`
	ScorePrefix    string `yaml:"score_prefix"`
	HighScoreCount int    `yaml:"high_score_count"`
}

// LoadGameSpec loads and validates game.yaml.
func LoadGameSpec() (*GameSpec, error) {
	spec, err := LoadSpec[GameSpec](GameSpecFile)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

// ParseGameSpec decodes and validates a game spec from raw yaml.
func ParseGameSpec(data []byte) (*GameSpec, error) {
	var spec GameSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal %s: %w", GameSpecFile, err)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

// Validate rejects tuning the simulation cannot run with.
func (s *GameSpec) Validate() error {
	if s == nil {
		return fmt.Errorf("%w: nil spec", ErrInvalidSpec)
	}
	switch {
	case s.World.Width <= 0 || s.World.Height <= 0:
		return fmt.Errorf("%w: world size %vx%v", ErrInvalidSpec, s.World.Width, s.World.Height)
	case s.World.MaxBears < 0:
		return fmt.Errorf("%w: max_bears %d", ErrInvalidSpec, s.World.MaxBears)
	case s.World.SpawnBorder < 0 || 2*s.World.SpawnBorder >= min(s.World.Width, s.World.Height):
		return fmt.Errorf("%w: spawn_border %v leaves no spawn region", ErrInvalidSpec, s.World.SpawnBorder)
	case s.Burger.Width <= 0 || s.Burger.Height <= 0:
		return fmt.Errorf("%w: burger size", ErrInvalidSpec)
	case s.Burger.Health <= 0:
		return fmt.Errorf("%w: burger health %d", ErrInvalidSpec, s.Burger.Health)
	case s.TeddyBear.Width <= 0 || s.TeddyBear.Height <= 0:
		return fmt.Errorf("%w: teddy_bear size", ErrInvalidSpec)
	case s.TeddyBear.MinSpeed < 0 || s.TeddyBear.SpeedRange < 0:
		return fmt.Errorf("%w: teddy_bear speed", ErrInvalidSpec)
	case s.Explosion.Frames <= 0:
		return fmt.Errorf("%w: explosion frames %d", ErrInvalidSpec, s.Explosion.Frames)
	}
	return nil
}
