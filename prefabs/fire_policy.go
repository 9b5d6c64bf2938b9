package prefabs

import (
	"fmt"
	"log"
	"strings"

	"github.com/d5/tengo/v2"
)

// ScriptFirePolicy runs a tengo script to schedule teddy bear shots.
type ScriptFirePolicy struct {
	scriptPath string
	compiled   *tengo.Compiled

	minDelayMs   float64
	delayRangeMs float64
	baseSpeed    float64
}

// NewScriptFirePolicy compiles the bear's fire script. The projectile base
// speed comes from the teddy projectile spec.
func NewScriptFirePolicy(bear TeddyBearSpec, projectile ProjectileSpec) (*ScriptFirePolicy, error) {
	p := &ScriptFirePolicy{
		scriptPath:   bear.FireScript,
		minDelayMs:   bear.MinFireDelayMs,
		delayRangeMs: bear.FireDelayRangeMs,
		baseSpeed:    projectile.Speed,
	}
	if strings.TrimSpace(bear.FireScript) == "" {
		return p, nil
	}

	src, err := LoadScript(bear.FireScript)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load script %s: %w", bear.FireScript, err)
	}
	script := tengo.NewScript(src)
	_ = script.Add("roll", 0.0)
	_ = script.Add("vy", 0.0)
	_ = script.Add("min_delay", p.minDelayMs)
	_ = script.Add("delay_range", p.delayRangeMs)
	_ = script.Add("base_speed", p.baseSpeed)

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("prefabs: compile script %s: %w", bear.FireScript, err)
	}
	if !compiled.IsDefined("delay") || !compiled.IsDefined("speed") {
		return nil, fmt.Errorf("%w: script %s must define delay and speed", ErrInvalidSpec, bear.FireScript)
	}
	p.compiled = compiled
	return p, nil
}

// NextShot returns the delay until the next shot and the projectile speed.
// roll is a uniform sample in [0,1). Script failures fall back to the
// built-in schedule so a bad edit never stops bears from firing.
func (p *ScriptFirePolicy) NextShot(roll, velocityY float64) (float64, float64) {
	if p == nil {
		return 0, 0
	}
	if p.compiled != nil {
		delay, speed, err := p.run(roll, velocityY)
		if err == nil {
			return delay, speed
		}
		log.Printf("prefabs: fire script %s: %v", p.scriptPath, err)
	}
	return p.fallback(roll, velocityY)
}

func (p *ScriptFirePolicy) run(roll, velocityY float64) (float64, float64, error) {
	if err := p.compiled.Set("roll", roll); err != nil {
		return 0, 0, err
	}
	if err := p.compiled.Set("vy", velocityY); err != nil {
		return 0, 0, err
	}
	if err := p.compiled.Run(); err != nil {
		return 0, 0, err
	}
	return p.compiled.Get("delay").Float(), p.compiled.Get("speed").Float(), nil
}

func (p *ScriptFirePolicy) fallback(roll, velocityY float64) (float64, float64) {
	speed := p.baseSpeed
	if velocityY > 0 {
		speed += velocityY
	}
	return p.minDelayMs + roll*p.delayRangeMs, speed
}
