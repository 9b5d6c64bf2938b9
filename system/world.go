package system

import (
	"fmt"
	"log"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/milk9111/teddyburger/common"
	"github.com/milk9111/teddyburger/component"
	"github.com/milk9111/teddyburger/obj"
	"github.com/milk9111/teddyburger/prefabs"
	"github.com/milk9111/teddyburger/scores"
)

// World owns every entity collection and runs the per-frame simulation.
// All mutation happens inside Update on the caller's goroutine.
type World struct {
	Burger      *obj.Burger
	Bears       []*obj.TeddyBear
	Projectiles []*obj.Projectile
	Explosions  []*obj.Explosion

	Sounds component.SoundEmitter
	Combat component.CombatEventEmitter

	spec         *prefabs.GameSpec
	bounds       common.Rect
	rng          *rand.Rand
	policy       obj.FirePolicy
	fixedPolicy  bool
	store        scores.Store
	highScores   []scores.Score
	score        int
	healthString string
	frame        int
}

// Option configures a World.
type Option func(w *World)

// WithRand sets the random source used for spawns and firing rolls.
func WithRand(r *rand.Rand) Option {
	return func(w *World) { w.rng = r }
}

// WithSeed seeds a PCG random source.
func WithSeed(seed uint64) Option {
	return func(w *World) { w.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) }
}

// WithScoreStore sets where the final score goes when the burger dies.
func WithScoreStore(s scores.Store) Option {
	return func(w *World) { w.store = s }
}

// WithFirePolicy replaces the scripted bear fire policy.
func WithFirePolicy(p obj.FirePolicy) Option {
	return func(w *World) {
		w.policy = p
		w.fixedPolicy = p != nil
	}
}

// WithSoundSink routes sound cues to play.
func WithSoundSink(play func(s component.Sound)) Option {
	return func(w *World) { w.Sounds.Play = play }
}

// NewWorld creates the burger, fills the bear population and loads the
// high-score table.
func NewWorld(spec *prefabs.GameSpec, opts ...Option) (*World, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	w := &World{}
	for _, opt := range opts {
		opt(w)
	}
	if w.rng == nil {
		w.rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	if err := w.setSpec(spec); err != nil {
		return nil, err
	}

	w.Burger = obj.NewBurger(spec.Burger)
	w.Burger.Health().OnDamage = func(*component.Health, int) { w.refreshHealthString() }
	w.refreshHealthString()
	w.reloadHighScores()
	w.Respawn()
	return w, nil
}

// ApplySpec swaps in new tuning. Existing entities keep their sizes and
// speeds. Damage, rewards, spawns and firing use the new values from the
// next frame on, and every live bear's pending shot is redrawn from the new
// fire policy. Bears above a lowered max_bears are not culled; the
// population drains down to it as bears die.
func (w *World) ApplySpec(spec *prefabs.GameSpec) error {
	if err := spec.Validate(); err != nil {
		return err
	}
	if err := w.setSpec(spec); err != nil {
		return err
	}
	for _, b := range w.Bears {
		delay, _ := w.policy.NextShot(w.rng.Float64(), b.Velocity().Y)
		b.Reschedule(delay)
	}
	if w.Burger != nil {
		w.refreshHealthString()
	}
	return nil
}

func (w *World) setSpec(spec *prefabs.GameSpec) error {
	if !w.fixedPolicy {
		policy, err := prefabs.NewScriptFirePolicy(spec.TeddyBear, spec.Projectiles.TeddyProjectile)
		if err != nil {
			return fmt.Errorf("system: fire policy: %w", err)
		}
		w.policy = policy
	}
	w.spec = spec
	w.bounds = common.Rect{Width: spec.World.Width, Height: spec.World.Height}
	return nil
}

// AddProjectile implements obj.Spawner.
func (w *World) AddProjectile(p *obj.Projectile) {
	if p == nil {
		return
	}
	w.Projectiles = append(w.Projectiles, p)
}

// Update advances the simulation by one frame. The pass order is fixed:
// an entity deactivated by an earlier pass is skipped by later ones and only
// removed during the prune at the end.
func (w *World) Update(elapsed time.Duration, in obj.Input) {
	if w == nil {
		return
	}
	w.frame++
	elapsedMs := float64(elapsed) / float64(time.Millisecond)
	f := &obj.Frame{
		ElapsedMs: elapsedMs,
		Bounds:    w.bounds,
		Spawner:   w,
		Sounds:    &w.Sounds,
		Rand:      w.rng,
		Policy:    w.policy,
		Shots:     w.spec.Projectiles,
	}

	w.Burger.Update(f, in)
	for _, b := range w.Bears {
		b.Update(f)
	}
	for _, p := range w.Projectiles {
		p.Update(f)
	}
	for _, e := range w.Explosions {
		e.Update(f)
	}

	w.resolveBearCollisions(elapsedMs)
	w.resolveBurgerBearCollisions()
	w.resolveBurgerProjectileCollisions()
	w.resolveBearProjectileCollisions()

	w.Prune()
	w.Respawn()
}

// Prune drops inactive bears and projectiles and finished explosions.
func (w *World) Prune() {
	w.Bears = compact(w.Bears, func(b *obj.TeddyBear) bool { return b.Active })
	w.Projectiles = compact(w.Projectiles, func(p *obj.Projectile) bool { return p.Active })
	w.Explosions = compact(w.Explosions, func(e *obj.Explosion) bool { return !e.Finished() })
}

// Respawn tops the bear population back up to the configured size.
func (w *World) Respawn() {
	for len(w.Bears) < w.spec.World.MaxBears {
		w.SpawnBear()
	}
}

func compact[T any](items []T, keep func(T) bool) []T {
	writeIdx := 0
	for _, it := range items {
		if !keep(it) {
			continue
		}
		items[writeIdx] = it
		writeIdx++
	}
	clear(items[writeIdx:])
	return items[:writeIdx]
}

// Entities returns every live entity in draw order.
func (w *World) Entities() []obj.Entity {
	out := make([]obj.Entity, 0, 1+len(w.Bears)+len(w.Projectiles)+len(w.Explosions))
	out = append(out, w.Burger)
	for _, b := range w.Bears {
		out = append(out, b)
	}
	for _, p := range w.Projectiles {
		out = append(out, p)
	}
	for _, e := range w.Explosions {
		out = append(out, e)
	}
	return out
}

func (w *World) Spec() *prefabs.GameSpec    { return w.spec }
func (w *World) Bounds() common.Rect        { return w.bounds }
func (w *World) Score() int                 { return w.score }
func (w *World) Frame() int                 { return w.frame }
func (w *World) HighScores() []scores.Score { return w.highScores }

// HealthString is the HUD health label, e.g. "Health: 90".
func (w *World) HealthString() string { return w.healthString }

// ScoreString is the HUD score label, e.g. "Score: 20".
func (w *World) ScoreString() string {
	return w.spec.HUD.ScorePrefix + strconv.Itoa(w.score)
}

// GameOver reports whether the burger has died.
func (w *World) GameOver() bool {
	return w.Burger != nil && w.Burger.Dead()
}

func (w *World) refreshHealthString() {
	w.healthString = w.spec.HUD.HealthPrefix + strconv.Itoa(w.Burger.Health().Current)
}

func (w *World) reloadHighScores() {
	if w.store == nil {
		return
	}
	hs, err := w.store.Load()
	if err != nil {
		log.Printf("system: load high scores: %v", err)
		return
	}
	if n := w.spec.HUD.HighScoreCount; n > 0 && len(hs) > n {
		hs = hs[:n]
	}
	w.highScores = hs
}
