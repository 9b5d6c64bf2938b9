package obj

import (
	"math/rand/v2"

	"github.com/milk9111/teddyburger/common"
	"github.com/milk9111/teddyburger/component"
	"github.com/milk9111/teddyburger/prefabs"
)

// Kind is the closed set of entity categories.
type Kind int

const (
	KindBurger Kind = iota
	KindTeddyBear
	KindProjectile
	KindExplosion
)

func (k Kind) String() string {
	switch k {
	case KindBurger:
		return "burger"
	case KindTeddyBear:
		return "teddy_bear"
	case KindProjectile:
		return "projectile"
	case KindExplosion:
		return "explosion"
	default:
		return "unknown"
	}
}

// Entity is the capability set every category shares so passes and
// renderers can iterate uniformly.
type Entity interface {
	Kind() Kind
	Rect() common.Rect
	IsActive() bool
}

// Input is the per-frame intent read from the input provider.
type Input struct {
	// MoveX and MoveY are in [-1, 1].
	MoveX float64
	MoveY float64
	Fire  bool
	Exit  bool
}

// Spawner accepts projectiles created during an update.
type Spawner interface {
	AddProjectile(p *Projectile)
}

// FirePolicy schedules teddy bear shots. roll is uniform in [0,1).
type FirePolicy interface {
	NextShot(roll, velocityY float64) (delayMs, speed float64)
}

// Frame carries what entity updates need from the orchestrator.
type Frame struct {
	ElapsedMs float64
	Bounds    common.Rect
	Spawner   Spawner
	Sounds    *component.SoundEmitter
	Rand      *rand.Rand

	// Policy and Shots are the live firing tuning, so a reload reaches
	// entities that already exist.
	Policy FirePolicy
	Shots  prefabs.ProjectilesSpec
}

func (f *Frame) roll() float64 {
	if f == nil || f.Rand == nil {
		return 0
	}
	return f.Rand.Float64()
}

func (f *Frame) emit(s component.Sound) {
	if f == nil {
		return
	}
	f.Sounds.Emit(s)
}

func (f *Frame) spawn(p *Projectile) {
	if f == nil || f.Spawner == nil || p == nil {
		return
	}
	f.Spawner.AddProjectile(p)
}
