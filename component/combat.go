package component

// ProjectileType identifies who fired a projectile and so who it can hurt.
type ProjectileType int

const (
	// FromPlayer projectiles (french fries) damage teddy bears.
	FromPlayer ProjectileType = iota
	// FromEnemy projectiles damage the burger.
	FromEnemy
)

func (t ProjectileType) String() string {
	switch t {
	case FromPlayer:
		return "from_player"
	case FromEnemy:
		return "from_enemy"
	default:
		return "unknown"
	}
}

// SpriteName is the asset name used to draw projectiles of this type.
func (t ProjectileType) SpriteName() string {
	if t == FromPlayer {
		return "french_fries"
	}
	return "teddy_projectile"
}

// CombatEventType defines the kind of combat event.
type CombatEventType string

const (
	EventBounce        CombatEventType = "bounce"
	EventDamageApplied CombatEventType = "damage_applied"
	EventDeath         CombatEventType = "death"
	EventKill          CombatEventType = "kill"
	EventOutOfBounds   CombatEventType = "out_of_bounds"
)

// CombatEvent is emitted by the collision passes.
type CombatEvent struct {
	Type   CombatEventType
	Damage int
	Score  int
	Frame  int
	PosX   float64
	PosY   float64
}

// CombatEventHandler handles combat events.
type CombatEventHandler func(evt CombatEvent)

// CombatEventEmitter fans combat events out to handlers.
type CombatEventEmitter struct {
	Handlers []CombatEventHandler
}

// Emit sends a combat event to all handlers.
func (e *CombatEventEmitter) Emit(evt CombatEvent) {
	if e == nil || len(e.Handlers) == 0 {
		return
	}
	for _, h := range e.Handlers {
		if h != nil {
			h(evt)
		}
	}
}
