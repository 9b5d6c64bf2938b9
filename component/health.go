package component

// Health is integer hit points clamped to [0, Max] plus a one-way death flag.
type Health struct {
	Max     int
	Current int
	Dead    bool

	OnDamage func(h *Health, amount int)
	OnDeath  func(h *Health)
}

// NewHealth creates a Health component with max/current initialized.
func NewHealth(max int) *Health {
	if max <= 0 {
		max = 1
	}
	return &Health{Max: max, Current: max}
}

// IsAlive reports whether the entity is alive.
func (h *Health) IsAlive() bool {
	return h != nil && !h.Dead && h.Current > 0
}

// ApplyDamage subtracts amount, flooring at zero. It never records death;
// callers decide when to run MarkDead. Returns the damage actually applied.
func (h *Health) ApplyDamage(amount int) int {
	if h == nil || amount <= 0 || h.Current == 0 {
		return 0
	}
	applied := amount
	if applied > h.Current {
		applied = h.Current
	}
	h.Current -= applied
	if h.OnDamage != nil {
		h.OnDamage(h, applied)
	}
	return applied
}

// MarkDead records death if health is exhausted. It returns true only on
// the call that performs the transition.
func (h *Health) MarkDead() bool {
	if h == nil || h.Dead || h.Current > 0 {
		return false
	}
	h.Dead = true
	if h.OnDeath != nil {
		h.OnDeath(h)
	}
	return true
}

// SetCurrentHP sets the current health value and clamps to [0, Max].
func (h *Health) SetCurrentHP(v int) {
	if h == nil {
		return
	}
	h.Current = v
	if h.Current < 0 {
		h.Current = 0
	}
	if h.Max > 0 && h.Current > h.Max {
		h.Current = h.Max
	}
}
