package component

// Cooldown counts elapsed milliseconds toward a fixed duration.
type Cooldown struct {
	DurationMs float64
	elapsedMs  float64
	running    bool
}

// NewCooldown returns a cooldown that is ready immediately.
func NewCooldown(durationMs float64) *Cooldown {
	return &Cooldown{DurationMs: durationMs}
}

// Ready reports whether the cooldown is not running.
func (c *Cooldown) Ready() bool {
	return c == nil || !c.running
}

// Start begins a new countdown.
func (c *Cooldown) Start() {
	if c == nil {
		return
	}
	c.running = true
	c.elapsedMs = 0
}

// Reset makes the cooldown ready again.
func (c *Cooldown) Reset() {
	if c == nil {
		return
	}
	c.running = false
	c.elapsedMs = 0
}

// Tick advances a running cooldown and clears it once the duration passes.
func (c *Cooldown) Tick(elapsedMs float64) {
	if c == nil || !c.running {
		return
	}
	c.elapsedMs += elapsedMs
	if c.elapsedMs >= c.DurationMs {
		c.Reset()
	}
}
