package component

// AnimationClock tracks progress through a sprite strip without holding any
// images. Frames are laid out left-to-right, top-to-bottom; the renderer
// resolves Frame() against the sheet.
type AnimationClock struct {
	FrameCount int
	FrameMs    float64
	Loop       bool

	current   int
	elapsedMs float64
	finished  bool
}

// NewAnimationClock creates a clock. frameMs defaults to one 60Hz tick when
// <= 0.
func NewAnimationClock(frameCount int, frameMs float64, loop bool) *AnimationClock {
	if frameCount <= 0 {
		frameCount = 1
	}
	if frameMs <= 0 {
		frameMs = 1000.0 / 60.0
	}
	return &AnimationClock{FrameCount: frameCount, FrameMs: frameMs, Loop: loop}
}

// Update advances the clock by elapsedMs. A non-looping clock finishes after
// its last frame has been shown for a full frame duration.
func (a *AnimationClock) Update(elapsedMs float64) {
	if a == nil || a.finished {
		return
	}
	a.elapsedMs += elapsedMs
	for a.elapsedMs >= a.FrameMs {
		a.elapsedMs -= a.FrameMs
		a.current++
		if a.current >= a.FrameCount {
			if a.Loop {
				a.current = 0
				continue
			}
			a.current = a.FrameCount - 1
			a.finished = true
			return
		}
	}
}

// Frame returns the current frame index.
func (a *AnimationClock) Frame() int {
	if a == nil {
		return 0
	}
	return a.current
}

// Finished reports whether a non-looping clock has played out.
func (a *AnimationClock) Finished() bool {
	return a != nil && a.finished
}

// Reset sets the clock back to the first frame.
func (a *AnimationClock) Reset() {
	if a == nil {
		return
	}
	a.current = 0
	a.elapsedMs = 0
	a.finished = false
}
