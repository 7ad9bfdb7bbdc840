package terminal

import (
	"time"

	"github.com/zkjon/pong/internal/sim"
)

// Terminals report key presses and auto-repeats but never releases, so a key
// counts as held until no repeat has arrived for the hold window.
const DefaultHoldWindow = 150 * time.Millisecond

type holdTracker struct {
	window time.Duration
	last   map[sim.Inputs]time.Time
}

func newHoldTracker(window time.Duration) *holdTracker {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &holdTracker{
		window: window,
		last:   make(map[sim.Inputs]time.Time),
	}
}

func (h *holdTracker) press(intent sim.Inputs, now time.Time) {
	h.last[intent] = now
}

func (h *holdTracker) clear() {
	for k := range h.last {
		delete(h.last, k)
	}
}

func (h *holdTracker) held(now time.Time) sim.Inputs {
	var in sim.Inputs
	for intent, at := range h.last {
		if now.Sub(at) > h.window {
			delete(h.last, intent)
			continue
		}
		in = in.With(intent)
	}
	return in
}
