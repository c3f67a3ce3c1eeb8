package input

import "time"

// HoldTracker derives held-key state from press events
// Terminals report presses and autorepeat but no release, so a key counts as
// held until window passes without another press
type HoldTracker struct {
	window    time.Duration
	lastPress [KeyCount]time.Time
}

// NewHoldTracker creates a tracker with the given hold window
func NewHoldTracker(window time.Duration) *HoldTracker {
	return &HoldTracker{window: window}
}

// Press records a press or autorepeat of k at now
func (h *HoldTracker) Press(k Key, now time.Time) {
	if k >= KeyCount {
		return
	}
	h.lastPress[k] = now
}

// Release forgets k immediately
func (h *HoldTracker) Release(k Key) {
	if k >= KeyCount {
		return
	}
	h.lastPress[k] = time.Time{}
}

// ReleaseAll forgets every key, used on focus loss
func (h *HoldTracker) ReleaseAll() {
	h.lastPress = [KeyCount]time.Time{}
}

// Held returns the keys considered held at now
func (h *HoldTracker) Held(now time.Time) KeySet {
	var s KeySet
	for k := Key(0); k < KeyCount; k++ {
		last := h.lastPress[k]
		if last.IsZero() {
			continue
		}
		if now.Sub(last) < h.window {
			s = s.With(k)
		}
	}
	return s
}
