package tui

import (
	"time"

	"github.com/vovakirdan/qix-arcade/internal/core"
)

// DefaultHoldWindow is how long a key counts as held after its last press.
// Terminal key repeat usually fires every 30-50ms after an initial delay of
// up to 500ms, so the window has to bridge that first gap.
const DefaultHoldWindow = 550 * time.Millisecond

var directions = []core.Action{core.ActionUp, core.ActionRight, core.ActionDown, core.ActionLeft}

// HeldKeys emulates key-up events for terminals, which only report presses.
// A key is held while presses keep arriving within the hold window.
// Pressing a direction releases the other directions so a turn takes effect
// at once instead of waiting for the old key to time out.
type HeldKeys struct {
	window  time.Duration
	pressed map[core.Action]time.Time
	oneShot core.InputFrame
}

// NewHeldKeys creates a tracker with the given hold window.
func NewHeldKeys(window time.Duration) *HeldKeys {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &HeldKeys{
		window:  window,
		pressed: make(map[core.Action]time.Time),
		oneShot: core.NewInputFrame(),
	}
}

// Press records a key press at now. Pause and restart are delivered exactly
// once on the next frame instead of being held.
func (h *HeldKeys) Press(a core.Action, now time.Time) {
	switch a {
	case core.ActionNone, core.ActionQuit:
		return
	case core.ActionPause, core.ActionRestart, core.ActionConfirm:
		h.oneShot.Set(a)
		return
	}
	if isDirection(a) {
		for _, d := range directions {
			if d != a {
				delete(h.pressed, d)
			}
		}
	}
	h.pressed[a] = now
}

// Frame returns the actions held at now and drains pending one-shot actions.
// Keys whose window has elapsed are forgotten.
func (h *HeldKeys) Frame(now time.Time) core.InputFrame {
	frame := h.oneShot.Clone()
	h.oneShot.Clear()

	for a, at := range h.pressed {
		if now.Sub(at) > h.window {
			delete(h.pressed, a)
			continue
		}
		frame.Set(a)
	}
	return frame
}

// Release forgets every held key.
func (h *HeldKeys) Release() {
	clear(h.pressed)
	h.oneShot.Clear()
}

func isDirection(a core.Action) bool {
	switch a {
	case core.ActionUp, core.ActionRight, core.ActionDown, core.ActionLeft:
		return true
	}
	return false
}
