package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/qix-arcade/internal/core"
)

func TestHeldKeysWindow(t *testing.T) {
	h := NewHeldKeys(100 * time.Millisecond)
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionLeft, t0)

	if f := h.Frame(t0.Add(50 * time.Millisecond)); !f.Has(core.ActionLeft) {
		t.Error("key should be held inside the window")
	}
	if f := h.Frame(t0.Add(150 * time.Millisecond)); f.Has(core.ActionLeft) {
		t.Error("key should be released after the window")
	}
	// Expired keys stay released.
	if f := h.Frame(t0.Add(60 * time.Millisecond)); f.Has(core.ActionLeft) {
		t.Error("expired key came back")
	}
}

func TestHeldKeysRepeatExtends(t *testing.T) {
	h := NewHeldKeys(100 * time.Millisecond)
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionUp, t0)
	h.Press(core.ActionUp, t0.Add(80*time.Millisecond))

	if f := h.Frame(t0.Add(150 * time.Millisecond)); !f.Has(core.ActionUp) {
		t.Error("repeat press should extend the hold")
	}
}

func TestHeldKeysNewDirectionReleasesOthers(t *testing.T) {
	h := NewHeldKeys(time.Second)
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionUp, t0)
	h.Press(core.ActionDraw, t0)
	h.Press(core.ActionLeft, t0.Add(10*time.Millisecond))

	f := h.Frame(t0.Add(20 * time.Millisecond))
	if f.Has(core.ActionUp) {
		t.Error("old direction should be released by a new one")
	}
	if !f.Has(core.ActionLeft) || !f.Has(core.ActionDraw) {
		t.Errorf("expected left and draw held, got %v", f.Actions)
	}
}

func TestHeldKeysOneShot(t *testing.T) {
	h := NewHeldKeys(time.Second)
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionPause, t0)
	h.Press(core.ActionQuit, t0)

	if f := h.Frame(t0); !f.Has(core.ActionPause) || f.Has(core.ActionQuit) {
		t.Errorf("first frame = %v, expected pause only", f.Actions)
	}
	if f := h.Frame(t0); f.Has(core.ActionPause) {
		t.Error("pause should be delivered once")
	}
}

func TestHeldKeysRelease(t *testing.T) {
	h := NewHeldKeys(time.Second)
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionRight, t0)
	h.Press(core.ActionRestart, t0)
	h.Release()

	if f := h.Frame(t0); len(f.Actions) != 0 {
		t.Errorf("expected empty frame after release, got %v", f.Actions)
	}
}

func TestFrameDelta(t *testing.T) {
	t0 := time.Unix(1000, 0)
	nominal := 1.0 / 60.0

	tests := []struct {
		name string
		prev time.Time
		now  time.Time
		want float64
	}{
		{"first tick", time.Time{}, t0, nominal},
		{"normal", t0, t0.Add(20 * time.Millisecond), 0.02},
		{"clock went back", t0, t0.Add(-time.Second), 0},
		{"stall is capped", t0, t0.Add(5 * time.Second), maxFrameDelta.Seconds()},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := frameDelta(tc.prev, tc.now, nominal); got != tc.want {
				t.Errorf("frameDelta() = %f, expected %f", got, tc.want)
			}
		})
	}
}
