package qix

import (
	"github.com/vovakirdan/qix-arcade/internal/config"
	"github.com/vovakirdan/qix-arcade/internal/core"
	"github.com/vovakirdan/qix-arcade/internal/ecs"
)

// Speed holds the marker speed limits in field units per second.
type Speed struct {
	Max            float64
	FastMultiplier float64
}

// SpeedFromConfig extracts the speed limits from a game config.
func SpeedFromConfig(cfg config.QixConfig) Speed {
	return Speed{
		Max:            cfg.Physics.MaxSpeed,
		FastMultiplier: cfg.Physics.FastMultiplier,
	}
}

// For returns the top speed for a marker in its current mode.
func (s Speed) For(m Marker) float64 {
	if m.IsFast() {
		return s.Max * s.FastMultiplier
	}
	return s.Max
}

// ResolveMode returns the marker mode after applying this tick's mode keys.
func ResolveMode(in core.InputFrame, current Mode) Mode {
	next := current
	if in.Has(core.ActionDraw) {
		next = next.Advance(ModeDrawing)
	}
	if in.Has(core.ActionFastDraw) {
		next = next.Advance(ModeDrawingFast)
	}
	return next
}

// ResolveVelocity maps held direction keys to a velocity. Keys are checked
// in the order Up, Right, Down, Left and the first held one wins. With no
// direction held the marker is at rest; previous velocity never carries over.
func ResolveVelocity(in core.InputFrame, m Marker, speed Speed) Velocity {
	top := speed.For(m)
	switch {
	case in.Has(core.ActionUp):
		return Velocity{X: 0, Y: -top}
	case in.Has(core.ActionRight):
		return Velocity{X: top, Y: 0}
	case in.Has(core.ActionDown):
		return Velocity{X: 0, Y: top}
	case in.Has(core.ActionLeft):
		return Velocity{X: -top, Y: 0}
	default:
		return Velocity{}
	}
}

// ModeChange records a marker whose mode moved up during a tick.
type ModeChange struct {
	Entity ecs.Entity
	From   Mode
	To     Mode
}

// ResolveInput is the first system of a tick. Mode keys are applied before
// the velocity so a fast-draw press takes effect on the same tick.
func ResolveInput(w *World, in core.InputFrame, speed Speed) []ModeChange {
	var changes []ModeChange
	for _, e := range ecs.Query(w.Markers, w.Velocities) {
		m := w.Markers.Ptr(e)
		if next := ResolveMode(in, m.Mode); next != m.Mode {
			changes = append(changes, ModeChange{Entity: e, From: m.Mode, To: next})
			m.Mode = next
		}
		*w.Velocities.Ptr(e) = ResolveVelocity(in, *m, speed)
	}
	return changes
}

// IntegratePosition advances p by v over dt seconds using explicit Euler.
// A negative or non-finite dt, or a step that would leave finite space,
// yields no movement.
func IntegratePosition(p Position, v Velocity, dt float64) Position {
	if !(dt >= 0) || !core.IsFinite(dt) {
		return p
	}
	next := core.Vec2{X: p.X, Y: p.Y}.Add(core.Vec2{X: v.X, Y: v.Y}.Scale(dt))
	if !next.IsFinite() {
		return p
	}
	return Position{X: next.X, Y: next.Y}
}

// Integrate is the second system of a tick. No clamping happens here.
// It returns the total distance moved by all entities.
func Integrate(w *World, dt float64) float64 {
	var moved float64
	for _, e := range ecs.Query(w.Positions, w.Velocities) {
		p := w.Positions.Ptr(e)
		next := IntegratePosition(*p, *w.Velocities.Ptr(e), dt)
		moved += core.Vec2{X: next.X - p.X, Y: next.Y - p.Y}.Len()
		*p = next
	}
	return moved
}

// SyncPresentation is the last system of a tick. It copies the final
// position and marker size into the renderer-owned transform.
func SyncPresentation(w *World) {
	for _, e := range ecs.Query(w.Markers, w.Transforms, w.Positions) {
		p, _ := w.Positions.Get(e)
		m, _ := w.Markers.Get(e)
		t := w.Transforms.Ptr(e)
		t.Translation = [2]float64{p.X, p.Y}
		t.Scale = [2]float64{m.Size, m.Size}
	}
}
