package qix

import "github.com/vovakirdan/qix-arcade/internal/ecs"

// Edge names the region edge a position was clamped to.
type Edge int

const (
	EdgeNone Edge = iota
	EdgeMinX
	EdgeMaxX
	EdgeMinY
	EdgeMaxY
)

// String returns the edge name.
func (e Edge) String() string {
	switch e {
	case EdgeMinX:
		return "min_x"
	case EdgeMaxX:
		return "max_x"
	case EdgeMinY:
		return "min_y"
	case EdgeMaxY:
		return "max_y"
	default:
		return "none"
	}
}

// Confine narrows r for a marker walking the perimeter. When p is strictly
// inside the travel axis, the edge paired with the travel direction is pulled
// to p's own coordinate: Up moves MinY, Right moves MaxX, Down moves MaxY and
// Left moves MinX. A shrink that would invert the rectangle is dropped.
func Confine(r Region, p Position, dir Direction) Region {
	shrunk := r
	switch dir {
	case DirUp:
		if p.Y < r.MaxY && p.Y > r.MinY {
			shrunk.MinY = p.Y
		}
	case DirRight:
		if p.X > r.MinX && p.X < r.MaxX {
			shrunk.MaxX = p.X
		}
	case DirDown:
		if p.Y > r.MinY && p.Y < r.MaxY {
			shrunk.MaxY = p.Y
		}
	case DirLeft:
		if p.X < r.MaxX && p.X > r.MinX {
			shrunk.MinX = p.X
		}
	}
	if shrunk.Validate() != nil {
		return r
	}
	return shrunk
}

// Collide clamps p into region r for one tick.
//
// Off the border and outside drawing mode the limits are first narrowed by
// Confine. The clamp then corrects at most one coordinate, checking x-min,
// x-max, y-min and y-max in that order; a second violated axis is left for
// a later tick.
func Collide(p Position, v Velocity, m Marker, r Region) (Position, Edge) {
	limits := r
	if !r.OnEdge(p) && !m.IsDrawing() {
		limits = Confine(r, p, v.Direction())
	}

	switch {
	case p.X < limits.MinX:
		p.X = limits.MinX
		return p, EdgeMinX
	case p.X > limits.MaxX:
		p.X = limits.MaxX
		return p, EdgeMaxX
	case p.Y < limits.MinY:
		p.Y = limits.MinY
		return p, EdgeMinY
	case p.Y > limits.MaxY:
		p.Y = limits.MaxY
		return p, EdgeMaxY
	}
	return p, EdgeNone
}

// Correction records a clamp applied to an entity during a tick.
type Correction struct {
	Entity ecs.Entity
	Edge   Edge
}

// ResolveCollisions is the third system of a tick. Every entity with a
// position, velocity and marker is clamped against the same region snapshot.
func ResolveCollisions(w *World, r Region) []Correction {
	var corrections []Correction
	for _, e := range ecs.Query(w.Positions, w.Velocities, w.Markers) {
		p := w.Positions.Ptr(e)
		v, _ := w.Velocities.Get(e)
		m, _ := w.Markers.Get(e)

		next, edge := Collide(*p, v, m, r)
		if edge != EdgeNone {
			corrections = append(corrections, Correction{Entity: e, Edge: edge})
		}
		*p = next
	}
	return corrections
}
