package qix

import "github.com/vovakirdan/qix-arcade/internal/ecs"

// Position is an entity location in normalized field coordinates.
// The field spans [0,1] on both axes with +y pointing down.
type Position struct {
	X, Y float64
}

// Velocity is a signed speed in field units per second.
type Velocity struct {
	X, Y float64
}

// Direction is the travel direction derived from a velocity.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirRight
	DirDown
	DirLeft
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	default:
		return "none"
	}
}

// Direction classifies the velocity by sign, checking the x axis before y.
func (v Velocity) Direction() Direction {
	switch {
	case v.X > 0:
		return DirRight
	case v.X < 0:
		return DirLeft
	case v.Y > 0:
		return DirDown
	case v.Y < 0:
		return DirUp
	default:
		return DirNone
	}
}

// Mode is the marker's cutting state. Modes only ever move up the order
// Normal < Drawing < DrawingFast during a session.
type Mode uint8

const (
	ModeNormal Mode = iota
	ModeDrawing
	ModeDrawingFast
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeDrawing:
		return "drawing"
	case ModeDrawingFast:
		return "drawing+fast"
	default:
		return "unknown"
	}
}

// Advance returns the higher of m and to.
func (m Mode) Advance(to Mode) Mode {
	if to > m {
		return to
	}
	return m
}

// Marker is the player-controlled token.
type Marker struct {
	Size float64 // render scale in field units
	Mode Mode
}

// IsDrawing reports whether the marker may leave the perimeter.
func (m Marker) IsDrawing() bool {
	return m.Mode >= ModeDrawing
}

// IsFast reports whether the fast speed multiplier applies.
func (m Marker) IsFast() bool {
	return m.Mode == ModeDrawingFast
}

// Transform is the renderer-owned placement of an entity.
type Transform struct {
	Translation [2]float64
	Scale       [2]float64
}

// World bundles the entity registry with the component stores the
// simulation uses.
type World struct {
	*ecs.World

	Positions  *ecs.Store[Position]
	Velocities *ecs.Store[Velocity]
	Markers    *ecs.Store[Marker]
	Transforms *ecs.Store[Transform]
}

// NewWorld creates an empty world with all qix stores registered.
func NewWorld() *World {
	w := &World{
		World:      ecs.NewWorld(),
		Positions:  ecs.NewStore[Position](),
		Velocities: ecs.NewStore[Velocity](),
		Markers:    ecs.NewStore[Marker](),
		Transforms: ecs.NewStore[Transform](),
	}
	w.Register(w.Positions)
	w.Register(w.Velocities)
	w.Register(w.Markers)
	w.Register(w.Transforms)
	return w
}

// SpawnMarker creates a marker entity at rest at the given position.
func (w *World) SpawnMarker(at Position, size float64) ecs.Entity {
	e := w.CreateEntity()
	w.Positions.Set(e, at)
	w.Velocities.Set(e, Velocity{})
	w.Markers.Set(e, Marker{Size: size, Mode: ModeNormal})
	w.Transforms.Set(e, Transform{})
	return e
}
