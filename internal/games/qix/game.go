// Package qix implements the marker movement core of a Qix-style game.
// A single marker walks the border of the playfield and, once drawing mode
// is engaged, may cut across the interior. Each tick runs four systems in
// order: input resolution, integration, collision, presentation sync.
package qix

import (
	"github.com/vovakirdan/qix-arcade/internal/config"
	"github.com/vovakirdan/qix-arcade/internal/core"
	"github.com/vovakirdan/qix-arcade/internal/ecs"
	"github.com/vovakirdan/qix-arcade/internal/registry"
)

// GameID is the registry identifier of the game.
const GameID = "qix"

// MarkerSize is the render scale of the marker in field units.
const MarkerSize = 0.02

const maxTrail = 4096

var activeConfig = config.DefaultQixConfig()

// SetConfig sets the config used by games created through the registry.
func SetConfig(cfg config.QixConfig) {
	activeConfig = cfg
}

// Summary describes a session for the session log.
type Summary struct {
	Ticks    int
	Elapsed  float64 // simulated seconds
	Distance float64 // field units travelled
	Mode     Mode
}

// TickReport describes what happened during the most recent tick.
type TickReport struct {
	Tick          int
	ModeChanges   []ModeChange
	Corrections   []Correction
	RegionVersion uint64
}

// Game implements the Qix marker simulation.
type Game struct {
	cfg      config.QixConfig
	speed    Speed
	runtime  core.RuntimeConfig
	world    *World
	boundary *Boundary
	marker   ecs.Entity

	tickCount int
	elapsed   float64
	distance  float64
	paused    bool
	last      TickReport
	trail     []Position // interior points visited while drawing
}

// New creates a game using the config set by SetConfig.
func New() *Game {
	return NewWithConfig(activeConfig)
}

// NewWithConfig creates a game with an explicit config.
func NewWithConfig(cfg config.QixConfig) *Game {
	return &Game{
		cfg:   cfg,
		speed: SpeedFromConfig(cfg),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Qix"
}

// Reset starts a new session: a fresh world, the configured boundary, and one
// marker at rest in the middle of the bottom edge.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	f := g.cfg.Field
	region := Region{MinX: f.MinX, MinY: f.MinY, MaxX: f.MaxX, MaxY: f.MaxY}
	boundary, err := NewBoundary(region)
	if err != nil {
		// Config is validated on load; a hand-built bad config still gets a playable field.
		region = FullField()
		boundary, _ = NewBoundary(region)
	}
	g.boundary = boundary

	if g.world == nil {
		g.world = NewWorld()
	} else {
		g.world.Clear()
	}
	start := Position{X: (region.MinX + region.MaxX) / 2, Y: region.MaxY}
	g.marker = g.world.SpawnMarker(start, MarkerSize)
	SyncPresentation(g.world)

	g.tickCount = 0
	g.elapsed = 0
	g.distance = 0
	g.paused = false
	g.last = TickReport{}
	g.trail = g.trail[:0]
}

// Step advances the simulation by one tick of dt seconds.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	if dt >= 0 && core.IsFinite(dt) {
		g.elapsed += dt
	}

	region, version := g.boundary.Snapshot()

	changes := ResolveInput(g.world, in, g.speed)
	g.distance += Integrate(g.world, dt)
	corrections := ResolveCollisions(g.world, region)
	SyncPresentation(g.world)

	g.last = TickReport{
		Tick:          g.tickCount,
		ModeChanges:   changes,
		Corrections:   corrections,
		RegionVersion: version,
	}
	g.recordTrail(region)

	return core.StepResult{State: g.State()}
}

// recordTrail remembers interior positions visited in drawing mode.
func (g *Game) recordTrail(region Region) {
	p, ok := g.world.Positions.Get(g.marker)
	if !ok {
		return
	}
	m, _ := g.world.Markers.Get(g.marker)
	if !m.IsDrawing() || region.OnEdge(p) {
		return
	}
	if n := len(g.trail); n > 0 && g.trail[n-1] == p {
		return
	}
	if len(g.trail) >= maxTrail {
		g.trail = g.trail[1:]
	}
	g.trail = append(g.trail, p)
}

// State returns the current game state. The score is the distance travelled
// in hundredths of the field width.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    int(g.distance * 100),
		GameOver: false,
		Paused:   g.paused,
	}
}

// Summary returns the session totals so far.
func (g *Game) Summary() Summary {
	return Summary{
		Ticks:    g.tickCount,
		Elapsed:  g.elapsed,
		Distance: g.distance,
		Mode:     g.MarkerState().Marker.Mode,
	}
}

// SessionStats returns the session totals in platform form.
func (g *Game) SessionStats() core.SessionStats {
	s := g.Summary()
	return core.SessionStats{
		Ticks:    s.Ticks,
		Elapsed:  s.Elapsed,
		Distance: s.Distance,
		Mode:     s.Mode.String(),
	}
}

// LastTick returns the report of the most recent simulated tick.
func (g *Game) LastTick() TickReport {
	return g.last
}

// Boundary returns the shared region resource for territory updates.
func (g *Game) Boundary() *Boundary {
	return g.boundary
}

// MarkerState is a copy of the marker entity's components.
type MarkerState struct {
	Position  Position
	Velocity  Velocity
	Marker    Marker
	Transform Transform
}

// MarkerState returns the marker's current components.
func (g *Game) MarkerState() MarkerState {
	if g.world == nil || !g.world.Alive(g.marker) {
		return MarkerState{}
	}
	var s MarkerState
	s.Position, _ = g.world.Positions.Get(g.marker)
	s.Velocity, _ = g.world.Velocities.Get(g.marker)
	s.Marker, _ = g.world.Markers.Get(g.marker)
	s.Transform, _ = g.world.Transforms.Get(g.marker)
	return s
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
