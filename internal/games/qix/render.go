package qix

import (
	"fmt"

	"github.com/vovakirdan/qix-arcade/internal/core"
)

// Visual characters for rendering
const (
	MarkerChar = '◆'
	TrailChar  = '·'
)

// fieldRect returns the screen cells used by the playfield: everything
// below the status line.
func fieldRect(dst *core.Screen) core.Rect {
	return core.NewRect(0, 1, dst.Width(), max(dst.Height()-1, 2))
}

// Render draws the boundary region, the drawing trail, the marker and a
// status line. The marker is placed from its Transform, never from Position.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil || dst.Width() < 4 || dst.Height() < 4 {
		return
	}

	field := fieldRect(dst)
	dst.DrawBox(field, core.ColorGray)

	region, _ := g.boundary.Snapshot()
	if region != FullField() {
		x0, y0 := field.Project(region.MinX, region.MinY)
		x1, y1 := field.Project(region.MaxX, region.MaxY)
		dst.DrawBox(core.NewRect(x0, y0, x1-x0+1, y1-y0+1), core.ColorCyan)
	}

	for _, p := range g.trail {
		x, y := field.Project(p.X, p.Y)
		dst.SetColored(x, y, TrailChar, core.ColorBrightYellow)
	}

	st := g.MarkerState()
	mx, my := field.Project(st.Transform.Translation[0], st.Transform.Translation[1])
	dst.SetColored(mx, my, MarkerChar, markerColor(st.Marker.Mode))

	status := fmt.Sprintf(" QIX  mode: %-12s pos: %.2f,%.2f  dir: %-5s  dist: %d",
		st.Marker.Mode, st.Position.X, st.Position.Y, st.Velocity.Direction(), g.State().Score)
	dst.DrawText(0, 0, status)

	if g.paused {
		dst.DrawTextCentered(dst.Height()/2, "PAUSED - press P to resume")
	}
}

func markerColor(m Mode) core.Color {
	switch m {
	case ModeDrawing:
		return core.ColorBrightCyan
	case ModeDrawingFast:
		return core.ColorBrightMagenta
	default:
		return core.ColorBrightYellow
	}
}
