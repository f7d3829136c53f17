// Package tui provides the Bubble Tea integration for the arcade platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxFrameDelta caps the time step fed to the simulation so a stalled
// terminal does not teleport the marker across the field.
const maxFrameDelta = 250 * time.Millisecond

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the seconds between two ticks. The first tick of a
// session (zero prev) uses the nominal interval.
func frameDelta(prev, now time.Time, nominal float64) float64 {
	if prev.IsZero() {
		return nominal
	}
	d := now.Sub(prev)
	if d < 0 {
		return 0
	}
	return min(d, maxFrameDelta).Seconds()
}
