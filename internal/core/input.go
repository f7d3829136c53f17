package core

import "strings"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone     Action = iota
	ActionUp              // W, Up arrow
	ActionRight           // D, Right arrow
	ActionDown            // S, Down arrow
	ActionLeft            // A, Left arrow
	ActionDraw            // Z - start cutting into the field
	ActionFastDraw        // X - cut into the field at higher speed
	ActionConfirm         // Enter - confirm selection
	ActionRestart         // R key - restart game
	ActionQuit            // Q, Esc, Ctrl+C - exit game/session
	ActionPause           // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionRight:
		return "Right"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionDraw:
		return "Draw"
	case ActionFastDraw:
		return "FastDraw"
	case ActionConfirm:
		return "Confirm"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// ParseAction converts an action name ("up", "fastdraw", ...) to an Action.
// Case and surrounding space are ignored.
// Returns ActionNone and false for unknown names.
func ParseAction(name string) (Action, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "up":
		return ActionUp, true
	case "right":
		return ActionRight, true
	case "down":
		return ActionDown, true
	case "left":
		return ActionLeft, true
	case "draw":
		return ActionDraw, true
	case "fastdraw", "fast":
		return ActionFastDraw, true
	case "pause":
		return ActionPause, true
	case "none", "idle", "rest":
		return ActionNone, true
	}
	return ActionNone, false
}

// InputFrame is the set of actions held during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they are held this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// InputOf builds a frame with the given actions held.
func InputOf(actions ...Action) InputFrame {
	f := NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks an action as held for this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is held this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
