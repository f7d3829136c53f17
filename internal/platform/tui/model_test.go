package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/qix-arcade/internal/config"
	"github.com/vovakirdan/qix-arcade/internal/core"
	"github.com/vovakirdan/qix-arcade/internal/games/qix"
	"github.com/vovakirdan/qix-arcade/internal/storage"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T, store *storage.Store) (Model, *qix.Game) {
	t.Helper()
	game := qix.NewWithConfig(config.DefaultQixConfig())
	cfg := core.RuntimeConfig{ScreenW: 60, ScreenH: 20, TickRate: 60, Seed: 1}
	return NewModel(game, cfg, Options{Store: store, Player: "tester"}), game
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestKeyMapMapKey(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{runes("d"), core.ActionRight, false},
		{tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{runes("a"), core.ActionLeft, false},
		{runes("z"), core.ActionDraw, false},
		{runes("x"), core.ActionFastDraw, false},
		{runes("p"), core.ActionPause, false},
		{runes("r"), core.ActionRestart, false},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit, true},
		{runes("q"), core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{runes("m"), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.msg.String(), func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			if action != tc.action || quit != tc.quit {
				t.Errorf("MapKey(%q) = %s, %v; expected %s, %v", tc.msg.String(), action, quit, tc.action, tc.quit)
			}
		})
	}
}

func TestModelMovesWhileKeyHeld(t *testing.T) {
	m, game := newTestModel(t, nil)
	start := game.MarkerState().Position

	m = update(t, m, runes("d"))
	now := time.Now()
	m = update(t, m, TickMsg(now))
	m = update(t, m, TickMsg(now.Add(20*time.Millisecond)))

	if got := game.MarkerState().Position; got.X <= start.X {
		t.Errorf("marker did not move right: %+v -> %+v", start, got)
	}

	// Long after the hold window the key is released and the marker rests.
	later := now.Add(2 * time.Second)
	m = update(t, m, TickMsg(later))
	rest := game.MarkerState().Position
	update(t, m, TickMsg(later.Add(20*time.Millisecond)))
	if got := game.MarkerState().Position; got != rest {
		t.Errorf("marker kept moving after release: %+v -> %+v", rest, got)
	}
}

func TestModelQuitSavesSession(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "sessions.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	m, _ := newTestModel(t, store)
	m = update(t, m, runes("z"))
	now := time.Now()
	for i := range 5 {
		m = update(t, m, TickMsg(now.Add(time.Duration(i)*16*time.Millisecond)))
	}

	next, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("quit should return tea.Quit")
	}
	if v := next.(Model).View(); v != "" {
		t.Error("View should be empty after quit")
	}

	sessions, err := store.RecentSessions(qix.GameID, 10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("expected 1 saved session, got %d", len(sessions))
	}
	s := sessions[0]
	if s.Player != "tester" || s.Ticks != 5 || s.FinalMode != "drawing" {
		t.Errorf("unexpected session %+v", s)
	}
}

func TestModelRestartStartsNewSession(t *testing.T) {
	m, game := newTestModel(t, nil)
	now := time.Now()

	m = update(t, m, runes("a"))
	for i := range 10 {
		m = update(t, m, TickMsg(now.Add(time.Duration(i)*16*time.Millisecond)))
	}
	if game.Summary().Ticks != 10 {
		t.Fatalf("ticks = %d, expected 10", game.Summary().Ticks)
	}

	m = update(t, m, runes("r"))
	update(t, m, TickMsg(now.Add(time.Second)))

	if sum := game.Summary(); sum.Ticks != 0 || sum.Distance != 0 {
		t.Errorf("restart should reset the session, got %+v", sum)
	}
}

func TestModelResizeKeepsSession(t *testing.T) {
	m, game := newTestModel(t, nil)
	now := time.Now()

	m = update(t, m, runes("d"))
	m = update(t, m, TickMsg(now))
	before := game.MarkerState().Position

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if game.MarkerState().Position != before {
		t.Error("resize should not reset the simulation")
	}

	view := m.View()
	if lines := strings.Count(view, "\n") + 1; lines != 40 {
		t.Errorf("view has %d lines, expected 40", lines)
	}
}

func TestModelHelpToggle(t *testing.T) {
	m, _ := newTestModel(t, nil)
	short := m.screen.Height()

	m = update(t, m, runes("?"))
	if !m.help.ShowAll {
		t.Fatal("? should show full help")
	}
	if m.screen.Height() >= short {
		t.Errorf("full help should shrink the game screen: %d -> %d", short, m.screen.Height())
	}
}
