package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/qix-arcade/internal/core"
	"github.com/vovakirdan/qix-arcade/internal/games/qix"
	"github.com/vovakirdan/qix-arcade/internal/platform/tui"
	"github.com/vovakirdan/qix-arcade/internal/registry"
	"github.com/vovakirdan/qix-arcade/internal/storage"
)

var (
	flagLogFile    string
	flagHoldWindow int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a session in the terminal.

Controls:
  Arrows/WASD  - Move along the border
  Z/Space      - Engage drawing mode
  X            - Engage fast drawing
  P            - Pause
  R            - Restart
  Ctrl+S       - Save a screenshot
  Esc/Q        - Quit

Drawing mode stays on for the rest of the session once engaged.

Examples:
  qix play
  qix play --config ./my-qix.yaml
  qix play --log-level debug --log-file /tmp/qix.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file while the TUI is running")
	playCmd.Flags().IntVar(&flagHoldWindow, "hold-ms", int(tui.DefaultHoldWindow.Milliseconds()), "How long a key counts as held after a press (ms)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	if _, err := loadConfig(); err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(qix.GameID)
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so logs go to a file or nowhere.
	var sessionLogger *log.Logger
	if flagLogFile != "" {
		f, err := openLogFile(flagLogFile)
		if err != nil {
			return err
		}
		defer f.Close()
		sessionLogger = log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			Prefix:          "qix",
			Level:           logger.GetLevel(),
		})
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open session database", "error", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	return tui.Run(game, cfg, tui.Options{
		Store:      store,
		Logger:     sessionLogger,
		HoldWindow: msDuration(flagHoldWindow),
	})
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, nil
}

func msDuration(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
