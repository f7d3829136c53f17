package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/qix-arcade/internal/games/qix"
	"github.com/vovakirdan/qix-arcade/internal/platform/tui"
	"github.com/vovakirdan/qix-arcade/internal/storage"
)

var (
	flagPlain bool
	flagClear bool
	flagLimit int
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "View the session log",
	Long: `Show recorded sessions, newest first.

Examples:
  qix sessions
  qix sessions --plain --limit 5
  qix sessions --clear`,
	Args: cobra.NoArgs,
	RunE: runSessions,
}

func init() {
	sessionsCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain list instead of the interactive table")
	sessionsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded sessions")
	sessionsCmd.Flags().IntVar(&flagLimit, "limit", 20, "Number of sessions for --plain")
}

func runSessions(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearSessions(qix.GameID); err != nil {
			return err
		}
		logger.Info("session log cleared", "db", flagDBPath)
		return nil
	}

	isTTY := term.IsTerminal(int(os.Stdout.Fd()))
	if flagPlain || !isTTY {
		return printSessions(store)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	return tui.RunSessions(store, qix.GameID, "Qix", width, height)
}

func printSessions(store *storage.Store) error {
	sessions, err := store.RecentSessions(qix.GameID, flagLimit)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		return nil
	}

	fmt.Printf("%-6s %-12s %7s %9s %-13s %8s  %s\n", "ID", "PLAYER", "TICKS", "DISTANCE", "MODE", "TIME", "DATE")
	for _, s := range sessions {
		fmt.Printf("%-6d %-12s %7d %9.2f %-13s %7.1fs  %s\n",
			s.ID, s.Player, s.Ticks, s.Distance, s.FinalMode, s.Duration, s.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
