// qix is a terminal Qix-style marker game.
//
// Usage:
//
//	qix play                 - Play in the terminal
//	qix sim --script ...     - Run a scripted headless session
//	qix serve                - Start SSH server for remote play
//	qix sessions             - Show the session log
//	qix config               - Print the effective configuration
//	qix list                 - List available games
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible sessions
//	--db <path>         - Set database path (default: ~/.arcade/sessions.db)
//	--config <path>     - Use a custom qix.yaml
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/qix-arcade/internal/config"
	"github.com/vovakirdan/qix-arcade/internal/games/qix"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

// logger is configured from --log-level before any command runs.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "qix",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "qix",
	Short: "Qix - claim territory in your terminal",
	Long: `Qix is a terminal take on the arcade classic. Walk the border of the
playfield, then engage drawing mode to cut across the interior.

Available commands:
  play      - Play in the terminal
  sim       - Run a scripted headless session
  serve     - Start SSH server for remote play
  sessions  - View the session log
  config    - Print the effective configuration
  list      - Show all available games

Examples:
  qix play
  qix play --config ./my-qix.yaml
  qix sim --script "right:30,draw:1,up:20"
  qix serve --ssh :2222
  qix sessions`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		logger.SetLevel(level)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/sessions.db", "Path to session database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom qix config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(sessionsCmd)
}

// loadConfig loads the qix config and installs it for games created
// through the registry.
func loadConfig() (config.QixConfig, error) {
	cfg, err := config.LoadQix(flagConfig)
	if err != nil {
		return cfg, err
	}
	qix.SetConfig(cfg)
	logger.Debug("config loaded",
		"max_speed", cfg.Physics.MaxSpeed,
		"fast_multiplier", cfg.Physics.FastMultiplier,
	)
	return cfg, nil
}
