package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/qix-arcade/internal/config"
	"github.com/vovakirdan/qix-arcade/internal/games/qix"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a session would use, after the search order
(--config, ~/.arcade/configs/qix.yaml, ./configs/qix.yaml, embedded
defaults) has been applied.

Examples:
  qix config
  qix config --defaults > ~/.arcade/configs/qix.yaml
  qix config --config ./my-qix.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the embedded default file instead")
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagDefaults {
		_, err := os.Stdout.Write(config.GetDefaultYAML(qix.GameID))
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	_, err = os.Stdout.Write(out)
	return err
}
