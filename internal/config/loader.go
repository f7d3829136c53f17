package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadQix loads Qix configuration.
// Search order: customPath -> ~/.arcade/configs/qix.yaml -> ./configs/qix.yaml -> embedded default.
// Keys missing from a file keep their default values.
func LoadQix(customPath string) (QixConfig, error) {
	cfg, err := loadYAML("qix.yaml", customPath, defaultQixYAML, DefaultQixConfig())
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ParseQix decodes a Qix config from YAML bytes on top of the defaults.
func ParseQix(data []byte) (QixConfig, error) {
	cfg := DefaultQixConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse: %w", err)
	}
	return cfg, cfg.Validate()
}

// loadYAML resolves a config file by the platform search order and decodes it
// on top of defaults. Only a failing custom path is an error; broken user or
// local files fall through to the next candidate.
func loadYAML[T any](filename, customPath string, embedded []byte, defaults T) (T, error) {
	if customPath != "" {
		cfg := defaults
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{
		userConfigPath(filename),
		filepath.Join("configs", filename),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg := defaults
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	cfg := defaults
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return defaults, nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
