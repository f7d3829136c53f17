package config

import (
	_ "embed"
)

//go:embed defaults/qix.yaml
var defaultQixYAML []byte

// DefaultQixConfig returns the default Qix configuration.
func DefaultQixConfig() QixConfig {
	return QixConfig{
		Physics: QixPhysics{
			MaxSpeed:       0.5,
			FastMultiplier: 1.5,
		},
		Field: QixField{
			MinX: 0,
			MinY: 0,
			MaxX: 1,
			MaxY: 1,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "qix":
		return defaultQixYAML
	default:
		return nil
	}
}
