// Package config provides YAML-based game configuration loading for the
// arcade platform.
package config

import (
	"errors"
	"fmt"
	"math"
)

// Validation errors returned by QixConfig.Validate.
var (
	ErrMaxSpeed       = errors.New("physics.max_speed must be positive and finite")
	ErrFastMultiplier = errors.New("physics.fast_multiplier must be finite and at least 1")
	ErrField          = errors.New("field must be finite with min <= max on both axes")
)

// QixConfig contains all configuration for the Qix marker game.
type QixConfig struct {
	Physics QixPhysics `yaml:"physics"`
	Field   QixField   `yaml:"field"`
}

// QixPhysics defines marker speed parameters, in field units per second.
type QixPhysics struct {
	MaxSpeed       float64 `yaml:"max_speed"`
	FastMultiplier float64 `yaml:"fast_multiplier"`
}

// QixField defines the initial boundary rectangle in normalized field coordinates.
type QixField struct {
	MinX float64 `yaml:"min_x"`
	MinY float64 `yaml:"min_y"`
	MaxX float64 `yaml:"max_x"`
	MaxY float64 `yaml:"max_y"`
}

// Validate checks the config for values the simulation cannot run with.
func (c QixConfig) Validate() error {
	p := c.Physics
	if !finite(p.MaxSpeed) || p.MaxSpeed <= 0 {
		return fmt.Errorf("config: %w (got %v)", ErrMaxSpeed, p.MaxSpeed)
	}
	if !finite(p.FastMultiplier) || p.FastMultiplier < 1 {
		return fmt.Errorf("config: %w (got %v)", ErrFastMultiplier, p.FastMultiplier)
	}

	f := c.Field
	if !finite(f.MinX) || !finite(f.MinY) || !finite(f.MaxX) || !finite(f.MaxY) ||
		f.MinX > f.MaxX || f.MinY > f.MaxY {
		return fmt.Errorf("config: %w (got %+v)", ErrField, f)
	}
	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
