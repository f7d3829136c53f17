package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

// isolate points HOME and the working directory at empty temp dirs so the
// search order only sees files the test creates.
func isolate(t *testing.T) (home, wd string) {
	t.Helper()
	home = t.TempDir()
	wd = t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(wd)
	return home, wd
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll() failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
}

func TestLoadQixEmbeddedDefault(t *testing.T) {
	isolate(t)

	cfg, err := LoadQix("")
	if err != nil {
		t.Fatalf("LoadQix() failed: %v", err)
	}
	if cfg != DefaultQixConfig() {
		t.Errorf("embedded config = %+v, expected %+v", cfg, DefaultQixConfig())
	}
}

func TestLoadQixCustomPath(t *testing.T) {
	_, wd := isolate(t)
	path := filepath.Join(wd, "custom.yaml")
	writeFile(t, path, "physics:\n  max_speed: 0.8\n")

	cfg, err := LoadQix(path)
	if err != nil {
		t.Fatalf("LoadQix() failed: %v", err)
	}
	if cfg.Physics.MaxSpeed != 0.8 {
		t.Errorf("MaxSpeed = %f, expected 0.8", cfg.Physics.MaxSpeed)
	}
	// Missing keys keep defaults
	if cfg.Physics.FastMultiplier != 1.5 {
		t.Errorf("FastMultiplier = %f, expected default 1.5", cfg.Physics.FastMultiplier)
	}
	if cfg.Field.MaxX != 1 || cfg.Field.MaxY != 1 {
		t.Errorf("Field = %+v, expected unit square", cfg.Field)
	}
}

func TestLoadQixCustomPathMissing(t *testing.T) {
	isolate(t)

	if _, err := LoadQix("/nonexistent/qix.yaml"); err == nil {
		t.Error("LoadQix() with missing custom path should fail")
	}
}

func TestLoadQixSearchOrder(t *testing.T) {
	home, wd := isolate(t)

	// Local file only
	writeFile(t, filepath.Join(wd, "configs", "qix.yaml"), "physics:\n  max_speed: 0.3\n")
	cfg, err := LoadQix("")
	if err != nil {
		t.Fatalf("LoadQix() failed: %v", err)
	}
	if cfg.Physics.MaxSpeed != 0.3 {
		t.Errorf("local config not used, MaxSpeed = %f", cfg.Physics.MaxSpeed)
	}

	// User file takes precedence over local
	writeFile(t, filepath.Join(home, ".arcade", "configs", "qix.yaml"), "physics:\n  max_speed: 0.7\n")
	cfg, err = LoadQix("")
	if err != nil {
		t.Fatalf("LoadQix() failed: %v", err)
	}
	if cfg.Physics.MaxSpeed != 0.7 {
		t.Errorf("user config not preferred, MaxSpeed = %f", cfg.Physics.MaxSpeed)
	}
}

func TestLoadQixBrokenUserFileFallsThrough(t *testing.T) {
	home, _ := isolate(t)
	writeFile(t, filepath.Join(home, ".arcade", "configs", "qix.yaml"), "physics: [not, a, map")

	cfg, err := LoadQix("")
	if err != nil {
		t.Fatalf("LoadQix() failed: %v", err)
	}
	if cfg != DefaultQixConfig() {
		t.Errorf("broken user file should fall back to defaults, got %+v", cfg)
	}
}

func TestLoadQixRejectsInvalid(t *testing.T) {
	_, wd := isolate(t)
	path := filepath.Join(wd, "bad.yaml")
	writeFile(t, path, "field:\n  min_x: 0.8\n  max_x: 0.2\n")

	_, err := LoadQix(path)
	if !errors.Is(err, ErrField) {
		t.Errorf("LoadQix() error = %v, expected ErrField", err)
	}
}

func TestQixConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*QixConfig)
		want   error
	}{
		{"defaults", func(*QixConfig) {}, nil},
		{"zero speed", func(c *QixConfig) { c.Physics.MaxSpeed = 0 }, ErrMaxSpeed},
		{"NaN speed", func(c *QixConfig) { c.Physics.MaxSpeed = math.NaN() }, ErrMaxSpeed},
		{"multiplier below one", func(c *QixConfig) { c.Physics.FastMultiplier = 0.5 }, ErrFastMultiplier},
		{"multiplier exactly one", func(c *QixConfig) { c.Physics.FastMultiplier = 1 }, nil},
		{"inverted y", func(c *QixConfig) { c.Field.MinY = 2 }, ErrField},
		{"infinite field", func(c *QixConfig) { c.Field.MaxX = math.Inf(1) }, ErrField},
		{"degenerate field", func(c *QixConfig) { c.Field.MinX, c.Field.MaxX = 0.5, 0.5 }, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultQixConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.want == nil {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if !errors.Is(err, tc.want) {
				t.Errorf("Validate() = %v, expected %v", err, tc.want)
			}
		})
	}
}

func TestParseQix(t *testing.T) {
	cfg, err := ParseQix(GetDefaultYAML("qix"))
	if err != nil {
		t.Fatalf("ParseQix(default) failed: %v", err)
	}
	if cfg != DefaultQixConfig() {
		t.Errorf("embedded YAML %+v differs from hardcoded defaults %+v", cfg, DefaultQixConfig())
	}

	if GetDefaultYAML("unknown") != nil {
		t.Error("GetDefaultYAML for unknown game should be nil")
	}
}
