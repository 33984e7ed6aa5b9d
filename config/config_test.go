package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Window.Width != 640 || cfg.Window.Height != 480 {
		t.Errorf("window = %dx%d, want 640x480", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Projection.FovDegrees != 45 || cfg.Projection.Near != 0.1 || cfg.Projection.Far != 100 {
		t.Errorf("projection = %+v", cfg.Projection)
	}
	if cfg.Camera.Speed != 0.03 || cfg.Camera.Sensitivity != 0.005 || cfg.Camera.Radius != 3 {
		t.Errorf("camera = %+v", cfg.Camera)
	}
	if cfg.Camera.NormalizeFront || cfg.Camera.ClampBeforeAdd || cfg.Camera.LiteralOrthoToggle {
		t.Error("behavior switches should default off")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestParseOverridesKeepDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
window:
  width: 1280
  vsync: false
camera:
  sensitivity: 0.01
  clamp_before_add: true
profiler:
  enabled: true
  interval: 500ms
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Window.Width != 1280 || cfg.Window.Height != 480 || cfg.Window.VSync {
		t.Errorf("window = %+v", cfg.Window)
	}
	if cfg.Camera.Sensitivity != 0.01 || !cfg.Camera.ClampBeforeAdd || cfg.Camera.Speed != 0.03 {
		t.Errorf("camera = %+v", cfg.Camera)
	}
	if !cfg.Profiler.Enabled || cfg.Profiler.Interval != 500*time.Millisecond {
		t.Errorf("profiler = %+v", cfg.Profiler)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"zero width", func(c *Config) { c.Window.Width = 0 }, "window size"},
		{"near beyond far", func(c *Config) { c.Projection.Near = 200 }, "clip planes"},
		{"zero near", func(c *Config) { c.Projection.Near = 0 }, "clip planes"},
		{"flat fov", func(c *Config) { c.Projection.FovDegrees = 180 }, "fov_degrees"},
		{"ortho", func(c *Config) { c.Projection.OrthoHalfHeight = 0 }, "ortho_half_height"},
		{"speed bounds", func(c *Config) { c.Camera.MinSpeed = 1 }, "min_speed"},
		{"sensitivity", func(c *Config) { c.Camera.Sensitivity = -1 }, "sensitivity"},
		{"interval", func(c *Config) { c.Profiler.Interval = 0 }, "interval"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("err = %v, want ErrInvalid", err)
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("err = %q, want it to name %q", err, tt.field)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	if err := os.WriteFile(good, []byte("projection:\n  far: 50\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(good)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Projection.Far != 50 {
		t.Errorf("far = %v, want 50", cfg.Projection.Far)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file err = %v, want os.ErrNotExist", err)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("window:\n  height: -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); !errors.Is(err, ErrInvalid) {
		t.Errorf("invalid file err = %v, want ErrInvalid", err)
	}

	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("window: [1, 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(broken); err == nil || !strings.Contains(err.Error(), "unmarshal") {
		t.Errorf("broken file err = %v", err)
	}
}
