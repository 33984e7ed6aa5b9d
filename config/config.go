// Package config loads the viewer settings from YAML. Every field has a default, so a file only
// needs the values it changes.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("config: invalid")

// Config is the complete viewer configuration.
type Config struct {
	Window     Window     `yaml:"window"`
	Camera     Camera     `yaml:"camera"`
	Projection Projection `yaml:"projection"`
	Profiler   Profiler   `yaml:"profiler"`
}

// Window configures the window and the presentation surface.
type Window struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	VSync  bool   `yaml:"vsync"`
	MSAA   bool   `yaml:"msaa"`
}

// Camera tunes the camera controller.
type Camera struct {
	Speed              float32 `yaml:"speed"`
	MinSpeed           float32 `yaml:"min_speed"`
	MaxSpeed           float32 `yaml:"max_speed"`
	Sensitivity        float32 `yaml:"sensitivity"`
	Radius             float32 `yaml:"radius"`
	NormalizeFront     bool    `yaml:"normalize_front"`
	ClampBeforeAdd     bool    `yaml:"clamp_before_add"`
	LiteralOrthoToggle bool    `yaml:"literal_ortho_toggle"`
}

// Projection configures both projection matrices.
type Projection struct {
	FovDegrees      float32 `yaml:"fov_degrees"`
	Near            float32 `yaml:"near"`
	Far             float32 `yaml:"far"`
	OrthoHalfHeight float32 `yaml:"ortho_half_height"`
}

// Profiler configures the frame statistics logger.
type Profiler struct {
	Enabled  bool          `yaml:"enabled"`
	Interval time.Duration `yaml:"interval"`
}

// Default returns the configuration the viewer runs with when no file is given.
//
// Returns:
//   - *Config: a new default configuration
func Default() *Config {
	return &Config{
		Window: Window{
			Title:  "roomview",
			Width:  640,
			Height: 480,
			VSync:  true,
			MSAA:   true,
		},
		Camera: Camera{
			Speed:       0.03,
			MinSpeed:    0.01,
			MaxSpeed:    0.3,
			Sensitivity: 0.005,
			Radius:      3,
		},
		Projection: Projection{
			FovDegrees:      45,
			Near:            0.1,
			Far:             100,
			OrthoHalfHeight: 8,
		},
		Profiler: Profiler{
			Enabled:  false,
			Interval: time.Second,
		},
	}
}

// Parse decodes YAML over the defaults and validates the result.
//
// Parameters:
//   - data: YAML document
//
// Returns:
//   - *Config: the decoded configuration
//   - error: a wrapped decode error or ErrInvalid
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads and parses a YAML configuration file.
//
// Parameters:
//   - path: the file to read
//
// Returns:
//   - *Config: the decoded configuration
//   - error: a wrapped read or decode error, or ErrInvalid
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: load %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the ranges the renderer and camera depend on.
//
// Returns:
//   - error: nil, or an error wrapping ErrInvalid naming the first bad field
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Projection.FovDegrees <= 0 || c.Projection.FovDegrees >= 180:
		return fmt.Errorf("%w: fov_degrees %v outside (0, 180)", ErrInvalid, c.Projection.FovDegrees)
	case c.Projection.Near <= 0 || c.Projection.Near >= c.Projection.Far:
		return fmt.Errorf("%w: clip planes near=%v far=%v", ErrInvalid, c.Projection.Near, c.Projection.Far)
	case c.Projection.OrthoHalfHeight <= 0:
		return fmt.Errorf("%w: ortho_half_height %v", ErrInvalid, c.Projection.OrthoHalfHeight)
	case c.Camera.MinSpeed > c.Camera.MaxSpeed:
		return fmt.Errorf("%w: min_speed %v > max_speed %v", ErrInvalid, c.Camera.MinSpeed, c.Camera.MaxSpeed)
	case c.Camera.Sensitivity < 0:
		return fmt.Errorf("%w: sensitivity %v", ErrInvalid, c.Camera.Sensitivity)
	case c.Profiler.Interval <= 0:
		return fmt.Errorf("%w: profiler interval %v", ErrInvalid, c.Profiler.Interval)
	}
	return nil
}
