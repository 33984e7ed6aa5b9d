package engine

import (
	"log"
	"time"

	"github.com/Carmen-Shannon/roomview/config"
	"github.com/Carmen-Shannon/roomview/engine/camera"
	"github.com/Carmen-Shannon/roomview/engine/profiler"
	"github.com/Carmen-Shannon/roomview/engine/renderer"
	"github.com/Carmen-Shannon/roomview/engine/scene"
	"github.com/Carmen-Shannon/roomview/engine/window"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithProfilerInterval sets how often the profiler logs a report.
//
// Parameters:
//   - d: reporting interval
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfilerInterval(d time.Duration) EngineBuilderOption {
	return func(e *engine) {
		e.profilerOptions = append(e.profilerOptions, profiler.WithInterval(d))
	}
}

// WithWindow sets the window the engine reads input from and presents to.
//
// Parameters:
//   - w: a spawned Window instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithRenderer sets the renderer the scene is uploaded to and drawn with.
//
// Parameters:
//   - r: a renderer bound to the engine's window
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderer(r renderer.Renderer) EngineBuilderOption {
	return func(e *engine) {
		e.renderer = r
	}
}

// WithScene replaces the compiled room with another compiled scene.
//
// Parameters:
//   - s: the scene to draw
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithScene(s scene.Scene) EngineBuilderOption {
	return func(e *engine) {
		e.scene = s
	}
}

// WithCamera sets the camera. A camera without a controller gets the default controller.
//
// Parameters:
//   - c: the camera
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithCamera(c camera.Camera) EngineBuilderOption {
	return func(e *engine) {
		e.camera = c
	}
}

// WithLogger sets the logger used for engine and profiler messages. Defaults to the standard logger.
//
// Parameters:
//   - l: destination logger
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithLogger(l *log.Logger) EngineBuilderOption {
	return func(e *engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithConfig builds the camera and profiler settings from a configuration.
//
// Parameters:
//   - cfg: a validated configuration
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithConfig(cfg *config.Config) EngineBuilderOption {
	return func(e *engine) {
		e.camera = CameraFromConfig(cfg)
		e.profilingEnabled = cfg.Profiler.Enabled
		e.profilerOptions = append(e.profilerOptions, profiler.WithInterval(cfg.Profiler.Interval))
	}
}

// WithConfigWatcher applies configuration reloads to the camera tuning between frames.
// The engine closes the watcher when it stops.
//
// Parameters:
//   - w: a running watcher
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithConfigWatcher(w *config.Watcher) EngineBuilderOption {
	return func(e *engine) {
		e.watcher = w
	}
}
