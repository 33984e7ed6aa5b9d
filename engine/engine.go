package engine

import (
	"fmt"
	"log"
	"sync"

	"github.com/Carmen-Shannon/roomview/config"
	"github.com/Carmen-Shannon/roomview/engine/camera"
	"github.com/Carmen-Shannon/roomview/engine/input"
	"github.com/Carmen-Shannon/roomview/engine/profiler"
	"github.com/Carmen-Shannon/roomview/engine/renderer"
	"github.com/Carmen-Shannon/roomview/engine/scene"
	"github.com/Carmen-Shannon/roomview/engine/window"
)

// engine implements the Engine interface.
// Everything runs on the window's thread: the window invokes the frame callback once per
// message loop iteration.
type engine struct {
	quitOnce sync.Once

	window   window.Window
	renderer renderer.Renderer
	scene    scene.Scene
	camera   camera.Camera
	ctx      *RenderContext
	logger   *log.Logger

	profiler         *profiler.Profiler
	profilerOptions  []profiler.ProfilerOption
	profilingEnabled bool

	watcher *config.Watcher

	handles []renderer.DrawableHandle
	frames  uint64
}

// Engine is the main entry point of the viewer.
// It wires window input into the camera, uploads the compiled scene and drives the frame loop.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Context returns the per-frame render context.
	//
	// Returns:
	//   - *RenderContext: the context holding tracker, camera and clock
	Context() *RenderContext

	// Scene returns the compiled scene being drawn.
	//
	// Returns:
	//   - scene.Scene: the scene
	Scene() scene.Scene

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// Frame renders one frame. Run calls it from the window's update callback.
	//
	// Returns:
	//   - error: an error if the frame could not be drawn
	Frame() error

	// Run starts the main loop (blocks until the window closes), then releases GPU and window resources.
	Run()

	// Quit closes the window, ending Run. Safe to call multiple times.
	Quit()
}

// NewEngine creates a new Engine. A window and a renderer are required; the scene defaults to the
// compiled room and the camera to the default camera sized to the window.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
//   - error: an error if a required dependency is missing or the scene could not be uploaded
func NewEngine(options ...EngineBuilderOption) (Engine, error) {
	e := &engine{
		logger:           log.Default(),
		profilingEnabled: false,
	}
	for _, opt := range options {
		opt(e)
	}

	if e.window == nil {
		return nil, fmt.Errorf("engine: no window")
	}
	if e.renderer == nil {
		return nil, fmt.Errorf("engine: no renderer")
	}
	if e.scene == nil {
		s, err := scene.Build()
		if err != nil {
			return nil, fmt.Errorf("engine: build scene: %w", err)
		}
		e.scene = s
	}
	if e.camera == nil {
		e.camera = camera.NewCamera(camera.WithController(camera.NewCameraController()))
	}
	if h := e.window.Height(); h > 0 {
		e.camera.SetAspect(float32(e.window.Width()) / float32(h))
	}
	e.profiler = profiler.NewProfiler(append([]profiler.ProfilerOption{profiler.WithLogger(e.logger)}, e.profilerOptions...)...)
	e.ctx = NewRenderContext(e.camera, input.NewTracker(), e.logger)

	if err := e.upload(); err != nil {
		return nil, err
	}
	e.bindWindow()
	return e, nil
}

// upload sends every mesh and drawable of the scene to the renderer, keeping the draw order.
func (e *engine) upload() error {
	for _, m := range e.scene.Meshes() {
		if err := e.renderer.UploadMesh(m); err != nil {
			return fmt.Errorf("engine: %w", err)
		}
	}
	e.handles = make([]renderer.DrawableHandle, 0, e.scene.Count())
	for _, d := range e.scene.Drawables() {
		h, err := e.renderer.AddDrawable(d.Mesh, d.ModelData)
		if err != nil {
			return fmt.Errorf("engine: drawable %s: %w", d.Name, err)
		}
		e.handles = append(e.handles, h)
	}
	e.logger.Printf("[Engine] uploaded %d meshes, %d drawables", len(e.scene.Meshes()), len(e.handles))
	return nil
}

// bindWindow routes window events into the tracker and keeps the camera and surface sized to the framebuffer.
func (e *engine) bindWindow() {
	tracker := e.ctx.Tracker()
	e.window.SetKeyCallback(tracker.OnKey)
	e.window.SetMouseButtonCallback(tracker.OnMouseButton)
	e.window.SetCursorCallback(func(x, y float64) {
		tracker.OnCursorMove(float32(x), float32(y))
	})
	e.window.SetScrollCallback(func(xoff, yoff float64) {
		tracker.OnScroll(float32(xoff), float32(yoff))
	})
	e.window.SetResizeCallback(func(width, height int) {
		if width <= 0 || height <= 0 {
			return
		}
		e.renderer.Resize(width, height)
		e.camera.SetAspect(float32(width) / float32(height))
	})
	e.window.SetUpdateCallback(func() {
		if err := e.Frame(); err != nil {
			e.logger.Printf("[Engine] frame %d: %v", e.frames, err)
		}
	})
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Context() *RenderContext {
	return e.ctx
}

func (e *engine) Scene() scene.Scene {
	return e.scene
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

func (e *engine) Frame() error {
	e.frames++
	e.applyReloads()

	view, projection := e.ctx.Frame(e.window.Time())
	e.renderer.SetCamera(view, projection)

	if err := e.renderer.BeginFrame(); err != nil {
		return fmt.Errorf("begin frame: %w", err)
	}
	for _, h := range e.handles {
		if err := e.renderer.Draw(h); err != nil {
			e.renderer.EndFrame()
			return fmt.Errorf("draw: %w", err)
		}
	}
	e.renderer.EndFrame()
	e.renderer.Present()

	if e.profilingEnabled && e.profiler != nil {
		e.profiler.Tick()
	}
	return nil
}

// applyReloads drains the config watcher without blocking and retunes the controller.
func (e *engine) applyReloads() {
	if e.watcher == nil {
		return
	}
	for {
		select {
		case cfg := <-e.watcher.Reloads():
			applyCameraTuning(e.camera, cfg)
			e.logger.Printf("[Engine] configuration reloaded")
		case err := <-e.watcher.Errors():
			e.logger.Printf("[Engine] configuration reload failed: %v", err)
		default:
			return
		}
	}
}

func (e *engine) Run() {
	e.window.ProcessMessages()
	e.shutdown()
}

func (e *engine) Quit() {
	e.shutdown()
}

func (e *engine) shutdown() {
	e.quitOnce.Do(func() {
		if e.watcher != nil {
			_ = e.watcher.Close()
		}
		e.renderer.Release()
		if err := e.window.Close(); err != nil {
			e.logger.Printf("[Engine] close window: %v", err)
		}
		e.logger.Printf("[Engine] stopped after %d frames", e.frames)
	})
}
