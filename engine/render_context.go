package engine

import (
	"log"

	"github.com/Carmen-Shannon/roomview/common"
	"github.com/Carmen-Shannon/roomview/engine/camera"
	"github.com/Carmen-Shannon/roomview/engine/clock"
	"github.com/Carmen-Shannon/roomview/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

// RenderContext owns the per-frame state of the viewer: the input tracker, the camera with its
// controller, and the frame clock. It runs entirely on the frame loop's thread.
type RenderContext struct {
	tracker input.Tracker
	camera  camera.Camera
	clock   *clock.FrameClock
	logger  *log.Logger

	resetHeld bool
}

// NewRenderContext creates a RenderContext around a camera.
// A camera without a controller gets a default one. A nil tracker creates a fresh one; a nil
// logger uses the standard logger.
//
// Parameters:
//   - cam: the camera, with its controller attached
//   - tracker: the input tracker fed by the window callbacks
//   - logger: destination for mode change messages
//
// Returns:
//   - *RenderContext: the new context
func NewRenderContext(cam camera.Camera, tracker input.Tracker, logger *log.Logger) *RenderContext {
	if cam.Controller() == nil {
		cam.SetController(camera.NewCameraController())
	}
	if tracker == nil {
		tracker = input.NewTracker()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &RenderContext{
		tracker: tracker,
		camera:  cam,
		clock:   clock.NewFrameClock(),
		logger:  logger,
	}
}

// Tracker returns the input tracker.
func (rc *RenderContext) Tracker() input.Tracker {
	return rc.tracker
}

// Camera returns the camera.
func (rc *RenderContext) Camera() camera.Camera {
	return rc.camera
}

// Clock returns the frame clock.
func (rc *RenderContext) Clock() *clock.FrameClock {
	return rc.clock
}

// Frame advances one frame: it measures the frame time, applies the accumulated input to the
// controller, rebuilds the camera matrices and clears the per-frame input accumulators.
//
// Parameters:
//   - now: the frame time in seconds
//
// Returns:
//   - mgl32.Mat4: the view matrix for this frame
//   - mgl32.Mat4: the projection matrix for this frame
func (rc *RenderContext) Frame(now float64) (mgl32.Mat4, mgl32.Mat4) {
	dt := rc.clock.Tick(now)
	ctrl := rc.camera.Controller()

	wasOrtho := ctrl.IsOrtho()
	ctrl.Update(rc.tracker, dt)

	if ctrl.IsOrtho() != wasOrtho {
		if ctrl.IsOrtho() {
			rc.logger.Printf("[Engine] orthographic projection on")
		} else {
			rc.logger.Printf("[Engine] orthographic projection off")
		}
	}
	resetHeld := rc.tracker.KeyDown(common.KeyF)
	if resetHeld && !rc.resetHeld {
		p := ctrl.Position()
		rc.logger.Printf("[Engine] camera reset to (%.2f, %.2f, %.2f)", p[0], p[1], p[2])
	}
	rc.resetHeld = resetHeld

	rc.camera.Update()
	rc.tracker.EndFrame()

	return rc.camera.ViewMatrix(), rc.camera.ProjectionMatrix()
}
