package engine

import (
	"github.com/Carmen-Shannon/roomview/common"
	"github.com/Carmen-Shannon/roomview/config"
	"github.com/Carmen-Shannon/roomview/engine/camera"
)

// CameraFromConfig builds a camera and its controller from a configuration.
//
// Parameters:
//   - cfg: a validated configuration
//
// Returns:
//   - camera.Camera: the camera with its controller attached
func CameraFromConfig(cfg *config.Config) camera.Camera {
	ctrl := camera.NewCameraController(
		camera.WithSpeed(cfg.Camera.Speed),
		camera.WithSpeedBounds(cfg.Camera.MinSpeed, cfg.Camera.MaxSpeed),
		camera.WithSensitivity(cfg.Camera.Sensitivity),
		camera.WithRadius(cfg.Camera.Radius),
		camera.WithNormalizedFront(cfg.Camera.NormalizeFront),
		camera.WithClampBeforeAdd(cfg.Camera.ClampBeforeAdd),
		camera.WithLiteralOrthoToggle(cfg.Camera.LiteralOrthoToggle),
	)
	return camera.NewCamera(
		camera.WithFov(common.Radians(cfg.Projection.FovDegrees)),
		camera.WithAspect(float32(cfg.Window.Width)/float32(cfg.Window.Height)),
		camera.WithClipPlanes(cfg.Projection.Near, cfg.Projection.Far),
		camera.WithOrthoHalfHeight(cfg.Projection.OrthoHalfHeight),
		camera.WithController(ctrl),
	)
}

// applyCameraTuning applies the settings that can change while running. Speed is only clamped
// into the new bounds; position and orientation are untouched.
func applyCameraTuning(cam camera.Camera, cfg *config.Config) {
	ctrl := cam.Controller()
	ctrl.SetSensitivity(cfg.Camera.Sensitivity)
	ctrl.SetRadius(cfg.Camera.Radius)
	ctrl.SetSpeedBounds(cfg.Camera.MinSpeed, cfg.Camera.MaxSpeed)
	ctrl.SetSpeed(common.Clamp(ctrl.Speed(), cfg.Camera.MinSpeed, cfg.Camera.MaxSpeed))

	cam.SetFov(common.Radians(cfg.Projection.FovDegrees))
}
