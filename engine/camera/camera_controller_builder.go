package camera

import "github.com/go-gl/mathgl/mgl32"

// CameraControllerOption is a functional option for configuring a CameraController.
type CameraControllerOption func(*cameraControllerImpl)

// WithHome sets the position Reset returns the camera to.
//
// Parameters:
//   - p: world-space reset position
//
// Returns:
//   - CameraControllerOption: functional option to set the reset position
func WithHome(p mgl32.Vec3) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.home = p
	}
}

// WithSpeed sets the initial movement speed (distance per frame).
//
// Parameters:
//   - speed: initial speed
//
// Returns:
//   - CameraControllerOption: functional option to set the speed
func WithSpeed(speed float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.speed = speed
	}
}

// WithSpeedBounds sets the interval AdjustSpeed keeps the speed in.
//
// Parameters:
//   - min: lowest speed
//   - max: highest speed
//
// Returns:
//   - CameraControllerOption: functional option to set the speed bounds
func WithSpeedBounds(min, max float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.minSpeed = min
		cc.maxSpeed = max
	}
}

// WithSensitivity sets the cursor look multiplier.
//
// Parameters:
//   - sensitivity: multiplier for cursor deltas
//
// Returns:
//   - CameraControllerOption: functional option to set the sensitivity
func WithSensitivity(sensitivity float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.sensitivity = sensitivity
	}
}

// WithRadius sets the orbit radius (distance from the pivot).
//
// Parameters:
//   - radius: distance from the orbit target
//
// Returns:
//   - CameraControllerOption: functional option to set the radius
func WithRadius(radius float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.radius = radius
	}
}

// WithNormalizedFront renormalizes the look direction after every cursor look update.
// Off by default, in which case the look direction drifts away from unit length.
//
// Parameters:
//   - enabled: whether to renormalize
//
// Returns:
//   - CameraControllerOption: functional option to toggle normalization
func WithNormalizedFront(enabled bool) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.normalizeFront = enabled
	}
}

// WithClampBeforeAdd clamps the speed before adding the scroll step instead of after it.
// The speed may then leave its bounds for one adjustment.
//
// Parameters:
//   - enabled: whether to clamp before the add
//
// Returns:
//   - CameraControllerOption: functional option to select the clamp order
func WithClampBeforeAdd(enabled bool) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.clampBeforeAdd = enabled
	}
}

// WithLiteralOrthoToggle toggles the ortho flag on every frame the toggle key is held
// instead of once per press.
//
// Parameters:
//   - enabled: whether to toggle every held frame
//
// Returns:
//   - CameraControllerOption: functional option to select the toggle behavior
func WithLiteralOrthoToggle(enabled bool) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.literalOrthoToggle = enabled
	}
}
