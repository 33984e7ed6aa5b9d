package camera

import "github.com/go-gl/mathgl/mgl32"

// InputState is the per-frame input a CameraController consumes.
// input.Tracker satisfies it.
type InputState interface {
	KeyDown(code int) bool
	ButtonDown(code int) bool
	FrameDelta() mgl32.Vec2
	Scroll() float32
}

// CameraController owns the camera's positional state and turns per-frame input into camera motion.
// It combines three control styles that may be active in the same frame: free-fly movement on the
// keyboard, cursor-driven look, and ALT-modified pan/orbit on the mouse.
// The controller is not safe for concurrent use; it is driven from the frame loop only.
type CameraController interface {
	freeFlyCameraController
	orbitCameraController
	planarCameraController

	// Update runs one frame of camera control. In order it captures the current look point, recomputes
	// the pan/orbit mode, applies cursor look, pan and orbit for the frame's cursor delta, applies scroll
	// to the speed, moves on the held direction keys, handles the ortho toggle key and the reset key.
	//
	// Parameters:
	//   - in: the frame's input state
	//   - dt: seconds since the previous frame
	Update(in InputState, dt float32)

	// Reset restores the initial camera: position (0,0,9) looking down -Z at the origin with an
	// orthonormal right/up basis derived from the world up axis.
	Reset()

	// UpdateMode recomputes the pan and orbit flags from the held keys and buttons.
	// Panning is LEFT_ALT with the middle button, orbiting is LEFT_ALT with the left button.
	// Neither flag latches across calls.
	//
	// Parameters:
	//   - in: the frame's input state
	UpdateMode(in InputState)

	// ViewMatrix returns lookAt(position, position+front, worldUp). It has no side effects.
	//
	// Returns:
	//   - mgl32.Mat4: the view matrix
	ViewMatrix() mgl32.Mat4

	// Target returns position+front and stores it as the controller's current target.
	//
	// Returns:
	//   - mgl32.Vec3: the look point
	Target() mgl32.Vec3

	// ToggleOrtho flips the orthographic projection flag.
	ToggleOrtho()

	// IsOrtho reports whether the orthographic projection is selected.
	IsOrtho() bool

	// IsPanning reports whether the last UpdateMode found the pan chord held.
	IsPanning() bool

	// IsOrbiting reports whether the last UpdateMode found the orbit chord held.
	IsOrbiting() bool

	// Position returns the camera's world-space position.
	Position() mgl32.Vec3

	// SetPosition sets the camera's world-space position directly.
	//
	// Parameters:
	//   - p: world-space position
	SetPosition(p mgl32.Vec3)

	// Front returns the look direction. It is only unit length when normalization is enabled.
	Front() mgl32.Vec3

	// SetFront sets the look direction directly.
	//
	// Parameters:
	//   - f: look direction
	SetFront(f mgl32.Vec3)

	// Right returns the camera's right axis as of the last Reset.
	Right() mgl32.Vec3

	// Up returns the camera's up axis as of the last Reset.
	Up() mgl32.Vec3

	// WorldUp returns the constant world up axis.
	WorldUp() mgl32.Vec3
}

// freeFlyCameraController defines keyboard movement and cursor look.
type freeFlyCameraController interface {
	// UpdateOrientation nudges the look direction by the cursor delta:
	// front.x += dx*sensitivity, front.y += dy*sensitivity.
	// The result is only renormalized when the controller was built WithNormalizedFront(true).
	//
	// Parameters:
	//   - delta: cursor delta (dx, dy)
	//   - sensitivity: multiplier applied to the delta
	UpdateOrientation(delta mgl32.Vec2, sensitivity float32)

	// Move steps the position by speed along front (W/S), right (A/D) and up (Q/E) for each held key.
	// The step is not scaled by dt: speed is a per-frame distance.
	//
	// Parameters:
	//   - in: the frame's input state
	//   - dt: seconds since the previous frame (unused by the step itself)
	Move(in InputState, dt float32)

	// AdjustSpeed adds scroll*dt to the movement speed and keeps it inside the speed bounds.
	//
	// Parameters:
	//   - scroll: vertical scroll offset
	//   - dt: seconds since the previous frame
	AdjustSpeed(scroll, dt float32)

	// Speed returns the movement speed.
	//
	// Returns:
	//   - float32: distance moved per frame for a held direction key
	Speed() float32

	// SetSpeed sets the movement speed directly, without clamping.
	//
	// Parameters:
	//   - speed: distance moved per frame
	SetSpeed(speed float32)

	// MinSpeed returns the lower speed bound.
	MinSpeed() float32

	// MaxSpeed returns the upper speed bound.
	MaxSpeed() float32

	// SetSpeedBounds replaces the speed bounds used by AdjustSpeed. The current speed is left as is.
	//
	// Parameters:
	//   - min: lower bound
	//   - max: upper bound
	SetSpeedBounds(min, max float32)

	// Sensitivity returns the cursor look multiplier.
	Sensitivity() float32

	// SetSensitivity sets the cursor look multiplier used by Update.
	//
	// Parameters:
	//   - sensitivity: multiplier applied to the cursor delta
	SetSensitivity(sensitivity float32)
}

// orbitCameraController defines orbit control around a pivot point using raw yaw/pitch accumulators.
type orbitCameraController interface {
	// Orbit accumulates the cursor delta into raw yaw and pitch and places the camera on the sphere of
	// the orbit radius around target. Pitch is clamped to (-pi/2+0.1, pi/2-0.1); yaw is not wrapped.
	// It is a no-op unless the controller is orbiting.
	//
	// Parameters:
	//   - delta: cursor delta (dx, dy)
	//   - target: pivot point
	Orbit(delta mgl32.Vec2, target mgl32.Vec3)

	// Radius returns the orbit radius.
	Radius() float32

	// SetRadius sets the orbit radius.
	//
	// Parameters:
	//   - radius: distance from the pivot
	SetRadius(radius float32)

	// RawYaw returns the accumulated yaw in raw units (degrees before conversion).
	RawYaw() float32

	// RawPitch returns the accumulated pitch in raw units (degrees before conversion and clamping).
	RawPitch() float32

	// Pitch returns the clamped pitch in radians as used by Orbit.
	Pitch() float32

	// Yaw returns the yaw in radians as used by Orbit.
	Yaw() float32
}

// planarCameraController defines mouse panning along the camera's right/up axes.
type planarCameraController interface {
	// Pan translates the camera by dx*dt along right and dy*dt along up. It is a no-op unless the
	// controller is panning. Before translating it forces front.z = 1 when position.z < 0 and
	// position.z = -1 otherwise. Pan leaves the movement speed set to dy*dt.
	//
	// Parameters:
	//   - delta: cursor delta (dx, dy)
	//   - dt: seconds since the previous frame
	Pan(delta mgl32.Vec2, dt float32)
}
