package camera

import (
	"math"

	"github.com/Carmen-Shannon/roomview/common"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// pitchLimit keeps the orbit camera off the poles where yaw collapses.
	pitchLimit = float32(math.Pi/2 - 0.1)

	defaultSpeed       = 0.03
	defaultMinSpeed    = 0.01
	defaultMaxSpeed    = 0.3
	defaultSensitivity = 0.005
	defaultRadius      = 3.0
)

var (
	defaultHome   = mgl32.Vec3{0, 0, 9}
	defaultCenter = mgl32.Vec3{0, 0, 0}
	defaultFront  = mgl32.Vec3{0, 0, -1}
)

// cameraControllerImpl is the single implementation of CameraController.
type cameraControllerImpl struct {
	position mgl32.Vec3
	front    mgl32.Vec3
	right    mgl32.Vec3
	up       mgl32.Vec3
	worldUp  mgl32.Vec3
	target   mgl32.Vec3

	// Reset state
	home   mgl32.Vec3
	center mgl32.Vec3

	// Orbit
	radius   float32
	rawYaw   float32
	rawPitch float32

	speed       float32
	minSpeed    float32
	maxSpeed    float32
	sensitivity float32

	isPanning  bool
	isOrbiting bool
	isOrtho    bool

	orthoKeyHeld bool

	normalizeFront     bool
	clampBeforeAdd     bool
	literalOrthoToggle bool
}

// Compile-time interface compliance check
var _ CameraController = &cameraControllerImpl{}

// NewCameraController creates a camera controller in its reset pose:
// at (0,0,9) looking down -Z with speed 0.03, sensitivity 0.005 and orbit radius 3.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewCameraController(options ...CameraControllerOption) CameraController {
	cc := &cameraControllerImpl{
		home:        defaultHome,
		center:      defaultCenter,
		radius:      defaultRadius,
		speed:       defaultSpeed,
		minSpeed:    defaultMinSpeed,
		maxSpeed:    defaultMaxSpeed,
		sensitivity: defaultSensitivity,
	}

	for _, option := range options {
		option(cc)
	}

	cc.Reset()
	return cc
}

func (cc *cameraControllerImpl) Update(in InputState, dt float32) {
	target := cc.position.Add(cc.front)

	cc.UpdateMode(in)

	if d := in.FrameDelta(); d != (mgl32.Vec2{}) {
		cc.UpdateOrientation(d, cc.sensitivity)
		cc.Pan(d, dt)
		cc.Orbit(d, target)
	}

	if scroll := in.Scroll(); scroll != 0 {
		cc.AdjustSpeed(scroll, dt)
	}

	cc.Move(in, dt)

	held := in.KeyDown(common.KeyP)
	if held && (cc.literalOrthoToggle || !cc.orthoKeyHeld) {
		cc.ToggleOrtho()
	}
	cc.orthoKeyHeld = held

	if in.KeyDown(common.KeyF) {
		cc.Reset()
	}
}

func (cc *cameraControllerImpl) Reset() {
	cc.position = cc.home
	cc.target = cc.center
	cc.worldUp = common.WorldUp

	direction := cc.position.Sub(cc.target).Normalize()
	cc.right = cc.worldUp.Cross(direction).Normalize()
	cc.up = direction.Cross(cc.right).Normalize()
	cc.front = defaultFront.Normalize()
}

func (cc *cameraControllerImpl) UpdateMode(in InputState) {
	alt := in.KeyDown(common.KeyLeftAlt)
	cc.isPanning = alt && in.ButtonDown(common.MouseButtonMiddle)
	cc.isOrbiting = alt && in.ButtonDown(common.MouseButtonLeft)
}

func (cc *cameraControllerImpl) UpdateOrientation(delta mgl32.Vec2, sensitivity float32) {
	cc.front[0] += delta[0] * sensitivity
	cc.front[1] += delta[1] * sensitivity
	if cc.normalizeFront && cc.front.Len() > 0 {
		cc.front = cc.front.Normalize()
	}
}

func (cc *cameraControllerImpl) Pan(delta mgl32.Vec2, dt float32) {
	if !cc.isPanning {
		return
	}

	if cc.position[2] < 0 {
		cc.front[2] = 1
	} else {
		cc.position[2] = -1
	}

	cc.speed = delta[0] * dt
	cc.position = cc.position.Add(cc.right.Mul(cc.speed))

	cc.speed = delta[1] * dt
	cc.position = cc.position.Add(cc.up.Mul(cc.speed))
}

func (cc *cameraControllerImpl) Orbit(delta mgl32.Vec2, target mgl32.Vec3) {
	if !cc.isOrbiting {
		return
	}

	cc.rawYaw += delta[0]
	cc.rawPitch += delta[1]

	yaw := cc.Yaw()
	pitch := cc.Pitch()

	cc.position = mgl32.Vec3{
		target[0] + cc.radius*common.Cos(pitch)*common.Sin(yaw),
		target[1] + cc.radius*common.Sin(pitch),
		target[2] + cc.radius*common.Cos(pitch)*common.Cos(yaw),
	}
}

func (cc *cameraControllerImpl) Move(in InputState, dt float32) {
	step := func(code int, axis mgl32.Vec3, sign float32) {
		if in.KeyDown(code) {
			cc.position = cc.position.Add(axis.Mul(sign * cc.speed))
		}
	}

	step(common.KeyW, cc.front, 1)
	step(common.KeyA, cc.right, -1)
	step(common.KeyS, cc.front, -1)
	step(common.KeyD, cc.right, 1)
	step(common.KeyQ, cc.up, 1)
	step(common.KeyE, cc.up, -1)
}

func (cc *cameraControllerImpl) AdjustSpeed(scroll, dt float32) {
	if cc.clampBeforeAdd {
		cc.speed = common.Clamp(cc.speed, cc.minSpeed, cc.maxSpeed)
		cc.speed += scroll * dt
		return
	}
	cc.speed = common.Clamp(cc.speed+scroll*dt, cc.minSpeed, cc.maxSpeed)
}

func (cc *cameraControllerImpl) ToggleOrtho() {
	cc.isOrtho = !cc.isOrtho
}

func (cc *cameraControllerImpl) ViewMatrix() mgl32.Mat4 {
	return common.LookAt(cc.position, cc.position.Add(cc.front), cc.worldUp)
}

func (cc *cameraControllerImpl) Target() mgl32.Vec3 {
	cc.target = cc.position.Add(cc.front)
	return cc.target
}

func (cc *cameraControllerImpl) IsOrtho() bool {
	return cc.isOrtho
}

func (cc *cameraControllerImpl) IsPanning() bool {
	return cc.isPanning
}

func (cc *cameraControllerImpl) IsOrbiting() bool {
	return cc.isOrbiting
}

func (cc *cameraControllerImpl) Position() mgl32.Vec3 {
	return cc.position
}

func (cc *cameraControllerImpl) SetPosition(p mgl32.Vec3) {
	cc.position = p
}

func (cc *cameraControllerImpl) Front() mgl32.Vec3 {
	return cc.front
}

func (cc *cameraControllerImpl) SetFront(f mgl32.Vec3) {
	cc.front = f
}

func (cc *cameraControllerImpl) Right() mgl32.Vec3 {
	return cc.right
}

func (cc *cameraControllerImpl) Up() mgl32.Vec3 {
	return cc.up
}

func (cc *cameraControllerImpl) WorldUp() mgl32.Vec3 {
	return cc.worldUp
}

func (cc *cameraControllerImpl) Speed() float32 {
	return cc.speed
}

func (cc *cameraControllerImpl) SetSpeed(speed float32) {
	cc.speed = speed
}

func (cc *cameraControllerImpl) MinSpeed() float32 {
	return cc.minSpeed
}

func (cc *cameraControllerImpl) MaxSpeed() float32 {
	return cc.maxSpeed
}

func (cc *cameraControllerImpl) SetSpeedBounds(min, max float32) {
	cc.minSpeed = min
	cc.maxSpeed = max
}

func (cc *cameraControllerImpl) Sensitivity() float32 {
	return cc.sensitivity
}

func (cc *cameraControllerImpl) SetSensitivity(sensitivity float32) {
	cc.sensitivity = sensitivity
}

func (cc *cameraControllerImpl) Radius() float32 {
	return cc.radius
}

func (cc *cameraControllerImpl) SetRadius(radius float32) {
	cc.radius = radius
}

func (cc *cameraControllerImpl) RawYaw() float32 {
	return cc.rawYaw
}

func (cc *cameraControllerImpl) RawPitch() float32 {
	return cc.rawPitch
}

func (cc *cameraControllerImpl) Pitch() float32 {
	return common.Clamp(common.Radians(cc.rawPitch), -pitchLimit, pitchLimit)
}

func (cc *cameraControllerImpl) Yaw() float32 {
	return common.Radians(cc.rawYaw)
}
