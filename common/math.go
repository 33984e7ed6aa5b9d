package common

import (
	"math"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

// WorldUp is the world-space up axis shared by the camera and the scene.
var WorldUp = mgl32.Vec3{0, 1, 0}

// Common rotation axes used when authoring placements.
var (
	AxisX = mgl32.Vec3{1, 0, 0}
	AxisY = mgl32.Vec3{0, 1, 0}
	AxisZ = mgl32.Vec3{0, 0, 1}
)

// clipCorrection remaps OpenGL clip-space depth [-1, 1] to the WebGPU depth range [0, 1]
// (z' = 0.5z + 0.5w). Stored column-major like every mgl32.Mat4.
var clipCorrection = mgl32.Mat4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 0.5, 0,
	0, 0, 0.5, 1,
}

// SliceToBytes converts any slice to a byte slice for GPU buffer uploads.
// Uses unsafe pointer operations to create a view into the original data.
// WARNING: The returned slice shares memory with the input - do not modify.
//
// Parameters:
//   - data: source slice of any type
//
// Returns:
//   - []byte: byte slice view of the input data, or nil if input is empty
func SliceToBytes[T any](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	var zero T
	size := unsafe.Sizeof(zero)
	totalBytes := int(size) * len(data)
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), totalBytes)
}

// Clamp limits v to the closed interval [lo, hi].
//
// Parameters:
//   - v: the value to clamp
//   - lo: lower bound
//   - hi: upper bound
//
// Returns:
//   - float32: v limited to [lo, hi]
func Clamp(v, lo, hi float32) float32 {
	return mgl32.Clamp(v, lo, hi)
}

// Radians converts an angle in degrees to radians.
//
// Parameters:
//   - degrees: angle in degrees
//
// Returns:
//   - float32: angle in radians
func Radians(degrees float32) float32 {
	return mgl32.DegToRad(degrees)
}

// Sin and Cos wrap the float64 math functions for float32 callers.
func Sin(a float32) float32 { return float32(math.Sin(float64(a))) }

func Cos(a float32) float32 { return float32(math.Cos(float64(a))) }

// LookAt creates a view matrix that positions and orients the camera.
// Mirrors glm::lookAt. When eye and center coincide the forward axis is undefined;
// the degenerate case yields a translation-only view so callers never see NaNs.
//
// Parameters:
//   - eye: camera position in world space
//   - center: target point the camera looks at
//   - up: up vector defining camera orientation (typically 0,1,0)
//
// Returns:
//   - mgl32.Mat4: the view matrix
func LookAt(eye, center, up mgl32.Vec3) mgl32.Mat4 {
	if eye.Sub(center).Len() == 0 {
		return mgl32.Translate3D(-eye[0], -eye[1], -eye[2])
	}
	return mgl32.LookAtV(eye, center, up)
}

// Perspective creates a right-handed perspective projection in WebGPU clip space.
//
// Parameters:
//   - fovY: vertical field of view in radians
//   - aspect: viewport aspect ratio (width/height)
//   - near: near clipping plane distance (must be > 0)
//   - far: far clipping plane distance (must be > near)
//
// Returns:
//   - mgl32.Mat4: the projection matrix
func Perspective(fovY, aspect, near, far float32) mgl32.Mat4 {
	return clipCorrection.Mul4(mgl32.Perspective(fovY, aspect, near, far))
}

// Ortho creates an orthographic projection in WebGPU clip space.
//
// Parameters:
//   - left, right, bottom, top: view volume extents
//   - near, far: clipping plane distances
//
// Returns:
//   - mgl32.Mat4: the projection matrix
func Ortho(left, right, bottom, top, near, far float32) mgl32.Mat4 {
	return clipCorrection.Mul4(mgl32.Ortho(left, right, bottom, top, near, far))
}

// ApproxEqual reports whether a and b differ by at most eps.
func ApproxEqual(a, b, eps float32) bool {
	return float32(math.Abs(float64(a-b))) <= eps
}
