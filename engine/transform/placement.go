// package transform builds model matrices for scene drawables.
//
// Every model matrix is composed from the identity as translate, then up to two axis rotations in
// declaration order, then an optional uniform or per-axis scale: M = T * R1 * R2 * S. Each rotation
// turns the object about its own origin after it has been placed.
package transform

import (
	"github.com/Carmen-Shannon/roomview/common"
	"github.com/go-gl/mathgl/mgl32"
)

// MaxRotations is the number of axis rotations a Placement may carry.
const MaxRotations = 2

// Rotation is a single rotation by an angle in degrees about an axis.
type Rotation struct {
	AngleDegrees float32
	Axis         mgl32.Vec3
}

// Matrix returns the rotation as a homogeneous 4x4 matrix.
// A zero angle or a zero axis yields the identity.
//
// Returns:
//   - mgl32.Mat4: the rotation matrix
func (r Rotation) Matrix() mgl32.Mat4 {
	if r.AngleDegrees == 0 || r.Axis.Len() == 0 {
		return mgl32.Ident4()
	}
	return mgl32.HomogRotate3D(common.Radians(r.AngleDegrees), r.Axis.Normalize())
}

// Placement describes where one drawable sits in the world.
// The zero value is the identity placement.
type Placement struct {
	Position  mgl32.Vec3
	Rotations []Rotation
	// Scale is applied last. A zero vector means no scale.
	Scale mgl32.Vec3
}

// At starts a placement translated to (x, y, z).
//
// Parameters:
//   - x, y, z: world-space position
//
// Returns:
//   - Placement: the placement
func At(x, y, z float32) Placement {
	return Placement{Position: mgl32.Vec3{x, y, z}}
}

// Rotate appends a rotation by degrees about axis. Rotations beyond MaxRotations are dropped.
//
// Parameters:
//   - degrees: rotation angle in degrees
//   - axis: rotation axis
//
// Returns:
//   - Placement: the placement with the rotation appended
func (p Placement) Rotate(degrees float32, axis mgl32.Vec3) Placement {
	if len(p.Rotations) >= MaxRotations {
		return p
	}
	rotations := make([]Rotation, len(p.Rotations), len(p.Rotations)+1)
	copy(rotations, p.Rotations)
	p.Rotations = append(rotations, Rotation{AngleDegrees: degrees, Axis: axis})
	return p
}

// Scaled sets a uniform scale.
//
// Parameters:
//   - s: scale factor on every axis
//
// Returns:
//   - Placement: the placement with the scale set
func (p Placement) Scaled(s float32) Placement {
	p.Scale = mgl32.Vec3{s, s, s}
	return p
}

// Matrix composes the model matrix T * R1 * R2 * S starting from the identity.
//
// Returns:
//   - mgl32.Mat4: the model matrix
func (p Placement) Matrix() mgl32.Mat4 {
	m := mgl32.Translate3D(p.Position[0], p.Position[1], p.Position[2])
	for i, r := range p.Rotations {
		if i == MaxRotations {
			break
		}
		m = m.Mul4(r.Matrix())
	}
	if p.Scale != (mgl32.Vec3{}) {
		m = m.Mul4(mgl32.Scale3D(p.Scale[0], p.Scale[1], p.Scale[2]))
	}
	return m
}
