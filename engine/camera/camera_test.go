package camera

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/Carmen-Shannon/roomview/common"
	"github.com/go-gl/mathgl/mgl32"
)

func TestCameraDefaults(t *testing.T) {
	c := NewCamera()

	if !common.ApproxEqual(c.Fov(), mgl32.DegToRad(45), eps) {
		t.Errorf("fov = %v, want 45 degrees", c.Fov())
	}
	if c.Near() != 0.1 || c.Far() != 100 {
		t.Errorf("clip planes = %v..%v, want 0.1..100", c.Near(), c.Far())
	}
	if c.Controller() != nil {
		t.Error("new camera should have no controller")
	}
	if c.ViewMatrix() != mgl32.Ident4() {
		t.Error("view should stay identity without a controller")
	}
}

func TestCameraProjectionFollowsOrthoFlag(t *testing.T) {
	cc := NewCameraController()
	c := NewCamera(
		WithController(cc),
		WithAspect(2),
		WithClipPlanes(0.1, 100),
		WithOrthoHalfHeight(5),
	)

	wantPersp := common.Perspective(c.Fov(), 2, 0.1, 100)
	if !matApprox(c.ProjectionMatrix(), wantPersp) {
		t.Fatalf("perspective = %v, want %v", c.ProjectionMatrix(), wantPersp)
	}
	if c.ProjectionMatrix().At(3, 3) != 0 {
		t.Error("perspective projection should have w=0 at (3,3)")
	}

	cc.ToggleOrtho()
	c.Update()

	wantOrtho := common.Ortho(-10, 10, -5, 5, 0.1, 100)
	if !matApprox(c.ProjectionMatrix(), wantOrtho) {
		t.Fatalf("ortho = %v, want %v", c.ProjectionMatrix(), wantOrtho)
	}
	if c.ProjectionMatrix().At(3, 3) != 1 {
		t.Error("orthographic projection should have w=1 at (3,3)")
	}

	if !matApprox(c.ViewMatrix(), cc.ViewMatrix()) {
		t.Error("camera view should match controller view")
	}
}

func TestPerspectiveDepthRange(t *testing.T) {
	proj := common.Perspective(mgl32.DegToRad(45), 1, 0.1, 100)

	tests := []struct {
		name  string
		dist  float32
		depth float32
	}{
		{"near plane", 0.1, 0},
		{"far plane", 100, 1},
	}
	for _, tt := range tests {
		clip := proj.Mul4x1(mgl32.Vec4{0, 0, -tt.dist, 1})
		if got := clip[2] / clip[3]; !common.ApproxEqual(got, tt.depth, 1e-4) {
			t.Errorf("%s: depth = %v, want %v", tt.name, got, tt.depth)
		}
	}
}

func TestCameraSetAspect(t *testing.T) {
	c := NewCamera(WithController(NewCameraController()))
	c.SetAspect(1)
	want := common.Perspective(c.Fov(), 1, c.Near(), c.Far())
	if !matApprox(c.ProjectionMatrix(), want) {
		t.Errorf("projection not rebuilt on SetAspect")
	}
}

func TestGPUCameraUniformMarshal(t *testing.T) {
	c := NewCamera(WithController(NewCameraController()))
	u := NewGPUCameraUniform(c)

	if u.Size() != 128 {
		t.Fatalf("size = %d, want 128", u.Size())
	}

	buf := u.Marshal()
	if len(buf) != 128 {
		t.Fatalf("len = %d, want 128", len(buf))
	}
	for i := range 16 {
		view := math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:]))
		proj := math.Float32frombits(binary.LittleEndian.Uint32(buf[64+i*4:]))
		if view != u.View[i] || proj != u.Projection[i] {
			t.Fatalf("element %d: got view %v proj %v", i, view, proj)
		}
	}
}
