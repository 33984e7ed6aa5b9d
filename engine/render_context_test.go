package engine

import (
	"bytes"
	"log"
	"testing"

	"github.com/Carmen-Shannon/roomview/common"
	"github.com/Carmen-Shannon/roomview/engine/camera"
	"github.com/go-gl/mathgl/mgl32"
)

func TestNewRenderContextDefaults(t *testing.T) {
	rc := NewRenderContext(camera.NewCamera(), nil, nil)

	if rc.Camera().Controller() == nil {
		t.Fatal("expected a default controller")
	}
	if rc.Tracker() == nil {
		t.Fatal("expected a default tracker")
	}
}

func TestRenderContextFrameClearsInput(t *testing.T) {
	var buf bytes.Buffer
	rc := NewRenderContext(camera.NewCamera(), nil, log.New(&buf, "", 0))
	tr := rc.Tracker()

	tr.OnCursorMove(100, 100)
	tr.OnCursorMove(110, 95)
	tr.OnScroll(0, 1)
	rc.Frame(0.5)

	if d := tr.FrameDelta(); d != (mgl32.Vec2{}) {
		t.Errorf("frame delta not cleared: %v", d)
	}
	if s := tr.Scroll(); s != 0 {
		t.Errorf("scroll not cleared: %v", s)
	}
	if dt := rc.Clock().Delta(); dt != 0.5 {
		t.Errorf("dt = %v, want 0.5", dt)
	}
}

func TestRenderContextFrameReturnsCameraMatrices(t *testing.T) {
	rc := NewRenderContext(camera.NewCamera(), nil, nil)
	rc.Tracker().OnKey(common.KeyS, true)

	view, proj := rc.Frame(1)

	if view != rc.Camera().ViewMatrix() || proj != rc.Camera().ProjectionMatrix() {
		t.Error("Frame did not return the camera's matrices")
	}
	if z := rc.Camera().Controller().Position()[2]; !common.ApproxEqual(z, 9.03, 1e-5) {
		t.Errorf("z = %v, want 9.03", z)
	}
}
