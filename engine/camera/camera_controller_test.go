package camera

import (
	"testing"

	"github.com/Carmen-Shannon/roomview/common"
	"github.com/go-gl/mathgl/mgl32"
)

const eps = 1e-5

type fakeInput struct {
	keys    map[int]bool
	buttons map[int]bool
	delta   mgl32.Vec2
	scroll  float32
}

func newFakeInput() *fakeInput {
	return &fakeInput{keys: map[int]bool{}, buttons: map[int]bool{}}
}

func (f *fakeInput) KeyDown(code int) bool    { return f.keys[code] }
func (f *fakeInput) ButtonDown(code int) bool { return f.buttons[code] }
func (f *fakeInput) FrameDelta() mgl32.Vec2   { return f.delta }
func (f *fakeInput) Scroll() float32          { return f.scroll }

func orbiting() *fakeInput {
	in := newFakeInput()
	in.keys[common.KeyLeftAlt] = true
	in.buttons[common.MouseButtonLeft] = true
	return in
}

func panning() *fakeInput {
	in := newFakeInput()
	in.keys[common.KeyLeftAlt] = true
	in.buttons[common.MouseButtonMiddle] = true
	return in
}

func vecApprox(a, b mgl32.Vec3) bool {
	for i := range a {
		if !common.ApproxEqual(a[i], b[i], eps) {
			return false
		}
	}
	return true
}

func matApprox(a, b mgl32.Mat4) bool {
	for i := range a {
		if !common.ApproxEqual(a[i], b[i], eps) {
			return false
		}
	}
	return true
}

func TestResetBasisIsOrthonormal(t *testing.T) {
	cc := NewCameraController()

	// Scramble state first; Reset must not depend on it.
	cc.SetPosition(mgl32.Vec3{4, -2, 17})
	cc.SetFront(mgl32.Vec3{3, 3, 3})
	cc.SetSpeed(5)
	cc.Reset()

	direction := cc.Position().Sub(mgl32.Vec3{0, 0, 0}).Normalize()
	right, up := cc.Right(), cc.Up()

	for name, d := range map[string]float32{
		"right.up":  right.Dot(up),
		"right.dir": right.Dot(direction),
		"up.dir":    up.Dot(direction),
	} {
		if !common.ApproxEqual(d, 0, eps) {
			t.Errorf("%s = %v, want 0", name, d)
		}
	}
	for name, v := range map[string]mgl32.Vec3{"right": right, "up": up, "dir": direction} {
		if !common.ApproxEqual(v.Len(), 1, eps) {
			t.Errorf("|%s| = %v, want 1", name, v.Len())
		}
	}

	if !vecApprox(cc.Position(), mgl32.Vec3{0, 0, 9}) {
		t.Errorf("position = %v, want (0,0,9)", cc.Position())
	}
	if !vecApprox(cc.Front(), mgl32.Vec3{0, 0, -1}) {
		t.Errorf("front = %v, want (0,0,-1)", cc.Front())
	}
	if cc.WorldUp() != (mgl32.Vec3{0, 1, 0}) {
		t.Errorf("worldUp = %v", cc.WorldUp())
	}
}

func TestResetViewMatrix(t *testing.T) {
	cc := NewCameraController()
	cc.Reset()

	eye := mgl32.Vec3{0, 0, 9}
	want := mgl32.LookAtV(eye, eye.Add(mgl32.Vec3{0, 0, -1}.Normalize()), mgl32.Vec3{0, 1, 0})
	if got := cc.ViewMatrix(); !matApprox(got, want) {
		t.Errorf("view = %v, want %v", got, want)
	}
}

func TestUpdateOrientationIsAdditive(t *testing.T) {
	tests := []struct {
		name   string
		d1, d2 mgl32.Vec2
	}{
		{"zero", mgl32.Vec2{0, 0}, mgl32.Vec2{0, 0}},
		{"same sign", mgl32.Vec2{10, 5}, mgl32.Vec2{3, 7}},
		{"opposing", mgl32.Vec2{-12, 4}, mgl32.Vec2{12, -4}},
		{"large", mgl32.Vec2{400, -250}, mgl32.Vec2{-35, 90}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			split := NewCameraController()
			split.UpdateOrientation(tt.d1, split.Sensitivity())
			split.UpdateOrientation(tt.d2, split.Sensitivity())

			once := NewCameraController()
			once.UpdateOrientation(tt.d1.Add(tt.d2), once.Sensitivity())

			if !vecApprox(split.Front(), once.Front()) {
				t.Errorf("split %v != combined %v", split.Front(), once.Front())
			}
		})
	}
}

func TestUpdateOrientationDriftsUnlessNormalized(t *testing.T) {
	drift := NewCameraController()
	drift.UpdateOrientation(mgl32.Vec2{200, 0}, 0.005)
	if want := (mgl32.Vec3{1, 0, -1}); !vecApprox(drift.Front(), want) {
		t.Errorf("front = %v, want %v", drift.Front(), want)
	}

	norm := NewCameraController(WithNormalizedFront(true))
	norm.UpdateOrientation(mgl32.Vec2{200, 0}, 0.005)
	if !common.ApproxEqual(norm.Front().Len(), 1, eps) {
		t.Errorf("|front| = %v, want 1", norm.Front().Len())
	}
}

func TestUpdateModeDoesNotLatch(t *testing.T) {
	cc := NewCameraController()

	cc.UpdateMode(panning())
	if !cc.IsPanning() || cc.IsOrbiting() {
		t.Fatalf("pan chord: panning=%v orbiting=%v", cc.IsPanning(), cc.IsOrbiting())
	}

	cc.UpdateMode(orbiting())
	if cc.IsPanning() || !cc.IsOrbiting() {
		t.Fatalf("orbit chord: panning=%v orbiting=%v", cc.IsPanning(), cc.IsOrbiting())
	}

	altOnly := newFakeInput()
	altOnly.keys[common.KeyLeftAlt] = true
	cc.UpdateMode(altOnly)
	if cc.IsPanning() || cc.IsOrbiting() {
		t.Fatal("modes latched after buttons released")
	}

	noAlt := newFakeInput()
	noAlt.buttons[common.MouseButtonLeft] = true
	noAlt.buttons[common.MouseButtonMiddle] = true
	cc.UpdateMode(noAlt)
	if cc.IsPanning() || cc.IsOrbiting() {
		t.Fatal("modes active without ALT")
	}
}

func TestOrbitOrigin(t *testing.T) {
	cc := NewCameraController()
	cc.UpdateMode(orbiting())
	cc.Orbit(mgl32.Vec2{0, 0}, mgl32.Vec3{0, 0, 0})

	if !vecApprox(cc.Position(), mgl32.Vec3{0, 0, 3}) {
		t.Errorf("position = %v, want (0,0,3)", cc.Position())
	}
}

func TestOrbitPitchStaysClamped(t *testing.T) {
	target := mgl32.Vec3{1, 2, 3}
	deltas := []mgl32.Vec2{
		{0, 89}, {0, 1e6}, {0, -1e6}, {0, -1e6}, {720, 45}, {-33, -60}, {1e4, 1e4},
	}

	cc := NewCameraController()
	cc.UpdateMode(orbiting())
	for _, d := range deltas {
		cc.Orbit(d, target)

		p := cc.Pitch()
		if p <= -pitchLimit-eps || p >= pitchLimit+eps {
			t.Fatalf("pitch %v outside (-%v, %v) for rawPitch %v", p, pitchLimit, pitchLimit, cc.RawPitch())
		}
		if dist := cc.Position().Sub(target).Len(); !common.ApproxEqual(dist, cc.Radius(), 1e-4) {
			t.Fatalf("distance from target = %v, want radius %v", dist, cc.Radius())
		}
	}
}

func TestOrbitInactiveIsNoop(t *testing.T) {
	cc := NewCameraController()
	before := cc.Position()
	cc.Orbit(mgl32.Vec2{30, 30}, mgl32.Vec3{})
	if cc.Position() != before || cc.RawYaw() != 0 || cc.RawPitch() != 0 {
		t.Error("Orbit changed state while not orbiting")
	}
}

func TestPan(t *testing.T) {
	cc := NewCameraController()
	cc.UpdateMode(panning())

	// position.z >= 0: z is forced to -1 before translating
	cc.Pan(mgl32.Vec2{10, 5}, 0.1)
	if want := (mgl32.Vec3{1, 0.5, -1}); !vecApprox(cc.Position(), want) {
		t.Errorf("position = %v, want %v", cc.Position(), want)
	}
	if !common.ApproxEqual(cc.Speed(), 0.5, eps) {
		t.Errorf("speed = %v, want dy*dt = 0.5", cc.Speed())
	}

	// position.z < 0: front.z is forced to 1 instead
	cc.Pan(mgl32.Vec2{-10, 0}, 0.1)
	if want := (mgl32.Vec3{0, 0.5, -1}); !vecApprox(cc.Position(), want) {
		t.Errorf("position = %v, want %v", cc.Position(), want)
	}
	if cc.Front()[2] != 1 {
		t.Errorf("front.z = %v, want 1", cc.Front()[2])
	}
}

func TestAdjustSpeedStaysInBounds(t *testing.T) {
	tests := []struct {
		name       string
		start      float32
		scroll, dt float32
		want       float32
	}{
		{"small up", 0.03, 1, 0.016, 0.046},
		{"small down", 0.03, -1, 0.016, 0.014},
		{"floor", 0.03, -100, 1, 0.01},
		{"ceiling", 0.03, 100, 1, 0.3},
		{"from above", 5, 0, 1, 0.3},
		{"from below", -2, 0.5, 0.001, 0.01},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cc := NewCameraController(WithSpeed(tt.start))
			cc.AdjustSpeed(tt.scroll, tt.dt)
			got := cc.Speed()
			if got < cc.MinSpeed() || got > cc.MaxSpeed() {
				t.Fatalf("speed %v outside [%v, %v]", got, cc.MinSpeed(), cc.MaxSpeed())
			}
			if !common.ApproxEqual(got, tt.want, eps) {
				t.Errorf("speed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAdjustSpeedClampBeforeAdd(t *testing.T) {
	cc := NewCameraController(WithSpeed(0.3), WithClampBeforeAdd(true))

	cc.AdjustSpeed(1, 0.5)
	if !common.ApproxEqual(cc.Speed(), 0.8, eps) {
		t.Fatalf("speed = %v, want 0.8 (bound applies on the next call)", cc.Speed())
	}

	cc.AdjustSpeed(0, 1)
	if !common.ApproxEqual(cc.Speed(), 0.3, eps) {
		t.Fatalf("speed = %v, want 0.3", cc.Speed())
	}
}

func TestMoveForwardNFrames(t *testing.T) {
	const frames = 12
	cc := NewCameraController()
	front := cc.Front()
	start := cc.Position()

	in := newFakeInput()
	in.keys[common.KeyW] = true
	for range frames {
		cc.Update(in, 1.0/60)
	}

	want := start.Add(front.Mul(frames * cc.Speed()))
	if !vecApprox(cc.Position(), want) {
		t.Errorf("position = %v, want %v", cc.Position(), want)
	}
}

func TestMoveAxes(t *testing.T) {
	tests := []struct {
		key  int
		want mgl32.Vec3
	}{
		{common.KeyW, mgl32.Vec3{0, 0, 9 - 0.03}},
		{common.KeyS, mgl32.Vec3{0, 0, 9 + 0.03}},
		{common.KeyA, mgl32.Vec3{-0.03, 0, 9}},
		{common.KeyD, mgl32.Vec3{0.03, 0, 9}},
		{common.KeyQ, mgl32.Vec3{0, 0.03, 9}},
		{common.KeyE, mgl32.Vec3{0, -0.03, 9}},
	}

	for _, tt := range tests {
		cc := NewCameraController()
		in := newFakeInput()
		in.keys[tt.key] = true
		cc.Move(in, 1.0/60)
		if !vecApprox(cc.Position(), tt.want) {
			t.Errorf("key %d: position = %v, want %v", tt.key, cc.Position(), tt.want)
		}
	}
}

func TestOrthoToggle(t *testing.T) {
	held := newFakeInput()
	held.keys[common.KeyP] = true
	released := newFakeInput()

	t.Run("edge triggered", func(t *testing.T) {
		cc := NewCameraController()
		for range 3 {
			cc.Update(held, 0.016)
		}
		if !cc.IsOrtho() {
			t.Fatal("want ortho after first press")
		}
		cc.Update(released, 0.016)
		cc.Update(held, 0.016)
		if cc.IsOrtho() {
			t.Fatal("want perspective after second press")
		}
	})

	t.Run("literal", func(t *testing.T) {
		cc := NewCameraController(WithLiteralOrthoToggle(true))
		want := []bool{true, false, true}
		for i, w := range want {
			cc.Update(held, 0.016)
			if cc.IsOrtho() != w {
				t.Fatalf("frame %d: ortho = %v, want %v", i, cc.IsOrtho(), w)
			}
		}
	})
}

func TestUpdateResetKey(t *testing.T) {
	cc := NewCameraController()
	cc.SetPosition(mgl32.Vec3{5, 5, 5})
	cc.SetFront(mgl32.Vec3{1, 1, 1})

	in := newFakeInput()
	in.keys[common.KeyF] = true
	cc.Update(in, 0.016)

	if !vecApprox(cc.Position(), mgl32.Vec3{0, 0, 9}) || !vecApprox(cc.Front(), mgl32.Vec3{0, 0, -1}) {
		t.Errorf("after reset: position %v front %v", cc.Position(), cc.Front())
	}
}

func TestUpdateOrbitsAroundLookPoint(t *testing.T) {
	cc := NewCameraController()
	lookPoint := cc.Target()

	in := orbiting()
	in.delta = mgl32.Vec2{90, 0}
	cc.Update(in, 0.016)

	// Orientation moved front by the delta too; the pivot is the look point from before the update.
	if dist := cc.Position().Sub(lookPoint).Len(); !common.ApproxEqual(dist, cc.Radius(), 1e-4) {
		t.Errorf("distance from look point = %v, want %v", dist, cc.Radius())
	}
	if !cc.IsOrbiting() {
		t.Error("want orbiting")
	}
}

func TestUpdateSkipsCursorStepsWithoutMotion(t *testing.T) {
	cc := NewCameraController()
	before := cc.Position()

	cc.Update(panning(), 0.016)
	if cc.Position() != before || cc.Speed() != defaultSpeed {
		t.Errorf("pan ran without cursor motion: position %v speed %v", cc.Position(), cc.Speed())
	}
}

func TestTargetStoresLookPoint(t *testing.T) {
	cc := NewCameraController()
	cc.SetPosition(mgl32.Vec3{1, 2, 3})
	cc.SetFront(mgl32.Vec3{0, 0, -2})

	if got := cc.Target(); got != (mgl32.Vec3{1, 2, 1}) {
		t.Errorf("target = %v, want (1,2,1)", got)
	}
}

func TestResetReturnsHome(t *testing.T) {
	home := mgl32.Vec3{2, 1, 6}
	cc := NewCameraController(WithHome(home))
	if cc.Position() != home {
		t.Fatalf("initial position = %v, want %v", cc.Position(), home)
	}

	cc.SetPosition(mgl32.Vec3{-4, 0, 0})
	cc.Reset()
	if cc.Position() != home {
		t.Errorf("after reset = %v, want %v", cc.Position(), home)
	}
}
