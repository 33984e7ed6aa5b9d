// Package input turns raw window events into a stable per-frame input state: which keys and
// mouse buttons are held, where the cursor is and how far it moved.
package input

import (
	"github.com/Carmen-Shannon/roomview/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Tracker accumulates key, mouse button, cursor and scroll events between frames.
// All methods are expected to run on the frame loop's thread; no locking is performed.
type Tracker interface {
	// OnKey records a key press or release. Codes outside [0, common.MaxKeyCode) are ignored.
	//
	// Parameters:
	//   - code: GLFW key code
	//   - pressed: true on press or repeat, false on release
	OnKey(code int, pressed bool)

	// OnMouseButton records a mouse button press or release.
	// Codes outside [0, common.MaxMouseButton) are ignored.
	//
	// Parameters:
	//   - code: GLFW mouse button code
	//   - pressed: true on press, false on release
	OnMouseButton(code int, pressed bool)

	// OnCursorMove records a new cursor position and computes the delta from the previous one
	// as (x - lastX, lastY - y). The first call after construction emits a zero delta.
	//
	// Parameters:
	//   - x, y: cursor position in window coordinates (y grows downward)
	OnCursorMove(x, y float32)

	// OnScroll accumulates the vertical scroll offset for the current frame.
	//
	// Parameters:
	//   - xoff: horizontal offset (unused)
	//   - yoff: vertical offset
	OnScroll(xoff, yoff float32)

	// KeyDown reports whether the key is currently held. Out-of-range codes report false.
	KeyDown(code int) bool

	// ButtonDown reports whether the mouse button is currently held. Out-of-range codes report false.
	ButtonDown(code int) bool

	// Cursor returns the last recorded cursor position.
	Cursor() mgl32.Vec2

	// CursorDelta returns the delta computed by the most recent OnCursorMove.
	CursorDelta() mgl32.Vec2

	// FrameDelta returns the sum of all cursor deltas since the last EndFrame.
	FrameDelta() mgl32.Vec2

	// Scroll returns the sum of vertical scroll offsets since the last EndFrame.
	Scroll() float32

	// FirstMove reports whether no cursor event has been seen yet.
	FirstMove() bool

	// EndFrame clears the per-frame accumulators. Held keys and buttons persist.
	EndFrame()
}

type trackerImpl struct {
	keys    [common.MaxKeyCode]bool
	buttons [common.MaxMouseButton]bool

	last       mgl32.Vec2
	delta      mgl32.Vec2
	frameDelta mgl32.Vec2
	scroll     float32
	firstMove  bool
}

var _ Tracker = &trackerImpl{}

// NewTracker creates a Tracker with no keys held and firstMove set.
//
// Parameters:
//   - options: functional options to configure the tracker
//
// Returns:
//   - Tracker: the newly created tracker
func NewTracker(options ...TrackerOption) Tracker {
	t := &trackerImpl{
		firstMove: true,
	}

	for _, option := range options {
		option(t)
	}

	return t
}

func (t *trackerImpl) OnKey(code int, pressed bool) {
	if code < 0 || code >= len(t.keys) {
		return
	}
	t.keys[code] = pressed
}

func (t *trackerImpl) OnMouseButton(code int, pressed bool) {
	if code < 0 || code >= len(t.buttons) {
		return
	}
	t.buttons[code] = pressed
}

func (t *trackerImpl) OnCursorMove(x, y float32) {
	if t.firstMove {
		t.last = mgl32.Vec2{x, y}
		t.firstMove = false
	}

	// y is inverted: moving the cursor up yields a positive delta
	t.delta = mgl32.Vec2{x - t.last[0], t.last[1] - y}
	t.last = mgl32.Vec2{x, y}
	t.frameDelta = t.frameDelta.Add(t.delta)
}

func (t *trackerImpl) OnScroll(xoff, yoff float32) {
	t.scroll += yoff
}

func (t *trackerImpl) KeyDown(code int) bool {
	if code < 0 || code >= len(t.keys) {
		return false
	}
	return t.keys[code]
}

func (t *trackerImpl) ButtonDown(code int) bool {
	if code < 0 || code >= len(t.buttons) {
		return false
	}
	return t.buttons[code]
}

func (t *trackerImpl) Cursor() mgl32.Vec2 {
	return t.last
}

func (t *trackerImpl) CursorDelta() mgl32.Vec2 {
	return t.delta
}

func (t *trackerImpl) FrameDelta() mgl32.Vec2 {
	return t.frameDelta
}

func (t *trackerImpl) Scroll() float32 {
	return t.scroll
}

func (t *trackerImpl) FirstMove() bool {
	return t.firstMove
}

func (t *trackerImpl) EndFrame() {
	t.frameDelta = mgl32.Vec2{}
	t.scroll = 0
}
