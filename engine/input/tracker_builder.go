package input

import "github.com/go-gl/mathgl/mgl32"

// TrackerOption is a functional option for configuring a Tracker.
type TrackerOption func(*trackerImpl)

// WithInitialCursor sets the cursor position the tracker starts from, typically the window centre.
// The first cursor event still yields a zero delta.
//
// Parameters:
//   - x, y: initial cursor position in window coordinates
//
// Returns:
//   - TrackerOption: functional option to set the initial cursor
func WithInitialCursor(x, y float32) TrackerOption {
	return func(t *trackerImpl) {
		t.last = mgl32.Vec2{x, y}
	}
}
