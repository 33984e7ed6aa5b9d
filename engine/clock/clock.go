package clock

// FrameClock turns a monotonically increasing time source into per-frame deltas.
// Times are seconds since an arbitrary epoch, typically glfw.GetTime.
type FrameClock struct {
	current float64
	last    float64
	delta   float32
}

// NewFrameClock creates a clock whose first Tick measures from time zero.
//
// Returns:
//   - *FrameClock: the newly created clock
func NewFrameClock() *FrameClock {
	return &FrameClock{}
}

// Tick records the time of a new frame.
//
// Parameters:
//   - now: seconds since the time source's epoch
//
// Returns:
//   - float32: seconds since the previous Tick
func (c *FrameClock) Tick(now float64) float32 {
	c.current = now
	c.delta = float32(now - c.last)
	c.last = now
	return c.delta
}

// Now returns the time passed to the last Tick.
func (c *FrameClock) Now() float64 {
	return c.current
}

// Delta returns the delta computed by the last Tick.
func (c *FrameClock) Delta() float32 {
	return c.delta
}
