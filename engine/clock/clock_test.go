package clock

import "testing"

func TestFrameClockTick(t *testing.T) {
	c := NewFrameClock()

	tests := []struct {
		now  float64
		want float32
	}{
		{0.5, 0.5},
		{0.75, 0.25},
		{0.75, 0},
		{2, 1.25},
	}
	for _, tt := range tests {
		if got := c.Tick(tt.now); got != tt.want {
			t.Errorf("Tick(%v) = %v, want %v", tt.now, got, tt.want)
		}
		if c.Now() != tt.now || c.Delta() != tt.want {
			t.Errorf("after Tick(%v): Now=%v Delta=%v", tt.now, c.Now(), c.Delta())
		}
	}
}
