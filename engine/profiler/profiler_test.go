package profiler

import (
	"bytes"
	"log"
	"strings"
	"testing"
	"time"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestTickLogsOncePerInterval(t *testing.T) {
	var buf bytes.Buffer
	clk := &fakeClock{t: time.Unix(0, 0)}
	p := NewProfiler(
		WithInterval(100*time.Millisecond),
		WithLogger(log.New(&buf, "", 0)),
		WithClock(clk.now),
	)

	var reports []*Report
	for range 25 {
		clk.advance(10 * time.Millisecond)
		if r := p.Tick(); r != nil {
			reports = append(reports, r)
		}
	}

	if len(reports) != 2 {
		t.Fatalf("reports = %d, want 2", len(reports))
	}
	if got := reports[0].FPS; got < 99 || got > 101 {
		t.Errorf("FPS = %.2f, want 100", got)
	}
	if got := reports[0].MeanFrameMs; got != 10 {
		t.Errorf("mean frame = %.2f ms, want 10", got)
	}
	if got := strings.Count(buf.String(), "[Profiler]"); got != 2 {
		t.Errorf("logged %d lines, want 2:\n%s", got, buf.String())
	}
}

func TestTickTracksWorstFrame(t *testing.T) {
	clk := &fakeClock{t: time.Unix(0, 0)}
	p := NewProfiler(
		WithInterval(time.Second),
		WithLogger(log.New(&bytes.Buffer{}, "", 0)),
		WithClock(clk.now),
	)

	frames := []time.Duration{16, 16, 250, 16, 702}
	var r *Report
	for _, ms := range frames {
		clk.advance(ms * time.Millisecond)
		r = p.Tick()
	}
	if r == nil {
		t.Fatal("want a report after one second")
	}
	if r.WorstMs != 702 {
		t.Errorf("worst = %.2f ms, want 702", r.WorstMs)
	}
}

func TestWithIntervalIgnoresNonPositive(t *testing.T) {
	p := NewProfiler(WithInterval(0))
	if p.interval != time.Second {
		t.Errorf("interval = %v, want 1s", p.interval)
	}
}
