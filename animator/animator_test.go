package animator

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/butterfly/curve"
	"github.com/lixenwraith/butterfly/palette"
)

// testConfig returns a small animation: 20 samples, 2 segments per cycle
func testConfig() Config {
	cfg := DefaultConfig()
	cfg.SampleCount = 20
	cfg.MaxRepeats = 3
	return cfg
}

func mustNew(t *testing.T, cfg Config) *Animator {
	t.Helper()
	a, err := New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return a
}

// runCycle ticks through all frames of one cycle, excluding the completing tick
func runCycle(a *Animator) []Segment {
	var segs []Segment
	for i := 0; i < a.Config().SampleCount; i++ {
		segs = a.Tick()
	}
	return segs
}

func TestSegmentsPerCycleNearDurationLimit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SampleCount = int(math.MaxInt64 / int64(cfg.FrameInterval))
	cfg.SegmentDuration = time.Duration(math.MaxInt64)

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil at the limit", err)
	}
	if got := cfg.SegmentsPerCycle(); got != 1 {
		t.Errorf("SegmentsPerCycle() = %d, want 1", got)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero samples", func(c *Config) { c.SampleCount = 0 }},
		{"negative samples", func(c *Config) { c.SampleCount = -1 }},
		{"zero repeats", func(c *Config) { c.MaxRepeats = 0 }},
		{"zero segment duration", func(c *Config) { c.SegmentDuration = 0 }},
		{"negative frame interval", func(c *Config) { c.FrameInterval = -time.Millisecond }},
		{"cycle length overflows", func(c *Config) { c.SampleCount, c.FrameInterval = math.MaxInt, time.Second }},
		{"cycle length overflows by one", func(c *Config) {
			c.SampleCount = int(math.MaxInt64/int64(c.FrameInterval)) + 1
		}},
		{"negative overlap", func(c *Config) { c.Overlap = -1 }},
		{"nil palette", func(c *Config) { c.Palette = nil }},
		{"nan range", func(c *Config) { c.ParamMax = math.NaN() }},
		{"infinite range", func(c *Config) { c.ParamMin = math.Inf(-1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
			a, err := New(cfg)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("New() error = %v, want ErrInvalidConfig", err)
			}
			if a != nil {
				t.Error("Expected nil animator on invalid config")
			}
		})
	}

	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("Default config should be valid: %v", err)
	}
}

func TestConfigureKeepsPreviousOnError(t *testing.T) {
	a := mustNew(t, testConfig())
	bad := testConfig()
	bad.MaxRepeats = 0

	if err := a.Configure(bad); err == nil {
		t.Fatal("Expected error")
	}
	if a.Config().MaxRepeats != 3 {
		t.Errorf("Config changed after failed Configure: %d", a.Config().MaxRepeats)
	}
}

func TestReferenceSegmentLayout(t *testing.T) {
	a := mustNew(t, DefaultConfig())

	if got := a.SegmentsPerCycle(); got != 200 {
		t.Errorf("SegmentsPerCycle() = %d, want 200", got)
	}
	if got := a.Config().FramesPerSegment(); got != 10 {
		t.Errorf("FramesPerSegment() = %d, want 10", got)
	}

	a.Start()
	segs := runCycle(a)

	if len(segs) != 200 {
		t.Fatalf("Expected 200 segments after a full cycle, got %d", len(segs))
	}

	for i, s := range segs {
		if s.ID != i {
			t.Errorf("Segment %d has ID %d", i, s.ID)
		}
		wantStart := max(10*i-a.Config().Overlap, 0)
		if s.Start != wantStart {
			t.Errorf("Segment %d start = %d, want %d", i, s.Start, wantStart)
		}
		wantEnd := 10*i + 9
		if s.End != wantEnd {
			t.Errorf("Segment %d end = %d, want %d", i, s.End, wantEnd)
		}
		if len(s.Points) != s.Len() {
			t.Errorf("Segment %d has %d points for %d samples", i, len(s.Points), s.Len())
		}
	}
}

func TestOpenSegmentRedrawnFromStart(t *testing.T) {
	a := mustNew(t, DefaultConfig())
	a.Start()

	for f := 0; f < 15; f++ {
		a.Tick()
	}
	segs := a.Segments()
	if len(segs) != 2 {
		t.Fatalf("Expected 2 segments at frame 14, got %d", len(segs))
	}

	open := segs[1]
	if open.Start != 7 || open.End != 14 {
		t.Fatalf("Open segment range = [%d,%d), want [7,14)", open.Start, open.End)
	}
	for i, p := range open.Points {
		want := curve.Sample(a.Grid().At(open.Start + i))
		if p != want {
			t.Errorf("Point %d = %v, want %v", i, p, want)
		}
	}

	// Frozen segment keeps the points of its last update
	frozen := segs[0]
	if frozen.Start != 0 || frozen.End != 9 || len(frozen.Points) != 9 {
		t.Errorf("Frozen segment = [%d,%d) with %d points", frozen.Start, frozen.End, len(frozen.Points))
	}
}

func TestSegmentCountMatchesFormula(t *testing.T) {
	tests := []struct {
		name     string
		samples  int
		interval time.Duration
		duration time.Duration
	}{
		{"reference", 2000, 5 * time.Millisecond, 50 * time.Millisecond},
		{"uneven tail", 105, 5 * time.Millisecond, 50 * time.Millisecond},
		{"one per frame", 30, 5 * time.Millisecond, 5 * time.Millisecond},
		{"short tail", 33, 4 * time.Millisecond, 10 * time.Millisecond},
		{"fractional", 997, 3 * time.Millisecond, 40 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.SampleCount = tt.samples
			cfg.FrameInterval = tt.interval
			cfg.SegmentDuration = tt.duration
			a := mustNew(t, cfg)
			a.Start()

			segs := runCycle(a)
			want := int(math.Ceil(float64(tt.samples) * float64(tt.interval) / float64(tt.duration)))
			if diff := len(segs) - want; diff < -1 || diff > 1 {
				t.Errorf("Segment count = %d, want %d ±1", len(segs), want)
			}
		})
	}
}

func TestColorIndexPeriodic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SampleCount = 25
	cfg.SegmentDuration = cfg.FrameInterval // one boundary per frame
	cfg.MaxRepeats = 4
	a := mustNew(t, cfg)

	var indices []int
	a.SetHooks(Hooks{OnSegment: func(s Segment) { indices = append(indices, s.ColorIndex) }})
	a.Start()
	for a.Running() {
		a.Tick()
	}

	size := cfg.Palette.Len()
	if len(indices) != 25*4 {
		t.Fatalf("Expected %d boundaries, got %d", 25*4, len(indices))
	}
	for k := 0; k+size < len(indices); k++ {
		if indices[k+size] != indices[k] {
			t.Fatalf("Color index after %d boundaries = %d, after %d = %d", k+size, indices[k+size], k, indices[k])
		}
	}
	for k, idx := range indices {
		if idx != k%size {
			t.Fatalf("Boundary %d used color %d, want %d", k, idx, k%size)
		}
	}
}

func TestGradientPalettePolicy(t *testing.T) {
	p, err := palette.Plasma(200)
	if err != nil {
		t.Fatal(err)
	}
	cfg := DefaultConfig()
	cfg.Palette = p
	a := mustNew(t, cfg)
	a.Start()

	segs := runCycle(a)
	for i, s := range segs {
		if s.Color != p.At(i) {
			t.Errorf("Segment %d color %v, want %v", i, s.Color, p.At(i))
		}
	}
	// 200 boundaries over a 200-entry gradient wrap back to the start
	if a.ColorIndex() != 0 {
		t.Errorf("ColorIndex() = %d, want 0", a.ColorIndex())
	}
}

func TestCycleResetAndRepeatLimit(t *testing.T) {
	a := mustNew(t, testConfig())

	var cycles []int
	var stops []StopReason
	a.SetHooks(Hooks{
		OnCycle: func(r int) { cycles = append(cycles, r) },
		OnStop:  func(r StopReason) { stops = append(stops, r) },
	})
	a.Start()

	runCycle(a)
	if got := len(a.Segments()); got != 2 {
		t.Fatalf("Expected 2 segments, got %d", got)
	}

	// Completing tick clears and restarts
	if segs := a.Tick(); len(segs) != 0 {
		t.Errorf("Expected empty segments on cycle reset, got %d", len(segs))
	}
	if a.Repeat() != 1 || a.Frame() != 0 || a.State() != StateRunning {
		t.Errorf("After first cycle: repeat=%d frame=%d state=%s", a.Repeat(), a.Frame(), a.State())
	}

	// Color index carries over between cycles
	if a.ColorIndex() != 2 {
		t.Errorf("ColorIndex() = %d, want 2", a.ColorIndex())
	}
	segs := a.Tick()
	if len(segs) != 1 || segs[0].ColorIndex != 2 {
		t.Errorf("First segment of second cycle: %+v", segs)
	}

	for a.Running() {
		a.Tick()
	}

	if a.Repeat() != 3 {
		t.Errorf("Repeat() = %d, want 3", a.Repeat())
	}
	if len(cycles) != 2 || cycles[0] != 1 || cycles[1] != 2 {
		t.Errorf("OnCycle calls = %v, want [1 2]", cycles)
	}
	if len(stops) != 1 || stops[0] != StopCompleted {
		t.Errorf("OnStop calls = %v, want [completed]", stops)
	}

	// Final picture is kept
	final := a.Segments()
	if len(final) != 2 {
		t.Fatalf("Expected final picture with 2 segments, got %d", len(final))
	}

	// No further segments regardless of additional frames
	for f := 0; f < 50; f++ {
		a.OnFrame(f)
		a.Tick()
	}
	if len(a.Segments()) != 2 || a.Repeat() != 3 || a.State() != StateStopped {
		t.Errorf("Animator changed after stop: segs=%d repeat=%d state=%s", len(a.Segments()), a.Repeat(), a.State())
	}
}

func TestOnFrameOutOfRangeIsSafe(t *testing.T) {
	a := mustNew(t, testConfig())

	// Not running: no-op
	if segs := a.OnFrame(5); len(segs) != 0 {
		t.Errorf("Idle OnFrame produced %d segments", len(segs))
	}

	a.Start()
	if segs := a.OnFrame(-3); len(segs) != 0 {
		t.Errorf("Negative frame produced %d segments", len(segs))
	}

	a.OnFrame(0)
	a.OnFrame(math.MaxInt32)
	if a.Repeat() != 1 || len(a.Segments()) != 0 {
		t.Errorf("Far frame should complete the cycle: repeat=%d segs=%d", a.Repeat(), len(a.Segments()))
	}

	a.Stop()
	a.OnFrame(math.MaxInt)
	if a.Repeat() != 1 {
		t.Errorf("OnFrame after Stop changed repeat count to %d", a.Repeat())
	}
}

func TestSkippedFramesOpenSegmentAtCurrentFrame(t *testing.T) {
	a := mustNew(t, DefaultConfig())
	a.Start()

	a.OnFrame(0)
	segs := a.OnFrame(100)
	if len(segs) != 2 {
		t.Fatalf("Expected 2 segments, got %d", len(segs))
	}
	if segs[1].ID != 10 || segs[1].Start != 97 || segs[1].End != 100 {
		t.Errorf("Segment after skip = %+v", segs[1])
	}
}

func TestZeroOverlap(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Overlap = 0
	a := mustNew(t, cfg)
	a.Start()

	for f := 0; f <= 10; f++ {
		a.Tick()
	}
	segs := a.Segments()
	if len(segs) != 2 || segs[1].Start != 10 {
		t.Errorf("Second segment should start at 10 without overlap: %+v", segs)
	}
}
