// Package animator progressively reveals a sampled curve in coloured segments.
//
// One frame reveals one grid sample. Frames are grouped into fixed time slices;
// each slice opens a new segment painted with the next palette colour. After the
// whole grid is revealed the cycle restarts, up to a bounded number of repeats.
//
// The Animator is not safe for concurrent use. Start, Stop, OnFrame and Tick must
// be called serially from the goroutine that owns it, normally the host event loop.
package animator

import (
	"fmt"

	"github.com/lixenwraith/butterfly/curve"
)

// noSegment marks that no segment has been opened in the current cycle
const noSegment = -1

// animationState is the per-run mutable state, reset on every Start
type animationState struct {
	frame      int // last processed frame, reset to 0 on cycle completion
	next       int // frame Tick will process next
	repeat     int
	colorIndex int
	lastID     int
	segments   []Segment
}

// Animator is the curve animation state machine
type Animator struct {
	cfg   Config
	grid  *curve.Grid
	phase State
	st    animationState
	hooks Hooks
}

// New validates cfg and returns an idle animator
func New(cfg Config) (*Animator, error) {
	a := &Animator{}
	if err := a.Configure(cfg); err != nil {
		return nil, err
	}
	return a, nil
}

// Configure replaces the animation constants and returns the animator to Idle
// On error the previous configuration is kept
func (a *Animator) Configure(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	grid, err := curve.NewGrid(cfg.ParamMin, cfg.ParamMax, cfg.SampleCount)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	a.cfg = cfg
	a.grid = grid
	a.phase = StateIdle
	a.reset()
	return nil
}

// SetHooks registers lifecycle callbacks, replacing any previous set
func (a *Animator) SetHooks(h Hooks) {
	a.hooks = h
}

// Start resets all run state and enters Running; no-op while already running
func (a *Animator) Start() {
	if !canTransition(a.phase, StateRunning) {
		return
	}
	a.reset()
	a.phase = StateRunning
}

// Stop halts the animation, keeping the drawn segments; no-op unless running
func (a *Animator) Stop() {
	a.stop(StopManual)
}

func (a *Animator) stop(reason StopReason) {
	if !canTransition(a.phase, StateStopped) {
		return
	}
	a.phase = StateStopped
	if a.hooks.OnStop != nil {
		a.hooks.OnStop(reason)
	}
}

func (a *Animator) reset() {
	a.st.frame = 0
	a.st.next = 0
	a.st.repeat = 0
	a.st.colorIndex = 0
	a.st.lastID = noSegment
	a.st.segments = nil
}

// Tick processes the next frame of the internal frame counter
// The counter starts at 0, advances by one per call and restarts after each cycle
func (a *Animator) Tick() []Segment {
	return a.OnFrame(a.st.next)
}

// OnFrame reveals the curve up to frame and returns all segments of the cycle
// Calls while not running, or with a negative frame, change nothing.
// A frame at or past the sample count completes the cycle: the animator either
// stops after the last repeat or clears the segments and restarts at frame 0.
// The returned slice is only valid until the next mutating call.
func (a *Animator) OnFrame(frame int) []Segment {
	if a.phase != StateRunning || frame < 0 {
		return a.st.segments
	}

	if frame >= a.cfg.SampleCount {
		a.completeCycle()
		return a.st.segments
	}

	a.st.frame = frame
	a.st.next = frame + 1

	id := a.segmentID(frame)
	if id > a.st.lastID {
		a.openSegment(id, max(frame-a.cfg.Overlap, 0))
	}

	open := &a.st.segments[len(a.st.segments)-1]
	open.End = max(frame, open.Start)
	open.Points = curve.SampleRange(a.grid, open.Start, open.End, open.Points)

	return a.st.segments
}

// segmentID is floor(frame * interval / duration) in integer nanoseconds
func (a *Animator) segmentID(frame int) int {
	elapsed := int64(frame) * int64(a.cfg.FrameInterval)
	return int(elapsed / int64(a.cfg.SegmentDuration))
}

func (a *Animator) openSegment(id, start int) {
	seg := Segment{
		ID:         id,
		Start:      start,
		End:        start,
		ColorIndex: a.st.colorIndex,
		Color:      a.cfg.Palette.At(a.st.colorIndex),
	}
	a.st.segments = append(a.st.segments, seg)
	a.st.lastID = id
	a.st.colorIndex = (a.st.colorIndex + 1) % a.cfg.Palette.Len()

	if a.hooks.OnSegment != nil {
		a.hooks.OnSegment(seg)
	}
}

func (a *Animator) completeCycle() {
	a.st.repeat++
	if a.st.repeat >= a.cfg.MaxRepeats {
		a.stop(StopCompleted)
		return
	}

	a.st.frame = 0
	a.st.next = 0
	a.st.lastID = noSegment
	// Slices returned for the finished cycle stay valid for their holders
	a.st.segments = nil

	if a.hooks.OnCycle != nil {
		a.hooks.OnCycle(a.st.repeat)
	}
}

// State returns the lifecycle phase
func (a *Animator) State() State {
	return a.phase
}

// Running reports whether frames are being produced
func (a *Animator) Running() bool {
	return a.phase == StateRunning
}

// Frame returns the last processed frame of the current cycle
func (a *Animator) Frame() int {
	return a.st.frame
}

// Repeat returns the number of completed cycles since Start
func (a *Animator) Repeat() int {
	return a.st.repeat
}

// MaxRepeats returns the configured cycle limit
func (a *Animator) MaxRepeats() int {
	return a.cfg.MaxRepeats
}

// ColorIndex returns the palette index the next segment will use
func (a *Animator) ColorIndex() int {
	return a.st.colorIndex
}

// Segments returns the segments of the current cycle in creation order
func (a *Animator) Segments() []Segment {
	return a.st.segments
}

// Config returns the active configuration
func (a *Animator) Config() Config {
	return a.cfg
}

// Grid returns the parameter grid
func (a *Animator) Grid() *curve.Grid {
	return a.grid
}

// SegmentsPerCycle returns the expected segment count of a full cycle
func (a *Animator) SegmentsPerCycle() int {
	return a.cfg.SegmentsPerCycle()
}
