package constant

import (
	"math"
	"time"
)

// Curve sampling defaults
const (
	// SampleCount is the number of points in the parameter grid
	SampleCount = 2000

	// ParamMin and ParamMax bound the sampled angle range (two full turns)
	ParamMin = 0.0
	ParamMax = 4 * math.Pi
)

// Animation timing defaults
const (
	// FrameInterval is the animator tick cadence, one grid sample revealed per tick
	FrameInterval = 5 * time.Millisecond

	// SegmentDuration is the time slice drawn in one colour
	SegmentDuration = 50 * time.Millisecond

	// SegmentOverlap is the number of samples a new segment reaches back into the previous one
	SegmentOverlap = 3

	// MaxRepeats is the number of full cycles drawn before the animation stops
	MaxRepeats = 100

	// AutoStartDelay is the delay of the one-shot start trigger after the screen comes up
	AutoStartDelay = 500 * time.Millisecond
)

// Palette defaults
const (
	// PaletteBasic names the 7-entry discrete palette
	PaletteBasic = "basic"

	// PalettePlasma names the reference continuous gradient
	PalettePlasma = "plasma"

	// GradientEntries is the number of samples drawn from a gradient
	GradientEntries = 200
)

// Trigger modes
const (
	TriggerManual = "manual"
	TriggerAuto   = "auto"
)
