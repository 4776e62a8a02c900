package animator

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/lixenwraith/butterfly/constant"
	"github.com/lixenwraith/butterfly/palette"
)

// ErrInvalidConfig is wrapped by every configuration validation failure
var ErrInvalidConfig = errors.New("invalid animator configuration")

// Config holds the animation constants fixed at configuration time
type Config struct {
	// Parameter range sampled by the grid
	ParamMin, ParamMax float64

	// SampleCount is the number of grid points; one is revealed per frame
	SampleCount int

	// MaxRepeats is the number of full cycles before the animation stops
	MaxRepeats int

	// SegmentDuration is the time slice painted in a single colour
	SegmentDuration time.Duration

	// FrameInterval is the nominal time between frames
	FrameInterval time.Duration

	// Overlap is the number of samples a new segment reaches back for continuity
	Overlap int

	// Palette supplies segment colours, advanced one entry per segment
	Palette *palette.Palette
}

// DefaultConfig returns the reference animation with the basic palette
func DefaultConfig() Config {
	return Config{
		ParamMin:        constant.ParamMin,
		ParamMax:        constant.ParamMax,
		SampleCount:     constant.SampleCount,
		MaxRepeats:      constant.MaxRepeats,
		SegmentDuration: constant.SegmentDuration,
		FrameInterval:   constant.FrameInterval,
		Overlap:         constant.SegmentOverlap,
		Palette:         palette.Basic(),
	}
}

// Validate reports the first invalid field, wrapped in ErrInvalidConfig
func (c Config) Validate() error {
	switch {
	case c.SampleCount <= 0:
		return fmt.Errorf("%w: sample count must be positive, got %d", ErrInvalidConfig, c.SampleCount)
	case c.MaxRepeats <= 0:
		return fmt.Errorf("%w: max repeats must be positive, got %d", ErrInvalidConfig, c.MaxRepeats)
	case c.SegmentDuration <= 0:
		return fmt.Errorf("%w: segment duration must be positive, got %v", ErrInvalidConfig, c.SegmentDuration)
	case c.FrameInterval <= 0:
		return fmt.Errorf("%w: frame interval must be positive, got %v", ErrInvalidConfig, c.FrameInterval)
	case int64(c.SampleCount) > math.MaxInt64/int64(c.FrameInterval):
		return fmt.Errorf("%w: cycle length %d x %v overflows", ErrInvalidConfig, c.SampleCount, c.FrameInterval)
	case c.Overlap < 0:
		return fmt.Errorf("%w: overlap must not be negative, got %d", ErrInvalidConfig, c.Overlap)
	case c.Palette == nil || c.Palette.Len() == 0:
		return fmt.Errorf("%w: palette is empty", ErrInvalidConfig)
	case !finite(c.ParamMin) || !finite(c.ParamMax):
		return fmt.Errorf("%w: parameter range [%v, %v] is not finite", ErrInvalidConfig, c.ParamMin, c.ParamMax)
	}
	return nil
}

// SegmentsPerCycle is ceil(SampleCount * FrameInterval / SegmentDuration)
func (c Config) SegmentsPerCycle() int {
	total := time.Duration(c.SampleCount) * c.FrameInterval
	n := total / c.SegmentDuration
	if total%c.SegmentDuration != 0 {
		n++
	}
	return int(n)
}

// FramesPerSegment is the number of frames sharing one segment id, at least 1
func (c Config) FramesPerSegment() int {
	return max(1, int(c.SegmentDuration/c.FrameInterval))
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
