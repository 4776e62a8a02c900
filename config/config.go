// Package config loads the optional TOML configuration file.
//
// Values are layered: built-in defaults, then the file, then command-line flags
// applied by the caller. Animation constants are validated by the animator.
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/butterfly/animator"
	"github.com/lixenwraith/butterfly/constant"
	"github.com/lixenwraith/butterfly/palette"
)

// ErrInvalidConfig is wrapped by file and display/audio validation failures
var ErrInvalidConfig = errors.New("invalid configuration")

// Animation mirrors animator.Config with durations in milliseconds
type Animation struct {
	ParamMin          float64 `toml:"param_min"`
	ParamMax          float64 `toml:"param_max"`
	SampleCount       int     `toml:"sample_count"`
	MaxRepeats        int     `toml:"max_repeats"`
	SegmentDurationMs int     `toml:"segment_duration_ms"`
	FrameIntervalMs   int     `toml:"frame_interval_ms"`
	Overlap           int     `toml:"overlap"`
}

// Palette selects the colour policy
type Palette struct {
	// Name is "basic" or a gradient name
	Name string `toml:"name"`
	// Entries is the gradient sample count, ignored for discrete palettes
	Entries int `toml:"entries"`
}

// Display holds renderer and trigger settings
type Display struct {
	Extent           float64 `toml:"extent"`
	Trigger          string  `toml:"trigger"`
	AutoStartDelayMs int     `toml:"auto_start_delay_ms"`
	RenderIntervalMs int     `toml:"render_interval_ms"`
}

// Audio holds cue settings
type Audio struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"`
}

// File is the whole configuration document
type File struct {
	Animation Animation `toml:"animation"`
	Palette   Palette   `toml:"palette"`
	Display   Display   `toml:"display"`
	Audio     Audio     `toml:"audio"`
}

// Default returns the reference configuration
func Default() File {
	return File{
		Animation: Animation{
			ParamMin:          constant.ParamMin,
			ParamMax:          constant.ParamMax,
			SampleCount:       constant.SampleCount,
			MaxRepeats:        constant.MaxRepeats,
			SegmentDurationMs: int(constant.SegmentDuration / time.Millisecond),
			FrameIntervalMs:   int(constant.FrameInterval / time.Millisecond),
			Overlap:           constant.SegmentOverlap,
		},
		Palette: Palette{
			Name:    constant.PaletteBasic,
			Entries: constant.GradientEntries,
		},
		Display: Display{
			Extent:           constant.ViewExtent,
			Trigger:          constant.TriggerManual,
			AutoStartDelayMs: int(constant.AutoStartDelay / time.Millisecond),
			RenderIntervalMs: int(constant.RenderInterval / time.Millisecond),
		},
		Audio: Audio{
			Enabled: true,
			Volume:  constant.AudioVolume,
		},
	}
}

// Load reads path over the defaults; an empty path returns the defaults
// Keys the schema does not know are rejected
func Load(path string) (File, error) {
	f := Default()
	if path == "" {
		return f, nil
	}

	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return File{}, fmt.Errorf("config %s: %w", path, err)
	}
	if err := checkUndecoded(md); err != nil {
		return File{}, fmt.Errorf("config %s: %w", path, err)
	}
	return f, f.Validate()
}

// Parse decodes a TOML document over the defaults
func Parse(data string) (File, error) {
	f := Default()
	md, err := toml.Decode(data, &f)
	if err != nil {
		return File{}, err
	}
	if err := checkUndecoded(md); err != nil {
		return File{}, err
	}
	return f, f.Validate()
}

func checkUndecoded(md toml.MetaData) error {
	undecoded := md.Undecoded()
	if len(undecoded) == 0 {
		return nil
	}
	keys := make([]string, len(undecoded))
	for i, k := range undecoded {
		keys[i] = k.String()
	}
	return fmt.Errorf("%w: unknown keys %s", ErrInvalidConfig, strings.Join(keys, ", "))
}

// maxMillis is the largest millisecond value representable as time.Duration
const maxMillis = math.MaxInt64 / int64(time.Millisecond)

func checkMillis(key string, ms int) error {
	if int64(ms) > maxMillis {
		return fmt.Errorf("%w: %s = %d exceeds %d", ErrInvalidConfig, key, ms, maxMillis)
	}
	return nil
}

// checkDurations guards the duration conversions done by Animator
func (a Animation) checkDurations() error {
	if err := checkMillis("segment_duration_ms", a.SegmentDurationMs); err != nil {
		return err
	}
	return checkMillis("frame_interval_ms", a.FrameIntervalMs)
}

// Validate checks display and audio settings and the range of millisecond fields
func (f File) Validate() error {
	if err := f.Animation.checkDurations(); err != nil {
		return err
	}
	if err := checkMillis("auto_start_delay_ms", f.Display.AutoStartDelayMs); err != nil {
		return err
	}
	if err := checkMillis("render_interval_ms", f.Display.RenderIntervalMs); err != nil {
		return err
	}

	switch {
	case f.Display.Trigger != constant.TriggerManual && f.Display.Trigger != constant.TriggerAuto:
		return fmt.Errorf("%w: trigger must be %q or %q, got %q",
			ErrInvalidConfig, constant.TriggerManual, constant.TriggerAuto, f.Display.Trigger)
	case f.Display.Extent <= 0:
		return fmt.Errorf("%w: view extent must be positive, got %v", ErrInvalidConfig, f.Display.Extent)
	case f.Display.AutoStartDelayMs < 0:
		return fmt.Errorf("%w: auto start delay must not be negative", ErrInvalidConfig)
	case f.Display.RenderIntervalMs <= 0:
		return fmt.Errorf("%w: render interval must be positive", ErrInvalidConfig)
	case f.Audio.Volume < 0 || f.Audio.Volume > 1:
		return fmt.Errorf("%w: volume must be in [0, 1], got %v", ErrInvalidConfig, f.Audio.Volume)
	}
	return nil
}

// Animator builds the animator configuration, resolving the palette
func (f File) Animator() (animator.Config, error) {
	p, err := palette.Lookup(f.Palette.Name, f.Palette.Entries)
	if err != nil {
		return animator.Config{}, err
	}
	a := f.Animation
	if err := a.checkDurations(); err != nil {
		return animator.Config{}, err
	}
	cfg := animator.Config{
		ParamMin:        a.ParamMin,
		ParamMax:        a.ParamMax,
		SampleCount:     a.SampleCount,
		MaxRepeats:      a.MaxRepeats,
		SegmentDuration: time.Duration(a.SegmentDurationMs) * time.Millisecond,
		FrameInterval:   time.Duration(a.FrameIntervalMs) * time.Millisecond,
		Overlap:         a.Overlap,
		Palette:         p,
	}
	return cfg, cfg.Validate()
}

// AutoStartDelay returns the auto trigger delay
func (d Display) AutoStartDelay() time.Duration {
	return time.Duration(d.AutoStartDelayMs) * time.Millisecond
}

// RenderInterval returns the screen refresh interval
func (d Display) RenderInterval() time.Duration {
	return time.Duration(d.RenderIntervalMs) * time.Millisecond
}
