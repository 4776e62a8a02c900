package palette

import "fmt"

// NameBasic is the reference discrete palette
const NameBasic = "basic"

// Named colours of the basic palette
var (
	Red     = RGB{255, 0, 0}
	Green   = RGB{0, 128, 0}
	Blue    = RGB{0, 0, 255}
	Cyan    = RGB{0, 255, 255}
	Magenta = RGB{255, 0, 255}
	Yellow  = RGB{255, 255, 0}
	White   = RGB{255, 255, 255}
)

var basic = []RGB{Red, Green, Blue, Cyan, Magenta, Yellow, White}

// NewDiscrete builds a discrete palette from an explicit colour list
func NewDiscrete(name string, colors ...RGB) (*Palette, error) {
	if len(colors) == 0 {
		return nil, fmt.Errorf("%w: %q has no colours", ErrInvalidPalette, name)
	}
	c := make([]RGB, len(colors))
	copy(c, colors)
	return &Palette{name: name, policy: PolicyDiscrete, colors: c}, nil
}

// Basic returns the 7-entry cycle: red, green, blue, cyan, magenta, yellow, white
func Basic() *Palette {
	p, _ := NewDiscrete(NameBasic, basic...)
	return p
}
