package palette

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Gradient names
const (
	NamePlasma  = "plasma"
	NameViridis = "viridis"
	NameRainbow = "rainbow"
)

// Keyframes are evenly spaced over [0, 1]
var (
	plasmaHex = []string{
		"#0d0887", "#41049d", "#6a00a8", "#8f0da4", "#b12a90", "#cc4778",
		"#e16462", "#f2844b", "#fca636", "#fcce25", "#f0f921",
	}
	viridisHex = []string{
		"#440154", "#482878", "#3e4989", "#31688e", "#26828e",
		"#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725",
	}

	plasmaStops  = mustStops(plasmaHex)
	viridisStops = mustStops(viridisHex)
)

type gradientDef struct {
	name  string
	build func(n int) (*Palette, error)
}

var gradients = []gradientDef{
	{NamePlasma, func(n int) (*Palette, error) { return NewGradient(NamePlasma, plasmaStops, n) }},
	{NameViridis, func(n int) (*Palette, error) { return NewGradient(NameViridis, viridisStops, n) }},
	{NameRainbow, Rainbow},
}

// parseStops converts #rrggbb keyframes to colours
func parseStops(hex []string) ([]colorful.Color, error) {
	stops := make([]colorful.Color, len(hex))
	for i, h := range hex {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, fmt.Errorf("%w: keyframe %d: %v", ErrInvalidPalette, i, err)
		}
		stops[i] = c
	}
	return stops, nil
}

// mustStops is parseStops for the built-in tables; a malformed table is a programming error
func mustStops(hex []string) []colorful.Color {
	stops, err := parseStops(hex)
	if err != nil {
		panic(err)
	}
	return stops
}

// NewGradient samples n evenly spaced colours from a keyframed scale
// Keyframes are evenly spaced; interpolation is done in L*a*b*
func NewGradient(name string, stops []colorful.Color, n int) (*Palette, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %q needs a positive entry count, got %d", ErrInvalidPalette, name, n)
	}
	if len(stops) == 0 {
		return nil, fmt.Errorf("%w: %q has no keyframes", ErrInvalidPalette, name)
	}

	colors := make([]RGB, n)
	for i := range colors {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		colors[i] = toRGB(sample(stops, t))
	}
	return &Palette{name: name, policy: PolicyGradient, colors: colors}, nil
}

// Rainbow sweeps the HSV hue circle once in n steps
func Rainbow(n int) (*Palette, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %q needs a positive entry count, got %d", ErrInvalidPalette, NameRainbow, n)
	}
	colors := make([]RGB, n)
	for i := range colors {
		hue := 360.0 * float64(i) / float64(n)
		colors[i] = toRGB(colorful.Hsv(hue, 1, 1))
	}
	return &Palette{name: NameRainbow, policy: PolicyGradient, colors: colors}, nil
}

// Plasma returns the reference gradient with n entries
func Plasma(n int) (*Palette, error) {
	return NewGradient(NamePlasma, plasmaStops, n)
}

// sample interpolates the scale at t in [0, 1]
func sample(stops []colorful.Color, t float64) colorful.Color {
	if len(stops) == 1 || t <= 0 {
		return stops[0]
	}
	if t >= 1 {
		return stops[len(stops)-1]
	}
	pos := t * float64(len(stops)-1)
	i := int(pos)
	return stops[i].BlendLab(stops[i+1], pos-float64(i))
}

func toRGB(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{r, g, b}
}
