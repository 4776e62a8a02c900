// Package palette provides the colour sequences segments are painted with.
//
// Two policies exist: a short discrete list of named colours, and a gradient
// sampled evenly from a keyframed colour scale. Both produce an immutable
// Palette; the caller owns the advancing index.
package palette

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownPalette is returned by Lookup for an unregistered name
	ErrUnknownPalette = errors.New("unknown palette")

	// ErrInvalidPalette is returned for empty palettes or non-positive entry counts
	ErrInvalidPalette = errors.New("invalid palette")
)

// RGB is a 24-bit colour
type RGB struct {
	R, G, B uint8
}

// String formats the colour as #rrggbb
func (c RGB) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Policy identifies how the palette was built
type Policy uint8

const (
	PolicyDiscrete Policy = iota
	PolicyGradient
)

func (p Policy) String() string {
	switch p {
	case PolicyDiscrete:
		return "discrete"
	case PolicyGradient:
		return "gradient"
	default:
		return "unknown"
	}
}

// Palette is an immutable ordered list of colours
type Palette struct {
	name   string
	policy Policy
	colors []RGB
}

// Name returns the registered palette name
func (p *Palette) Name() string {
	return p.name
}

// Policy returns the policy the palette was built with
func (p *Palette) Policy() Policy {
	return p.policy
}

// Len returns the number of entries
func (p *Palette) Len() int {
	return len(p.colors)
}

// At returns the colour at index i modulo Len, negative indices included
func (p *Palette) At(i int) RGB {
	n := len(p.colors)
	i %= n
	if i < 0 {
		i += n
	}
	return p.colors[i]
}

// Colors returns a copy of all entries
func (p *Palette) Colors() []RGB {
	out := make([]RGB, len(p.colors))
	copy(out, p.colors)
	return out
}

// Names lists the palettes Lookup understands
func Names() []string {
	names := []string{NameBasic}
	for _, g := range gradients {
		names = append(names, g.name)
	}
	return names
}

// Lookup resolves a palette by name
// n is the gradient entry count and is ignored for discrete palettes
func Lookup(name string, n int) (*Palette, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == NameBasic {
		return Basic(), nil
	}
	for _, g := range gradients {
		if g.name == name {
			return g.build(n)
		}
	}
	return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownPalette, name, strings.Join(Names(), ", "))
}
