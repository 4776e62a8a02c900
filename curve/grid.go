package curve

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidGrid is returned for a non-positive sample count or non-finite bounds
var ErrInvalidGrid = errors.New("invalid parameter grid")

// Grid is an ordered, immutable sequence of linearly spaced parameter values
type Grid struct {
	values []float64
}

// NewGrid samples n points over [lo, hi] inclusive
// First value is lo, last is hi; n == 1 yields [lo]
func NewGrid(lo, hi float64, n int) (*Grid, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: sample count %d", ErrInvalidGrid, n)
	}
	if math.IsNaN(lo) || math.IsInf(lo, 0) || math.IsNaN(hi) || math.IsInf(hi, 0) {
		return nil, fmt.Errorf("%w: range [%v, %v]", ErrInvalidGrid, lo, hi)
	}

	values := make([]float64, n)
	if n == 1 {
		values[0] = lo
	} else {
		step := (hi - lo) / float64(n-1)
		for i := range values {
			values[i] = lo + float64(i)*step
		}
		// Pin the endpoint against accumulated rounding
		values[n-1] = hi
	}

	return &Grid{values: values}, nil
}

// Len returns the number of samples
func (g *Grid) Len() int {
	return len(g.values)
}

// At returns the i-th parameter value
func (g *Grid) At(i int) float64 {
	return g.values[i]
}

// Range returns a copy of values in [start, end), clamped to the grid
func (g *Grid) Range(start, end int) []float64 {
	start, end = g.clamp(start, end)
	out := make([]float64, end-start)
	copy(out, g.values[start:end])
	return out
}

// clamp restricts [start, end) to valid indices with start <= end
func (g *Grid) clamp(start, end int) (int, int) {
	n := len(g.values)
	start = max(0, min(start, n))
	end = max(start, min(end, n))
	return start, end
}
