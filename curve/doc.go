// Package curve samples the butterfly polar curve over a fixed parameter grid.
//
// The grid is immutable once built. Sampling functions are pure and may be
// called from any goroutine.
package curve
