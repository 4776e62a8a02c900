// Package engine holds the timing primitives of the host loop: time sources
// and the frame meter behind the status bar rate readout.
package engine
