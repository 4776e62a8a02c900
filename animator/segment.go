package animator

import (
	"github.com/lixenwraith/butterfly/curve"
	"github.com/lixenwraith/butterfly/palette"
)

// Segment is a contiguous single-colour run of the curve
// Only the newest segment of a cycle is open; earlier ones are frozen
type Segment struct {
	// ID is the time-slice index within the cycle
	ID int

	// Start and End bound the grid sub-range [Start, End)
	Start, End int

	// ColorIndex is the palette entry the segment was opened with
	ColorIndex int
	Color      palette.RGB

	// Points is the polyline for [Start, End), rebuilt while the segment is open
	Points []curve.Point
}

// Len returns the number of samples covered
func (s Segment) Len() int {
	return s.End - s.Start
}
