package render

import (
	"math"

	"github.com/lixenwraith/butterfly/constant"
	"github.com/lixenwraith/butterfly/curve"
)

// Viewport maps world coordinates onto the Braille dot grid of a centred square plot
type Viewport struct {
	// Extent is the half-width of the visible world square
	Extent float64

	// Plot placement in cells
	OffsetX, OffsetY int
	Cols, Rows       int
}

// NewViewport fits the largest square plot into a screen of width x height cells
// Title and status rows are reserved; a cell is treated as twice as tall as wide
func NewViewport(width, height int, extent float64) Viewport {
	rows := max(0, height-constant.TitleRows-constant.StatusRows)

	// Square side measured in cell widths, even so the dot grid stays square
	side := min(width, int(float64(rows)*constant.CellAspect))
	side &^= 1

	cols := side
	plotRows := int(float64(side) / constant.CellAspect)

	return Viewport{
		Extent:  extent,
		OffsetX: (width - cols) / 2,
		OffsetY: constant.TitleRows + (rows-plotRows)/2,
		Cols:    cols,
		Rows:    plotRows,
	}
}

// DotsX and DotsY are the dot grid dimensions
func (v Viewport) DotsX() int { return v.Cols * constant.BrailleDotsX }
func (v Viewport) DotsY() int { return v.Rows * constant.BrailleDotsY }

// Empty reports whether the plot has no drawable area
func (v Viewport) Empty() bool {
	return v.Cols == 0 || v.Rows == 0
}

// Project maps a world point to dot coordinates; +Y is up in world space
// Points outside the extent map outside the dot grid
func (v Viewport) Project(p curve.Point) (int, int) {
	span := 2 * v.Extent
	fx := (p.X + v.Extent) / span * float64(v.DotsX()-1)
	fy := (v.Extent - p.Y) / span * float64(v.DotsY()-1)
	return int(math.Round(fx)), int(math.Round(fy))
}
