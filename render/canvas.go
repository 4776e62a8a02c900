package render

import (
	"github.com/lixenwraith/butterfly/constant"
	"github.com/lixenwraith/butterfly/palette"
)

// brailleBase is the empty Braille pattern; dot bits are added to it
const brailleBase = 0x2800

// brailleBits maps dot (x, y) inside a cell to its Braille bit
var brailleBits = [constant.BrailleDotsY][constant.BrailleDotsX]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// canvasCell holds the lit dots of a terminal cell and the colour last drawn into it
type canvasCell struct {
	mask uint8
	fg   palette.RGB
}

// Canvas is a dot-addressable buffer of Braille cells
type Canvas struct {
	cells  []canvasCell
	width  int // cells
	height int // cells
}

// NewCanvas creates a canvas of width x height cells
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{}
	c.Resize(width, height)
	return c
}

// Resize adjusts dimensions, reallocating only if capacity is insufficient
func (c *Canvas) Resize(width, height int) {
	size := max(0, width) * max(0, height)
	if cap(c.cells) < size {
		c.cells = make([]canvasCell, size)
	} else {
		c.cells = c.cells[:size]
	}
	c.width = max(0, width)
	c.height = max(0, height)
	c.Clear()
}

// Clear removes all dots
func (c *Canvas) Clear() {
	clear(c.cells)
}

// Size returns dimensions in cells
func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

// Plot lights one dot; out-of-bounds dots are ignored
func (c *Canvas) Plot(dx, dy int, fg palette.RGB) {
	if dx < 0 || dy < 0 {
		return
	}
	x, y := dx/constant.BrailleDotsX, dy/constant.BrailleDotsY
	if x >= c.width || y >= c.height {
		return
	}
	cell := &c.cells[y*c.width+x]
	cell.mask |= brailleBits[dy%constant.BrailleDotsY][dx%constant.BrailleDotsX]
	cell.fg = fg
}

// Line lights every dot on the segment from (x0, y0) to (x1, y1), endpoints included
func (c *Canvas) Line(x0, y0, x1, y1 int, fg palette.RGB) {
	var t lineTraverser
	t.init(x0, y0, x1, y1)
	for t.next() {
		c.Plot(t.x, t.y, fg)
	}
}

// Cell returns the Braille rune and colour at cell (x, y); rune is 0 when no dot is lit
func (c *Canvas) Cell(x, y int) (rune, palette.RGB) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return 0, palette.RGB{}
	}
	cell := c.cells[y*c.width+x]
	if cell.mask == 0 {
		return 0, palette.RGB{}
	}
	return rune(brailleBase + int(cell.mask)), cell.fg
}

// Dots returns the number of lit dots, used by tests and diagnostics
func (c *Canvas) Dots() int {
	n := 0
	for _, cell := range c.cells {
		for m := cell.mask; m != 0; m &= m - 1 {
			n++
		}
	}
	return n
}
