package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/butterfly/palette"
)

// RGBToTcell converts a palette colour to a true-colour tcell.Color
func RGBToTcell(c palette.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// TcellToRGB converts tcell.Color to RGB, treating ColorDefault as the background
func TcellToRGB(c tcell.Color) palette.RGB {
	if c == tcell.ColorDefault {
		return RgbBackground
	}
	r, g, b := c.RGB()
	return palette.RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
}
