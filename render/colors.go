package render

import "github.com/lixenwraith/butterfly/palette"

// Fixed UI colours; the plot background is black
var (
	RgbBackground = palette.RGB{R: 0, G: 0, B: 0}
	RgbTitle      = palette.RGB{R: 255, G: 255, B: 255}
	RgbStatusFg   = palette.RGB{R: 180, G: 180, B: 180}
	RgbStatusBg   = palette.RGB{R: 26, G: 27, B: 38} // Tokyo Night background
	RgbRunning    = palette.RGB{R: 144, G: 238, B: 144}
	RgbStopped    = palette.RGB{R: 255, G: 165, B: 0}
	RgbIdle       = palette.RGB{R: 135, G: 206, B: 250}
)
