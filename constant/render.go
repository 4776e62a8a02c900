package constant

import "time"

// RenderInterval is the screen refresh interval (~60 FPS), decoupled from the animator tick
const RenderInterval = 16 * time.Millisecond

// EventChannelSize buffers terminal events between the poll goroutine and the loop
const EventChannelSize = 100

// View layout
const (
	// ViewExtent is the half-width of the square world window shown on screen
	ViewExtent = 3.5

	// TitleRows and StatusRows are reserved above and below the plot
	TitleRows  = 1
	StatusRows = 1

	// BrailleDotsX and BrailleDotsY are the sub-cell dot resolution of one terminal cell
	BrailleDotsX = 2
	BrailleDotsY = 4

	// CellAspect is the height/width ratio of a terminal cell
	CellAspect = 2.0
)

// Title is drawn centred on the first row
const Title = "Polar Curve Animation"

// FrameMeterWindow is the sliding window over which tick rate is measured
const FrameMeterWindow = time.Second
