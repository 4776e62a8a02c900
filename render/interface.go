package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/butterfly/animator"
)

// Status is the animator summary shown on the status row
type Status struct {
	State      animator.State
	Repeat     int
	MaxRepeats int
	Segments   int
	Palette    string
	Trigger    string
	TickRate   float64
}

// Frame is everything a layer needs to draw one screen
type Frame struct {
	Width, Height int
	Viewport      Viewport
	Segments      []animator.Segment
	Status        Status
}

// Layer draws one part of the screen
type Layer interface {
	Draw(screen tcell.Screen, frame *Frame)
}

// LayerFunc adapts a function to Layer
type LayerFunc func(screen tcell.Screen, frame *Frame)

// Draw calls f
func (f LayerFunc) Draw(screen tcell.Screen, frame *Frame) {
	f(screen, frame)
}
