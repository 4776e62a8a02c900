package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/butterfly/animator"
	"github.com/lixenwraith/butterfly/constant"
)

type layerEntry struct {
	layer    Layer
	priority Priority
}

// Orchestrator composes layers onto a tcell screen
type Orchestrator struct {
	screen tcell.Screen
	extent float64
	layers []layerEntry
	frame  Frame
}

// NewOrchestrator creates an orchestrator with the default layers registered:
// background, curve, title and status
func NewOrchestrator(screen tcell.Screen, extent float64) *Orchestrator {
	if extent <= 0 {
		extent = constant.ViewExtent
	}
	o := &Orchestrator{
		screen: screen,
		extent: extent,
		layers: make([]layerEntry, 0, 8),
	}
	o.Register(LayerFunc(drawBackground), PriorityBackground)
	o.Register(NewCurveLayer(), PriorityCurve)
	o.Register(LayerFunc(drawTitle), PriorityUI)
	o.Register(LayerFunc(drawStatus), PriorityUI)
	return o
}

// Register adds a layer at the given priority, keeping insertion order within a priority
func (o *Orchestrator) Register(l Layer, priority Priority) {
	entry := layerEntry{layer: l, priority: priority}

	i := len(o.layers)
	o.layers = append(o.layers, entry)
	for i > 0 && o.layers[i-1].priority > priority {
		o.layers[i] = o.layers[i-1]
		i--
	}
	o.layers[i] = entry
}

// Viewport returns the plot placement for the current screen size
func (o *Orchestrator) Viewport() Viewport {
	w, h := o.screen.Size()
	return NewViewport(w, h, o.extent)
}

// Render draws all layers and shows the result
func (o *Orchestrator) Render(segments []animator.Segment, status Status) {
	w, h := o.screen.Size()
	o.frame = Frame{
		Width:    w,
		Height:   h,
		Viewport: NewViewport(w, h, o.extent),
		Segments: segments,
		Status:   status,
	}
	for _, e := range o.layers {
		e.layer.Draw(o.screen, &o.frame)
	}
	o.screen.Show()
}
