package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/butterfly/animator"
	"github.com/lixenwraith/butterfly/constant"
	"github.com/lixenwraith/butterfly/palette"
)

var (
	styleBackground = tcell.StyleDefault.Background(RGBToTcell(RgbBackground)).Foreground(RGBToTcell(RgbTitle))
	styleTitle      = tcell.StyleDefault.Background(RGBToTcell(RgbBackground)).Foreground(RGBToTcell(RgbTitle)).Bold(true)
	styleStatus     = tcell.StyleDefault.Background(RGBToTcell(RgbStatusBg)).Foreground(RGBToTcell(RgbStatusFg))
)

func drawBackground(screen tcell.Screen, _ *Frame) {
	screen.Fill(' ', styleBackground)
}

func drawTitle(screen tcell.Screen, f *Frame) {
	if f.Height < 1 {
		return
	}
	x := max(0, (f.Width-len(constant.Title))/2)
	drawText(screen, x, 0, f.Width, constant.Title, styleTitle)
}

func drawStatus(screen tcell.Screen, f *Frame) {
	if f.Height < 2 {
		return
	}
	y := f.Height - 1
	for x := 0; x < f.Width; x++ {
		screen.SetContent(x, y, ' ', nil, styleStatus)
	}

	s := f.Status
	state := fmt.Sprintf(" %s ", s.State)
	stateStyle := styleStatus.Background(RGBToTcell(stateColor(s.State))).Foreground(RGBToTcell(RgbBackground)).Bold(true)
	x := drawText(screen, 0, y, f.Width, state, stateStyle)

	info := fmt.Sprintf(" cycle %d/%d  segments %d  palette %s  trigger %s  %.0f fps ",
		min(s.Repeat+1, s.MaxRepeats), s.MaxRepeats, s.Segments, s.Palette, s.Trigger, s.TickRate)
	x = drawText(screen, x, y, f.Width, info, styleStatus)

	help := "[s]tart [x]stop [r]estart [p]alette [q]uit "
	if hx := f.Width - len(help); hx > x {
		drawText(screen, hx, y, f.Width, help, styleStatus)
	}
}

func stateColor(s animator.State) palette.RGB {
	switch s {
	case animator.StateRunning:
		return RgbRunning
	case animator.StateStopped:
		return RgbStopped
	default:
		return RgbIdle
	}
}

// drawText writes s from (x, y) clipped at limit, returning the column after the last rune
func drawText(screen tcell.Screen, x, y, limit int, s string, style tcell.Style) int {
	for _, r := range s {
		if x >= limit {
			break
		}
		screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}

// CurveLayer rasterises segment polylines in creation order; later segments overdraw earlier ones
type CurveLayer struct {
	canvas *Canvas
}

// NewCurveLayer creates an empty curve layer
func NewCurveLayer() *CurveLayer {
	return &CurveLayer{canvas: NewCanvas(0, 0)}
}

// Canvas exposes the raster of the last draw
func (l *CurveLayer) Canvas() *Canvas {
	return l.canvas
}

// Draw implements Layer
func (l *CurveLayer) Draw(screen tcell.Screen, f *Frame) {
	vp := f.Viewport
	if w, h := l.canvas.Size(); w != vp.Cols || h != vp.Rows {
		l.canvas.Resize(vp.Cols, vp.Rows)
	} else {
		l.canvas.Clear()
	}
	if vp.Empty() {
		return
	}

	for _, seg := range f.Segments {
		l.rasterize(vp, seg)
	}

	base := tcell.StyleDefault.Background(RGBToTcell(RgbBackground))
	for y := 0; y < vp.Rows; y++ {
		for x := 0; x < vp.Cols; x++ {
			r, fg := l.canvas.Cell(x, y)
			if r == 0 {
				continue
			}
			screen.SetContent(vp.OffsetX+x, vp.OffsetY+y, r, nil, base.Foreground(RGBToTcell(fg)))
		}
	}
}

func (l *CurveLayer) rasterize(vp Viewport, seg animator.Segment) {
	switch len(seg.Points) {
	case 0:
		return
	case 1:
		x, y := vp.Project(seg.Points[0])
		l.canvas.Plot(x, y, seg.Color)
		return
	}
	px, py := vp.Project(seg.Points[0])
	for _, p := range seg.Points[1:] {
		x, y := vp.Project(p)
		l.canvas.Line(px, py, x, y, seg.Color)
		px, py = x, y
	}
}
