package render

// lineTraverser walks the dots of a Bresenham line without allocating
type lineTraverser struct {
	x, y    int
	x1, y1  int
	dx, dy  int // dx >= 0, dy <= 0
	sx, sy  int
	err     int
	started bool
	done    bool
}

func (t *lineTraverser) init(x0, y0, x1, y1 int) {
	*t = lineTraverser{
		x: x0, y: y0,
		x1: x1, y1: y1,
		dx: abs(x1 - x0), dy: -abs(y1 - y0),
		sx: sign(x1 - x0), sy: sign(y1 - y0),
	}
	t.err = t.dx + t.dy
}

// next advances to the following dot; the first call yields the start point
func (t *lineTraverser) next() bool {
	if t.done {
		return false
	}
	if !t.started {
		t.started = true
		return true
	}
	if t.x == t.x1 && t.y == t.y1 {
		t.done = true
		return false
	}
	e2 := 2 * t.err
	if e2 >= t.dy {
		t.err += t.dy
		t.x += t.sx
	}
	if e2 <= t.dx {
		t.err += t.dx
		t.y += t.sy
	}
	return true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	if v < 0 {
		return -1
	}
	return 1
}
