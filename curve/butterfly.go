package curve

import "math"

// Point is a sampled curve coordinate in world units
type Point struct {
	X, Y float64
}

// rotate shifts the angle by a quarter turn so the curve stands upright
func rotate(theta float64) float64 {
	return theta - math.Pi/2
}

// radius evaluates the polar radius at an already rotated angle
func radius(t float64) float64 {
	return math.Exp(math.Cos(t)) - 2*math.Cos(4*t) - math.Pow(math.Sin(t/12), 5)
}

// Radius returns r(θ) = e^cos(θ') - 2cos(4θ') - sin(θ'/12)^5 with θ' = θ - π/2
func Radius(theta float64) float64 {
	return radius(rotate(theta))
}

// Sample returns the cartesian point for θ: (r·cos θ', r·sin θ')
func Sample(theta float64) Point {
	t := rotate(theta)
	r := radius(t)
	return Point{X: r * math.Cos(t), Y: r * math.Sin(t)}
}

// SampleRange evaluates the curve over grid indices [start, end), clamped to the grid
// Points are appended to dst[:0], reusing its capacity
func SampleRange(g *Grid, start, end int, dst []Point) []Point {
	start, end = g.clamp(start, end)
	dst = dst[:0]
	if cap(dst) < end-start {
		dst = make([]Point, 0, end-start)
	}
	for i := start; i < end; i++ {
		dst = append(dst, Sample(g.values[i]))
	}
	return dst
}

// Bounds returns the component-wise minimum and maximum of points
// Zero points are returned for an empty slice
func Bounds(points []Point) (lo, hi Point) {
	if len(points) == 0 {
		return Point{}, Point{}
	}
	lo, hi = points[0], points[0]
	for _, p := range points[1:] {
		lo.X = math.Min(lo.X, p.X)
		lo.Y = math.Min(lo.Y, p.Y)
		hi.X = math.Max(hi.X, p.X)
		hi.Y = math.Max(hi.Y, p.Y)
	}
	return lo, hi
}
