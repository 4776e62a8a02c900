package curve

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrid(t *testing.T) {
	tests := []struct {
		name    string
		lo, hi  float64
		n       int
		wantErr bool
	}{
		{"reference", 0, 4 * math.Pi, 2000, false},
		{"single sample", 1, 5, 1, false},
		{"reversed range", 5, 1, 3, false},
		{"zero samples", 0, 1, 0, true},
		{"negative samples", 0, 1, -4, true},
		{"nan bound", math.NaN(), 1, 10, true},
		{"infinite bound", 0, math.Inf(1), 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGrid(tt.lo, tt.hi, tt.n)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidGrid)
				assert.Nil(t, g)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.n, g.Len())
			assert.Equal(t, tt.lo, g.At(0))
			if tt.n > 1 {
				assert.Equal(t, tt.hi, g.At(g.Len()-1))
			}
		})
	}
}

func TestGridLinearSpacing(t *testing.T) {
	g, err := NewGrid(0, 4*math.Pi, 2000)
	require.NoError(t, err)

	step := 4 * math.Pi / 1999
	for i := 1; i < g.Len(); i++ {
		assert.InDelta(t, step, g.At(i)-g.At(i-1), 1e-12, "step at %d", i)
	}
}

func TestGridRangeClamps(t *testing.T) {
	g, err := NewGrid(0, 9, 10)
	require.NoError(t, err)

	assert.Equal(t, []float64{2, 3, 4}, g.Range(2, 5))
	assert.Len(t, g.Range(-5, 3), 3)
	assert.Len(t, g.Range(8, 500), 2)
	assert.Empty(t, g.Range(7, 3))
	assert.Empty(t, g.Range(100, 200))

	// Returned slice is a copy
	r := g.Range(0, 2)
	r[0] = 42
	assert.Equal(t, 0.0, g.At(0))
}

func TestRadiusMatchesSample(t *testing.T) {
	g, err := NewGrid(0, 4*math.Pi, 2000)
	require.NoError(t, err)

	for i := 0; i < g.Len(); i++ {
		theta := g.At(i)
		p := Sample(theta)
		r := Radius(theta)
		assert.InDelta(t, r*r, p.X*p.X+p.Y*p.Y, 1e-9, "theta=%v", theta)
	}
}

func TestRadiusKnownValues(t *testing.T) {
	// θ = π/2 gives θ' = 0: e - 2 - 0
	assert.InDelta(t, math.E-2, Radius(math.Pi/2), 1e-15)

	// θ = 3π/2 gives θ' = π: e^-1 - 2 - sin(π/12)^5
	want := math.Exp(-1) - 2 - math.Pow(math.Sin(math.Pi/12), 5)
	assert.InDelta(t, want, Radius(3*math.Pi/2), 1e-15)

	// θ' = 0 lies on the positive x axis
	p := Sample(math.Pi / 2)
	assert.InDelta(t, math.E-2, p.X, 1e-15)
	assert.InDelta(t, 0, p.Y, 1e-15)
}

func TestSampleRange(t *testing.T) {
	g, err := NewGrid(0, 4*math.Pi, 100)
	require.NoError(t, err)

	pts := SampleRange(g, 10, 20, nil)
	require.Len(t, pts, 10)
	for i, p := range pts {
		assert.Equal(t, Sample(g.At(10+i)), p)
	}

	t.Run("reuses capacity", func(t *testing.T) {
		buf := make([]Point, 0, 64)
		out := SampleRange(g, 0, 5, buf)
		require.Len(t, out, 5)
		assert.Same(t, &buf[:1][0], &out[0])
	})

	t.Run("out of range is empty", func(t *testing.T) {
		assert.Empty(t, SampleRange(g, 100, 3000, nil))
		assert.Empty(t, SampleRange(g, 5, 5, nil))
		assert.Empty(t, SampleRange(g, -10, 0, nil))
	})
}

func TestBounds(t *testing.T) {
	lo, hi := Bounds(nil)
	assert.Equal(t, Point{}, lo)
	assert.Equal(t, Point{}, hi)

	lo, hi = Bounds([]Point{{1, -2}, {-3, 4}, {0.5, 0}})
	assert.Equal(t, Point{-3, -2}, lo)
	assert.Equal(t, Point{1, 4}, hi)
}

func TestFullCurveFitsReferenceView(t *testing.T) {
	g, err := NewGrid(0, 4*math.Pi, 2000)
	require.NoError(t, err)

	lo, hi := Bounds(SampleRange(g, 0, g.Len(), nil))
	for _, v := range []float64{lo.X, lo.Y, hi.X, hi.Y} {
		assert.LessOrEqual(t, math.Abs(v), 3.5)
	}
}
