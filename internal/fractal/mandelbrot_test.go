package fractal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscapeIterOriginNeverEscapes(t *testing.T) {
	// z stays at 0 forever for c = 0.
	assert.Equal(t, 1000, EscapeIter(0, 0, 1000))
}

func TestEscapeIterBoundaryPoint(t *testing.T) {
	// For c = (2,0): z_1 = 2 with |z_1|^2 = 4, which is not an escape;
	// z_2 = 6 is. The count comes back as 2.
	assert.Equal(t, 2, EscapeIter(2, 0, 1000))
}

func TestEscapeIterKnownPoints(t *testing.T) {
	tests := []struct {
		name   string
		cr, ci float64
		inSet  bool
	}{
		{"origin", 0, 0, true},
		{"main cardioid", -0.5, 0, true},
		{"period-2 bulb", -1, 0, true},
		{"far outside", 2, 2, false},
		{"just outside tip", -2.1, 0, false},
		{"above set", 0, 1.5, false},
	}

	const maxIter = 500
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := EscapeIter(tt.cr, tt.ci, maxIter)
			if tt.inSet {
				assert.Equal(t, maxIter, it)
			} else {
				assert.Less(t, it, maxIter)
			}
		})
	}
}

func TestEvaluateGridShape(t *testing.T) {
	g := DefaultGrid()
	g.Res = 10
	g.MaxIter = 50

	samples, err := Evaluate(g)
	require.NoError(t, err)
	require.Len(t, samples, g.Side()*g.Side())

	// Boundary points of the rectangle are included.
	assert.Equal(t, -2.0, samples[0].X)
	assert.Equal(t, -2.0, samples[0].Y)
	last := samples[len(samples)-1]
	assert.Equal(t, 2.0, last.X)
	assert.Equal(t, 2.0, last.Y)
}

func TestEvaluateRowMajorOrder(t *testing.T) {
	g := Grid{Res: 3, MaxIter: 20, XMin: -2, XMax: 2, YMin: -2, YMax: 2}

	samples, err := Evaluate(g)
	require.NoError(t, err)

	side := g.Side()
	for row := 0; row < side; row++ {
		for col := 0; col < side; col++ {
			s := samples[row*side+col]
			assert.Equal(t, EscapeIter(s.X, s.Y, g.MaxIter), s.Iter)
			if col > 0 {
				assert.Greater(t, s.X, samples[row*side+col-1].X)
			}
		}
	}
}

// The set is symmetric under y -> -y, and for symmetric bounds the
// lattice construction makes mirrored rows exact negations, so mirrored
// lattice rows must carry identical iteration counts.
func TestEvaluateSymmetricAboutRealAxis(t *testing.T) {
	g := Grid{Res: 20, MaxIter: 200, XMin: -2, XMax: 2, YMin: -2, YMax: 2}

	samples, err := Evaluate(g)
	require.NoError(t, err)

	side := g.Side()
	for row := 0; row < side; row++ {
		mirror := side - 1 - row
		for col := 0; col < side; col++ {
			s := samples[row*side+col]
			ms := samples[mirror*side+col]
			require.Equal(t, s.Y, -ms.Y, "rows %d/%d are not exact mirrors", row, mirror)
			require.Equal(t, s.Iter, ms.Iter, "asymmetry at (%g,%g)", s.X, s.Y)
		}
	}
}

func TestInSetFilter(t *testing.T) {
	samples := []Sample{
		{X: 0, Y: 0, Iter: 100},
		{X: 2, Y: 2, Iter: 1},
		{X: -1, Y: 0, Iter: 100},
	}

	members := InSet(samples, 100)
	require.Len(t, members, 2)
	assert.Equal(t, 0.0, members[0].X)
	assert.Equal(t, -1.0, members[1].X)
}

func TestEvaluateRejectsBadGrid(t *testing.T) {
	tests := []struct {
		name string
		grid Grid
	}{
		{"zero res", Grid{Res: 0, MaxIter: 10, XMin: -2, XMax: 2, YMin: -2, YMax: 2}},
		{"zero max iter", Grid{Res: 5, MaxIter: 0, XMin: -2, XMax: 2, YMin: -2, YMax: 2}},
		{"empty rectangle", Grid{Res: 5, MaxIter: 10, XMin: 2, XMax: -2, YMin: -2, YMax: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Evaluate(tt.grid)
			assert.Error(t, err)
		})
	}
}
