package logistic

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTailConvergesToFixedPoint(t *testing.T) {
	// Pre-bifurcation (r=2.5) the map settles on the fixed point (r-1)/r.
	const r = 2.5
	fixed := (r - 1) / r

	tail := Tail(r, 1e-5, 1000, 100)
	require.Len(t, tail, 100)

	for _, x := range tail {
		assert.InDelta(t, fixed, x, 1e-9)
	}
}

func TestTailPeriodTwoCycle(t *testing.T) {
	// Post-bifurcation (r=3.2) the tail alternates between two values.
	tail := Tail(3.2, 1e-5, 1000, 100)
	require.Len(t, tail, 100)

	a, b := tail[0], tail[1]
	require.Greater(t, math.Abs(a-b), 0.1, "expected two distinct branch values")

	for i, x := range tail {
		want := a
		if i%2 == 1 {
			want = b
		}
		assert.InDelta(t, want, x, 1e-9, "index %d", i)
	}
}

func TestTailShorterThanKeep(t *testing.T) {
	tail := Tail(3.0, 0.5, 5, 10)
	assert.Len(t, tail, 5)

	assert.Nil(t, Tail(3.0, 0.5, 5, 0))
}

func TestLyapunovSign(t *testing.T) {
	// Periodic regime: negative exponent. Fully chaotic r=4: ln 2.
	assert.Negative(t, Lyapunov(3.2, 0.3, 1000, 5000))

	lam := Lyapunov(4.0, 0.3, 1000, 20000)
	assert.InDelta(t, math.Ln2, lam, 0.05)
}

func TestSweepRun(t *testing.T) {
	s := Sweep{RMin: 2.5, RMax: 4.0, Steps: 16, Iters: 400, Keep: 20, X0: 1e-5}

	points, err := s.Run()
	require.NoError(t, err)
	require.Len(t, points, 16*20)

	// Ordered by r, endpoints included.
	assert.Equal(t, 2.5, points[0].R)
	assert.Equal(t, 4.0, points[len(points)-1].R)
	for i := 1; i < len(points); i++ {
		assert.GreaterOrEqual(t, points[i].R, points[i-1].R)
	}

	// Orbit values stay inside the unit interval for r <= 4.
	for _, p := range points {
		assert.GreaterOrEqual(t, p.X, 0.0)
		assert.LessOrEqual(t, p.X, 1.0)
	}
}

func TestSweepValidation(t *testing.T) {
	tests := []struct {
		name  string
		sweep Sweep
	}{
		{"one step", Sweep{RMin: 2.5, RMax: 4, Steps: 1, Iters: 10, Keep: 5}},
		{"inverted range", Sweep{RMin: 4, RMax: 2.5, Steps: 10, Iters: 10, Keep: 5}},
		{"zero iters", Sweep{RMin: 2.5, RMax: 4, Steps: 10, Iters: 0, Keep: 5}},
		{"zero keep", Sweep{RMin: 2.5, RMax: 4, Steps: 10, Iters: 10, Keep: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.sweep.Run()
			assert.Error(t, err)
		})
	}
}
