package logistic

import (
	"fmt"

	"github.com/san-kum/chaoscope/internal/dynamo"
)

// Point is one retained (r, x) pair of a bifurcation sweep.
type Point struct {
	R, X float64
}

// Sweep describes a bifurcation diagram computation: Steps values of r
// spaced evenly over [RMin, RMax], each iterated Iters times from X0 with
// the final Keep values retained.
type Sweep struct {
	RMin  float64
	RMax  float64
	Steps int
	Iters int
	Keep  int
	X0    float64
}

func DefaultSweep() Sweep {
	return Sweep{
		RMin:  2.5,
		RMax:  4.0,
		Steps: 1000,
		Iters: 1000,
		Keep:  100,
		X0:    1e-5,
	}
}

func (s Sweep) validate() error {
	if s.Steps < 2 {
		return fmt.Errorf("sweep needs at least 2 steps, got %d", s.Steps)
	}
	if s.RMax <= s.RMin {
		return fmt.Errorf("empty sweep range [%g,%g]", s.RMin, s.RMax)
	}
	if s.Iters <= 0 || s.Keep <= 0 {
		return fmt.Errorf("iteration counts must be positive (iters=%d keep=%d)", s.Iters, s.Keep)
	}
	return nil
}

// Run produces the (r, x) scatter of the diagram, ordered by r. Each r is
// independent, so parameter values are distributed across workers.
func (s Sweep) Run() ([]Point, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}

	keep := s.Keep
	if keep > s.Iters {
		keep = s.Iters
	}
	dr := (s.RMax - s.RMin) / float64(s.Steps-1)

	points := make([]Point, s.Steps*keep)
	dynamo.ParallelFor(s.Steps, 16, func(start, end int) {
		for i := start; i < end; i++ {
			r := s.RMin + float64(i)*dr
			for j, x := range Tail(r, s.X0, s.Iters, keep) {
				points[i*keep+j] = Point{R: r, X: x}
			}
		}
	})

	return points, nil
}
