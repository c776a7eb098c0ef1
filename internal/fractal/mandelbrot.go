package fractal

import (
	"fmt"

	"github.com/san-kum/chaoscope/internal/dynamo"
)

// Sample is one evaluated lattice point: position and the iteration count
// at which the orbit escaped, or MaxIter if it never did.
type Sample struct {
	X, Y float64
	Iter int
}

// Grid describes a (2*Res+1) x (2*Res+1) lattice over a rectangle of the
// complex plane. Boundary points are included.
type Grid struct {
	Res     int
	MaxIter int
	XMin    float64
	XMax    float64
	YMin    float64
	YMax    float64
}

func DefaultGrid() Grid {
	return Grid{
		Res:     100,
		MaxIter: 1000,
		XMin:    -2, XMax: 2,
		YMin: -2, YMax: 2,
	}
}

// Side returns the lattice side length, 2*Res+1.
func (g Grid) Side() int { return 2*g.Res + 1 }

func (g Grid) validate() error {
	if g.Res <= 0 {
		return fmt.Errorf("resolution must be positive, got %d", g.Res)
	}
	if g.MaxIter <= 0 {
		return fmt.Errorf("max iterations must be positive, got %d", g.MaxIter)
	}
	if g.XMax <= g.XMin || g.YMax <= g.YMin {
		return fmt.Errorf("empty grid rectangle [%g,%g]x[%g,%g]", g.XMin, g.XMax, g.YMin, g.YMax)
	}
	return nil
}

// EscapeIter runs the escape-time test for c = (cr, ci), returning the
// smallest n with |z_n|^2 > 4, or maxIter when the orbit stays bounded.
// The boundary case |z|^2 == 4 counts as bounded.
func EscapeIter(cr, ci float64, maxIter int) int {
	var zr, zi float64
	for it := 0; it < maxIter; it++ {
		if zr*zr+zi*zi > 4 {
			return it
		}
		zr, zi = zr*zr-zi*zi+cr, 2*zr*zi+ci
	}
	return maxIter
}

// Evaluate classifies every lattice point of g. Samples come back in
// row-major order (y outer, x inner) regardless of how rows are
// distributed across workers.
func Evaluate(g Grid) ([]Sample, error) {
	if err := g.validate(); err != nil {
		return nil, err
	}

	side := g.Side()
	dx := (g.XMax - g.XMin) / float64(side-1)
	dy := (g.YMax - g.YMin) / float64(side-1)
	yMid := (g.YMin + g.YMax) / 2

	samples := make([]Sample, side*side)

	// Rows are independent, so they parallelize cleanly.
	dynamo.ParallelFor(side, 8, func(start, end int) {
		for row := start; row < end; row++ {
			// Building ci outward from the center row makes mirrored
			// rows exact negations for symmetric bounds, so the set's
			// real-axis symmetry survives float rounding.
			ci := yMid + float64(row-g.Res)*dy
			for col := 0; col < side; col++ {
				cr := g.XMin + float64(col)*dx
				samples[row*side+col] = Sample{
					X:    cr,
					Y:    ci,
					Iter: EscapeIter(cr, ci, g.MaxIter),
				}
			}
		}
	})

	return samples, nil
}

// InSet filters samples down to those that exhausted the iteration bound.
func InSet(samples []Sample, maxIter int) []Sample {
	members := make([]Sample, 0, len(samples)/4)
	for _, s := range samples {
		if s.Iter == maxIter {
			members = append(members, s)
		}
	}
	return members
}
