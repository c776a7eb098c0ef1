// Package metrics provides run metrics observed during simulation.
package metrics

import (
	"github.com/san-kum/chaoscope/internal/dynamo"
)

// Extent tracks the largest absolute state component seen over a run,
// i.e. the bounding envelope of the trajectory.
type Extent struct {
	max float64
}

func NewExtent() *Extent {
	return &Extent{}
}

func (e *Extent) Name() string { return "extent" }

func (e *Extent) Observe(x dynamo.State, t float64) {
	if m := x.MaxAbs(); m > e.max {
		e.max = m
	}
}

func (e *Extent) Value() float64 { return e.max }

func (e *Extent) Reset() { e.max = 0 }
