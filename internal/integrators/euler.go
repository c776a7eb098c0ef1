package integrators

import "github.com/san-kum/chaoscope/internal/dynamo"

// Euler is the forward-Euler integrator: x' = x + dt*f(x,t).
// Integration error accumulates with step count; it is kept because the
// fixed-step Lorenz pipeline is specified in terms of it.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(sys dynamo.System, x dynamo.State, t float64, dt float64) dynamo.State {
	dx := sys.Derive(x, t)
	result := make(dynamo.State, len(x))
	for i := range x {
		result[i] = x[i] + dt*dx[i]
	}
	return result
}
