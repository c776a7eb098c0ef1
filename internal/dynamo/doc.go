// Package dynamo provides core simulation primitives for dynamical systems.
//
// The package defines the fundamental interfaces and types for numerical
// simulation of ordinary differential equations (ODEs):
//
//   - [State]: vector representing system state
//   - [System]: interface for autonomous ODE systems (dX/dt = f(X, t))
//   - [Integrator]: fixed-step numerical integrator interface
//   - [Simulator]: orchestrates simulation runs
//
// # Example
//
//	sys := systems.NewLorenz()
//	integ := integrators.NewEuler()
//	sim := dynamo.New(sys, integ)
//	result, _ := sim.Run(ctx, sys.DefaultState(), cfg)
//
// # Thread Safety
//
// Simulator instances are NOT thread-safe. For independent parallel work
// over an index range (e.g. a sample grid), use [ParallelFor].
package dynamo
