// Package systems provides the chaotic ODE systems available for simulation.
//
// Each system implements the [dynamo.System] interface, defining the
// differential equations governing its evolution:
//
//   - [Lorenz]: the classic butterfly attractor
//   - [Rossler]: a single-lobe chaotic attractor
//
// Both also implement [dynamo.Configurable] for runtime parameter
// adjustment from the live view and preset configurations.
package systems
