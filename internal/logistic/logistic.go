// Package logistic implements the logistic map x <- r*x*(1-x) and its
// bifurcation diagram: a sweep over the control parameter r that discards
// the transient and retains the tail of each orbit.
package logistic

import "math"

// Step applies one iteration of the map.
func Step(r, x float64) float64 {
	return r * x * (1 - x)
}

// Tail iterates total times from x0 and returns the final keep values,
// letting transients decay before the attractor is sampled.
func Tail(r, x0 float64, total, keep int) []float64 {
	if keep > total {
		keep = total
	}
	if keep <= 0 {
		return nil
	}

	x := x0
	for i := 0; i < total-keep; i++ {
		x = Step(r, x)
	}

	tail := make([]float64, keep)
	for i := range tail {
		x = Step(r, x)
		tail[i] = x
	}
	return tail
}

// Lyapunov estimates the map's Lyapunov exponent at r as the mean of
// ln|r*(1-2x)| along the orbit, after discarding a transient. Positive
// values indicate chaos.
func Lyapunov(r, x0 float64, transient, samples int) float64 {
	x := x0
	for i := 0; i < transient; i++ {
		x = Step(r, x)
	}

	sum := 0.0
	for i := 0; i < samples; i++ {
		x = Step(r, x)
		d := math.Abs(r * (1 - 2*x))
		if d == 0 {
			// Superstable orbit; the exponent diverges to -inf, clamp.
			return math.Inf(-1)
		}
		sum += math.Log(d)
	}
	return sum / float64(samples)
}
