// Package fractal implements the escape-time membership test for the
// Mandelbrot set over a sampled complex-plane lattice.
//
// A point c is classified by iterating z <- z^2 + c from z = 0 and
// counting iterations until |z|^2 exceeds 4, up to a fixed bound.
// Points that never escape within the bound are treated as members.
package fractal
