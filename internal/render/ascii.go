package render

import (
	"gonum.org/v1/gonum/floats"
)

// ScatterASCII plots (x, y) points on a braille canvas of w x h character
// cells, autoscaled to the data bounds. Points outside a degenerate axis
// range collapse onto its midline.
func ScatterASCII(xs, ys []float64, w, h int) string {
	if len(xs) == 0 || len(xs) != len(ys) || w <= 0 || h <= 0 {
		return ""
	}

	xMin, xMax := floats.Min(xs), floats.Max(xs)
	yMin, yMax := floats.Min(ys), floats.Max(ys)
	xRange := xMax - xMin
	yRange := yMax - yMin
	if xRange == 0 {
		xRange = 1
	}
	if yRange == 0 {
		yRange = 1
	}

	canvas := NewCanvas(w, h)
	subW := float64(w*2 - 1)
	subH := float64(h*4 - 1)

	for i := range xs {
		px := int(subW * (xs[i] - xMin) / xRange)
		py := int(subH * (ys[i] - yMin) / yRange)
		canvas.Set(px, int(subH)-py)
	}

	return canvas.String()
}
