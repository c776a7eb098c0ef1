package render

import (
	"errors"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// viridis color stops, dark to bright.
var viridis = []color.RGBA{
	{R: 0x44, G: 0x01, B: 0x54, A: 0xff},
	{R: 0x48, G: 0x27, B: 0x77, A: 0xff},
	{R: 0x3e, G: 0x49, B: 0x89, A: 0xff},
	{R: 0x31, G: 0x68, B: 0x8e, A: 0xff},
	{R: 0x26, G: 0x82, B: 0x8e, A: 0xff},
	{R: 0x1f, G: 0x9e, B: 0x89, A: 0xff},
	{R: 0x35, G: 0xb7, B: 0x79, A: 0xff},
	{R: 0x6e, G: 0xce, B: 0x58, A: 0xff},
	{R: 0xb5, G: 0xde, B: 0x2b, A: 0xff},
	{R: 0xfd, G: 0xe7, B: 0x25, A: 0xff},
}

// viridisAt maps v in [min,max] onto the ramp.
func viridisAt(v, min, max float64) color.RGBA {
	if max <= min {
		return viridis[0]
	}
	idx := int(float64(len(viridis)-1) * (v - min) / (max - min))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(viridis) {
		idx = len(viridis) - 1
	}
	return viridis[idx]
}

// LinePNG saves an (x, y) polyline plot, e.g. a state variable over time
// or a 2D trajectory projection.
func LinePNG(pts plotter.XYs, title, xLabel, yLabel, path string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.Width = vg.Points(1)
	line.Color = viridis[4]
	p.Add(line)

	return p.Save(10*vg.Inch, 7*vg.Inch, path)
}

// HeatScatterPNG saves a scatter plot where each point's color encodes its
// Z value (iteration count, parameter, ...) on the viridis ramp.
func HeatScatterPNG(pts plotter.XYZs, title, xLabel, yLabel, path string) error {
	if len(pts) == 0 {
		return errors.New("render: no points to plot")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel

	zMin, zMax := pts[0].Z, pts[0].Z
	for _, pt := range pts {
		if pt.Z < zMin {
			zMin = pt.Z
		}
		if pt.Z > zMax {
			zMax = pt.Z
		}
	}

	sc, err := plotter.NewScatter(plotter.XYValues{XYZer: pts})
	if err != nil {
		return err
	}
	sc.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		return draw.GlyphStyle{
			Color:  viridisAt(pts[i].Z, zMin, zMax),
			Radius: vg.Points(1),
			Shape:  draw.CircleGlyph{},
		}
	}
	p.Add(sc)

	return p.Save(9*vg.Inch, 9*vg.Inch, path)
}
