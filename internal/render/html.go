package render

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

var viridisHex = []string{
	"#440154", "#482777", "#3e4989", "#31688e", "#26828e",
	"#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725",
}

// HeatScatterHTML writes a standalone HTML scatter chart where the third
// component of each point drives a viridis visual map.
func HeatScatterHTML(pts [][3]float64, title, subtitle, xName, yName, path string) error {
	if len(pts) == 0 {
		return fmt.Errorf("render: no points to plot")
	}

	data := make([]opts.ScatterData, 0, len(pts))
	zMin, zMax := pts[0][2], pts[0][2]
	for _, p := range pts {
		if p[2] < zMin {
			zMin = p[2]
		}
		if p[2] > zMax {
			zMax = p[2]
		}
		data = append(data, opts.ScatterData{Value: []interface{}{p[0], p[1], p[2]}})
	}
	if zMax == zMin {
		zMax = zMin + 1
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Theme: "dark", Width: "900px", Height: "900px"}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: xName, NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Name: yName, NameLocation: "middle", NameGap: 30}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        float32(zMin),
			Max:        float32(zMax),
			Dimension:  "2",
			InRange:    &opts.VisualMapInRange{Color: viridisHex},
		}),
	)

	scatter.AddSeries("points", data, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 3}))

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return scatter.Render(f)
}
