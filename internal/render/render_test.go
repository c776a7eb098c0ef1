package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/plotter"
)

func TestCanvasSetAndString(t *testing.T) {
	c := NewCanvas(2, 1)

	c.Set(0, 0)
	out := c.String()

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 1)

	runes := []rune(lines[0])
	require.Len(t, runes, 2)
	assert.Equal(t, rune(0x2801), runes[0], "top-left dot should be lit")
	assert.Equal(t, rune(0x2800), runes[1], "second cell should be empty")
}

func TestCanvasIgnoresOutOfBounds(t *testing.T) {
	c := NewCanvas(2, 2)
	c.Set(-1, 0)
	c.Set(0, -5)
	c.Set(100, 100)

	for _, row := range c.Grid {
		for _, r := range row {
			assert.Equal(t, rune(0x2800), r)
		}
	}
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(2, 2)
	c.Set(0, 0)
	c.Clear()
	assert.Equal(t, rune(0x2800), c.Grid[0][0])
}

func TestScatterASCIIShape(t *testing.T) {
	xs := []float64{0, 1, 2, 3}
	ys := []float64{0, 1, 0, 1}

	out := ScatterASCII(xs, ys, 20, 5)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 5)
	for _, line := range lines {
		assert.Len(t, []rune(line), 20)
	}

	assert.Empty(t, ScatterASCII(nil, nil, 20, 5))
	assert.Empty(t, ScatterASCII(xs, ys[:2], 20, 5))
}

func TestCanvasToSVG(t *testing.T) {
	c := NewCanvas(2, 2)
	c.Set(0, 0)
	c.Set(3, 7)

	svg := CanvasToSVG(c, 4)
	assert.True(t, strings.HasPrefix(svg, `<?xml version="1.0"`))
	assert.Contains(t, svg, "<circle")
	assert.True(t, strings.HasSuffix(svg, "</svg>"))

	assert.Empty(t, CanvasToSVG(nil, 4))
}

func TestLinePNGWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "line.png")

	pts := plotter.XYs{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 0.5}}
	require.NoError(t, LinePNG(pts, "trajectory", "t", "x", path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestHeatScatterPNGWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scatter.png")

	pts := plotter.XYZs{{X: 0, Y: 0, Z: 1}, {X: 1, Y: 1, Z: 500}, {X: -1, Y: 0.5, Z: 1000}}
	require.NoError(t, HeatScatterPNG(pts, "grid", "re", "im", path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	assert.Error(t, HeatScatterPNG(nil, "empty", "x", "y", path))
}

func TestHeatScatterHTMLWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scatter.html")

	pts := [][3]float64{{0, 0, 1}, {1, 1, 2}}
	require.NoError(t, HeatScatterHTML(pts, "grid", "sub", "re", "im", path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "echarts")

	assert.Error(t, HeatScatterHTML(nil, "t", "s", "x", "y", path))
}
