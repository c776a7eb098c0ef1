package storage

import (
	"bytes"
	"strings"
	"testing"

	"github.com/san-kum/chaoscope/internal/dynamo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testResult() *dynamo.Result {
	return &dynamo.Result{
		States:  []dynamo.State{{1, 1, 1}, {1.1, 0.9, 1.05}},
		Times:   []float64{0, 0.01},
		Metrics: map[string]float64{"extent": 1.1},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	st := New(t.TempDir())
	require.NoError(t, st.Init())

	cfg := dynamo.Config{Dt: 0.01, Duration: 0.02, Seed: 42}
	runID, err := st.Save("lorenz", cfg, "euler", testResult())
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(runID, "lorenz_"))

	meta, err := st.Load(runID)
	require.NoError(t, err)
	assert.Equal(t, "lorenz", meta.System)
	assert.Equal(t, "euler", meta.Integrator)
	assert.Equal(t, int64(42), meta.Seed)
	assert.Equal(t, 1.1, meta.Metrics["extent"])

	states, times, err := st.LoadStates(runID)
	require.NoError(t, err)
	require.Len(t, states, 2)
	require.Len(t, times, 2)
	assert.Equal(t, []float64{1, 1, 1}, states[0])
	assert.Equal(t, 0.01, times[1])
}

func TestListRuns(t *testing.T) {
	st := New(t.TempDir())
	require.NoError(t, st.Init())

	cfg := dynamo.Config{Dt: 0.01, Duration: 0.02}
	_, err := st.Save("lorenz", cfg, "euler", testResult())
	require.NoError(t, err)

	runs, err := st.List()
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "lorenz", runs[0].System)
}

func TestListEmptyDir(t *testing.T) {
	st := New(t.TempDir() + "/never-created")

	runs, err := st.List()
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestLoadUnknownRun(t *testing.T) {
	st := New(t.TempDir())
	require.NoError(t, st.Init())

	_, err := st.Load("lorenz_0")
	assert.Error(t, err)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCSV(&buf, []string{"r", "x"}, [][]float64{{2.5, 0.6}, {3.2, 0.513}})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "r,x", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "2.500000,"))
}

func TestExportJSON(t *testing.T) {
	var buf bytes.Buffer
	meta := &RunMetadata{ID: "lorenz_1", System: "lorenz"}

	err := ExportJSON(&buf, meta, [][]float64{{1, 1, 1}}, []float64{0})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"id": "lorenz_1"`)
	assert.Contains(t, buf.String(), `"states"`)
}
