package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot/plotter"

	"github.com/san-kum/chaoscope/internal/analysis"
	"github.com/san-kum/chaoscope/internal/config"
	"github.com/san-kum/chaoscope/internal/dynamo"
	"github.com/san-kum/chaoscope/internal/experiment"
	"github.com/san-kum/chaoscope/internal/fractal"
	"github.com/san-kum/chaoscope/internal/logistic"
	"github.com/san-kum/chaoscope/internal/render"
	"github.com/san-kum/chaoscope/internal/storage"
	"github.com/san-kum/chaoscope/internal/viz"
)

var (
	dataDir    string
	dt         float64
	duration   float64
	initX      float64
	initY      float64
	initZ      float64
	seed       int64
	integrator string
	configFile string
	preset     string
	// Mandelbrot grid
	res     int
	maxIter int
	// Logistic sweep
	rMin     float64
	rMax     float64
	steps    int
	iters    int
	keep     int
	lyapunov bool
	// Output artifacts
	outPNG  string
	outHTML string
	outCSV  string
	outSVG  string
	// Phase plot axes
	xAxis int
	yAxis int
	// Analysis/render target variable
	stateIdx int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "chaoscope",
		Short: "chaotic systems exploration lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".chaoscope", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [system]",
		Short: "integrate an ODE system and persist the run",
		Args:  cobra.ExactArgs(1),
		RunE:  runSimulation,
	}
	runCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	runCmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration")
	runCmd.Flags().Float64Var(&initX, "x", 1.0, "initial x")
	runCmd.Flags().Float64Var(&initY, "y", 1.0, "initial y")
	runCmd.Flags().Float64Var(&initZ, "z", 1.0, "initial z")
	runCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	runCmd.Flags().StringVar(&integrator, "integrator", "euler", "integrator")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	runCmd.Flags().BoolVar(&lyapunov, "lyapunov", false, "estimate the largest Lyapunov exponent")

	mandelbrotCmd := &cobra.Command{
		Use:   "mandelbrot",
		Short: "evaluate the Mandelbrot set over a lattice",
		RunE:  runMandelbrot,
	}
	mandelbrotCmd.Flags().IntVar(&res, "res", config.DefaultRes, "lattice half-resolution n; grid is (2n+1)^2")
	mandelbrotCmd.Flags().IntVar(&maxIter, "max-iter", config.DefaultMaxIter, "iteration bound")
	mandelbrotCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	mandelbrotCmd.Flags().StringVar(&outPNG, "png", "", "write color-mapped scatter PNG")
	mandelbrotCmd.Flags().StringVar(&outHTML, "html", "", "write interactive HTML chart")
	mandelbrotCmd.Flags().StringVar(&outCSV, "csv", "", "write per-point iteration counts CSV")
	mandelbrotCmd.Flags().StringVar(&outSVG, "svg", "", "write braille-canvas SVG of the set")

	bifurcationCmd := &cobra.Command{
		Use:   "bifurcation",
		Short: "sweep the logistic map and plot its bifurcation diagram",
		RunE:  runBifurcation,
	}
	bifurcationCmd.Flags().Float64Var(&rMin, "r-min", config.DefaultRMin, "sweep lower bound")
	bifurcationCmd.Flags().Float64Var(&rMax, "r-max", config.DefaultRMax, "sweep upper bound")
	bifurcationCmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "parameter values to sample")
	bifurcationCmd.Flags().IntVar(&iters, "iters", config.DefaultIters, "iterations per parameter value")
	bifurcationCmd.Flags().IntVar(&keep, "keep", config.DefaultKeep, "tail values retained per parameter")
	bifurcationCmd.Flags().BoolVar(&lyapunov, "lyapunov", false, "print Lyapunov exponents across the sweep")
	bifurcationCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	bifurcationCmd.Flags().StringVar(&outPNG, "png", "", "write scatter PNG")
	bifurcationCmd.Flags().StringVar(&outHTML, "html", "", "write interactive HTML chart")
	bifurcationCmd.Flags().StringVar(&outCSV, "csv", "", "write (r,x) pairs CSV")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run state variables over time",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	phaseCmd := &cobra.Command{
		Use:   "phase [run_id]",
		Short: "phase space plot",
		Args:  cobra.ExactArgs(1),
		RunE:  phasePlot,
	}
	phaseCmd.Flags().IntVar(&xAxis, "x-axis", 0, "state index for x-axis")
	phaseCmd.Flags().IntVar(&yAxis, "y-axis", 2, "state index for y-axis")

	renderCmd := &cobra.Command{
		Use:   "render [run_id]",
		Short: "render run to PNG (time series and phase projection)",
		Args:  cobra.ExactArgs(1),
		RunE:  renderRun,
	}
	renderCmd.Flags().IntVar(&stateIdx, "state", 0, "state index for the time series")
	renderCmd.Flags().IntVar(&xAxis, "x-axis", 0, "state index for phase x-axis")
	renderCmd.Flags().IntVar(&yAxis, "y-axis", 2, "state index for phase y-axis")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run data to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "frequency analysis",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}
	analyzeCmd.Flags().IntVar(&stateIdx, "state", 0, "state index to analyze")

	compareCmd := &cobra.Command{
		Use:   "compare [system] [integrator1] [integrator2] ...",
		Short: "compare integrators on the same system",
		Args:  cobra.MinimumNArgs(2),
		RunE:  compareIntegrators,
	}
	compareCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	compareCmd.Flags().Float64Var(&duration, "time", 20.0, "duration")

	liveCmd := &cobra.Command{
		Use:   "live [system]",
		Short: "run simulation with live visualization",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	liveCmd.Flags().Float64Var(&initX, "x", 1.0, "initial x")
	liveCmd.Flags().Float64Var(&initY, "y", 1.0, "initial y")
	liveCmd.Flags().Float64Var(&initZ, "z", 1.0, "initial z")
	liveCmd.Flags().StringVar(&integrator, "integrator", "rk4", "integrator")

	presetsCmd := &cobra.Command{
		Use:   "presets [system]",
		Short: "list available presets for a system",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for system: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, mandelbrotCmd, bifurcationCmd, listCmd, plotCmd,
		phaseCmd, renderCmd, exportCmd, exportCSVCmd, exportJSONCmd, analyzeCmd,
		compareCmd, liveCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runSimulation(cmd *cobra.Command, args []string) error {
	system := args[0]

	if preset != "" {
		cfg := config.GetPreset(system, preset)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(system))
		}
		dt = cfg.Dt
		duration = cfg.Duration
		integrator = cfg.Integrator
		initX = cfg.InitState.X
		initY = cfg.InitState.Y
		initZ = cfg.InitState.Z
	}

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if !cmd.Flags().Changed("dt") {
			dt = cfg.Dt
		}
		if !cmd.Flags().Changed("time") {
			duration = cfg.Duration
		}
		if !cmd.Flags().Changed("integrator") {
			integrator = cfg.Integrator
		}
		if !cmd.Flags().Changed("x") {
			initX = cfg.InitState.X
		}
		if !cmd.Flags().Changed("y") {
			initY = cfg.InitState.Y
		}
		if !cmd.Flags().Changed("z") {
			initZ = cfg.InitState.Z
		}
		if cfg.Seed != 0 && !cmd.Flags().Changed("seed") {
			seed = cfg.Seed
		}
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	registry := experiment.NewRegistry()

	sys, err := registry.GetSystem(system)
	if err != nil {
		return err
	}

	integ, err := registry.GetIntegrator(integrator)
	if err != nil {
		return err
	}

	cfg := dynamo.Config{Dt: dt, Duration: duration, Seed: seed, ValidateState: true}
	sim := dynamo.New(sys, integ)
	for _, m := range registry.DefaultMetrics() {
		sim.AddMetric(m)
	}

	fmt.Printf("running %s simulation...\n", system)
	start := time.Now()

	result, err := sim.Run(context.Background(), dynamo.State{initX, initY, initZ}, cfg)
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(system, cfg, integrator, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", result.StepsTaken)
	if len(result.Errors) > 0 {
		fmt.Printf("stopped early: %v\n", result.Errors[0])
	}
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	if lyapunov {
		lam := analysis.LyapunovExponent(sys, integ, dynamo.State{initX, initY, initZ}, dt, duration, 1e-8)
		fmt.Printf("  lyapunov: %+.4f\n", lam)
	}

	if len(result.States) > 1 {
		data := make([]float64, len(result.States))
		for i, s := range result.States {
			data[i] = s[0]
		}
		fmt.Println()
		fmt.Println(asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("x0 vs time"),
		))
	}

	return nil
}

func runMandelbrot(cmd *cobra.Command, args []string) error {
	grid := fractal.DefaultGrid()
	grid.Res = res
	grid.MaxIter = maxIter

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if !cmd.Flags().Changed("res") {
			grid.Res = cfg.Mandelbrot.Res
		}
		if !cmd.Flags().Changed("max-iter") {
			grid.MaxIter = cfg.Mandelbrot.MaxIter
		}
		grid.XMin, grid.XMax = cfg.Mandelbrot.XMin, cfg.Mandelbrot.XMax
		grid.YMin, grid.YMax = cfg.Mandelbrot.YMin, cfg.Mandelbrot.YMax
	}

	fmt.Printf("evaluating %dx%d lattice (max %d iterations)...\n", grid.Side(), grid.Side(), grid.MaxIter)
	start := time.Now()

	samples, err := fractal.Evaluate(grid)
	if err != nil {
		return err
	}

	members := fractal.InSet(samples, grid.MaxIter)
	fmt.Printf("completed in %v\n", time.Since(start))
	fmt.Printf("points: %d, in set: %d\n\n", len(samples), len(members))

	xs := make([]float64, len(members))
	ys := make([]float64, len(members))
	for i, s := range members {
		xs[i] = s.X
		ys[i] = s.Y
	}
	fmt.Println(render.ScatterASCII(xs, ys, 72, 24))

	if outPNG != "" {
		pts := make(plotter.XYZs, len(samples))
		for i, s := range samples {
			pts[i] = plotter.XYZ{X: s.X, Y: s.Y, Z: float64(s.Iter)}
		}
		if err := render.HeatScatterPNG(pts, "mandelbrot escape times", "re(c)", "im(c)", outPNG); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", outPNG)
	}

	if outHTML != "" {
		pts := make([][3]float64, len(samples))
		for i, s := range samples {
			pts[i] = [3]float64{s.X, s.Y, float64(s.Iter)}
		}
		subtitle := fmt.Sprintf("res=%d max_iter=%d", grid.Res, grid.MaxIter)
		if err := render.HeatScatterHTML(pts, "mandelbrot escape times", subtitle, "re(c)", "im(c)", outHTML); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", outHTML)
	}

	if outCSV != "" {
		rows := make([][]float64, len(samples))
		for i, s := range samples {
			rows[i] = []float64{s.X, s.Y, float64(s.Iter)}
		}
		if err := writeCSVFile(outCSV, []string{"re", "im", "iter"}, rows); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", outCSV)
	}

	if outSVG != "" {
		canvas := render.NewCanvas(120, 60)
		subW := float64(120*2 - 1)
		subH := float64(60*4 - 1)
		for _, s := range members {
			px := int(subW * (s.X - grid.XMin) / (grid.XMax - grid.XMin))
			py := int(subH * (s.Y - grid.YMin) / (grid.YMax - grid.YMin))
			canvas.Set(px, int(subH)-py)
		}
		if err := os.WriteFile(outSVG, []byte(render.CanvasToSVG(canvas, 4)), 0644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", outSVG)
	}

	return nil
}

func runBifurcation(cmd *cobra.Command, args []string) error {
	sweep := logistic.DefaultSweep()
	sweep.RMin, sweep.RMax = rMin, rMax
	sweep.Steps, sweep.Iters, sweep.Keep = steps, iters, keep

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if !cmd.Flags().Changed("r-min") {
			sweep.RMin = cfg.Logistic.RMin
		}
		if !cmd.Flags().Changed("r-max") {
			sweep.RMax = cfg.Logistic.RMax
		}
		if !cmd.Flags().Changed("steps") {
			sweep.Steps = cfg.Logistic.Steps
		}
		if !cmd.Flags().Changed("iters") {
			sweep.Iters = cfg.Logistic.Iters
		}
		if !cmd.Flags().Changed("keep") {
			sweep.Keep = cfg.Logistic.Keep
		}
		sweep.X0 = cfg.Logistic.X0
	}

	fmt.Printf("sweeping r in [%g,%g] over %d steps...\n", sweep.RMin, sweep.RMax, sweep.Steps)
	start := time.Now()

	points, err := sweep.Run()
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v, %d points\n\n", time.Since(start), len(points))

	rs := make([]float64, len(points))
	values := make([]float64, len(points))
	for i, p := range points {
		rs[i] = p.R
		values[i] = p.X
	}
	fmt.Println(render.ScatterASCII(rs, values, 72, 24))

	if lyapunov {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "R\tLYAPUNOV")
		for i := 0; i <= 10; i++ {
			r := sweep.RMin + float64(i)*(sweep.RMax-sweep.RMin)/10
			fmt.Fprintf(w, "%.3f\t%+.4f\n", r, logistic.Lyapunov(r, sweep.X0, 1000, 5000))
		}
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Println()
	}

	if outPNG != "" {
		pts := make(plotter.XYZs, len(points))
		for i, p := range points {
			pts[i] = plotter.XYZ{X: p.R, Y: p.X, Z: p.R}
		}
		if err := render.HeatScatterPNG(pts, "logistic map bifurcation", "r", "x", outPNG); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", outPNG)
	}

	if outHTML != "" {
		pts := make([][3]float64, len(points))
		for i, p := range points {
			pts[i] = [3]float64{p.R, p.X, p.R}
		}
		subtitle := fmt.Sprintf("steps=%d iters=%d keep=%d", sweep.Steps, sweep.Iters, sweep.Keep)
		if err := render.HeatScatterHTML(pts, "logistic map bifurcation", subtitle, "r", "x", outHTML); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", outHTML)
	}

	if outCSV != "" {
		rows := make([][]float64, len(points))
		for i, p := range points {
			rows[i] = []float64{p.R, p.X}
		}
		if err := writeCSVFile(outCSV, []string{"r", "x"}, rows); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", outCSV)
	}

	return nil
}

func writeCSVFile(path string, header []string, rows [][]float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return storage.WriteCSV(f, header, rows)
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSYSTEM\tTIME\tDURATION\tDT\tINTEG")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2fs\t%.4fs\t%s\n",
			run.ID,
			run.System,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration,
			run.Dt,
			run.Integrator,
		)
	}

	return w.Flush()
}

var stateCaptions = map[string][]string{
	"lorenz":  {"x", "y", "z"},
	"rossler": {"x", "y", "z"},
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	states, _, err := st.LoadStates(runID)
	if err != nil {
		return err
	}

	if len(states) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("system: %s\n", meta.System)
	fmt.Printf("samples: %d\n\n", len(states))

	captions := stateCaptions[meta.System]

	for varIdx := 0; varIdx < len(states[0]); varIdx++ {
		data := make([]float64, len(states))
		for i := range states {
			if varIdx < len(states[i]) {
				data[i] = states[i][varIdx]
			}
		}

		caption := fmt.Sprintf("x%d vs time", varIdx)
		if varIdx < len(captions) {
			caption = fmt.Sprintf("%s vs time", captions[varIdx])
		}

		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func phasePlot(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	states, _, err := st.LoadStates(runID)
	if err != nil {
		return err
	}

	if len(states) == 0 {
		return fmt.Errorf("no data to plot")
	}

	if len(states[0]) <= xAxis || len(states[0]) <= yAxis {
		return fmt.Errorf("state dimension too small for selected axes")
	}

	fmt.Printf("phase space plot: %s\n", meta.ID)
	fmt.Printf("system: %s\n", meta.System)
	fmt.Printf("x-axis: x%d, y-axis: x%d\n\n", xAxis, yAxis)

	xData := make([]float64, len(states))
	yData := make([]float64, len(states))
	for i := range states {
		xData[i] = states[i][xAxis]
		yData[i] = states[i][yAxis]
	}

	fmt.Println(render.ScatterASCII(xData, yData, 72, 24))

	return nil
}

func renderRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	states, times, err := st.LoadStates(runID)
	if err != nil {
		return err
	}

	if len(states) == 0 {
		return fmt.Errorf("no data to render")
	}
	if len(states[0]) <= stateIdx || len(states[0]) <= xAxis || len(states[0]) <= yAxis {
		return fmt.Errorf("state dimension too small for selected axes")
	}

	series := make(plotter.XYs, len(states))
	for i := range states {
		series[i] = plotter.XY{X: times[i], Y: states[i][stateIdx]}
	}
	seriesPath := fmt.Sprintf("%s_series.png", runID)
	if err := render.LinePNG(series, runID, "t", fmt.Sprintf("x%d", stateIdx), seriesPath); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", seriesPath)

	phase := make(plotter.XYs, len(states))
	for i := range states {
		phase[i] = plotter.XY{X: states[i][xAxis], Y: states[i][yAxis]}
	}
	phasePath := fmt.Sprintf("%s_phase.png", runID)
	if err := render.LinePNG(phase, runID, fmt.Sprintf("x%d", xAxis), fmt.Sprintf("x%d", yAxis), phasePath); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", phasePath)

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	states, times, err := st.LoadStates(runID)
	if err != nil {
		return err
	}

	if len(states) == 0 {
		return fmt.Errorf("no data to export")
	}

	header := []string{"time"}
	for i := range states[0] {
		header = append(header, fmt.Sprintf("x%d", i))
	}

	rows := make([][]float64, len(states))
	for i := range states {
		row := make([]float64, 0, len(states[i])+1)
		row = append(row, times[i])
		row = append(row, states[i]...)
		rows[i] = row
	}

	return storage.WriteCSV(os.Stdout, header, rows)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	states, times, err := st.LoadStates(runID)
	if err != nil {
		return err
	}

	return storage.ExportJSON(os.Stdout, meta, states, times)
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	states, _, err := st.LoadStates(runID)
	if err != nil {
		return err
	}

	if len(states) == 0 || len(states[0]) <= stateIdx {
		return fmt.Errorf("no data")
	}

	fmt.Printf("frequency analysis: %s\n", meta.ID)
	fmt.Printf("system: %s\n\n", meta.System)

	data := make([]float64, len(states))
	for i := range states {
		data[i] = states[i][stateIdx]
	}

	ps := analysis.PowerSpectrum(analysis.PadPow2(data))
	plotData := ps[:len(ps)/4]

	graph := asciigraph.Plot(plotData,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("power spectrum (x%d)", stateIdx)),
	)
	fmt.Println(graph)
	fmt.Println()

	maxPower := 0.0
	maxIdx := 0
	for i := 1; i < len(plotData); i++ {
		if plotData[i] > maxPower {
			maxPower = plotData[i]
			maxIdx = i
		}
	}

	freq := float64(maxIdx) / meta.Duration
	fmt.Printf("dominant frequency: %.3f hz\n", freq)
	if freq > 0 {
		fmt.Printf("period: %.3f s\n", 1.0/freq)
	}

	return nil
}

func compareIntegrators(cmd *cobra.Command, args []string) error {
	system := args[0]
	names := args[1:]

	registry := experiment.NewRegistry()
	sys, err := registry.GetSystem(system)
	if err != nil {
		return err
	}

	x0 := dynamo.State{1, 1, 1}
	if d, ok := sys.(interface{ DefaultState() dynamo.State }); ok {
		x0 = d.DefaultState()
	}

	fmt.Printf("comparing integrators for %s (dt=%.4f, duration=%.1fs)\n\n", system, dt, duration)
	fmt.Printf("%-12s  %-12s  %-12s  %-12s\n", "integrator", "final_x0", "extent", "time_ms")
	fmt.Println(strings.Repeat("-", 54))

	for _, name := range names {
		integ, err := registry.GetIntegrator(name)
		if err != nil {
			fmt.Printf("%-12s  error: %v\n", name, err)
			continue
		}

		sim := dynamo.New(sys, integ)
		for _, m := range registry.DefaultMetrics() {
			sim.AddMetric(m)
		}

		cfg := dynamo.Config{Dt: dt, Duration: duration, ValidateState: true}

		start := time.Now()
		result, err := sim.Run(context.Background(), x0, cfg)
		elapsed := time.Since(start)

		if err != nil {
			fmt.Printf("%-12s  error: %v\n", name, err)
			continue
		}

		finalX0 := 0.0
		if final := result.Final(); len(final) > 0 {
			finalX0 = final[0]
		}

		fmt.Printf("%-12s  %12.6f  %12.4f  %12.2f\n",
			name, finalX0, result.Metrics["extent"], float64(elapsed.Microseconds())/1000)
	}

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	system := args[0]

	registry := experiment.NewRegistry()

	sys, err := registry.GetSystem(system)
	if err != nil {
		return err
	}

	integ, err := registry.GetIntegrator(integrator)
	if err != nil {
		return err
	}

	m := viz.NewModel(sys, integ, []float64{initX, initY, initZ}, dt, system)

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
